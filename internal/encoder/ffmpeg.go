package encoder

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/encoding"
)

const maxStderrBytes = 8 * 1024 // tail of stderr kept for diagnostics

// FFmpegEncoder runs plans through an ffmpeg binary.
type FFmpegEncoder struct {
	bin    string
	logger *slog.Logger
}

// NewFFmpegEncoder creates an encoder using the given ffmpeg binary
// path; empty means "ffmpeg" on PATH.
func NewFFmpegEncoder(bin string, logger *slog.Logger) *FFmpegEncoder {
	if bin == "" {
		bin = "ffmpeg"
	}
	return &FFmpegEncoder{bin: bin, logger: logger}
}

// Export renders the plan. Single-pass plans run one command; two-phase
// plans stream-copy each range into a temp dir, then concatenate and
// re-encode exactly once. Intermediates are removed on return.
func (e *FFmpegEncoder) Export(ctx context.Context, inputPath string, plan encoding.Plan, outputDir string, onProgress ProgressFunc) (string, error) {
	report := func(p Progress) {
		if onProgress != nil {
			onProgress(p)
		}
	}

	fail := func(err error) (string, error) {
		report(Progress{Stage: StageError, Percent: 0, Message: err.Error()})
		return "", err
	}

	report(Progress{Stage: StagePreparing, Percent: 0})

	if len(plan.Ranges) == 0 {
		return fail(fmt.Errorf("plan has no ranges"))
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fail(fmt.Errorf("cannot create output dir: %w", err))
	}
	outputPath := filepath.Join(outputDir, plan.OutputName)

	e.logger.Info("export started",
		"strategy", plan.Strategy.String(),
		"ranges", len(plan.Ranges),
		"container", string(plan.Container),
		"output", plan.OutputName,
	)

	if plan.Strategy == encoding.StrategySinglePass {
		report(Progress{Stage: StageProcessing, Percent: 10})
		report(Progress{Stage: StageEncoding, Percent: 30})
		if err := e.run(ctx, singlePassArgs(inputPath, plan, outputPath)); err != nil {
			return fail(err)
		}
		report(Progress{Stage: StageComplete, Percent: 100})
		return outputPath, nil
	}

	tempDir, err := os.MkdirTemp("", "loom-export-")
	if err != nil {
		return fail(fmt.Errorf("cannot create temp dir: %w", err))
	}
	defer os.RemoveAll(tempDir)

	// Phase A: lossless extraction of each range.
	parts := make([]string, len(plan.Ranges))
	for i, r := range plan.Ranges {
		parts[i] = filepath.Join(tempDir, fmt.Sprintf("part-%03d.%s", i, plan.Container))
		if err := e.run(ctx, extractArgs(inputPath, r, parts[i])); err != nil {
			return fail(fmt.Errorf("extracting range %d: %w", i, err))
		}
		report(Progress{Stage: StageProcessing, Percent: 10 + (i+1)*60/len(plan.Ranges)})
	}

	// Phase B: concatenate and re-encode once.
	listPath := filepath.Join(tempDir, "concat.txt")
	if err := os.WriteFile(listPath, []byte(concatList(parts)), 0o644); err != nil {
		return fail(fmt.Errorf("writing concat list: %w", err))
	}

	report(Progress{Stage: StageEncoding, Percent: 75})
	if err := e.run(ctx, concatArgs(listPath, plan, outputPath)); err != nil {
		return fail(err)
	}

	report(Progress{Stage: StageComplete, Percent: 100})
	e.logger.Info("export finished", "output", outputPath)
	return outputPath, nil
}

func (e *FFmpegEncoder) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, e.bin, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	e.logger.Debug("running ffmpeg", "args", args)

	if err := cmd.Run(); err != nil {
		tail := stderr.Bytes()
		if len(tail) > maxStderrBytes {
			tail = tail[len(tail)-maxStderrBytes:]
		}
		return fmt.Errorf("ffmpeg: %w: %s", err, bytes.TrimSpace(tail))
	}
	return nil
}
