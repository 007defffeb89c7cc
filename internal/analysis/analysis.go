// Package analysis runs background media analysis for the agent.
// Silence detection executes ffmpeg's silencedetect filter as a
// subprocess and feeds the results into the silence ledger. Detection
// is asynchronous with respect to editing: the ledger may fill in while
// the user is already trimming, and the two are only merged at export
// resolution.
package analysis

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/silence"
)

// Detector finds silence intervals in a recording.
type Detector interface {
	Detect(ctx context.Context, mediaPath string) ([]silence.Segment, error)
}

// Config holds detection tuning.
type Config struct {
	FFmpegPath string        // path to ffmpeg binary; empty = "ffmpeg" on PATH
	NoiseDB    float64       // threshold below which audio counts as silence, e.g. -30
	MinSeconds float64       // minimum silence length worth reporting
	Timeout    time.Duration // per-file detection timeout
	Logger     *slog.Logger
}

// DefaultConfig mirrors the product defaults: anything quieter than
// -30dB for at least half a second is a candidate cut.
func DefaultConfig(logger *slog.Logger) Config {
	return Config{
		FFmpegPath: "ffmpeg",
		NoiseDB:    -30,
		MinSeconds: 0.5,
		Timeout:    10 * time.Minute,
		Logger:     logger,
	}
}

// FFmpegDetector is the production implementation of Detector.
type FFmpegDetector struct {
	cfg Config
}

func NewFFmpegDetector(cfg Config) *FFmpegDetector {
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = "ffmpeg"
	}
	return &FFmpegDetector{cfg: cfg}
}

// Detect decodes the file through silencedetect and parses the interval
// reports from stderr. The returned segments are normalized (sorted,
// durations filled) and carry the configured noise floor as their
// average level.
func (d *FFmpegDetector) Detect(ctx context.Context, mediaPath string) ([]silence.Segment, error) {
	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}

	filter := fmt.Sprintf("silencedetect=noise=%gdB:d=%g", d.cfg.NoiseDB, d.cfg.MinSeconds)
	cmd := exec.CommandContext(ctx, d.cfg.FFmpegPath,
		"-hide_banner", "-nostdin",
		"-i", mediaPath,
		"-af", filter,
		"-f", "null", "-",
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("silencedetect: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}

	segments := silence.Ingest(parseSilenceDetect(stderr.String(), d.cfg.NoiseDB))

	d.cfg.Logger.Info("silence detection finished",
		"path", mediaPath,
		"segments", len(segments),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return segments, nil
}

// StubDetector reports no silences. Used when detection is disabled or
// ffmpeg is unavailable.
type StubDetector struct {
	logger *slog.Logger
}

func NewStubDetector(logger *slog.Logger) *StubDetector {
	return &StubDetector{logger: logger}
}

func (d *StubDetector) Detect(ctx context.Context, mediaPath string) ([]silence.Segment, error) {
	d.logger.Info("analysis stub: silence detection requested", "path", mediaPath)
	return nil, nil
}
