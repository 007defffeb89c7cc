package encoder

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/encoding"
)

// StubEncoder reports the full stage sequence without touching media
// bytes. Used in tests and when no ffmpeg binary is available.
type StubEncoder struct {
	logger *slog.Logger

	// Plans records every plan passed to Export.
	Plans []encoding.Plan
}

func NewStubEncoder(logger *slog.Logger) *StubEncoder {
	return &StubEncoder{logger: logger}
}

func (e *StubEncoder) Export(ctx context.Context, inputPath string, plan encoding.Plan, outputDir string, onProgress ProgressFunc) (string, error) {
	e.logger.Info("encoder stub: export requested",
		"input", inputPath,
		"strategy", plan.Strategy.String(),
		"ranges", len(plan.Ranges),
	)
	e.Plans = append(e.Plans, plan)

	if onProgress != nil {
		onProgress(Progress{Stage: StagePreparing, Percent: 0})
		onProgress(Progress{Stage: StageProcessing, Percent: 40})
		onProgress(Progress{Stage: StageEncoding, Percent: 80})
		onProgress(Progress{Stage: StageComplete, Percent: 100})
	}
	return filepath.Join(outputDir, plan.OutputName), nil
}
