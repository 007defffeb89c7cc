// Package encoder executes encoding plans. The engine's contract with
// it is one-shot: a plan is consumed once per export invocation, and
// progress comes back as monotonically increasing percentages across
// four stages (or an error stage with a message).
package encoder

import (
	"context"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/encoding"
)

// Stage labels the phase an export is in.
type Stage string

const (
	StagePreparing  Stage = "preparing"
	StageProcessing Stage = "processing"
	StageEncoding   Stage = "encoding"
	StageComplete   Stage = "complete"
	StageError      Stage = "error"
)

// Progress is one progress report. Percent runs 0-100 and never
// decreases within an export.
type Progress struct {
	Stage   Stage  `json:"stage"`
	Percent int    `json:"percent"`
	Message string `json:"message,omitempty"`
}

// ProgressFunc receives progress reports. May be nil.
type ProgressFunc func(Progress)

// Encoder renders an encoding plan into an output file and returns its
// path. Implementations must report StageError with a message before
// returning a non-nil error.
type Encoder interface {
	Export(ctx context.Context, inputPath string, plan encoding.Plan, outputDir string, onProgress ProgressFunc) (string, error)
}
