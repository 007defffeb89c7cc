package recording

import (
	"time"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/captions"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/encoding"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/timeline"
)

// Recording is one captured video registered with the agent. Duration
// is measured when the recording is registered and fixed from then on.
type Recording struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Duration  float64   `json:"duration"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// ExportJob tracks one export through the encoder's stage sequence.
// The submitted request is kept with the job so the runner can execute
// it after a restart of the polling loop.
type ExportJob struct {
	ID          string    `json:"id"`
	RecordingID string    `json:"recording_id"`
	Status      string    `json:"status"`
	Stage       string    `json:"stage"`
	Progress    int       `json:"progress"`
	Error       string    `json:"error,omitempty"`
	Request     string    `json:"-"`
	OutputPath  string    `json:"output_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExportRequest is the full edit decision set submitted for rendering.
// Segments carry the editing session's timeline state; silence cuts are
// read from the ledger at execution time, never joined earlier.
type ExportRequest struct {
	RecordingID string             `json:"recording_id" validate:"required"`
	Segments    []timeline.Segment `json:"segments,omitempty"`
	Options     encoding.Options   `json:"options"`
	Captions    []captions.Caption `json:"captions,omitempty" validate:"dive"`
	// BurnIn composites the captions into the video; Sidecar writes a
	// WebVTT file next to the output. Both may be set.
	BurnIn  bool `json:"burn_in,omitempty"`
	Sidecar bool `json:"sidecar,omitempty"`
}

// NewID returns a fresh identifier for catalog rows.
func NewID() string {
	return timeline.NewID()
}
