package recording

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/analysis"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/captions"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/export"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/silence"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/timeline"
)

// RecordingService is the agent's application surface over the catalog:
// register recordings, run silence analysis, record review decisions,
// and submit exports.
type RecordingService interface {
	Register(ctx context.Context, name, path string, duration float64) (*Recording, error)
	Get(ctx context.Context, id string) (*Recording, error)
	List(ctx context.Context) ([]*Recording, error)
	Remove(ctx context.Context, id string) error

	Analyze(ctx context.Context, recordingID string) ([]silence.Segment, error)
	Silences(ctx context.Context, recordingID string) ([]silence.Segment, error)
	ReviewSilence(ctx context.Context, recordingID, segmentID string, deleted bool) ([]silence.Segment, error)
	ReviewAll(ctx context.Context, recordingID string, deleted bool) ([]silence.Segment, error)

	SubmitExport(ctx context.Context, req ExportRequest) (*ExportJob, error)
	GetJob(ctx context.Context, id string) (*ExportJob, error)
	ListJobs(ctx context.Context, limit int) ([]*ExportJob, error)
}

type Service struct {
	repo     Repository
	detector analysis.Detector
	logger   *slog.Logger

	// autoAccept pre-marks detected silences at least this long as
	// deleted. Zero disables the policy.
	autoAccept float64
}

func NewService(repo Repository, detector analysis.Detector, logger *slog.Logger) *Service {
	return &Service{repo: repo, detector: detector, logger: logger}
}

// SetAutoAccept enables the remove-silences policy for newly analyzed
// recordings.
func (s *Service) SetAutoAccept(minSeconds float64) {
	s.autoAccept = minSeconds
}

func (s *Service) Register(ctx context.Context, name, path string, duration float64) (*Recording, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("recording path is required")
	}
	if duration <= 0 {
		return nil, fmt.Errorf("recording duration must be positive")
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	rec := &Recording{
		ID:        NewID(),
		Name:      name,
		Path:      path,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateRecording(ctx, rec); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("recording registered", "recording_id", rec.ID, "duration", duration)
	}
	return rec, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Recording, error) {
	return s.repo.GetRecording(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Recording, error) {
	return s.repo.ListRecordings(ctx)
}

func (s *Service) Remove(ctx context.Context, id string) error {
	return s.repo.DeleteRecording(ctx, id)
}

// Analyze runs silence detection over the recording and replaces its
// ledger with the result. Detection may run while the user is already
// editing; the ledger and the timeline stay independent until export.
func (s *Service) Analyze(ctx context.Context, recordingID string) ([]silence.Segment, error) {
	rec, err := s.repo.GetRecording(ctx, recordingID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("recording not found")
	}

	detected, err := s.detector.Detect(ctx, rec.Path)
	if err != nil {
		return nil, fmt.Errorf("silence detection failed: %w", err)
	}

	segs := silence.Ingest(detected)
	for i := range segs {
		segs[i].ID = NewID()
		segs[i].RecordingID = recordingID
		if s.autoAccept > 0 && segs[i].Duration >= s.autoAccept {
			segs[i].Deleted = true
		}
	}

	if err := s.repo.ReplaceSilenceSegments(ctx, recordingID, segs); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("silence ledger updated",
			"recording_id", recordingID,
			"segments", len(segs),
			"total_silence_s", silence.TotalDuration(segs),
		)
	}
	return segs, nil
}

func (s *Service) Silences(ctx context.Context, recordingID string) ([]silence.Segment, error) {
	return s.repo.ListSilenceSegments(ctx, recordingID)
}

func (s *Service) ReviewSilence(ctx context.Context, recordingID, segmentID string, deleted bool) ([]silence.Segment, error) {
	if err := s.repo.UpdateSilenceSegment(ctx, recordingID, segmentID, deleted); err != nil {
		return nil, err
	}
	return s.repo.ListSilenceSegments(ctx, recordingID)
}

func (s *Service) ReviewAll(ctx context.Context, recordingID string, deleted bool) ([]silence.Segment, error) {
	if err := s.repo.SetAllSilenceDeleted(ctx, recordingID, deleted); err != nil {
		return nil, err
	}
	return s.repo.ListSilenceSegments(ctx, recordingID)
}

// SubmitExport validates and enqueues an export. The timeline and the
// silence ledger are merged here once, up front, so an edit that leaves
// nothing to render is rejected at submission rather than discovered by
// the encoder.
func (s *Service) SubmitExport(ctx context.Context, req ExportRequest) (*ExportJob, error) {
	rec, err := s.repo.GetRecording(ctx, req.RecordingID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("recording not found")
	}

	if len(req.Segments) == 0 {
		req.Segments = timeline.NewState(rec.Duration).Segments
	}

	// Caption styling is applied at encode time, but a malformed style
	// must bounce the submission, not fail the queued job.
	if len(req.Captions) > 0 {
		if _, err := captions.TrackOverrides(req.Captions); err != nil {
			return nil, err
		}
	}

	ledger, err := s.repo.ListSilenceSegments(ctx, req.RecordingID)
	if err != nil {
		return nil, err
	}

	if _, err := export.Resolve(req.Segments, silence.Cuts(ledger)); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("cannot serialize export request: %w", err)
	}

	now := time.Now()
	job := &ExportJob{
		ID:          NewID(),
		RecordingID: req.RecordingID,
		Status:      JobStatusPending,
		Stage:       "preparing",
		Request:     string(payload),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateExportJob(ctx, job); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("export job created", "job_id", job.ID, "recording_id", req.RecordingID)
	}
	return job, nil
}

func (s *Service) GetJob(ctx context.Context, id string) (*ExportJob, error) {
	return s.repo.GetExportJob(ctx, id)
}

func (s *Service) ListJobs(ctx context.Context, limit int) ([]*ExportJob, error) {
	return s.repo.ListExportJobs(ctx, limit)
}
