package recording

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/captions"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/encoder"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/encoding"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/export"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/silence"
)

// Runner drains pending export jobs one at a time. Encoding is the
// expensive step; running jobs serially keeps the machine usable while
// the agent works through the queue.
type Runner struct {
	repo      Repository
	enc       encoder.Encoder
	outputDir string
	logger    *slog.Logger

	pollInterval time.Duration
	running      atomic.Bool
	paused       atomic.Bool
}

func NewRunner(repo Repository, enc encoder.Encoder, outputDir string, logger *slog.Logger) *Runner {
	return &Runner{
		repo:         repo,
		enc:          enc,
		outputDir:    outputDir,
		logger:       logger,
		pollInterval: 2 * time.Second,
	}
}

func (r *Runner) Start(ctx context.Context) {
	if r.running.Swap(true) {
		return
	}

	r.logger.Info("export runner started", "output_dir", r.outputDir)

	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("export runner stopping")
			r.running.Store(false)
			return
		case <-ticker.C:
			if !r.paused.Load() {
				r.processNextJob(ctx)
			}
		}
	}
}

func (r *Runner) Pause()         { r.paused.Store(true) }
func (r *Runner) Resume()        { r.paused.Store(false) }
func (r *Runner) IsPaused() bool { return r.paused.Load() }

func (r *Runner) processNextJob(ctx context.Context) {
	job, err := r.repo.NextPendingExportJob(ctx)
	if err != nil {
		r.logger.Error("failed to poll export jobs", "error", err)
		return
	}
	if job == nil {
		return
	}

	logger := r.logger.With("job_id", job.ID, "recording_id", job.RecordingID)

	if err := r.repo.UpdateExportJobStatus(ctx, job.ID, JobStatusRunning, ""); err != nil {
		logger.Error("failed to update job status", "status", JobStatusRunning, "error", err)
	}

	if err := r.executeJob(ctx, job); err != nil {
		logger.Error("export failed", "error", err)
		if uerr := r.repo.UpdateExportJobStatus(ctx, job.ID, JobStatusFailed, err.Error()); uerr != nil {
			logger.Error("failed to update job status", "status", JobStatusFailed, "error", uerr)
		}
		return
	}

	if err := r.repo.UpdateExportJobStatus(ctx, job.ID, JobStatusCompleted, ""); err != nil {
		logger.Error("failed to update job status", "status", JobStatusCompleted, "error", err)
	}
	logger.Info("export completed")
}

func (r *Runner) executeJob(ctx context.Context, job *ExportJob) error {
	var req ExportRequest
	if err := json.Unmarshal([]byte(job.Request), &req); err != nil {
		return fmt.Errorf("corrupt export request: %w", err)
	}

	rec, err := r.repo.GetRecording(ctx, job.RecordingID)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("recording not found")
	}

	// The ledger may have changed since submission; the plan is always
	// recomputed from the current state, never patched incrementally.
	ledger, err := r.repo.ListSilenceSegments(ctx, job.RecordingID)
	if err != nil {
		return err
	}

	ranges, err := export.Resolve(req.Segments, silence.Cuts(ledger))
	if err != nil {
		return err
	}

	opts := req.Options
	if opts.BaseName == "" {
		opts.BaseName = rec.Name
	}
	// Pinning the filename to submission time keeps video and sidecar
	// names in lockstep.
	opts.Timestamp = job.CreatedAt

	var srtPath string
	if req.BurnIn && len(req.Captions) > 0 {
		overrides, err := captions.TrackOverrides(req.Captions)
		if err != nil {
			return err
		}

		srtFile, err := os.CreateTemp("", "loom-captions-*.srt")
		if err != nil {
			return fmt.Errorf("cannot write caption track: %w", err)
		}
		srtPath = srtFile.Name()
		defer os.Remove(srtPath)

		if _, err := srtFile.WriteString(captions.FormatSRT(req.Captions)); err != nil {
			srtFile.Close()
			return fmt.Errorf("cannot write caption track: %w", err)
		}
		srtFile.Close()

		opts.SubtitleFilter = captions.BurnInFilter(srtPath, overrides)
	}

	plan, err := encoding.BuildPlan(ranges, opts)
	if err != nil {
		return err
	}

	outputPath, err := r.enc.Export(ctx, rec.Path, plan, r.outputDir, func(p encoder.Progress) {
		if p.Stage == encoder.StageError {
			return // the job status update carries the message
		}
		r.repo.UpdateExportJobProgress(ctx, job.ID, string(p.Stage), p.Percent)
	})
	if err != nil {
		return err
	}

	if req.Sidecar && len(req.Captions) > 0 {
		sidecarPath := filepath.Join(r.outputDir, encoding.SidecarName(plan.OutputName, "vtt"))
		if err := os.WriteFile(sidecarPath, []byte(captions.FormatWebVTT(req.Captions)), 0o644); err != nil {
			return fmt.Errorf("cannot write sidecar subtitles: %w", err)
		}
	}

	return r.repo.SetExportJobOutput(ctx, job.ID, outputPath)
}
