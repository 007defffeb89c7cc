package recording

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/captions"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/encoder"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/encoding"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/silence"
)

func TestRunner_ProcessesJob(t *testing.T) {
	repo := testRepo(t)
	detector := &fixedDetector{segments: []silence.Segment{
		{StartTime: 5, EndTime: 8},
	}}
	svc := NewService(repo, detector, testLogger())
	ctx := context.Background()

	rec, _ := svc.Register(ctx, "demo", "/tmp/demo.mp4", 30)
	svc.Analyze(ctx, rec.ID)
	svc.ReviewAll(ctx, rec.ID, true)

	job, err := svc.SubmitExport(ctx, ExportRequest{
		RecordingID: rec.ID,
		Options:     encoding.Options{Container: encoding.ContainerMP4, Quality: encoding.QualityHigh},
	})
	if err != nil {
		t.Fatalf("SubmitExport() error = %v", err)
	}

	enc := encoder.NewStubEncoder(testLogger())
	outputDir := t.TempDir()
	runner := NewRunner(repo, enc, outputDir, testLogger())

	runner.processNextJob(ctx)

	done, err := svc.GetJob(ctx, job.ID)
	if err != nil {
		t.Fatalf("GetJob() error = %v", err)
	}
	if done.Status != JobStatusCompleted {
		t.Fatalf("Status = %s (error %q), want completed", done.Status, done.Error)
	}
	if done.OutputPath == "" {
		t.Error("expected output path on completed job")
	}
	if done.Stage != string(encoder.StageComplete) || done.Progress != 100 {
		t.Errorf("stage/progress = %s/%d, want complete/100", done.Stage, done.Progress)
	}

	// The accepted silence splits the single timeline segment in two, so
	// the encoder must receive a two-phase plan.
	if len(enc.Plans) != 1 {
		t.Fatalf("encoder ran %d times, want 1", len(enc.Plans))
	}
	plan := enc.Plans[0]
	if plan.Strategy != encoding.StrategyTwoPhase {
		t.Errorf("Strategy = %v, want two_phase", plan.Strategy)
	}
	if len(plan.Ranges) != 2 {
		t.Errorf("len(Ranges) = %d, want 2", len(plan.Ranges))
	}
}

func TestRunner_WritesSidecar(t *testing.T) {
	repo := testRepo(t)
	svc := NewService(repo, &fixedDetector{}, testLogger())
	ctx := context.Background()

	rec, _ := svc.Register(ctx, "demo", "/tmp/demo.mp4", 30)

	job, err := svc.SubmitExport(ctx, ExportRequest{
		RecordingID: rec.ID,
		Captions: []captions.Caption{
			{StartTime: 0, EndTime: 2, Text: "hello there"},
		},
		Sidecar: true,
	})
	if err != nil {
		t.Fatalf("SubmitExport() error = %v", err)
	}

	enc := encoder.NewStubEncoder(testLogger())
	outputDir := t.TempDir()
	runner := NewRunner(repo, enc, outputDir, testLogger())

	runner.processNextJob(ctx)

	done, _ := svc.GetJob(ctx, job.ID)
	if done.Status != JobStatusCompleted {
		t.Fatalf("Status = %s (error %q), want completed", done.Status, done.Error)
	}

	sidecar := encoding.SidecarName(enc.Plans[0].OutputName, "vtt")
	data, err := os.ReadFile(filepath.Join(outputDir, sidecar))
	if err != nil {
		t.Fatalf("sidecar not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "WEBVTT") {
		t.Errorf("sidecar should be WebVTT, got %q", string(data[:16]))
	}
	if !strings.Contains(string(data), "hello there") {
		t.Error("sidecar missing caption text")
	}
}

func TestRunner_BurnInFilterReachesPlan(t *testing.T) {
	repo := testRepo(t)
	svc := NewService(repo, &fixedDetector{}, testLogger())
	ctx := context.Background()

	rec, _ := svc.Register(ctx, "demo", "/tmp/demo.mp4", 30)

	_, err := svc.SubmitExport(ctx, ExportRequest{
		RecordingID: rec.ID,
		Captions: []captions.Caption{
			{StartTime: 0, EndTime: 2, Text: "hi", Style: &captions.Style{
				FontFamily: "Arial",
				FontSize:   24,
				Color:      "#FF0000FF",
			}},
		},
		BurnIn: true,
	})
	if err != nil {
		t.Fatalf("SubmitExport() error = %v", err)
	}

	enc := encoder.NewStubEncoder(testLogger())
	runner := NewRunner(repo, enc, t.TempDir(), testLogger())

	runner.processNextJob(ctx)

	if len(enc.Plans) != 1 {
		t.Fatalf("encoder ran %d times, want 1", len(enc.Plans))
	}
	filter := enc.Plans[0].SubtitleFilter
	if !strings.HasPrefix(filter, "subtitles=") {
		t.Errorf("SubtitleFilter = %q, want subtitles filter", filter)
	}
	if !strings.Contains(filter, "PrimaryColour=&H000000FF") {
		t.Errorf("SubtitleFilter = %q, want red primary colour override", filter)
	}
}

func TestRunner_FailsJobOnCorruptRequest(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	svc := NewService(repo, &fixedDetector{}, testLogger())
	rec, _ := svc.Register(ctx, "demo", "/tmp/demo.mp4", 30)

	job, _ := svc.SubmitExport(ctx, ExportRequest{RecordingID: rec.ID})

	// Corrupt the stored request behind the service's back.
	broken := *job
	broken.ID = NewID()
	broken.Request = "{not json"
	if err := repo.CreateExportJob(ctx, &broken); err != nil {
		t.Fatalf("CreateExportJob() error = %v", err)
	}

	runner := NewRunner(repo, encoder.NewStubEncoder(testLogger()), t.TempDir(), testLogger())
	runner.processNextJob(ctx) // drains the valid job first
	runner.processNextJob(ctx)

	failed, err := repo.GetExportJob(ctx, broken.ID)
	if err != nil {
		t.Fatalf("GetExportJob() error = %v", err)
	}
	if failed.Status != JobStatusFailed {
		t.Errorf("Status = %s, want failed", failed.Status)
	}
	if failed.Error == "" {
		t.Error("failed job should carry an error message")
	}
}

// flakyStatusRepo fails every status write while leaving the rest of
// the repository intact.
type flakyStatusRepo struct {
	Repository
}

func (r *flakyStatusRepo) UpdateExportJobStatus(ctx context.Context, id, status, errorMsg string) error {
	return errors.New("disk full")
}

func TestRunner_LogsFailedStatusWrites(t *testing.T) {
	repo := testRepo(t)
	svc := NewService(repo, &fixedDetector{}, testLogger())
	ctx := context.Background()

	rec, _ := svc.Register(ctx, "demo", "/tmp/demo.mp4", 30)
	if _, err := svc.SubmitExport(ctx, ExportRequest{RecordingID: rec.ID}); err != nil {
		t.Fatalf("SubmitExport() error = %v", err)
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	runner := NewRunner(&flakyStatusRepo{repo}, encoder.NewStubEncoder(testLogger()), t.TempDir(), logger)
	runner.processNextJob(ctx)

	if !strings.Contains(buf.String(), "failed to update job status") {
		t.Errorf("status write failure not logged:\n%s", buf.String())
	}
}

func TestRunner_PauseResume(t *testing.T) {
	runner := NewRunner(testRepo(t), encoder.NewStubEncoder(testLogger()), t.TempDir(), testLogger())

	if runner.IsPaused() {
		t.Error("runner should start unpaused")
	}
	runner.Pause()
	if !runner.IsPaused() {
		t.Error("Pause() did not take effect")
	}
	runner.Resume()
	if runner.IsPaused() {
		t.Error("Resume() did not take effect")
	}
}
