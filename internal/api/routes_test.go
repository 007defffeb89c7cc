package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/export"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/recording"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/silence"
)

func testConfig(svc recording.RecordingService) ServerConfig {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return ServerConfig{
		Service:    svc,
		Repository: &fakeRepo{},
		Logger:     logger,
		StartTime:  time.Now().Add(-10 * time.Second),
		DeviceID:   "test-device",
	}
}

func withURLParam(target, id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSONBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	return body
}

func TestHealthHandler(t *testing.T) {
	cfg := testConfig(&fakeService{})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	healthHandler(cfg).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	body := decodeJSONBody(t, rr)
	if body["status"] != "ok" {
		t.Errorf("status = %v, want ok", body["status"])
	}
	if body["device_id"] != "test-device" {
		t.Errorf("device_id = %v, want test-device", body["device_id"])
	}
}

func TestStatusHandler_RunningJob(t *testing.T) {
	svc := &fakeService{
		jobs: []*recording.ExportJob{
			{ID: "job-1", RecordingID: "rec-1", Status: recording.JobStatusRunning, Stage: "encoding", Progress: 40},
		},
	}
	cfg := testConfig(svc)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)

	statusHandler(cfg).ServeHTTP(rr, req)

	body := decodeJSONBody(t, rr)
	if body["state"] != "exporting" {
		t.Errorf("state = %v, want exporting", body["state"])
	}
	activeJob, ok := body["active_job"].(map[string]interface{})
	if !ok {
		t.Fatal("active_job missing from response")
	}
	if activeJob["id"] != "job-1" {
		t.Errorf("active_job.id = %v, want job-1", activeJob["id"])
	}
}

func TestStatusHandler_FailedJob(t *testing.T) {
	svc := &fakeService{
		jobs: []*recording.ExportJob{
			{ID: "job-1", Status: recording.JobStatusFailed, Error: "ffmpeg exited with status 1"},
		},
	}
	cfg := testConfig(svc)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)

	statusHandler(cfg).ServeHTTP(rr, req)

	body := decodeJSONBody(t, rr)
	if body["state"] != "error" {
		t.Errorf("state = %v, want error", body["state"])
	}
	if body["last_error"] != "ffmpeg exited with status 1" {
		t.Errorf("last_error = %v, want encoder message", body["last_error"])
	}
}

func TestExportHandler_Accepted(t *testing.T) {
	svc := &fakeService{
		submitJob: &recording.ExportJob{ID: "job-9", Status: recording.JobStatusPending},
	}
	cfg := testConfig(svc)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/export",
		strings.NewReader(`{"recording_id":"rec-1"}`))

	exportHandler(cfg).ServeHTTP(rr, req)

	if rr.Code != http.StatusAccepted {
		t.Fatalf("status code = %d, want %d (%s)", rr.Code, http.StatusAccepted, rr.Body.String())
	}
	body := decodeJSONBody(t, rr)
	if body["job_id"] != "job-9" {
		t.Errorf("job_id = %v, want job-9", body["job_id"])
	}
}

func TestExportHandler_NothingToExport(t *testing.T) {
	svc := &fakeService{submitErr: export.ErrNothingToExport}
	cfg := testConfig(svc)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/export",
		strings.NewReader(`{"recording_id":"rec-1"}`))

	exportHandler(cfg).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusUnprocessableEntity)
	}
	body := decodeJSONBody(t, rr)
	if body["code"] != "NOTHING_TO_EXPORT" {
		t.Errorf("code = %v, want NOTHING_TO_EXPORT", body["code"])
	}
}

func TestExportHandler_MissingRecordingID(t *testing.T) {
	cfg := testConfig(&fakeService{})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/export", strings.NewReader(`{}`))

	exportHandler(cfg).ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestRegisterRecordingHandler_Validation(t *testing.T) {
	cfg := testConfig(&fakeService{})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"path":"/tmp/demo.mp4","duration":30}`, http.StatusCreated},
		{"missing path", `{"duration":30}`, http.StatusBadRequest},
		{"zero duration", `{"path":"/tmp/demo.mp4","duration":0}`, http.StatusBadRequest},
		{"malformed json", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/recordings", strings.NewReader(tt.body))

			registerRecordingHandler(cfg).ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Errorf("status code = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestListSilencesHandler_EmptyLedger(t *testing.T) {
	cfg := testConfig(&fakeService{})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recordings/rec-1/silences", nil)

	listSilencesHandler(cfg).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	body := decodeJSONBody(t, rr)
	segments, ok := body["segments"].([]interface{})
	if !ok {
		t.Fatal("segments should be an array even when empty")
	}
	if len(segments) != 0 {
		t.Errorf("len(segments) = %d, want 0", len(segments))
	}
}

func TestJobCaptionsHandler(t *testing.T) {
	svc := &fakeService{
		jobs: []*recording.ExportJob{
			{ID: "job-1", Request: `{"recording_id":"rec-1","captions":[{"start_time":0,"end_time":2,"text":"hello"}]}`},
			{ID: "job-2", Request: `{"recording_id":"rec-1"}`},
		},
	}
	cfg := testConfig(svc)

	t.Run("vtt by default", func(t *testing.T) {
		rr := httptest.NewRecorder()
		jobCaptionsHandler(cfg).ServeHTTP(rr, withURLParam("/jobs/job-1/captions", "job-1"))

		if rr.Code != http.StatusOK {
			t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
		}
		if ct := rr.Header().Get("Content-Type"); ct != "text/vtt" {
			t.Errorf("Content-Type = %q, want text/vtt", ct)
		}
		if !strings.HasPrefix(rr.Body.String(), "WEBVTT") {
			t.Errorf("body should start with WEBVTT, got %q", rr.Body.String()[:8])
		}
	})

	t.Run("srt", func(t *testing.T) {
		rr := httptest.NewRecorder()
		jobCaptionsHandler(cfg).ServeHTTP(rr, withURLParam("/jobs/job-1/captions?format=srt", "job-1"))

		if rr.Code != http.StatusOK {
			t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
		}
		if !strings.Contains(rr.Body.String(), "00:00:00,000 --> 00:00:02,000") {
			t.Errorf("body missing SRT timecode line: %q", rr.Body.String())
		}
	})

	t.Run("no captions", func(t *testing.T) {
		rr := httptest.NewRecorder()
		jobCaptionsHandler(cfg).ServeHTTP(rr, withURLParam("/jobs/job-2/captions", "job-2"))

		if rr.Code != http.StatusNotFound {
			t.Errorf("status code = %d, want %d", rr.Code, http.StatusNotFound)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		rr := httptest.NewRecorder()
		jobCaptionsHandler(cfg).ServeHTTP(rr, withURLParam("/jobs/job-1/captions?format=ass", "job-1"))

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
		}
	})
}

func TestJobEDLHandler(t *testing.T) {
	svc := &fakeService{
		recordings: []*recording.Recording{
			{ID: "rec-1", Name: "demo", Path: "/tmp/demo.mp4", Duration: 30},
		},
		silences: []silence.Segment{
			{StartTime: 10, EndTime: 15, Deleted: true},
		},
		jobs: []*recording.ExportJob{
			{ID: "job-1", RecordingID: "rec-1", Request: `{"recording_id":"rec-1"}`},
		},
	}
	cfg := testConfig(svc)

	t.Run("renders events around the cut", func(t *testing.T) {
		rr := httptest.NewRecorder()
		jobEDLHandler(cfg).ServeHTTP(rr, withURLParam("/jobs/job-1/edl", "job-1"))

		if rr.Code != http.StatusOK {
			t.Fatalf("status code = %d, want %d (%s)", rr.Code, http.StatusOK, rr.Body.String())
		}
		body := rr.Body.String()
		if !strings.HasPrefix(body, "TITLE: demo") {
			t.Errorf("body should start with the recording title, got %q", body)
		}
		// The accepted cut splits the timeline in two events.
		if !strings.Contains(body, "001  AX") || !strings.Contains(body, "002  AX") {
			t.Errorf("body should carry two events:\n%s", body)
		}
		if !strings.Contains(body, "* MEDIA PATH:  /tmp/demo.mp4") {
			t.Error("body missing media path comment")
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		rr := httptest.NewRecorder()
		jobEDLHandler(cfg).ServeHTTP(rr, withURLParam("/jobs/missing/edl", "missing"))

		if rr.Code != http.StatusNotFound {
			t.Errorf("status code = %d, want %d", rr.Code, http.StatusNotFound)
		}
	})

	t.Run("invalid frame rate", func(t *testing.T) {
		rr := httptest.NewRecorder()
		jobEDLHandler(cfg).ServeHTTP(rr, withURLParam("/jobs/job-1/edl?frame_rate=fast", "job-1"))

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
		}
	})

	t.Run("fully cut edit", func(t *testing.T) {
		cut := &fakeService{
			recordings: svc.recordings,
			silences:   []silence.Segment{{StartTime: 0, EndTime: 30, Deleted: true}},
			jobs:       svc.jobs,
		}

		rr := httptest.NewRecorder()
		jobEDLHandler(testConfig(cut)).ServeHTTP(rr, withURLParam("/jobs/job-1/edl", "job-1"))

		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status code = %d, want %d", rr.Code, http.StatusUnprocessableEntity)
		}
		body := decodeJSONBody(t, rr)
		if body["code"] != "NOTHING_TO_EXPORT" {
			t.Errorf("code = %v, want NOTHING_TO_EXPORT", body["code"])
		}
	})
}

type fakeService struct {
	recordings []*recording.Recording
	silences   []silence.Segment
	jobs       []*recording.ExportJob
	submitJob  *recording.ExportJob
	submitErr  error
}

func (f *fakeService) Register(ctx context.Context, name, path string, duration float64) (*recording.Recording, error) {
	return &recording.Recording{ID: "rec-new", Name: name, Path: path, Duration: duration}, nil
}

func (f *fakeService) Get(ctx context.Context, id string) (*recording.Recording, error) {
	for _, rec := range f.recordings {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeService) List(ctx context.Context) ([]*recording.Recording, error) {
	return f.recordings, nil
}

func (f *fakeService) Remove(ctx context.Context, id string) error {
	return nil
}

func (f *fakeService) Analyze(ctx context.Context, recordingID string) ([]silence.Segment, error) {
	return f.silences, nil
}

func (f *fakeService) Silences(ctx context.Context, recordingID string) ([]silence.Segment, error) {
	return f.silences, nil
}

func (f *fakeService) ReviewSilence(ctx context.Context, recordingID, segmentID string, deleted bool) ([]silence.Segment, error) {
	return f.silences, nil
}

func (f *fakeService) ReviewAll(ctx context.Context, recordingID string, deleted bool) ([]silence.Segment, error) {
	return f.silences, nil
}

func (f *fakeService) SubmitExport(ctx context.Context, req recording.ExportRequest) (*recording.ExportJob, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitJob, nil
}

func (f *fakeService) GetJob(ctx context.Context, id string) (*recording.ExportJob, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, nil
}

func (f *fakeService) ListJobs(ctx context.Context, limit int) ([]*recording.ExportJob, error) {
	return f.jobs, nil
}

type fakeRepo struct {
	authToken string
}

func (f *fakeRepo) CreateRecording(ctx context.Context, rec *recording.Recording) error { return nil }
func (f *fakeRepo) GetRecording(ctx context.Context, id string) (*recording.Recording, error) {
	return nil, nil
}
func (f *fakeRepo) ListRecordings(ctx context.Context) ([]*recording.Recording, error) {
	return nil, nil
}
func (f *fakeRepo) DeleteRecording(ctx context.Context, id string) error { return nil }

func (f *fakeRepo) ReplaceSilenceSegments(ctx context.Context, recordingID string, segments []silence.Segment) error {
	return nil
}
func (f *fakeRepo) ListSilenceSegments(ctx context.Context, recordingID string) ([]silence.Segment, error) {
	return nil, nil
}
func (f *fakeRepo) UpdateSilenceSegment(ctx context.Context, recordingID, segmentID string, deleted bool) error {
	return nil
}
func (f *fakeRepo) SetAllSilenceDeleted(ctx context.Context, recordingID string, deleted bool) error {
	return nil
}

func (f *fakeRepo) CreateExportJob(ctx context.Context, job *recording.ExportJob) error { return nil }
func (f *fakeRepo) GetExportJob(ctx context.Context, id string) (*recording.ExportJob, error) {
	return nil, nil
}
func (f *fakeRepo) ListExportJobs(ctx context.Context, limit int) ([]*recording.ExportJob, error) {
	return nil, nil
}
func (f *fakeRepo) NextPendingExportJob(ctx context.Context) (*recording.ExportJob, error) {
	return nil, nil
}
func (f *fakeRepo) UpdateExportJobStatus(ctx context.Context, id, status, errorMsg string) error {
	return nil
}
func (f *fakeRepo) UpdateExportJobProgress(ctx context.Context, id, stage string, progress int) error {
	return nil
}
func (f *fakeRepo) SetExportJobOutput(ctx context.Context, id, outputPath string) error { return nil }

func (f *fakeRepo) GetConfig(ctx context.Context, key string) (string, error) {
	return f.authToken, nil
}
func (f *fakeRepo) SetConfig(ctx context.Context, key, value string) error { return nil }
