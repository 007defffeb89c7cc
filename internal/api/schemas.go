package api

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/recording"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/silence"
)

var validate = validator.New()

type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	UptimeS  int64  `json:"uptime_s"`
	DeviceID string `json:"device_id"`
}

type StatusResponse struct {
	State           string       `json:"state"`
	LastError       string       `json:"last_error,omitempty"`
	RecordingsCount int          `json:"recordings_count"`
	JobsRunning     int          `json:"jobs_running"`
	ActiveJob       *JobResponse `json:"active_job,omitempty"`
}

type RegisterRecordingRequest struct {
	Name     string  `json:"name,omitempty"`
	Path     string  `json:"path" validate:"required"`
	Duration float64 `json:"duration" validate:"gt=0"`
}

type RecordingResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Path      string  `json:"path"`
	Duration  float64 `json:"duration"`
	CreatedAt string  `json:"created_at"`
}

type RecordingsResponse struct {
	Recordings []RecordingResponse `json:"recordings"`
}

type SilencesResponse struct {
	Segments []silence.Segment `json:"segments"`
	// TotalSilenceS is the summed length of every detected silence;
	// TimeSavedS counts only the ones marked for deletion.
	TotalSilenceS float64 `json:"total_silence_s"`
	TimeSavedS    float64 `json:"time_saved_s"`
}

type ReviewSilenceRequest struct {
	Deleted bool `json:"deleted"`
}

type ExportResponse struct {
	JobID string `json:"job_id"`
}

type JobResponse struct {
	ID          string `json:"id"`
	RecordingID string `json:"recording_id"`
	Status      string `json:"status"`
	Stage       string `json:"stage"`
	Progress    int    `json:"progress"`
	Error       string `json:"error,omitempty"`
	OutputPath  string `json:"output_path,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type JobsResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func RecordingToResponse(rec *recording.Recording) RecordingResponse {
	return RecordingResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		Path:      rec.Path,
		Duration:  rec.Duration,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
}

func JobToResponse(j *recording.ExportJob) JobResponse {
	return JobResponse{
		ID:          j.ID,
		RecordingID: j.RecordingID,
		Status:      j.Status,
		Stage:       j.Stage,
		Progress:    j.Progress,
		Error:       j.Error,
		OutputPath:  j.OutputPath,
		CreatedAt:   j.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   j.UpdatedAt.Format(time.RFC3339),
	}
}

func SilencesToResponse(segments []silence.Segment) SilencesResponse {
	resp := SilencesResponse{
		Segments:      segments,
		TotalSilenceS: silence.TotalDuration(segments),
		TimeSavedS:    silence.TimeSaved(segments),
	}
	if resp.Segments == nil {
		resp.Segments = []silence.Segment{}
	}
	return resp
}
