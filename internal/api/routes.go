package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/captions"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/config"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/export"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/recording"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/silence"
	"github.com/Enriquefft/poor-mans-loom-agent/internal/timeline"
)

func NewRouter(cfg ServerConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware())
	r.Use(RecoveryMiddleware(cfg.Logger))
	r.Use(LoggingMiddleware(cfg.Logger))

	r.Get("/health", healthHandler(cfg))

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(cfg.Repository, cfg.Logger))

		r.Get("/status", statusHandler(cfg))

		r.Get("/recordings", listRecordingsHandler(cfg))
		r.Post("/recordings", registerRecordingHandler(cfg))
		r.Get("/recordings/{id}", getRecordingHandler(cfg))
		r.Delete("/recordings/{id}", deleteRecordingHandler(cfg))

		r.Post("/recordings/{id}/analyze", analyzeHandler(cfg))
		r.Get("/recordings/{id}/silences", listSilencesHandler(cfg))
		r.Post("/recordings/{id}/silences/{segmentID}/review", reviewSilenceHandler(cfg))
		r.Post("/recordings/{id}/silences/review-all", reviewAllHandler(cfg))

		r.Post("/export", exportHandler(cfg))
		r.Get("/jobs", listJobsHandler(cfg))
		r.Get("/jobs/{id}", getJobHandler(cfg))
		r.Get("/jobs/{id}/captions", jobCaptionsHandler(cfg))
		r.Get("/jobs/{id}/edl", jobEDLHandler(cfg))
	})

	return r
}

func healthHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := int64(time.Since(cfg.StartTime).Seconds())
		WriteJSON(w, http.StatusOK, HealthResponse{
			Status:   "ok",
			Version:  config.Version,
			UptimeS:  uptime,
			DeviceID: cfg.DeviceID,
		})
	}
}

func statusHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		recs, _ := cfg.Service.List(ctx)
		jobs, _ := cfg.Service.ListJobs(ctx, 10)

		state := "idle"
		var activeJob *JobResponse
		jobsRunning := 0
		lastError := ""

		if cfg.Runner != nil && cfg.Runner.IsPaused() {
			state = "paused"
		}

		for _, j := range jobs {
			if j.Status == recording.JobStatusRunning {
				state = "exporting"
				resp := JobToResponse(j)
				activeJob = &resp
				jobsRunning++
			}
			if j.Status == recording.JobStatusFailed && lastError == "" {
				lastError = j.Error
			}
		}

		if lastError != "" && state == "idle" {
			state = "error"
		}

		WriteJSON(w, http.StatusOK, StatusResponse{
			State:           state,
			LastError:       lastError,
			RecordingsCount: len(recs),
			JobsRunning:     jobsRunning,
			ActiveJob:       activeJob,
		})
	}
}

func listRecordingsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := cfg.Service.List(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to list recordings", "INTERNAL_ERROR")
			return
		}

		resp := RecordingsResponse{Recordings: make([]RecordingResponse, len(recs))}
		for i, rec := range recs {
			resp.Recordings[i] = RecordingToResponse(rec)
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

func registerRecordingHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRecordingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}
		if err := validate.Struct(req); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}

		rec, err := cfg.Service.Register(r.Context(), req.Name, req.Path, req.Duration)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}

		WriteJSON(w, http.StatusCreated, RecordingToResponse(rec))
	}
}

func getRecordingHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := cfg.Service.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
			return
		}
		if rec == nil {
			WriteError(w, http.StatusNotFound, "recording not found", "NOT_FOUND")
			return
		}
		WriteJSON(w, http.StatusOK, RecordingToResponse(rec))
	}
}

func deleteRecordingHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := cfg.Service.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func analyzeHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		segments, err := cfg.Service.Analyze(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}
		WriteJSON(w, http.StatusOK, SilencesToResponse(segments))
	}
}

func listSilencesHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		segments, err := cfg.Service.Silences(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
			return
		}
		WriteJSON(w, http.StatusOK, SilencesToResponse(segments))
	}
}

func reviewSilenceHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReviewSilenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		segments, err := cfg.Service.ReviewSilence(r.Context(),
			chi.URLParam(r, "id"), chi.URLParam(r, "segmentID"), req.Deleted)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}
		WriteJSON(w, http.StatusOK, SilencesToResponse(segments))
	}
}

func reviewAllHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReviewSilenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		segments, err := cfg.Service.ReviewAll(r.Context(), chi.URLParam(r, "id"), req.Deleted)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}
		WriteJSON(w, http.StatusOK, SilencesToResponse(segments))
	}
}

func exportHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recording.ExportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}
		if err := validate.Struct(req); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}

		job, err := cfg.Service.SubmitExport(r.Context(), req)
		if errors.Is(err, export.ErrNothingToExport) {
			// Every frame of the edit is cut; there is no output to
			// produce, so the request is rejected rather than queued.
			WriteError(w, http.StatusUnprocessableEntity, err.Error(), "NOTHING_TO_EXPORT")
			return
		}
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}

		WriteJSON(w, http.StatusAccepted, ExportResponse{JobID: job.ID})
	}
}

// jobCaptionsHandler serves the caption track submitted with an export
// as SRT or WebVTT, so the UI can re-download a sidecar for any job.
func jobCaptionsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := cfg.Service.GetJob(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
			return
		}
		if job == nil {
			WriteError(w, http.StatusNotFound, "job not found", "NOT_FOUND")
			return
		}

		var req recording.ExportRequest
		if err := json.Unmarshal([]byte(job.Request), &req); err != nil {
			WriteError(w, http.StatusInternalServerError, "corrupt export request", "INTERNAL_ERROR")
			return
		}
		if len(req.Captions) == 0 {
			WriteError(w, http.StatusNotFound, "job has no captions", "NOT_FOUND")
			return
		}

		switch r.URL.Query().Get("format") {
		case "srt":
			w.Header().Set("Content-Type", "application/x-subrip")
			w.Write([]byte(captions.FormatSRT(req.Captions)))
		case "", "vtt":
			w.Header().Set("Content-Type", "text/vtt")
			w.Write([]byte(captions.FormatWebVTT(req.Captions)))
		default:
			WriteError(w, http.StatusBadRequest, "format must be srt or vtt", "BAD_REQUEST")
		}
	}
}

// jobEDLHandler renders a job's edit as a CMX3600 EDL so the cut can be
// handed off to an NLE instead of encoded here. Ranges are resolved
// against the current ledger, the same way the runner resolves them.
func jobEDLHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := cfg.Service.GetJob(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
			return
		}
		if job == nil {
			WriteError(w, http.StatusNotFound, "job not found", "NOT_FOUND")
			return
		}

		var req recording.ExportRequest
		if err := json.Unmarshal([]byte(job.Request), &req); err != nil {
			WriteError(w, http.StatusInternalServerError, "corrupt export request", "INTERNAL_ERROR")
			return
		}

		rec, err := cfg.Service.Get(r.Context(), job.RecordingID)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
			return
		}
		if rec == nil {
			WriteError(w, http.StatusNotFound, "recording not found", "NOT_FOUND")
			return
		}

		if len(req.Segments) == 0 {
			req.Segments = timeline.NewState(rec.Duration).Segments
		}

		ledger, err := cfg.Service.Silences(r.Context(), job.RecordingID)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
			return
		}

		ranges, err := export.Resolve(req.Segments, silence.Cuts(ledger))
		if errors.Is(err, export.ErrNothingToExport) {
			WriteError(w, http.StatusUnprocessableEntity, err.Error(), "NOTHING_TO_EXPORT")
			return
		}
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}

		frameRate := 30.0
		if fr := r.URL.Query().Get("frame_rate"); fr != "" {
			parsed, err := strconv.ParseFloat(fr, 64)
			if err != nil || parsed <= 0 {
				WriteError(w, http.StatusBadRequest, "frame_rate must be a positive number", "BAD_REQUEST")
				return
			}
			frameRate = parsed
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(export.GenerateEDL(ranges, rec.Name, rec.Path, frameRate)))
	}
}

func listJobsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := cfg.Service.ListJobs(r.Context(), 50)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to list jobs", "INTERNAL_ERROR")
			return
		}

		resp := JobsResponse{Jobs: make([]JobResponse, len(jobs))}
		for i, j := range jobs {
			resp.Jobs[i] = JobToResponse(j)
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

func getJobHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := cfg.Service.GetJob(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
			return
		}
		if job == nil {
			WriteError(w, http.StatusNotFound, "job not found", "NOT_FOUND")
			return
		}
		WriteJSON(w, http.StatusOK, JobToResponse(job))
	}
}
