package recording

import (
	"context"
	"database/sql"
	"time"

	"github.com/Enriquefft/poor-mans-loom-agent/internal/silence"
)

type Repository interface {
	CreateRecording(ctx context.Context, rec *Recording) error
	GetRecording(ctx context.Context, id string) (*Recording, error)
	ListRecordings(ctx context.Context) ([]*Recording, error)
	DeleteRecording(ctx context.Context, id string) error

	ReplaceSilenceSegments(ctx context.Context, recordingID string, segments []silence.Segment) error
	ListSilenceSegments(ctx context.Context, recordingID string) ([]silence.Segment, error)
	UpdateSilenceSegment(ctx context.Context, recordingID, segmentID string, deleted bool) error
	SetAllSilenceDeleted(ctx context.Context, recordingID string, deleted bool) error

	CreateExportJob(ctx context.Context, job *ExportJob) error
	GetExportJob(ctx context.Context, id string) (*ExportJob, error)
	ListExportJobs(ctx context.Context, limit int) ([]*ExportJob, error)
	NextPendingExportJob(ctx context.Context) (*ExportJob, error)
	UpdateExportJobStatus(ctx context.Context, id, status, errorMsg string) error
	UpdateExportJobProgress(ctx context.Context, id, stage string, progress int) error
	SetExportJobOutput(ctx context.Context, id, outputPath string) error

	GetConfig(ctx context.Context, key string) (string, error)
	SetConfig(ctx context.Context, key, value string) error
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) CreateRecording(ctx context.Context, rec *Recording) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recordings (id, name, path, duration, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, rec.ID, rec.Name, rec.Path, rec.Duration, rec.CreatedAt.Format(time.RFC3339))
	return err
}

func (r *SQLiteRepository) GetRecording(ctx context.Context, id string) (*Recording, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, path, duration, created_at
		FROM recordings WHERE id = ?
	`, id)

	var rec Recording
	var createdAt string
	err := row.Scan(&rec.ID, &rec.Name, &rec.Path, &rec.Duration, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &rec, nil
}

func (r *SQLiteRepository) ListRecordings(ctx context.Context) ([]*Recording, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, path, duration, created_at
		FROM recordings ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*Recording
	for rows.Next() {
		var rec Recording
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Path, &rec.Duration, &createdAt); err != nil {
			return nil, err
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		recs = append(recs, &rec)
	}
	return recs, rows.Err()
}

func (r *SQLiteRepository) DeleteRecording(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM recordings WHERE id = ?`, id)
	return err
}

// ReplaceSilenceSegments swaps the full ledger for a recording in one
// transaction. Detection reruns produce a complete new ledger, so
// partial updates are never needed here.
func (r *SQLiteRepository) ReplaceSilenceSegments(ctx context.Context, recordingID string, segments []silence.Segment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM silence_segments WHERE recording_id = ?`, recordingID); err != nil {
		return err
	}

	for _, seg := range segments {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO silence_segments (id, recording_id, start_time, end_time, duration, average_decibels, deleted, reviewed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, seg.ID, recordingID, seg.StartTime, seg.EndTime, seg.Duration, seg.AverageDecibels,
			boolToInt(seg.Deleted), boolToInt(seg.Reviewed))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *SQLiteRepository) ListSilenceSegments(ctx context.Context, recordingID string) ([]silence.Segment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, recording_id, start_time, end_time, duration, average_decibels, deleted, reviewed
		FROM silence_segments WHERE recording_id = ? ORDER BY start_time, end_time
	`, recordingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var segs []silence.Segment
	for rows.Next() {
		var seg silence.Segment
		var deleted, reviewed int
		if err := rows.Scan(&seg.ID, &seg.RecordingID, &seg.StartTime, &seg.EndTime,
			&seg.Duration, &seg.AverageDecibels, &deleted, &reviewed); err != nil {
			return nil, err
		}
		seg.Deleted = deleted == 1
		seg.Reviewed = reviewed == 1
		segs = append(segs, seg)
	}
	return segs, rows.Err()
}

func (r *SQLiteRepository) UpdateSilenceSegment(ctx context.Context, recordingID, segmentID string, deleted bool) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE silence_segments SET deleted = ?, reviewed = 1
		WHERE recording_id = ? AND id = ?
	`, boolToInt(deleted), recordingID, segmentID)
	return err
}

func (r *SQLiteRepository) SetAllSilenceDeleted(ctx context.Context, recordingID string, deleted bool) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE silence_segments SET deleted = ?, reviewed = 1
		WHERE recording_id = ?
	`, boolToInt(deleted), recordingID)
	return err
}

func (r *SQLiteRepository) CreateExportJob(ctx context.Context, job *ExportJob) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO export_jobs (id, recording_id, status, stage, progress, error, request, output_path, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, job.ID, job.RecordingID, job.Status, job.Stage, job.Progress, job.Error, job.Request,
		job.OutputPath, job.CreatedAt.Format(time.RFC3339), job.UpdatedAt.Format(time.RFC3339))
	return err
}

func (r *SQLiteRepository) GetExportJob(ctx context.Context, id string) (*ExportJob, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, recording_id, status, stage, progress, error, request, output_path, created_at, updated_at
		FROM export_jobs WHERE id = ?
	`, id)
	return scanExportJob(row.Scan)
}

func (r *SQLiteRepository) ListExportJobs(ctx context.Context, limit int) ([]*ExportJob, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, recording_id, status, stage, progress, error, request, output_path, created_at, updated_at
		FROM export_jobs ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*ExportJob
	for rows.Next() {
		job, err := scanExportJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *SQLiteRepository) NextPendingExportJob(ctx context.Context) (*ExportJob, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, recording_id, status, stage, progress, error, request, output_path, created_at, updated_at
		FROM export_jobs WHERE status = ? ORDER BY created_at ASC LIMIT 1
	`, JobStatusPending)
	return scanExportJob(row.Scan)
}

func (r *SQLiteRepository) UpdateExportJobStatus(ctx context.Context, id, status, errorMsg string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE export_jobs SET status = ?, error = ?, updated_at = ? WHERE id = ?
	`, status, errorMsg, time.Now().Format(time.RFC3339), id)
	return err
}

func (r *SQLiteRepository) UpdateExportJobProgress(ctx context.Context, id, stage string, progress int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE export_jobs SET stage = ?, progress = ?, updated_at = ? WHERE id = ?
	`, stage, progress, time.Now().Format(time.RFC3339), id)
	return err
}

func (r *SQLiteRepository) SetExportJobOutput(ctx context.Context, id, outputPath string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE export_jobs SET output_path = ?, updated_at = ? WHERE id = ?
	`, outputPath, time.Now().Format(time.RFC3339), id)
	return err
}

func (r *SQLiteRepository) GetConfig(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func (r *SQLiteRepository) SetConfig(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func scanExportJob(scan func(dest ...any) error) (*ExportJob, error) {
	var job ExportJob
	var createdAt, updatedAt string
	err := scan(&job.ID, &job.RecordingID, &job.Status, &job.Stage, &job.Progress,
		&job.Error, &job.Request, &job.OutputPath, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	job.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	job.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &job, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
