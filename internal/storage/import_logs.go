package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ImportLog is one ingest invocation's outcome.
type ImportLog struct {
	ID               int64     `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	RequestID        string    `json:"request_id"`
	Status           string    `json:"status"`
	MetricsReceived  int       `json:"metrics_received"`
	WorkoutsReceived int       `json:"workouts_received"`
	MetricPoints     int       `json:"metric_points"`
	WorkoutPoints    int       `json:"workout_points"`
	PointsWritten    int       `json:"points_written"`
	DateFallbacks    int64     `json:"date_fallbacks"`
	DurationMs       int       `json:"duration_ms"`
	ErrorMessage     *string   `json:"error_message"`
}

// ImportStats aggregates the whole import history.
type ImportStats struct {
	TotalImports       int64      `json:"total_imports"`
	FailedImports      int64      `json:"failed_imports"`
	TotalPointsWritten int64      `json:"total_points_written"`
	TotalDateFallbacks int64      `json:"total_date_fallbacks"`
	LastSuccessAt      *time.Time `json:"last_success_at"`
}

// InsertImportLog records an ingest outcome and returns its id.
func (db *DB) InsertImportLog(ctx context.Context, l ImportLog) (int64, error) {
	createdAt := l.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := db.sql.ExecContext(ctx,
		`INSERT INTO import_logs (created_at, request_id, status, metrics_received,
		 workouts_received, metric_points, workout_points, points_written,
		 date_fallbacks, duration_ms, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		createdAt.Unix(), l.RequestID, l.Status, l.MetricsReceived,
		l.WorkoutsReceived, l.MetricPoints, l.WorkoutPoints, l.PointsWritten,
		l.DateFallbacks, l.DurationMs, l.ErrorMessage,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading import log id: %w", err)
	}
	return id, nil
}

// QueryImportLogs returns the most recent import logs, newest first.
func (db *DB) QueryImportLogs(ctx context.Context, limit int) ([]ImportLog, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, created_at, request_id, status, metrics_received,
		 workouts_received, metric_points, workout_points, points_written,
		 date_fallbacks, duration_ms, error_message
		 FROM import_logs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying import logs: %w", err)
	}
	defer rows.Close()

	var result []ImportLog
	for rows.Next() {
		var l ImportLog
		var createdAt int64
		if err := rows.Scan(&l.ID, &createdAt, &l.RequestID, &l.Status,
			&l.MetricsReceived, &l.WorkoutsReceived, &l.MetricPoints,
			&l.WorkoutPoints, &l.PointsWritten, &l.DateFallbacks,
			&l.DurationMs, &l.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scanning import log: %w", err)
		}
		l.CreatedAt = time.Unix(createdAt, 0).UTC()
		result = append(result, l)
	}
	return result, rows.Err()
}

// GetImportStats aggregates totals over the whole import history.
func (db *DB) GetImportStats(ctx context.Context) (*ImportStats, error) {
	var stats ImportStats
	var lastSuccess sql.NullInt64
	err := db.sql.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN status != 'success' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(points_written), 0),
		        COALESCE(SUM(date_fallbacks), 0),
		        MAX(CASE WHEN status = 'success' THEN created_at END)
		 FROM import_logs`,
	).Scan(&stats.TotalImports, &stats.FailedImports, &stats.TotalPointsWritten,
		&stats.TotalDateFallbacks, &lastSuccess)
	if err != nil {
		return nil, fmt.Errorf("querying import stats: %w", err)
	}
	if lastSuccess.Valid {
		t := time.Unix(lastSuccess.Int64, 0).UTC()
		stats.LastSuccessAt = &t
	}
	return &stats, nil
}
