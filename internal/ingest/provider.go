// Package ingest ties the normalization engine to the point sink: one write
// per payload, one import-log row per invocation.
package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/meltforce/healthsink/internal/models"
	"github.com/meltforce/healthsink/internal/normalize"
	"github.com/meltforce/healthsink/internal/storage"
)

// Sink is the write endpoint points are handed to. *influx.Client satisfies
// it; tests substitute a capture.
type Sink interface {
	WritePoints(ctx context.Context, points []normalize.Point, bucket, org string) error
}

// Result summarizes one ingest invocation.
type Result struct {
	MetricsReceived  int   `json:"metrics_received"`
	WorkoutsReceived int   `json:"workouts_received"`
	MetricPoints     int   `json:"metric_points"`
	WorkoutPoints    int   `json:"workout_points"`
	PointsWritten    int   `json:"points_written"`
	DateFallbacks    int64 `json:"date_fallbacks"`
}

// Provider processes decoded export payloads end to end.
type Provider struct {
	engine *normalize.Engine
	sink   Sink
	db     *storage.DB // optional; nil disables import history
	bucket string
	org    string
	log    *slog.Logger
}

// NewProvider creates a Provider writing to the given bucket and org.
func NewProvider(engine *normalize.Engine, sink Sink, db *storage.DB, bucket, org string, log *slog.Logger) *Provider {
	return &Provider{engine: engine, sink: sink, db: db, bucket: bucket, org: org, log: log}
}

// Ingest normalizes the payload and writes the resulting points in a single
// sink call, metric points first, then workout points. Engine value errors
// and sink errors abort the invocation and surface to the caller unchanged;
// the import log records the outcome either way.
func (p *Provider) Ingest(ctx context.Context, payload *models.Payload, requestID string) (*Result, error) {
	start := time.Now()
	fallbacksBefore := p.engine.DateFallbacks()

	result := &Result{
		MetricsReceived:  len(payload.Data.Metrics),
		WorkoutsReceived: len(payload.Data.Workouts),
	}

	metricPoints, err := p.engine.MetricPoints(payload.Data.Metrics)
	if err != nil {
		p.record(ctx, requestID, result, start, err)
		return nil, err
	}
	workoutPoints, err := p.engine.WorkoutPoints(payload.Data.Workouts)
	if err != nil {
		p.record(ctx, requestID, result, start, err)
		return nil, err
	}

	result.MetricPoints = len(metricPoints)
	result.WorkoutPoints = len(workoutPoints)
	// Best effort under concurrent ingests; the engine's own counter is the
	// exact global signal.
	result.DateFallbacks = p.engine.DateFallbacks() - fallbacksBefore

	points := append(metricPoints, workoutPoints...)
	if len(points) > 0 {
		if err := p.sink.WritePoints(ctx, points, p.bucket, p.org); err != nil {
			p.log.Error("point write failed", "request_id", requestID, "points", len(points), "error", err)
			p.record(ctx, requestID, result, start, err)
			return nil, err
		}
		result.PointsWritten = len(points)
	} else {
		p.log.Info("no points to write", "request_id", requestID)
	}

	p.record(ctx, requestID, result, start, nil)
	return result, nil
}

// record persists the invocation outcome. Import history is bookkeeping, not
// the write path — failures are logged and swallowed.
func (p *Provider) record(ctx context.Context, requestID string, result *Result, start time.Time, ingestErr error) {
	if p.db == nil {
		return
	}

	l := storage.ImportLog{
		RequestID:        requestID,
		Status:           "success",
		MetricsReceived:  result.MetricsReceived,
		WorkoutsReceived: result.WorkoutsReceived,
		MetricPoints:     result.MetricPoints,
		WorkoutPoints:    result.WorkoutPoints,
		PointsWritten:    result.PointsWritten,
		DateFallbacks:    result.DateFallbacks,
		DurationMs:       int(time.Since(start).Milliseconds()),
	}
	if ingestErr != nil {
		msg := ingestErr.Error()
		l.Status = "error"
		l.ErrorMessage = &msg
	}

	if _, err := p.db.InsertImportLog(ctx, l); err != nil {
		p.log.Error("failed to record import log", "request_id", requestID, "error", err)
	}
}
