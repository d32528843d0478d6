package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	if err := RunMigrations(path); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	db, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestInsertAndQueryImportLogs verifies a round trip through the import log
// table, newest first.
func TestInsertAndQueryImportLogs(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	first := ImportLog{
		CreatedAt:        time.Date(2024, 2, 6, 10, 0, 0, 0, time.UTC),
		RequestID:        "a1b2c3d4",
		Status:           "success",
		MetricsReceived:  3,
		WorkoutsReceived: 1,
		MetricPoints:     12,
		WorkoutPoints:    3,
		PointsWritten:    15,
		DurationMs:       42,
	}
	if _, err := db.InsertImportLog(ctx, first); err != nil {
		t.Fatalf("insert: %v", err)
	}

	msg := "write timeout"
	second := ImportLog{
		CreatedAt:     time.Date(2024, 2, 6, 11, 0, 0, 0, time.UTC),
		RequestID:     "e5f6a7b8",
		Status:        "error",
		DateFallbacks: 2,
		ErrorMessage:  &msg,
	}
	if _, err := db.InsertImportLog(ctx, second); err != nil {
		t.Fatalf("insert: %v", err)
	}

	logs, err := db.QueryImportLogs(ctx, 10)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("logs = %d, want 2", len(logs))
	}
	if logs[0].RequestID != "e5f6a7b8" {
		t.Errorf("newest first: got %q", logs[0].RequestID)
	}
	if logs[0].ErrorMessage == nil || *logs[0].ErrorMessage != "write timeout" {
		t.Errorf("error message = %v", logs[0].ErrorMessage)
	}
	if logs[1].PointsWritten != 15 {
		t.Errorf("points_written = %d, want 15", logs[1].PointsWritten)
	}
	if !logs[1].CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("created_at = %v, want %v", logs[1].CreatedAt, first.CreatedAt)
	}
}

// TestGetImportStats verifies aggregate counters and the last-success time.
func TestGetImportStats(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	successAt := time.Date(2024, 2, 6, 10, 0, 0, 0, time.UTC)
	seed := []ImportLog{
		{CreatedAt: successAt, RequestID: "ok1", Status: "success", PointsWritten: 10, DateFallbacks: 1},
		{CreatedAt: successAt.Add(time.Hour), RequestID: "bad", Status: "error", DateFallbacks: 3},
	}
	for _, l := range seed {
		if _, err := db.InsertImportLog(ctx, l); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	stats, err := db.GetImportStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalImports != 2 {
		t.Errorf("total = %d, want 2", stats.TotalImports)
	}
	if stats.FailedImports != 1 {
		t.Errorf("failed = %d, want 1", stats.FailedImports)
	}
	if stats.TotalPointsWritten != 10 {
		t.Errorf("points = %d, want 10", stats.TotalPointsWritten)
	}
	if stats.TotalDateFallbacks != 4 {
		t.Errorf("fallbacks = %d, want 4", stats.TotalDateFallbacks)
	}
	if stats.LastSuccessAt == nil || !stats.LastSuccessAt.Equal(successAt) {
		t.Errorf("last success = %v, want %v", stats.LastSuccessAt, successAt)
	}
}

// TestGetImportStatsEmpty verifies an empty history yields zero stats and no
// last-success time.
func TestGetImportStatsEmpty(t *testing.T) {
	db := testDB(t)
	stats, err := db.GetImportStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalImports != 0 || stats.LastSuccessAt != nil {
		t.Errorf("stats = %+v, want zeroes", stats)
	}
}
