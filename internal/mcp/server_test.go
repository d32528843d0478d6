package mcp

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meltforce/healthsink/internal/storage"
)

func testHandlers(t *testing.T) *handlers {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	if err := storage.RunMigrations(path); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	db, err := storage.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &handlers{db: db, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result.IsError {
		t.Fatalf("tool returned error: %v", result.Content)
	}
	if len(result.Content) == 0 {
		t.Fatal("tool returned no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want TextContent", result.Content[0])
	}
	return text.Text
}

// TestRecentImportsTool verifies recorded runs come back through the tool.
func TestRecentImportsTool(t *testing.T) {
	h := testHandlers(t)
	ctx := context.Background()

	if _, err := h.db.InsertImportLog(ctx, storage.ImportLog{
		RequestID:     "ab12cd34",
		Status:        "success",
		PointsWritten: 7,
	}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var req mcp.CallToolRequest
	req.Params.Arguments = map[string]any{"limit": 5}

	result, err := h.recentImports(ctx, req)
	if err != nil {
		t.Fatalf("recentImports: %v", err)
	}
	text := toolText(t, result)
	if !strings.Contains(text, "ab12cd34") {
		t.Errorf("result missing request id: %s", text)
	}
}

// TestImportStatsTool verifies the aggregate stats tool on an empty history.
func TestImportStatsTool(t *testing.T) {
	h := testHandlers(t)

	result, err := h.importStats(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("importStats: %v", err)
	}
	text := toolText(t, result)
	if !strings.Contains(text, `"total_imports":0`) {
		t.Errorf("stats = %s, want zero totals", text)
	}
}

// TestRecentImportsResource verifies the resource handler returns JSON with
// the request URI echoed back.
func TestRecentImportsResource(t *testing.T) {
	h := testHandlers(t)

	var req mcp.ReadResourceRequest
	req.Params.URI = "healthsink://recent_imports"

	contents, err := h.recentImportsResource(context.Background(), req)
	if err != nil {
		t.Fatalf("resource: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents type = %T", contents[0])
	}
	if tc.URI != "healthsink://recent_imports" || tc.MIMEType != "application/json" {
		t.Errorf("uri = %q, mime = %q", tc.URI, tc.MIMEType)
	}
}
