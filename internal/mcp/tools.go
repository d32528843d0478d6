package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

var toolRecentImports = mcp.NewTool("recent_imports",
	mcp.WithDescription("List recent ingest runs, newest first. Each entry has the request id, status, point counts, and any error message."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of runs to return. Defaults to 20.")),
)

var toolImportStats = mcp.NewTool("import_stats",
	mcp.WithDescription("Aggregate statistics over the whole import history: total and failed runs, points written, date fallbacks, and the time of the last successful run."),
)

func (h *handlers) recentImports(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 20)

	logs, err := h.db.QueryImportLogs(ctx, limit)
	if err != nil {
		h.log.Error("mcp recent_imports", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(logs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) importStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.db.GetImportStats(ctx)
	if err != nil {
		h.log.Error("mcp import_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
