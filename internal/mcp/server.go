// Package mcp exposes the import history over the Model Context Protocol so
// an assistant can inspect what the Health Auto Export app has been sending.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/healthsink/internal/storage"
)

// New creates an MCP server with all tools and resources registered.
func New(db *storage.DB, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("healthsink", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Healthsink import history. Query recent Apple Health ingest runs and aggregate import statistics."),
	)

	h := &handlers{db: db, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolRecentImports, Handler: h.recentImports},
		server.ServerTool{Tool: toolImportStats, Handler: h.importStats},
	)

	s.AddResources(
		server.ServerResource{Resource: resRecentImports, Handler: h.recentImportsResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db  *storage.DB
	log *slog.Logger
}

var resRecentImports = mcp.NewResource(
	"healthsink://recent_imports",
	"Recent Imports",
	mcp.WithResourceDescription("The most recent ingest runs with point counts and outcomes"),
	mcp.WithMIMEType("application/json"),
)
