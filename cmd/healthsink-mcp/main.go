// Command healthsink-mcp serves the import history over MCP on stdio, for
// wiring into an assistant alongside the HTTP service. It only needs the
// sqlite file, not the full service configuration.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/healthsink/internal/mcp"
	"github.com/meltforce/healthsink/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	dbPath := flag.String("db", "healthsink.db", "path to the import history sqlite file")
	flag.Parse()

	// Stdout carries the MCP transport; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := storage.RunMigrations(*dbPath); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	db, err := storage.Open(context.Background(), *dbPath)
	if err != nil {
		log.Error("failed to open import history", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	s := mcp.New(db, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
