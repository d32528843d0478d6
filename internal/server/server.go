package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/healthsink/internal/ingest"
	"github.com/meltforce/healthsink/internal/storage"
)

// HealthChecker reports whether the downstream store is reachable.
// *influx.Client satisfies it.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	provider *ingest.Provider
	health   HealthChecker
	db       *storage.DB
	log      *slog.Logger
	apiKey   string
	version  string
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(provider *ingest.Provider, health HealthChecker, db *storage.DB, apiKey, version string, log *slog.Logger) *Server {
	s := &Server{
		provider: provider,
		health:   health,
		db:       db,
		log:      log,
		apiKey:   apiKey,
		version:  version,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))

	// Ingest endpoints — the exporter app can be pointed at any of the three
	r := s.router.With(BearerAuth(s.apiKey))
	r.Post("/", s.handleIngest)
	r.Post("/api/healthdata", s.handleIngest)
	r.Post("/ingest", s.handleIngest)

	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/api/v1/imports", s.handleImports)
	s.router.Get("/api/v1/imports/stats", s.handleImportStats)
}
