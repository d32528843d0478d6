package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/meltforce/healthsink/internal/models"
	"github.com/meltforce/healthsink/internal/normalize"
	"github.com/meltforce/healthsink/internal/storage"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"status":     "error",
		"error_code": code,
		"message":    message,
	})
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	requestID := RequestIDFrom(r.Context())

	var payload models.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.log.Error("failed to parse payload", "request_id", requestID, "error", err)
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Failed to parse JSON payload: "+err.Error())
		return
	}

	s.log.Debug("processing export",
		"request_id", requestID,
		"metrics", len(payload.Data.Metrics),
		"workouts", len(payload.Data.Workouts),
	)

	result, err := s.provider.Ingest(r.Context(), &payload, requestID)
	if err != nil {
		var verr *normalize.ValueError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, "INVALID_VALUE", verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "INFLUXDB_WRITE_ERROR", "Failed to write data to InfluxDB: "+err.Error())
		return
	}

	s.log.Info("export written",
		"request_id", requestID,
		"metric_points", result.MetricPoints,
		"workout_points", result.WorkoutPoints,
		"points_written", result.PointsWritten,
		"date_fallbacks", result.DateFallbacks,
	)

	writeJSON(w, http.StatusOK, map[string]any{
		"status":            "success",
		"request_id":        requestID,
		"metrics_imported":  result.MetricPoints,
		"workouts_imported": result.WorkoutsReceived,
		"points_written":    result.PointsWritten,
		"date_fallbacks":    result.DateFallbacks,
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "healthsink",
		"version": s.version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"reason": "InfluxDB not connected",
		})
		return
	}
	if err := s.health.HealthCheck(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"reason": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleImports(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, http.StatusNotFound, "IMPORT_HISTORY_DISABLED", "Import history is not configured")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	logs, err := s.db.QueryImportLogs(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "QUERY_FAILED", err.Error())
		return
	}
	if logs == nil {
		logs = []storage.ImportLog{}
	}
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) handleImportStats(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, http.StatusNotFound, "IMPORT_HISTORY_DISABLED", "Import history is not configured")
		return
	}

	stats, err := s.db.GetImportStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "QUERY_FAILED", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
