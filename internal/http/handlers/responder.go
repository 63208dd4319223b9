package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/pokedex-service/internal/http/middleware"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
	"github.com/preston-bernstein/pokedex-service/internal/providers"
)

const (
	msgNotFound            = "Data not found"
	msgUpstreamUnavailable = "upstream unavailable"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps a failed service call onto the public error contract.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	reqLogger := loggerFromContext(r, logger)
	if errors.Is(err, providers.ErrNotFound) {
		logging.Info(reqLogger, "pokemon data not found", "error", err)
		writeError(w, r, http.StatusNotFound, msgNotFound, logger)
		return
	}
	var attrs []any
	if upErr, ok := providers.AsUpstreamError(err); ok {
		attrs = append(attrs, logging.Provider(upErr.Provider), slog.Int(logging.FieldUpstreamStatus, upErr.StatusCode))
	}
	logging.Error(reqLogger, "upstream request failed", err, attrs...)
	writeError(w, r, http.StatusBadGateway, msgUpstreamUnavailable, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
