package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/pokedex-service/internal/http/requestutil"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
	"github.com/preston-bernstein/pokedex-service/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

// LoggingMiddleware assigns every request an ID, echoes it in X-Request-ID,
// stores a request-scoped logger on the context and writes one access log
// line per request. Server errors are logged at error level.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get(requestIDHeader))
		w.Header().Set(requestIDHeader, reqID)

		logger := baseLogger.With(
			logging.RequestID(reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		ctx := withRequestID(logging.WithLogger(r.Context(), logger), reqID)

		sw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(ctx))

		elapsed := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, routeLabel(r.URL.Path), sw.status, elapsed)

		level := slog.LevelInfo
		if sw.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(ctx, level, "request complete",
			slog.Int(logging.FieldStatusCode, sw.status),
			slog.Int("bytes", sw.bytes),
			logging.Elapsed(elapsed),
		)
	})
}

// statusRecorder remembers the status and body size written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusRecorder) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func (w *statusRecorder) Unwrap() http.ResponseWriter { return w.ResponseWriter }

type requestIDKey struct{}

// RequestIDFromContext extracts the request ID stored by the logging middleware.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// routeLabel maps a request path onto the fixed set of routes so the metric
// label never carries a Pokémon id or an arbitrary probe path.
func routeLabel(path string) string {
	path, _, _ = strings.Cut(path, "?")
	switch {
	case path == "" || path == "/" || path == "/health" || path == "/pokemon":
		return path
	case path == "/pokemon/":
		return "/pokemon"
	case strings.HasPrefix(path, "/pokemon/"):
		return "/pokemon/:id"
	default:
		return "other"
	}
}
