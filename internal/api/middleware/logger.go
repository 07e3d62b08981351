package middleware

import (
	"net/http"
	"time"

	"github.com/blaisecz/glucose-dashboard/internal/logging"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Logger attaches a request-scoped logger and request ID to the context and
// writes one access log entry per request.
func Logger(logger *logging.Logger, skipPaths ...string) func(http.Handler) http.Handler {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			w.Header().Set(requestIDHeader, requestID)

			ctx := logging.WithRequestID(r.Context(), requestID)
			ctx = logging.WithLogger(ctx, logger)

			sr := newStatusRecorder(w)
			start := time.Now()

			next.ServeHTTP(sr, r.WithContext(ctx))

			if skip[r.URL.Path] {
				return
			}

			duration := time.Since(start)
			fields := []interface{}{
				"method", r.Method,
				"path", r.URL.Path,
				"status", sr.statusCode,
				"duration_ms", duration.Milliseconds(),
				"request_id", requestID,
			}
			switch {
			case sr.statusCode >= 500:
				logger.Error("Server error", fields...)
			case sr.statusCode >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request completed", fields...)
			}
		})
	}
}
