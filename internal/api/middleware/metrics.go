package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/glucose-dashboard/internal/metrics"
)

// Metrics records request counts and durations per route pattern.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr := newStatusRecorder(w)
		start := time.Now()

		next.ServeHTTP(sr, r)

		endpoint := routePattern(r)
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(endpoint, r.Method, strconv.Itoa(sr.statusCode)).Inc()
		metrics.RequestDuration.WithLabelValues(endpoint, r.Method).Observe(time.Since(start).Seconds())
	})
}
