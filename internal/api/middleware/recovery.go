package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/glucose-dashboard/internal/logging"
	"github.com/blaisecz/glucose-dashboard/pkg/problem"
)

// Recovery recovers from panics and returns a 500 error
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logging.FromContext(r.Context()).WithContext(r.Context()).Error("panic recovered",
					"panic", fmt.Sprint(err),
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				problem.InternalError("An unexpected error occurred").Write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
