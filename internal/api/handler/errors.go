package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/blaisecz/glucose-dashboard/internal/logging"
	"github.com/blaisecz/glucose-dashboard/pkg/problem"
)

// writeError maps service errors to problem responses. notFound is the detail
// used for domain.ErrNotFound.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFound, fallback string) {
	var p *problem.Problem
	switch {
	case errors.Is(err, domain.ErrNotFound):
		p = problem.NotFound(notFound)
	case errors.Is(err, domain.ErrNotReady):
		p = problem.ServiceUnavailable("Datasets are still loading")
	case errors.Is(err, domain.ErrDataLoad):
		p = problem.ServiceUnavailable("Datasets failed to load")
	case errors.Is(err, domain.ErrInvalidInput):
		p = problem.BadRequest(err.Error())
	default:
		logging.FromContext(r.Context()).WithContext(r.Context()).Error(fallback, "error", err, "path", r.URL.Path)
		p = problem.InternalError(fallback)
	}
	p.WithInstance(r.URL.Path).Write(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
