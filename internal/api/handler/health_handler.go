package handler

import (
	"net/http"

	"github.com/blaisecz/glucose-dashboard/internal/dataset"
	"github.com/blaisecz/glucose-dashboard/pkg/problem"
)

// ReadinessChecker reports the dataset load state.
type ReadinessChecker interface {
	State() dataset.State
}

type HealthHandler struct {
	readiness ReadinessChecker
}

func NewHealthHandler(readiness ReadinessChecker) *HealthHandler {
	return &HealthHandler{readiness: readiness}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	state := h.readiness.State()
	if state != dataset.StateReady {
		problem.ServiceUnavailable("Datasets are " + state.String()).Write(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": state.String()})
}
