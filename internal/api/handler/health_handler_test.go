package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/glucose-dashboard/internal/dataset"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name      string
		state     dataset.State
		wantReady int
	}{
		{"loading", dataset.StateLoading, http.StatusServiceUnavailable},
		{"ready", dataset.StateReady, http.StatusOK},
		{"failed", dataset.StateFailed, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(MockReadiness{state: tt.state})

			rr := httptest.NewRecorder()
			h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
			if rr.Code != http.StatusOK {
				t.Errorf("health: expected 200, got %d", rr.Code)
			}

			rr = httptest.NewRecorder()
			h.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))
			if rr.Code != tt.wantReady {
				t.Errorf("ready: expected %d, got %d", tt.wantReady, rr.Code)
			}
		})
	}
}
