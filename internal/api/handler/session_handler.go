package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/glucose-dashboard/internal/api/validation"
	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/blaisecz/glucose-dashboard/internal/service"
	"github.com/blaisecz/glucose-dashboard/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Create handles POST /v1/sessions
// @Summary Create a dashboard session
// @Description Create a session holding one viewer's tag filter and patient selection.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body domain.CreateSessionRequest false "Initial selection"
// @Success 201 {object} domain.SessionResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Unknown patient"
// @Failure 422 {object} problem.Problem
// @Failure 503 {object} problem.Problem "Datasets not loaded"
// @Router /sessions [post]
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSessionRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			problem.BadRequest("Invalid JSON body").Write(w)
			return
		}
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	session, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, "Patient not found", "Failed to create session")
		return
	}
	writeJSON(w, http.StatusCreated, session.ToResponse())
}

// Get handles GET /v1/sessions/{sessionId}
// @Summary Get session
// @Description Get a session's current selection.
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID" format(uuid)
// @Success 200 {object} domain.SessionResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Router /sessions/{sessionId} [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		writeError(w, r, err, "Session not found", "Failed to get session")
		return
	}
	writeJSON(w, http.StatusOK, session.ToResponse())
}

// Dashboard handles GET /v1/sessions/{sessionId}/dashboard
// @Summary Get dashboard
// @Description Recompute every chart for the session's current selection.
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID" format(uuid)
// @Success 200 {object} domain.DashboardView
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 503 {object} problem.Problem "Datasets not loaded"
// @Router /sessions/{sessionId}/dashboard [get]
func (h *SessionHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Dashboard(r.Context(), sessionID)
	if err != nil {
		writeError(w, r, err, "Session not found", "Failed to compute dashboard")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ApplyFilter handles PATCH /v1/sessions/{sessionId}/filter
// @Summary Apply a filter change
// @Description Change the tag filter and/or toggle a patient, then return the recomputed dashboard.
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID" format(uuid)
// @Param request body domain.FilterChange true "Filter change"
// @Success 200 {object} domain.DashboardView
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Unknown session or patient"
// @Failure 422 {object} problem.Problem
// @Failure 503 {object} problem.Problem "Datasets not loaded"
// @Router /sessions/{sessionId}/filter [patch]
func (h *SessionHandler) ApplyFilter(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var change domain.FilterChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(change); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	view, err := h.service.ApplyFilter(r.Context(), sessionID, &change)
	if err != nil {
		writeError(w, r, err, "Session or patient not found", "Failed to apply filter")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		problem.BadRequest("Invalid session ID format").Write(w)
		return uuid.Nil, false
	}
	return sessionID, true
}
