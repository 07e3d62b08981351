package handler

import (
	"net/http"
	"strings"

	"github.com/blaisecz/glucose-dashboard/internal/api/validation"
	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/blaisecz/glucose-dashboard/internal/service"
	"github.com/blaisecz/glucose-dashboard/pkg/problem"
	"github.com/go-chi/chi/v5"
)

// ChartHandler serves the chart data consumed by the dashboard renderer.
type ChartHandler struct {
	service service.ChartService
}

func NewChartHandler(service service.ChartService) *ChartHandler {
	return &ChartHandler{service: service}
}

// ListPatients handles GET /v1/patients
// @Summary List patients
// @Description Distinct patient IDs of the glucose dataset in first-seen order.
// @Tags datasets
// @Produce json
// @Success 200 {object} domain.PatientListResponse
// @Failure 503 {object} problem.Problem "Datasets not loaded"
// @Router /patients [get]
func (h *ChartHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.service.Patients(r.Context())
	if err != nil {
		writeError(w, r, err, "", "Failed to list patients")
		return
	}
	writeJSON(w, http.StatusOK, domain.PatientListResponse{Patients: patients})
}

// ListTags handles GET /v1/tags
// @Summary List meal tags
// @Description Distinct meal tags, sorted.
// @Tags datasets
// @Produce json
// @Success 200 {object} domain.TagListResponse
// @Failure 503 {object} problem.Problem "Datasets not loaded"
// @Router /tags [get]
func (h *ChartHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.Tags(r.Context())
	if err != nil {
		writeError(w, r, err, "", "Failed to list tags")
		return
	}
	writeJSON(w, http.StatusOK, domain.TagListResponse{Tags: tags})
}

// CarbHistogram handles GET /v1/carbs/histogram
// @Summary Carbohydrate distribution
// @Description Percentage of meals per carbohydrate range. With patient_id the selected patients' meals matching the tag are compared against all meals; without it every meal is counted and the tag is ignored.
// @Tags charts
// @Produce json
// @Param patient_id query []string false "Selected patient IDs (repeat or comma-separate)" collectionFormat(multi)
// @Param tag query string false "Meal tag, 'all' for every meal" default(all)
// @Success 200 {object} domain.BarChart
// @Failure 404 {object} problem.Problem "Unknown patient"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 503 {object} problem.Problem "Datasets not loaded"
// @Router /carbs/histogram [get]
func (h *ChartHandler) CarbHistogram(w http.ResponseWriter, r *http.Request) {
	query, ok := parseChartQuery(w, r)
	if !ok {
		return
	}

	chart, err := h.service.CarbHistogram(r.Context(), query.Selection())
	if err != nil {
		writeError(w, r, err, "Patient not found", "Failed to compute carbohydrate histogram")
		return
	}
	writeJSON(w, http.StatusOK, chart)
}

// PatientResponse handles GET /v1/patients/{patientId}/response
// @Summary Patient glucose response
// @Description Average post-meal glucose per 5-minute offset (0 to 120 minutes) for one patient.
// @Tags charts
// @Produce json
// @Param patientId path string true "Patient ID" example(001)
// @Param tag query string false "Meal tag, 'all' for every meal" default(all)
// @Success 200 {object} domain.PatientResponse
// @Failure 404 {object} problem.Problem "Unknown patient"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 503 {object} problem.Problem "Datasets not loaded"
// @Router /patients/{patientId}/response [get]
func (h *ChartHandler) PatientResponse(w http.ResponseWriter, r *http.Request) {
	query, ok := parseChartQuery(w, r)
	if !ok {
		return
	}

	resp, err := h.service.PatientResponse(r.Context(), chi.URLParam(r, "patientId"), domain.NewTagFilter(query.Tag))
	if err != nil {
		writeError(w, r, err, "Patient not found", "Failed to compute glucose response")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// AggregateResponse handles GET /v1/response
// @Summary Aggregate glucose response
// @Description Average post-meal glucose per 5-minute offset over every patient, with meal and patient counts.
// @Tags charts
// @Produce json
// @Param tag query string false "Meal tag, 'all' for every meal" default(all)
// @Success 200 {object} domain.AggregateResponse
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 503 {object} problem.Problem "Datasets not loaded"
// @Router /response [get]
func (h *ChartHandler) AggregateResponse(w http.ResponseWriter, r *http.Request) {
	query, ok := parseChartQuery(w, r)
	if !ok {
		return
	}

	resp, err := h.service.AggregateResponse(r.Context(), domain.NewTagFilter(query.Tag))
	if err != nil {
		writeError(w, r, err, "", "Failed to compute glucose response")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Timeline handles GET /v1/timeline
// @Summary Combined response timeline
// @Description Per-patient response lines, highlighted for selected patients, plus the aggregate line.
// @Tags charts
// @Produce json
// @Param patient_id query []string false "Highlighted patient IDs" collectionFormat(multi)
// @Param tag query string false "Meal tag, 'all' for every meal" default(all)
// @Success 200 {object} domain.Timeline
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 503 {object} problem.Problem "Datasets not loaded"
// @Router /timeline [get]
func (h *ChartHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	query, ok := parseChartQuery(w, r)
	if !ok {
		return
	}

	timeline, err := h.service.Timeline(r.Context(), query.Selection())
	if err != nil {
		writeError(w, r, err, "Patient not found", "Failed to compute timeline")
		return
	}
	writeJSON(w, http.StatusOK, timeline)
}

// parseChartQuery reads tag and patient_id; patient_id may repeat or hold a
// comma-separated list.
func parseChartQuery(w http.ResponseWriter, r *http.Request) (domain.ChartQuery, bool) {
	values := r.URL.Query()

	query := domain.ChartQuery{Tag: strings.TrimSpace(values.Get("tag"))}
	for _, raw := range values["patient_id"] {
		for _, id := range strings.Split(raw, ",") {
			query.PatientIDs = append(query.PatientIDs, strings.TrimSpace(id))
		}
	}

	if fieldErrors := validation.Validate(query); fieldErrors != nil {
		problem.ValidationError("Query contains invalid parameters", fieldErrors).Write(w)
		return query, false
	}
	return query, true
}
