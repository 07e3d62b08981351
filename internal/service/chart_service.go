package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blaisecz/glucose-dashboard/internal/analysis"
	"github.com/blaisecz/glucose-dashboard/internal/dataset"
	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/blaisecz/glucose-dashboard/internal/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "glucose-dashboard/analysis"

// ChartService computes chart data from the loaded datasets. Every call
// recomputes from scratch.
type ChartService interface {
	Patients(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
	// CarbHistogram returns the carb distribution, comparing the selected
	// patients against all meals when any are selected.
	CarbHistogram(ctx context.Context, sel domain.Selection) (*domain.BarChart, error)
	PatientResponse(ctx context.Context, patientID string, tag domain.TagFilter) (*domain.PatientResponse, error)
	AggregateResponse(ctx context.Context, tag domain.TagFilter) (*domain.AggregateResponse, error)
	Timeline(ctx context.Context, sel domain.Selection) (*domain.Timeline, error)
	Dashboard(ctx context.Context, sel domain.Selection) (*domain.DashboardView, error)
}

type chartService struct {
	datasets dataset.Provider
	cfg      domain.ChartConfig
}

// NewChartService creates a new ChartService.
func NewChartService(datasets dataset.Provider, cfg domain.ChartConfig) ChartService {
	return &chartService{datasets: datasets, cfg: cfg}
}

func (s *chartService) Patients(ctx context.Context) ([]string, error) {
	ds, err := s.datasets.Datasets()
	if err != nil {
		return nil, err
	}
	return ds.PatientIDs(), nil
}

func (s *chartService) Tags(ctx context.Context) ([]string, error) {
	ds, err := s.datasets.Datasets()
	if err != nil {
		return nil, err
	}
	return ds.Tags(), nil
}

func (s *chartService) CarbHistogram(ctx context.Context, sel domain.Selection) (*domain.BarChart, error) {
	ctx, span := startSpan(ctx, "ChartService.CarbHistogram", sel)
	defer span.End()

	ds, err := s.ready(span)
	if err != nil {
		return nil, err
	}
	for _, pid := range sel.SelectedPatientIDs {
		if !ds.KnowsPatient(pid) {
			return nil, notFound(span, pid)
		}
	}

	start := time.Now()
	chart := analysis.BuildCarbChart(ds.Meals, sel, s.cfg)
	observe("carb_histogram", start)

	endSpan(span, chart)
	return &chart, nil
}

func (s *chartService) PatientResponse(ctx context.Context, patientID string, tag domain.TagFilter) (*domain.PatientResponse, error) {
	ctx, span := startSpan(ctx, "ChartService.PatientResponse", map[string]string{
		"patient_id": patientID,
		"tag":        tag.String(),
	})
	defer span.End()

	ds, err := s.ready(span)
	if err != nil {
		return nil, err
	}
	if !ds.HasPatient(patientID) {
		return nil, notFound(span, patientID)
	}

	start := time.Now()
	resp := analysis.BuildPatientResponse(ds, patientID, tag)
	observe("patient_response", start)
	metrics.SeriesPoints.Observe(float64(len(resp.Values)))

	span.SetAttributes(attribute.Int("response.meal_count", resp.MealCount))
	endSpan(span, resp)
	return &resp, nil
}

func (s *chartService) AggregateResponse(ctx context.Context, tag domain.TagFilter) (*domain.AggregateResponse, error) {
	ctx, span := startSpan(ctx, "ChartService.AggregateResponse", map[string]string{"tag": tag.String()})
	defer span.End()

	ds, err := s.ready(span)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp := analysis.BuildAggregateResponse(ds, tag)
	observe("aggregate_response", start)
	metrics.SeriesPoints.Observe(float64(len(resp.Values)))

	span.SetAttributes(
		attribute.Int("response.total_meal_count", resp.TotalMealCount),
		attribute.Int("response.contributing_patients", resp.ContributingPatientCount),
	)
	endSpan(span, resp)
	return &resp, nil
}

func (s *chartService) Timeline(ctx context.Context, sel domain.Selection) (*domain.Timeline, error) {
	ctx, span := startSpan(ctx, "ChartService.Timeline", sel)
	defer span.End()

	ds, err := s.ready(span)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	timeline := analysis.BuildTimeline(ds, sel, s.cfg)
	observe("timeline", start)

	span.SetAttributes(attribute.Int("timeline.patient_lines", len(timeline.Patients)))
	endSpan(span, timeline)
	return &timeline, nil
}

func (s *chartService) Dashboard(ctx context.Context, sel domain.Selection) (*domain.DashboardView, error) {
	ctx, span := startSpan(ctx, "ChartService.Dashboard", sel)
	defer span.End()

	ds, err := s.ready(span)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	view := analysis.BuildDashboard(domain.DashboardContext{Datasets: ds, Selection: sel}, s.cfg)
	observe("dashboard", start)

	span.SetAttributes(
		attribute.Int("timeline.patient_lines", len(view.Timeline.Patients)),
		attribute.Bool("carb_chart.no_data", view.CarbChart.NoData),
	)
	endSpan(span, view)
	return &view, nil
}

func (s *chartService) ready(span trace.Span) (*domain.Datasets, error) {
	ds, err := s.datasets.Datasets()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return ds, nil
}

func notFound(span trace.Span, patientID string) error {
	span.SetAttributes(attribute.String("patient.id", patientID))
	span.SetStatus(codes.Error, "unknown patient")
	return domain.ErrNotFound
}

func observe(analysisName string, start time.Time) {
	metrics.AnalysisRuns.WithLabelValues(analysisName).Inc()
	metrics.AnalysisLatency.WithLabelValues(analysisName).Observe(time.Since(start).Seconds())
}

func startSpan(ctx context.Context, name string, input any) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name)
	if inputJSON, err := json.Marshal(input); err == nil {
		span.SetAttributes(attribute.String("analysis.input", string(inputJSON)))
	}
	return ctx, span
}

func endSpan(span trace.Span, output any) {
	if outputJSON, err := json.Marshal(output); err == nil {
		span.SetAttributes(attribute.String("analysis.output", string(outputJSON)))
	}
}
