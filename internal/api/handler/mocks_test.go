package handler

import (
	"context"

	"github.com/blaisecz/glucose-dashboard/internal/dataset"
	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/google/uuid"
)

// MockChartService is a mock implementation of ChartService
type MockChartService struct {
	patientsFunc          func(ctx context.Context) ([]string, error)
	tagsFunc              func(ctx context.Context) ([]string, error)
	carbHistogramFunc     func(ctx context.Context, sel domain.Selection) (*domain.BarChart, error)
	patientResponseFunc   func(ctx context.Context, patientID string, tag domain.TagFilter) (*domain.PatientResponse, error)
	aggregateResponseFunc func(ctx context.Context, tag domain.TagFilter) (*domain.AggregateResponse, error)
	timelineFunc          func(ctx context.Context, sel domain.Selection) (*domain.Timeline, error)
	dashboardFunc         func(ctx context.Context, sel domain.Selection) (*domain.DashboardView, error)
}

func (m *MockChartService) Patients(ctx context.Context) ([]string, error) {
	if m.patientsFunc != nil {
		return m.patientsFunc(ctx)
	}
	return []string{}, nil
}

func (m *MockChartService) Tags(ctx context.Context) ([]string, error) {
	if m.tagsFunc != nil {
		return m.tagsFunc(ctx)
	}
	return []string{}, nil
}

func (m *MockChartService) CarbHistogram(ctx context.Context, sel domain.Selection) (*domain.BarChart, error) {
	if m.carbHistogramFunc != nil {
		return m.carbHistogramFunc(ctx, sel)
	}
	return &domain.BarChart{Groups: []domain.BarGroup{}}, nil
}

func (m *MockChartService) PatientResponse(ctx context.Context, patientID string, tag domain.TagFilter) (*domain.PatientResponse, error) {
	if m.patientResponseFunc != nil {
		return m.patientResponseFunc(ctx, patientID, tag)
	}
	return &domain.PatientResponse{PatientID: patientID, Tag: tag.String(), Values: domain.AveragedSeries{}}, nil
}

func (m *MockChartService) AggregateResponse(ctx context.Context, tag domain.TagFilter) (*domain.AggregateResponse, error) {
	if m.aggregateResponseFunc != nil {
		return m.aggregateResponseFunc(ctx, tag)
	}
	return &domain.AggregateResponse{Tag: tag.String(), Values: domain.AveragedSeries{}}, nil
}

func (m *MockChartService) Timeline(ctx context.Context, sel domain.Selection) (*domain.Timeline, error) {
	if m.timelineFunc != nil {
		return m.timelineFunc(ctx, sel)
	}
	return &domain.Timeline{Tag: sel.Tag.String(), Patients: []domain.PatientLine{}}, nil
}

func (m *MockChartService) Dashboard(ctx context.Context, sel domain.Selection) (*domain.DashboardView, error) {
	if m.dashboardFunc != nil {
		return m.dashboardFunc(ctx, sel)
	}
	return &domain.DashboardView{Selection: sel}, nil
}

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	createFunc      func(ctx context.Context, req *domain.CreateSessionRequest) (*domain.Session, error)
	getFunc         func(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	applyFilterFunc func(ctx context.Context, id uuid.UUID, change *domain.FilterChange) (*domain.DashboardView, error)
	dashboardFunc   func(ctx context.Context, id uuid.UUID) (*domain.DashboardView, error)
}

func (m *MockSessionService) Create(ctx context.Context, req *domain.CreateSessionRequest) (*domain.Session, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Session{
		ID:        uuid.New(),
		Selection: domain.Selection{SelectedPatientIDs: req.PatientIDs, Tag: domain.NewTagFilter(req.Tag)},
	}, nil
}

func (m *MockSessionService) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockSessionService) ApplyFilter(ctx context.Context, id uuid.UUID, change *domain.FilterChange) (*domain.DashboardView, error) {
	if m.applyFilterFunc != nil {
		return m.applyFilterFunc(ctx, id, change)
	}
	return nil, domain.ErrNotFound
}

func (m *MockSessionService) Dashboard(ctx context.Context, id uuid.UUID) (*domain.DashboardView, error) {
	if m.dashboardFunc != nil {
		return m.dashboardFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockReadiness is a mock implementation of ReadinessChecker
type MockReadiness struct {
	state dataset.State
}

func (m MockReadiness) State() dataset.State {
	return m.state
}

func strPtr(s string) *string {
	return &s
}
