package service

import (
	"context"
	"time"

	"github.com/blaisecz/glucose-dashboard/internal/analysis"
	"github.com/blaisecz/glucose-dashboard/internal/dataset"
	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/blaisecz/glucose-dashboard/internal/logging"
	"github.com/blaisecz/glucose-dashboard/internal/metrics"
	"github.com/blaisecz/glucose-dashboard/internal/repository"
	"github.com/google/uuid"
)

// SessionService manages the filter selection of each dashboard viewer.
type SessionService interface {
	Create(ctx context.Context, req *domain.CreateSessionRequest) (*domain.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	// ApplyFilter applies one interaction to the session's selection and
	// returns the recomputed dashboard.
	ApplyFilter(ctx context.Context, id uuid.UUID, change *domain.FilterChange) (*domain.DashboardView, error)
	Dashboard(ctx context.Context, id uuid.UUID) (*domain.DashboardView, error)
}

type sessionService struct {
	repo     repository.SessionRepository
	datasets dataset.Provider
	charts   ChartService
}

// NewSessionService creates a new SessionService.
func NewSessionService(repo repository.SessionRepository, datasets dataset.Provider, charts ChartService) SessionService {
	return &sessionService{repo: repo, datasets: datasets, charts: charts}
}

func (s *sessionService) Create(ctx context.Context, req *domain.CreateSessionRequest) (*domain.Session, error) {
	var selected []string
	if len(req.PatientIDs) > 0 {
		ds, err := s.datasets.Datasets()
		if err != nil {
			return nil, err
		}
		for _, pid := range req.PatientIDs {
			if !ds.HasPatient(pid) {
				return nil, domain.ErrNotFound
			}
			if !contains(selected, pid) {
				selected = append(selected, pid)
			}
		}
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID: uuid.New(),
		Selection: domain.Selection{
			SelectedPatientIDs: selected,
			Tag:                domain.NewTagFilter(req.Tag),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}

	metrics.ActiveSessions.Inc()
	logging.FromContext(ctx).Debug("Session created", "session_id", session.ID.String(), "tag", session.Selection.Tag.String())
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *sessionService) ApplyFilter(ctx context.Context, id uuid.UUID, change *domain.FilterChange) (*domain.DashboardView, error) {
	// The new view needs the datasets, so refuse the change until they are ready.
	ds, err := s.datasets.Datasets()
	if err != nil {
		return nil, err
	}
	if change.TogglePatientID != nil && !ds.HasPatient(*change.TogglePatientID) {
		return nil, domain.ErrNotFound
	}

	session, err := s.repo.Update(ctx, id, func(sess *domain.Session) error {
		sess.Selection = analysis.ApplyFilter(sess.Selection, *change)
		sess.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.charts.Dashboard(ctx, session.Selection)
}

func (s *sessionService) Dashboard(ctx context.Context, id uuid.UUID) (*domain.DashboardView, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.charts.Dashboard(ctx, session.Selection)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
