// Package dataset holds the loaded, read-only datasets and their readiness state.
package dataset

import (
	"context"
	"sync"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/blaisecz/glucose-dashboard/internal/logging"
	"github.com/blaisecz/glucose-dashboard/internal/metrics"
	"github.com/blaisecz/glucose-dashboard/internal/repository"
)

// State is the load state of a Store.
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Provider hands out the loaded datasets once they are ready.
type Provider interface {
	Datasets() (*domain.Datasets, error)
}

// Store loads the datasets once and serves the immutable snapshot afterwards.
type Store struct {
	repo repository.DatasetRepository
	once sync.Once

	mu    sync.RWMutex
	state State
	data  *domain.Datasets
	err   error
}

func NewStore(repo repository.DatasetRepository) *Store {
	return &Store{repo: repo}
}

// Load fetches the datasets. Only the first call does any work; later calls
// return the outcome of the first.
func (s *Store) Load(ctx context.Context) error {
	s.once.Do(func() {
		ds, err := s.repo.Load(ctx)
		if err == nil {
			err = checkNotEmpty(ds)
		}
		s.finish(ds, err)
	})

	_, err := s.Datasets()
	return err
}

func (s *Store) finish(ds *domain.Datasets, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateFailed
		s.err = err
		metrics.DatasetLoadFailures.Inc()
		logging.Error("Failed to load datasets", "error", err)
		return
	}

	s.state = StateReady
	s.data = ds
	metrics.ObserveLoad(len(ds.Glucose), len(ds.Meals))
	logging.Info("Datasets loaded",
		"glucose_readings", len(ds.Glucose),
		"meals", len(ds.Meals),
		"patients", len(ds.PatientIDs()),
	)
}

// Datasets returns the snapshot, ErrNotReady while loading, or the load error.
func (s *Store) Datasets() (*domain.Datasets, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch s.state {
	case StateReady:
		return s.data, nil
	case StateFailed:
		return nil, s.err
	default:
		return nil, domain.ErrNotReady
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func checkNotEmpty(ds *domain.Datasets) error {
	if ds == nil || len(ds.Glucose) == 0 {
		return &domain.DataLoadError{Source: "glucose", Err: &domain.EmptyDatasetError{Dataset: "glucose"}}
	}
	if len(ds.Meals) == 0 {
		return &domain.DataLoadError{Source: "meals", Err: &domain.EmptyDatasetError{Dataset: "meals"}}
	}
	return nil
}
