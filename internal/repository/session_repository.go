package repository

import (
	"context"
	"sync"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/google/uuid"
)

// SessionRepository stores dashboard sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	// Update applies fn to the stored session under the repository lock and
	// stores the result.
	Update(ctx context.Context, id uuid.UUID, fn func(*domain.Session) error) (*domain.Session, error)
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
}

// NewMemorySessionRepository keeps sessions in process memory.
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{sessions: make(map[uuid.UUID]*domain.Session)}
}

func (r *memorySessionRepository) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return domain.ErrInvalidInput
	}
	r.sessions[session.ID] = session.Clone()
	return nil
}

func (r *memorySessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session.Clone(), nil
}

func (r *memorySessionRepository) Update(ctx context.Context, id uuid.UUID, fn func(*domain.Session) error) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	updated := stored.Clone()
	if err := fn(updated); err != nil {
		return nil, err
	}
	r.sessions[id] = updated
	return updated.Clone(), nil
}
