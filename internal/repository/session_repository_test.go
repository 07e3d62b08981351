package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() *domain.Session {
	now := time.Now().UTC()
	return &domain.Session{
		ID:        uuid.New(),
		Selection: domain.Selection{SelectedPatientIDs: []string{"001"}, Tag: domain.NewTagFilter("breakfast")},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemorySessionRepository_CreateAndGet(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()
	s := newSession()

	require.NoError(t, repo.Create(ctx, s))
	assert.ErrorIs(t, repo.Create(ctx, s), domain.ErrInvalidInput)

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	// returned sessions are copies
	got.Selection.SelectedPatientIDs[0] = "999"
	again, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"001"}, again.Selection.SelectedPatientIDs)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemorySessionRepository_Update(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()
	s := newSession()
	require.NoError(t, repo.Create(ctx, s))

	updated, err := repo.Update(ctx, s.ID, func(sess *domain.Session) error {
		sess.Selection.Tag = domain.NewTagFilter("dinner")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "dinner", updated.Selection.Tag.String())

	_, err = repo.Update(ctx, s.ID, func(sess *domain.Session) error {
		sess.Selection.Tag = domain.NewTagFilter("lunch")
		return errors.New("rejected")
	})
	require.Error(t, err)

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "dinner", got.Selection.Tag.String())

	_, err = repo.Update(ctx, uuid.New(), func(*domain.Session) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemorySessionRepository_ConcurrentUpdates(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()
	s := newSession()
	s.Selection.SelectedPatientIDs = nil
	require.NoError(t, repo.Create(ctx, s))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, s.ID, func(sess *domain.Session) error {
				sess.Selection.SelectedPatientIDs = append(sess.Selection.SelectedPatientIDs, "p")
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, got.Selection.SelectedPatientIDs, 50)
}
