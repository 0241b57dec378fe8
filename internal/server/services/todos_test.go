package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digidiary/internal/common"
	"digidiary/internal/server/models"
)

// fakeTodoRepo keeps rows in a map keyed by id.
type fakeTodoRepo struct {
	nextID int64
	rows   map[int64]*models.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{rows: map[int64]*models.Todo{}}
}

func (r *fakeTodoRepo) ListActive(_ context.Context, userID int64) ([]*models.Todo, error) {
	return r.list(userID, false), nil
}

func (r *fakeTodoRepo) ListTrash(_ context.Context, userID int64) ([]*models.Todo, error) {
	return r.list(userID, true), nil
}

func (r *fakeTodoRepo) list(userID int64, deleted bool) []*models.Todo {
	var out []*models.Todo
	for _, t := range r.rows {
		if t.UserID == userID && t.IsDeleted == deleted {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out
}

func (r *fakeTodoRepo) GetOwned(_ context.Context, id, userID int64) (*models.Todo, error) {
	t, ok := r.rows[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTodoRepo) Create(_ context.Context, todo *models.Todo) (*models.Todo, error) {
	r.nextID++
	cp := *todo
	cp.ID = r.nextID
	r.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeTodoRepo) Update(_ context.Context, todo *models.Todo) (*models.Todo, error) {
	old, ok := r.rows[todo.ID]
	if !ok || old.UserID != todo.UserID {
		return nil, common.ErrNotFound
	}
	cp := *todo
	r.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeTodoRepo) Delete(_ context.Context, id, userID int64) error {
	t, ok := r.rows[id]
	if !ok || t.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeTodoRepo) CountActive(_ context.Context, userID int64) (int64, error) {
	return int64(len(r.list(userID, false))), nil
}

func (r *fakeTodoRepo) CountCompleted(_ context.Context, userID int64) (int64, error) {
	var n int64
	for _, t := range r.rows {
		if t.UserID == userID && t.Completed && !t.IsDeleted {
			n++
		}
	}
	return n, nil
}

func TestTodoTrashTransitions(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo)

	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamp }

	todo, err := svc.Create(ctx, 1, "write tests", nil)
	require.NoError(t, err)
	require.False(t, todo.IsDeleted)

	trashed, err := svc.MoveToTrash(ctx, 1, todo.ID)
	require.NoError(t, err)
	assert.True(t, trashed.IsDeleted)
	require.NotNil(t, trashed.DeletedAt)
	assert.Equal(t, stamp, *trashed.DeletedAt)

	active, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, active)

	trash, err := svc.ListTrash(ctx, 1)
	require.NoError(t, err)
	require.Len(t, trash, 1)

	restored, err := svc.Restore(ctx, 1, todo.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	assert.Nil(t, restored.DeletedAt)

	require.NoError(t, svc.DeletePermanent(ctx, 1, todo.ID))
	assert.Empty(t, repo.rows)
}

func TestTodoOwnershipConflatedWithAbsence(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo)

	todo, err := svc.Create(ctx, 1, "mine", nil)
	require.NoError(t, err)

	// another user's id and a nonexistent id fail identically
	_, err = svc.MoveToTrash(ctx, 2, todo.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.MoveToTrash(ctx, 1, 9999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestTodoUpdatePartialFields(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTodoRepo()
	svc := NewTodoService(repo)

	todo, err := svc.Create(ctx, 1, "original", nil)
	require.NoError(t, err)

	completed := true
	updated, err := svc.Update(ctx, 1, todo.ID, TodoUpdate{Completed: &completed})
	require.NoError(t, err)
	assert.Equal(t, "original", updated.Text)
	assert.True(t, updated.Completed)
}
