package services

import (
	"context"
	"time"

	"digidiary/internal/server/models"
	"digidiary/internal/server/repositories/todos"
)

type TodoService struct {
	repo todos.Repository
	now  func() time.Time
}

func NewTodoService(repo todos.Repository) *TodoService {
	return &TodoService{repo: repo, now: time.Now}
}

func (s *TodoService) List(ctx context.Context, userID int64) ([]*models.Todo, error) {
	return s.repo.ListActive(ctx, userID)
}

func (s *TodoService) ListTrash(ctx context.Context, userID int64) ([]*models.Todo, error) {
	return s.repo.ListTrash(ctx, userID)
}

func (s *TodoService) Create(ctx context.Context, userID int64, text string, expiry *time.Time) (*models.Todo, error) {
	return s.repo.Create(ctx, &models.Todo{
		Text:       text,
		ExpiryDate: expiry,
		UserID:     userID,
	})
}

type TodoUpdate struct {
	Text       *string
	Completed  *bool
	ExpiryDate *time.Time
}

func (s *TodoService) Update(ctx context.Context, userID, id int64, upd TodoUpdate) (*models.Todo, error) {
	todo, err := s.repo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if upd.Text != nil {
		todo.Text = *upd.Text
	}
	if upd.Completed != nil {
		todo.Completed = *upd.Completed
	}
	if upd.ExpiryDate != nil {
		todo.ExpiryDate = upd.ExpiryDate
	}
	return s.repo.Update(ctx, todo)
}

// MoveToTrash soft-deletes a todo: it disappears from the active listing and
// shows up under the trash until restored or permanently deleted.
func (s *TodoService) MoveToTrash(ctx context.Context, userID, id int64) (*models.Todo, error) {
	todo, err := s.repo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	todo.IsDeleted = true
	todo.DeletedAt = &now
	return s.repo.Update(ctx, todo)
}

func (s *TodoService) Restore(ctx context.Context, userID, id int64) (*models.Todo, error) {
	todo, err := s.repo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	todo.IsDeleted = false
	todo.DeletedAt = nil
	return s.repo.Update(ctx, todo)
}

func (s *TodoService) DeletePermanent(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}
