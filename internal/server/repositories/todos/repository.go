// Package todos persists todo items, including the soft-delete trash.
package todos

import (
	"context"

	"digidiary/internal/server/models"
)

type Repository interface {
	// ListActive returns the caller's todos that are not in the trash.
	ListActive(ctx context.Context, userID int64) ([]*models.Todo, error)
	// ListTrash returns the caller's soft-deleted todos.
	ListTrash(ctx context.Context, userID int64) ([]*models.Todo, error)
	GetOwned(ctx context.Context, id, userID int64) (*models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	// Delete removes the row for good (the "permanent" path).
	Delete(ctx context.Context, id, userID int64) error
	CountActive(ctx context.Context, userID int64) (int64, error)
	CountCompleted(ctx context.Context, userID int64) (int64, error)
}
