// Package tasks persists deadline-bearing tasks scoped to their owning user.
package tasks

import (
	"context"

	"digidiary/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.Task, error)
	GetOwned(ctx context.Context, id, userID int64) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, id, userID int64) error
	CountByUser(ctx context.Context, userID int64) (int64, error)
}
