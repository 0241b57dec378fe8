// Package moods persists daily mood records scoped to their owning user.
package moods

import (
	"context"

	"digidiary/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.Mood, error)
	GetOwned(ctx context.Context, id, userID int64) (*models.Mood, error)
	Create(ctx context.Context, mood *models.Mood) (*models.Mood, error)
	Update(ctx context.Context, mood *models.Mood) (*models.Mood, error)
	Delete(ctx context.Context, id, userID int64) error
	CountByUser(ctx context.Context, userID int64) (int64, error)
}
