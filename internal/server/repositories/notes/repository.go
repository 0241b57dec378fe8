// Package notes persists rich notes and their audio attachment metadata.
package notes

import (
	"context"

	"digidiary/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.Note, error)
	GetOwned(ctx context.Context, id, userID int64) (*models.Note, error)
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	Update(ctx context.Context, note *models.Note) (*models.Note, error)
	Delete(ctx context.Context, id, userID int64) error
	CountByUser(ctx context.Context, userID int64) (int64, error)
}
