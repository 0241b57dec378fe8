// Package entries persists diary entries scoped to their owning user.
package entries

import (
	"context"

	"digidiary/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.Entry, error)
	GetOwned(ctx context.Context, id, userID int64) (*models.Entry, error)
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	Update(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	Delete(ctx context.Context, id, userID int64) error
	CountByUser(ctx context.Context, userID int64) (int64, error)
}
