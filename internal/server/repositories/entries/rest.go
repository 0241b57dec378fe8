package entries

import (
	"context"

	"digidiary/internal/common"
	"digidiary/internal/server/models"
	"digidiary/internal/server/restdata"
)

const resource = "entries"

type RestRepository struct {
	client *restdata.Client
}

func NewRestRepository(client *restdata.Client) *RestRepository {
	return &RestRepository{client: client}
}

func (r *RestRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Entry, error) {
	var rows []*models.Entry
	err := r.client.Query(ctx, resource, restdata.QueryOptions{
		Filters: map[string]any{"user_id": userID},
		OrderBy: "created_at",
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *RestRepository) GetOwned(ctx context.Context, id, userID int64) (*models.Entry, error) {
	var rows []*models.Entry
	err := r.client.Query(ctx, resource, restdata.QueryOptions{
		Filters: map[string]any{"id": id, "user_id": userID},
		Limit:   1,
	}, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, common.ErrNotFound
	}
	return rows[0], nil
}

func (r *RestRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	record := map[string]any{
		"title":   entry.Title,
		"content": entry.Content,
		"user_id": entry.UserID,
	}
	created := &models.Entry{}
	if err := r.client.Insert(ctx, resource, record, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *RestRepository) Update(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	patch := map[string]any{
		"title":   entry.Title,
		"content": entry.Content,
	}
	updated := &models.Entry{}
	err := r.client.Update(ctx, resource,
		map[string]any{"id": entry.ID, "user_id": entry.UserID}, patch, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *RestRepository) Delete(ctx context.Context, id, userID int64) error {
	return r.client.Delete(ctx, resource, map[string]any{"id": id, "user_id": userID})
}

func (r *RestRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	rows, err := r.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}
