package moods

import (
	"context"

	"digidiary/internal/common"
	"digidiary/internal/server/models"
	"digidiary/internal/server/restdata"
)

const resource = "moods"

type RestRepository struct {
	client *restdata.Client
}

func NewRestRepository(client *restdata.Client) *RestRepository {
	return &RestRepository{client: client}
}

func (r *RestRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Mood, error) {
	var rows []*models.Mood
	err := r.client.Query(ctx, resource, restdata.QueryOptions{
		Filters: map[string]any{"user_id": userID},
		OrderBy: "date",
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *RestRepository) GetOwned(ctx context.Context, id, userID int64) (*models.Mood, error) {
	var rows []*models.Mood
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

func (r *RestRepository) Create(ctx context.Context, mood *models.Mood) (*models.Mood, error) {
	record := map[string]any{
		"mood":    mood.Mood,
		"date":    mood.Date,
		"user_id": mood.UserID,
	}
	created := &models.Mood{}
	if err := r.client.Insert(ctx, resource, record, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *RestRepository) Update(ctx context.Context, mood *models.Mood) (*models.Mood, error) {
	patch := map[string]any{
		"mood": mood.Mood,
		"date": mood.Date,
	}
	updated := &models.Mood{}
	err := r.client.Update(ctx, resource,
		map[string]any{"id": mood.ID, "user_id": mood.UserID}, patch, updated)
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
