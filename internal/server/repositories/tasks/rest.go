package tasks

import (
	"context"

	"digidiary/internal/common"
	"digidiary/internal/server/models"
	"digidiary/internal/server/restdata"
)

const resource = "tasks"

type RestRepository struct {
	client *restdata.Client
}

func NewRestRepository(client *restdata.Client) *RestRepository {
	return &RestRepository{client: client}
}

func (r *RestRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Task, error) {
	var rows []*models.Task
	err := r.client.Query(ctx, resource, restdata.QueryOptions{
		Filters:   map[string]any{"user_id": userID},
		OrderBy:   "deadline",
		Ascending: true,
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *RestRepository) GetOwned(ctx context.Context, id, userID int64) (*models.Task, error) {
	var rows []*models.Task
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

func (r *RestRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	record := map[string]any{
		"title":        task.Title,
		"description":  task.Description,
		"is_completed": task.IsCompleted,
		"user_id":      task.UserID,
	}
	if task.Deadline != nil {
		record["deadline"] = task.Deadline
	}
	created := &models.Task{}
	if err := r.client.Insert(ctx, resource, record, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *RestRepository) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	patch := map[string]any{
		"title":        task.Title,
		"description":  task.Description,
		"deadline":     task.Deadline,
		"is_completed": task.IsCompleted,
	}
	updated := &models.Task{}
	err := r.client.Update(ctx, resource,
		map[string]any{"id": task.ID, "user_id": task.UserID}, patch, updated)
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
