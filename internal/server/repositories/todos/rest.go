package todos

import (
	"context"

	"digidiary/internal/common"
	"digidiary/internal/server/models"
	"digidiary/internal/server/restdata"
)

const resource = "todos"

type RestRepository struct {
	client *restdata.Client
}

func NewRestRepository(client *restdata.Client) *RestRepository {
	return &RestRepository{client: client}
}

func (r *RestRepository) list(ctx context.Context, filters map[string]any) ([]*models.Todo, error) {
	var rows []*models.Todo
	err := r.client.Query(ctx, resource, restdata.QueryOptions{
		Filters: filters,
		OrderBy: "id",
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *RestRepository) ListActive(ctx context.Context, userID int64) ([]*models.Todo, error) {
	return r.list(ctx, map[string]any{"user_id": userID, "is_deleted": false})
}

func (r *RestRepository) ListTrash(ctx context.Context, userID int64) ([]*models.Todo, error) {
	return r.list(ctx, map[string]any{"user_id": userID, "is_deleted": true})
}

func (r *RestRepository) GetOwned(ctx context.Context, id, userID int64) (*models.Todo, error) {
	rows, err := r.list(ctx, map[string]any{"id": id, "user_id": userID})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, common.ErrNotFound
	}
	return rows[0], nil
}

func (r *RestRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	record := map[string]any{
		"text":      todo.Text,
		"completed": todo.Completed,
		"user_id":   todo.UserID,
	}
	if todo.ExpiryDate != nil {
		record["expiry_date"] = todo.ExpiryDate
	}
	created := &models.Todo{}
	if err := r.client.Insert(ctx, resource, record, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *RestRepository) Update(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	patch := map[string]any{
		"text":        todo.Text,
		"completed":   todo.Completed,
		"is_deleted":  todo.IsDeleted,
		"deleted_at":  todo.DeletedAt,
		"expiry_date": todo.ExpiryDate,
	}
	updated := &models.Todo{}
	err := r.client.Update(ctx, resource,
		map[string]any{"id": todo.ID, "user_id": todo.UserID}, patch, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *RestRepository) Delete(ctx context.Context, id, userID int64) error {
	return r.client.Delete(ctx, resource, map[string]any{"id": id, "user_id": userID})
}

func (r *RestRepository) CountActive(ctx context.Context, userID int64) (int64, error) {
	rows, err := r.list(ctx, map[string]any{"user_id": userID, "is_deleted": false, "completed": false})
	if err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}

func (r *RestRepository) CountCompleted(ctx context.Context, userID int64) (int64, error) {
	rows, err := r.list(ctx, map[string]any{"user_id": userID, "is_deleted": false, "completed": true})
	if err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}
