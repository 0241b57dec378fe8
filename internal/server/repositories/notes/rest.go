package notes

import (
	"context"

	"digidiary/internal/common"
	"digidiary/internal/server/models"
	"digidiary/internal/server/restdata"
)

const resource = "notes"

type RestRepository struct {
	client *restdata.Client
}

func NewRestRepository(client *restdata.Client) *RestRepository {
	return &RestRepository{client: client}
}

func (r *RestRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Note, error) {
	var rows []*models.Note
	err := r.client.Query(ctx, resource, restdata.QueryOptions{
		Filters: map[string]any{"user_id": userID},
		OrderBy: "updated_at",
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *RestRepository) GetOwned(ctx context.Context, id, userID int64) (*models.Note, error) {
	var rows []*models.Note
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

func notePayload(note *models.Note) map[string]any {
	return map[string]any{
		"title":          note.Title,
		"content":        note.Content,
		"category":       note.Category,
		"tags":           note.Tags,
		"priority":       note.Priority,
		"is_favorite":    note.IsFavorite,
		"has_audio":      note.HasAudio,
		"audio_filename": note.AudioFilename,
		"audio_duration": note.AudioDuration,
		"audio_size":     note.AudioSize,
	}
}

func (r *RestRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	record := notePayload(note)
	record["user_id"] = note.UserID
	created := &models.Note{}
	if err := r.client.Insert(ctx, resource, record, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *RestRepository) Update(ctx context.Context, note *models.Note) (*models.Note, error) {
	updated := &models.Note{}
	err := r.client.Update(ctx, resource,
		map[string]any{"id": note.ID, "user_id": note.UserID}, notePayload(note), updated)
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
