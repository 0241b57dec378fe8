package users

import (
	"context"
	"fmt"
	"time"

	"digidiary/internal/common"
	"digidiary/internal/server/models"
	"digidiary/internal/server/restdata"
)

const resource = "users"

// userRow mirrors models.User for decoding REST backend reads. A separate
// DTO is needed because the password column must cross the wire here while
// models.User never serializes it.
type userRow struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (row *userRow) toModel() *models.User {
	return &models.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.Password,
		Avatar:       row.Avatar,
		Bio:          row.Bio,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

// userPayload builds the write payload. The id and created_at stay out of
// it: the store owns both, and a serialized zero time.Time would overwrite
// created_at with year 1.
func userPayload(user *models.User) map[string]any {
	return map[string]any{
		"username": user.Username,
		"email":    user.Email,
		"password": user.PasswordHash,
		"avatar":   user.Avatar,
		"bio":      user.Bio,
	}
}

type RestRepository struct {
	client *restdata.Client
}

func NewRestRepository(client *restdata.Client) *RestRepository {
	return &RestRepository{client: client}
}

func (r *RestRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	created := &userRow{}
	if err := r.client.Insert(ctx, resource, userPayload(user), created); err != nil {
		return nil, err
	}
	return created.toModel(), nil
}

func (r *RestRepository) getOne(ctx context.Context, filters map[string]any) (*models.User, error) {
	var rows []userRow
	err := r.client.Query(ctx, resource, restdata.QueryOptions{Filters: filters, Limit: 1}, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, common.ErrNotFound
	}
	return rows[0].toModel(), nil
}

func (r *RestRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, map[string]any{"id": id})
}

func (r *RestRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, map[string]any{"username": username})
}

func (r *RestRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, map[string]any{"email": email})
}

func (r *RestRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	patch := userPayload(user)
	patch["updated_at"] = time.Now().UTC()
	updated := &userRow{}
	err := r.client.Update(ctx, resource, map[string]any{"id": user.ID}, patch, updated)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated.toModel(), nil
}
