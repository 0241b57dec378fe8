package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"digidiary/internal/common"
	"digidiary/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const noteColumns = `id, title, content, category, tags, priority, is_favorite,
	has_audio, audio_filename, audio_duration, audio_size, user_id, created_at, updated_at`

func scanNote(scan func(dest ...any) error) (*models.Note, error) {
	note := &models.Note{}
	err := scan(&note.ID, &note.Title, &note.Content, &note.Category, &note.Tags,
		&note.Priority, &note.IsFavorite, &note.HasAudio, &note.AudioFilename,
		&note.AudioDuration, &note.AudioSize, &note.UserID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Note, error) {
	query := `
		SELECT ` + noteColumns + ` FROM notes
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		note, err := scanNote(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetOwned(ctx context.Context, id, userID int64) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND user_id = $2`
	note, err := scanNote(r.db.QueryRowContext(ctx, query, id, userID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return note, nil
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	query := `
		INSERT INTO notes (title, content, category, tags, priority, is_favorite,
			has_audio, audio_filename, audio_duration, audio_size, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		note.Title, note.Content, note.Category, note.Tags, note.Priority, note.IsFavorite,
		note.HasAudio, note.AudioFilename, note.AudioDuration, note.AudioSize, note.UserID).
		Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return note, nil
}

func (r *PostgresRepository) Update(ctx context.Context, note *models.Note) (*models.Note, error) {
	query := `
		UPDATE notes
		SET title = $1, content = $2, category = $3, tags = $4, priority = $5,
			is_favorite = $6, has_audio = $7, audio_filename = $8,
			audio_duration = $9, audio_size = $10, updated_at = now()
		WHERE id = $11 AND user_id = $12
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		note.Title, note.Content, note.Category, note.Tags, note.Priority,
		note.IsFavorite, note.HasAudio, note.AudioFilename,
		note.AudioDuration, note.AudioSize, note.ID, note.UserID).
		Scan(&note.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return note, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM notes WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
