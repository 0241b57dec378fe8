package moods

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

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Mood, error) {
	query := `
		SELECT id, mood, date, user_id FROM moods
		WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Mood
	for rows.Next() {
		var item models.Mood
		if err := rows.Scan(&item.ID, &item.Mood, &item.Date, &item.UserID); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetOwned(ctx context.Context, id, userID int64) (*models.Mood, error) {
	query := `SELECT id, mood, date, user_id FROM moods WHERE id = $1 AND user_id = $2`
	mood := &models.Mood{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&mood.ID, &mood.Mood, &mood.Date, &mood.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return mood, nil
}

func (r *PostgresRepository) Create(ctx context.Context, mood *models.Mood) (*models.Mood, error) {
	query := `
		INSERT INTO moods (mood, date, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, mood.Mood, mood.Date, mood.UserID).Scan(&mood.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return mood, nil
}

func (r *PostgresRepository) Update(ctx context.Context, mood *models.Mood) (*models.Mood, error) {
	query := `
		UPDATE moods SET mood = $1, date = $2
		WHERE id = $3 AND user_id = $4
	`
	res, err := r.db.ExecContext(ctx, query, mood.Mood, mood.Date, mood.ID, mood.UserID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return nil, common.ErrNotFound
	}
	return mood, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM moods WHERE id = $1 AND user_id = $2`, id, userID)
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
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM moods WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
