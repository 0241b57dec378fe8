package todos

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

const todoColumns = `id, text, completed, is_deleted, deleted_at, expiry_date, user_id`

func (r *PostgresRepository) list(ctx context.Context, userID int64, deleted bool) ([]*models.Todo, error) {
	query := `
		SELECT ` + todoColumns + ` FROM todos
		WHERE user_id = $1 AND is_deleted = $2
		ORDER BY id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, deleted)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Todo
	for rows.Next() {
		var item models.Todo
		if err := rows.Scan(&item.ID, &item.Text, &item.Completed, &item.IsDeleted,
			&item.DeletedAt, &item.ExpiryDate, &item.UserID); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) ListActive(ctx context.Context, userID int64) ([]*models.Todo, error) {
	return r.list(ctx, userID, false)
}

func (r *PostgresRepository) ListTrash(ctx context.Context, userID int64) ([]*models.Todo, error) {
	return r.list(ctx, userID, true)
}

func (r *PostgresRepository) GetOwned(ctx context.Context, id, userID int64) (*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1 AND user_id = $2`
	todo := &models.Todo{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&todo.ID, &todo.Text, &todo.Completed, &todo.IsDeleted,
			&todo.DeletedAt, &todo.ExpiryDate, &todo.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return todo, nil
}

func (r *PostgresRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query := `
		INSERT INTO todos (text, completed, expiry_date, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, todo.Text, todo.Completed, todo.ExpiryDate, todo.UserID).
		Scan(&todo.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return todo, nil
}

func (r *PostgresRepository) Update(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query := `
		UPDATE todos
		SET text = $1, completed = $2, is_deleted = $3, deleted_at = $4, expiry_date = $5
		WHERE id = $6 AND user_id = $7
	`
	res, err := r.db.ExecContext(ctx, query, todo.Text, todo.Completed, todo.IsDeleted,
		todo.DeletedAt, todo.ExpiryDate, todo.ID, todo.UserID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := requireOneRow(res); err != nil {
		return nil, err
	}
	return todo, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) CountActive(ctx context.Context, userID int64) (int64, error) {
	return r.count(ctx, `SELECT count(*) FROM todos WHERE user_id = $1 AND is_deleted = false AND completed = false`, userID)
}

func (r *PostgresRepository) CountCompleted(ctx context.Context, userID int64) (int64, error) {
	return r.count(ctx, `SELECT count(*) FROM todos WHERE user_id = $1 AND is_deleted = false AND completed = true`, userID)
}

func (r *PostgresRepository) count(ctx context.Context, query string, userID int64) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
