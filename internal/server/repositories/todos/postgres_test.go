package todos

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"digidiary/internal/common"
	"digidiary/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const listQ = `(?s)^\s*SELECT\s+id,\s*text,\s*completed,\s*is_deleted,\s*deleted_at,\s*expiry_date,\s*user_id\s+FROM\s+todos\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+is_deleted\s*=\s*\$2\s+ORDER\s+BY\s+id\s+DESC\s*$`

func TestListActive_FiltersDeleted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "text", "completed", "is_deleted", "deleted_at", "expiry_date", "user_id"}).
		AddRow(int64(2), "second", false, false, nil, nil, int64(1)).
		AddRow(int64(1), "first", true, false, nil, nil, int64(1))
	mock.ExpectQuery(listQ).
		WithArgs(int64(1), false).
		WillReturnRows(rows)

	got, err := repo.ListActive(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListActive error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].Text != "first" {
		t.Fatalf("unexpected todos: %+v", got)
	}
}

func TestListTrash_QueriesDeleted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "text", "completed", "is_deleted", "deleted_at", "expiry_date", "user_id"})
	mock.ExpectQuery(listQ).
		WithArgs(int64(1), true).
		WillReturnRows(rows)

	got, err := repo.ListTrash(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListTrash error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty trash, got %+v", got)
	}
}

func TestGetOwned_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+todos\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`).
		WithArgs(int64(5), int64(1)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOwned(context.Background(), 5, 1)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestCreate_ReturnsID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(11))
	mock.ExpectQuery(`(?s)^\s*INSERT\s+INTO\s+todos\s*\(text,\s*completed,\s*expiry_date,\s*user_id\)`).
		WithArgs("buy milk", false, nil, int64(1)).
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &models.Todo{Text: "buy milk", UserID: 1})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 11 {
		t.Fatalf("unexpected id: %d", got.ID)
	}
}

func TestUpdate_ZeroRowsIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*UPDATE\s+todos`).
		WithArgs("text", false, false, nil, nil, int64(5), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), &models.Todo{ID: 5, UserID: 2, Text: "text"})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+todos\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`).
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 5, 1); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+todos`).
		WithArgs(int64(5), int64(1)).
		WillReturnError(errors.New("db down"))

	err := repo.Delete(context.Background(), 5, 1)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestCounts(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+count\(\*\)\s+FROM\s+todos\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+is_deleted\s*=\s*false\s+AND\s+completed\s*=\s*false\s*$`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.CountActive(context.Background(), 1)
	if err != nil || n != 3 {
		t.Fatalf("CountActive = %d, %v", n, err)
	}

	mock.ExpectQuery(`(?s)^SELECT\s+count\(\*\)\s+FROM\s+todos\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+is_deleted\s*=\s*false\s+AND\s+completed\s*=\s*true\s*$`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	n, err = repo.CountCompleted(context.Background(), 1)
	if err != nil || n != 7 {
		t.Fatalf("CountCompleted = %d, %v", n, err)
	}
}
