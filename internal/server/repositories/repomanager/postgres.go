// Postgres flavor of the repository manager: opens the database through the
// pgx stdlib driver and runs embedded goose migrations on startup.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"digidiary/internal/server/migrations"
	"digidiary/internal/server/repositories/entries"
	"digidiary/internal/server/repositories/moods"
	"digidiary/internal/server/repositories/notes"
	"digidiary/internal/server/repositories/tasks"
	"digidiary/internal/server/repositories/todos"
	"digidiary/internal/server/repositories/users"
)

type PostgresManager struct {
	db      *sql.DB
	users   users.Repository
	entries entries.Repository
	todos   todos.Repository
	tasks   tasks.Repository
	moods   moods.Repository
	notes   notes.Repository
}

// gooseUpContext is a seam for testing RunMigrations.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresManager) Users() users.Repository     { return m.users }
func (m *PostgresManager) Entries() entries.Repository { return m.entries }
func (m *PostgresManager) Todos() todos.Repository     { return m.todos }
func (m *PostgresManager) Tasks() tasks.Repository     { return m.tasks }
func (m *PostgresManager) Moods() moods.Repository     { return m.moods }
func (m *PostgresManager) Notes() notes.Repository     { return m.notes }

func (m *PostgresManager) Close() error {
	return m.db.Close()
}

func NewPostgresManager(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{
		db:      db,
		users:   users.NewPostgresRepository(db),
		entries: entries.NewPostgresRepository(db),
		todos:   todos.NewPostgresRepository(db),
		tasks:   tasks.NewPostgresRepository(db),
		moods:   moods.NewPostgresRepository(db),
		notes:   notes.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
