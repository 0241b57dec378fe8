// Package repomanager wires up the per-resource repositories for a chosen
// storage backend and owns the underlying connection.
package repomanager

import (
	"digidiary/internal/server/repositories/entries"
	"digidiary/internal/server/repositories/moods"
	"digidiary/internal/server/repositories/notes"
	"digidiary/internal/server/repositories/tasks"
	"digidiary/internal/server/repositories/todos"
	"digidiary/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Entries() entries.Repository
	Todos() todos.Repository
	Tasks() tasks.Repository
	Moods() moods.Repository
	Notes() notes.Repository
	Close() error
}
