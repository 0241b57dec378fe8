package repomanager

import (
	"digidiary/internal/server/repositories/entries"
	"digidiary/internal/server/repositories/moods"
	"digidiary/internal/server/repositories/notes"
	"digidiary/internal/server/repositories/tasks"
	"digidiary/internal/server/repositories/todos"
	"digidiary/internal/server/repositories/users"
	"digidiary/internal/server/restdata"
)

// RestManager serves repositories backed by the hosted REST data service.
type RestManager struct {
	client  *restdata.Client
	users   users.Repository
	entries entries.Repository
	todos   todos.Repository
	tasks   tasks.Repository
	moods   moods.Repository
	notes   notes.Repository
}

func NewRestManager(cfg restdata.Config) *RestManager {
	client := restdata.New(cfg)
	return &RestManager{
		client:  client,
		users:   users.NewRestRepository(client),
		entries: entries.NewRestRepository(client),
		todos:   todos.NewRestRepository(client),
		tasks:   tasks.NewRestRepository(client),
		moods:   moods.NewRestRepository(client),
		notes:   notes.NewRestRepository(client),
	}
}

func (m *RestManager) Users() users.Repository     { return m.users }
func (m *RestManager) Entries() entries.Repository { return m.entries }
func (m *RestManager) Todos() todos.Repository     { return m.todos }
func (m *RestManager) Tasks() tasks.Repository     { return m.tasks }
func (m *RestManager) Moods() moods.Repository     { return m.moods }
func (m *RestManager) Notes() notes.Repository     { return m.notes }

// Close is a no-op; the REST client holds no pooled resources of its own.
func (m *RestManager) Close() error { return nil }
