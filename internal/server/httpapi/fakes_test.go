package httpapi

import (
	"context"
	"sync"

	"digidiary/internal/common"
	"digidiary/internal/server/models"
	"digidiary/internal/server/repositories/entries"
	"digidiary/internal/server/repositories/moods"
	"digidiary/internal/server/repositories/notes"
	"digidiary/internal/server/repositories/tasks"
	"digidiary/internal/server/repositories/todos"
	"digidiary/internal/server/repositories/users"
)

// memStore is an in-memory RepositoryManager used to exercise the full
// handler stack without a database.
type memStore struct {
	mu sync.Mutex

	nextID    int64
	userRows  map[int64]*models.User
	entryRows map[int64]*models.Entry
	todoRows  map[int64]*models.Todo
	taskRows  map[int64]*models.Task
	moodRows  map[int64]*models.Mood
	noteRows  map[int64]*models.Note
}

func newMemStore() *memStore {
	return &memStore{
		userRows:  map[int64]*models.User{},
		entryRows: map[int64]*models.Entry{},
		todoRows:  map[int64]*models.Todo{},
		taskRows:  map[int64]*models.Task{},
		moodRows:  map[int64]*models.Mood{},
		noteRows:  map[int64]*models.Note{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) Users() users.Repository     { return (*memUsers)(s) }
func (s *memStore) Entries() entries.Repository { return (*memEntries)(s) }
func (s *memStore) Todos() todos.Repository     { return (*memTodos)(s) }
func (s *memStore) Tasks() tasks.Repository     { return (*memTasks)(s) }
func (s *memStore) Moods() moods.Repository     { return (*memMoods)(s) }
func (s *memStore) Notes() notes.Repository     { return (*memNotes)(s) }
func (s *memStore) Close() error                { return nil }

type memUsers memStore

func (s *memUsers) Create(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.userRows {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, common.ErrAlreadyExists
		}
	}
	cp := *user
	cp.ID = (*memStore)(s).id()
	s.userRows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.userRows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (s *memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.userRows {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.userRows {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *memUsers) Update(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.userRows[user.ID]; !ok {
		return nil, common.ErrNotFound
	}
	cp := *user
	s.userRows[cp.ID] = &cp
	out := cp
	return &out, nil
}

type memEntries memStore

func (s *memEntries) ListByUser(_ context.Context, userID int64) ([]*models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Entry
	for _, e := range s.entryRows {
		if e.UserID == userID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memEntries) GetOwned(_ context.Context, id, userID int64) (*models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entryRows[id]
	if !ok || e.UserID != userID {
		return nil, common.ErrNotFound
	}
	out := *e
	return &out, nil
}

func (s *memEntries) Create(_ context.Context, entry *models.Entry) (*models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *entry
	cp.ID = (*memStore)(s).id()
	s.entryRows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *memEntries) Update(_ context.Context, entry *models.Entry) (*models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.entryRows[entry.ID]
	if !ok || old.UserID != entry.UserID {
		return nil, common.ErrNotFound
	}
	cp := *entry
	s.entryRows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *memEntries) Delete(_ context.Context, id, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entryRows[id]
	if !ok || e.UserID != userID {
		return common.ErrNotFound
	}
	delete(s.entryRows, id)
	return nil
}

func (s *memEntries) CountByUser(_ context.Context, userID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, e := range s.entryRows {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

type memTodos memStore

func (s *memTodos) ListActive(_ context.Context, userID int64) ([]*models.Todo, error) {
	return s.list(userID, false)
}

func (s *memTodos) ListTrash(_ context.Context, userID int64) ([]*models.Todo, error) {
	return s.list(userID, true)
}

func (s *memTodos) list(userID int64, deleted bool) ([]*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Todo
	for _, t := range s.todoRows {
		if t.UserID == userID && t.IsDeleted == deleted {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memTodos) GetOwned(_ context.Context, id, userID int64) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.todoRows[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrNotFound
	}
	out := *t
	return &out, nil
}

func (s *memTodos) Create(_ context.Context, todo *models.Todo) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *todo
	cp.ID = (*memStore)(s).id()
	s.todoRows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *memTodos) Update(_ context.Context, todo *models.Todo) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.todoRows[todo.ID]
	if !ok || old.UserID != todo.UserID {
		return nil, common.ErrNotFound
	}
	cp := *todo
	s.todoRows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *memTodos) Delete(_ context.Context, id, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.todoRows[id]
	if !ok || t.UserID != userID {
		return common.ErrNotFound
	}
	delete(s.todoRows, id)
	return nil
}

func (s *memTodos) CountActive(_ context.Context, userID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, t := range s.todoRows {
		if t.UserID == userID && !t.Completed && !t.IsDeleted {
			n++
		}
	}
	return n, nil
}

func (s *memTodos) CountCompleted(_ context.Context, userID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, t := range s.todoRows {
		if t.UserID == userID && t.Completed && !t.IsDeleted {
			n++
		}
	}
	return n, nil
}

type memTasks memStore

func (s *memTasks) ListByUser(_ context.Context, userID int64) ([]*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Task
	for _, t := range s.taskRows {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memTasks) GetOwned(_ context.Context, id, userID int64) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.taskRows[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrNotFound
	}
	out := *t
	return &out, nil
}

func (s *memTasks) Create(_ context.Context, task *models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *task
	cp.ID = (*memStore)(s).id()
	s.taskRows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *memTasks) Update(_ context.Context, task *models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.taskRows[task.ID]
	if !ok || old.UserID != task.UserID {
		return nil, common.ErrNotFound
	}
	cp := *task
	s.taskRows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *memTasks) Delete(_ context.Context, id, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.taskRows[id]
	if !ok || t.UserID != userID {
		return common.ErrNotFound
	}
	delete(s.taskRows, id)
	return nil
}

func (s *memTasks) CountByUser(_ context.Context, userID int64) (int64, error) {
	items, _ := s.ListByUser(nil, userID)
	return int64(len(items)), nil
}

type memMoods memStore

func (s *memMoods) ListByUser(_ context.Context, userID int64) ([]*models.Mood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Mood
	for _, m := range s.moodRows {
		if m.UserID == userID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memMoods) GetOwned(_ context.Context, id, userID int64) (*models.Mood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.moodRows[id]
	if !ok || m.UserID != userID {
		return nil, common.ErrNotFound
	}
	out := *m
	return &out, nil
}

func (s *memMoods) Create(_ context.Context, mood *models.Mood) (*models.Mood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *mood
	cp.ID = (*memStore)(s).id()
	s.moodRows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *memMoods) Update(_ context.Context, mood *models.Mood) (*models.Mood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.moodRows[mood.ID]
	if !ok || old.UserID != mood.UserID {
		return nil, common.ErrNotFound
	}
	cp := *mood
	s.moodRows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *memMoods) Delete(_ context.Context, id, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.moodRows[id]
	if !ok || m.UserID != userID {
		return common.ErrNotFound
	}
	delete(s.moodRows, id)
	return nil
}

func (s *memMoods) CountByUser(_ context.Context, userID int64) (int64, error) {
	items, _ := s.ListByUser(nil, userID)
	return int64(len(items)), nil
}

type memNotes memStore

func (s *memNotes) ListByUser(_ context.Context, userID int64) ([]*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Note
	for _, n := range s.noteRows {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memNotes) GetOwned(_ context.Context, id, userID int64) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.noteRows[id]
	if !ok || n.UserID != userID {
		return nil, common.ErrNotFound
	}
	out := *n
	return &out, nil
}

func (s *memNotes) Create(_ context.Context, note *models.Note) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *note
	cp.ID = (*memStore)(s).id()
	s.noteRows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *memNotes) Update(_ context.Context, note *models.Note) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.noteRows[note.ID]
	if !ok || old.UserID != note.UserID {
		return nil, common.ErrNotFound
	}
	cp := *note
	s.noteRows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *memNotes) Delete(_ context.Context, id, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.noteRows[id]
	if !ok || n.UserID != userID {
		return common.ErrNotFound
	}
	delete(s.noteRows, id)
	return nil
}

func (s *memNotes) CountByUser(_ context.Context, userID int64) (int64, error) {
	items, _ := s.ListByUser(nil, userID)
	return int64(len(items)), nil
}

// memBlobs is an in-memory blob.Store.
type memBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newMemBlobs() *memBlobs {
	return &memBlobs{objects: map[string][]byte{}, types: map[string]string{}}
}

func (b *memBlobs) Put(_ context.Context, key string, data []byte, contentType string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = data
	b.types[key] = contentType
	return nil
}

func (b *memBlobs) Get(_ context.Context, key string) ([]byte, string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[key]
	if !ok {
		return nil, "", common.ErrNotFound
	}
	return data, b.types[key], nil
}

func (b *memBlobs) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, key)
	delete(b.types, key)
	return nil
}
