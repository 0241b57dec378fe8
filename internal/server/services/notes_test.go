package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digidiary/internal/common"
	"digidiary/internal/logging"
	"digidiary/internal/server/models"
)

type fakeNoteRepo struct {
	nextID    int64
	rows      map[int64]*models.Note
	createErr error
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{rows: map[int64]*models.Note{}}
}

func (r *fakeNoteRepo) ListByUser(_ context.Context, userID int64) ([]*models.Note, error) {
	var out []*models.Note
	for _, n := range r.rows {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) GetOwned(_ context.Context, id, userID int64) (*models.Note, error) {
	n, ok := r.rows[id]
	if !ok || n.UserID != userID {
		return nil, common.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNoteRepo) Create(_ context.Context, note *models.Note) (*models.Note, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	cp := *note
	cp.ID = r.nextID
	r.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeNoteRepo) Update(_ context.Context, note *models.Note) (*models.Note, error) {
	old, ok := r.rows[note.ID]
	if !ok || old.UserID != note.UserID {
		return nil, common.ErrNotFound
	}
	cp := *note
	r.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id, userID int64) error {
	n, ok := r.rows[id]
	if !ok || n.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeNoteRepo) CountByUser(_ context.Context, userID int64) (int64, error) {
	items, _ := r.ListByUser(nil, userID)
	return int64(len(items)), nil
}

type fakeBlobStore struct {
	objects map[string][]byte
	deleted []string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}}
}

func (b *fakeBlobStore) Put(_ context.Context, key string, data []byte, _ string) error {
	b.objects[key] = data
	return nil
}

func (b *fakeBlobStore) Get(_ context.Context, key string) ([]byte, string, error) {
	data, ok := b.objects[key]
	if !ok {
		return nil, "", common.ErrNotFound
	}
	return data, "", nil
}

func (b *fakeBlobStore) Delete(_ context.Context, key string) error {
	delete(b.objects, key)
	b.deleted = append(b.deleted, key)
	return nil
}

func newNoteService() (*NoteService, *fakeNoteRepo, *fakeBlobStore) {
	repo := newFakeNoteRepo()
	blobs := newFakeBlobStore()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	return NewNoteService(repo, blobs, logger), repo, blobs
}

func TestNoteCreateCompensatesFailedMetadataWrite(t *testing.T) {
	ctx := context.Background()
	svc, repo, blobs := newNoteService()

	blobs.objects["clip.webm"] = []byte("audio")
	repo.createErr = errors.New("store down")

	_, err := svc.Create(ctx, 1, NoteInput{Title: "voice memo", AudioFilename: "clip.webm"})
	require.Error(t, err)

	// the uploaded blob was cleaned up
	assert.Contains(t, blobs.deleted, "clip.webm")
	assert.Empty(t, blobs.objects)
}

func TestNoteDeleteCleansUpAudio(t *testing.T) {
	ctx := context.Background()
	svc, _, blobs := newNoteService()

	blobs.objects["clip.webm"] = []byte("audio")
	note, err := svc.Create(ctx, 1, NoteInput{Title: "voice memo", AudioFilename: "clip.webm"})
	require.NoError(t, err)
	require.True(t, note.HasAudio)

	require.NoError(t, svc.Delete(ctx, 1, note.ID))
	assert.Contains(t, blobs.deleted, "clip.webm")
}

func TestUploadAudioNamesByExtension(t *testing.T) {
	ctx := context.Background()
	svc, _, blobs := newNoteService()

	filename, size, contentType, err := svc.UploadAudio(ctx, "My Recording.MP3", []byte("bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".mp3"), filename)
	assert.NotContains(t, filename, "My Recording")
	assert.Equal(t, int64(5), size)
	assert.Equal(t, "audio/mpeg", contentType)
	assert.Contains(t, blobs.objects, filename)

	// missing extension falls back to the recorder default
	filename, _, contentType, err = svc.UploadAudio(ctx, "raw", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".webm"), filename)
	assert.Equal(t, "audio/webm", contentType)
}

func TestAudioContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.mp3", "audio/mpeg"},
		{"a.wav", "audio/wav"},
		{"a.ogg", "audio/ogg"},
		{"a.m4a", "audio/mp4"},
		{"a.webm", "audio/webm"},
		{"a.unknownext", "application/octet-stream"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AudioContentType(tt.filename), tt.filename)
	}
}
