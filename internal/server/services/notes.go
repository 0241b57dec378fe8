package services

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"digidiary/internal/logging"
	"digidiary/internal/server/blob"
	"digidiary/internal/server/models"
	"digidiary/internal/server/repositories/notes"
)

type NoteService struct {
	repo   notes.Repository
	blobs  blob.Store
	logger logging.Logger
}

func NewNoteService(repo notes.Repository, blobs blob.Store, logger logging.Logger) *NoteService {
	return &NoteService{repo: repo, blobs: blobs, logger: logger}
}

func (s *NoteService) List(ctx context.Context, userID int64) ([]*models.Note, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NoteService) Get(ctx context.Context, userID, id int64) (*models.Note, error) {
	return s.repo.GetOwned(ctx, id, userID)
}

// NoteInput carries the writable note fields.
type NoteInput struct {
	Title    string
	Content  string
	Category string
	Tags     string
	Priority string

	AudioFilename string
	AudioDuration float64
	AudioSize     int64
}

// Create writes the metadata row. If the note references an already-uploaded
// audio blob and the row write fails, the blob is deleted as a compensating
// action so no orphan is left behind.
func (s *NoteService) Create(ctx context.Context, userID int64, in NoteInput) (*models.Note, error) {
	note := &models.Note{
		Title:         in.Title,
		Content:       in.Content,
		Category:      in.Category,
		Tags:          in.Tags,
		Priority:      in.Priority,
		HasAudio:      in.AudioFilename != "",
		AudioFilename: in.AudioFilename,
		AudioDuration: in.AudioDuration,
		AudioSize:     in.AudioSize,
		UserID:        userID,
	}

	created, err := s.repo.Create(ctx, note)
	if err != nil {
		if note.HasAudio {
			if delErr := s.blobs.Delete(ctx, note.AudioFilename); delErr != nil {
				s.logger.Warn(ctx, "orphaned audio blob after failed note create",
					"filename", note.AudioFilename, "error", delErr)
			}
		}
		return nil, err
	}
	return created, nil
}

type NoteUpdate struct {
	Title    *string
	Content  *string
	Category *string
	Tags     *string
	Priority *string
}

func (s *NoteService) Update(ctx context.Context, userID, id int64, upd NoteUpdate) (*models.Note, error) {
	note, err := s.repo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		note.Title = *upd.Title
	}
	if upd.Content != nil {
		note.Content = *upd.Content
	}
	if upd.Category != nil {
		note.Category = *upd.Category
	}
	if upd.Tags != nil {
		note.Tags = *upd.Tags
	}
	if upd.Priority != nil {
		note.Priority = *upd.Priority
	}
	return s.repo.Update(ctx, note)
}

func (s *NoteService) ToggleFavorite(ctx context.Context, userID, id int64) (*models.Note, error) {
	note, err := s.repo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	note.IsFavorite = !note.IsFavorite
	return s.repo.Update(ctx, note)
}

// Delete removes the row and then the audio blob, if any. The blob delete is
// best-effort: a stale object is preferable to a delete that half-fails
// after the row is already gone.
func (s *NoteService) Delete(ctx context.Context, userID, id int64) error {
	note, err := s.repo.GetOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	if note.HasAudio {
		if err := s.blobs.Delete(ctx, note.AudioFilename); err != nil {
			s.logger.Warn(ctx, "audio blob cleanup failed",
				"filename", note.AudioFilename, "error", err)
		}
	}
	return nil
}

// UploadAudio stores an audio payload under a fresh server-side name and
// returns the stored filename, size, and content type.
func (s *NoteService) UploadAudio(ctx context.Context, originalName string, data []byte) (string, int64, string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".webm"
	}
	filename := uuid.NewString() + ext
	contentType := AudioContentType(filename)

	if err := s.blobs.Put(ctx, filename, data, contentType); err != nil {
		return "", 0, "", fmt.Errorf("store audio: %w", err)
	}
	return filename, int64(len(data)), contentType, nil
}

// GetAudio fetches a stored audio payload by its server-side filename.
func (s *NoteService) GetAudio(ctx context.Context, filename string) ([]byte, string, error) {
	data, contentType, err := s.blobs.Get(ctx, filename)
	if err != nil {
		return nil, "", err
	}
	if contentType == "" {
		contentType = AudioContentType(filename)
	}
	return data, contentType, nil
}

// AudioContentType infers a content type from the filename extension,
// defaulting to webm (the browser recorder's native container).
func AudioContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".ogg":
		return "audio/ogg"
	case ".m4a":
		return "audio/mp4"
	case ".webm":
		return "audio/webm"
	default:
		if t := mime.TypeByExtension(filepath.Ext(filename)); t != "" {
			return t
		}
		return "application/octet-stream"
	}
}
