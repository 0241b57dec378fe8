package services

import (
	"context"

	"digidiary/internal/server/models"
	"digidiary/internal/server/repositories/entries"
)

type EntryService struct {
	repo entries.Repository
}

func NewEntryService(repo entries.Repository) *EntryService {
	return &EntryService{repo: repo}
}

func (s *EntryService) List(ctx context.Context, userID int64) ([]*models.Entry, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *EntryService) Get(ctx context.Context, userID, id int64) (*models.Entry, error) {
	return s.repo.GetOwned(ctx, id, userID)
}

func (s *EntryService) Create(ctx context.Context, userID int64, title, content string) (*models.Entry, error) {
	return s.repo.Create(ctx, &models.Entry{
		Title:   title,
		Content: content,
		UserID:  userID,
	})
}

type EntryUpdate struct {
	Title   *string
	Content *string
}

func (s *EntryService) Update(ctx context.Context, userID, id int64, upd EntryUpdate) (*models.Entry, error) {
	entry, err := s.repo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		entry.Title = *upd.Title
	}
	if upd.Content != nil {
		entry.Content = *upd.Content
	}
	return s.repo.Update(ctx, entry)
}

func (s *EntryService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}
