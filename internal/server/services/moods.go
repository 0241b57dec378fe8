package services

import (
	"context"

	"digidiary/internal/server/models"
	"digidiary/internal/server/repositories/moods"
)

type MoodService struct {
	repo moods.Repository
}

func NewMoodService(repo moods.Repository) *MoodService {
	return &MoodService{repo: repo}
}

func (s *MoodService) List(ctx context.Context, userID int64) ([]*models.Mood, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *MoodService) Create(ctx context.Context, userID int64, mood, date string) (*models.Mood, error) {
	return s.repo.Create(ctx, &models.Mood{
		Mood:   mood,
		Date:   date,
		UserID: userID,
	})
}

type MoodUpdate struct {
	Mood *string
	Date *string
}

func (s *MoodService) Update(ctx context.Context, userID, id int64, upd MoodUpdate) (*models.Mood, error) {
	mood, err := s.repo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if upd.Mood != nil {
		mood.Mood = *upd.Mood
	}
	if upd.Date != nil {
		mood.Date = *upd.Date
	}
	return s.repo.Update(ctx, mood)
}

func (s *MoodService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}
