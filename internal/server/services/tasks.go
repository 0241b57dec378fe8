package services

import (
	"context"
	"time"

	"digidiary/internal/server/models"
	"digidiary/internal/server/repositories/tasks"
)

type TaskService struct {
	repo tasks.Repository
}

func NewTaskService(repo tasks.Repository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context, userID int64) ([]*models.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *TaskService) Create(ctx context.Context, userID int64, title, description string, deadline *time.Time) (*models.Task, error) {
	return s.repo.Create(ctx, &models.Task{
		Title:       title,
		Description: description,
		Deadline:    deadline,
		UserID:      userID,
	})
}

type TaskUpdate struct {
	Title       *string
	Description *string
	Deadline    *time.Time
	IsCompleted *bool
}

func (s *TaskService) Update(ctx context.Context, userID, id int64, upd TaskUpdate) (*models.Task, error) {
	task, err := s.repo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.Deadline != nil {
		task.Deadline = upd.Deadline
	}
	if upd.IsCompleted != nil {
		task.IsCompleted = *upd.IsCompleted
	}
	return s.repo.Update(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}
