package models

import "time"

type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	UserID      int64      `json:"user_id"`
}
