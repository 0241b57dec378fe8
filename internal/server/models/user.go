// Package models defines server-side data models persisted in the store.
// Every record except User is owned by exactly one user via UserID.
package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserStats aggregates per-user usage counters for the profile page.
type UserStats struct {
	Entries        int64     `json:"entries"`
	TodosActive    int64     `json:"todos_active"`
	TodosCompleted int64     `json:"todos_completed"`
	Tasks          int64     `json:"tasks"`
	Moods          int64     `json:"moods"`
	Notes          int64     `json:"notes"`
	JoinedAt       time.Time `json:"joined_at"`
}
