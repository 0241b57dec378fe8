package models

import "time"

// Note is a rich note with optional audio attachment metadata. The audio
// blob itself lives in object storage under AudioFilename; the row only
// carries its metadata.
type Note struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category,omitempty"`
	Tags       string `json:"tags,omitempty"`
	Priority   string `json:"priority,omitempty"`
	IsFavorite bool   `json:"is_favorite"`

	HasAudio      bool    `json:"has_audio"`
	AudioFilename string  `json:"audio_filename,omitempty"`
	AudioDuration float64 `json:"audio_duration,omitempty"`
	AudioSize     int64   `json:"audio_size,omitempty"`

	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
