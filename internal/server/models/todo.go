package models

import "time"

// Todo supports a soft-delete lifecycle: deleting an active todo marks
// IsDeleted and stamps DeletedAt, restore clears both, and a permanent
// delete removes the row.
type Todo struct {
	ID         int64      `json:"id"`
	Text       string     `json:"text"`
	Completed  bool       `json:"completed"`
	IsDeleted  bool       `json:"is_deleted"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	UserID     int64      `json:"user_id"`
}
