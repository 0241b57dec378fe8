package models

type Mood struct {
	ID     int64  `json:"id"`
	Mood   string `json:"mood"`
	Date   string `json:"date"`
	UserID int64  `json:"user_id"`
}
