package model

import "time"

// RoutineCheckin is one append-only completion record. Progress is always
// recomputed from the full log for a week, never incremented in place.
type RoutineCheckin struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	RoutineID int64     `json:"routine_id"`
	CheckedAt time.Time `json:"checked_at"`
	CreatedAt time.Time `json:"created_at"`
}
