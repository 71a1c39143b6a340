package model

import "time"

type CaptureSessionStatus string

const (
	CaptureSessionStatusOpen     CaptureSessionStatus = "open"
	CaptureSessionStatusAnalyzed CaptureSessionStatus = "analyzed"
)

type CaptureSession struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Label      string     `json:"label"`
	Status     string     `json:"status"`
	AnalyzedAt *time.Time `json:"analyzed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type Photo struct {
	ID         int64     `json:"id"`
	SessionID  int64     `json:"session_id"`
	ShotType   string    `json:"shot_type"`
	FocusArea  *string   `json:"focus_area,omitempty"`
	StorageKey string    `json:"storage_key"`
	CapturedAt time.Time `json:"captured_at"`
	CreatedAt  time.Time `json:"created_at"`
}
