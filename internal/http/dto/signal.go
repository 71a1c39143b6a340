package dto

import (
	"time"

	"skintel.app/core/internal/model"
)

type PhotoSignalEntry struct {
	ShotType   string     `json:"shot_type" binding:"required"`
	FocusArea  *string    `json:"focus_area,omitempty"`
	StorageKey string     `json:"storage_key" binding:"required"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

// SessionAnswerEntry deliberately carries no binding tags: malformed answers
// are skipped during ingest, never rejected.
type SessionAnswerEntry struct {
	QuestionKey string `json:"question_key"`
	Answer      string `json:"answer"`
}

type CreateSignalSessionRequest struct {
	UserID  int64                `json:"user_id,string" binding:"required"`
	Label   string               `json:"label,omitempty"`
	Photos  []PhotoSignalEntry   `json:"photos,omitempty" binding:"omitempty,dive"`
	Answers []SessionAnswerEntry `json:"answers,omitempty"`
}

type PhotoResponse struct {
	ID         int64     `json:"id,string"`
	ShotType   string    `json:"shot_type"`
	FocusArea  *string   `json:"focus_area,omitempty"`
	StorageKey string    `json:"storage_key"`
	CapturedAt time.Time `json:"captured_at"`
}

type CreateSignalSessionResponse struct {
	SessionID int64            `json:"session_id,string"`
	Label     string           `json:"label"`
	Status    string           `json:"status"`
	Photos    []PhotoResponse  `json:"photos"`
	Answers   []AnswerResponse `json:"answers"`
}

func ToPhotoResponses(photos []model.Photo) []PhotoResponse {
	out := make([]PhotoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, PhotoResponse{
			ID:         p.ID,
			ShotType:   p.ShotType,
			FocusArea:  p.FocusArea,
			StorageKey: p.StorageKey,
			CapturedAt: p.CapturedAt,
		})
	}
	return out
}
