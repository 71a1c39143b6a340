package dto

import (
	"encoding/json"
	"time"

	"skintel.app/core/internal/model"
)

type ReceiveNarrativeRequest struct {
	UserID    int64           `json:"user_id,string" binding:"required"`
	PeriodKey string          `json:"period_key" binding:"required"`
	Payload   json.RawMessage `json:"payload" binding:"required"`
}

type NarrativeEnvelopeResponse struct {
	ID        int64     `json:"id,string"`
	UserID    int64     `json:"user_id,string"`
	PeriodKey string    `json:"period_key"`
	Status    string    `json:"status"`
	Error     *string   `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToNarrativeEnvelopeResponse(env *model.NarrativeEnvelope) *NarrativeEnvelopeResponse {
	return &NarrativeEnvelopeResponse{
		ID:        env.ID,
		UserID:    env.UserID,
		PeriodKey: env.PeriodKey,
		Status:    env.Status,
		Error:     env.Error,
		CreatedAt: env.CreatedAt,
	}
}
