package model

import (
	"encoding/json"
	"time"
)

type NarrativeEnvelopeStatus string

const (
	NarrativeEnvelopeStatusReceived NarrativeEnvelopeStatus = "received"
	NarrativeEnvelopeStatusApplied  NarrativeEnvelopeStatus = "applied"
	NarrativeEnvelopeStatusRejected NarrativeEnvelopeStatus = "rejected"
)

// NarrativeEnvelope is an enrichment document delivered by the narrative
// collaborator, kept verbatim for audit alongside its application status.
type NarrativeEnvelope struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	PeriodKey string          `json:"period_key"`
	Payload   json.RawMessage `json:"payload"`
	Status    string          `json:"status"`
	Error     *string         `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
