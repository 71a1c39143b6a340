package model

import "time"

type AnswerScope string

const (
	// AnswerScopeProfile answers persist across sessions as defaults.
	AnswerScopeProfile AnswerScope = "profile"
	// AnswerScopeSession answers belong to one capture session and win over
	// profile answers for the same question key.
	AnswerScopeSession AnswerScope = "session"
)

type Answer struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	SessionID   *int64    `json:"session_id,omitempty"`
	Scope       string    `json:"scope"`
	QuestionKey string    `json:"question_key"`
	Answer      string    `json:"answer"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
