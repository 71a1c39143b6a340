package model

import (
	"encoding/json"
	"time"
)

type MonthlyRoutine struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PeriodKey string    `json:"period_key"`
	Goal      string    `json:"goal"`
	Summary   []string  `json:"summary"`
	Cautions  string    `json:"cautions"`
	Habits    []string  `json:"habits"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WeeklyRoutine is the persisted weekly plan. Actions and OptionalSteps are
// stored as JSON documents so the narrative collaborator can replace them
// without schema changes.
type WeeklyRoutine struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	PeriodKey       string          `json:"period_key"`
	WeekStart       time.Time       `json:"week_start"`
	WeekEnd         time.Time       `json:"week_end"`
	FocusTopic      string          `json:"focus_topic"`
	FocusReason     string          `json:"focus_reason"`
	Conclusion      string          `json:"conclusion"`
	RecommendedDays []string        `json:"recommended_days"`
	Intensity       string          `json:"intensity"`
	OptionalSteps   json.RawMessage `json:"optional_steps"`
	BaseRoutine     []string        `json:"base_routine"`
	Actions         json.RawMessage `json:"actions"`
	Warnings        []string        `json:"warnings"`
	// RebalanceCount tracks in-week rebalances so day rotation can advance.
	RebalanceCount int32     `json:"rebalance_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
