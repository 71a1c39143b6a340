package dto

import (
	"encoding/json"
	"time"

	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/model"
	"skintel.app/core/internal/service"
)

type MonthlyRoutineResponse struct {
	ID        int64    `json:"id,string"`
	PeriodKey string   `json:"period_key"`
	Goal      string   `json:"goal"`
	Summary   []string `json:"summary"`
	Cautions  string   `json:"cautions"`
	Habits    []string `json:"habits"`
}

func ToMonthlyRoutineResponse(r *model.MonthlyRoutine) *MonthlyRoutineResponse {
	return &MonthlyRoutineResponse{
		ID:        r.ID,
		PeriodKey: r.PeriodKey,
		Goal:      r.Goal,
		Summary:   r.Summary,
		Cautions:  r.Cautions,
		Habits:    r.Habits,
	}
}

type WeeklyRoutineResponse struct {
	ID              int64           `json:"id,string"`
	PeriodKey       string          `json:"period_key"`
	WeekStart       string          `json:"week_start"`
	WeekEnd         string          `json:"week_end"`
	FocusTopic      string          `json:"focus_topic"`
	FocusReason     string          `json:"focus_reason,omitempty"`
	Conclusion      string          `json:"conclusion"`
	RecommendedDays []string        `json:"recommended_days"`
	Intensity       string          `json:"intensity"`
	OptionalSteps   json.RawMessage `json:"optional_steps"`
	BaseRoutine     []string        `json:"base_routine"`
	Actions         json.RawMessage `json:"actions"`
	Warnings        []string        `json:"warnings"`
	RebalanceCount  int32           `json:"rebalance_count"`
	Progress        engine.Progress `json:"progress"`
}

func ToWeeklyRoutineResponse(result *service.WeeklyRoutineResult) *WeeklyRoutineResponse {
	r := result.Routine
	return &WeeklyRoutineResponse{
		ID:              r.ID,
		PeriodKey:       r.PeriodKey,
		WeekStart:       r.WeekStart.Format(time.DateOnly),
		WeekEnd:         r.WeekEnd.Format(time.DateOnly),
		FocusTopic:      r.FocusTopic,
		FocusReason:     r.FocusReason,
		Conclusion:      r.Conclusion,
		RecommendedDays: r.RecommendedDays,
		Intensity:       r.Intensity,
		OptionalSteps:   r.OptionalSteps,
		BaseRoutine:     r.BaseRoutine,
		Actions:         r.Actions,
		Warnings:        r.Warnings,
		RebalanceCount:  r.RebalanceCount,
		Progress:        result.Progress,
	}
}

type PatchWeeklyRoutineRequest struct {
	RecommendedDays []string              `json:"recommended_days,omitempty"`
	Intensity       *string               `json:"intensity,omitempty"`
	OptionalSteps   []engine.OptionalStep `json:"optional_steps,omitempty"`
}

type RecordCheckinRequest struct {
	CheckedAt *time.Time `json:"checked_at,omitempty"`
}
