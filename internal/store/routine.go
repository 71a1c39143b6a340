package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"skintel.app/core/core/db/sqlc"
	"skintel.app/core/internal/model"
)

type routineStore struct {
	queries *sqlc.Queries
}

func newRoutineStore(queries *sqlc.Queries) RoutineStore {
	return &routineStore{queries: queries}
}

func (s *routineStore) CreateOrGetMonthly(ctx context.Context, routine *model.MonthlyRoutine) (*model.MonthlyRoutine, bool, error) {
	row, err := s.queries.UpsertMonthlyRoutine(ctx, sqlc.UpsertMonthlyRoutineParams{
		ID:        routine.ID,
		UserID:    routine.UserID,
		PeriodKey: routine.PeriodKey,
		Goal:      routine.Goal,
		Summary:   routine.Summary,
		Cautions:  routine.Cautions,
		Habits:    routine.Habits,
	})
	if err != nil {
		return nil, false, err
	}
	created := row.ID == routine.ID
	return toMonthlyRoutineModel(row), created, nil
}

func (s *routineStore) GetMonthly(ctx context.Context, userID int64, periodKey string) (*model.MonthlyRoutine, error) {
	row, err := s.queries.GetMonthlyRoutine(ctx, sqlc.GetMonthlyRoutineParams{
		UserID:    userID,
		PeriodKey: periodKey,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMonthlyRoutineModel(row), nil
}

func (s *routineStore) CreateOrGetWeekly(ctx context.Context, routine *model.WeeklyRoutine) (*model.WeeklyRoutine, bool, error) {
	row, err := s.queries.UpsertWeeklyRoutine(ctx, sqlc.UpsertWeeklyRoutineParams{
		ID:              routine.ID,
		UserID:          routine.UserID,
		PeriodKey:       routine.PeriodKey,
		WeekStart:       pgtype.Date{Time: routine.WeekStart, Valid: true},
		WeekEnd:         pgtype.Date{Time: routine.WeekEnd, Valid: true},
		FocusTopic:      routine.FocusTopic,
		FocusReason:     routine.FocusReason,
		Conclusion:      routine.Conclusion,
		RecommendedDays: routine.RecommendedDays,
		Intensity:       routine.Intensity,
		OptionalSteps:   rawOrEmptyArray(routine.OptionalSteps),
		BaseRoutine:     routine.BaseRoutine,
		Actions:         rawOrEmptyArray(routine.Actions),
		Warnings:        routine.Warnings,
	})
	if err != nil {
		return nil, false, err
	}
	created := row.ID == routine.ID
	return toWeeklyRoutineModel(row), created, nil
}

func (s *routineStore) GetWeekly(ctx context.Context, userID int64, periodKey string) (*model.WeeklyRoutine, error) {
	row, err := s.queries.GetWeeklyRoutine(ctx, sqlc.GetWeeklyRoutineParams{
		UserID:    userID,
		PeriodKey: periodKey,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toWeeklyRoutineModel(row), nil
}

func (s *routineStore) GetWeeklyByID(ctx context.Context, id int64) (*model.WeeklyRoutine, error) {
	row, err := s.queries.GetWeeklyRoutineByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toWeeklyRoutineModel(row), nil
}

func (s *routineStore) UpdateWeeklyPlan(ctx context.Context, routine *model.WeeklyRoutine) (*model.WeeklyRoutine, error) {
	row, err := s.queries.UpdateWeeklyRoutinePlan(ctx, sqlc.UpdateWeeklyRoutinePlanParams{
		ID:              routine.ID,
		FocusTopic:      routine.FocusTopic,
		FocusReason:     routine.FocusReason,
		Conclusion:      routine.Conclusion,
		RecommendedDays: routine.RecommendedDays,
		Intensity:       routine.Intensity,
		OptionalSteps:   rawOrEmptyArray(routine.OptionalSteps),
		Actions:         rawOrEmptyArray(routine.Actions),
		Warnings:        routine.Warnings,
		RebalanceCount:  routine.RebalanceCount,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toWeeklyRoutineModel(row), nil
}

func toMonthlyRoutineModel(row sqlc.MonthlyRoutine) *model.MonthlyRoutine {
	return &model.MonthlyRoutine{
		ID:        row.ID,
		UserID:    row.UserID,
		PeriodKey: row.PeriodKey,
		Goal:      row.Goal,
		Summary:   row.Summary,
		Cautions:  row.Cautions,
		Habits:    row.Habits,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

func toWeeklyRoutineModel(row sqlc.WeeklyRoutine) *model.WeeklyRoutine {
	return &model.WeeklyRoutine{
		ID:              row.ID,
		UserID:          row.UserID,
		PeriodKey:       row.PeriodKey,
		WeekStart:       dateTime(row.WeekStart),
		WeekEnd:         dateTime(row.WeekEnd),
		FocusTopic:      row.FocusTopic,
		FocusReason:     row.FocusReason,
		Conclusion:      row.Conclusion,
		RecommendedDays: row.RecommendedDays,
		Intensity:       row.Intensity,
		OptionalSteps:   json.RawMessage(row.OptionalSteps),
		BaseRoutine:     row.BaseRoutine,
		Actions:         json.RawMessage(row.Actions),
		Warnings:        row.Warnings,
		RebalanceCount:  row.RebalanceCount,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}

func dateTime(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return d.Time
}

func rawOrEmptyArray(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return []byte("[]")
	}
	return []byte(raw)
}
