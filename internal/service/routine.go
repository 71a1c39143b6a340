package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"skintel.app/core/common/id"
	"skintel.app/core/common/logger"
	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/model"
	"skintel.app/core/internal/queue"
	"skintel.app/core/internal/store"
)

var ErrRoutineNotFound = errors.New("routine not found")

// WeeklyPatchParams is the merge-patch accepted for a weekly routine. Nil
// fields are left untouched.
type WeeklyPatchParams struct {
	RecommendedDays []string              `json:"recommended_days,omitempty"`
	Intensity       *string               `json:"intensity,omitempty"`
	OptionalSteps   []engine.OptionalStep `json:"optional_steps,omitempty"`
}

type WeeklyRoutineResult struct {
	Routine  *model.WeeklyRoutine
	Progress engine.Progress
}

type RoutineService interface {
	// MonthlyFor returns the user's routine for the current month, deriving
	// and persisting it on first access. Concurrent first calls converge on
	// one row through the period uniqueness constraint.
	MonthlyFor(ctx context.Context, userID int64, now time.Time) (*model.MonthlyRoutine, error)
	// WeeklyFor does the same for the current week, including progress.
	WeeklyFor(ctx context.Context, userID int64, now time.Time) (*WeeklyRoutineResult, error)
	UpdateWeekly(ctx context.Context, userID int64, patch WeeklyPatchParams, now time.Time) (*WeeklyRoutineResult, error)
	// Rebalance rotates the week's recommended days to the next fixed set.
	Rebalance(ctx context.Context, userID int64, now time.Time) (*WeeklyRoutineResult, error)
	RecordCheckin(ctx context.Context, userID int64, at time.Time) (*WeeklyRoutineResult, error)
}

type routineService struct {
	txRunner TxRunner
	analysis AnalysisService
	producer queue.Producer
	registry *engine.Registry
	logger   *slog.Logger
}

func NewRoutineService(txRunner TxRunner, analysis AnalysisService, producer queue.Producer, registry *engine.Registry, log *slog.Logger) RoutineService {
	if log == nil {
		log = slog.Default()
	}
	return &routineService{
		txRunner: txRunner,
		analysis: analysis,
		producer: producer,
		registry: registry,
		logger:   log,
	}
}

func (s *routineService) MonthlyFor(ctx context.Context, userID int64, now time.Time) (*model.MonthlyRoutine, error) {
	periodKey := engine.MonthKey(now)

	var existing *model.MonthlyRoutine
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		existing, err = sp.Routines().GetMonthly(ctx, userID, periodKey)
		return err
	})
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("fetching monthly routine: %w", err)
	}

	input, err := s.deriveInput(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	plan := engine.DeriveMonthlyPlan(input, s.registry)

	var routine *model.MonthlyRoutine
	var created bool
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		routine, created, err = sp.Routines().CreateOrGetMonthly(ctx, &model.MonthlyRoutine{
			ID:        id.New(),
			UserID:    userID,
			PeriodKey: plan.PeriodKey,
			Goal:      plan.Goal,
			Summary:   plan.Summary,
			Cautions:  plan.Cautions,
			Habits:    plan.Habits,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("creating monthly routine: %w", err)
	}

	if created {
		s.logger.InfoContext(ctx, "monthly routine derived", "user_id", userID, "period_key", plan.PeriodKey)
	}
	return routine, nil
}

func (s *routineService) WeeklyFor(ctx context.Context, userID int64, now time.Time) (*WeeklyRoutineResult, error) {
	routine, _, err := s.ensureWeekly(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	return s.withProgress(ctx, routine)
}

func (s *routineService) UpdateWeekly(ctx context.Context, userID int64, patch WeeklyPatchParams, now time.Time) (*WeeklyRoutineResult, error) {
	routine, _, err := s.ensureWeekly(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	plan, err := planFromModel(routine)
	if err != nil {
		return nil, err
	}

	enginePatch := engine.WeeklyPatch{
		RecommendedDays: patch.RecommendedDays,
		OptionalSteps:   patch.OptionalSteps,
	}
	if patch.Intensity != nil {
		intensity := engine.Intensity(*patch.Intensity)
		switch intensity {
		case engine.IntensityGentle, engine.IntensityStandard, engine.IntensityFocus:
		default:
			return nil, fmt.Errorf("unknown intensity %q", *patch.Intensity)
		}
		enginePatch.Intensity = &intensity
	}

	updated, err := s.saveWeeklyPlan(ctx, routine, engine.ApplyWeeklyPatch(plan, enginePatch), routine.RebalanceCount)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "weekly routine updated", "user_id", userID, "period_key", updated.PeriodKey)
	return s.withProgress(ctx, updated)
}

func (s *routineService) Rebalance(ctx context.Context, userID int64, now time.Time) (*WeeklyRoutineResult, error) {
	routine, _, err := s.ensureWeekly(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	plan, err := planFromModel(routine)
	if err != nil {
		return nil, err
	}

	step := int(routine.RebalanceCount) + 1
	plan.RecommendedDays = engine.RotateDays(userID, routine.WeekStart, step, s.registry)

	updated, err := s.saveWeeklyPlan(ctx, routine, plan, routine.RebalanceCount+1)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "weekly routine rebalanced",
		"user_id", userID,
		"period_key", updated.PeriodKey,
		"rebalance_count", updated.RebalanceCount)
	return s.withProgress(ctx, updated)
}

func (s *routineService) RecordCheckin(ctx context.Context, userID int64, at time.Time) (*WeeklyRoutineResult, error) {
	routine, _, err := s.ensureWeekly(ctx, userID, at)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(userID),
		RoutineID: logger.Ptr(routine.ID),
	})

	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		_, err := sp.Checkins().Create(ctx, &model.RoutineCheckin{
			ID:        id.New(),
			UserID:    userID,
			RoutineID: routine.ID,
			CheckedAt: at,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("recording check-in: %w", err)
	}

	routineID := routine.ID
	if err := s.producer.Enqueue(ctx, queue.Task{
		TaskType:  queue.TaskTypeCheckinRecorded,
		UserID:    userID,
		RoutineID: &routineID,
		PeriodKey: routine.PeriodKey,
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to enqueue check-in task", "error", err)
	}

	s.logger.InfoContext(ctx, "check-in recorded")
	return s.withProgress(ctx, routine)
}

// ensureWeekly returns the current week's routine, deriving it on first
// access. The bool reports whether this call created it.
func (s *routineService) ensureWeekly(ctx context.Context, userID int64, now time.Time) (*model.WeeklyRoutine, bool, error) {
	periodKey := engine.WeekKey(now)

	var existing *model.WeeklyRoutine
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		existing, err = sp.Routines().GetWeekly(ctx, userID, periodKey)
		return err
	})
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, fmt.Errorf("fetching weekly routine: %w", err)
	}

	input, err := s.deriveInput(ctx, userID, now)
	if err != nil {
		return nil, false, err
	}
	plan := engine.DeriveWeeklyPlan(input, s.registry)

	proposed, err := planToModel(userID, plan)
	if err != nil {
		return nil, false, err
	}

	var routine *model.WeeklyRoutine
	var created bool
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		routine, created, err = sp.Routines().CreateOrGetWeekly(ctx, proposed)
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("creating weekly routine: %w", err)
	}

	if created {
		s.logger.InfoContext(ctx, "weekly routine derived", "user_id", userID, "period_key", plan.PeriodKey)
	}
	return routine, created, nil
}

// deriveInput gathers everything routine derivation consults. A user without
// any capture session still gets a routine from registry defaults.
func (s *routineService) deriveInput(ctx context.Context, userID int64, now time.Time) (engine.DeriveInput, error) {
	input := engine.DeriveInput{Now: now}

	var user *model.User
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		user, err = sp.Users().GetByID(ctx, userID)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return engine.DeriveInput{}, ErrUserNotFound
		}
		return engine.DeriveInput{}, fmt.Errorf("fetching user: %w", err)
	}
	if user.TopConcern != nil {
		input.ProfileConcern = engine.NeedTag(*user.TopConcern)
	}

	analysis, err := s.analysis.Analyze(ctx, userID)
	switch {
	case err == nil:
		input.Needs = analysis.Needs
		input.Items = analysis.ReportItems
		input.Tips = analysis.Narrative.Tips
	case errors.Is(err, ErrMissingSession):
		// Registry defaults carry the routine until the first session lands.
	default:
		return engine.DeriveInput{}, err
	}

	return input, nil
}

func (s *routineService) saveWeeklyPlan(ctx context.Context, routine *model.WeeklyRoutine, plan engine.WeeklyPlan, rebalanceCount int32) (*model.WeeklyRoutine, error) {
	optionalSteps, err := json.Marshal(plan.OptionalSteps)
	if err != nil {
		return nil, fmt.Errorf("encoding optional steps: %w", err)
	}
	actions, err := json.Marshal(plan.Actions)
	if err != nil {
		return nil, fmt.Errorf("encoding actions: %w", err)
	}

	updated := *routine
	updated.FocusTopic = plan.FocusTopic
	updated.FocusReason = plan.FocusReason
	updated.Conclusion = plan.Conclusion
	updated.RecommendedDays = plan.RecommendedDays
	updated.Intensity = string(plan.Intensity)
	updated.OptionalSteps = optionalSteps
	updated.Actions = actions
	updated.Warnings = plan.Warnings
	updated.RebalanceCount = rebalanceCount

	var saved *model.WeeklyRoutine
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		saved, err = sp.Routines().UpdateWeeklyPlan(ctx, &updated)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, fmt.Errorf("saving weekly routine: %w", err)
	}
	return saved, nil
}

func (s *routineService) withProgress(ctx context.Context, routine *model.WeeklyRoutine) (*WeeklyRoutineResult, error) {
	var checkins []model.RoutineCheckin
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		checkins, err = sp.Checkins().ListByRoutine(ctx, routine.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing check-ins: %w", err)
	}

	times := make([]time.Time, 0, len(checkins))
	for _, c := range checkins {
		times = append(times, c.CheckedAt)
	}

	return &WeeklyRoutineResult{
		Routine:  routine,
		Progress: engine.ComputeProgress(times, routine.WeekStart, routine.WeekEnd, len(routine.RecommendedDays)),
	}, nil
}

// planFromModel rebuilds the engine view of a persisted weekly routine.
func planFromModel(routine *model.WeeklyRoutine) (engine.WeeklyPlan, error) {
	var optionalSteps []engine.OptionalStep
	if len(routine.OptionalSteps) > 0 {
		if err := json.Unmarshal(routine.OptionalSteps, &optionalSteps); err != nil {
			return engine.WeeklyPlan{}, fmt.Errorf("decoding optional steps: %w", err)
		}
	}
	var actions []engine.RoutineAction
	if len(routine.Actions) > 0 {
		if err := json.Unmarshal(routine.Actions, &actions); err != nil {
			return engine.WeeklyPlan{}, fmt.Errorf("decoding actions: %w", err)
		}
	}

	return engine.WeeklyPlan{
		PeriodKey:       routine.PeriodKey,
		WeekStart:       routine.WeekStart,
		WeekEnd:         routine.WeekEnd,
		FocusTopic:      routine.FocusTopic,
		FocusReason:     routine.FocusReason,
		Conclusion:      routine.Conclusion,
		RecommendedDays: routine.RecommendedDays,
		Intensity:       engine.Intensity(routine.Intensity),
		OptionalSteps:   optionalSteps,
		BaseRoutine:     routine.BaseRoutine,
		Actions:         actions,
		Warnings:        routine.Warnings,
	}, nil
}

func planToModel(userID int64, plan engine.WeeklyPlan) (*model.WeeklyRoutine, error) {
	optionalSteps, err := json.Marshal(plan.OptionalSteps)
	if err != nil {
		return nil, fmt.Errorf("encoding optional steps: %w", err)
	}
	actions, err := json.Marshal(plan.Actions)
	if err != nil {
		return nil, fmt.Errorf("encoding actions: %w", err)
	}

	return &model.WeeklyRoutine{
		ID:              id.New(),
		UserID:          userID,
		PeriodKey:       plan.PeriodKey,
		WeekStart:       plan.WeekStart,
		WeekEnd:         plan.WeekEnd,
		FocusTopic:      plan.FocusTopic,
		FocusReason:     plan.FocusReason,
		Conclusion:      plan.Conclusion,
		RecommendedDays: plan.RecommendedDays,
		Intensity:       string(plan.Intensity),
		OptionalSteps:   optionalSteps,
		BaseRoutine:     plan.BaseRoutine,
		Actions:         actions,
		Warnings:        plan.Warnings,
	}, nil
}
