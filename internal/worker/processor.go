package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"skintel.app/core/common/logger"
	"skintel.app/core/internal/queue"
	"skintel.app/core/internal/service"
)

// taskProcessor routes stream tasks to the services that consume them.
type taskProcessor struct {
	routines   service.RoutineService
	narratives service.NarrativeService
	now        func() time.Time
}

func NewTaskProcessor(routines service.RoutineService, narratives service.NarrativeService) TaskProcessor {
	return &taskProcessor{
		routines:   routines,
		narratives: narratives,
		now:        time.Now,
	}
}

func (p *taskProcessor) Process(ctx context.Context, msg queue.Message) error {
	fields := logger.LogFields{
		UserID:    logger.Ptr(msg.UserID),
		Component: "skintel.worker.processor",
	}
	if msg.PeriodKey != "" {
		fields.PeriodKey = logger.Ptr(msg.PeriodKey)
	}
	ctx = logger.WithLogFields(ctx, fields)

	switch msg.TaskType {
	case queue.TaskTypeAnalysisCompleted:
		return p.warmRoutines(ctx, msg)
	case queue.TaskTypeCheckinRecorded:
		// Progress is recomputed from the check-in log on every read, so the
		// task carries no work beyond the audit trail.
		slog.InfoContext(ctx, "check-in recorded", "routine_id", msg.RoutineID)
		return nil
	case queue.TaskTypeNarrativeEnriched:
		return p.narratives.Apply(ctx, *msg.EnvelopeID)
	default:
		return fmt.Errorf("unhandled task type %q", msg.TaskType)
	}
}

// warmRoutines derives the current month's and week's routines right after an
// analysis lands, so the first routine read doesn't pay the derivation cost.
func (p *taskProcessor) warmRoutines(ctx context.Context, msg queue.Message) error {
	now := p.now()

	if _, err := p.routines.MonthlyFor(ctx, msg.UserID, now); err != nil {
		return fmt.Errorf("deriving monthly routine: %w", err)
	}
	if _, err := p.routines.WeeklyFor(ctx, msg.UserID, now); err != nil {
		return fmt.Errorf("deriving weekly routine: %w", err)
	}

	slog.InfoContext(ctx, "routines warmed after analysis", "session_id", msg.SessionID)
	return nil
}
