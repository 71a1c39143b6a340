package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"skintel.app/core/common/id"
	"skintel.app/core/common/logger"
	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/model"
	"skintel.app/core/internal/queue"
	"skintel.app/core/internal/store"
)

var (
	ErrEnvelopeNotFound = errors.New("narrative envelope not found")
	ErrInvalidEnvelope  = errors.New("invalid narrative envelope")
)

type NarrativeEnvelopeParams struct {
	UserID    int64
	PeriodKey string
	Payload   json.RawMessage
}

type NarrativeService interface {
	// Receive stores an enrichment envelope from the narrative collaborator
	// and schedules its application to the matching weekly routine.
	Receive(ctx context.Context, params NarrativeEnvelopeParams) (*model.NarrativeEnvelope, error)
	// Apply merges a stored envelope into the weekly routine it targets.
	// Envelopes targeting a period with no routine are marked rejected.
	Apply(ctx context.Context, envelopeID int64) error
}

type narrativeService struct {
	txRunner TxRunner
	producer queue.Producer
	logger   *slog.Logger
}

func NewNarrativeService(txRunner TxRunner, producer queue.Producer, log *slog.Logger) NarrativeService {
	if log == nil {
		log = slog.Default()
	}
	return &narrativeService{
		txRunner: txRunner,
		producer: producer,
		logger:   log,
	}
}

func (s *narrativeService) Receive(ctx context.Context, params NarrativeEnvelopeParams) (*model.NarrativeEnvelope, error) {
	if params.UserID == 0 || params.PeriodKey == "" {
		return nil, fmt.Errorf("user_id and period_key are required")
	}
	if err := validateEnvelopePayload(params.Payload); err != nil {
		return nil, err
	}

	var env *model.NarrativeEnvelope
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if _, err := sp.Users().GetByID(ctx, params.UserID); err != nil {
			return err
		}
		var err error
		env, err = sp.Narratives().Create(ctx, &model.NarrativeEnvelope{
			ID:        id.New(),
			UserID:    params.UserID,
			PeriodKey: params.PeriodKey,
			Payload:   params.Payload,
			Status:    string(model.NarrativeEnvelopeStatusReceived),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("storing narrative envelope: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:     logger.Ptr(env.UserID),
		EnvelopeID: logger.Ptr(env.ID),
	})

	envelopeID := env.ID
	if err := s.producer.Enqueue(ctx, queue.Task{
		TaskType:   queue.TaskTypeNarrativeEnriched,
		UserID:     env.UserID,
		EnvelopeID: &envelopeID,
		PeriodKey:  env.PeriodKey,
	}); err != nil {
		// The worker replays unapplied envelopes from the stream; a failed
		// enqueue only delays application.
		s.logger.ErrorContext(ctx, "failed to enqueue narrative task", "error", err)
	}

	s.logger.InfoContext(ctx, "narrative envelope received", "period_key", env.PeriodKey)
	return env, nil
}

func (s *narrativeService) Apply(ctx context.Context, envelopeID int64) error {
	var env *model.NarrativeEnvelope
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		env, err = sp.Narratives().GetByID(ctx, envelopeID)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEnvelopeNotFound
		}
		return fmt.Errorf("fetching envelope: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:     logger.Ptr(env.UserID),
		EnvelopeID: logger.Ptr(env.ID),
		PeriodKey:  logger.Ptr(env.PeriodKey),
	})

	var envelope engine.NarrativeEnvelope
	if err := json.Unmarshal(env.Payload, &envelope); err != nil {
		return s.reject(ctx, env.ID, fmt.Sprintf("decoding payload: %v", err))
	}

	return s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		routine, err := sp.Routines().GetWeekly(ctx, env.UserID, env.PeriodKey)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return s.rejectIn(ctx, sp, env.ID, "no weekly routine for period")
			}
			return fmt.Errorf("fetching weekly routine: %w", err)
		}

		updated := *routine
		if envelope.Focus != nil && envelope.Focus.Topic != "" {
			updated.FocusTopic = envelope.Focus.Topic
			updated.FocusReason = envelope.Focus.Reason
		}
		if envelope.OneLiner != "" {
			updated.Conclusion = envelope.OneLiner
		}
		if len(envelope.Actions) > 0 {
			actions, err := json.Marshal(envelope.Actions)
			if err != nil {
				return fmt.Errorf("encoding actions: %w", err)
			}
			updated.Actions = actions
		}
		if len(envelope.Warnings) > 0 {
			updated.Warnings = envelope.Warnings
		}

		if _, err := sp.Routines().UpdateWeeklyPlan(ctx, &updated); err != nil {
			return fmt.Errorf("applying envelope to routine: %w", err)
		}

		if err := sp.Narratives().UpdateStatus(ctx, env.ID, model.NarrativeEnvelopeStatusApplied, nil); err != nil {
			return fmt.Errorf("marking envelope applied: %w", err)
		}

		s.logger.InfoContext(ctx, "narrative envelope applied", "routine_id", routine.ID)
		return nil
	})
}

func (s *narrativeService) reject(ctx context.Context, envelopeID int64, reason string) error {
	return s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		return s.rejectIn(ctx, sp, envelopeID, reason)
	})
}

func (s *narrativeService) rejectIn(ctx context.Context, sp StoreProvider, envelopeID int64, reason string) error {
	s.logger.WarnContext(ctx, "narrative envelope rejected", "reason", reason)
	if err := sp.Narratives().UpdateStatus(ctx, envelopeID, model.NarrativeEnvelopeStatusRejected, &reason); err != nil {
		return fmt.Errorf("marking envelope rejected: %w", err)
	}
	return nil
}

// validateEnvelopePayload checks shape only; the engine treats envelope text
// as opaque.
func validateEnvelopePayload(payload json.RawMessage) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: empty payload", ErrInvalidEnvelope)
	}
	var envelope engine.NarrativeEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	if envelope.Focus == nil && envelope.OneLiner == "" && len(envelope.Actions) == 0 && len(envelope.Warnings) == 0 {
		return fmt.Errorf("%w: envelope carries nothing to apply", ErrInvalidEnvelope)
	}
	return nil
}
