package service

import (
	"context"
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

type PhotoInput struct {
	ShotType   string     `json:"shot_type"`
	FocusArea  *string    `json:"focus_area,omitempty"`
	StorageKey string     `json:"storage_key"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

type SessionAnswerInput struct {
	QuestionKey string `json:"question_key"`
	Answer      string `json:"answer"`
}

type SignalSessionParams struct {
	UserID  int64
	Label   string
	Photos  []PhotoInput
	Answers []SessionAnswerInput
}

type SignalSessionResult struct {
	Session *model.CaptureSession
	Photos  []model.Photo
	Answers []model.Answer
}

type SignalIngestService interface {
	CreateSession(ctx context.Context, params SignalSessionParams) (*SignalSessionResult, error)
}

type signalIngestService struct {
	txRunner TxRunner
	producer queue.Producer
	registry *engine.Registry
	logger   *slog.Logger
}

func NewSignalIngestService(txRunner TxRunner, producer queue.Producer, registry *engine.Registry, log *slog.Logger) SignalIngestService {
	if log == nil {
		log = slog.Default()
	}
	return &signalIngestService{
		txRunner: txRunner,
		producer: producer,
		registry: registry,
		logger:   log,
	}
}

// CreateSession records a capture session with its photos and session-scoped
// answers in one transaction, then announces the session on the stream so the
// narrative collaborator can pick it up. A session with neither photos nor
// answers is rejected; everything else is accepted and the aggregation layer
// decides what the gaps mean.
func (s *signalIngestService) CreateSession(ctx context.Context, params SignalSessionParams) (*SignalSessionResult, error) {
	if params.UserID == 0 {
		return nil, fmt.Errorf("user_id is required")
	}
	if len(params.Photos) == 0 && len(params.Answers) == 0 {
		return nil, fmt.Errorf("at least one photo or answer is required")
	}
	for _, p := range params.Photos {
		if p.ShotType == "" || p.StorageKey == "" {
			return nil, fmt.Errorf("shot_type and storage_key are required for every photo")
		}
	}

	label := params.Label
	if label == "" {
		label = s.registry.Defaults().SessionLabel
	}

	now := time.Now()
	result := &SignalSessionResult{}

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if _, err := sp.Users().GetByID(ctx, params.UserID); err != nil {
			return err
		}

		session, err := sp.CaptureSessions().Create(ctx, &model.CaptureSession{
			ID:     id.New(),
			UserID: params.UserID,
			Label:  label,
			Status: string(model.CaptureSessionStatusOpen),
		})
		if err != nil {
			return fmt.Errorf("creating capture session: %w", err)
		}
		result.Session = session

		for _, p := range params.Photos {
			capturedAt := now
			if p.CapturedAt != nil {
				capturedAt = *p.CapturedAt
			}
			photo, err := sp.CaptureSessions().AddPhoto(ctx, &model.Photo{
				ID:         id.New(),
				SessionID:  session.ID,
				ShotType:   p.ShotType,
				FocusArea:  p.FocusArea,
				StorageKey: p.StorageKey,
				CapturedAt: capturedAt,
			})
			if err != nil {
				return fmt.Errorf("recording photo: %w", err)
			}
			result.Photos = append(result.Photos, *photo)
		}

		for _, a := range params.Answers {
			if a.QuestionKey == "" || !engine.AnswerValue(a.Answer).Valid() {
				// Malformed answers never fail the session; the engine
				// treats them as absent.
				continue
			}
			sessionID := session.ID
			answer, err := sp.Answers().CreateForSession(ctx, &model.Answer{
				ID:          id.New(),
				UserID:      params.UserID,
				SessionID:   &sessionID,
				Scope:       string(model.AnswerScopeSession),
				QuestionKey: a.QuestionKey,
				Answer:      a.Answer,
			})
			if err != nil {
				return fmt.Errorf("recording answer %q: %w", a.QuestionKey, err)
			}
			result.Answers = append(result.Answers, *answer)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.ErrorContext(ctx, "failed to ingest signal session", "error", err, "user_id", params.UserID)
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(result.Session.UserID),
		SessionID: logger.Ptr(result.Session.ID),
	})

	sessionID := result.Session.ID
	if err := s.producer.Enqueue(ctx, queue.Task{
		TaskType:  queue.TaskTypeAnalysisCompleted,
		UserID:    params.UserID,
		SessionID: &sessionID,
	}); err != nil {
		// The session is durable; enrichment is best-effort.
		s.logger.ErrorContext(ctx, "failed to enqueue analysis task", "error", err)
	}

	s.logger.InfoContext(ctx, "signal session recorded",
		"photos", len(result.Photos),
		"answers", len(result.Answers))
	return result, nil
}
