package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"skintel.app/core/common/logger"
	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/model"
	"skintel.app/core/internal/store"
)

// ErrMissingSession is returned when analysis is requested for a user who has
// never completed a capture session.
var ErrMissingSession = errors.New("no capture session for user")

// AnalysisResult is the composed output for one user's latest session: the
// prioritized needs, the fixed report dimensions, the narrative and the
// ranked product recommendations.
type AnalysisResult struct {
	Session         *model.CaptureSession
	Needs           []engine.PrioritizedNeed
	ReportItems     []engine.ReportItem
	Narrative       engine.Narrative
	Recommendations []engine.Recommendation
}

type AnalysisService interface {
	Analyze(ctx context.Context, userID int64) (*AnalysisResult, error)
}

type analysisService struct {
	users    store.UserStore
	sessions store.CaptureSessionStore
	answers  store.AnswerStore
	catalog  store.CatalogStore
	registry *engine.Registry
	logger   *slog.Logger
}

func NewAnalysisService(
	users store.UserStore,
	sessions store.CaptureSessionStore,
	answers store.AnswerStore,
	catalog store.CatalogStore,
	registry *engine.Registry,
	log *slog.Logger,
) AnalysisService {
	if log == nil {
		log = slog.Default()
	}
	return &analysisService{
		users:    users,
		sessions: sessions,
		answers:  answers,
		catalog:  catalog,
		registry: registry,
		logger:   log,
	}
}

// Analyze loads the user's latest capture session and recomputes the full
// analysis from stored signals. The computation is deterministic, so repeated
// calls over unchanged signals return identical results.
func (s *analysisService) Analyze(ctx context.Context, userID int64) (*AnalysisResult, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	session, err := s.sessions.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMissingSession
		}
		return nil, fmt.Errorf("fetching latest session: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(userID),
		SessionID: logger.Ptr(session.ID),
	})

	ectx, err := s.buildContext(ctx, session)
	if err != nil {
		return nil, err
	}

	needs := engine.Prioritize(ectx, s.registry)
	items := engine.ReportItems(ectx, s.registry)
	narrative := engine.Compose(ectx, needs, s.registry)

	catalog, err := s.catalog.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	recs := engine.Recommend(toEngineCatalog(catalog), needs, ectx, s.registry)

	if session.Status != string(model.CaptureSessionStatusAnalyzed) {
		if err := s.sessions.MarkAnalyzed(ctx, session.ID); err != nil {
			s.logger.WarnContext(ctx, "failed to mark session analyzed", "error", err)
		}
	}

	s.logger.InfoContext(ctx, "analysis computed",
		"needs", len(needs),
		"recommendations", len(recs))

	return &AnalysisResult{
		Session:         session,
		Needs:           needs,
		ReportItems:     items,
		Narrative:       narrative,
		Recommendations: recs,
	}, nil
}

func (s *analysisService) buildContext(ctx context.Context, session *model.CaptureSession) (*engine.Context, error) {
	photos, err := s.sessions.ListPhotos(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("listing photos: %w", err)
	}
	sessionAnswers, err := s.answers.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("listing session answers: %w", err)
	}
	profileAnswers, err := s.answers.ListProfile(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing profile answers: %w", err)
	}

	return engine.Aggregate(
		toPhotoSignals(photos),
		toAnswerSignals(sessionAnswers),
		toAnswerSignals(profileAnswers),
		s.registry,
	), nil
}

func toPhotoSignals(photos []model.Photo) []engine.PhotoSignal {
	signals := make([]engine.PhotoSignal, 0, len(photos))
	for _, p := range photos {
		focus := ""
		if p.FocusArea != nil {
			focus = *p.FocusArea
		}
		signals = append(signals, engine.PhotoSignal{
			ShotType:   p.ShotType,
			FocusArea:  focus,
			CapturedAt: p.CapturedAt,
		})
	}
	return signals
}

func toAnswerSignals(answers []model.Answer) []engine.AnswerSignal {
	signals := make([]engine.AnswerSignal, 0, len(answers))
	for _, a := range answers {
		signals = append(signals, engine.AnswerSignal{
			QuestionKey: a.QuestionKey,
			Answer:      engine.AnswerValue(a.Answer),
		})
	}
	return signals
}

func toEngineCatalog(items []model.CatalogItem) []engine.CatalogItem {
	catalog := make([]engine.CatalogItem, 0, len(items))
	for _, item := range items {
		note := ""
		if item.Note != nil {
			note = *item.Note
		}
		catalog = append(catalog, engine.CatalogItem{
			ID:             item.ID,
			Name:           item.Name,
			Brand:          item.Brand,
			Category:       item.Category,
			EffectTags:     item.EffectTags,
			KeyIngredients: item.KeyIngredients,
			Note:           note,
		})
	}
	return catalog
}
