package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"skintel.app/core/common/id"
	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/model"
	"skintel.app/core/internal/store"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUnknownConcern = errors.New("unknown concern tag")
)

type ProfileAnswerInput struct {
	QuestionKey string `json:"question_key"`
	Answer      string `json:"answer"`
}

type UserService interface {
	Create(ctx context.Context, nickname string, birthYear *int32, topConcern *string) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, nickname string, birthYear *int32, topConcern *string) (*model.User, error)
	// UpdateAnswers upserts the user's persistent lifestyle answers. Invalid
	// answers are rejected, not silently dropped; the signal aggregation layer
	// is where tolerant skipping happens.
	UpdateAnswers(ctx context.Context, userID int64, answers []ProfileAnswerInput) ([]model.Answer, error)
}

type userService struct {
	txRunner TxRunner
	registry *engine.Registry
}

func NewUserService(txRunner TxRunner, registry *engine.Registry) UserService {
	return &userService{
		txRunner: txRunner,
		registry: registry,
	}
}

func (s *userService) Create(ctx context.Context, nickname string, birthYear *int32, topConcern *string) (*model.User, error) {
	if nickname == "" {
		return nil, fmt.Errorf("nickname is required")
	}
	if err := s.validateConcern(topConcern); err != nil {
		return nil, err
	}

	user := &model.User{
		ID:         id.New(),
		Nickname:   nickname,
		BirthYear:  birthYear,
		TopConcern: topConcern,
	}

	var created *model.User
	if err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		created, err = sp.Users().Create(ctx, user)
		return err
	}); err != nil {
		slog.ErrorContext(ctx, "failed to create user", "error", err)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	slog.InfoContext(ctx, "user created", "user_id", created.ID)
	return created, nil
}

func (s *userService) Get(ctx context.Context, userID int64) (*model.User, error) {
	var user *model.User
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		user, err = sp.Users().GetByID(ctx, userID)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, nickname string, birthYear *int32, topConcern *string) (*model.User, error) {
	if nickname == "" {
		return nil, fmt.Errorf("nickname is required")
	}
	if err := s.validateConcern(topConcern); err != nil {
		return nil, err
	}

	var updated *model.User
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		updated, err = sp.Users().UpdateProfile(ctx, &model.User{
			ID:         userID,
			Nickname:   nickname,
			BirthYear:  birthYear,
			TopConcern: topConcern,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		slog.ErrorContext(ctx, "failed to update user profile", "error", err, "user_id", userID)
		return nil, fmt.Errorf("updating user profile: %w", err)
	}

	return updated, nil
}

func (s *userService) UpdateAnswers(ctx context.Context, userID int64, answers []ProfileAnswerInput) ([]model.Answer, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("at least one answer is required")
	}
	for _, a := range answers {
		if a.QuestionKey == "" {
			return nil, fmt.Errorf("question_key is required")
		}
		if !engine.AnswerValue(a.Answer).Valid() {
			return nil, fmt.Errorf("answer for %q must be O or X", a.QuestionKey)
		}
	}

	var saved []model.Answer
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if _, err := sp.Users().GetByID(ctx, userID); err != nil {
			return err
		}

		saved = make([]model.Answer, 0, len(answers))
		for _, a := range answers {
			row, err := sp.Answers().UpsertProfile(ctx, &model.Answer{
				ID:          id.New(),
				UserID:      userID,
				Scope:       string(model.AnswerScopeProfile),
				QuestionKey: a.QuestionKey,
				Answer:      a.Answer,
			})
			if err != nil {
				return fmt.Errorf("upserting answer %q: %w", a.QuestionKey, err)
			}
			saved = append(saved, *row)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		slog.ErrorContext(ctx, "failed to update profile answers", "error", err, "user_id", userID)
		return nil, err
	}

	slog.InfoContext(ctx, "profile answers updated", "user_id", userID, "count", len(saved))
	return saved, nil
}

func (s *userService) validateConcern(topConcern *string) error {
	if topConcern == nil || *topConcern == "" {
		return nil
	}
	if _, ok := s.registry.Need(engine.NeedTag(*topConcern)); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownConcern, *topConcern)
	}
	return nil
}
