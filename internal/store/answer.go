package store

import (
	"context"

	"skintel.app/core/core/db/sqlc"
	"skintel.app/core/internal/model"
)

type answerStore struct {
	queries *sqlc.Queries
}

func newAnswerStore(queries *sqlc.Queries) AnswerStore {
	return &answerStore{queries: queries}
}

func (s *answerStore) UpsertProfile(ctx context.Context, answer *model.Answer) (*model.Answer, error) {
	row, err := s.queries.UpsertProfileAnswer(ctx, sqlc.UpsertProfileAnswerParams{
		ID:          answer.ID,
		UserID:      answer.UserID,
		QuestionKey: answer.QuestionKey,
		Answer:      answer.Answer,
	})
	if err != nil {
		return nil, err
	}
	return toAnswerModel(row), nil
}

func (s *answerStore) CreateForSession(ctx context.Context, answer *model.Answer) (*model.Answer, error) {
	row, err := s.queries.CreateSessionAnswer(ctx, sqlc.CreateSessionAnswerParams{
		ID:          answer.ID,
		UserID:      answer.UserID,
		SessionID:   answer.SessionID,
		QuestionKey: answer.QuestionKey,
		Answer:      answer.Answer,
	})
	if err != nil {
		return nil, err
	}
	return toAnswerModel(row), nil
}

func (s *answerStore) ListProfile(ctx context.Context, userID int64) ([]model.Answer, error) {
	rows, err := s.queries.ListProfileAnswers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toAnswerModels(rows), nil
}

func (s *answerStore) ListBySession(ctx context.Context, sessionID int64) ([]model.Answer, error) {
	rows, err := s.queries.ListSessionAnswers(ctx, &sessionID)
	if err != nil {
		return nil, err
	}
	return toAnswerModels(rows), nil
}

func toAnswerModels(rows []sqlc.Answer) []model.Answer {
	result := make([]model.Answer, 0, len(rows))
	for _, row := range rows {
		result = append(result, *toAnswerModel(row))
	}
	return result
}

func toAnswerModel(row sqlc.Answer) *model.Answer {
	return &model.Answer{
		ID:          row.ID,
		UserID:      row.UserID,
		SessionID:   row.SessionID,
		Scope:       row.Scope,
		QuestionKey: row.QuestionKey,
		Answer:      row.Answer,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
