package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"skintel.app/core/core/db/sqlc"
	"skintel.app/core/internal/model"
)

type narrativeStore struct {
	queries *sqlc.Queries
}

func newNarrativeStore(queries *sqlc.Queries) NarrativeStore {
	return &narrativeStore{queries: queries}
}

func (s *narrativeStore) Create(ctx context.Context, env *model.NarrativeEnvelope) (*model.NarrativeEnvelope, error) {
	row, err := s.queries.CreateNarrativeEnvelope(ctx, sqlc.CreateNarrativeEnvelopeParams{
		ID:        env.ID,
		UserID:    env.UserID,
		PeriodKey: env.PeriodKey,
		Payload:   []byte(env.Payload),
		Status:    env.Status,
	})
	if err != nil {
		return nil, err
	}
	return toNarrativeEnvelopeModel(row), nil
}

func (s *narrativeStore) GetByID(ctx context.Context, id int64) (*model.NarrativeEnvelope, error) {
	row, err := s.queries.GetNarrativeEnvelope(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toNarrativeEnvelopeModel(row), nil
}

func (s *narrativeStore) UpdateStatus(ctx context.Context, id int64, status model.NarrativeEnvelopeStatus, errMsg *string) error {
	return s.queries.UpdateNarrativeEnvelopeStatus(ctx, sqlc.UpdateNarrativeEnvelopeStatusParams{
		ID:     id,
		Status: string(status),
		Error:  errMsg,
	})
}

func (s *narrativeStore) ListByUser(ctx context.Context, userID int64, limit int32) ([]model.NarrativeEnvelope, error) {
	rows, err := s.queries.ListNarrativeEnvelopesByUser(ctx, sqlc.ListNarrativeEnvelopesByUserParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.NarrativeEnvelope, 0, len(rows))
	for _, row := range rows {
		result = append(result, *toNarrativeEnvelopeModel(row))
	}
	return result, nil
}

func toNarrativeEnvelopeModel(row sqlc.NarrativeEnvelope) *model.NarrativeEnvelope {
	return &model.NarrativeEnvelope{
		ID:        row.ID,
		UserID:    row.UserID,
		PeriodKey: row.PeriodKey,
		Payload:   json.RawMessage(row.Payload),
		Status:    row.Status,
		Error:     row.Error,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
