package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"skintel.app/core/core/db/sqlc"
	"skintel.app/core/internal/model"
)

type checkinStore struct {
	queries *sqlc.Queries
}

func newCheckinStore(queries *sqlc.Queries) CheckinStore {
	return &checkinStore{queries: queries}
}

func (s *checkinStore) Create(ctx context.Context, checkin *model.RoutineCheckin) (*model.RoutineCheckin, error) {
	row, err := s.queries.CreateRoutineCheckin(ctx, sqlc.CreateRoutineCheckinParams{
		ID:        checkin.ID,
		UserID:    checkin.UserID,
		RoutineID: checkin.RoutineID,
		CheckedAt: pgtype.Timestamptz{Time: checkin.CheckedAt, Valid: true},
	})
	if err != nil {
		return nil, err
	}
	return toCheckinModel(row), nil
}

func (s *checkinStore) ListByRoutine(ctx context.Context, routineID int64) ([]model.RoutineCheckin, error) {
	rows, err := s.queries.ListRoutineCheckins(ctx, routineID)
	if err != nil {
		return nil, err
	}
	result := make([]model.RoutineCheckin, 0, len(rows))
	for _, row := range rows {
		result = append(result, *toCheckinModel(row))
	}
	return result, nil
}

func toCheckinModel(row sqlc.RoutineCheckin) *model.RoutineCheckin {
	return &model.RoutineCheckin{
		ID:        row.ID,
		UserID:    row.UserID,
		RoutineID: row.RoutineID,
		CheckedAt: row.CheckedAt.Time,
		CreatedAt: row.CreatedAt.Time,
	}
}
