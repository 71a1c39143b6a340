package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"skintel.app/core/core/db/sqlc"
	"skintel.app/core/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) (*model.User, error) {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:         user.ID,
		Nickname:   user.Nickname,
		BirthYear:  user.BirthYear,
		TopConcern: user.TopConcern,
	})
	if err != nil {
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) UpdateProfile(ctx context.Context, user *model.User) (*model.User, error) {
	row, err := s.queries.UpdateUserProfile(ctx, sqlc.UpdateUserProfileParams{
		ID:         user.ID,
		Nickname:   user.Nickname,
		BirthYear:  user.BirthYear,
		TopConcern: user.TopConcern,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:         row.ID,
		Nickname:   row.Nickname,
		BirthYear:  row.BirthYear,
		TopConcern: row.TopConcern,
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
}
