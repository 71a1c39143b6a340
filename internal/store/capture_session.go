package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"skintel.app/core/core/db/sqlc"
	"skintel.app/core/internal/model"
)

type captureSessionStore struct {
	queries *sqlc.Queries
}

func newCaptureSessionStore(queries *sqlc.Queries) CaptureSessionStore {
	return &captureSessionStore{queries: queries}
}

func (s *captureSessionStore) Create(ctx context.Context, session *model.CaptureSession) (*model.CaptureSession, error) {
	row, err := s.queries.CreateCaptureSession(ctx, sqlc.CreateCaptureSessionParams{
		ID:     session.ID,
		UserID: session.UserID,
		Label:  session.Label,
		Status: session.Status,
	})
	if err != nil {
		return nil, err
	}
	return toCaptureSessionModel(row), nil
}

func (s *captureSessionStore) GetByID(ctx context.Context, id int64) (*model.CaptureSession, error) {
	row, err := s.queries.GetCaptureSession(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toCaptureSessionModel(row), nil
}

func (s *captureSessionStore) LatestByUser(ctx context.Context, userID int64) (*model.CaptureSession, error) {
	row, err := s.queries.GetLatestCaptureSessionByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toCaptureSessionModel(row), nil
}

func (s *captureSessionStore) MarkAnalyzed(ctx context.Context, id int64) error {
	return s.queries.MarkCaptureSessionAnalyzed(ctx, id)
}

func (s *captureSessionStore) AddPhoto(ctx context.Context, photo *model.Photo) (*model.Photo, error) {
	row, err := s.queries.CreatePhoto(ctx, sqlc.CreatePhotoParams{
		ID:         photo.ID,
		SessionID:  photo.SessionID,
		ShotType:   photo.ShotType,
		FocusArea:  photo.FocusArea,
		StorageKey: photo.StorageKey,
		CapturedAt: pgtype.Timestamptz{Time: photo.CapturedAt, Valid: true},
	})
	if err != nil {
		return nil, err
	}
	return toPhotoModel(row), nil
}

func (s *captureSessionStore) ListPhotos(ctx context.Context, sessionID int64) ([]model.Photo, error) {
	rows, err := s.queries.ListPhotosBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Photo, 0, len(rows))
	for _, row := range rows {
		result = append(result, *toPhotoModel(row))
	}
	return result, nil
}

func toCaptureSessionModel(row sqlc.CaptureSession) *model.CaptureSession {
	return &model.CaptureSession{
		ID:         row.ID,
		UserID:     row.UserID,
		Label:      row.Label,
		Status:     row.Status,
		AnalyzedAt: toTimePointer(row.AnalyzedAt.Valid, row.AnalyzedAt.Time),
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
}

func toPhotoModel(row sqlc.Photo) *model.Photo {
	return &model.Photo{
		ID:         row.ID,
		SessionID:  row.SessionID,
		ShotType:   row.ShotType,
		FocusArea:  row.FocusArea,
		StorageKey: row.StorageKey,
		CapturedAt: row.CapturedAt.Time,
		CreatedAt:  row.CreatedAt.Time,
	}
}
