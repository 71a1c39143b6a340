package store

import (
	"context"
	"errors"
	"time"

	"skintel.app/core/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
	UpdateProfile(ctx context.Context, user *model.User) (*model.User, error)
}

// CaptureSessionStore defines the contract for capture session data access
type CaptureSessionStore interface {
	Create(ctx context.Context, session *model.CaptureSession) (*model.CaptureSession, error)
	GetByID(ctx context.Context, id int64) (*model.CaptureSession, error)
	LatestByUser(ctx context.Context, userID int64) (*model.CaptureSession, error)
	MarkAnalyzed(ctx context.Context, id int64) error
	AddPhoto(ctx context.Context, photo *model.Photo) (*model.Photo, error)
	ListPhotos(ctx context.Context, sessionID int64) ([]model.Photo, error)
}

// AnswerStore defines the contract for lifestyle answer data access
type AnswerStore interface {
	UpsertProfile(ctx context.Context, answer *model.Answer) (*model.Answer, error)
	CreateForSession(ctx context.Context, answer *model.Answer) (*model.Answer, error)
	ListProfile(ctx context.Context, userID int64) ([]model.Answer, error)
	ListBySession(ctx context.Context, sessionID int64) ([]model.Answer, error)
}

// CatalogStore defines the contract for product catalog data access
type CatalogStore interface {
	Upsert(ctx context.Context, item *model.CatalogItem) (*model.CatalogItem, error)
	GetByID(ctx context.Context, id string) (*model.CatalogItem, error)
	ListActive(ctx context.Context) ([]model.CatalogItem, error)
}

// RoutineStore defines the contract for monthly and weekly routine data access
type RoutineStore interface {
	// CreateOrGetMonthly inserts the routine unless one already exists for the
	// user and period; the bool reports whether the insert won.
	CreateOrGetMonthly(ctx context.Context, routine *model.MonthlyRoutine) (*model.MonthlyRoutine, bool, error)
	GetMonthly(ctx context.Context, userID int64, periodKey string) (*model.MonthlyRoutine, error)
	CreateOrGetWeekly(ctx context.Context, routine *model.WeeklyRoutine) (*model.WeeklyRoutine, bool, error)
	GetWeekly(ctx context.Context, userID int64, periodKey string) (*model.WeeklyRoutine, error)
	GetWeeklyByID(ctx context.Context, id int64) (*model.WeeklyRoutine, error)
	UpdateWeeklyPlan(ctx context.Context, routine *model.WeeklyRoutine) (*model.WeeklyRoutine, error)
}

// CheckinStore defines the contract for routine check-in data access
type CheckinStore interface {
	Create(ctx context.Context, checkin *model.RoutineCheckin) (*model.RoutineCheckin, error)
	ListByRoutine(ctx context.Context, routineID int64) ([]model.RoutineCheckin, error)
}

// NarrativeStore defines the contract for narrative envelope data access
type NarrativeStore interface {
	Create(ctx context.Context, env *model.NarrativeEnvelope) (*model.NarrativeEnvelope, error)
	GetByID(ctx context.Context, id int64) (*model.NarrativeEnvelope, error)
	UpdateStatus(ctx context.Context, id int64, status model.NarrativeEnvelopeStatus, errMsg *string) error
	ListByUser(ctx context.Context, userID int64, limit int32) ([]model.NarrativeEnvelope, error)
}

func toTimePointer(valid bool, t time.Time) *time.Time {
	if !valid {
		return nil
	}
	return &t
}
