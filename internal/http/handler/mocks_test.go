package handler_test

import (
	"context"
	"time"

	"skintel.app/core/internal/model"
	"skintel.app/core/internal/service"
)

type mockUserService struct {
	createFn        func(ctx context.Context, nickname string, birthYear *int32, topConcern *string) (*model.User, error)
	getFn           func(ctx context.Context, id int64) (*model.User, error)
	updateProfileFn func(ctx context.Context, userID int64, nickname string, birthYear *int32, topConcern *string) (*model.User, error)
	updateAnswersFn func(ctx context.Context, userID int64, answers []service.ProfileAnswerInput) ([]model.Answer, error)
}

func (m *mockUserService) Create(ctx context.Context, nickname string, birthYear *int32, topConcern *string) (*model.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, nickname, birthYear, topConcern)
	}
	return &model.User{ID: 1, Nickname: nickname, BirthYear: birthYear, TopConcern: topConcern}, nil
}

func (m *mockUserService) Get(ctx context.Context, id int64) (*model.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &model.User{ID: id, Nickname: "tester"}, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID int64, nickname string, birthYear *int32, topConcern *string) (*model.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, nickname, birthYear, topConcern)
	}
	return &model.User{ID: userID, Nickname: nickname, BirthYear: birthYear, TopConcern: topConcern}, nil
}

func (m *mockUserService) UpdateAnswers(ctx context.Context, userID int64, answers []service.ProfileAnswerInput) ([]model.Answer, error) {
	if m.updateAnswersFn != nil {
		return m.updateAnswersFn(ctx, userID, answers)
	}
	return []model.Answer{}, nil
}

type mockSignalService struct {
	createSessionFn func(ctx context.Context, params service.SignalSessionParams) (*service.SignalSessionResult, error)
}

func (m *mockSignalService) CreateSession(ctx context.Context, params service.SignalSessionParams) (*service.SignalSessionResult, error) {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, params)
	}
	return &service.SignalSessionResult{
		Session: &model.CaptureSession{ID: 100, UserID: params.UserID, Label: params.Label, Status: string(model.CaptureSessionStatusOpen)},
	}, nil
}

type mockCatalogService struct {
	ingestFn     func(ctx context.Context, items []service.CatalogItemParams) ([]model.CatalogItem, error)
	listActiveFn func(ctx context.Context) ([]model.CatalogItem, error)
}

func (m *mockCatalogService) Ingest(ctx context.Context, items []service.CatalogItemParams) ([]model.CatalogItem, error) {
	if m.ingestFn != nil {
		return m.ingestFn(ctx, items)
	}
	saved := make([]model.CatalogItem, 0, len(items))
	for _, p := range items {
		saved = append(saved, model.CatalogItem{ID: p.ID, Name: p.Name, Brand: p.Brand, Category: p.Category, Active: true})
	}
	return saved, nil
}

func (m *mockCatalogService) ListActive(ctx context.Context) ([]model.CatalogItem, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx)
	}
	return []model.CatalogItem{}, nil
}

type mockAnalysisService struct {
	analyzeFn func(ctx context.Context, userID int64) (*service.AnalysisResult, error)
}

func (m *mockAnalysisService) Analyze(ctx context.Context, userID int64) (*service.AnalysisResult, error) {
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, userID)
	}
	return &service.AnalysisResult{
		Session: &model.CaptureSession{ID: 100, UserID: userID, Label: "이번 세션 분석", Status: string(model.CaptureSessionStatusAnalyzed)},
	}, nil
}

type mockRoutineService struct {
	monthlyForFn    func(ctx context.Context, userID int64, now time.Time) (*model.MonthlyRoutine, error)
	weeklyForFn     func(ctx context.Context, userID int64, now time.Time) (*service.WeeklyRoutineResult, error)
	updateWeeklyFn  func(ctx context.Context, userID int64, patch service.WeeklyPatchParams, now time.Time) (*service.WeeklyRoutineResult, error)
	rebalanceFn     func(ctx context.Context, userID int64, now time.Time) (*service.WeeklyRoutineResult, error)
	recordCheckinFn func(ctx context.Context, userID int64, at time.Time) (*service.WeeklyRoutineResult, error)
}

func weeklyFixture(userID int64) *service.WeeklyRoutineResult {
	return &service.WeeklyRoutineResult{
		Routine: &model.WeeklyRoutine{
			ID:              500,
			UserID:          userID,
			PeriodKey:       "2025-08-11",
			WeekStart:       time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC),
			WeekEnd:         time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC),
			RecommendedDays: []string{"mon", "wed", "fri"},
			Intensity:       "standard",
		},
	}
}

func (m *mockRoutineService) MonthlyFor(ctx context.Context, userID int64, now time.Time) (*model.MonthlyRoutine, error) {
	if m.monthlyForFn != nil {
		return m.monthlyForFn(ctx, userID, now)
	}
	return &model.MonthlyRoutine{ID: 400, UserID: userID, PeriodKey: "2025-08", Goal: "피부 기초 체력 끌어올리기"}, nil
}

func (m *mockRoutineService) WeeklyFor(ctx context.Context, userID int64, now time.Time) (*service.WeeklyRoutineResult, error) {
	if m.weeklyForFn != nil {
		return m.weeklyForFn(ctx, userID, now)
	}
	return weeklyFixture(userID), nil
}

func (m *mockRoutineService) UpdateWeekly(ctx context.Context, userID int64, patch service.WeeklyPatchParams, now time.Time) (*service.WeeklyRoutineResult, error) {
	if m.updateWeeklyFn != nil {
		return m.updateWeeklyFn(ctx, userID, patch, now)
	}
	return weeklyFixture(userID), nil
}

func (m *mockRoutineService) Rebalance(ctx context.Context, userID int64, now time.Time) (*service.WeeklyRoutineResult, error) {
	if m.rebalanceFn != nil {
		return m.rebalanceFn(ctx, userID, now)
	}
	return weeklyFixture(userID), nil
}

func (m *mockRoutineService) RecordCheckin(ctx context.Context, userID int64, at time.Time) (*service.WeeklyRoutineResult, error) {
	if m.recordCheckinFn != nil {
		return m.recordCheckinFn(ctx, userID, at)
	}
	return weeklyFixture(userID), nil
}

type mockNarrativeService struct {
	receiveFn func(ctx context.Context, params service.NarrativeEnvelopeParams) (*model.NarrativeEnvelope, error)
	applyFn   func(ctx context.Context, envelopeID int64) error
}

func (m *mockNarrativeService) Receive(ctx context.Context, params service.NarrativeEnvelopeParams) (*model.NarrativeEnvelope, error) {
	if m.receiveFn != nil {
		return m.receiveFn(ctx, params)
	}
	return &model.NarrativeEnvelope{ID: 900, UserID: params.UserID, PeriodKey: params.PeriodKey, Payload: params.Payload, Status: string(model.NarrativeEnvelopeStatusReceived)}, nil
}

func (m *mockNarrativeService) Apply(ctx context.Context, envelopeID int64) error {
	if m.applyFn != nil {
		return m.applyFn(ctx, envelopeID)
	}
	return nil
}
