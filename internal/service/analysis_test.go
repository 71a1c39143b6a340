package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/model"
	"skintel.app/core/internal/service"
	"skintel.app/core/internal/store"
)

var _ = Describe("AnalysisService", func() {
	var (
		svc      service.AnalysisService
		users    *mockUserStore
		sessions *mockCaptureSessionStore
		answers  *mockAnswerStore
		catalog  *mockCatalogStore
		ctx      context.Context
	)

	openSession := func() *model.CaptureSession {
		return &model.CaptureSession{
			ID:     100,
			UserID: 42,
			Label:  "이번 세션 분석",
			Status: string(model.CaptureSessionStatusOpen),
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		users = &mockUserStore{}
		sessions = &mockCaptureSessionStore{}
		answers = &mockAnswerStore{}
		catalog = &mockCatalogStore{}
		svc = service.NewAnalysisService(users, sessions, answers, catalog, engine.DefaultRegistry(), nil)
	})

	It("returns ErrMissingSession when the user has never captured", func() {
		_, err := svc.Analyze(ctx, 42)
		Expect(err).To(MatchError(service.ErrMissingSession))
	})

	It("returns ErrUserNotFound for unknown users", func() {
		users.getByIDFn = func(_ context.Context, _ int64) (*model.User, error) {
			return nil, store.ErrNotFound
		}
		_, err := svc.Analyze(ctx, 42)
		Expect(err).To(MatchError(service.ErrUserNotFound))
	})

	Context("with a session carrying photos and answers", func() {
		BeforeEach(func() {
			sessions.latestByUserFn = func(_ context.Context, _ int64) (*model.CaptureSession, error) {
				return openSession(), nil
			}
			sessions.listPhotosFn = func(_ context.Context, _ int64) ([]model.Photo, error) {
				return []model.Photo{
					{ID: 1, SessionID: 100, ShotType: engine.ShotTypeBaseline, StorageKey: "captures/1.jpg", CapturedAt: time.Now()},
				}, nil
			}
			answers.listBySessionFn = func(_ context.Context, _ int64) ([]model.Answer, error) {
				return []model.Answer{
					{QuestionKey: "sensitive_skin", Answer: "O"},
					{QuestionKey: "daily_sunscreen", Answer: "X"},
				}, nil
			}
		})

		It("prioritizes needs from the stored signals", func() {
			result, err := svc.Analyze(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Needs).NotTo(BeEmpty())
			Expect(result.Needs[0].ID).To(Equal(engine.NeedSoothing))
			Expect(result.ReportItems).To(HaveLen(5))
		})

		It("reserves a safety tip when sunscreen is skipped", func() {
			result, err := svc.Analyze(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Narrative.Tips).To(ContainElement(engine.SafetyTip))
		})

		It("recommends matching catalog items", func() {
			catalog.listActiveFn = func(_ context.Context) ([]model.CatalogItem, error) {
				return []model.CatalogItem{
					{ID: "soothe-1", Name: "시카 세럼", Brand: "브랜드", Category: "serum", EffectTags: []string{"soothing"}, Active: true},
					{ID: "tone-1", Name: "비타민 앰플", Brand: "브랜드", Category: "ampoule", EffectTags: []string{"brightening"}, Active: true},
				}, nil
			}
			result, err := svc.Analyze(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Recommendations).NotTo(BeEmpty())
			Expect(result.Recommendations[0].ID).To(Equal("soothe-1"))
		})

		It("marks an open session analyzed once", func() {
			_, err := svc.Analyze(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions.markAnalyzedCalls).To(Equal(1))
		})

		It("does not re-mark an already analyzed session", func() {
			sessions.latestByUserFn = func(_ context.Context, _ int64) (*model.CaptureSession, error) {
				s := openSession()
				s.Status = string(model.CaptureSessionStatusAnalyzed)
				return s, nil
			}
			_, err := svc.Analyze(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions.markAnalyzedCalls).To(BeZero())
		})

		It("lets session answers override profile answers", func() {
			answers.listProfileFn = func(_ context.Context, _ int64) ([]model.Answer, error) {
				return []model.Answer{{QuestionKey: "sensitive_skin", Answer: "X"}}, nil
			}
			result, err := svc.Analyze(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Needs[0].ID).To(Equal(engine.NeedSoothing))
		})
	})
})
