package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"skintel.app/core/common/id"
	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/model"
	"skintel.app/core/internal/service"
	"skintel.app/core/internal/store"
)

func strPtr(s string) *string { return &s }

var _ = Describe("UserService", func() {
	var (
		svc      service.UserService
		provider *mockStoreProvider
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		provider = newMockStoreProvider()
		svc = service.NewUserService(&mockTxRunner{provider: provider}, engine.DefaultRegistry())
		Expect(id.Init(1)).To(Succeed())
	})

	Describe("Create", func() {
		It("creates a user with a known concern tag", func() {
			user, err := svc.Create(ctx, "지우", nil, strPtr("soothing"))
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Nickname).To(Equal("지우"))
			Expect(*user.TopConcern).To(Equal("soothing"))
			Expect(user.ID).NotTo(BeZero())
		})

		It("rejects an empty nickname", func() {
			_, err := svc.Create(ctx, "", nil, nil)
			Expect(err).To(HaveOccurred())
		})

		It("rejects an unknown concern tag", func() {
			_, err := svc.Create(ctx, "지우", nil, strPtr("glow_up"))
			Expect(err).To(MatchError(service.ErrUnknownConcern))
		})
	})

	Describe("Get", func() {
		It("maps missing rows to ErrUserNotFound", func() {
			provider.users.getByIDFn = func(_ context.Context, _ int64) (*model.User, error) {
				return nil, store.ErrNotFound
			}
			_, err := svc.Get(ctx, 42)
			Expect(err).To(MatchError(service.ErrUserNotFound))
		})
	})

	Describe("UpdateAnswers", func() {
		It("upserts every answer with profile scope", func() {
			saved, err := svc.UpdateAnswers(ctx, 42, []service.ProfileAnswerInput{
				{QuestionKey: "daily_sunscreen", Answer: "O"},
				{QuestionKey: "frequent_makeup", Answer: "X"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(saved).To(HaveLen(2))
			Expect(provider.answers.capturedAnswers).To(HaveLen(2))
			for _, a := range provider.answers.capturedAnswers {
				Expect(a.Scope).To(Equal(string(model.AnswerScopeProfile)))
				Expect(a.UserID).To(Equal(int64(42)))
			}
		})

		It("rejects answers outside O and X", func() {
			_, err := svc.UpdateAnswers(ctx, 42, []service.ProfileAnswerInput{
				{QuestionKey: "daily_sunscreen", Answer: "yes"},
			})
			Expect(err).To(HaveOccurred())
			Expect(provider.answers.capturedAnswers).To(BeEmpty())
		})

		It("rejects an empty answer list", func() {
			_, err := svc.UpdateAnswers(ctx, 42, nil)
			Expect(err).To(HaveOccurred())
		})

		It("requires the user to exist", func() {
			provider.users.getByIDFn = func(_ context.Context, _ int64) (*model.User, error) {
				return nil, store.ErrNotFound
			}
			_, err := svc.UpdateAnswers(ctx, 42, []service.ProfileAnswerInput{
				{QuestionKey: "daily_sunscreen", Answer: "O"},
			})
			Expect(err).To(MatchError(service.ErrUserNotFound))
		})
	})
})
