package service_test

import (
	"context"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"skintel.app/core/common/id"
	"skintel.app/core/internal/model"
	"skintel.app/core/internal/queue"
	"skintel.app/core/internal/service"
	"skintel.app/core/internal/store"
)

var _ = Describe("NarrativeService", func() {
	var (
		svc      service.NarrativeService
		provider *mockStoreProvider
		producer *mockQueueProducer
		ctx      context.Context
	)

	payload := json.RawMessage(`{"focus":{"topic":"장벽 집중 케어","reason":"환절기 자극 신호가 보여요."},"one_liner":"이번 주는 장벽 회복에 집중해요."}`)

	BeforeEach(func() {
		ctx = context.Background()
		provider = newMockStoreProvider()
		producer = &mockQueueProducer{}
		svc = service.NewNarrativeService(&mockTxRunner{provider: provider}, producer, nil)
		Expect(id.Init(1)).To(Succeed())
	})

	Describe("Receive", func() {
		It("stores the envelope and schedules its application", func() {
			env, err := svc.Receive(ctx, service.NarrativeEnvelopeParams{
				UserID:    42,
				PeriodKey: "2025-08-11",
				Payload:   payload,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(env.Status).To(Equal(string(model.NarrativeEnvelopeStatusReceived)))
			Expect(producer.tasks).To(HaveLen(1))
			Expect(producer.tasks[0].TaskType).To(Equal(queue.TaskTypeNarrativeEnriched))
			Expect(*producer.tasks[0].EnvelopeID).To(Equal(env.ID))
			Expect(producer.tasks[0].PeriodKey).To(Equal("2025-08-11"))
		})

		It("rejects an empty payload", func() {
			_, err := svc.Receive(ctx, service.NarrativeEnvelopeParams{
				UserID:    42,
				PeriodKey: "2025-08-11",
			})
			Expect(err).To(MatchError(service.ErrInvalidEnvelope))
		})

		It("rejects a payload with nothing to apply", func() {
			_, err := svc.Receive(ctx, service.NarrativeEnvelopeParams{
				UserID:    42,
				PeriodKey: "2025-08-11",
				Payload:   json.RawMessage(`{}`),
			})
			Expect(err).To(MatchError(service.ErrInvalidEnvelope))
		})

		It("requires the user to exist", func() {
			provider.users.getByIDFn = func(_ context.Context, _ int64) (*model.User, error) {
				return nil, store.ErrNotFound
			}
			_, err := svc.Receive(ctx, service.NarrativeEnvelopeParams{
				UserID:    42,
				PeriodKey: "2025-08-11",
				Payload:   payload,
			})
			Expect(err).To(MatchError(service.ErrUserNotFound))
		})
	})

	Describe("Apply", func() {
		stored := func(p json.RawMessage) *model.NarrativeEnvelope {
			return &model.NarrativeEnvelope{
				ID:        900,
				UserID:    42,
				PeriodKey: "2025-08-11",
				Payload:   p,
				Status:    string(model.NarrativeEnvelopeStatusReceived),
			}
		}

		It("returns ErrEnvelopeNotFound for unknown envelopes", func() {
			err := svc.Apply(ctx, 900)
			Expect(err).To(MatchError(service.ErrEnvelopeNotFound))
		})

		It("merges the envelope into the week's routine and marks it applied", func() {
			provider.narratives.getByIDFn = func(_ context.Context, _ int64) (*model.NarrativeEnvelope, error) {
				return stored(payload), nil
			}
			provider.routines.getWeeklyFn = func(_ context.Context, userID int64, periodKey string) (*model.WeeklyRoutine, error) {
				Expect(userID).To(Equal(int64(42)))
				Expect(periodKey).To(Equal("2025-08-11"))
				return &model.WeeklyRoutine{
					ID:         500,
					UserID:     42,
					PeriodKey:  "2025-08-11",
					FocusTopic: "수분 밀도",
					Conclusion: "기본 결론",
					Warnings:   []string{"기존 주의"},
				}, nil
			}

			Expect(svc.Apply(ctx, 900)).To(Succeed())

			updated := provider.routines.capturedUpdate
			Expect(updated).NotTo(BeNil())
			Expect(updated.FocusTopic).To(Equal("장벽 집중 케어"))
			Expect(updated.FocusReason).To(Equal("환절기 자극 신호가 보여요."))
			Expect(updated.Conclusion).To(Equal("이번 주는 장벽 회복에 집중해요."))
			Expect(updated.Warnings).To(Equal([]string{"기존 주의"}))
			Expect(provider.narratives.lastStatus).To(Equal(model.NarrativeEnvelopeStatusApplied))
		})

		It("rejects envelopes targeting a week with no routine", func() {
			provider.narratives.getByIDFn = func(_ context.Context, _ int64) (*model.NarrativeEnvelope, error) {
				return stored(payload), nil
			}

			Expect(svc.Apply(ctx, 900)).To(Succeed())
			Expect(provider.routines.capturedUpdate).To(BeNil())
			Expect(provider.narratives.lastStatus).To(Equal(model.NarrativeEnvelopeStatusRejected))
			Expect(provider.narratives.lastStatusErr).NotTo(BeNil())
		})

		It("rejects undecodable payloads", func() {
			provider.narratives.getByIDFn = func(_ context.Context, _ int64) (*model.NarrativeEnvelope, error) {
				return stored(json.RawMessage(`{"focus":`)), nil
			}

			Expect(svc.Apply(ctx, 900)).To(Succeed())
			Expect(provider.narratives.lastStatus).To(Equal(model.NarrativeEnvelopeStatusRejected))
		})
	})
})
