package worker_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"skintel.app/core/internal/model"
	"skintel.app/core/internal/queue"
	"skintel.app/core/internal/service"
	"skintel.app/core/internal/worker"
)

type mockRoutineService struct {
	monthlyCalls int
	weeklyCalls  int
}

func (m *mockRoutineService) MonthlyFor(ctx context.Context, userID int64, now time.Time) (*model.MonthlyRoutine, error) {
	m.monthlyCalls++
	return &model.MonthlyRoutine{UserID: userID}, nil
}

func (m *mockRoutineService) WeeklyFor(ctx context.Context, userID int64, now time.Time) (*service.WeeklyRoutineResult, error) {
	m.weeklyCalls++
	return &service.WeeklyRoutineResult{Routine: &model.WeeklyRoutine{UserID: userID}}, nil
}

func (m *mockRoutineService) UpdateWeekly(ctx context.Context, userID int64, patch service.WeeklyPatchParams, now time.Time) (*service.WeeklyRoutineResult, error) {
	return nil, nil
}

func (m *mockRoutineService) Rebalance(ctx context.Context, userID int64, now time.Time) (*service.WeeklyRoutineResult, error) {
	return nil, nil
}

func (m *mockRoutineService) RecordCheckin(ctx context.Context, userID int64, at time.Time) (*service.WeeklyRoutineResult, error) {
	return nil, nil
}

type mockNarrativeService struct {
	appliedIDs []int64
}

func (m *mockNarrativeService) Receive(ctx context.Context, params service.NarrativeEnvelopeParams) (*model.NarrativeEnvelope, error) {
	return nil, nil
}

func (m *mockNarrativeService) Apply(ctx context.Context, envelopeID int64) error {
	m.appliedIDs = append(m.appliedIDs, envelopeID)
	return nil
}

var _ = Describe("TaskProcessor", func() {
	var (
		routines   *mockRoutineService
		narratives *mockNarrativeService
		processor  worker.TaskProcessor
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		routines = &mockRoutineService{}
		narratives = &mockNarrativeService{}
		processor = worker.NewTaskProcessor(routines, narratives)
	})

	It("applies narrative envelopes", func() {
		envelopeID := int64(900)
		err := processor.Process(ctx, queue.Message{
			TaskType:   queue.TaskTypeNarrativeEnriched,
			UserID:     42,
			EnvelopeID: &envelopeID,
			PeriodKey:  "2025-08-11",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(narratives.appliedIDs).To(Equal([]int64{900}))
	})

	It("warms both routines after an analysis", func() {
		sessionID := int64(100)
		err := processor.Process(ctx, queue.Message{
			TaskType:  queue.TaskTypeAnalysisCompleted,
			UserID:    42,
			SessionID: &sessionID,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(routines.monthlyCalls).To(Equal(1))
		Expect(routines.weeklyCalls).To(Equal(1))
	})

	It("acks check-in tasks without side effects", func() {
		routineID := int64(500)
		err := processor.Process(ctx, queue.Message{
			TaskType:  queue.TaskTypeCheckinRecorded,
			UserID:    42,
			RoutineID: &routineID,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(routines.monthlyCalls).To(BeZero())
		Expect(routines.weeklyCalls).To(BeZero())
	})

	It("rejects unknown task types", func() {
		err := processor.Process(ctx, queue.Message{TaskType: "mystery", UserID: 42})
		Expect(err).To(HaveOccurred())
	})
})
