package worker_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"skintel.app/core/internal/queue"
	"skintel.app/core/internal/service"
	"skintel.app/core/internal/worker"
)

type mockConsumer struct {
	acked    []string
	requeued []string
	dlq      []string
}

func (m *mockConsumer) Read(ctx context.Context) ([]queue.Message, error) {
	return nil, nil
}

func (m *mockConsumer) Ack(ctx context.Context, msg queue.Message) error {
	m.acked = append(m.acked, msg.ID)
	return nil
}

func (m *mockConsumer) Requeue(ctx context.Context, msg queue.Message, errMsg string) error {
	m.requeued = append(m.requeued, msg.ID)
	return nil
}

func (m *mockConsumer) SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error {
	m.dlq = append(m.dlq, msg.ID)
	return nil
}

type mockTaskProcessor struct {
	processFn func(ctx context.Context, msg queue.Message) error
	processed []queue.Message
}

func (m *mockTaskProcessor) Process(ctx context.Context, msg queue.Message) error {
	m.processed = append(m.processed, msg)
	if m.processFn != nil {
		return m.processFn(ctx, msg)
	}
	return nil
}

var _ = Describe("Worker", func() {
	var (
		consumer  *mockConsumer
		processor *mockTaskProcessor
		w         *worker.Worker
		ctx       context.Context
	)

	envelopeID := int64(900)
	msg := queue.Message{
		ID:         "1-0",
		TaskType:   queue.TaskTypeNarrativeEnriched,
		UserID:     42,
		EnvelopeID: &envelopeID,
		PeriodKey:  "2025-08-11",
		Attempt:    1,
	}

	BeforeEach(func() {
		ctx = context.Background()
		consumer = &mockConsumer{}
		processor = &mockTaskProcessor{}
		w = worker.New(consumer, processor, worker.Config{MaxAttempts: 3})
	})

	It("processes and acks a message", func() {
		Expect(w.ProcessMessage(ctx, msg)).To(Succeed())
		Expect(processor.processed).To(HaveLen(1))
		Expect(consumer.acked).To(Equal([]string{"1-0"}))
	})

	It("acks without retry when the referenced row is gone", func() {
		processor.processFn = func(_ context.Context, _ queue.Message) error {
			return service.ErrEnvelopeNotFound
		}
		Expect(w.ProcessMessage(ctx, msg)).To(Succeed())
		Expect(consumer.acked).To(Equal([]string{"1-0"}))
		Expect(consumer.requeued).To(BeEmpty())
		Expect(consumer.dlq).To(BeEmpty())
	})

	It("surfaces transient errors without acking", func() {
		processor.processFn = func(_ context.Context, _ queue.Message) error {
			return errors.New("db unavailable")
		}
		Expect(w.ProcessMessage(ctx, msg)).To(HaveOccurred())
		Expect(consumer.acked).To(BeEmpty())
	})
})
