package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"skintel.app/core/internal/engine"
)

var _ = Describe("Compose", func() {
	var reg *engine.Registry

	BeforeEach(func() {
		reg = engine.DefaultRegistry()
	})

	It("always includes the sunscreen tip when the user skips sunscreen", func() {
		ctx := engine.Aggregate(
			[]engine.PhotoSignal{baselinePhoto(), {ShotType: engine.ShotTypeCloseup}},
			[]engine.AnswerSignal{
				{QuestionKey: "sensitive_skin", Answer: engine.AnswerYes},
				{QuestionKey: "daily_sunscreen", Answer: engine.AnswerNo},
				{QuestionKey: "oily_tzone", Answer: engine.AnswerYes},
				{QuestionKey: "late_sleep", Answer: engine.AnswerYes},
			},
			nil,
			reg,
		)
		needs := engine.Prioritize(ctx, reg)

		n := engine.Compose(ctx, needs, reg)

		Expect(n.Tips).To(ContainElement(engine.SafetyTip))
		Expect(len(n.Tips)).To(BeNumerically("<=", 3))
	})

	It("also reserves the sunscreen tip when the question was never answered", func() {
		ctx := engine.Aggregate([]engine.PhotoSignal{baselinePhoto()}, nil, nil, reg)
		needs := engine.Prioritize(ctx, reg)

		n := engine.Compose(ctx, needs, reg)

		Expect(n.Tips).To(ContainElement(engine.SafetyTip))
	})

	It("summarizes the photo count and the top need", func() {
		ctx := engine.Aggregate(
			[]engine.PhotoSignal{baselinePhoto(), {ShotType: engine.ShotTypeCloseup}},
			[]engine.AnswerSignal{{QuestionKey: "sensitive_skin", Answer: engine.AnswerYes}},
			nil,
			reg,
		)
		needs := engine.Prioritize(ctx, reg)

		n := engine.Compose(ctx, needs, reg)

		Expect(n.Summary).To(ContainSubstring("촬영 2장"))
		Expect(n.Summary).To(ContainSubstring(needs[0].Label))
	})

	It("highlights the top need with the reason that raised it", func() {
		ctx := engine.Aggregate(
			[]engine.PhotoSignal{baselinePhoto(), {ShotType: engine.ShotTypeCloseup}},
			[]engine.AnswerSignal{{QuestionKey: "sensitive_skin", Answer: engine.AnswerYes}},
			nil,
			reg,
		)
		needs := engine.Prioritize(ctx, reg)

		n := engine.Compose(ctx, needs, reg)

		reason, ok := ctx.FirstReason(needs[0].ID)
		Expect(ok).To(BeTrue())
		Expect(n.Highlight).To(ContainSubstring(needs[0].Label))
		Expect(n.Highlight).To(ContainSubstring(reason))
	})
})
