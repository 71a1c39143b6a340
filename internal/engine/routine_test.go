package engine_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"skintel.app/core/internal/engine"
)

var _ = Describe("Period keys", func() {
	It("formats the month key from the calendar month", func() {
		Expect(engine.MonthKey(time.Date(2025, 8, 31, 23, 0, 0, 0, time.UTC))).To(Equal("2025-08"))
	})

	It("anchors the week key on Monday", func() {
		// 2025-08-31 is a Sunday; its week started Monday the 25th.
		sunday := time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC)
		monday := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)

		Expect(engine.WeekKey(sunday)).To(Equal("2025-08-25"))
		Expect(engine.WeekStart(sunday)).To(Equal(monday))
		Expect(engine.WeekStart(monday)).To(Equal(monday))
	})
})

var _ = Describe("DeriveMonthlyPlan", func() {
	var (
		reg *engine.Registry
		now time.Time
	)

	BeforeEach(func() {
		reg = engine.DefaultRegistry()
		now = time.Date(2025, 8, 12, 9, 0, 0, 0, time.UTC)
	})

	It("builds the goal from the declared concern ahead of inferred needs", func() {
		plan := engine.DeriveMonthlyPlan(engine.DeriveInput{
			ProfileConcern: engine.NeedSoothing,
			Needs:          []engine.PrioritizedNeed{{ID: engine.NeedHydration, Label: "수분 밀도"}},
			Now:            now,
		}, reg)

		Expect(plan.PeriodKey).To(Equal("2025-08"))
		Expect(plan.Goal).To(ContainSubstring("진정"))
	})

	It("falls back to the top need, then the default goal", func() {
		withNeed := engine.DeriveMonthlyPlan(engine.DeriveInput{
			Needs: []engine.PrioritizedNeed{{ID: engine.NeedHydration, Label: "수분 밀도"}},
			Now:   now,
		}, reg)
		bare := engine.DeriveMonthlyPlan(engine.DeriveInput{Now: now}, reg)

		Expect(withNeed.Goal).To(ContainSubstring("수분 밀도"))
		Expect(bare.Goal).To(Equal(reg.Defaults().Goal))
	})

	It("surfaces the first caution dimension, or the fallback when all is well", func() {
		items := []engine.ReportItem{
			{ID: "hydration", Status: engine.StatusGood, Description: "good"},
			{ID: "barrier", Status: engine.StatusCaution, Description: "barrier caution"},
			{ID: "radiance", Status: engine.StatusCaution, Description: "radiance caution"},
		}

		plan := engine.DeriveMonthlyPlan(engine.DeriveInput{Items: items, Now: now}, reg)
		calm := engine.DeriveMonthlyPlan(engine.DeriveInput{Now: now}, reg)

		Expect(plan.Cautions).To(Equal("barrier caution"))
		Expect(calm.Cautions).To(Equal(reg.Defaults().CautionFallback))
	})

	It("caps habits at three, tips first then the concern habit", func() {
		plan := engine.DeriveMonthlyPlan(engine.DeriveInput{
			ProfileConcern: engine.NeedSoothing,
			Tips:           []string{"tip1", "tip2", "tip3"},
			Now:            now,
		}, reg)

		Expect(plan.Habits).To(HaveLen(3))
		Expect(plan.Habits[0]).To(Equal("tip1"))
		Expect(plan.Habits[1]).To(Equal("tip2"))
	})
})

var _ = Describe("DeriveWeeklyPlan", func() {
	var (
		reg *engine.Registry
		now time.Time
	)

	BeforeEach(func() {
		reg = engine.DefaultRegistry()
		now = time.Date(2025, 8, 12, 9, 0, 0, 0, time.UTC)
	})

	It("focuses on the declared concern's topic with registry defaults", func() {
		plan := engine.DeriveWeeklyPlan(engine.DeriveInput{
			ProfileConcern: engine.NeedSoothing,
			Now:            now,
		}, reg)

		topic, ok := reg.TopicFor(engine.NeedSoothing)
		Expect(ok).To(BeTrue())
		Expect(plan.PeriodKey).To(Equal("2025-08-11"))
		Expect(plan.FocusTopic).To(Equal(topic.Label))
		Expect(plan.Actions).To(Equal(topic.Actions))
		Expect(plan.RecommendedDays).To(Equal(reg.Defaults().RecommendedDays))
		Expect(plan.Intensity).To(Equal(reg.Defaults().Intensity))
		Expect(plan.Conclusion).To(Equal(reg.Defaults().Conclusion))
		Expect(plan.Warnings).To(Equal([]string{reg.Defaults().Warning}))
	})

	It("prefers the narrative envelope over the topic table", func() {
		env := &engine.NarrativeEnvelope{
			Focus:    &engine.NarrativeFocus{Topic: "저자극 주간", Reason: "민감 반응이 계속돼요"},
			OneLiner: "이번 주는 덜어내는 주간이에요.",
			Actions:  []engine.RoutineAction{{Title: "세안 단순화", Description: "저녁 이중세안을 쉬어가요."}},
			Warnings: []string{"각질 제거는 쉬어가세요."},
		}

		plan := engine.DeriveWeeklyPlan(engine.DeriveInput{
			ProfileConcern: engine.NeedSoothing,
			Envelope:       env,
			Now:            now,
		}, reg)

		Expect(plan.FocusTopic).To(Equal("저자극 주간"))
		Expect(plan.FocusReason).To(Equal("민감 반응이 계속돼요"))
		Expect(plan.Conclusion).To(Equal("이번 주는 덜어내는 주간이에요."))
		Expect(plan.Actions).To(Equal(env.Actions))
		Expect(plan.Warnings).To(Equal(env.Warnings))
	})

	It("keeps topic actions when the envelope only carries a focus", func() {
		env := &engine.NarrativeEnvelope{
			Focus: &engine.NarrativeFocus{Topic: "저자극 주간"},
		}

		plan := engine.DeriveWeeklyPlan(engine.DeriveInput{
			ProfileConcern: engine.NeedSoothing,
			Envelope:       env,
			Now:            now,
		}, reg)

		topic, _ := reg.TopicFor(engine.NeedSoothing)
		Expect(plan.FocusTopic).To(Equal("저자극 주간"))
		Expect(plan.Actions).To(Equal(topic.Actions))
		Expect(plan.Conclusion).To(Equal(reg.Defaults().Conclusion))
	})
})

var _ = Describe("ApplyWeeklyPatch", func() {
	var (
		reg  *engine.Registry
		plan engine.WeeklyPlan
	)

	BeforeEach(func() {
		reg = engine.DefaultRegistry()
		plan = engine.DeriveWeeklyPlan(engine.DeriveInput{
			ProfileConcern: engine.NeedSoothing,
			Now:            time.Date(2025, 8, 12, 9, 0, 0, 0, time.UTC),
		}, reg)
	})

	It("only touches the fields the patch carries", func() {
		focus := engine.IntensityFocus
		patched := engine.ApplyWeeklyPatch(plan, engine.WeeklyPatch{Intensity: &focus})

		Expect(patched.Intensity).To(Equal(engine.IntensityFocus))
		Expect(patched.RecommendedDays).To(Equal(plan.RecommendedDays))
		Expect(patched.OptionalSteps).To(Equal(plan.OptionalSteps))
		Expect(patched.FocusTopic).To(Equal(plan.FocusTopic))
	})

	It("replaces slices wholesale when present", func() {
		patched := engine.ApplyWeeklyPatch(plan, engine.WeeklyPatch{
			RecommendedDays: []string{"Tue", "Sat"},
		})

		Expect(patched.RecommendedDays).To(Equal([]string{"Tue", "Sat"}))
		Expect(patched.Intensity).To(Equal(plan.Intensity))
	})

	It("does not mutate the input plan", func() {
		before := append([]string(nil), plan.RecommendedDays...)
		patched := engine.ApplyWeeklyPatch(plan, engine.WeeklyPatch{
			RecommendedDays: []string{"Sun"},
		})
		patched.RecommendedDays[0] = "Mon"

		Expect(plan.RecommendedDays).To(Equal(before))
	})
})

var _ = Describe("RotateDays", func() {
	var (
		reg       *engine.Registry
		weekStart time.Time
	)

	BeforeEach(func() {
		reg = engine.DefaultRegistry()
		weekStart = time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC)
	})

	It("is deterministic for the same user, week and step", func() {
		a := engine.RotateDays(42, weekStart, 0, reg)
		b := engine.RotateDays(42, weekStart, 0, reg)

		Expect(a).To(Equal(b))
	})

	It("always answers with one of the registry day-sets", func() {
		days := engine.RotateDays(42, weekStart, 0, reg)

		Expect(reg.Defaults().DaySets).To(ContainElement(days))
	})

	It("moves to a different set on the next rebalance", func() {
		first := engine.RotateDays(42, weekStart, 0, reg)
		second := engine.RotateDays(42, weekStart, 1, reg)

		Expect(second).NotTo(Equal(first))
	})

	It("cycles back after as many steps as there are sets", func() {
		sets := len(reg.Defaults().DaySets)

		Expect(engine.RotateDays(42, weekStart, sets, reg)).To(Equal(engine.RotateDays(42, weekStart, 0, reg)))
	})
})
