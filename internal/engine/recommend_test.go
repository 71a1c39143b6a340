package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"skintel.app/core/internal/engine"
)

var _ = Describe("Recommend", func() {
	var (
		reg   *engine.Registry
		ctx   *engine.Context
		needs []engine.PrioritizedNeed
	)

	BeforeEach(func() {
		reg = engine.DefaultRegistry()
		ctx = engine.Aggregate(
			[]engine.PhotoSignal{baselinePhoto(), {ShotType: engine.ShotTypeCloseup}},
			[]engine.AnswerSignal{
				{QuestionKey: "sensitive_skin", Answer: engine.AnswerYes},
				{QuestionKey: "daily_sunscreen", Answer: engine.AnswerNo},
			},
			nil,
			reg,
		)
		needs = engine.Prioritize(ctx, reg)
	})

	It("attributes each item to the single best-matching need", func() {
		catalog := []engine.CatalogItem{
			{ID: "1", Name: "시카 수딩 크림", Category: "크림", EffectTags: []string{"진정", "soothing"}},
			{ID: "2", Name: "비타민 C 세럼", Category: "세럼", EffectTags: []string{"radiance", "브라이트닝"}},
		}

		recs := engine.Recommend(catalog, needs, ctx, reg)

		Expect(recs).To(HaveLen(2))
		Expect(recs[0].Focus).To(HaveLen(1))
		Expect(recs[0].Focus[0]).To(Equal(needs[0].Label))
	})

	It("ranks a top-need match above a lower-need match", func() {
		catalog := []engine.CatalogItem{
			{ID: "1", Name: "장벽 크림", EffectTags: []string{"barrier"}},
			{ID: "2", Name: "수딩 앰플", EffectTags: []string{"soothing"}},
		}

		recs := engine.Recommend(catalog, needs, ctx, reg)

		Expect(recs[0].ID).To(Equal("2"))
		Expect(recs[1].ID).To(Equal("1"))
	})

	It("carries the aggregation reason into the recommendation", func() {
		catalog := []engine.CatalogItem{
			{ID: "7", Name: "수딩 앰플", EffectTags: []string{"soothing"}},
		}

		recs := engine.Recommend(catalog, needs, ctx, reg)

		reason, ok := ctx.FirstReason(engine.NeedSoothing)
		Expect(ok).To(BeTrue())
		Expect(recs).To(HaveLen(1))
		Expect(recs[0].Reason).To(Equal(reason))
	})

	It("skips items matching none of the prioritized needs", func() {
		catalog := []engine.CatalogItem{
			{ID: "3", Name: "모공 클레이 마스크", EffectTags: []string{"pore_care"}},
		}

		recs := engine.Recommend(catalog, needs, ctx, reg)

		Expect(recs).To(BeEmpty())
	})

	It("deduplicates repeated catalog ids keeping the first", func() {
		catalog := []engine.CatalogItem{
			{ID: "5", Name: "수딩 앰플", Brand: "a", EffectTags: []string{"soothing"}},
			{ID: "5", Name: "수딩 앰플", Brand: "b", EffectTags: []string{"soothing"}},
		}

		recs := engine.Recommend(catalog, needs, ctx, reg)

		Expect(recs).To(HaveLen(1))
		Expect(recs[0].Brand).To(Equal("a"))
	})

	It("truncates key ingredients to four", func() {
		catalog := []engine.CatalogItem{
			{
				ID:             "9",
				Name:           "수딩 앰플",
				EffectTags:     []string{"soothing"},
				KeyIngredients: []string{"a", "b", "c", "d", "e", "f"},
			},
		}

		recs := engine.Recommend(catalog, needs, ctx, reg)

		Expect(recs[0].KeyIngredients).To(HaveLen(4))
	})
})

var _ = Describe("SplitTags", func() {
	It("splits on commas and pipes and trims whitespace", func() {
		Expect(engine.SplitTags([]string{"진정, soothing|barrier "})).To(Equal([]string{"진정", "soothing", "barrier"}))
	})

	It("returns nothing for empty input", func() {
		Expect(engine.SplitTags([]string{""})).To(BeEmpty())
	})
})
