package engine

import "sort"

const (
	levelThreshold   = 2.0
	cautionThreshold = 2.0
	neutralThreshold = 1.0
	maxNeeds         = 3
)

// PrioritizedNeed is one of the top needs surfaced to the caller.
type PrioritizedNeed struct {
	ID          NeedTag  `json:"id"`
	Label       string   `json:"label"`
	Level       Level    `json:"level"`
	Description string   `json:"description"`
	Reasons     []string `json:"reasons"`
}

// ReportItem is one fixed inspectable dimension with a qualitative status.
type ReportItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Comparison  string `json:"comparison"`
	Status      Status `json:"status"`
}

// Prioritize ranks the accumulated scores and returns at most three needs.
// Ties break by first registration: the rule table applies in a fixed order,
// so the earlier-bumped tag wins. When nothing fired at all, a hydration need
// at score 1 is injected so the list is never empty.
func Prioritize(ctx *Context, reg *Registry) []PrioritizedNeed {
	if len(ctx.scores) == 0 {
		ctx.bump(NeedHydration, 1, reg.Defaults().InjectedReason)
	}

	entries := make([]*ScoreEntry, 0, len(ctx.scores))
	for _, e := range ctx.scores {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].seq < entries[j].seq
	})

	if len(entries) > maxNeeds {
		entries = entries[:maxNeeds]
	}

	needs := make([]PrioritizedNeed, 0, len(entries))
	for _, e := range entries {
		def, ok := reg.Need(e.Tag)
		if !ok {
			continue
		}
		level := LevelMedium
		if e.Score >= levelThreshold {
			level = LevelHigh
		}
		needs = append(needs, PrioritizedNeed{
			ID:          e.Tag,
			Label:       def.Label,
			Level:       level,
			Description: def.Description,
			Reasons:     append([]string(nil), e.Reasons...),
		})
	}
	return needs
}

// ReportItems derives the fixed-cardinality report from the same aggregated
// scores that feed Prioritize, so a dimension's status stays visible even when
// its need did not make the top three. Dimensions with multiple tags sum their
// scores before thresholding.
func ReportItems(ctx *Context, reg *Registry) []ReportItem {
	dims := reg.Dimensions()
	items := make([]ReportItem, 0, len(dims))
	for _, dim := range dims {
		var score float64
		for _, tag := range dim.Tags {
			score += ctx.Score(tag)
		}
		status := statusFor(score)
		items = append(items, ReportItem{
			ID:          dim.ID,
			Title:       dim.Title,
			Description: dim.Descriptions[status],
			Comparison:  dim.Comparisons[status],
			Status:      status,
		})
	}
	return items
}

func statusFor(score float64) Status {
	switch {
	case score >= cautionThreshold:
		return StatusCaution
	case score >= neutralThreshold:
		return StatusNeutral
	default:
		return StatusGood
	}
}
