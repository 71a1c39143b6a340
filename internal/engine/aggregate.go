package engine

import "strings"

// ScoreEntry is the accumulated weight and justifications for one need.
// Transient working state; built per request, never persisted.
type ScoreEntry struct {
	Tag     NeedTag
	Score   float64
	Reasons []string

	// registration order of the first bump, the explicit secondary sort key
	// that makes equal-score ordering reproducible.
	seq int
}

// Context is the normalized view of one user's signals plus the mutable
// need→score accumulator the scorer works on.
type Context struct {
	HasBaselinePhoto bool
	HasCloseupPhoto  bool
	PhotoCount       int
	Answers          map[string]AnswerValue

	scores map[NeedTag]*ScoreEntry
	nextSeq int
}

// Score returns the aggregated score for a tag, zero when nothing fired.
func (c *Context) Score(tag NeedTag) float64 {
	if e, ok := c.scores[tag]; ok {
		return e.Score
	}
	return 0
}

// FirstReason returns the earliest recorded justification for a tag.
func (c *Context) FirstReason(tag NeedTag) (string, bool) {
	e, ok := c.scores[tag]
	if !ok || len(e.Reasons) == 0 {
		return "", false
	}
	return e.Reasons[0], true
}

func (c *Context) bump(tag NeedTag, delta float64, reason string) {
	entry, ok := c.scores[tag]
	if !ok {
		entry = &ScoreEntry{Tag: tag, seq: c.nextSeq}
		c.nextSeq++
		c.scores[tag] = entry
	}
	entry.Score += delta
	entry.Reasons = append(entry.Reasons, reason)
}

// Aggregate reduces photo metadata and lifestyle answers into a Context and
// applies the registry's rule table. Profile answers act as defaults; a session
// answer for the same question key wins regardless of timestamps. Malformed
// answers are dropped and never bump a score.
func Aggregate(photos []PhotoSignal, sessionAnswers, profileAnswers []AnswerSignal, reg *Registry) *Context {
	ctx := &Context{
		Answers: make(map[string]AnswerValue),
		scores:  make(map[NeedTag]*ScoreEntry),
	}

	for _, a := range profileAnswers {
		if a.QuestionKey == "" || !a.Answer.Valid() {
			continue
		}
		ctx.Answers[a.QuestionKey] = a.Answer
	}
	for _, a := range sessionAnswers {
		if a.QuestionKey == "" || !a.Answer.Valid() {
			continue
		}
		ctx.Answers[a.QuestionKey] = a.Answer
	}

	for _, p := range photos {
		ctx.PhotoCount++
		switch strings.ToLower(strings.TrimSpace(p.ShotType)) {
		case ShotTypeBaseline:
			ctx.HasBaselinePhoto = true
		case ShotTypeCloseup:
			ctx.HasCloseupPhoto = true
		}
	}

	for _, rule := range reg.Rules() {
		if !ctx.matches(rule.Cond) {
			continue
		}
		for _, b := range rule.Bumps {
			ctx.bump(b.Tag, b.Delta, b.Reason)
		}
	}

	return ctx
}

func (c *Context) matches(cond Condition) bool {
	switch cond.Kind {
	case CondPhotoMissing:
		switch cond.ShotType {
		case ShotTypeBaseline:
			return !c.HasBaselinePhoto
		case ShotTypeCloseup:
			return !c.HasCloseupPhoto
		}
		return false
	case CondAnswerIs:
		return c.Answers[cond.Question] == cond.Answer
	case CondAnswerNot:
		v, ok := c.Answers[cond.Question]
		return ok && v != cond.Answer
	default:
		return false
	}
}
