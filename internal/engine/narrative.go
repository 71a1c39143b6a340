package engine

import "fmt"

// Narrative is the human-readable layer of an analysis. Pure string templating
// keyed off needs and signals; every sentence traces back to one of them.
type Narrative struct {
	Summary   string   `json:"summary"`
	Highlight string   `json:"highlight"`
	Tips      []string `json:"tips"`
}

const maxTips = 3

// Compose builds summary, highlight, and up to three tips from the prioritized
// needs. When the sunscreen signal is negative the safety tip is always kept,
// displacing the lowest-priority need tip if necessary.
func Compose(ctx *Context, needs []PrioritizedNeed, reg *Registry) Narrative {
	top := needs[0]

	summary := fmt.Sprintf(
		"촬영 %d장과 설문 응답을 종합한 결과, 지금은 %s가 가장 필요한 상태예요.",
		ctx.PhotoCount, top.Label,
	)

	highlight := top.Description
	if len(top.Reasons) > 0 {
		highlight = fmt.Sprintf("%s — %s", top.Label, top.Reasons[0])
	}

	needSunTip := ctx.Answers[QuestionSunscreen] != AnswerYes

	tips := make([]string, 0, maxTips)
	limit := maxTips
	if needSunTip {
		limit = maxTips - 1
	}
	for _, n := range needs {
		if len(tips) >= limit {
			break
		}
		if def, ok := reg.Need(n.ID); ok {
			tips = append(tips, def.Tip)
		}
	}
	if needSunTip {
		tips = append(tips, SafetyTip)
	}

	return Narrative{
		Summary:   summary,
		Highlight: highlight,
		Tips:      tips,
	}
}
