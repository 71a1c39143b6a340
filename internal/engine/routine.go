package engine

import (
	"hash/fnv"
	"strconv"
	"time"
)

// NarrativeFocus is the focus declared by the external narrative collaborator.
type NarrativeFocus struct {
	Topic  string `json:"topic"`
	Reason string `json:"reason"`
}

// NarrativeEnvelope is the optional richer input the collaborator delivers.
// The engine treats its text as opaque; absent fields fall back to the
// registry's tables.
type NarrativeEnvelope struct {
	Focus    *NarrativeFocus `json:"focus,omitempty"`
	OneLiner string          `json:"one_liner,omitempty"`
	Actions  []RoutineAction `json:"actions,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`
}

// MonthlyPlan is the derived content of a monthly routine, before persistence.
type MonthlyPlan struct {
	PeriodKey string
	Goal      string
	Summary   []string
	Cautions  string
	Habits    []string
}

// WeeklyPlan is the derived content of a weekly routine, before persistence.
type WeeklyPlan struct {
	PeriodKey       string
	WeekStart       time.Time
	WeekEnd         time.Time
	FocusTopic      string
	FocusReason     string
	Conclusion      string
	RecommendedDays []string
	Intensity       Intensity
	OptionalSteps   []OptionalStep
	BaseRoutine     []string
	Actions         []RoutineAction
	Warnings        []string
}

// DeriveInput carries everything routine derivation may consult.
type DeriveInput struct {
	// ProfileConcern is the user's declared top concern, empty when undeclared.
	ProfileConcern NeedTag
	Needs          []PrioritizedNeed
	Items          []ReportItem
	Tips           []string
	Envelope       *NarrativeEnvelope
	Now            time.Time
}

// MonthKey returns the calendar-month period key, e.g. "2024-05".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// WeekStart returns the Monday of t's ISO week at midnight.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		offset = 6
	}
	return day.AddDate(0, 0, -offset)
}

// WeekKey returns the ISO-week period key: the week's Monday as a date string.
func WeekKey(t time.Time) string {
	return WeekStart(t).Format("2006-01-02")
}

const (
	maxMonthlySummary = 3
	maxMonthlyHabits  = 3
	maxHabitTips      = 2
)

// DeriveMonthlyPlan builds the month's goal, summary, cautions and habits.
// Goal resolution order: declared profile concern, top prioritized need,
// registry default. All fallbacks are silent.
func DeriveMonthlyPlan(in DeriveInput, reg *Registry) MonthlyPlan {
	defs := reg.Defaults()

	goal := defs.Goal
	if def, ok := reg.Need(in.ProfileConcern); ok {
		goal = def.Label + " 끌어올리기"
	} else if len(in.Needs) > 0 {
		goal = in.Needs[0].Label + " 끌어올리기"
	}

	summary := make([]string, 0, maxMonthlySummary)
	for _, item := range in.Items {
		if len(summary) >= maxMonthlySummary {
			break
		}
		summary = append(summary, item.Description)
	}
	if len(summary) == 0 {
		summary = append(summary, defs.SummaryFallback...)
	}

	cautions := defs.CautionFallback
	for _, item := range in.Items {
		if item.Status == StatusCaution {
			cautions = item.Description
			break
		}
	}

	habits := make([]string, 0, maxMonthlyHabits)
	for _, tip := range in.Tips {
		if len(habits) >= maxHabitTips {
			break
		}
		habits = append(habits, tip)
	}
	if def, ok := reg.Need(in.ProfileConcern); ok && def.Habit != "" {
		habits = append(habits, def.Habit)
	}
	if len(habits) > maxMonthlyHabits {
		habits = habits[:maxMonthlyHabits]
	}

	return MonthlyPlan{
		PeriodKey: MonthKey(in.Now),
		Goal:      goal,
		Summary:   summary,
		Cautions:  cautions,
		Habits:    habits,
	}
}

// DeriveWeeklyPlan builds the week's focus, actions, warnings and schedule.
// Focus resolution order: narrative envelope, declared profile concern mapped
// through the topic table, top prioritized need mapped the same way.
func DeriveWeeklyPlan(in DeriveInput, reg *Registry) WeeklyPlan {
	defs := reg.Defaults()
	weekStart := WeekStart(in.Now)

	plan := WeeklyPlan{
		PeriodKey:       WeekKey(in.Now),
		WeekStart:       weekStart,
		WeekEnd:         weekStart.AddDate(0, 0, 6),
		Conclusion:      defs.Conclusion,
		RecommendedDays: append([]string(nil), defs.RecommendedDays...),
		Intensity:       defs.Intensity,
		OptionalSteps:   append([]OptionalStep(nil), defs.OptionalSteps...),
		BaseRoutine:     append([]string(nil), defs.BaseRoutine...),
		Warnings:        []string{defs.Warning},
	}

	topic, topicOK := resolveTopic(in, reg)
	if topicOK {
		plan.FocusTopic = topic.Label
		plan.FocusReason = topic.Reason
		plan.Actions = append([]RoutineAction(nil), topic.Actions...)
	}

	if env := in.Envelope; env != nil {
		if env.Focus != nil && env.Focus.Topic != "" {
			plan.FocusTopic = env.Focus.Topic
			plan.FocusReason = env.Focus.Reason
		}
		if env.OneLiner != "" {
			plan.Conclusion = env.OneLiner
		}
		if len(env.Actions) > 0 {
			plan.Actions = append([]RoutineAction(nil), env.Actions...)
		}
		if len(env.Warnings) > 0 {
			plan.Warnings = append([]string(nil), env.Warnings...)
		}
	}

	return plan
}

func resolveTopic(in DeriveInput, reg *Registry) (Topic, bool) {
	if topic, ok := reg.TopicFor(in.ProfileConcern); ok {
		return topic, true
	}
	if len(in.Needs) > 0 {
		if topic, ok := reg.TopicFor(in.Needs[0].ID); ok {
			return topic, true
		}
	}
	return Topic{}, false
}

// WeeklyPatch is a merge-patch over a weekly plan: only non-nil fields are
// written, everything else stays untouched.
type WeeklyPatch struct {
	RecommendedDays []string       `json:"recommended_days,omitempty"`
	Intensity       *Intensity     `json:"intensity,omitempty"`
	OptionalSteps   []OptionalStep `json:"optional_steps,omitempty"`
}

// ApplyWeeklyPatch returns a new plan with the patch merged in. The input plan
// is never mutated.
func ApplyWeeklyPatch(plan WeeklyPlan, patch WeeklyPatch) WeeklyPlan {
	out := plan
	out.RecommendedDays = append([]string(nil), plan.RecommendedDays...)
	out.OptionalSteps = append([]OptionalStep(nil), plan.OptionalSteps...)

	if patch.RecommendedDays != nil {
		out.RecommendedDays = append([]string(nil), patch.RecommendedDays...)
	}
	if patch.Intensity != nil {
		out.Intensity = *patch.Intensity
	}
	if patch.OptionalSteps != nil {
		out.OptionalSteps = append([]OptionalStep(nil), patch.OptionalSteps...)
	}
	return out
}

// RotateDays picks one of the registry's fixed day-sets deterministically from
// (userID, weekStart, step). Step counts prior rebalances within the week, so
// repeated calls cycle through the sets instead of flapping.
func RotateDays(userID int64, weekStart time.Time, step int, reg *Registry) []string {
	sets := reg.Defaults().DaySets
	if len(sets) == 0 {
		return append([]string(nil), reg.Defaults().RecommendedDays...)
	}

	h := fnv.New32a()
	h.Write([]byte(strconv.FormatInt(userID, 10)))
	h.Write([]byte(weekStart.Format("2006-01-02")))

	idx := (int(h.Sum32()) + step) % len(sets)
	if idx < 0 {
		idx += len(sets)
	}
	return append([]string(nil), sets[idx]...)
}
