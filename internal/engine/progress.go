package engine

import (
	"sort"
	"time"
)

// minWeeklyTarget floors the target so sparse schedules still read as a goal.
const minWeeklyTarget = 3

// Progress summarizes check-in completion for one week.
type Progress struct {
	Completed   int      `json:"completed"`
	Target      int      `json:"target"`
	DaysChecked []string `json:"days_checked"`
}

// ComputeProgress counts distinct check-in days inside [weekStart, weekEnd].
// Multiple check-ins on the same calendar day count once, and check-ins
// outside the week are ignored. The result is recomputed from the full log,
// never incremented.
func ComputeProgress(checkins []time.Time, weekStart, weekEnd time.Time, recommendedDays int) Progress {
	start := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())
	end := time.Date(weekEnd.Year(), weekEnd.Month(), weekEnd.Day(), 0, 0, 0, 0, weekEnd.Location()).AddDate(0, 0, 1)

	seen := make(map[string]struct{})
	for _, at := range checkins {
		at = at.In(start.Location())
		if at.Before(start) || !at.Before(end) {
			continue
		}
		seen[at.Format("2006-01-02")] = struct{}{}
	}

	days := make([]string, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Strings(days)

	target := recommendedDays
	if target < minWeeklyTarget {
		target = minWeeklyTarget
	}

	return Progress{
		Completed:   len(days),
		Target:      target,
		DaysChecked: days,
	}
}
