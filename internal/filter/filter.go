package filter

import (
	"sort"
	"time"

	"github.com/jewebs/sistema-gestao-conteudo/internal/dateutil"
	"github.com/jewebs/sistema-gestao-conteudo/internal/model"
)

// DateRange bounds the filter window. A zero side means unbounded; the date
// predicate only applies when both sides are set.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) Bounded() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Spec is the transient filter state. Empty string fields match everything.
type Spec struct {
	DateRange DateRange `json:"dateRange"`
	Client    string    `json:"client"`
	GmbStatus string    `json:"gmbStatus"`
}

// Reset returns the cleared spec: unbounded range, any client, any gmb status.
func Reset() Spec {
	return Spec{}
}

// Apply returns the tasks matching every predicate of spec, sorted by priority
// rank then ascending start date. The sort is stable, so tasks tying on both
// keep their input order.
func Apply(tasks []model.Task, spec Spec) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchDate(t, spec.DateRange) {
			continue
		}
		if spec.Client != "" && t.Client != spec.Client {
			continue
		}
		if spec.GmbStatus != "" && t.GmbSubtask.Status.String() != spec.GmbStatus {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority.Rank() != out[j].Priority.Rank() {
			return out[i].Priority.Rank() < out[j].Priority.Rank()
		}
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out
}

// matchDate is interval overlap: the task passes when its [start, end] touches
// the filter window.
func matchDate(t model.Task, r DateRange) bool {
	if !r.Bounded() {
		return true
	}
	return !t.StartDate.After(r.End) && !t.EndDate.Before(r.Start)
}

// TodayRange is the "hoje" preset window.
func TodayRange(now time.Time) DateRange {
	return DateRange{Start: dateutil.StartOfDay(now), End: dateutil.EndOfDay(now)}
}

// WeekRange is the "esta semana" preset window, Monday through Sunday.
func WeekRange(now time.Time) DateRange {
	start, end := dateutil.WeekRange(now)
	return DateRange{Start: start, End: end}
}

// MonthRange is the "este mês" preset: a rolling 30-day window from today, not
// the calendar month.
func MonthRange(now time.Time) DateRange {
	start := dateutil.StartOfDay(now)
	return DateRange{Start: start, End: dateutil.EndOfDay(dateutil.AddDays(start, 29))}
}

// RangeActive reports whether the spec's range matches a preset window,
// comparing calendar days only.
func RangeActive(spec Spec, preset DateRange) bool {
	if !spec.DateRange.Bounded() {
		return false
	}
	return dateutil.SameDay(spec.DateRange.Start, preset.Start) &&
		dateutil.SameDay(spec.DateRange.End, preset.End)
}
