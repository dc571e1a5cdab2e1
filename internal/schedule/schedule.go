package schedule

import (
	"time"

	"github.com/jewebs/sistema-gestao-conteudo/internal/dateutil"
	"github.com/jewebs/sistema-gestao-conteudo/internal/filter"
	"github.com/jewebs/sistema-gestao-conteudo/internal/model"
)

// maxDays caps the day enumeration so a malformed or huge range truncates
// instead of hanging.
const maxDays = 366

// DayBucket groups the tasks spanning one calendar day.
type DayBucket struct {
	Day   time.Time    `json:"day"`
	Tasks []model.Task `json:"tasks"`
}

// Grouping is the day-bucketed view. When no effective range exists but tasks
// do, Flat holds them all as a single unlabeled bucket.
type Grouping struct {
	Days []DayBucket  `json:"days,omitempty"`
	Flat []model.Task `json:"flat,omitempty"`
}

// EffectiveRange resolves the window used for day bucketing: the filter's
// range when both bounds are set, else the span covering all tasks. The second
// return is false when no range can be computed.
func EffectiveRange(spec filter.Spec, tasks []model.Task) (filter.DateRange, bool) {
	if spec.DateRange.Bounded() {
		return spec.DateRange, true
	}

	if len(tasks) == 0 {
		return filter.DateRange{}, false
	}

	minStart := tasks[0].StartDate
	maxEnd := tasks[0].EndDate
	for _, t := range tasks {
		if t.StartDate.Before(minStart) {
			minStart = t.StartDate
		}
		if t.EndDate.After(maxEnd) {
			maxEnd = t.EndDate
		}
	}
	return filter.DateRange{Start: minStart, End: maxEnd}, true
}

// GroupByDay partitions tasks into per-day buckets across the effective range.
// A task lands in every day its [start, end] calendar span covers; days with
// no tasks are omitted; bucket order is chronological and the task order inside
// each bucket is the input order.
func GroupByDay(tasks []model.Task, spec filter.Spec) Grouping {
	rng, ok := EffectiveRange(spec, tasks)
	if !ok {
		return Grouping{}
	}

	day := dateutil.StartOfDay(rng.Start)
	last := dateutil.StartOfDay(rng.End)
	if day.After(last) {
		// An inverted range enumerates no days; fall back to the flat list.
		return Grouping{Flat: append([]model.Task(nil), tasks...)}
	}

	var days []DayBucket
	for i := 0; !day.After(last) && i < maxDays; i++ {
		var bucket []model.Task
		for _, t := range tasks {
			if spansDay(t, day) {
				bucket = append(bucket, t)
			}
		}
		if len(bucket) > 0 {
			days = append(days, DayBucket{Day: day, Tasks: bucket})
		}
		day = dateutil.AddDays(day, 1)
	}

	return Grouping{Days: days}
}

func spansDay(t model.Task, day time.Time) bool {
	start := dateutil.StartOfDay(t.StartDate)
	end := dateutil.StartOfDay(t.EndDate)
	return !day.Before(start) && !day.After(end)
}
