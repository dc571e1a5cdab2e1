package dateutil

import (
	"fmt"
	"time"
)

// AddDays shifts t by n calendar days, preserving the wall-clock time. The
// shift goes through time.Date so month/year boundaries and DST transitions
// resolve by calendar day, not by fixed 24h increments.
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

// WeekRange returns the Monday 00:00:00.000 through Sunday 23:59:59.999 window
// containing t. A Sunday belongs to the week it ends, not the next one.
func WeekRange(t time.Time) (start, end time.Time) {
	weekday := int(t.Weekday()) // Sunday = 0
	diffToMonday := weekday - 1
	if weekday == 0 {
		diffToMonday = 6
	}
	monday := StartOfDay(AddDays(t, -diffToMonday))
	return monday, EndOfDay(AddDays(monday, 6))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FormatDate renders t as DD/MM/YYYY, the export date format.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// DateFromParts builds local midnight of a civil date from a 1-indexed
// day/month/year triple. Out-of-range parts (32/13/...) are rejected rather
// than normalized the way time.Date would.
func DateFromParts(day, month, year int) (time.Time, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date parts %d/%d/%d", day, month, year)
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date parts %d/%d/%d", day, month, year)
	}
	return d, nil
}
