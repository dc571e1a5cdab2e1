package dateutil

import (
	"testing"
	"time"
)

func TestAddDaysPreservesTimeOfDay(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{
			"simple shift",
			time.Date(2024, 1, 1, 10, 30, 0, 0, time.Local), 7,
			time.Date(2024, 1, 8, 10, 30, 0, 0, time.Local),
		},
		{
			"month boundary",
			time.Date(2024, 1, 30, 9, 0, 0, 0, time.Local), 3,
			time.Date(2024, 2, 2, 9, 0, 0, 0, time.Local),
		},
		{
			"year boundary",
			time.Date(2023, 12, 30, 23, 59, 0, 0, time.Local), 5,
			time.Date(2024, 1, 4, 23, 59, 0, 0, time.Local),
		},
		{
			"leap day",
			time.Date(2024, 2, 28, 12, 0, 0, 0, time.Local), 1,
			time.Date(2024, 2, 29, 12, 0, 0, 0, time.Local),
		},
		{
			"negative shift",
			time.Date(2024, 3, 1, 8, 15, 0, 0, time.Local), -1,
			time.Date(2024, 2, 29, 8, 15, 0, 0, time.Local),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AddDays(tc.in, tc.n)
			if !got.Equal(tc.want) {
				t.Errorf("AddDays(%v, %d) = %v, want %v", tc.in, tc.n, got, tc.want)
			}
		})
	}
}

func TestAddDaysAcrossDSTKeepsWallClock(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	// Brazil ended DST on 2019-02-17; a calendar-day shift across the
	// transition must keep 10:00 on the wall clock.
	in := time.Date(2019, 2, 16, 10, 0, 0, 0, loc)
	got := AddDays(in, 2)
	if got.Hour() != 10 || got.Day() != 18 {
		t.Errorf("AddDays across DST = %v, want Feb 18 10:00", got)
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 6, 15, 17, 45, 30, 123, time.Local)
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	if got := StartOfDay(in); !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2024, 6, 15, 3, 0, 0, 0, time.Local)
	want := time.Date(2024, 6, 15, 23, 59, 59, 999000000, time.Local)
	if got := EndOfDay(in); !got.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", got, want)
	}
}

func TestWeekRange(t *testing.T) {
	cases := []struct {
		name      string
		in        time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			"wednesday",
			time.Date(2024, 1, 10, 15, 0, 0, 0, time.Local),
			time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local),
			time.Date(2024, 1, 14, 23, 59, 59, 999000000, time.Local),
		},
		{
			"monday is its own week start",
			time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local),
			time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local),
			time.Date(2024, 1, 14, 23, 59, 59, 999000000, time.Local),
		},
		{
			"sunday belongs to the week it ends",
			time.Date(2024, 1, 14, 12, 0, 0, 0, time.Local),
			time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local),
			time.Date(2024, 1, 14, 23, 59, 59, 999000000, time.Local),
		},
		{
			"week spanning a month boundary",
			time.Date(2024, 1, 31, 12, 0, 0, 0, time.Local),
			time.Date(2024, 1, 29, 0, 0, 0, 0, time.Local),
			time.Date(2024, 2, 4, 23, 59, 59, 999000000, time.Local),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := WeekRange(tc.in)
			if !start.Equal(tc.wantStart) {
				t.Errorf("WeekRange(%v) start = %v, want %v", tc.in, start, tc.wantStart)
			}
			if !end.Equal(tc.wantEnd) {
				t.Errorf("WeekRange(%v) end = %v, want %v", tc.in, end, tc.wantEnd)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	b := time.Date(2024, 1, 10, 23, 59, 0, 0, time.Local)
	c := time.Date(2024, 1, 11, 0, 0, 0, 0, time.Local)
	if !SameDay(a, b) {
		t.Error("SameDay(midnight, just before next midnight) = false, want true")
	}
	if SameDay(b, c) {
		t.Error("SameDay across midnight = true, want false")
	}
}

func TestFormatDate(t *testing.T) {
	in := time.Date(2024, 3, 5, 14, 0, 0, 0, time.Local)
	if got := FormatDate(in); got != "05/03/2024" {
		t.Errorf("FormatDate = %q, want %q", got, "05/03/2024")
	}
}

func TestDateFromParts(t *testing.T) {
	cases := []struct {
		name             string
		day, month, year int
		wantErr          bool
	}{
		{"valid", 15, 6, 2024, false},
		{"leap day", 29, 2, 2024, false},
		{"day out of range", 32, 1, 2024, true},
		{"month out of range", 1, 13, 2024, true},
		{"both out of range", 32, 13, 2024, true},
		{"non-leap february 29", 29, 2, 2023, true},
		{"zero day", 0, 6, 2024, true},
		{"zero year", 1, 1, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DateFromParts(tc.day, tc.month, tc.year)
			if tc.wantErr {
				if err == nil {
					t.Errorf("DateFromParts(%d, %d, %d) = %v, want error", tc.day, tc.month, tc.year, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DateFromParts(%d, %d, %d) error: %v", tc.day, tc.month, tc.year, err)
			}
			want := time.Date(tc.year, time.Month(tc.month), tc.day, 0, 0, 0, 0, time.Local)
			if !got.Equal(want) {
				t.Errorf("DateFromParts = %v, want %v", got, want)
			}
		})
	}
}
