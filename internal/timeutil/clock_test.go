package timeutil

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "opening time", in: "09:00", want: 540},
		{name: "closing time", in: "18:00", want: 1080},
		{name: "unpadded", in: "9:5", want: 545},
		{name: "no range check", in: "25:99", want: 1599},
		{name: "empty string", in: "", want: 0},
		{name: "hours only", in: "09", want: 540},
		{name: "garbage hours keep minutes", in: "abc:10", want: 10},
		{name: "garbage minutes keep hours", in: "10:abc", want: 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseClock(tt.in); got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{545, "09:05"},
		{1080, "18:00"},
		{1599, "26:39"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.in); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClockToLocal(t *testing.T) {
	c := NewClock(-3)

	// 16:30 UTC reads as 13:30 on the local wall clock.
	utc := time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC)
	lt := c.ToLocal(utc)

	if lt.Hour() != 13 || lt.Minute() != 30 {
		t.Errorf("ToLocal = %02d:%02d, want 13:30", lt.Hour(), lt.Minute())
	}
	if lt.Day() != 2 {
		t.Errorf("ToLocal day = %d, want 2", lt.Day())
	}
}

func TestClockWeekdayCrossesMidnight(t *testing.T) {
	c := NewClock(-3)

	// 01:00 UTC Monday is still 22:00 Sunday locally.
	utc := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	if got := c.Weekday(utc); got != time.Sunday {
		t.Errorf("Weekday = %v, want Sunday", got)
	}

	later := time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC)
	if got := c.Weekday(later); got != time.Monday {
		t.Errorf("Weekday = %v, want Monday", got)
	}
}

func TestClockMinutesOfDay(t *testing.T) {
	c := NewClock(-3)

	utc := time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC)
	if got := c.MinutesOfDay(utc); got != 810 {
		t.Errorf("MinutesOfDay = %d, want 810", got)
	}

	midnight := time.Date(2026, 3, 2, 3, 0, 0, 0, time.UTC)
	if got := c.MinutesOfDay(midnight); got != 0 {
		t.Errorf("MinutesOfDay at local midnight = %d, want 0", got)
	}
}

func TestClockDayBounds(t *testing.T) {
	c := NewClock(-3)

	// 00:00 UTC on March 2 still belongs to the local day March 1.
	utc := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	start, end := c.DayBounds(utc)

	wantStart := time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 3, 2, 2, 59, 59, 999e6, time.UTC)

	if !start.Equal(wantStart) {
		t.Errorf("DayBounds start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("DayBounds end = %v, want %v", end, wantEnd)
	}
}

func TestClockInstantAt(t *testing.T) {
	c := NewClock(-3)

	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC) // local Monday March 2

	// Local 13:00 on that Monday is 16:00 UTC.
	got := c.InstantAt(day, 780)
	want := time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("InstantAt(780) = %v, want %v", got, want)
	}
}

func TestClockPositiveOffset(t *testing.T) {
	c := NewClock(2)

	// 23:00 UTC is already the next local day.
	utc := time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC)
	lt := c.ToLocal(utc)
	if lt.Day() != 3 || lt.Hour() != 1 {
		t.Errorf("ToLocal = day %d %02d:00, want day 3 01:00", lt.Day(), lt.Hour())
	}
	if got := c.Weekday(utc); got != time.Tuesday {
		t.Errorf("Weekday = %v, want Tuesday", got)
	}
}
