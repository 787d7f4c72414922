package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const MinutesPerDay = 24 * 60

// Clock converts absolute instants into the wall-clock time of a single
// fixed UTC-offset zone. The offset is whole hours, signed (e.g. -3), read
// once from the environment and threaded in here explicitly. There are no
// daylight-saving transitions in this model.
type Clock struct {
	offset time.Duration
}

func NewClock(offsetHours int) *Clock {
	return &Clock{offset: time.Duration(offsetHours) * time.Hour}
}

// ToLocal shifts t so that its UTC calendar fields (weekday, hour, minute)
// read as local wall-clock fields.
func (c *Clock) ToLocal(t time.Time) time.Time {
	return t.UTC().Add(c.offset)
}

// Weekday is the local day of week of t (Sunday = 0).
func (c *Clock) Weekday(t time.Time) time.Weekday {
	return c.ToLocal(t).Weekday()
}

// MinutesOfDay is the local wall-clock minute of t, in [0, 1440).
func (c *Clock) MinutesOfDay(t time.Time) int {
	lt := c.ToLocal(t)
	return lt.Hour()*60 + lt.Minute()
}

// DayBounds returns the absolute instants delimiting the local calendar day
// containing t: local midnight and local 23:59:59.999.
func (c *Clock) DayBounds(t time.Time) (time.Time, time.Time) {
	lt := c.ToLocal(t)
	y, m, d := lt.Date()
	localMidnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	start := localMidnight.Add(-c.offset)
	end := start.Add(MinutesPerDay*time.Minute - time.Millisecond)
	return start, end
}

// InstantAt returns the absolute instant of the given local minute of day,
// on the local calendar day containing t.
func (c *Clock) InstantAt(t time.Time, minutes int) time.Time {
	start, _ := c.DayBounds(t)
	return start.Add(time.Duration(minutes) * time.Minute)
}

// ParseClock converts an "HH:MM" string to minutes of day. Missing or
// non-numeric components count as zero and no range check is applied
// ("25:99" parses to 1599), so schedule rows saved with odd values keep
// loading instead of breaking every availability check.
func ParseClock(s string) int {
	h, m := 0, 0

	parts := strings.SplitN(s, ":", 2)
	if len(parts) > 0 {
		if v, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
			h = v
		}
	}
	if len(parts) > 1 {
		if v, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			m = v
		}
	}

	return h*60 + m
}

// FormatMinutes renders a minute-of-day value as zero-padded "HH:MM". For
// display output only.
func FormatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
