package fare

import (
	"fmt"
	"regexp"
	"time"
)

const minutesPerDay = 24 * 60

// Clock is a date-agnostic time of day, stored as minutes since midnight.
type Clock int

var clockRe = regexp.MustCompile(`\b(\d{2}):(\d{2})\b`)

// ParseClock parses "HH:MM", tolerating trailing text like "08:00 WIB".
func ParseClock(s string) (Clock, error) {
	m := clockRe.FindString(s)
	if m == "" {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	t, err := time.Parse("15:04", m)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

// Add shifts the clock by minutes, wrapping around midnight.
func (c Clock) Add(minutes int) Clock {
	m := (int(c) + minutes) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return Clock(m)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}
