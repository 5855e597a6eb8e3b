package domain

import (
	"fmt"
	"time"
)

// DayLayout is the calendar-date format accepted and produced everywhere.
const DayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string into a calendar day (UTC midnight).
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, Invalid("invalid date %q, use YYYY-MM-DD", s)
	}
	return t, nil
}

// Day truncates t to its calendar day, expressed as UTC midnight. The
// year/month/day are taken in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current local calendar day.
func Today() time.Time {
	return Day(time.Now().In(time.Local))
}

// FormatDay renders a calendar day as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

const secondsPerDay = 24 * 60 * 60

// DaysInclusive returns the number of calendar days in [start, end]. It is
// zero or negative when end precedes start. Unix seconds are used instead
// of time.Duration, which overflows past about 292 years.
func DaysInclusive(start, end time.Time) int {
	return int((Day(end).Unix()-Day(start).Unix())/secondsPerDay) + 1
}

// MustParseDay is ParseDay for constants in tests and fixtures.
func MustParseDay(s string) time.Time {
	t, err := ParseDay(s)
	if err != nil {
		panic(fmt.Sprintf("domain: %v", err))
	}
	return t
}
