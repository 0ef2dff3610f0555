// Package dates resolves relative date phrases ("last friday", "this monday",
// "yesterday") to calendar dates and holds the date layouts shared by the CLI
// and the calendar package.
//
// Resolution is a pure function of the phrase and an injected reference date.
// Nothing here reads the wall clock unless a Resolver is built without a clock.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// DateLayout is the ISO date layout used for arguments and record files.
	DateLayout = "2006-01-02"
	// LongLayout renders dates as "June 11, 2025".
	LongLayout = "January 2, 2006"
	// MonthLayout is used for --month arguments.
	MonthLayout = "2006-01"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FormatLong formats t as "{FullMonthName} {Day}, {Year}".
func FormatLong(t time.Time) string {
	return t.Format(LongLayout)
}

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// NoonOn returns 12:00 on the given calendar day in loc. Out-of-range days
// normalize the way time.Date does. Some zones skip local midnight at a DST
// change, so calendar days are represented at noon.
func NoonOn(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, loc)
}

// Noon returns 12:00 on t's calendar day in t's location.
func Noon(t time.Time) time.Time {
	return NoonOn(t.Year(), t.Month(), t.Day(), t.Location())
}

// AddDays moves t by n calendar days and returns noon of that day.
func AddDays(t time.Time, n int) time.Time {
	return NoonOn(t.Year(), t.Month(), t.Day()+n, t.Location())
}

// ParseDate parses a YYYY-MM-DD date as noon in loc (UTC when loc is nil).
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return NoonOn(t.Year(), t.Month(), t.Day(), loc), nil
}

// ParseMonth parses a YYYY-MM month argument.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, use YYYY-MM", s)
	}
	return t.Year(), t.Month(), nil
}

// ParseReferenceDate parses the value used as "today" by the CLI:
//   - empty: now
//   - YYYY-MM-DD: that date in loc
//   - any phrase the resolver recognizes, resolved against now with mode
func ParseReferenceDate(arg string, now time.Time, loc *time.Location, mode MatchMode) (time.Time, error) {
	if loc == nil {
		loc = now.Location()
	}
	now = now.In(loc)

	trimmed := strings.TrimSpace(arg)
	if trimmed == "" {
		return now, nil
	}
	if dateRegex.MatchString(trimmed) {
		return ParseDate(trimmed, loc)
	}

	res, ok := resolvePhrase(trimmed, now, mode)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid reference date '%s', use YYYY-MM-DD or a phrase like 'last friday'", arg)
	}
	return res.Date, nil
}
