package dates

import (
	"strings"
	"time"
)

// WeekdayName pairs a canonical lowercase weekday name with its time.Weekday.
type WeekdayName struct {
	Name    string
	Weekday time.Weekday
}

// weekdayTable is scanned in order, Sunday first. Phrase matching picks the
// first entry found, so the order is part of the resolver's behavior.
var weekdayTable = [7]WeekdayName{
	{"sunday", time.Sunday},
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
}

// Weekdays returns a copy of the weekday table in scan order.
func Weekdays() []WeekdayName {
	out := make([]WeekdayName, len(weekdayTable))
	copy(out, weekdayTable[:])
	return out
}

// LookupWeekday returns the weekday for a full weekday name (case-insensitive).
func LookupWeekday(name string) (time.Weekday, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range weekdayTable {
		if entry.Name == normalized {
			return entry.Weekday, true
		}
	}
	return time.Sunday, false
}

// findWeekday returns the first table weekday present in text.
func findWeekday(text string, has func(string, string) bool) (WeekdayName, bool) {
	for _, entry := range weekdayTable {
		if has(text, entry.Name) {
			return entry, true
		}
	}
	return WeekdayName{}, false
}
