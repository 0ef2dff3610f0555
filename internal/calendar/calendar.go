// Package calendar groups dated records (completed missions, activity
// entries) by calendar day and lays days out as month grids.
package calendar

import (
	"sort"
	"time"

	"github.com/aidanlsb/when/internal/dates"
)

// Record is one dated entry.
type Record struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Done  bool      `json:"done"`
}

// DayBucket holds the records that fall on one calendar day.
type DayBucket struct {
	Day     time.Time `json:"day"`
	Records []Record  `json:"records"`
}

// DoneCount returns how many records in the bucket are done.
func (b DayBucket) DoneCount() int {
	n := 0
	for _, r := range b.Records {
		if r.Done {
			n++
		}
	}
	return n
}

// Cell is one day in a month grid.
type Cell struct {
	Day     time.Time
	InMonth bool
	Records []Record
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{y, m, d}
}

// BucketByDay groups records by their calendar day in loc (UTC when nil).
// Buckets are ordered by day and keep records in input order. Records with a
// zero date are skipped.
func BucketByDay(records []Record, loc *time.Location) []DayBucket {
	if loc == nil {
		loc = time.UTC
	}

	index := make(map[dayKey]int)
	var buckets []DayBucket
	for _, rec := range records {
		if rec.Date.IsZero() {
			continue
		}
		local := rec.Date.In(loc)
		key := keyOf(local)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, DayBucket{
				Day: dates.NoonOn(key.year, key.month, key.day, loc),
			})
		}
		buckets[i].Records = append(buckets[i].Records, rec)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Day.Before(buckets[j].Day)
	})
	return buckets
}

// MonthGrid lays out a month as Sunday-first weeks. Leading and trailing
// cells from neighbouring months have InMonth false; records from buckets are
// attached to every cell whose day matches, in or out of the month. Cell days
// are noon in loc.
func MonthGrid(year int, month time.Month, buckets []DayBucket, loc *time.Location) [][]Cell {
	if loc == nil {
		loc = time.UTC
	}

	byDay := make(map[dayKey][]Record, len(buckets))
	for _, b := range buckets {
		byDay[keyOf(b.Day)] = b.Records
	}

	first := dates.NoonOn(year, month, 1, loc)
	lead := int(first.Weekday())
	daysInMonth := dates.NoonOn(year, month+1, 0, loc).Day()
	weekCount := (lead + daysInMonth + 6) / 7

	weeks := make([][]Cell, 0, weekCount)
	for w := 0; w < weekCount; w++ {
		week := make([]Cell, 7)
		for d := range week {
			day := dates.NoonOn(year, month, 1-lead+w*7+d, loc)
			week[d] = Cell{
				Day:     day,
				InMonth: day.Year() == first.Year() && day.Month() == first.Month(),
				Records: byDay[keyOf(day)],
			}
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// InMonth returns the buckets whose day falls in the given month.
func InMonth(buckets []DayBucket, year int, month time.Month) []DayBucket {
	var out []DayBucket
	for _, b := range buckets {
		if b.Day.Year() == year && b.Day.Month() == month {
			out = append(out, b)
		}
	}
	return out
}
