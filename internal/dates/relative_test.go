package dates

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

// Wednesday
var refJune11 = time.Date(2025, time.June, 11, 14, 30, 0, 0, time.UTC)

// Tuesday
var refDec30 = time.Date(2025, time.December, 30, 9, 0, 0, 0, time.UTC)

func TestResolve_ReferenceWednesday(t *testing.T) {
	tests := []struct {
		phrase string
		want   string
	}{
		{"today", "June 11, 2025"},
		{"Today", "June 11, 2025"},
		{"  TODAY  ", "June 11, 2025"},
		{"yesterday", "June 10, 2025"},
		{"wednesday", "June 18, 2025"},
		{"this wednesday", "June 11, 2025"},
		{"last wednesday", "June 4, 2025"},
		{"this friday", "June 13, 2025"},
		{"last friday", "June 6, 2025"},
		{"next tuesday", "June 17, 2025"},
		{"thursday", "June 12, 2025"},
		{"this monday", "June 16, 2025"},
		{"last thursday", "June 5, 2025"},
		{"some random text", "some random text"},
		{"  Next Year ", "  Next Year "},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			if got := Resolve(tt.phrase, refJune11); got != tt.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tt.phrase, got, tt.want)
			}
		})
	}
}

func TestResolve_MonthAndYearRollover(t *testing.T) {
	if got := Resolve("last friday", refDec30); got != "December 26, 2025" {
		t.Fatalf("last friday = %q, want December 26, 2025", got)
	}
	if got := Resolve("this saturday", refDec30); got != "January 3, 2026" {
		t.Fatalf("this saturday = %q, want January 3, 2026", got)
	}

	jan1 := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := Resolve("yesterday", jan1); got != "December 31, 2025" {
		t.Fatalf("yesterday from Jan 1 = %q, want December 31, 2025", got)
	}

	mar1Leap := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC) // Friday
	if got := Resolve("last thursday", mar1Leap); got != "February 29, 2024" {
		t.Fatalf("last thursday from Mar 1 2024 = %q, want February 29, 2024", got)
	}
}

func TestResolve_KeywordPrecedence(t *testing.T) {
	tests := []struct {
		phrase string
		want   string
	}{
		// "today" wins over everything else.
		{"last friday or today", "June 11, 2025"},
		// "yesterday" wins over weekdays.
		{"yesterday, not friday", "June 10, 2025"},
		// "last" wins over "this".
		{"this or last friday", "June 6, 2025"},
		// Table order decides between two weekday names: sunday is scanned first.
		{"saturday or sunday", "June 15, 2025"},
		{"friday then monday", "June 16, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			if got := Resolve(tt.phrase, refJune11); got != tt.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tt.phrase, got, tt.want)
			}
		})
	}
}

func TestResolve_SubstringMatching(t *testing.T) {
	if got := Resolve("wednesday addendum", refJune11); got != "June 18, 2025" {
		t.Fatalf("wednesday addendum = %q, want June 18, 2025", got)
	}
	// "thistle" contains "this"; substring mode treats it as the modifier.
	if got := Resolve("thistle wednesday", refJune11); got != "June 11, 2025" {
		t.Fatalf("thistle wednesday = %q, want June 11, 2025", got)
	}
	if got := Resolve("Wednesdays are long", refJune11); got != "June 18, 2025" {
		t.Fatalf("Wednesdays are long = %q, want June 18, 2025", got)
	}
}

func TestResolver_WordMatching(t *testing.T) {
	r := NewResolver(WithReferenceDate(refJune11), WithMatchMode(MatchWord))

	tests := []struct {
		phrase string
		want   string
	}{
		{"last friday", "June 6, 2025"},
		{"wednesday addendum", "June 18, 2025"},
		{"thistle wednesday", "June 18, 2025"},
		{"Wednesdays are long", "Wednesdays are long"},
		{"this wednesday's meeting", "June 11, 2025"},
		{"todays plan", "todays plan"},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			if got := r.Resolve(tt.phrase); got != tt.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tt.phrase, got, tt.want)
			}
		})
	}
}

func TestResolvePhrase_Structure(t *testing.T) {
	noon := time.Date(2025, time.June, 11, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		phrase string
		want   Resolution
		ok     bool
	}{
		{
			phrase: "today",
			want:   Resolution{Phrase: "today", Kind: PhraseToday, Date: noon},
			ok:     true,
		},
		{
			phrase: "Yesterday",
			want:   Resolution{Phrase: "Yesterday", Kind: PhraseYesterday, Offset: -1, Date: AddDays(noon, -1)},
			ok:     true,
		},
		{
			phrase: "last wednesday",
			want: Resolution{
				Phrase:   "last wednesday",
				Kind:     PhraseWeekday,
				Weekday:  time.Wednesday,
				Modifier: ModifierLast,
				Offset:   -7,
				Date:     AddDays(noon, -7),
			},
			ok: true,
		},
		{
			phrase: "this friday",
			want: Resolution{
				Phrase:   "this friday",
				Kind:     PhraseWeekday,
				Weekday:  time.Friday,
				Modifier: ModifierThis,
				Offset:   2,
				Date:     AddDays(noon, 2),
			},
			ok: true,
		},
		{
			phrase: "wednesday",
			want: Resolution{
				Phrase:  "wednesday",
				Kind:    PhraseWeekday,
				Weekday: time.Wednesday,
				Offset:  7,
				Date:    AddDays(noon, 7),
			},
			ok: true,
		},
		{
			phrase: "soon",
			want:   Resolution{Phrase: "soon", Kind: PhraseUnknown},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, ok := ResolvePhrase(tt.phrase, refJune11)
			if ok != tt.ok {
				t.Fatalf("ResolvePhrase(%q) ok = %v, want %v", tt.phrase, ok, tt.ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ResolvePhrase(%q) mismatch (-want +got):\n%s", tt.phrase, diff)
			}
		})
	}
}

func TestWeekdayOffset_Bounds(t *testing.T) {
	for ref := time.Sunday; ref <= time.Saturday; ref++ {
		for target := time.Sunday; target <= time.Saturday; target++ {
			bare := weekdayOffset(ref, target, ModifierNone)
			if bare < 1 || bare > 7 {
				t.Fatalf("bare offset %s->%s = %d, want 1..7", ref, target, bare)
			}
			this := weekdayOffset(ref, target, ModifierThis)
			if this < 0 || this > 6 {
				t.Fatalf("this offset %s->%s = %d, want 0..6", ref, target, this)
			}
			last := weekdayOffset(ref, target, ModifierLast)
			if last < -7 || last > -1 {
				t.Fatalf("last offset %s->%s = %d, want -7..-1", ref, target, last)
			}
			for _, off := range []int{bare, this, last} {
				if got := time.Weekday((int(ref) + off%7 + 7) % 7); got != target {
					t.Fatalf("offset %d from %s lands on %s, want %s", off, ref, got, target)
				}
			}
		}
	}
}

func TestResolve_DoesNotMutateReference(t *testing.T) {
	ref := refJune11
	first := Resolve("today", ref)
	_ = Resolve("last friday", ref)
	second := Resolve("today", ref)
	if first != second {
		t.Fatalf("Resolve(today) not idempotent: %q then %q", first, second)
	}
	if !ref.Equal(refJune11) {
		t.Fatalf("reference date changed: %v", ref)
	}
}

func TestResolver_ConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)
	r := NewResolver(WithReferenceDate(refJune11))

	var g errgroup.Group
	results := make([]string, 16)
	for i := range results {
		i := i
		g.Go(func() error {
			results[i] = r.Resolve("last friday")
			return nil
		})
	}
	_ = g.Wait()

	for i, got := range results {
		if got != "June 6, 2025" {
			t.Fatalf("result[%d] = %q, want June 6, 2025", i, got)
		}
	}
}

func TestResolver_ClockIsReadPerCall(t *testing.T) {
	current := refJune11
	r := NewResolver(WithClock(func() time.Time { return current }))

	if got := r.Resolve("today"); got != "June 11, 2025" {
		t.Fatalf("today = %q", got)
	}
	current = refDec30
	if got := r.Resolve("today"); got != "December 30, 2025" {
		t.Fatalf("today after clock moved = %q", got)
	}
}

func TestResolve_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC-10", -10*60*60)
	ref := time.Date(2025, time.June, 11, 23, 0, 0, 0, loc)

	res, ok := ResolvePhrase("this friday", ref)
	if !ok {
		t.Fatalf("expected this friday to resolve")
	}
	if res.Date.Location() != loc {
		t.Fatalf("location = %v, want %v", res.Date.Location(), loc)
	}
	if res.Formatted() != "June 13, 2025" {
		t.Fatalf("Formatted() = %q, want June 13, 2025", res.Formatted())
	}
}

func TestParseMatchMode(t *testing.T) {
	for input, want := range map[string]MatchMode{
		"":          MatchSubstring,
		"substring": MatchSubstring,
		" Word ":    MatchWord,
	} {
		got, err := ParseMatchMode(input)
		if err != nil {
			t.Fatalf("ParseMatchMode(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseMatchMode(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseMatchMode("regex"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

// Chile moves clocks from 00:00 to 01:00 on Sunday September 7 2025, so that
// day has no local midnight.
func santiago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	return loc
}

func TestResolve_DayWithoutMidnight(t *testing.T) {
	loc := santiago(t)
	monday := time.Date(2025, time.September, 8, 12, 0, 0, 0, loc)
	saturday := time.Date(2025, time.September, 6, 12, 0, 0, 0, loc)

	tests := []struct {
		ref    time.Time
		phrase string
		want   string
	}{
		{monday, "yesterday", "September 7, 2025"},
		{monday, "last sunday", "September 7, 2025"},
		{monday, "last saturday", "September 6, 2025"},
		{saturday, "sunday", "September 7, 2025"},
		{saturday, "this sunday", "September 7, 2025"},
		{saturday, "this monday", "September 8, 2025"},
		{saturday, "today", "September 6, 2025"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.phrase, tt.ref); got != tt.want {
			t.Fatalf("Resolve(%q) from %s = %q, want %q", tt.phrase, tt.ref.Format(DateLayout), got, tt.want)
		}
	}

	res, ok := ResolvePhrase("sunday", saturday)
	if !ok || res.Date.Day() != 7 || res.Date.Weekday() != time.Sunday {
		t.Fatalf("sunday resolved to %v", res.Date)
	}
}
