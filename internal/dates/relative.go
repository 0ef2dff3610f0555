package dates

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// PhraseKind describes which rule classified a phrase.
type PhraseKind int

const (
	PhraseUnknown PhraseKind = iota
	PhraseToday
	PhraseYesterday
	PhraseWeekday
)

func (k PhraseKind) String() string {
	switch k {
	case PhraseToday:
		return "today"
	case PhraseYesterday:
		return "yesterday"
	case PhraseWeekday:
		return "weekday"
	default:
		return "unknown"
	}
}

// Modifier is the qualifier attached to a weekday phrase.
type Modifier int

const (
	ModifierNone Modifier = iota
	ModifierThis
	ModifierLast
)

func (m Modifier) String() string {
	switch m {
	case ModifierThis:
		return "this"
	case ModifierLast:
		return "last"
	default:
		return "none"
	}
}

// MatchMode controls how keywords are located inside a phrase.
type MatchMode int

const (
	// MatchSubstring finds keywords anywhere in the text, including inside
	// longer words ("wednesdays" matches "wednesday").
	MatchSubstring MatchMode = iota
	// MatchWord requires each keyword to be a whole run of letters.
	MatchWord
)

func (m MatchMode) String() string {
	if m == MatchWord {
		return "word"
	}
	return "substring"
}

// ParseMatchMode parses "substring" or "word". Empty means substring.
func ParseMatchMode(value string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "substring":
		return MatchSubstring, nil
	case "word":
		return MatchWord, nil
	default:
		return MatchSubstring, fmt.Errorf("unknown match mode %q (use substring or word)", value)
	}
}

// Resolution is the structured result behind a resolved phrase.
type Resolution struct {
	Phrase   string
	Kind     PhraseKind
	Weekday  time.Weekday
	Modifier Modifier
	// Offset is the signed number of days from the reference date.
	Offset int
	// Date is noon of the resolved day in the reference date's location.
	Date time.Time
}

// Formatted renders the resolved date in long form.
func (r Resolution) Formatted() string {
	return FormatLong(r.Date)
}

// Resolver resolves phrases against a clock. The zero value is not usable;
// construct with NewResolver.
type Resolver struct {
	now  func() time.Time
	mode MatchMode
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock sets the function used to read "today".
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// WithReferenceDate pins "today" to a fixed date.
func WithReferenceDate(ref time.Time) Option {
	return WithClock(func() time.Time { return ref })
}

// WithMatchMode sets the keyword matching mode.
func WithMatchMode(mode MatchMode) Option {
	return func(r *Resolver) {
		r.mode = mode
	}
}

// NewResolver returns a resolver reading the wall clock with substring matching
// unless overridden by opts.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{now: time.Now, mode: MatchSubstring}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MatchMode reports the resolver's keyword matching mode.
func (r *Resolver) MatchMode() MatchMode {
	return r.mode
}

// Resolve returns the long-form date for phrase, or phrase itself unchanged
// when it is not recognized.
func (r *Resolver) Resolve(phrase string) string {
	res, ok := r.ResolvePhrase(phrase)
	if !ok {
		return phrase
	}
	return res.Formatted()
}

// ResolvePhrase classifies phrase and computes its date. ok is false for
// unrecognized phrases.
func (r *Resolver) ResolvePhrase(phrase string) (Resolution, bool) {
	return resolvePhrase(phrase, r.now(), r.mode)
}

// Resolve resolves phrase against now using substring matching.
func Resolve(phrase string, now time.Time) string {
	return NewResolver(WithReferenceDate(now)).Resolve(phrase)
}

// ResolvePhrase classifies phrase against now using substring matching.
func ResolvePhrase(phrase string, now time.Time) (Resolution, bool) {
	return resolvePhrase(phrase, now, MatchSubstring)
}

func resolvePhrase(phrase string, now time.Time, mode MatchMode) (Resolution, bool) {
	text := strings.ToLower(strings.TrimSpace(phrase))
	has := keywordMatcher(text, mode)
	anchor := Noon(now)

	switch {
	case has(text, "today"):
		return Resolution{Phrase: phrase, Kind: PhraseToday, Date: anchor}, true
	case has(text, "yesterday"):
		return Resolution{Phrase: phrase, Kind: PhraseYesterday, Offset: -1, Date: AddDays(anchor, -1)}, true
	}

	day, ok := findWeekday(text, has)
	if !ok {
		return Resolution{Phrase: phrase, Kind: PhraseUnknown}, false
	}

	modifier := ModifierNone
	if has(text, "last") {
		modifier = ModifierLast
	} else if has(text, "this") {
		modifier = ModifierThis
	}

	offset := weekdayOffset(anchor.Weekday(), day.Weekday, modifier)
	return Resolution{
		Phrase:   phrase,
		Kind:     PhraseWeekday,
		Weekday:  day.Weekday,
		Modifier: modifier,
		Offset:   offset,
		Date:     AddDays(anchor, offset),
	}, true
}

// weekdayOffset returns the signed day delta from ref to the target weekday.
//
// A bare weekday equal to today rolls a full week forward, while "this" on the
// same weekday stays on today. "last" always lands 1 to 7 days back.
func weekdayOffset(ref, target time.Weekday, modifier Modifier) int {
	switch modifier {
	case ModifierLast:
		back := int(ref) - int(target)
		if back <= 0 {
			back += 7
		}
		return -back
	case ModifierThis:
		forward := int(target) - int(ref)
		if forward < 0 {
			forward += 7
		}
		return forward
	default:
		forward := (int(target) - int(ref) + 7) % 7
		if forward == 0 {
			forward = 7
		}
		return forward
	}
}

func keywordMatcher(text string, mode MatchMode) func(string, string) bool {
	if mode != MatchWord {
		return strings.Contains
	}
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) }) {
		words[w] = struct{}{}
	}
	return func(_ string, keyword string) bool {
		_, ok := words[keyword]
		return ok
	}
}
