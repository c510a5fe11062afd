// Package dateformat parses and formats calendar dates under a display
// pattern, distinguishing empty input from unparsable input.
package dateformat

import (
	"sort"
	"strings"
	"time"
)

// Kind classifies the outcome of parsing a text field.
type Kind int

const (
	// KindEmpty means the input was blank (an unset value, not an error).
	KindEmpty Kind = iota
	// KindInvalid means the input was non-blank but not a date.
	KindInvalid
	// KindValid means the input parsed to a calendar date.
	KindValid
)

// Result is a three-way parse outcome. Date is meaningful only when
// Kind is KindValid.
type Result struct {
	Kind Kind
	Date time.Time
}

// Empty returns an empty-input result.
func Empty() Result { return Result{Kind: KindEmpty} }

// Invalid returns an unparsable-input result.
func Invalid() Result { return Result{Kind: KindInvalid} }

// Valid returns a parsed-date result, truncated to day granularity.
func Valid(t time.Time) Result {
	return Result{Kind: KindValid, Date: StartOfDay(t)}
}

// DefaultPattern is the pattern used when a caller supplies none.
const DefaultPattern = "YYYY-MM-DD"

// patternLayouts maps display patterns to Go time layouts.
var patternLayouts = map[string]string{
	"YYYY-MM-DD":   "2006-01-02",
	"YYYY/MM/DD":   "2006/01/02",
	"DD-MM-YYYY":   "02-01-2006",
	"DD/MM/YYYY":   "02/01/2006",
	"MM/DD/YYYY":   "01/02/2006",
	"DD.MM.YYYY":   "02.01.2006",
	"MMM D, YYYY":  "Jan 2, 2006",
	"MMM DD YYYY":  "Jan 02 2006",
	"D MMM YYYY":   "2 Jan 2006",
	"MMMM D, YYYY": "January 2, 2006",
}

// KnownPattern reports whether pattern has a layout mapping.
func KnownPattern(pattern string) bool {
	_, ok := patternLayouts[pattern]
	return ok
}

// Patterns returns the supported display patterns, sorted.
func Patterns() []string {
	patterns := make([]string, 0, len(patternLayouts))
	for pattern := range patternLayouts {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)
	return patterns
}

// Layout returns the Go time layout for a display pattern, falling back
// to the default pattern's layout for unknown patterns.
func Layout(pattern string) string {
	if layout, ok := patternLayouts[pattern]; ok {
		return layout
	}
	return patternLayouts[DefaultPattern]
}

// Parse parses text under the given display pattern.
//
// Blank text yields KindEmpty. Text that fails the layout, or that
// names a day the calendar normalizes away (e.g. 2025-02-30), yields
// KindInvalid.
func Parse(text, pattern string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Empty()
	}

	parsed, err := time.Parse(Layout(pattern), text)
	if err != nil {
		return Invalid()
	}

	// time.Parse normalizes overflowing days (2025-02-30 -> 2025-03-02).
	// Round-trip the result to catch those.
	if parsed.Format(Layout(pattern)) != text {
		return Invalid()
	}

	return Valid(parsed)
}

// Format renders a date under the given display pattern.
func Format(t time.Time, pattern string) string {
	return t.Format(Layout(pattern))
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Before reports whether a falls on an earlier calendar day than b.
func Before(a, b time.Time) bool {
	return StartOfDay(a).Before(StartOfDay(b))
}

// After reports whether a falls on a later calendar day than b.
func After(a, b time.Time) bool {
	return StartOfDay(a).After(StartOfDay(b))
}

// SameOrBefore reports whether a falls on the same day as b or earlier.
func SameOrBefore(a, b time.Time) bool {
	return !After(a, b)
}

// SameOrAfter reports whether a falls on the same day as b or later.
func SameOrAfter(a, b time.Time) bool {
	return !Before(a, b)
}
