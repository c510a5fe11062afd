package dateformat

import (
	"strconv"
	"strings"
	"time"
)

// ParseRelative parses relative date shortcuts in addition to the
// display pattern. Supported shortcuts:
//   - "t" or "today", "y" or "yesterday", "tm" or "tomorrow"
//   - "mon".."sun" - next occurrence of that weekday
//   - "+Nd"/"-Nd" - N days from/before today
//   - "+Nw"/"-Nw" - N weeks from/before today
//
// Anything else falls through to Parse under the pattern.
func ParseRelative(text, pattern string) Result {
	return parseRelativeWithNow(text, pattern, time.Now())
}

// parseRelativeWithNow accepts a "now" so tests can pin the clock.
func parseRelativeWithNow(text, pattern string, now time.Time) Result {
	trimmed := strings.TrimSpace(strings.ToLower(text))
	if trimmed == "" {
		return Empty()
	}

	switch trimmed {
	case "t", "today":
		return Valid(now)
	case "y", "yesterday":
		return Valid(now.AddDate(0, 0, -1))
	case "tm", "tomorrow":
		return Valid(now.AddDate(0, 0, 1))
	}

	if d, ok := parseOffset(trimmed); ok {
		return Valid(now.AddDate(0, 0, d))
	}

	if wd, ok := weekdayShortcuts[trimmed]; ok {
		return Valid(nextWeekdayWithNow(wd, now))
	}

	return Parse(text, pattern)
}

// parseOffset parses "+Nd", "-Nd", "+Nw", "-Nw".
func parseOffset(input string) (days int, ok bool) {
	if len(input) < 3 {
		return 0, false
	}
	sign := 1
	switch input[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}

	unit := 1
	switch input[len(input)-1] {
	case 'd':
	case 'w':
		unit = 7
	default:
		return 0, false
	}

	n, err := strconv.Atoi(input[1 : len(input)-1])
	if err != nil || n <= 0 {
		return 0, false
	}
	return sign * n * unit, true
}

var weekdayShortcuts = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// nextWeekdayWithNow returns the next occurrence of target strictly
// after today.
func nextWeekdayWithNow(target time.Weekday, now time.Time) time.Time {
	daysUntil := int(target - now.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return now.AddDate(0, 0, daysUntil)
}

// Describe returns a short human-readable description of date relative
// to today ("today", "tomorrow", a weekday name, or the formatted date).
func Describe(date time.Time, pattern string) string {
	return describeWithNow(date, pattern, time.Now())
}

func describeWithNow(date time.Time, pattern string, now time.Time) string {
	daysDiff := int(StartOfDay(date).Sub(StartOfDay(now)).Hours() / 24)

	switch daysDiff {
	case -1:
		return "yesterday"
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	}
	if daysDiff > 1 && daysDiff < 7 {
		return date.Weekday().String()
	}
	return Format(date, pattern)
}
