package calendar

import (
	"fmt"
	"time"

	"stint/internal/dateformat"
	"stint/internal/daterange"
)

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Add returns the month delta months away, carrying across years.
func (m Month) Add(delta int) Month {
	y := m.Year
	mo := int(m.Month) + delta
	for mo < 1 {
		mo += 12
		y--
	}
	for mo > 12 {
		mo -= 12
		y++
	}
	return Month{Year: y, Month: time.Month(mo)}
}

// First returns midnight on the first day of the month, UTC.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.First().AddDate(0, 1, -1).Day()
}

// Contains reports whether t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Before reports whether m precedes o.
func (m Month) Before(o Month) bool {
	return m.Year < o.Year || (m.Year == o.Year && m.Month < o.Month)
}

// Title renders the month heading, e.g. "January 2017".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month.String(), m.Year)
}

// Clamp keeps m between the months of min and max. Zero bounds leave
// that side open.
func (m Month) Clamp(min, max time.Time) Month {
	if !min.IsZero() {
		if lo := MonthOf(min); m.Before(lo) {
			return lo
		}
	}
	if !max.IsZero() {
		if hi := MonthOf(max); hi.Before(m) {
			return hi
		}
	}
	return m
}

// ClampDay keeps day inside the month's day count.
func (m Month) ClampDay(day int) int {
	if day < 1 {
		return 1
	}
	if n := m.Days(); day > n {
		return n
	}
	return day
}

// Weeks lays the month out as rows of seven days starting on Monday.
// Cells outside the month are the zero time.
func (m Month) Weeks() [][]time.Time {
	first := m.First()
	// time.Weekday has Sunday = 0; shift so Monday = 0.
	lead := (int(first.Weekday()) + 6) % 7

	var weeks [][]time.Time
	week := make([]time.Time, 7)
	col := lead
	for day := 1; day <= m.Days(); day++ {
		week[col] = time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]time.Time, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// InSelection reports how day relates to the selection: whether it is a
// selected endpoint and whether it lies strictly between two ordered
// endpoints.
func InSelection(day time.Time, sel daterange.Range) (endpoint, between bool) {
	s, hasStart := sel.Start.Time()
	e, hasEnd := sel.End.Time()

	if hasStart && dateformat.SameDay(day, s) {
		return true, false
	}
	if hasEnd && dateformat.SameDay(day, e) {
		return true, false
	}
	if hasStart && hasEnd && dateformat.Before(s, e) &&
		dateformat.After(day, s) && dateformat.Before(day, e) {
		return false, true
	}
	return false, false
}
