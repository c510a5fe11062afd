package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"stint/internal/calendar"
	"stint/internal/dateformat"
	"stint/internal/daterange"
)

var (
	calendarBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")).
				Padding(0, 1)

	calendarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	calendarHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	calendarDayStyle      = lipgloss.NewStyle()
	calendarDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	calendarEndpointStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("231")).
				Background(lipgloss.Color("39"))

	calendarInRangeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	calendarPreviewStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("40"))
)

// Calendar is a month-grid picker. The hosting component moves the
// cursor, pages months, and reads CursorDay when the user confirms.
type Calendar struct {
	month     calendar.Month
	cursorDay int

	minDate time.Time
	maxDate time.Time

	selection daterange.Range
	preview   daterange.Range

	allowSingleDay bool
	now            func() time.Time
}

// NewCalendar creates a calendar showing the current month, constrained
// to [minDate, maxDate] (zero values unbounded).
func NewCalendar(minDate, maxDate time.Time, allowSingleDay bool) *Calendar {
	c := &Calendar{
		minDate:        minDate,
		maxDate:        maxDate,
		allowSingleDay: allowSingleDay,
		now:            time.Now,
	}
	c.ShowMonthOf(c.now())
	return c
}

// SetBounds replaces the date bounds and re-clamps the view.
func (c *Calendar) SetBounds(minDate, maxDate time.Time) {
	c.minDate = minDate
	c.maxDate = maxDate
	c.month = c.month.Clamp(minDate, maxDate)
	c.cursorDay = c.clampCursor(c.cursorDay)
	c.updatePreview()
}

// SetSelection feeds the calendar the derived range to highlight.
func (c *Calendar) SetSelection(r daterange.Range) {
	c.selection = r
	c.updatePreview()
}

// ShowMonthOf moves the view to the month containing t, clamped to the
// bounds, with the cursor on t's day when it is in view.
func (c *Calendar) ShowMonthOf(t time.Time) {
	c.month = calendar.MonthOf(t).Clamp(c.minDate, c.maxDate)
	if c.month.Contains(t) {
		c.cursorDay = t.Day()
	} else {
		c.cursorDay = 1
	}
	c.cursorDay = c.clampCursor(c.cursorDay)
	c.updatePreview()
}

// PageMonth moves the view delta months, keeping the cursor's day where
// the new month allows.
func (c *Calendar) PageMonth(delta int) {
	c.month = c.month.Add(delta).Clamp(c.minDate, c.maxDate)
	c.cursorDay = c.clampCursor(c.month.ClampDay(c.cursorDay))
	c.updatePreview()
}

// MoveCursor moves the cursor by days (dx) and weeks (dy), paging into
// the neighboring month when it runs off the edge.
func (c *Calendar) MoveCursor(dx, dy int) {
	day := c.cursorDay + dx + 7*dy
	switch {
	case day < 1:
		prev := c.month.Add(-1).Clamp(c.minDate, c.maxDate)
		if prev == c.month {
			day = 1
		} else {
			c.month = prev
			day = c.month.Days() + day
		}
	case day > c.month.Days():
		next := c.month.Add(1).Clamp(c.minDate, c.maxDate)
		if next == c.month {
			day = c.month.Days()
		} else {
			day = day - c.month.Days()
			c.month = next
		}
	}
	c.cursorDay = c.clampCursor(c.month.ClampDay(day))
	c.updatePreview()
}

// CursorDay returns the day under the cursor.
func (c *Calendar) CursorDay() time.Time {
	return time.Date(c.month.Year, c.month.Month, c.cursorDay, 0, 0, 0, 0, time.UTC)
}

// CursorEnabled reports whether the cursor day is inside the bounds.
func (c *Calendar) CursorEnabled() bool {
	return c.enabled(c.CursorDay())
}

func (c *Calendar) enabled(day time.Time) bool {
	return daterange.On(day).InBounds(c.minDate, c.maxDate)
}

// clampCursor moves the cursor to the nearest enabled day in the month.
func (c *Calendar) clampCursor(day int) int {
	day = c.month.ClampDay(day)
	if c.enabledDay(day) {
		return day
	}
	for off := 1; off < c.month.Days(); off++ {
		if d := day + off; d <= c.month.Days() && c.enabledDay(d) {
			return d
		}
		if d := day - off; d >= 1 && c.enabledDay(d) {
			return d
		}
	}
	return day
}

func (c *Calendar) enabledDay(day int) bool {
	return c.enabled(time.Date(c.month.Year, c.month.Month, day, 0, 0, 0, 0, time.UTC))
}

// updatePreview recomputes the would-be selection if the cursor day
// were clicked, so the grid can preview it.
func (c *Calendar) updatePreview() {
	if !c.CursorEnabled() {
		c.preview = c.selection
		return
	}
	c.preview, _ = calendar.Assign(c.selection, c.CursorDay(), c.allowSingleDay)
}

// View renders the month grid.
func (c *Calendar) View() string {
	var b strings.Builder

	b.WriteString(calendarTitleStyle.Render(c.month.Title()))
	b.WriteString("\n")
	b.WriteString(calendarHeaderStyle.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	today := c.now()
	for _, week := range c.month.Weeks() {
		cells := make([]string, 0, 7)
		for _, day := range week {
			cells = append(cells, c.renderCell(day, today))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString(calendarHeaderStyle.Render("←/→ day  ↑/↓ week  [/] month  enter pick"))
	return calendarBoxStyle.Render(b.String())
}

func (c *Calendar) renderCell(day, today time.Time) string {
	if day.IsZero() {
		return "  "
	}

	label := day.Format("_2")

	style := calendarDayStyle
	switch {
	case !c.enabled(day):
		style = calendarDisabledStyle
	default:
		if endpoint, between := calendar.InSelection(day, c.preview); endpoint || between {
			style = calendarPreviewStyle
		}
		if endpoint, between := calendar.InSelection(day, c.selection); endpoint {
			style = calendarEndpointStyle
		} else if between {
			style = calendarInRangeStyle
		}
	}

	if dateformat.SameDay(day, today) {
		style = style.Underline(true)
	}
	if c.month.Contains(day) && day.Day() == c.cursorDay {
		style = style.Reverse(true)
	}
	return style.Render(label)
}
