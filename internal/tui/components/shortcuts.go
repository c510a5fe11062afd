package components

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stint/internal/dateformat"
	"stint/internal/daterange"
)

var (
	shortcutTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	shortcutTitleFocusedStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color("11")).
					Bold(true)

	shortcutItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	shortcutSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)

	shortcutRangeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

// Shortcut is a named, precomputed selection.
type Shortcut struct {
	Label string
	Range daterange.Range
}

// Presets returns the built-in shortcuts relative to the current day.
func Presets() []Shortcut {
	return presetsWithNow(time.Now())
}

func presetsWithNow(now time.Time) []Shortcut {
	today := dateformat.StartOfDay(now)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	span := func(start, end time.Time) daterange.Range {
		return daterange.Range{Start: daterange.On(start), End: daterange.On(end)}
	}

	return []Shortcut{
		{Label: "Today", Range: span(today, today)},
		{Label: "Yesterday", Range: span(today.AddDate(0, 0, -1), today.AddDate(0, 0, -1))},
		{Label: "Past 7 days", Range: span(today.AddDate(0, 0, -6), today)},
		{Label: "Past 30 days", Range: span(today.AddDate(0, 0, -29), today)},
		{Label: "This month", Range: span(monthStart, today)},
		{Label: "Last month", Range: span(monthStart.AddDate(0, -1, 0), monthStart.AddDate(0, 0, -1))},
	}
}

// shortcutItem adapts a Shortcut to the list model.
type shortcutItem struct {
	shortcut Shortcut
	pattern  string
}

func (i shortcutItem) FilterValue() string { return i.shortcut.Label }

func (i shortcutItem) describe() string {
	format := func(d daterange.Date) string {
		t, ok := d.Time()
		if !ok {
			return ""
		}
		return dateformat.Format(t, i.pattern)
	}

	start := format(i.shortcut.Range.Start)
	end := format(i.shortcut.Range.End)
	if start == "" && end == "" {
		return ""
	}
	return fmt.Sprintf("%s .. %s", start, end)
}

// shortcutDelegate handles rendering of shortcut items
type shortcutDelegate struct{}

func (d shortcutDelegate) Height() int                               { return 1 }
func (d shortcutDelegate) Spacing() int                              { return 0 }
func (d shortcutDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d shortcutDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(shortcutItem)
	if !ok {
		return
	}

	label := i.shortcut.Label
	if index == m.Index() {
		label = shortcutSelectedStyle.Render("▶ " + label)
	} else {
		label = shortcutItemStyle.Render("  " + label)
	}

	if desc := i.describe(); desc != "" {
		label += shortcutRangeStyle.Render("  " + desc)
	}

	fmt.Fprintf(w, "%s", label)
}

// ShortcutList shows preset and recent selections for one-key reuse.
type ShortcutList struct {
	list    list.Model
	pattern string
	focused bool
}

// NewShortcutList builds the pane from an initial set of shortcuts.
// Dates in item descriptions are formatted with pattern.
func NewShortcutList(shortcuts []Shortcut, pattern string) *ShortcutList {
	sl := &ShortcutList{pattern: pattern}

	l := list.New(sl.items(shortcuts), shortcutDelegate{}, 0, 0)
	l.Title = "Shortcuts"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = shortcutTitleStyle

	sl.list = l
	return sl
}

func (sl *ShortcutList) items(shortcuts []Shortcut) []list.Item {
	items := make([]list.Item, len(shortcuts))
	for i, s := range shortcuts {
		items[i] = shortcutItem{shortcut: s, pattern: sl.pattern}
	}
	return items
}

// Update handles messages for the shortcut list
func (sl *ShortcutList) Update(msg tea.Msg) (*ShortcutList, tea.Cmd) {
	var cmd tea.Cmd
	sl.list, cmd = sl.list.Update(msg)
	return sl, cmd
}

// View renders the shortcut list
func (sl *ShortcutList) View() string {
	if len(sl.list.Items()) == 0 {
		return "Shortcuts\n\nNo shortcuts available"
	}
	return sl.list.View()
}

// SetSize sets the size of the list
func (sl *ShortcutList) SetSize(width, height int) {
	sl.list.SetSize(width, height)
}

// SetFocused sets whether this component is focused
func (sl *ShortcutList) SetFocused(focused bool) {
	sl.focused = focused
	if focused {
		sl.list.Styles.Title = shortcutTitleFocusedStyle
	} else {
		sl.list.Styles.Title = shortcutTitleStyle
	}
}

// Focused reports whether the pane has input focus.
func (sl *ShortcutList) Focused() bool {
	return sl.focused
}

// Selected returns the shortcut under the cursor.
func (sl *ShortcutList) Selected() *Shortcut {
	item := sl.list.SelectedItem()
	if item == nil {
		return nil
	}
	si, ok := item.(shortcutItem)
	if !ok {
		return nil
	}
	shortcut := si.shortcut
	return &shortcut
}

// SetShortcuts replaces the listed shortcuts, keeping the cursor on the
// same label when it survives.
func (sl *ShortcutList) SetShortcuts(shortcuts []Shortcut) {
	var selectedLabel string
	if selected := sl.Selected(); selected != nil {
		selectedLabel = selected.Label
	}

	items := sl.items(shortcuts)
	sl.list.SetItems(items)

	if selectedLabel != "" {
		for i, item := range items {
			if si, ok := item.(shortcutItem); ok && si.shortcut.Label == selectedLabel {
				sl.list.Select(i)
				break
			}
		}
	}
}

// SetPattern changes the date pattern used in item descriptions.
func (sl *ShortcutList) SetPattern(pattern string) {
	if pattern == sl.pattern {
		return
	}
	sl.pattern = pattern

	shortcuts := make([]Shortcut, 0, len(sl.list.Items()))
	for _, item := range sl.list.Items() {
		if si, ok := item.(shortcutItem); ok {
			shortcuts = append(shortcuts, si.shortcut)
		}
	}
	sl.list.SetItems(sl.items(shortcuts))
}
