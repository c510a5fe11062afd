package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPresetsRelativeToNow(t *testing.T) {
	// A Thursday in the middle of a month.
	now := time.Date(2025, time.June, 12, 15, 30, 0, 0, time.UTC)
	presets := presetsWithNow(now)

	byLabel := make(map[string]Shortcut, len(presets))
	for _, p := range presets {
		byLabel[p.Label] = p
	}

	today, ok := byLabel["Today"]
	if !ok {
		t.Fatal("Expected a Today preset")
	}
	start, _ := today.Range.Start.Time()
	end, _ := today.Range.End.Time()
	if start.Day() != 12 || end.Day() != 12 {
		t.Errorf("Expected Today to be the 12th, got %v..%v", start, end)
	}
	if start.Hour() != 0 {
		t.Error("Expected preset dates to be truncated to midnight")
	}

	week := byLabel["Past 7 days"]
	start, _ = week.Range.Start.Time()
	end, _ = week.Range.End.Time()
	if start.Day() != 6 || end.Day() != 12 {
		t.Errorf("Expected Past 7 days to be 06..12, got %v..%v", start, end)
	}

	lastMonth := byLabel["Last month"]
	start, _ = lastMonth.Range.Start.Time()
	end, _ = lastMonth.Range.End.Time()
	if start.Month() != time.May || start.Day() != 1 || end.Day() != 31 {
		t.Errorf("Expected Last month to be May 01..31, got %v..%v", start, end)
	}
}

func TestShortcutListSelection(t *testing.T) {
	sl := NewShortcutList(presetsWithNow(time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC)), "YYYY-MM-DD")
	sl.SetSize(40, 10)

	selected := sl.Selected()
	if selected == nil {
		t.Fatal("Expected a selection on a non-empty list")
	}
	if selected.Label != "Today" {
		t.Errorf("Expected cursor on Today, got %q", selected.Label)
	}

	sl.Update(tea.KeyMsg{Type: tea.KeyDown})
	selected = sl.Selected()
	if selected == nil || selected.Label != "Yesterday" {
		t.Errorf("Expected cursor on Yesterday, got %v", selected)
	}
}

func TestShortcutListSetShortcutsKeepsCursorByLabel(t *testing.T) {
	now := time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC)
	sl := NewShortcutList(presetsWithNow(now), "YYYY-MM-DD")
	sl.SetSize(40, 10)

	sl.Update(tea.KeyMsg{Type: tea.KeyDown})
	sl.Update(tea.KeyMsg{Type: tea.KeyDown})
	before := sl.Selected()
	if before == nil {
		t.Fatal("Expected a selection")
	}

	// Rebuild the list with extra entries prepended.
	extra := append([]Shortcut{{Label: "Recent: 2025-05-01 .. 2025-05-03"}}, presetsWithNow(now)...)
	sl.SetShortcuts(extra)

	after := sl.Selected()
	if after == nil || after.Label != before.Label {
		t.Errorf("Expected cursor to stay on %q, got %v", before.Label, after)
	}
}

func TestShortcutListEmptyView(t *testing.T) {
	sl := NewShortcutList(nil, "YYYY-MM-DD")

	view := sl.View()
	if view == "" {
		t.Error("Expected a placeholder view for an empty list")
	}
}
