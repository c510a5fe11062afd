package tui

import (
	"fmt"
	stdtime "time"

	tea "github.com/charmbracelet/bubbletea"

	"stint/internal/dateformat"
	"stint/internal/daterange"
	"stint/internal/history"
	"stint/internal/logger"
	"stint/internal/tui/components"
)

// Command Builders
//
// These methods create tea.Cmd functions for async operations. Values
// the closure needs are captured before it is returned, so later model
// mutations cannot leak into a command that is already in flight.

const statusClearDelay = 4 * stdtime.Second

// loadRecent fetches the latest saved selections for the shortcut pane
func (m *Model) loadRecent() tea.Cmd {
	if m.store == nil {
		return nil
	}

	capturedStore := m.store
	capturedSize := m.settings.HistorySize

	return func() tea.Msg {
		entries, err := capturedStore.Recent(capturedSize)
		if err != nil {
			return errMsg{err}
		}
		logger.Debug("tui: recent selections loaded", "count", len(entries))
		return recentLoadedMsg{entries: entries}
	}
}

// saveSelection persists the current acceptable selection
func (m *Model) saveSelection() tea.Cmd {
	if m.store == nil {
		return nil
	}

	capturedStore := m.store
	capturedRange := m.accepted

	if capturedRange.BothUnset() {
		return func() tea.Msg {
			return errMsg{fmt.Errorf("nothing selected yet")}
		}
	}

	return func() tea.Msg {
		entry, err := capturedStore.Save(capturedRange)
		if err != nil {
			return errMsg{err}
		}
		return selectionSavedMsg{entry: entry}
	}
}

// waitForSettingsChange waits for the next settings reload event.
// This is a non-blocking async command - the closure blocks on the
// watcher channel, not the update loop.
func (m *Model) waitForSettingsChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	capturedWatcher := m.watcher

	return func() tea.Msg {
		event, ok := <-capturedWatcher.Changes()
		if !ok {
			return nil
		}
		return settingsChangedMsg{settings: event.Settings}
	}
}

// clearStatusAfterDelay wipes the transient status message
func (m *Model) clearStatusAfterDelay() tea.Cmd {
	return tea.Tick(statusClearDelay, func(stdtime.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// buildShortcuts combines the built-in presets with recent selections
func (m *Model) buildShortcuts(entries []history.Entry) []components.Shortcut {
	shortcuts := components.Presets()
	for _, entry := range entries {
		shortcuts = append(shortcuts, components.Shortcut{
			Label: "Recent: " + describeRange(m.settings.Pattern, entry.Range),
			Range: entry.Range,
		})
	}
	return shortcuts
}

// describeRange renders a range for status and shortcut labels
func describeRange(pattern string, r daterange.Range) string {
	format := func(d daterange.Date) string {
		t, ok := d.Time()
		if !ok {
			return describeBoundary(d)
		}
		return dateformat.Format(t, pattern)
	}
	return format(r.Start) + " .. " + format(r.End)
}

func describeBoundary(d daterange.Date) string {
	switch {
	case d.IsInvalid():
		return "invalid"
	case d.IsUnset():
		return "unset"
	default:
		t, _ := d.Time()
		return t.Format("2006-01-02")
	}
}
