package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"stint/internal/daterange"
	"stint/internal/logger"
	"stint/internal/tui/components"
)

// Message Handlers
//
// These methods handle specific message types, keeping the main Update()
// function clean and focused. Each handler follows the pattern:
//
//   func (m *Model) handle<MessageType>(msg <MessageType>) (tea.Model, tea.Cmd)

// handleWindowSize handles terminal resize events
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.terminalTooSmall = msg.Width < MinTerminalWidth || msg.Height < MinTerminalHeight

	if m.statusBar != nil {
		m.statusBar.SetWidth(msg.Width)
	}

	if !m.terminalTooSmall {
		dims := CalculatePaneDimensions(msg.Width, msg.Height)
		m.rangeInput.SetWidth(dims.InputWidth - 2)
		m.shortcuts.SetSize(dims.ShortcutsWidth-2, dims.PaneHeight)
	}

	return m, nil
}

// handleRangeChanged records a newly acceptable selection
func (m *Model) handleRangeChanged(msg components.RangeChangedMsg) (tea.Model, tea.Cmd) {
	m.accepted = msg.Range
	m.lastError = nil

	logger.Debug("tui: selection changed",
		"start", describeBoundary(msg.Range.Start),
		"end", describeBoundary(msg.Range.End))

	m.statusBar.SetMessage("Selected " + describeRange(m.settings.Pattern, msg.Range))
	return m, m.clearStatusAfterDelay()
}

// handleRangeError surfaces a rejected field value
func (m *Model) handleRangeError(msg components.RangeErrorMsg) (tea.Model, tea.Cmd) {
	logger.Debug("tui: selection rejected",
		"start", describeBoundary(msg.Range.Start),
		"end", describeBoundary(msg.Range.End))

	m.statusBar.SetError("Rejected " + describeRange(m.settings.Pattern, msg.Range))
	return m, m.clearStatusAfterDelay()
}

// handleRecentLoaded merges recent selections into the shortcut pane
func (m *Model) handleRecentLoaded(msg recentLoadedMsg) (tea.Model, tea.Cmd) {
	m.shortcuts.SetShortcuts(m.buildShortcuts(msg.entries))
	return m, nil
}

// handleSelectionSaved refreshes the recent shortcuts after a save
func (m *Model) handleSelectionSaved(msg selectionSavedMsg) (tea.Model, tea.Cmd) {
	logger.Debug("tui: selection saved", "id", msg.entry.ID)
	m.statusBar.SetMessage("Saved " + describeRange(m.settings.Pattern, msg.entry.Range))
	return m, tea.Batch(m.loadRecent(), m.clearStatusAfterDelay())
}

// handleSettingsChanged applies a live settings reload
func (m *Model) handleSettingsChanged(msg settingsChangedMsg) (tea.Model, tea.Cmd) {
	logger.Info("tui: settings reloaded", "pattern", msg.settings.Pattern)

	m.settings = msg.settings
	m.rangeInput.SetOptions(msg.settings.Options())
	m.shortcuts.SetPattern(msg.settings.Pattern)

	m.statusBar.SetMessage("Settings reloaded")
	return m, tea.Batch(m.loadRecent(), m.waitForSettingsChange(), m.clearStatusAfterDelay())
}

// handleError shows an error in the status bar
func (m *Model) handleError(msg errMsg) (tea.Model, tea.Cmd) {
	m.lastError = msg.err
	logger.Error("tui: error", "error", msg.err)
	m.statusBar.SetError(msg.err.Error())
	return m, m.clearStatusAfterDelay()
}

// handleKeyPress routes keyboard input to the focused pane
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.quit()
	case tea.KeyCtrlS:
		return m, m.saveSelection()
	}

	if m.focusedPane == PaneShortcuts {
		return m.handleShortcutsKey(msg)
	}
	return m.handleInputKey(msg)
}

// handleInputKey feeds a key to the range input, stealing tab on the
// last field to move focus to the shortcut pane.
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes && string(msg.Runes) == "q" && !m.rangeInput.Focused() {
		return m.quit()
	}

	if msg.Type == tea.KeyTab && m.endFieldFocused() {
		cmd := m.rangeInput.Blur()
		m.focusedPane = PaneShortcuts
		m.shortcuts.SetFocused(true)
		return m, cmd
	}

	var cmd tea.Cmd
	m.rangeInput, cmd = m.rangeInput.Update(msg)
	return m, cmd
}

// handleShortcutsKey drives the shortcut list
func (m *Model) handleShortcutsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab:
		m.shortcuts.SetFocused(false)
		m.focusedPane = PaneInput
		return m, m.rangeInput.Focus()
	case tea.KeyEnter:
		if shortcut := m.shortcuts.Selected(); shortcut != nil {
			m.applyShortcut(*shortcut)
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes && string(msg.Runes) == "q" {
		return m.quit()
	}

	var cmd tea.Cmd
	m.shortcuts, cmd = m.shortcuts.Update(msg)
	return m, cmd
}

// applyShortcut loads a shortcut's range into the widget
func (m *Model) applyShortcut(shortcut components.Shortcut) {
	m.rangeInput.SetValue(shortcut.Range)
	m.accepted = shortcut.Range
	m.statusBar.SetMessage("Applied " + shortcut.Label)
	logger.Debug("tui: shortcut applied", "label", shortcut.Label)
}

// quit resolves any pending edit so the final report sees it
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.rangeInput.Blur()
	if sel := m.rangeInput.Value(); bothAcceptable(sel) {
		m.accepted = sel
	}
	m.quitting = true
	if m.watcher != nil {
		m.watcher.Stop()
	}
	return m, tea.Quit
}

func (m *Model) endFieldFocused() bool {
	return m.rangeInput.Controller().Field(daterange.End).Focused &&
		!m.rangeInput.Controller().IsCalendarOpen()
}

func bothAcceptable(r daterange.Range) bool {
	return !r.Start.IsInvalid() && !r.End.IsInvalid()
}
