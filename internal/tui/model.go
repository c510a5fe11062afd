package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stint/internal/config"
	"stint/internal/daterange"
	"stint/internal/history"
	"stint/internal/tui/components"
	"stint/internal/watch"
)

// Pane represents the focusable areas of the picker screen
type Pane int

const (
	PaneInput Pane = iota
	PaneShortcuts
)

// Minimum terminal dimensions
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 16
)

var (
	appTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	paneBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	paneBorderFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")).
				Padding(0, 1)
)

// Model represents the main TUI state
type Model struct {
	settings config.Settings
	store    *history.Store
	watcher  *watch.Watcher

	focusedPane Pane
	width       int
	height      int

	// Components
	rangeInput *components.RangeInput
	shortcuts  *components.ShortcutList
	statusBar  *components.StatusBar

	// The last fully acceptable selection, kept for the final report.
	accepted daterange.Range

	lastError        error
	terminalTooSmall bool
	quitting         bool
}

// NewModel builds the picker screen. The store and watcher may be nil,
// which disables history shortcuts and live settings reload.
func NewModel(settings config.Settings, store *history.Store, watcher *watch.Watcher) *Model {
	m := &Model{
		settings:    settings,
		store:       store,
		watcher:     watcher,
		focusedPane: PaneInput,
		rangeInput:  components.NewRangeInput(settings.Options()),
		shortcuts:   components.NewShortcutList(components.Presets(), settings.Pattern),
		statusBar:   components.NewStatusBar(),
	}
	m.accepted = m.rangeInput.Value()
	return m
}

// Accepted returns the last fully acceptable selection.
func (m *Model) Accepted() daterange.Range {
	return m.accepted
}

// SetInitialRange seeds the widget with a preselected range, e.g. from
// command line flags.
func (m *Model) SetInitialRange(r daterange.Range) {
	m.rangeInput.SetValue(r)
	m.accepted = r
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.rangeInput.Focus(), m.loadRecent()}

	if m.watcher != nil {
		if err := m.watcher.Start(); err == nil {
			cmds = append(cmds, m.waitForSettingsChange())
		}
	}

	return tea.Batch(cmds...)
}

// Update routes messages to the handlers in handlers.go.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case components.RangeChangedMsg:
		return m.handleRangeChanged(msg)

	case components.RangeErrorMsg:
		return m.handleRangeError(msg)

	case recentLoadedMsg:
		return m.handleRecentLoaded(msg)

	case selectionSavedMsg:
		return m.handleSelectionSaved(msg)

	case settingsChangedMsg:
		return m.handleSettingsChanged(msg)

	case clearStatusMsg:
		m.statusBar.Clear()
		return m, nil

	case errMsg:
		return m.handleError(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	default:
		return m, nil
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.terminalTooSmall {
		return fmt.Sprintf("Terminal too small. Need at least %dx%d.\n", MinTerminalWidth, MinTerminalHeight)
	}

	dims := CalculatePaneDimensions(m.width, m.height)

	inputStyle := paneBorderStyle
	shortcutStyle := paneBorderStyle
	if m.focusedPane == PaneInput {
		inputStyle = paneBorderFocusedStyle
	} else {
		shortcutStyle = paneBorderFocusedStyle
	}

	inputPane := inputStyle.
		Width(dims.InputWidth).
		Height(dims.PaneHeight).
		Render(m.rangeInput.View())

	shortcutPane := shortcutStyle.
		Width(dims.ShortcutsWidth).
		Height(dims.PaneHeight).
		Render(m.shortcuts.View())

	var b strings.Builder
	b.WriteString(appTitleStyle.Render("stint"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, inputPane, shortcutPane))
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())
	return b.String()
}

// Messages

type recentLoadedMsg struct {
	entries []history.Entry
}

type selectionSavedMsg struct {
	entry history.Entry
}

type settingsChangedMsg struct {
	settings config.Settings
}

type clearStatusMsg struct{}

type errMsg struct {
	err error
}
