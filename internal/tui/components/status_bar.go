package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	statusBarErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Background(lipgloss.Color("236")).
				Padding(0, 1)
)

// StatusBar represents the status bar component
type StatusBar struct {
	width   int
	message string
	isError bool
}

// NewStatusBar creates a new status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetWidth sets the width of the status bar
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// SetMessage shows a transient message instead of the key hints.
func (sb *StatusBar) SetMessage(message string) {
	sb.message = message
	sb.isError = false
}

// SetError shows a transient error instead of the key hints.
func (sb *StatusBar) SetError(message string) {
	sb.message = message
	sb.isError = true
}

// Clear removes the transient message.
func (sb *StatusBar) Clear() {
	sb.message = ""
	sb.isError = false
}

// View renders the status bar
func (sb *StatusBar) View() string {
	text := "q/ctrl+c:quit tab:switch enter:calendar/apply esc:close"
	style := statusBarStyle

	if sb.message != "" {
		text = sb.message
		if sb.isError {
			style = statusBarErrorStyle
		}
	}

	// Truncate if too long
	if sb.width > 5 && len(text) > sb.width-2 {
		text = text[:sb.width-5] + "..."
	}

	return style.Width(sb.width).Render(text)
}
