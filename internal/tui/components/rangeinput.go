package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stint/internal/daterange"
	"stint/internal/rangeinput"
)

var (
	rangeInputLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	rangeInputLabelFocusedStyle = lipgloss.NewStyle().
					Foreground(lipgloss.Color("39")).
					Bold(true)

	rangeInputValueStyle = lipgloss.NewStyle()

	rangeInputErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Italic(true)

	rangeInputHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

// RangeChangedMsg is sent when the selection becomes a new acceptable
// range.
type RangeChangedMsg struct {
	Range daterange.Range
}

// RangeErrorMsg is sent when a field is left holding an invalid,
// out-of-range, or conflicting value.
type RangeErrorMsg struct {
	Range daterange.Range
}

// RangeInput is the dual-field date-range widget: two text inputs
// backed by a rangeinput.Controller, with a popup calendar.
type RangeInput struct {
	controller *rangeinput.Controller
	inputs     [2]textinput.Model
	calendar   *Calendar

	// replaceNext makes the next typed rune replace the primed buffer,
	// emulating select-all-on-focus in a terminal.
	replaceNext [2]bool

	focused bool
	width   int
}

// NewRangeInput creates the widget from controller options.
func NewRangeInput(opts rangeinput.Options) *RangeInput {
	ri := &RangeInput{width: 60}

	ri.controller = rangeinput.New(opts)
	opts = ri.controller.Options()

	for b := range ri.inputs {
		ti := textinput.New()
		ti.Placeholder = opts.Pattern
		ti.CharLimit = 40
		ti.Width = 16
		ti.Prompt = ""
		ri.inputs[b] = ti
	}

	ri.calendar = NewCalendar(opts.MinDate, opts.MaxDate, opts.AllowSingleDayRange)
	ri.calendar.SetSelection(ri.controller.SelectedRange())
	return ri
}

// Controller exposes the underlying state machine, mainly for tests and
// for owners running the widget in controlled mode.
func (ri *RangeInput) Controller() *rangeinput.Controller {
	return ri.controller
}

// SetWidth sets the rendered width.
func (ri *RangeInput) SetWidth(width int) {
	ri.width = width
}

// Focus gives the widget input focus, starting at the start field.
func (ri *RangeInput) Focus() tea.Cmd {
	ri.focused = true
	return ri.applyEffects(ri.controller.Focus(daterange.Start))
}

// Blur removes input focus, resolving any pending edit.
func (ri *RangeInput) Blur() tea.Cmd {
	ri.focused = false
	var effects []rangeinput.Effect
	effects = append(effects, ri.controller.Blur(daterange.Start)...)
	effects = append(effects, ri.controller.Blur(daterange.End)...)
	ri.controller.CloseCalendar()
	return ri.applyEffects(effects)
}

// Focused reports whether the widget has input focus.
func (ri *RangeInput) Focused() bool {
	return ri.focused
}

// SetValue replaces the selection programmatically (owner value update
// or an applied shortcut).
func (ri *RangeInput) SetValue(r daterange.Range) {
	ri.controller.SetValue(r)
	ri.syncInputs()
	ri.calendar.SetSelection(ri.controller.SelectedRange())
}

// SetOptions replaces the widget's options, e.g. after a settings
// reload.
func (ri *RangeInput) SetOptions(opts rangeinput.Options) {
	ri.controller.SetOptions(opts)
	opts = ri.controller.Options()
	for b := range ri.inputs {
		ri.inputs[b].Placeholder = opts.Pattern
	}
	ri.calendar.SetBounds(opts.MinDate, opts.MaxDate)
	ri.calendar.allowSingleDay = opts.AllowSingleDayRange
	ri.calendar.SetSelection(ri.controller.SelectedRange())
	ri.syncInputs()
}

// Value returns the current derived selection.
func (ri *RangeInput) Value() daterange.Range {
	return ri.controller.SelectedRange()
}

// Update handles Bubble Tea messages.
func (ri *RangeInput) Update(msg tea.Msg) (*RangeInput, tea.Cmd) {
	if !ri.focused {
		return ri, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return ri, nil
	}

	switch keyMsg.Type {
	case tea.KeyTab:
		return ri, ri.moveFocus(false)
	case tea.KeyShiftTab:
		return ri, ri.moveFocus(true)
	case tea.KeyEsc:
		if ri.controller.IsCalendarOpen() {
			ri.controller.CloseCalendar()
			return ri, nil
		}
		return ri, nil
	case tea.KeyEnter:
		if ri.controller.IsCalendarOpen() {
			return ri, ri.clickCursorDay()
		}
		ri.openCalendar()
		return ri, nil
	}

	if ri.controller.IsCalendarOpen() {
		switch keyMsg.Type {
		case tea.KeyLeft:
			ri.calendar.MoveCursor(-1, 0)
			return ri, nil
		case tea.KeyRight:
			ri.calendar.MoveCursor(1, 0)
			return ri, nil
		case tea.KeyUp:
			ri.calendar.MoveCursor(0, -1)
			return ri, nil
		case tea.KeyDown:
			ri.calendar.MoveCursor(0, 1)
			return ri, nil
		}
		if keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1 {
			switch keyMsg.Runes[0] {
			case '[':
				ri.calendar.PageMonth(-1)
				return ri, nil
			case ']':
				ri.calendar.PageMonth(1)
				return ri, nil
			}
			// Vim motions drive the calendar only while the edit buffer
			// is empty; otherwise the letters belong to the typed date.
			if ri.editBufferEmpty() {
				switch keyMsg.Runes[0] {
				case 'h':
					ri.calendar.MoveCursor(-1, 0)
					return ri, nil
				case 'l':
					ri.calendar.MoveCursor(1, 0)
					return ri, nil
				case 'k':
					ri.calendar.MoveCursor(0, -1)
					return ri, nil
				case 'j':
					ri.calendar.MoveCursor(0, 1)
					return ri, nil
				}
			}
		}
	}

	return ri, ri.handleTextKey(keyMsg)
}

// handleTextKey routes an editing keystroke into the focused field.
func (ri *RangeInput) handleTextKey(keyMsg tea.KeyMsg) tea.Cmd {
	b, ok := ri.focusedBoundary()
	if !ok {
		return nil
	}

	if ri.replaceNext[b] && keyMsg.Type == tea.KeyRunes {
		ri.inputs[b].SetValue("")
	}
	if keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeyBackspace || keyMsg.Type == tea.KeyDelete {
		ri.replaceNext[b] = false
	}

	var cmd tea.Cmd
	ri.inputs[b], cmd = ri.inputs[b].Update(keyMsg)

	effects := ri.controller.Edit(b, ri.inputs[b].Value())
	ri.calendar.SetSelection(ri.controller.SelectedRange())

	return tea.Batch(cmd, ri.applyEffects(effects))
}

// moveFocus blurs the focused field and focuses its neighbor.
func (ri *RangeInput) moveFocus(reverse bool) tea.Cmd {
	next := daterange.Start
	if b, ok := ri.focusedBoundary(); ok {
		next = b.Other()
	} else if reverse {
		next = daterange.End
	}

	effects := ri.controller.Focus(next)
	ri.calendar.SetSelection(ri.controller.SelectedRange())
	return ri.applyEffects(effects)
}

// clickCursorDay applies the calendar cursor day as a click.
func (ri *RangeInput) clickCursorDay() tea.Cmd {
	if !ri.calendar.CursorEnabled() {
		return nil
	}
	effects := ri.controller.ClickDay(ri.calendar.CursorDay())
	ri.calendar.SetSelection(ri.controller.SelectedRange())
	return ri.applyEffects(effects)
}

// applyEffects turns controller effects into widget state and messages.
func (ri *RangeInput) applyEffects(effects []rangeinput.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, effect := range effects {
		switch e := effect.(type) {
		case rangeinput.ChangeEffect:
			captured := e.Range
			cmds = append(cmds, func() tea.Msg { return RangeChangedMsg{Range: captured} })
		case rangeinput.ErrorEffect:
			captured := e.Range
			cmds = append(cmds, func() tea.Msg { return RangeErrorMsg{Range: captured} })
		case rangeinput.FocusEffect:
			cmds = append(cmds, ri.applyEffects(ri.controller.Focus(e.Boundary)))
		case rangeinput.OpenCalendarEffect:
			ri.showCalendar()
		case rangeinput.SelectAllEffect:
			ri.replaceNext[e.Boundary] = true
		}
	}
	ri.syncInputs()
	return tea.Batch(cmds...)
}

// syncInputs aligns the textinput models with the controller's fields.
func (ri *RangeInput) syncInputs() {
	for b := range ri.inputs {
		boundary := daterange.Boundary(b)
		field := ri.controller.Field(boundary)
		if field.Focused {
			if !ri.inputs[b].Focused() {
				ri.inputs[b].Focus()
			}
			if ri.inputs[b].Value() != field.EditText {
				ri.inputs[b].SetValue(field.EditText)
				ri.inputs[b].CursorEnd()
			}
		} else {
			ri.inputs[b].Blur()
			ri.replaceNext[b] = false
		}
	}
}

// openCalendar shows the popup at the month of the current selection.
func (ri *RangeInput) openCalendar() {
	ri.controller.OpenCalendar()
	ri.showCalendar()
}

func (ri *RangeInput) showCalendar() {
	sel := ri.controller.SelectedRange()
	ri.calendar.SetSelection(sel)
	if t, ok := sel.Start.Time(); ok {
		ri.calendar.ShowMonthOf(t)
	} else if t, ok := sel.End.Time(); ok {
		ri.calendar.ShowMonthOf(t)
	}
}

// editBufferEmpty reports whether the focused field has no typed text.
func (ri *RangeInput) editBufferEmpty() bool {
	b, ok := ri.focusedBoundary()
	if !ok {
		return true
	}
	return ri.controller.Field(b).EditText == ""
}

// focusedBoundary returns the boundary being edited, if any.
func (ri *RangeInput) focusedBoundary() (daterange.Boundary, bool) {
	for b := range ri.inputs {
		if ri.controller.Field(daterange.Boundary(b)).Focused {
			return daterange.Boundary(b), true
		}
	}
	return daterange.Start, false
}

// View renders the two fields and, when open, the calendar popup.
func (ri *RangeInput) View() string {
	var b strings.Builder

	b.WriteString(ri.renderField(daterange.Start, "Start"))
	b.WriteString("   ")
	b.WriteString(ri.renderField(daterange.End, "End"))
	b.WriteString("\n")

	if ri.controller.IsCalendarOpen() {
		b.WriteString(ri.calendar.View())
		b.WriteString("\n")
	}

	b.WriteString(rangeInputHelpStyle.Render("TAB: switch field  ENTER: calendar  ESC: close"))
	return b.String()
}

func (ri *RangeInput) renderField(boundary daterange.Boundary, label string) string {
	field := ri.controller.Field(boundary)

	labelStyle := rangeInputLabelStyle
	if field.Focused {
		labelStyle = rangeInputLabelFocusedStyle
	}

	var value string
	if field.Focused {
		value = ri.inputs[boundary].View()
	} else {
		text := ri.controller.DisplayText(boundary)
		style := rangeInputValueStyle
		if ri.controller.HasError(boundary) {
			style = rangeInputErrorStyle
		}
		if text == "" {
			text = strings.Repeat("·", 10)
			style = rangeInputHelpStyle
		}
		value = style.Render(text)
	}

	return labelStyle.Render(label+":") + " " + value
}
