package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stint/internal/daterange"
	"stint/internal/rangeinput"
)

func testOptions() rangeinput.Options {
	return rangeinput.Options{
		MinDate: time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC),
		MaxDate: time.Date(2017, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// drainCmd executes a command tree and returns the produced messages.
func drainCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, sub := range batch {
			msgs = append(msgs, drainCmd(sub)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func typeText(t *testing.T, ri *RangeInput, text string) []tea.Msg {
	t.Helper()
	updated, cmd := ri.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	if updated != ri {
		t.Fatal("Expected Update to return the same widget")
	}
	return drainCmd(cmd)
}

func TestNewRangeInput(t *testing.T) {
	ri := NewRangeInput(testOptions())

	if ri == nil {
		t.Fatal("Expected NewRangeInput to return non-nil value")
	}

	if ri.Focused() {
		t.Error("Expected widget to start unfocused")
	}

	if !ri.Value().BothUnset() {
		t.Error("Expected initial selection to be empty")
	}
}

func TestRangeInputIgnoresKeysWhenUnfocused(t *testing.T) {
	ri := NewRangeInput(testOptions())

	msgs := typeText(t, ri, "2017-03-05")
	if len(msgs) != 0 {
		t.Errorf("Expected no messages while unfocused, got %d", len(msgs))
	}

	if !ri.Value().BothUnset() {
		t.Error("Expected selection to stay empty")
	}
}

func TestRangeInputTypingEmitsChange(t *testing.T) {
	ri := NewRangeInput(testOptions())
	drainCmd(ri.Focus())

	typeText(t, ri, "2017-03-05")
	_, cmd := ri.Update(tea.KeyMsg{Type: tea.KeyTab})
	drainCmd(cmd)
	msgs := typeText(t, ri, "2017-03-09")

	var changed *RangeChangedMsg
	for _, msg := range msgs {
		if m, ok := msg.(RangeChangedMsg); ok {
			changed = &m
		}
	}
	if changed == nil {
		t.Fatal("Expected a RangeChangedMsg once both dates were typed")
	}

	start, _ := changed.Range.Start.Time()
	end, _ := changed.Range.End.Time()
	if start.Day() != 5 || end.Day() != 9 {
		t.Errorf("Expected range 05..09, got %v..%v", start, end)
	}
}

func TestRangeInputBlurEmitsErrorForInvalidText(t *testing.T) {
	ri := NewRangeInput(testOptions())
	drainCmd(ri.Focus())

	typeText(t, ri, "not a date")
	msgs := drainCmd(ri.Blur())

	found := false
	for _, msg := range msgs {
		if m, ok := msg.(RangeErrorMsg); ok {
			found = true
			if !m.Range.Start.IsInvalid() {
				t.Error("Expected the start slot to carry the invalid marker")
			}
		}
	}
	if !found {
		t.Error("Expected a RangeErrorMsg at blur")
	}
}

func TestRangeInputTabSwitchesField(t *testing.T) {
	ri := NewRangeInput(testOptions())
	drainCmd(ri.Focus())

	if !ri.controller.Field(daterange.Start).Focused {
		t.Fatal("Expected start field to be focused after Focus")
	}

	_, cmd := ri.Update(tea.KeyMsg{Type: tea.KeyTab})
	drainCmd(cmd)

	if ri.controller.Field(daterange.Start).Focused {
		t.Error("Expected start field to lose focus on tab")
	}
	if !ri.controller.Field(daterange.End).Focused {
		t.Error("Expected end field to gain focus on tab")
	}
}

func TestRangeInputEnterOpensCalendarAndPicks(t *testing.T) {
	ri := NewRangeInput(testOptions())
	drainCmd(ri.Focus())

	typeText(t, ri, "2017-03-05")
	_, cmd := ri.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drainCmd(cmd)

	if !ri.controller.IsCalendarOpen() {
		t.Fatal("Expected enter to open the calendar")
	}

	// Cursor starts on the selected start day. Move it four days ahead
	// and pick, which should fill the end field.
	for i := 0; i < 4; i++ {
		_, cmd = ri.Update(tea.KeyMsg{Type: tea.KeyRight})
		drainCmd(cmd)
	}
	_, cmd = ri.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msgs := drainCmd(cmd)

	found := false
	for _, msg := range msgs {
		if m, ok := msg.(RangeChangedMsg); ok {
			found = true
			end, _ := m.Range.End.Time()
			if end.Day() != 9 {
				t.Errorf("Expected end day 9, got %d", end.Day())
			}
		}
	}
	if !found {
		t.Error("Expected a RangeChangedMsg after picking the end day")
	}
}

func TestRangeInputEscClosesCalendar(t *testing.T) {
	ri := NewRangeInput(testOptions())
	drainCmd(ri.Focus())

	_, cmd := ri.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drainCmd(cmd)
	if !ri.controller.IsCalendarOpen() {
		t.Fatal("Expected calendar to be open")
	}

	_, cmd = ri.Update(tea.KeyMsg{Type: tea.KeyEsc})
	drainCmd(cmd)
	if ri.controller.IsCalendarOpen() {
		t.Error("Expected esc to close the calendar")
	}
}

func TestRangeInputSelectAllReplacesPrimedText(t *testing.T) {
	opts := testOptions()
	opts.SelectAllOnFocus = true
	opts.DefaultValue = daterange.Range{}.
		With(daterange.Start, daterange.On(time.Date(2017, time.March, 5, 0, 0, 0, 0, time.UTC)))

	ri := NewRangeInput(opts)
	drainCmd(ri.Focus())

	if got := ri.inputs[daterange.Start].Value(); got != "2017-03-05" {
		t.Fatalf("Expected primed buffer 2017-03-05, got %q", got)
	}

	// The first keystroke replaces the primed text instead of appending.
	typeText(t, ri, "2")
	if got := ri.inputs[daterange.Start].Value(); got != "2" {
		t.Errorf("Expected buffer %q, got %q", "2", got)
	}
}

func TestRangeInputSetValueUpdatesDisplay(t *testing.T) {
	ri := NewRangeInput(testOptions())

	ri.SetValue(daterange.Range{
		Start: daterange.On(time.Date(2017, time.March, 5, 0, 0, 0, 0, time.UTC)),
		End:   daterange.On(time.Date(2017, time.March, 9, 0, 0, 0, 0, time.UTC)),
	})

	view := ri.View()
	if !strings.Contains(view, "2017-03-05") || !strings.Contains(view, "2017-03-09") {
		t.Errorf("Expected view to show both dates, got:\n%s", view)
	}
}

func TestRangeInputViewShowsCalendarWhenOpen(t *testing.T) {
	ri := NewRangeInput(testOptions())
	drainCmd(ri.Focus())

	typeText(t, ri, "2017-03-05")
	_, cmd := ri.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drainCmd(cmd)

	view := ri.View()
	if !strings.Contains(view, "March 2017") {
		t.Errorf("Expected calendar title in view, got:\n%s", view)
	}
}

func TestRangeInputSetOptionsChangesPattern(t *testing.T) {
	ri := NewRangeInput(testOptions())
	ri.SetValue(daterange.Range{
		Start: daterange.On(time.Date(2017, time.March, 5, 0, 0, 0, 0, time.UTC)),
	})

	opts := testOptions()
	opts.Pattern = "DD/MM/YYYY"
	ri.SetOptions(opts)

	view := ri.View()
	if !strings.Contains(view, "05/03/2017") {
		t.Errorf("Expected reformatted date in view, got:\n%s", view)
	}
}
