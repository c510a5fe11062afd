// Package rangeinput implements the state machine behind a dual-field
// date-range input: two text buffers, a committed range, and a popup
// calendar, kept consistent under keystrokes, focus changes, calendar
// clicks, and owner-driven value updates.
//
// Every transition runs synchronously and computes the next state in
// one step; notifications come back as an effect list so the hosting
// component stays in charge of rendering and callbacks.
package rangeinput

import (
	"time"

	"stint/internal/calendar"
	"stint/internal/dateformat"
	"stint/internal/daterange"
)

// Controller owns the two boundary fields and runs the validation and
// commit rules over them.
type Controller struct {
	opts   Options
	fields [2]Field

	calendarOpen bool

	// lastNotified suppresses consecutive duplicate change effects,
	// e.g. a blur re-committing the range already reported while
	// typing.
	lastNotified daterange.Range
}

// New creates a controller. With opts.Value set the controller is
// controlled and seeds from it; otherwise it seeds from
// opts.DefaultValue.
func New(opts Options) *Controller {
	opts = opts.withDefaults()

	seed := opts.DefaultValue
	if opts.Controlled() {
		seed = *opts.Value
	}

	c := &Controller{opts: opts, lastNotified: seed}
	c.fields[daterange.Start].Committed = seed.Start
	c.fields[daterange.End].Committed = seed.End
	return c
}

// Options returns the controller's current options.
func (c *Controller) Options() Options { return c.opts }

// SetOptions replaces the controller's options in place. Committed
// values and edit buffers are kept; pass a changed Value through
// SetValue to replace them.
func (c *Controller) SetOptions(opts Options) {
	c.opts = opts.withDefaults()
	if c.opts.Controlled() {
		committed := daterange.Range{
			Start: c.fields[daterange.Start].Committed,
			End:   c.fields[daterange.End].Committed,
		}
		if !committed.Equal(*c.opts.Value) {
			c.SetValue(*c.opts.Value)
		}
	}
}

// SetValue replaces both committed values wholesale. This is the owner
// supplying a new value (controlled mode) or a programmatic update such
// as applying a shortcut. No change effect is emitted; the owner
// already knows the value.
func (c *Controller) SetValue(r daterange.Range) {
	for b := range c.fields {
		c.fields[b].Committed = r.At(daterange.Boundary(b))
		c.fields[b].Conflicted = false
		if c.fields[b].Focused {
			c.fields[b].EditText = c.formatDate(r.At(daterange.Boundary(b)))
		} else {
			c.fields[b].EditText = ""
		}
	}
	if c.opts.Controlled() {
		v := r
		c.opts.Value = &v
	}
	c.lastNotified = r
}

// Clear resets both boundaries to unset.
func (c *Controller) Clear() {
	c.SetValue(daterange.Empty)
}

// Field returns a copy of the edit state at boundary b.
func (c *Controller) Field(b daterange.Boundary) Field {
	return c.fields[b]
}

// IsCalendarOpen reports whether the popup calendar is showing.
func (c *Controller) IsCalendarOpen() bool { return c.calendarOpen }

// OpenCalendar shows the popup calendar.
func (c *Controller) OpenCalendar() { c.calendarOpen = true }

// CloseCalendar hides the popup calendar.
func (c *Controller) CloseCalendar() { c.calendarOpen = false }

// Focus begins editing boundary b: the edit buffer is primed with the
// committed value's formatted text (empty for unset or unparsable
// values). Focusing one field blurs the other first.
func (c *Controller) Focus(b daterange.Boundary) []Effect {
	if c.opts.Disabled {
		return nil
	}

	var effects []Effect
	if c.fields[b.Other()].Focused {
		effects = append(effects, c.Blur(b.Other())...)
	}
	if c.fields[b].Focused {
		return effects
	}

	f := &c.fields[b]
	f.Focused = true
	f.EditText = c.formatDate(f.Committed)

	if c.opts.OpenOnFocus && !c.calendarOpen {
		c.calendarOpen = true
		effects = append(effects, OpenCalendarEffect{})
	}
	if c.opts.SelectAllOnFocus && f.EditText != "" {
		effects = append(effects, SelectAllEffect{Boundary: b})
	}
	return effects
}

// Edit replaces boundary b's edit buffer and re-runs validation. Errors
// surface as inline display text only; ErrorEffect waits for blur.
func (c *Controller) Edit(b daterange.Boundary, text string) []Effect {
	if c.opts.Disabled {
		return nil
	}
	if !c.fields[b].Focused {
		// Keystrokes land on the focused field; force consistency.
		c.fields[b].Focused = true
	}
	c.fields[b].EditText = text
	return c.revalidate(b)
}

// Blur resolves boundary b's edit buffer into its committed value (in
// uncontrolled mode) or discards it (controlled mode redisplays the
// owner's value). Invalid and out-of-range values surface here via
// ErrorEffect.
func (c *Controller) Blur(b daterange.Boundary) []Effect {
	f := &c.fields[b]
	if !f.Focused {
		return nil
	}

	parsed := c.parseText(f.EditText)
	f.Focused = false
	f.EditText = ""
	// Resolving b makes it the later-edited value; any standing conflict
	// flag belongs to the other field now.
	f.Conflicted = false

	if !c.opts.Controlled() {
		f.Committed = parsed
	}

	switch classify(parsed, c.opts) {
	case classInvalid, classOutOfRange:
		// The offending value at b's slot, the other boundary's current
		// committed value at the other slot.
		pair := daterange.Empty.
			With(b, parsed).
			With(b.Other(), c.fields[b.Other()].Committed)
		return []Effect{ErrorEffect{Range: pair}}

	case classOK:
		pair := c.pairOf(b, parsed, c.fields[b.Other()].Committed)
		if ok, _ := daterange.OrderPair(pair.Start, pair.End, c.opts.AllowSingleDayRange); !ok {
			// Ordering conflict: the newly blurred value wins the slot,
			// the stale value in the other field stays flagged.
			c.fields[b.Other()].Conflicted = true
			return []Effect{ErrorEffect{Range: pair}}
		}
	}

	return c.commitIfAcceptable(b, parsed)
}

// ClickDay applies a calendar click: the clicked day re-anchors one
// boundary per the selection rules and the result is committed without
// text parsing. Clicked days come from a grid already constrained to
// the bounds, so no range check is needed.
func (c *Controller) ClickDay(day time.Time) []Effect {
	if c.opts.Disabled {
		return nil
	}

	current := c.SelectedRange()
	next, anchored := calendar.Assign(current, day, c.opts.AllowSingleDayRange)

	if !c.opts.AllowUnboundedRange && countSet(next) < countSet(current) {
		// Deselecting an endpoint would leave a half-open range.
		return nil
	}

	for b := range c.fields {
		boundary := daterange.Boundary(b)
		if !c.opts.Controlled() {
			c.fields[b].Committed = next.At(boundary)
		}
		c.fields[b].Conflicted = false
		if c.fields[b].Focused {
			c.fields[b].EditText = c.formatDate(next.At(boundary))
		}
	}

	focusTo := anchored
	if current.BothUnset() {
		// The first click anchors the start slot, but an already-focused
		// field keeps focus so the next click fills its own slot.
		for b := range c.fields {
			if c.fields[b].Focused {
				focusTo = daterange.Boundary(b)
			}
		}
	}

	effects := []Effect{FocusEffect{Boundary: focusTo}}
	if !next.Equal(c.lastNotified) {
		c.lastNotified = next
		effects = append(effects, ChangeEffect{Range: next})
	}
	return effects
}

// DisplayText is what boundary b's field shows: the raw edit buffer
// while focused, otherwise the committed value's formatted text or the
// configured message for its failure kind. Each field is evaluated
// independently.
func (c *Controller) DisplayText(b daterange.Boundary) string {
	f := c.fields[b]
	if f.Focused {
		return f.EditText
	}

	switch classify(f.Committed, c.opts) {
	case classEmpty:
		return ""
	case classInvalid:
		return c.opts.InvalidDateMessage
	case classOutOfRange:
		return c.opts.OutOfRangeMessage
	}
	if f.Conflicted {
		return c.opts.OverlappingDatesMessage
	}
	return c.formatDate(f.Committed)
}

// HasError reports whether boundary b currently displays an error
// message rather than a value.
func (c *Controller) HasError(b daterange.Boundary) bool {
	f := c.fields[b]
	if f.Focused {
		return false
	}
	return !classify(f.Committed, c.opts).acceptable() || f.Conflicted
}

// SelectedRange derives the range the calendar works against: each
// boundary's effective value where acceptable, unset otherwise.
func (c *Controller) SelectedRange() daterange.Range {
	r := daterange.Empty
	for b := range c.fields {
		boundary := daterange.Boundary(b)
		if c.fields[b].Conflicted {
			// A flagged stale value is not part of the selection.
			continue
		}
		eff := c.effective(boundary)
		if classify(eff, c.opts) == classOK {
			r = r.With(boundary, eff)
		}
	}
	return r
}

// revalidate runs the validation algorithm after an edit to boundary
// `edited`. It recomputes ordering conflicts from the effective values
// and commits when the pair is fully acceptable.
func (c *Controller) revalidate(edited daterange.Boundary) []Effect {
	effEdited := c.effective(edited)
	effOther := c.effective(edited.Other())
	clsEdited := classify(effEdited, c.opts)
	clsOther := classify(effOther, c.opts)

	c.fields[edited].Conflicted = false

	if !clsEdited.acceptable() {
		// The user is mid-correction; keep any standing conflict flag
		// on the other field and stay quiet until blur.
		return nil
	}

	if !clsOther.acceptable() {
		// The other boundary fails independently of ordering. The
		// edited boundary's validity still counts: report it alone,
		// paired with an explicit unset marker.
		c.fields[edited.Other()].Conflicted = false
		return c.notifyChange(daterange.Empty.With(edited, effEdited))
	}

	pair := c.pairOf(edited, effEdited, effOther)
	if ok, _ := daterange.OrderPair(pair.Start, pair.End, c.opts.AllowSingleDayRange); !ok {
		// The later edit wins; the pre-existing value in the other
		// field is flagged, not cleared.
		c.fields[edited.Other()].Conflicted = true
		return nil
	}
	c.fields[edited.Other()].Conflicted = false

	if !c.opts.Controlled() {
		c.fields[edited].Committed = effEdited
		c.fields[edited.Other()].Committed = effOther
	}
	return c.notifyChange(pair)
}

// commitIfAcceptable finishes a blur whose value is empty or valid and
// ordered: commit already happened above, so this only decides whether
// a change effect is due.
func (c *Controller) commitIfAcceptable(b daterange.Boundary, resolved daterange.Date) []Effect {
	other := c.fields[b.Other()].Committed
	if !classify(other, c.opts).acceptable() {
		if classify(resolved, c.opts) == classOK {
			return c.notifyChange(daterange.Empty.With(b, resolved))
		}
		return nil
	}
	return c.notifyChange(c.pairOf(b, resolved, other))
}

// notifyChange emits a change effect unless the range matches the last
// one reported.
func (c *Controller) notifyChange(r daterange.Range) []Effect {
	if r.Equal(c.lastNotified) {
		return nil
	}
	c.lastNotified = r
	return []Effect{ChangeEffect{Range: r}}
}

// effective is boundary b's value as validation sees it: the parsed
// edit buffer while focused, the committed value otherwise.
func (c *Controller) effective(b daterange.Boundary) daterange.Date {
	f := c.fields[b]
	if f.Focused {
		return c.parseText(f.EditText)
	}
	return f.Committed
}

// pairOf arranges (edited boundary's value, other boundary's value)
// into slot order.
func (c *Controller) pairOf(edited daterange.Boundary, editedVal, otherVal daterange.Date) daterange.Range {
	return daterange.Empty.With(edited, editedVal).With(edited.Other(), otherVal)
}

func (c *Controller) parseText(text string) daterange.Date {
	if c.opts.AllowRelativeInput {
		return daterange.FromResult(dateformat.ParseRelative(text, c.opts.Pattern))
	}
	return daterange.FromResult(dateformat.Parse(text, c.opts.Pattern))
}

func (c *Controller) formatDate(d daterange.Date) string {
	t, ok := d.Time()
	if !ok {
		return ""
	}
	return dateformat.Format(t, c.opts.Pattern)
}

func countSet(r daterange.Range) int {
	n := 0
	if r.Start.IsValid() {
		n++
	}
	if r.End.IsValid() {
		n++
	}
	return n
}
