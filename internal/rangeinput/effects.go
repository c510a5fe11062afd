package rangeinput

import (
	"stint/internal/daterange"
)

// Effect is a notification emitted by a controller transition. The
// hosting component applies effects after the state update, keeping the
// controller itself free of callbacks and rendering concerns.
type Effect interface {
	isEffect()
}

// ChangeEffect reports a newly acceptable range. Emitted only when both
// boundaries are acceptable and ordered; never emitted twice in a row
// for the same range.
type ChangeEffect struct {
	Range daterange.Range
}

// ErrorEffect reports an unacceptable boundary value at blur. Invalid
// boundaries carry the invalid sentinel, out-of-range boundaries the
// offending date, ordering conflicts the new value paired with the old
// conflicting one.
type ErrorEffect struct {
	Range daterange.Range
}

// FocusEffect asks the host to move input focus to a boundary's field,
// typically after a calendar click re-anchors an endpoint.
type FocusEffect struct {
	Boundary daterange.Boundary
}

// OpenCalendarEffect asks the host to show the calendar popup.
type OpenCalendarEffect struct{}

// SelectAllEffect asks the host to select the primed text of a freshly
// focused field so the next keystroke replaces it.
type SelectAllEffect struct {
	Boundary daterange.Boundary
}

func (ChangeEffect) isEffect()       {}
func (ErrorEffect) isEffect()        {}
func (FocusEffect) isEffect()        {}
func (OpenCalendarEffect) isEffect() {}
func (SelectAllEffect) isEffect()    {}
