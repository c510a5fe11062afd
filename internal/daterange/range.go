// Package daterange defines the date-range data model: a per-boundary
// Date that is unset, invalid, or a calendar day, and ordering rules
// over pairs of boundaries.
package daterange

import (
	"time"

	"stint/internal/dateformat"
)

// Boundary names one endpoint of a range.
type Boundary int

const (
	Start Boundary = iota
	End
)

// Other returns the opposite boundary.
func (b Boundary) Other() Boundary {
	if b == Start {
		return End
	}
	return Start
}

func (b Boundary) String() string {
	if b == Start {
		return "start"
	}
	return "end"
}

// dateState distinguishes an unset boundary from one holding an
// unparsable value. The two must not be conflated: unset is a legal
// resting state, invalid carries an error message.
type dateState int

const (
	stateUnset dateState = iota
	stateInvalid
	stateValid
)

// Date is one boundary's value: unset, the invalid sentinel, or a
// calendar day. The zero value is unset.
type Date struct {
	state dateState
	day   time.Time
}

// Unset returns the no-value Date.
func Unset() Date { return Date{} }

// Invalid returns the parse-failure sentinel.
func Invalid() Date { return Date{state: stateInvalid} }

// On returns a Date for the calendar day of t.
func On(t time.Time) Date {
	return Date{state: stateValid, day: dateformat.StartOfDay(t)}
}

// FromResult converts a parse result into a Date.
func FromResult(r dateformat.Result) Date {
	switch r.Kind {
	case dateformat.KindValid:
		return On(r.Date)
	case dateformat.KindInvalid:
		return Invalid()
	default:
		return Unset()
	}
}

// IsUnset reports whether d holds no value.
func (d Date) IsUnset() bool { return d.state == stateUnset }

// IsInvalid reports whether d is the parse-failure sentinel.
func (d Date) IsInvalid() bool { return d.state == stateInvalid }

// IsValid reports whether d holds a calendar day.
func (d Date) IsValid() bool { return d.state == stateValid }

// Time returns the calendar day and whether d holds one.
func (d Date) Time() (time.Time, bool) {
	return d.day, d.state == stateValid
}

// Equal reports whether two Dates hold the same state and day.
func (d Date) Equal(o Date) bool {
	if d.state != o.state {
		return false
	}
	if d.state != stateValid {
		return true
	}
	return dateformat.SameDay(d.day, o.day)
}

// InBounds reports whether d falls inside [min, max], inclusive.
// A zero min or max leaves that side unbounded. Only meaningful for
// valid dates; unset and invalid report false.
func (d Date) InBounds(min, max time.Time) bool {
	if d.state != stateValid {
		return false
	}
	if !min.IsZero() && dateformat.Before(d.day, min) {
		return false
	}
	if !max.IsZero() && dateformat.After(d.day, max) {
		return false
	}
	return true
}

// Range is an ordered pair of boundary values.
type Range struct {
	Start Date
	End   Date
}

// Empty is the all-unset range.
var Empty = Range{}

// At returns the value at boundary b.
func (r Range) At(b Boundary) Date {
	if b == Start {
		return r.Start
	}
	return r.End
}

// With returns a copy of r with boundary b replaced by d.
func (r Range) With(b Boundary, d Date) Range {
	if b == Start {
		r.Start = d
	} else {
		r.End = d
	}
	return r
}

// BothUnset reports whether neither boundary holds a value.
func (r Range) BothUnset() bool {
	return r.Start.IsUnset() && r.End.IsUnset()
}

// Equal reports boundary-wise equality.
func (r Range) Equal(o Range) bool {
	return r.Start.Equal(o.Start) && r.End.Equal(o.End)
}

// Reason explains an OrderPair failure.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonStartAfterEnd
)

// OrderPair checks the ordering invariant over a pair of boundary
// values. The pair is ordered when either side is unset or invalid
// (there is nothing to order), when start precedes end, or, with
// allowEqual, when both fall on the same day.
func OrderPair(start, end Date, allowEqual bool) (bool, Reason) {
	s, sOK := start.Time()
	e, eOK := end.Time()
	if !sOK || !eOK {
		return true, ReasonNone
	}
	if dateformat.Before(s, e) {
		return true, ReasonNone
	}
	if allowEqual && dateformat.SameDay(s, e) {
		return true, ReasonNone
	}
	return false, ReasonStartAfterEnd
}
