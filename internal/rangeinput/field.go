package rangeinput

import (
	"stint/internal/daterange"
)

// Field is the edit state of one boundary: the authoritative committed
// value plus the transient text buffer held while the field has focus.
type Field struct {
	// Committed is the authoritative parsed value when the field is not
	// being edited.
	Committed daterange.Date

	// EditText holds unconfirmed keystrokes. Meaningful only while
	// Focused; resolved into Committed (or discarded) on blur.
	EditText string

	Focused bool

	// Conflicted marks this field's committed value as the losing side
	// of an ordering conflict. The value is kept, only flagged, until
	// the user revisits it.
	Conflicted bool
}

// classification buckets a boundary's effective value per the error
// taxonomy. classEmpty is a legal unset state, not an error.
type classification int

const (
	classEmpty classification = iota
	classInvalid
	classOutOfRange
	classOK
)

func (c classification) acceptable() bool {
	return c == classEmpty || c == classOK
}

// classify buckets a boundary value against the configured bounds.
func classify(d daterange.Date, opts Options) classification {
	switch {
	case d.IsUnset():
		return classEmpty
	case d.IsInvalid():
		return classInvalid
	case !d.InBounds(opts.MinDate, opts.MaxDate):
		return classOutOfRange
	default:
		return classOK
	}
}
