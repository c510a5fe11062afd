package rangeinput

import (
	"time"

	"stint/internal/dateformat"
	"stint/internal/daterange"
)

// Default error messages shown in place of a boundary's text while it
// holds an unacceptable value and is not focused.
const (
	DefaultInvalidDateMessage      = "Invalid date"
	DefaultOutOfRangeMessage       = "Out of range"
	DefaultOverlappingDatesMessage = "Overlapping dates"
)

// Options configures a Controller.
//
// Supplying Value puts the controller in controlled mode: committed
// state is never self-authoritative and only changes when the owner
// calls SetValue. Otherwise the controller manages its own committed
// state, seeded from DefaultValue.
type Options struct {
	Value        *daterange.Range
	DefaultValue daterange.Range

	// MinDate/MaxDate bound acceptable dates, inclusive. A zero value
	// leaves that side unbounded.
	MinDate time.Time
	MaxDate time.Time

	// Pattern is the display pattern for parsing and formatting, e.g.
	// "YYYY-MM-DD". Unknown patterns fall back to the default.
	Pattern string

	InvalidDateMessage      string
	OutOfRangeMessage       string
	OverlappingDatesMessage string

	// AllowSingleDayRange permits start == end.
	AllowSingleDayRange bool

	// AllowUnboundedRange permits calendar clicks to deselect an
	// endpoint, leaving a half-open range. Typed clearing of a field is
	// always allowed.
	AllowUnboundedRange bool

	// AllowRelativeInput enables relative shortcuts ("t", "+3d", "mon")
	// in typed entry.
	AllowRelativeInput bool

	OpenOnFocus      bool
	SelectAllOnFocus bool
	Disabled         bool
}

// withDefaults fills in zero-valued messages and pattern.
func (o Options) withDefaults() Options {
	if o.Pattern == "" {
		o.Pattern = dateformat.DefaultPattern
	}
	if o.InvalidDateMessage == "" {
		o.InvalidDateMessage = DefaultInvalidDateMessage
	}
	if o.OutOfRangeMessage == "" {
		o.OutOfRangeMessage = DefaultOutOfRangeMessage
	}
	if o.OverlappingDatesMessage == "" {
		o.OverlappingDatesMessage = DefaultOverlappingDatesMessage
	}
	return o
}

// Controlled reports whether the options put the controller in
// controlled mode.
func (o Options) Controlled() bool { return o.Value != nil }
