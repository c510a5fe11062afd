// Package calendar models the month grid behind the popup picker and
// the rules for turning a clicked day into the next selection.
package calendar

import (
	"time"

	"stint/internal/dateformat"
	"stint/internal/daterange"
)

// Assign applies a clicked day to the current selection and returns the
// next selection plus the boundary the click anchored (the field that
// should take focus).
//
// Re-clicking a selected endpoint deselects it. A click between two set
// endpoints re-anchors the nearer one. A click equal to the only set
// endpoint collapses the selection unless single-day ranges are
// allowed.
func Assign(r daterange.Range, clicked time.Time, allowSingleDay bool) (daterange.Range, daterange.Boundary) {
	d := dateformat.StartOfDay(clicked)
	s, hasStart := r.Start.Time()
	e, hasEnd := r.End.Time()

	switch {
	case !hasStart && !hasEnd:
		return daterange.Range{Start: daterange.On(d)}, daterange.Start

	case hasStart && !hasEnd:
		switch {
		case dateformat.Before(d, s):
			return daterange.Range{Start: daterange.On(d), End: daterange.On(s)}, daterange.Start
		case dateformat.After(d, s):
			return daterange.Range{Start: daterange.On(s), End: daterange.On(d)}, daterange.End
		case allowSingleDay:
			return daterange.Range{Start: daterange.On(s), End: daterange.On(s)}, daterange.End
		default:
			return daterange.Range{End: daterange.On(s)}, daterange.End
		}

	case !hasStart && hasEnd:
		switch {
		case dateformat.After(d, e):
			return daterange.Range{Start: daterange.On(e), End: daterange.On(d)}, daterange.End
		case dateformat.Before(d, e):
			return daterange.Range{Start: daterange.On(d), End: daterange.On(e)}, daterange.Start
		case allowSingleDay:
			return daterange.Range{Start: daterange.On(e), End: daterange.On(e)}, daterange.Start
		default:
			return daterange.Range{Start: daterange.On(e)}, daterange.Start
		}

	default:
		switch {
		case dateformat.SameDay(d, s):
			return daterange.Range{End: daterange.On(e)}, daterange.Start
		case dateformat.SameDay(d, e):
			return daterange.Range{Start: daterange.On(s)}, daterange.End
		case dateformat.Before(d, s):
			return daterange.Range{Start: daterange.On(d), End: daterange.On(e)}, daterange.Start
		case dateformat.After(d, e):
			return daterange.Range{Start: daterange.On(s), End: daterange.On(d)}, daterange.End
		default:
			// Inside the range: re-anchor the nearer endpoint, the
			// start on a tie.
			if d.Sub(s) <= e.Sub(d) {
				return daterange.Range{Start: daterange.On(d), End: daterange.On(e)}, daterange.Start
			}
			return daterange.Range{Start: daterange.On(s), End: daterange.On(d)}, daterange.End
		}
	}
}
