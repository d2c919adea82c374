/*
Package calendar implements the geometry of a contribution calendar.

A contribution calendar is a grid of 53 week-columns by 7 day-rows. Column 0
starts at the anchor date, which is the Sunday on or before January 1 of the
calendar's year. Row 0 is Sunday, row 6 is Saturday. Every cell corresponds to
exactly one calendar date:

    date = anchor + 7*week + day

The anchor may lie in the preceding year, and cells of the last column may
lie in the following year. Clients decide what to do with those cells; this
package does not filter them.

Dates are represented as time.Time values at midnight UTC. Time-of-day and
location of dates handed in by clients are ignored.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package calendar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'graffiti.calendar'.
func tracer() tracing.Trace {
	return tracing.Select("graffiti.calendar")
}
