package calendar

import (
	"fmt"
	"time"
)

// Grid geometry.
const (
	Weeks     = 53 // week-columns, indices 0…52
	Days      = 7  // day-rows, 0 = Sunday … 6 = Saturday
	FirstRow  = 1  // first day-row glyphs are drawn on (Monday)
	GlyphRows = 5  // glyphs cover Monday to Friday
)

// Coordinate is a cell of the calendar grid.
type Coordinate struct {
	Week int // week-column, 0…52
	Day  int // day-row, 0…6
}

// InGrid is a predicate: does c address a cell of the grid?
func (c Coordinate) InGrid() bool {
	return c.Week >= 0 && c.Week < Weeks && c.Day >= 0 && c.Day < Days
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(w%d,d%d)", c.Week, c.Day)
}

// Date returns the date for year/month/day at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate strips time-of-day and location from t, keeping its calendar date.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Anchor returns the most recent Sunday on or before January 1 of year.
// The result is not necessarily in year.
func Anchor(year int) time.Time {
	jan1 := Date(year, time.January, 1)
	anchor := jan1.AddDate(0, 0, -int(jan1.Weekday())) // time.Sunday == 0
	tracer().Debugf("anchor for year %d is %s", year, anchor.Format(DateLayout))
	return anchor
}

// DateAt returns the date of grid cell (week, day), counted from anchor.
// No range checks are performed.
func DateAt(anchor time.Time, week, day int) time.Time {
	return Truncate(anchor).AddDate(0, 0, 7*week+day)
}

// CoordinateOf is the inverse of DateAt. It returns false if date does not
// fall into the grid spanned from anchor.
func CoordinateOf(anchor time.Time, date time.Time) (Coordinate, bool) {
	days := daysBetween(Truncate(anchor), Truncate(date))
	if days < 0 {
		return Coordinate{}, false
	}
	c := Coordinate{Week: days / 7, Day: days % 7}
	return c, c.InGrid()
}

// daysBetween counts calendar days from a to b. Both have to be at midnight UTC.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// DateLayout is the layout used for printing dates (ISO 8601).
const DateLayout = "2006-01-02"
