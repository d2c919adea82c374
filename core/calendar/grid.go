package calendar

import (
	"time"
)

// Grid counts history entries per cell of the contribution calendar of a
// year. This is what a hosting site's activity graph shows.
type Grid struct {
	year   int
	anchor time.Time
	cells  [Weeks][Days]int
}

// NewGrid creates an empty grid for year.
func NewGrid(year int) *Grid {
	return &Grid{
		year:   year,
		anchor: Anchor(year),
	}
}

// Year returns the year the grid is anchored at.
func (g *Grid) Year() int {
	return g.year
}

// Anchor returns the date of cell (0, 0).
func (g *Grid) Anchor() time.Time {
	return g.anchor
}

// Add counts n entries for date. Dates outside of the grid's year are not
// shown by a contribution calendar and are ignored; Add returns false for them.
func (g *Grid) Add(date time.Time, n int) bool {
	if date.Year() != g.year {
		tracer().Debugf("grid ignores %s: not in year %d", date.Format(DateLayout), g.year)
		return false
	}
	c, ok := CoordinateOf(g.anchor, date)
	if !ok {
		return false
	}
	g.cells[c.Week][c.Day] += n
	return true
}

// Count returns the number of entries for cell (week, day), or 0 for
// cells outside the grid.
func (g *Grid) Count(week, day int) int {
	if !(Coordinate{week, day}).InGrid() {
		return 0
	}
	return g.cells[week][day]
}

// InYear is a predicate: does cell (week, day) show a date of the grid's year?
func (g *Grid) InYear(week, day int) bool {
	if !(Coordinate{week, day}).InGrid() {
		return false
	}
	return DateAt(g.anchor, week, day).Year() == g.year
}

// Max returns the highest count of all cells.
func (g *Grid) Max() int {
	max := 0
	for w := 0; w < Weeks; w++ {
		for d := 0; d < Days; d++ {
			if g.cells[w][d] > max {
				max = g.cells[w][d]
			}
		}
	}
	return max
}

// Total returns the sum of all counts.
func (g *Grid) Total() int {
	total := 0
	for w := 0; w < Weeks; w++ {
		for d := 0; d < Days; d++ {
			total += g.cells[w][d]
		}
	}
	return total
}

// Row returns the counts for day-row day, one per week-column.
func (g *Grid) Row(day int) []int {
	row := make([]int, Weeks)
	if day < 0 || day >= Days {
		return row
	}
	for w := 0; w < Weeks; w++ {
		row[w] = g.cells[w][day]
	}
	return row
}
