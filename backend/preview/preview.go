/*
Package preview renders a contribution calendar to a terminal.

The grid is drawn the way contribution calendars usually look: one column per
week, one row per day of the week, Sunday on top. Cells are shaded relative to
the busiest day. Cells outside of the calendar's year are left blank.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package preview

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/npillmayer/graffiti/core/calendar"
	"github.com/npillmayer/graffiti/core/percent"
	"github.com/pterm/pterm"
)

// Shades are the cell symbols for increasing activity, starting with no
// activity at all.
var Shades = []string{"·", "░", "▒", "▓", "█"}

var (
	emptyStyle = pterm.NewStyle(pterm.FgGray)
	shadeStyle = []*pterm.Style{
		pterm.NewStyle(pterm.FgLightGreen),
		pterm.NewStyle(pterm.FgGreen),
		pterm.NewStyle(pterm.FgGreen, pterm.Bold),
		pterm.NewStyle(pterm.FgLightGreen, pterm.Bold),
	}
	labelStyle = pterm.NewStyle(pterm.FgCyan)
)

const labelWidth = 4

// Shade returns the shade level of a cell count relative to max: 0 for no
// activity, 1…len(Shades)-1 otherwise.
func Shade(count, max int) int {
	if count <= 0 {
		return 0
	}
	return percent.Of(count, max).Level(len(Shades) - 1)
}

// Render writes g to w, with a header line of month names and a legend.
func Render(w io.Writer, g *calendar.Grid) error {
	_, err := io.WriteString(w, Sprint(g))
	return err
}

// Sprint renders g to a string.
func Sprint(g *calendar.Grid) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	b.WriteString(labelStyle.Sprint(monthHeader(g)))
	b.WriteByte('\n')
	max := g.Max()
	for day := 0; day < calendar.Days; day++ {
		b.WriteString(labelStyle.Sprintf("%-*s", labelWidth, time.Weekday(day).String()[:3]))
		for week := 0; week < calendar.Weeks; week++ {
			if !g.InYear(week, day) {
				b.WriteString("  ")
				continue
			}
			b.WriteString(cell(g.Count(week, day), max))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString(legend(g))
	return b.String()
}

func cell(count, max int) string {
	level := Shade(count, max)
	if level == 0 {
		return emptyStyle.Sprint(Shades[0])
	}
	return shadeStyle[level-1].Sprint(Shades[level])
}

// monthHeader puts the abbreviated name of each month above the first week
// column containing the 1st of that month.
func monthHeader(g *calendar.Grid) string {
	header := []byte(strings.Repeat(" ", 2*calendar.Weeks))
	for m := time.January; m <= time.December; m++ {
		first := calendar.Date(g.Year(), m, 1)
		c, ok := calendar.CoordinateOf(g.Anchor(), first)
		if !ok {
			continue
		}
		pos := 2 * c.Week
		if pos+3 > len(header) {
			continue
		}
		copy(header[pos:], m.String()[:3])
	}
	return strings.TrimRight(string(header), " ")
}

func legend(g *calendar.Grid) string {
	days := 0
	for day := 0; day < calendar.Days; day++ {
		for _, n := range g.Row(day) {
			if n > 0 {
				days++
			}
		}
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	b.WriteString("less ")
	for level := range Shades {
		if level == 0 {
			b.WriteString(emptyStyle.Sprint(Shades[0]))
		} else {
			b.WriteString(shadeStyle[level-1].Sprint(Shades[level]))
		}
		b.WriteByte(' ')
	}
	b.WriteString("more")
	b.WriteString(fmt.Sprintf("   %d entries on %d days in %d, at most %d per day\n",
		g.Total(), days, g.Year(), g.Max()))
	return b.String()
}
