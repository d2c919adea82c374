/*
Package raster lays out text on a contribution calendar and produces the
dates of all lit pixels.

Glyphs are placed left to right, starting at a given week-column. The five
rows of a glyph cover the day-rows Monday to Friday; Sunday and Saturday stay
blank. After each glyph, the layout cursor advances by the glyph's width plus a
configurable spacing, regardless of whether the glyph lit any pixels.

Boundaries are handled asymmetrically:

▪︎ A character whose first column would lie beyond the last week-column stops
the layout. Neither it nor any of the following characters are drawn, and the
raster reports status Truncated.

▪︎ A character starting within the grid may be clipped at the right edge:
pixels beyond the last week-column are dropped one by one. This, too, is
reported as Truncated, as the text did not fit.

▪︎ Pixels which map to a date outside of the target year (possible in the
first and last week-column) are dropped silently and counted.

A Raster is a lazy, one-shot sequence of pixel events. Rasterizing the same
input twice yields identical sequences.

    r, err := raster.New("HELLO", 2024, raster.Column(1), raster.Spacing(1))
    …
    for r.Next() {
        ev := r.Event()
        …
    }
    if r.Status() == raster.Truncated {
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package raster

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'graffiti.raster'.
func tracer() tracing.Trace {
	return tracing.Select("graffiti.raster")
}
