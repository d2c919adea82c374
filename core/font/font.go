/*
Package font is for pixel fonts drawn onto a contribution calendar.

We will stick to the following nomenclature:

* A "glyph" is the bitmap of a single character. It is exactly 5 rows high,
one row for each workday of a calendar week, and of a per-glyph width,
measured in week-columns. Narrow punctuation is 1 column wide, most letters
and digits are 3 columns wide, and letters like M, N and W need 5 columns
to stay legible.

* A "font" is an immutable mapping from characters to glyphs. Fonts are
built once and never modified afterwards, so they may be shared freely
between goroutines.

Rows of a glyph are given as strings, where 'X' marks a pixel which is on
and any other character (usually a blank) marks a pixel which is off. All
rows of a glyph must have the same length. This is checked when a font is
built, not when text is drawn.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package font

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'graffiti.font'.
func tracer() tracing.Trace {
	return tracing.Select("graffiti.font")
}

// Height is the number of rows of every glyph.
const Height = 5

// On is the pixel marker in glyph rows.
const On = 'X'

// Errors returned when validating glyphs.
var (
	ErrGlyphHeight = errors.New("font: glyph must have exactly 5 rows")
	ErrRaggedGlyph = errors.New("font: all rows of a glyph must have the same width")
	ErrEmptyGlyph  = errors.New("font: glyph must be at least one column wide")
)

// Glyph is the bitmap of a character.
type Glyph struct {
	rows [Height]string
}

// NewGlyph creates a glyph from its rows, top to bottom.
func NewGlyph(rows ...string) (Glyph, error) {
	g := Glyph{}
	if len(rows) != Height {
		return g, ErrGlyphHeight
	}
	w := len(rows[0])
	if w == 0 {
		return g, ErrEmptyGlyph
	}
	for i, row := range rows {
		if len(row) != w {
			return g, fmt.Errorf("%w: row %d is %d wide, row 0 is %d wide", ErrRaggedGlyph, i, len(row), w)
		}
		g.rows[i] = row
	}
	return g, nil
}

// Width returns the number of columns of g.
func (g Glyph) Width() int {
	return len(g.rows[0])
}

// IsOn is a predicate: is pixel (row, col) of g on?
// Positions outside of g are off.
func (g Glyph) IsOn(row, col int) bool {
	if row < 0 || row >= Height || col < 0 || col >= len(g.rows[row]) {
		return false
	}
	return g.rows[row][col] == On
}

// IsBlank is a predicate: are all pixels of g off?
func (g Glyph) IsBlank() bool {
	for _, row := range g.rows {
		if strings.ContainsRune(row, On) {
			return false
		}
	}
	return true
}

// Rows returns a copy of the rows of g.
func (g Glyph) Rows() []string {
	return append([]string(nil), g.rows[:]...)
}

func (g Glyph) String() string {
	return strings.Join(g.rows[:], "\n")
}

// --- Fonts -----------------------------------------------------------------

// Font maps characters to glyphs. Characters without a glyph fall back to a
// blank glyph.
type Font struct {
	name   string
	glyphs map[rune]Glyph
	blank  Glyph
}

// New creates a font from a map of character to glyph rows. Lowercase letters
// without a glyph of their own alias their uppercase glyph. If the map contains
// a glyph for ' ', it serves as the fallback glyph, otherwise a blank glyph
// 3 columns wide is used.
//
// New validates every glyph and returns an error for the first malformed one
// (in code-point order).
func New(name string, glyphs map[rune][]string) (*Font, error) {
	f := &Font{
		name:   name,
		glyphs: make(map[rune]Glyph, 2*len(glyphs)),
	}
	chars := make([]rune, 0, len(glyphs))
	for r := range glyphs {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	for _, r := range chars {
		g, err := NewGlyph(glyphs[r]...)
		if err != nil {
			return nil, fmt.Errorf("font %q, glyph %q: %w", name, r, err)
		}
		f.glyphs[r] = g
	}
	for _, r := range chars {
		if lower := unicode.ToLower(r); lower != r {
			if _, exists := f.glyphs[lower]; !exists {
				f.glyphs[lower] = f.glyphs[r]
			}
		}
	}
	if space, ok := f.glyphs[' ']; ok {
		f.blank = space
	} else {
		f.blank, _ = NewGlyph("   ", "   ", "   ", "   ", "   ")
	}
	tracer().Debugf("font %q has %d glyphs", name, len(f.glyphs))
	return f, nil
}

// MustNew is like New, but panics on malformed glyphs. It is intended for
// fonts built during package initialization.
func MustNew(name string, glyphs map[rune][]string) *Font {
	f, err := New(name, glyphs)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the name of the font.
func (f *Font) Name() string {
	return f.name
}

// Lookup returns the glyph for character r. If the font does not contain a
// glyph for r, Lookup returns the blank fallback glyph and false.
// Lookup never fails.
func (f *Font) Lookup(r rune) (Glyph, bool) {
	if g, ok := f.glyphs[r]; ok {
		return g, true
	}
	return f.blank, false
}

// Blank returns the fallback glyph.
func (f *Font) Blank() Glyph {
	return f.blank
}

// Chars returns all characters with a glyph, in code-point order.
func (f *Font) Chars() []rune {
	chars := make([]rune, 0, len(f.glyphs))
	for r := range f.glyphs {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// Validate re-checks the structural invariants of all glyphs of f.
func (f *Font) Validate() error {
	for _, r := range f.Chars() {
		g := f.glyphs[r]
		if _, err := NewGlyph(g.Rows()...); err != nil {
			return fmt.Errorf("font %q, glyph %q: %w", f.name, r, err)
		}
	}
	if _, err := NewGlyph(f.blank.Rows()...); err != nil {
		return fmt.Errorf("font %q, fallback glyph: %w", f.name, err)
	}
	return nil
}
