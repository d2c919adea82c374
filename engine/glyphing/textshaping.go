/*
Package glyphing turns text into a sequence of glyphs.

For pixel fonts, shaping is simple: every user-perceived character of the
input text is mapped to exactly one glyph. Characters without a glyph are
mapped to a blank fallback glyph and marked as such, which clients may report
to the user. Shaping never fails.

Concrete shapers live in sub-packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package glyphing

import (
	"fmt"
	"io"

	"github.com/npillmayer/graffiti/core/font"
)

// A ShapedGlyph is the glyph for one character of a text.
type ShapedGlyph struct {
	ClusterID int        // position of the character (grapheme cluster) in the text
	Cluster   string     // the character as found in the text
	CodePoint rune       // code-point the glyph has been looked up for
	Glyph     font.Glyph // the glyph, possibly the blank fallback
	Fallback  bool       // true if a visible character had no glyph
}

func (g ShapedGlyph) String() string {
	if g.Fallback {
		return fmt.Sprintf("(#%d %q → blank, w=%d)", g.ClusterID, g.Cluster, g.Glyph.Width())
	}
	return fmt.Sprintf("(#%d %q, w=%d)", g.ClusterID, g.Cluster, g.Glyph.Width())
}

// A Shaper creates glyphs from a sequence of Unicode code-points, one at a
// time. After Init, clients call Next until it returns false; the current
// glyph is available through Glyph.
//
//     sh.Init(strings.NewReader("Hello"))
//     for sh.Next() {
//         g := sh.Glyph()
//         …
//     }
//
// Shapers are not safe for concurrent use.
type Shaper interface {
	Init(io.RuneReader)
	Next() bool
	Glyph() ShapedGlyph
}

// GlyphSequence contains a sequence of shaped glyphs.
type GlyphSequence struct {
	Glyphs []ShapedGlyph // resulting sequence of glyphs
}

// Shape runs shaper over text and collects all glyphs.
func Shape(shaper Shaper, text io.RuneReader) GlyphSequence {
	seq := GlyphSequence{Glyphs: make([]ShapedGlyph, 0, 32)}
	if text == nil {
		return seq
	}
	shaper.Init(text)
	for shaper.Next() {
		seq.Glyphs = append(seq.Glyphs, shaper.Glyph())
	}
	return seq
}

// Width returns the number of week-columns the sequence occupies if glyphs
// are separated by spacing blank columns. Trailing spacing is not counted.
func (seq GlyphSequence) Width(spacing int) int {
	w := 0
	for i, g := range seq.Glyphs {
		if i > 0 {
			w += spacing
		}
		w += g.Glyph.Width()
	}
	return w
}

// Fallbacks returns all glyphs which have been substituted by the blank
// fallback glyph.
func (seq GlyphSequence) Fallbacks() []ShapedGlyph {
	var fb []ShapedGlyph
	for _, g := range seq.Glyphs {
		if g.Fallback {
			fb = append(fb, g)
		}
	}
	return fb
}
