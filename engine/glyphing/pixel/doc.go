/*
Package pixel implements a shaper for pixel fonts.

Text is split into grapheme clusters, i.e. user-perceived characters, so that
a character composed of several code-points (a letter with a combining accent,
an emoji with a skin-tone modifier) consumes exactly one glyph. A cluster is
looked up by its first code-point after canonical composition. Only lowercase
letters are aliased to their uppercase glyphs; 'Ａ', 'á' and 'Ä' have no glyph
of their own and are drawn blank, like any other unknown character.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package pixel

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'graffiti.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("graffiti.glyphs")
}
