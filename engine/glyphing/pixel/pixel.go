package pixel

import (
	"io"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/graffiti/core/font"
	"github.com/npillmayer/graffiti/engine/glyphing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"golang.org/x/text/unicode/norm"
)

var setupClasses sync.Once

type pxshape struct {
	font             *font.Font
	graphemeSplitter *segment.Segmenter
	current          glyphing.ShapedGlyph
	inx              int
}

// Shaper creates a shaper for pixel font f. If f is nil, the built-in block
// font is used.
func Shaper(f *font.Font) glyphing.Shaper {
	if f == nil {
		f = font.Block
	}
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	onGraphemes := grapheme.NewBreaker(1)
	return &pxshape{
		font:             f,
		graphemeSplitter: segment.NewSegmenter(onGraphemes),
	}
}

// Init starts shaping text. Any shaping in progress is abandoned.
func (px *pxshape) Init(text io.RuneReader) {
	px.graphemeSplitter.Init(text)
	px.current = glyphing.ShapedGlyph{}
	px.inx = 0
}

// Next shapes the next character. It returns false at the end of the text.
func (px *pxshape) Next() bool {
	if !px.graphemeSplitter.Next() {
		return false
	}
	cluster := string(px.graphemeSplitter.Bytes())
	r := LookupRune(cluster)
	g, found := px.font.Lookup(r)
	px.current = glyphing.ShapedGlyph{
		ClusterID: px.inx,
		Cluster:   cluster,
		CodePoint: r,
		Glyph:     g,
		Fallback:  !found && !unicode.IsSpace(r),
	}
	if px.current.Fallback {
		tracer().Infof("character %q not found in font %q, treating as space", cluster, px.font.Name())
	}
	px.inx++
	return true
}

// Glyph returns the glyph shaped by the most recent call to Next.
func (px *pxshape) Glyph() glyphing.ShapedGlyph {
	return px.current
}

// LookupRune returns the code-point to look up a glyph for: the first
// code-point of the cluster in composed form (NFC). "e\u0301" therefore
// yields 'é', the same as a precomposed 'é'. No other folding takes place.
// For an empty cluster, utf8.RuneError is returned.
func LookupRune(cluster string) rune {
	r, _ := utf8.DecodeRuneInString(norm.NFC.String(cluster))
	return r
}
