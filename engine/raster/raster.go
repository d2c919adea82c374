package raster

import (
	"fmt"
	"strings"
	"time"

	"github.com/npillmayer/graffiti/core/calendar"
	"github.com/npillmayer/graffiti/core/font"
	"github.com/npillmayer/graffiti/core/parameters"
	"github.com/npillmayer/graffiti/engine/glyphing"
	"github.com/npillmayer/graffiti/engine/glyphing/pixel"
)

// Status is the state of a raster.
type Status int

// A raster is Running until its last event has been consumed. It then is
// either Complete or Truncated, if the text did not fit into the grid.
const (
	Running Status = iota
	Complete
	Truncated
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Complete:
		return "complete"
	case Truncated:
		return "truncated"
	}
	return "<unknown>"
}

// PixelEvent is a lit pixel, mapped to a date of the target year.
type PixelEvent struct {
	Date       time.Time           // calendar date of the pixel, midnight UTC
	Count      int                 // number of history entries to create (intensity)
	Coordinate calendar.Coordinate // grid cell of the pixel
	ClusterID  int                 // index of the character the pixel belongs to
	Cluster    string              // the character the pixel belongs to
}

func (ev PixelEvent) String() string {
	return fmt.Sprintf("%s×%d %s %q", ev.Date.Format(calendar.DateLayout), ev.Count, ev.Coordinate, ev.Cluster)
}

// Stats counts what happened during rasterization.
type Stats struct {
	Glyphs    int // characters laid out
	Fallbacks int // characters drawn as blank because the font lacks a glyph
	Emitted   int // pixel events produced
	Clipped   int // pixels dropped beyond the last week-column
	OutOfYear int // pixels dropped because their date is outside the target year
	Skipped   int // characters not laid out because the grid was full
}

// Raster is a lazy sequence of pixel events for a text.
// A Raster is not safe for concurrent use.
type Raster struct {
	text      string
	year      int
	column    int
	intensity int
	spacing   int
	font      *font.Font
	shaper    glyphing.Shaper
	anchor    time.Time
	cursor    int                  // layout cursor, week-column of current glyph
	glyph     glyphing.ShapedGlyph // current glyph
	inGlyph   bool                 // is glyph being drawn?
	row, col  int                  // next pixel of current glyph to look at
	event     PixelEvent
	status    Status
	stats     Stats
}

// Option configures a raster.
type Option func(*Raster) error

// Column sets the week-column of the first character.
func Column(n int) Option {
	return func(r *Raster) error {
		r.column = n
		return nil
	}
}

// Intensity sets the number of history entries per pixel.
func Intensity(n int) Option {
	return func(r *Raster) error {
		r.intensity = n
		return nil
	}
}

// Spacing sets the number of blank week-columns between characters.
func Spacing(n int) Option {
	return func(r *Raster) error {
		r.spacing = n
		return nil
	}
}

// WithFont draws text in font f instead of the built-in block font.
func WithFont(f *font.Font) Option {
	return func(r *Raster) error {
		if f == nil {
			return fmt.Errorf("raster: font may not be nil")
		}
		r.font = f
		return nil
	}
}

// New creates a raster for text in year. Without options, text starts at
// week-column 1 with one entry per pixel and one blank column between
// characters. Invalid parameters result in an error wrapping
// parameters.ErrInvalidParameter.
func New(text string, year int, opts ...Option) (*Raster, error) {
	r := &Raster{
		text:      text,
		year:      year,
		column:    parameters.DefaultColumn,
		intensity: parameters.DefaultIntensity,
		spacing:   parameters.DefaultSpacing,
		font:      font.Block,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	p := parameters.Params{
		Year:      r.year,
		Column:    r.column,
		Intensity: r.intensity,
		Spacing:   r.spacing,
	}
	if err := p.ValidateLayout(); err != nil {
		return nil, err
	}
	r.anchor = calendar.Anchor(year)
	r.cursor = r.column
	r.shaper = pixel.Shaper(r.font)
	r.shaper.Init(strings.NewReader(text))
	tracer().Debugf("rasterizing %q in %d, anchor %s, column %d, intensity %d, spacing %d",
		text, year, r.anchor.Format(calendar.DateLayout), r.column, r.intensity, r.spacing)
	return r, nil
}

// FromParams creates a raster for the text and layout parameters of p.
func FromParams(p parameters.Params, opts ...Option) (*Raster, error) {
	opts = append([]Option{Column(p.Column), Intensity(p.Intensity), Spacing(p.Spacing)}, opts...)
	return New(p.Text, p.Year, opts...)
}

// Next advances to the next pixel event. It returns false if there are no
// more events; Status then tells if the text has been laid out completely.
func (r *Raster) Next() bool {
	for r.status == Running {
		if !r.inGlyph && !r.startGlyph() {
			return false
		}
		if r.nextPixel() {
			return true
		}
		r.cursor += r.glyph.Glyph.Width() + r.spacing
		r.inGlyph = false
	}
	return false
}

// startGlyph fetches the next character and checks if it may start within
// the grid. It returns false at the end of the layout.
func (r *Raster) startGlyph() bool {
	if !r.shaper.Next() {
		r.finish(0)
		return false
	}
	r.glyph = r.shaper.Glyph()
	if r.cursor >= calendar.Weeks {
		tracer().Infof("character %q would start at column %d, beyond the last column %d; stopping",
			r.glyph.Cluster, r.cursor, calendar.Weeks-1)
		skipped := 1
		for r.shaper.Next() {
			skipped++
		}
		r.finish(skipped)
		return false
	}
	tracer().Debugf("character %s at column %d", r.glyph, r.cursor)
	r.inGlyph = true
	r.row, r.col = 0, 0
	r.stats.Glyphs++
	if r.glyph.Fallback {
		r.stats.Fallbacks++
	}
	return true
}

// nextPixel searches the current glyph for the next lit pixel which maps to
// a date of the target year, row by row.
func (r *Raster) nextPixel() bool {
	g := r.glyph.Glyph
	for ; r.row < font.Height; r.row, r.col = r.row+1, 0 {
		for r.col < g.Width() {
			row, col := r.row, r.col
			r.col++
			if !g.IsOn(row, col) {
				continue
			}
			c := calendar.Coordinate{Week: r.cursor + col, Day: calendar.FirstRow + row}
			if c.Week >= calendar.Weeks {
				tracer().Debugf("skipping pixel %s of %q: beyond last column", c, r.glyph.Cluster)
				r.stats.Clipped++
				continue
			}
			date := calendar.DateAt(r.anchor, c.Week, c.Day)
			if date.Year() != r.year {
				tracer().Debugf("skipping pixel %s of %q: %s is not in %d",
					c, r.glyph.Cluster, date.Format(calendar.DateLayout), r.year)
				r.stats.OutOfYear++
				continue
			}
			r.event = PixelEvent{
				Date:       date,
				Count:      r.intensity,
				Coordinate: c,
				ClusterID:  r.glyph.ClusterID,
				Cluster:    r.glyph.Cluster,
			}
			r.stats.Emitted++
			return true
		}
	}
	return false
}

func (r *Raster) finish(skipped int) {
	r.stats.Skipped = skipped
	if skipped > 0 || r.stats.Clipped > 0 {
		r.status = Truncated
	} else {
		r.status = Complete
	}
	tracer().Debugf("raster %s: %+v", r.status, r.stats)
}

// Event returns the pixel event found by the most recent call to Next.
func (r *Raster) Event() PixelEvent {
	return r.event
}

// Status returns Running while events remain, Complete or Truncated afterwards.
func (r *Raster) Status() Status {
	return r.status
}

// Stats returns the counters collected so far.
func (r *Raster) Stats() Stats {
	return r.stats
}

// Year returns the target year.
func (r *Raster) Year() int {
	return r.year
}

// Text returns the text being rasterized.
func (r *Raster) Text() string {
	return r.text
}

// Collect consumes all remaining events of r.
func (r *Raster) Collect() []PixelEvent {
	var events []PixelEvent
	for r.Next() {
		events = append(events, r.Event())
	}
	return events
}

// Rasterize is a shortcut for creating a raster and collecting all of its
// events.
func Rasterize(text string, year int, opts ...Option) ([]PixelEvent, Status, error) {
	r, err := New(text, year, opts...)
	if err != nil {
		return nil, Running, err
	}
	events := r.Collect()
	return events, r.Status(), nil
}
