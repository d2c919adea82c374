package raster

import (
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/graffiti/core/calendar"
	"github.com/npillmayer/graffiti/core/font"
	"github.com/npillmayer/graffiti/core/parameters"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dates(events []PixelEvent) []string {
	ds := make([]string, len(events))
	for i, ev := range events {
		ds[i] = ev.Date.Format(calendar.DateLayout)
	}
	return ds
}

func TestRasterSingleCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	events, status, err := Rasterize("I", 2024, Column(1), Intensity(2))
	require.NoError(t, err)
	assert.Equal(t, Complete, status)
	assert.Equal(t, []string{
		"2024-01-08", "2024-01-15", "2024-01-22", // top bar, Mondays
		"2024-01-16", // stem, Tuesday to Thursday
		"2024-01-17",
		"2024-01-18",
		"2024-01-12", "2024-01-19", "2024-01-26", // bottom bar, Fridays
	}, dates(events))
	for _, ev := range events {
		assert.Equal(t, 2, ev.Count)
		assert.Equal(t, 0, ev.ClusterID)
		assert.Equal(t, "I", ev.Cluster)
	}
	assert.Equal(t, calendar.Coordinate{Week: 1, Day: 1}, events[0].Coordinate)
}

func TestRasterFirstColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	events, status, err := Rasterize("I", 2024, Column(0), Intensity(1), Spacing(1))
	require.NoError(t, err)
	assert.Equal(t, Complete, status)
	assert.Equal(t, []string{
		"2024-01-01", "2024-01-08", "2024-01-15",
		"2024-01-09",
		"2024-01-10",
		"2024-01-11",
		"2024-01-05", "2024-01-12", "2024-01-19",
	}, dates(events))
	assert.Equal(t, calendar.Coordinate{Week: 0, Day: 1}, events[0].Coordinate)
}

func TestRasterAdvancesByGlyphWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	events, status, err := Rasterize("QI", 2024, Column(0), Spacing(1))
	require.NoError(t, err)
	assert.Equal(t, Complete, status)
	require.Len(t, events, 20)
	q, i := events[:11], events[11:]
	assert.Equal(t, []string{
		"2024-01-01", "2024-01-08", "2024-01-15",
		"2024-01-02", "2024-01-16",
		"2024-01-03", "2024-01-17",
		"2024-01-04", "2024-01-18",
		"2024-01-12", "2024-01-19",
	}, dates(q))
	for _, ev := range q {
		assert.Equal(t, 0, ev.ClusterID)
		assert.LessOrEqual(t, ev.Coordinate.Week, 2)
	}
	assert.Equal(t, calendar.Coordinate{Week: 4, Day: 1}, i[0].Coordinate)
	assert.Equal(t, "2024-01-29", i[0].Date.Format(calendar.DateLayout))
	assert.Equal(t, 1, i[0].ClusterID)
}

func TestRasterUnknownCharactersAreBlank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	for _, text := range []string{"\u00e9", "\uff21", "\u00c4", "e\u0301"} {
		r, err := New(text, 2024, Column(0))
		require.NoError(t, err)
		assert.Empty(t, r.Collect(), "%q", text)
		assert.Equal(t, 1, r.Stats().Fallbacks, "%q", text)
	}
}

func TestRasterDropsDatesOfPreviousYear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	// week-column 0 of 2022 covers Dec 26–31, 2021
	r, err := New("I", 2022, Column(0))
	require.NoError(t, err)
	events := r.Collect()
	assert.Len(t, events, 7)
	assert.Equal(t, Complete, r.Status())
	assert.Equal(t, 2, r.Stats().OutOfYear)
	for _, ev := range events {
		assert.Equal(t, 2022, ev.Date.Year())
		assert.NotEqual(t, 0, ev.Coordinate.Week)
	}
}

func TestRasterClipsAtLastColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	r, err := New("I", 2024, Column(52))
	require.NoError(t, err)
	events := r.Collect()
	assert.Equal(t, []string{"2024-12-30"}, dates(events))
	assert.Equal(t, Truncated, r.Status())
	stats := r.Stats()
	assert.Equal(t, 7, stats.Clipped)
	assert.Equal(t, 1, stats.OutOfYear, "Friday of last column is in 2025")
	assert.Equal(t, 0, stats.Skipped)
}

func TestRasterStopsAtOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	r, err := New("IIII", 2024, Column(49), Spacing(1))
	require.NoError(t, err)
	events := r.Collect()
	assert.Len(t, events, 9)
	assert.Equal(t, Truncated, r.Status())
	assert.Equal(t, 3, r.Stats().Skipped)
	assert.Equal(t, 1, r.Stats().Glyphs)
	for _, ev := range events {
		assert.Less(t, ev.Coordinate.Week, calendar.Weeks)
	}
	assert.False(t, r.Next(), "exhausted raster stays exhausted")
}

func TestRasterCursorBeyondGridAfterLastCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	events, status, err := Rasterize("I", 2024, Column(49), Spacing(1))
	require.NoError(t, err)
	assert.Len(t, events, 9)
	assert.Equal(t, Complete, status)
}

func TestRasterFallbackAdvancesCursor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	r, err := New("😀I", 2024, Column(1), Spacing(1))
	require.NoError(t, err)
	events := r.Collect()
	require.Len(t, events, 9)
	assert.Equal(t, "2024-02-05", events[0].Date.Format(calendar.DateLayout))
	assert.Equal(t, calendar.Coordinate{Week: 5, Day: 1}, events[0].Coordinate)
	assert.Equal(t, 1, events[0].ClusterID)
	assert.Equal(t, 1, r.Stats().Fallbacks)
	assert.Equal(t, 2, r.Stats().Glyphs)
	//
	events, status, err := Rasterize("😀", 2024)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, Complete, status)
}

func TestRasterIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	first, _, err := Rasterize("Hello, World", 2023, Column(2), Spacing(0))
	require.NoError(t, err)
	second, _, err := Rasterize("Hello, World", 2023, Column(2), Spacing(0))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestRasterEventOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	events, _, err := Rasterize("HELLO", 2024, Column(1))
	require.NoError(t, err)
	require.NotEmpty(t, events)
	for i := 1; i < len(events); i++ {
		a, b := events[i-1], events[i]
		ordered := a.ClusterID < b.ClusterID ||
			(a.ClusterID == b.ClusterID && a.Coordinate.Day < b.Coordinate.Day) ||
			(a.ClusterID == b.ClusterID && a.Coordinate.Day == b.Coordinate.Day &&
				a.Coordinate.Week < b.Coordinate.Week)
		assert.True(t, ordered, "%s before %s", a, b)
	}
}

func TestRasterStaysInsideGridAndYear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	for _, year := range []int{1971, 2000, 2022, 2023, 2024, 2099} {
		for _, col := range []int{0, 1, 30, 52} {
			events, _, err := Rasterize("MQW 0?!", year, Column(col), Spacing(1))
			require.NoError(t, err)
			for _, ev := range events {
				assert.Equal(t, year, ev.Date.Year())
				assert.True(t, ev.Coordinate.InGrid())
				assert.GreaterOrEqual(t, ev.Coordinate.Day, calendar.FirstRow)
				assert.Less(t, ev.Coordinate.Day, calendar.FirstRow+font.Height)
				assert.Equal(t, time.Weekday(ev.Coordinate.Day), ev.Date.Weekday())
			}
		}
	}
}

func TestRasterEmptyTextAppends(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	a, _, err := Rasterize("A", 2024)
	require.NoError(t, err)
	b, _, err := Rasterize("A"+"", 2024)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	empty, status, err := Rasterize("", 2024)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, Complete, status)
}

func TestRasterRejectsInvalidLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	for _, tc := range []struct {
		year int
		opts []Option
	}{
		{1970, nil},
		{2100, nil},
		{2024, []Option{Column(53)}},
		{2024, []Option{Column(-1)}},
		{2024, []Option{Intensity(0)}},
		{2024, []Option{Spacing(-1)}},
	} {
		_, err := New("A", tc.year, tc.opts...)
		assert.True(t, errors.Is(err, parameters.ErrInvalidParameter), "year %d", tc.year)
	}
	_, err := New("A", 2024, WithFont(nil))
	assert.Error(t, err)
}

func TestRasterFromParams(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	p := parameters.Params{Text: "I", Year: 2024, Column: 1, Intensity: 4, Spacing: 1}
	r, err := FromParams(p)
	require.NoError(t, err)
	assert.Equal(t, "I", r.Text())
	assert.Equal(t, 2024, r.Year())
	assert.Equal(t, Running, r.Status())
	require.True(t, r.Next())
	assert.Equal(t, 4, r.Event().Count)
}

func TestRasterWithCustomFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.raster")
	defer teardown()
	//
	dot := font.MustNew("dot", map[rune][]string{
		'.': {" ", " ", "X", " ", " "},
	})
	events, status, err := Rasterize("..", 2024, WithFont(dot), Column(0), Spacing(0))
	require.NoError(t, err)
	assert.Equal(t, Complete, status)
	assert.Equal(t, []string{"2024-01-03", "2024-01-10"}, dates(events))
}
