package calendar

import (
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorIsSundayBeforeNewYear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.calendar")
	defer teardown()
	//
	for year := 1971; year <= 2099; year++ {
		anchor := Anchor(year)
		jan1 := Date(year, time.January, 1)
		if anchor.Weekday() != time.Sunday {
			t.Fatalf("anchor of %d is a %s", year, anchor.Weekday())
		}
		diff := int(jan1.Sub(anchor).Hours() / 24)
		if diff < 0 || diff > 6 {
			t.Fatalf("anchor of %d is %d days before Jan 1", year, diff)
		}
	}
}

func TestAnchorExamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.calendar")
	defer teardown()
	//
	assert.Equal(t, Date(2023, time.December, 31), Anchor(2024)) // Jan 1, 2024 is a Monday
	assert.Equal(t, Date(2023, time.January, 1), Anchor(2023))   // Jan 1, 2023 is a Sunday
	assert.Equal(t, Date(2021, time.December, 26), Anchor(2022)) // Jan 1, 2022 is a Saturday
}

func TestDateAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.calendar")
	defer teardown()
	//
	anchor := Anchor(2024)
	assert.Equal(t, Date(2024, time.January, 1), DateAt(anchor, 0, 1))
	assert.Equal(t, Date(2024, time.January, 8), DateAt(anchor, 1, 1))
	assert.Equal(t, Date(2024, time.February, 29), DateAt(anchor, 8, 4), "leap day")
	assert.Equal(t, Date(2024, time.December, 31), DateAt(anchor, 52, 2))
	assert.Equal(t, Date(2025, time.January, 1), DateAt(anchor, 52, 3))
}

func TestDateAtIgnoresTimeOfDay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.calendar")
	defer teardown()
	//
	loc := time.FixedZone("UTC+5", 5*60*60)
	anchor := time.Date(2023, time.December, 31, 23, 30, 0, 0, loc)
	assert.Equal(t, Date(2024, time.January, 2), DateAt(anchor, 0, 2))
}

func TestCoordinateRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.calendar")
	defer teardown()
	//
	anchor := Anchor(2020)
	for w := 0; w < Weeks; w++ {
		for d := 0; d < Days; d++ {
			c, ok := CoordinateOf(anchor, DateAt(anchor, w, d))
			require.True(t, ok)
			require.Equal(t, Coordinate{w, d}, c)
		}
	}
	_, ok := CoordinateOf(anchor, anchor.AddDate(0, 0, -1))
	assert.False(t, ok, "day before anchor is outside grid")
	_, ok = CoordinateOf(anchor, anchor.AddDate(0, 0, Weeks*Days))
	assert.False(t, ok, "day after last cell is outside grid")
}

func TestGridCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.calendar")
	defer teardown()
	//
	g := NewGrid(2024)
	assert.True(t, g.Add(Date(2024, time.January, 1), 2))
	assert.True(t, g.Add(Date(2024, time.January, 1), 1))
	assert.False(t, g.Add(Date(2023, time.December, 31), 1), "previous year is not shown")
	assert.False(t, g.Add(Date(2025, time.January, 1), 1), "next year is not shown")
	assert.Equal(t, 3, g.Count(0, 1))
	assert.Equal(t, 0, g.Count(0, 0))
	assert.Equal(t, 0, g.Count(53, 0))
	assert.Equal(t, 3, g.Max())
	assert.Equal(t, 3, g.Total())
	assert.Equal(t, 3, g.Row(1)[0])
	assert.False(t, g.InYear(0, 0))
	assert.True(t, g.InYear(0, 1))
	assert.False(t, g.InYear(52, 3))
}
