package paint

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/graffiti/backend/history"
	"github.com/npillmayer/graffiti/core"
	"github.com/npillmayer/graffiti/core/calendar"
	"github.com/npillmayer/graffiti/engine/raster"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaintAllDots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.paint")
	defer teardown()
	//
	r, err := raster.New("HI", 2024, raster.Column(1), raster.Intensity(3))
	require.NoError(t, err)
	rec := history.NewRecorder(2024)
	steps := 0
	p := &Painter{Backend: rec, Progress: func(s Step) {
		steps++
		assert.Equal(t, steps, s.N)
		assert.NoError(t, s.Err)
	}}
	report, err := p.Paint(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, 11+9, report.Dots)
	assert.Equal(t, report.Dots, report.Painted)
	assert.Equal(t, 3*report.Dots, report.Entries)
	assert.Equal(t, report.Dots, steps)
	assert.Empty(t, report.Failed)
	assert.Equal(t, raster.Complete, report.Status)
	assert.Equal(t, report.Entries, rec.Grid().Total())
	assert.Equal(t, 3, rec.Grid().Max())
}

func TestPaintContinuesAfterFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.paint")
	defer teardown()
	//
	r, err := raster.New("I", 2024, raster.Column(1), raster.Intensity(2))
	require.NoError(t, err)
	bad := calendar.Date(2024, time.January, 15) // second pixel of the top bar
	rec := history.NewRecorder(2024).FailOn(bad, 1)
	report, err := (&Painter{Backend: rec}).Paint(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, 9, report.Dots)
	assert.Equal(t, 8, report.Painted)
	assert.Equal(t, 17, report.Entries)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, bad, report.Failed[0].Date)
	assert.Equal(t, 1, report.Failed[0].Created)
	assert.True(t, errors.Is(report.Failed[0].Err, history.ErrBackend))
	assert.Len(t, rec.Requests(), 9)
}

func TestPaintStopsOnCancel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.paint")
	defer teardown()
	//
	r, err := raster.New("HELLO", 2024)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := history.NewRecorder(2024)
	p := &Painter{Backend: rec, Progress: func(s Step) {
		if s.N == 3 {
			cancel()
		}
	}}
	report, err := p.Paint(ctx, r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, core.ECANCELLED, core.Code(err))
	assert.Equal(t, 3, report.Dots)
	assert.Equal(t, raster.Running, report.Status)
	assert.Len(t, rec.Requests(), 3)
}

func TestPaintTruncatedRaster(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.paint")
	defer teardown()
	//
	r, err := raster.New("IIII", 2024, raster.Column(49))
	require.NoError(t, err)
	report, err := (&Painter{Backend: history.NewRecorder(2024)}).Paint(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, raster.Truncated, report.Status)
	assert.Equal(t, 3, report.Stats.Skipped)
}

func TestPainterNeedsBackend(t *testing.T) {
	r, err := raster.New("I", 2024)
	require.NoError(t, err)
	_, err = (&Painter{}).Paint(context.Background(), r)
	assert.Equal(t, core.EINTERNAL, core.Code(err))
}
