package history

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/npillmayer/graffiti/core/calendar"
)

// Recorder is an in-memory backend. It counts entries on a calendar grid
// and keeps a log of all requests. Failures may be scripted per date.
//
// Entries for dates outside the grid's year are accepted, but not counted
// on the grid.
type Recorder struct {
	mx       sync.Mutex
	grid     *calendar.Grid
	requests []Request
	failOn   map[string]int
}

// Request is a call to CreateEntries, as logged by a Recorder.
type Request struct {
	Date  time.Time
	Count int
}

// NewRecorder creates a recorder for year.
func NewRecorder(year int) *Recorder {
	return &Recorder{
		grid:   calendar.NewGrid(year),
		failOn: make(map[string]int),
	}
}

// FailOn lets requests for date fail after created entries.
func (rec *Recorder) FailOn(date time.Time, created int) *Recorder {
	rec.mx.Lock()
	defer rec.mx.Unlock()
	rec.failOn[date.Format(calendar.DateLayout)] = created
	return rec
}

// CreateEntries is part of interface Backend.
func (rec *Recorder) CreateEntries(ctx context.Context, date time.Time, count int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec.mx.Lock()
	defer rec.mx.Unlock()
	date = calendar.Truncate(date)
	rec.requests = append(rec.requests, Request{Date: date, Count: count})
	if created, ok := rec.failOn[date.Format(calendar.DateLayout)]; ok && created < count {
		rec.grid.Add(date, created)
		tracer().Errorf("recorder: scripted failure for %s", date.Format(calendar.DateLayout))
		return &EntryError{
			Date:      date,
			Requested: count,
			Created:   created,
			Err:       fmt.Errorf("%w: scripted failure", ErrBackend),
		}
	}
	rec.grid.Add(date, count)
	return nil
}

// Grid returns the grid of counted entries.
func (rec *Recorder) Grid() *calendar.Grid {
	return rec.grid
}

// Requests returns a copy of all requests received so far.
func (rec *Recorder) Requests() []Request {
	rec.mx.Lock()
	defer rec.mx.Unlock()
	r := make([]Request, len(rec.requests))
	copy(r, rec.requests)
	return r
}

var _ Backend = (*Recorder)(nil)
