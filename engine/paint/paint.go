/*
Package paint drives a contribution history backend with the pixel events of
a raster.

Events are fed to the backend one at a time, in raster order. A failure to
create the entries for one date is traced, recorded in the report, and
painting continues with the next date. Cancelling the context stops painting
after the current date.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package paint

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/npillmayer/graffiti/backend/history"
	"github.com/npillmayer/graffiti/core"
	"github.com/npillmayer/graffiti/core/calendar"
	"github.com/npillmayer/graffiti/engine/raster"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'graffiti.paint'.
func tracer() tracing.Trace {
	return tracing.Select("graffiti.paint")
}

// Step is handed to a progress callback after each pixel event.
type Step struct {
	N       int               // 1-based number of the event
	Event   raster.PixelEvent // the event just painted
	Created int               // entries created for the event
	Err     error             // non-nil if the backend failed
}

// Failure records a date for which not all entries could be created.
type Failure struct {
	Date      time.Time
	Requested int
	Created   int
	Err       error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s (%d/%d): %v", f.Date.Format(calendar.DateLayout), f.Created, f.Requested, f.Err)
}

// Report summarizes a painting run.
type Report struct {
	Dots    int           // pixel events handed to the backend
	Painted int           // pixel events with all entries created
	Entries int           // total entries created
	Failed  []Failure     // pixel events with failures
	Status  raster.Status // layout status of the raster
	Stats   raster.Stats  // layout statistics of the raster
}

// Painter feeds pixel events to a backend.
type Painter struct {
	Backend  history.Backend
	Progress func(Step) // optional, called after each event
}

// Paint consumes r and creates history entries for all of its events.
//
// The returned error is non-nil only if painting could not run to the end,
// i.e. if ctx has been cancelled. Per-date failures are reported in the
// report's Failed list.
func (p *Painter) Paint(ctx context.Context, r *raster.Raster) (Report, error) {
	var report Report
	if p.Backend == nil {
		return report, core.Error(core.EINTERNAL, "painter has no backend")
	}
	if r == nil {
		return report, core.Error(core.EINTERNAL, "nothing to paint")
	}
	for r.Next() {
		if err := ctx.Err(); err != nil {
			return p.cancelled(report, r, err)
		}
		ev := r.Event()
		report.Dots++
		tracer().Debugf("painting %s", ev)
		err := p.Backend.CreateEntries(ctx, ev.Date, ev.Count)
		created := history.Created(err, ev.Count)
		report.Entries += created
		if err == nil {
			report.Painted++
		} else if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return p.cancelled(report, r, err)
		} else {
			tracer().Errorf("painting %s failed: %v", ev.Date.Format(calendar.DateLayout), err)
			report.Failed = append(report.Failed, Failure{
				Date:      ev.Date,
				Requested: ev.Count,
				Created:   created,
				Err:       err,
			})
		}
		if p.Progress != nil {
			p.Progress(Step{N: report.Dots, Event: ev, Created: created, Err: err})
		}
	}
	report.Status, report.Stats = r.Status(), r.Stats()
	tracer().Infof("painted %d of %d dots, %d entries, raster %s",
		report.Painted, report.Dots, report.Entries, report.Status)
	return report, nil
}

func (p *Painter) cancelled(report Report, r *raster.Raster, err error) (Report, error) {
	report.Status, report.Stats = r.Status(), r.Stats()
	tracer().Infof("painting cancelled after %d dots", report.Dots)
	return report, core.WrapError(err, core.ECANCELLED, "painting cancelled after %d dots", report.Dots)
}
