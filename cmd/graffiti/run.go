package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/npillmayer/graffiti/backend/history"
	"github.com/npillmayer/graffiti/backend/history/gitcli"
	"github.com/npillmayer/graffiti/backend/preview"
	"github.com/npillmayer/graffiti/core"
	"github.com/npillmayer/graffiti/core/calendar"
	"github.com/npillmayer/graffiti/core/parameters"
	"github.com/npillmayer/graffiti/core/percent"
	"github.com/npillmayer/graffiti/engine/glyphing"
	"github.com/npillmayer/graffiti/engine/glyphing/pixel"
	"github.com/npillmayer/graffiti/engine/paint"
	"github.com/npillmayer/graffiti/engine/raster"
	"github.com/pterm/pterm"
)

func run(ctx context.Context, flags cliFlags) error {
	p, prompt, err := gatherParams(flag.CommandLine, newPrompter)
	defer prompt.close()
	if err != nil {
		return err
	}
	if p.Verbose {
		raiseTracing()
	}
	tracer().Infof("parameters: %s", p)
	//
	pl, err := planPainting(ctx, p)
	if err != nil {
		return err
	}
	showPlan(p, pl)
	if flags.dryRun {
		pterm.Info.Println("Dry run, repository left untouched")
		return nil
	}
	if pl.Dots == 0 {
		pterm.Warning.Println("Nothing to paint")
		return nil
	}
	if !flags.yes {
		if prompt == nil {
			if prompt, err = newPrompter(); err != nil {
				return core.WrapError(err, core.EINVALID, "cannot ask for confirmation, use -yes")
			}
			defer prompt.close()
		}
		ok, err := prompt.confirm("Create commits?")
		if err != nil {
			return err
		}
		if !ok {
			return core.Error(core.ECANCELLED, "cancelled by user")
		}
	}
	//
	repo, err := gitcli.Open(p.Repository)
	if err != nil {
		return err
	}
	pterm.DefaultSection.Println("Painting")
	if err = repo.Bootstrap(ctx, p.Year); err != nil {
		return err
	}
	report, err := paintRepo(ctx, p, repo, pl.Dots)
	showReport(report, repo.Path)
	if err != nil {
		return err
	}
	if report.Dots > 0 && report.Painted == 0 {
		return core.Error(core.EBACKEND, "no commits could be created")
	}
	return nil
}

// planPainting paints into memory, giving totals and a preview grid.
func planPainting(ctx context.Context, p parameters.Params) (plan, error) {
	r, err := raster.FromParams(p)
	if err != nil {
		return plan{}, err
	}
	rec := history.NewRecorder(p.Year)
	report, err := (&paint.Painter{Backend: rec}).Paint(ctx, r)
	if err != nil {
		return plan{}, err
	}
	return plan{Report: report, recorder: rec}, nil
}

type plan struct {
	paint.Report
	recorder *history.Recorder
}

func showPlan(p parameters.Params, pl plan) {
	pterm.DefaultSection.Println("Summary")
	pterm.Printfln("Repository: %s", p.Repository)
	pterm.Printfln("Text:       %q", p.Text)
	pterm.Printfln("Year:       %d, starting at week-column %d, spacing %d", p.Year, p.Column, p.Spacing)
	pterm.Printfln("Commits:    %d per pixel, %d pixels, %d commits total", p.Intensity, pl.Dots, pl.Entries)
	seq := glyphing.Shape(pixel.Shaper(nil), strings.NewReader(p.Text))
	for _, fb := range seq.Fallbacks() {
		pterm.Warning.Printfln("No glyph for %q, leaving a blank", fb.Cluster)
	}
	if pl.Status == raster.Truncated {
		pterm.Warning.Printfln("Text does not fit into %d: %d characters skipped, %d pixels cut off",
			p.Year, pl.Stats.Skipped, pl.Stats.Clipped)
	}
	if pl.Stats.OutOfYear > 0 {
		pterm.Info.Printfln("%d pixels fall outside of %d and are left out", pl.Stats.OutOfYear, p.Year)
	}
	pterm.Println()
	if err := preview.Render(os.Stdout, pl.recorder.Grid()); err != nil {
		tracer().Errorf("cannot render preview: %v", err)
	}
	pterm.Println()
}

// paintRepo creates the commits, showing a progress bar.
func paintRepo(ctx context.Context, p parameters.Params, repo *gitcli.Repo, total int) (paint.Report, error) {
	r, err := raster.FromParams(p)
	if err != nil {
		return paint.Report{}, err
	}
	bar, err := pterm.DefaultProgressbar.WithTotal(total).WithTitle("Creating commits").Start()
	if err != nil {
		return paint.Report{}, core.WrapError(err, core.EINTERNAL, "cannot display progress")
	}
	painter := &paint.Painter{
		Backend: repo,
		Progress: func(s paint.Step) {
			if s.Err != nil {
				pterm.Warning.Printfln("%s: %d of %d commits created",
					s.Event.Date.Format(calendar.DateLayout), s.Created, s.Event.Count)
			}
			bar.Increment()
		},
	}
	report, err := painter.Paint(ctx, r)
	_, _ = bar.Stop()
	return report, err
}

func showReport(report paint.Report, path string) {
	pterm.DefaultSection.Println("Done")
	pterm.Printfln("%d commits created for %d of %d pixels (%s)",
		report.Entries, report.Painted, report.Dots, percent.Of(report.Painted, report.Dots))
	if len(report.Failed) > 0 {
		pterm.Warning.Printfln("%d dates failed:", len(report.Failed))
		for _, f := range report.Failed {
			pterm.Printfln("  %s", f)
		}
	}
	if report.Painted > 0 {
		pterm.Success.Println("Push the repository to see the result, e.g.:")
		pterm.Printfln("  cd %s", path)
		pterm.Printfln("  git remote add origin <URL of an empty repository>")
		pterm.Printfln("  git push -u origin HEAD")
	}
}
