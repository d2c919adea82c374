/*
Command graffiti writes text into the contribution calendar of a git
repository.

Every lit pixel of the text becomes one or more empty commits, back-dated to
the day the pixel stands for. After pushing the repository to a hosting site,
the site's activity graph for the chosen year shows the text.

Usage:

    graffiti [flags]

    -repo       path of the git repository, created if missing
    -text       text to write
    -year       year of the calendar (1971…2099)
    -column     week-column to start at (0…52)
    -intensity  commits per pixel
    -spacing    blank columns between characters
    -verbose    trace details of painting (y/n)
    -dry-run    only show a preview, do not touch the repository
    -yes        do not ask for confirmation
    -trace      trace level [Debug|Info|Error]

Defaults for all parameters may be put into a NestedText configuration file
"graffiti/config.nt" in the user's configuration directory. Command line flags
override configured values. Missing text and repository are asked for
interactively.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/npillmayer/graffiti/core"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'graffiti.cli'
func tracer() tracing.Trace {
	return tracing.Select("graffiti.cli")
}

// tracerKeys are all tracers of graffiti's packages.
var tracerKeys = []string{
	"graffiti.calendar",
	"graffiti.font",
	"graffiti.locate",
	"graffiti.glyphs",
	"graffiti.raster",
	"graffiti.paint",
	"graffiti.history",
	"graffiti.cli",
}

// cliFlags holds command line flags which are not painting parameters.
type cliFlags struct {
	dryRun bool
	yes    bool
	trace  string
}

func main() {
	initDisplay()

	// command line flags
	flags := cliFlags{}
	for _, def := range paramFlags {
		flag.String(def.name, "", def.usage)
	}
	flag.BoolVar(&flags.dryRun, "dry-run", false, "Only show a preview, do not touch the repository")
	flag.BoolVar(&flags.yes, "yes", false, "Do not ask for confirmation")
	flag.StringVar(&flags.trace, "trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()

	// set up logging
	if err := setupTracing(flags.trace); err != nil {
		err = core.WrapError(err, core.EINTERNAL, "cannot configure tracing")
		core.UserError(os.Stderr, err)
		os.Exit(core.ExitCode(err))
	}
	tracer().Infof("Trace level is %s", flags.trace)
	pterm.Info.Println("Welcome to graffiti") // colored welcome message

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := run(ctx, flags)
	switch core.Code(err) {
	case core.NOERROR:
	case core.ECANCELLED:
		pterm.Warning.Println(core.UserMessage(err))
	default:
		tracer().Errorf(err.Error())
		pterm.Error.Println(core.UserMessage(err))
	}
	stop()
	os.Exit(core.ExitCode(err))
}

// setupTracing routes all tracers to the Go logger, at the given level.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range tracerKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// raiseTracing switches every tracer to Debug level.
func raiseTracing() {
	for _, key := range tracerKeys {
		tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
