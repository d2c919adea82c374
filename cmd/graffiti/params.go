package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/graffiti/core"
	"github.com/npillmayer/graffiti/core/parameters"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/pterm/pterm"
)

type paramFlag struct {
	name  string
	param parameters.Parameter
	usage string
}

// paramFlags are the command line flags setting painting parameters.
var paramFlags = []paramFlag{
	{"repo", parameters.P_REPOSITORY, "Path of the git repository, created if missing"},
	{"text", parameters.P_TEXT, "Text to write"},
	{"year", parameters.P_YEAR, "Year of the calendar [1971…2099], default: current year"},
	{"column", parameters.P_COLUMN, "Week-column to start at [0…52], default: 1"},
	{"intensity", parameters.P_INTENSITY, "Commits per pixel, default: 1"},
	{"spacing", parameters.P_SPACING, "Blank columns between characters, default: 1"},
	{"verbose", parameters.P_VERBOSE, "Trace details of painting [y|n]"},
}

// loadConfiguration reads the user's configuration file, if any.
func loadConfiguration() schuko.Configuration {
	conf := koanfadapter.New(nil, "graffiti", []string{"nt"})
	conf.InitDefaults()
	return conf
}

// applyFlags overrides p with all flags given on the command line.
func applyFlags(p *parameters.Params, fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		for _, def := range paramFlags {
			if def.name == f.Name && err == nil {
				tracer().Debugf("flag -%s=%q", f.Name, f.Value.String())
				err = p.Set(def.param, f.Value.String())
			}
		}
	})
	return err
}

// prompter asks the user for input on a terminal.
type prompter struct {
	rl *readline.Instance
}

func newPrompter() (*prompter, error) {
	if !readline.IsTerminal(int(os.Stdin.Fd())) {
		return nil, core.Error(core.EINVALID, "cannot ask for missing parameters: not a terminal")
	}
	rl, err := readline.New("> ")
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot read from terminal")
	}
	return &prompter{rl: rl}, nil
}

func (pr *prompter) close() {
	if pr != nil {
		pr.rl.Close()
	}
}

// ask prompts with question, showing def as default. An empty answer selects
// the default.
func (pr *prompter) ask(question, def string) (string, error) {
	if def != "" {
		pr.rl.SetPrompt(fmt.Sprintf("%s [%s]: ", question, def))
	} else {
		pr.rl.SetPrompt(question + ": ")
	}
	line, err := pr.rl.Readline()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return "", core.WrapError(err, core.ECANCELLED, "cancelled by user")
		}
		return "", core.WrapError(err, core.EINTERNAL, "cannot read from terminal")
	}
	if line = strings.TrimSpace(line); line == "" {
		return def, nil
	}
	return line, nil
}

// askParam asks for a parameter until the answer is valid.
func (pr *prompter) askParam(p *parameters.Params, key parameters.Parameter, question, def string) error {
	for {
		answer, err := pr.ask(question, def)
		if err != nil {
			return err
		}
		q := *p
		if err = q.Set(key, answer); err == nil {
			err = check(q, key)
		}
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		*p = q
		return nil
	}
}

// check validates the part of p which key belongs to.
func check(p parameters.Params, key parameters.Parameter) error {
	switch key {
	case parameters.P_REPOSITORY, parameters.P_TEXT:
		return p.Validate()
	}
	return p.ValidateLayout()
}

// confirm asks a yes/no question, defaulting to no.
func (pr *prompter) confirm(question string) (bool, error) {
	for {
		answer, err := pr.ask(question+" (y/n)", "n")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		pterm.Error.Println("please answer 'y' or 'n'")
	}
}

// gatherParams assembles the painting parameters from configuration file,
// command line flags and, for missing values, interactive input.
func gatherParams(fs *flag.FlagSet, pr func() (*prompter, error)) (parameters.Params, *prompter, error) {
	p, err := parameters.FromConfiguration(loadConfiguration(), time.Now())
	if err != nil && !errors.Is(err, parameters.ErrInvalidParameter) {
		return p, nil, err
	}
	if err = applyFlags(&p, fs); err != nil {
		return p, nil, err
	}
	var prompt *prompter
	if strings.TrimSpace(p.Repository) == "" || strings.TrimSpace(p.Text) == "" {
		if prompt, err = pr(); err != nil {
			return p, nil, err
		}
		pterm.DefaultSection.Println("Parameters")
		if strings.TrimSpace(p.Repository) == "" {
			if err = prompt.askParam(&p, parameters.P_REPOSITORY, "Path of the git repository", ""); err != nil {
				return p, prompt, err
			}
		}
		if strings.TrimSpace(p.Text) == "" {
			if err = prompt.askParam(&p, parameters.P_TEXT, "Text to write", ""); err != nil {
				return p, prompt, err
			}
			year := strconv.Itoa(p.Year)
			if err = prompt.askParam(&p, parameters.P_YEAR, "Year", year); err != nil {
				return p, prompt, err
			}
		}
	}
	return p, prompt, p.Validate()
}
