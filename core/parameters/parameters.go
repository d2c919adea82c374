/*
Package parameters holds the configuration of a painting run.

Parameters are collected into a Params record, which is validated as a whole.
How the values are gathered (command line flags, a configuration file,
interactive prompts) is up to clients; FromConfiguration reads them from any
schuko.Configuration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package parameters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/graffiti/core"
	"github.com/npillmayer/graffiti/core/calendar"
	"github.com/npillmayer/schuko"
)

// ErrInvalidParameter is wrapped by every validation error.
var ErrInvalidParameter = errors.New("invalid parameter")

// Ranges for parameter values.
const (
	MinYear   = 1971
	MaxYear   = 2099
	MinColumn = 0
	MaxColumn = calendar.Weeks - 1
)

// Default values for parameters not given by the user.
const (
	DefaultColumn    = 1
	DefaultIntensity = 1
	DefaultSpacing   = 1
)

// Parameter is a key for a configuration parameter.
type Parameter int

// Parameter keys. P_STOPPER is not a parameter.
const (
	none Parameter = iota
	P_REPOSITORY
	P_TEXT
	P_YEAR
	P_COLUMN
	P_INTENSITY
	P_SPACING
	P_VERBOSE
	P_STOPPER
)

var parameterKeys = [P_STOPPER]string{
	"", "repository", "text", "year", "column", "intensity", "spacing", "verbose",
}

// Key returns the configuration key for p, e.g. "year".
func (p Parameter) Key() string {
	if p <= none || p >= P_STOPPER {
		return ""
	}
	return parameterKeys[p]
}

func (p Parameter) String() string {
	return p.Key()
}

// Params is the configuration of a painting run.
type Params struct {
	Repository string // path of the target repository
	Text       string // text to paint
	Year       int    // target year
	Column     int    // week-column of the first character
	Intensity  int    // history entries per pixel
	Spacing    int    // blank columns between characters
	Verbose    bool   // detailed tracing
}

// Defaults returns parameters with default values, using the year of now
// as target year.
func Defaults(now time.Time) Params {
	return Params{
		Year:      now.Year(),
		Column:    DefaultColumn,
		Intensity: DefaultIntensity,
		Spacing:   DefaultSpacing,
	}
}

// ValidateLayout checks the parameters which drive rasterization: year,
// column, intensity and spacing.
func (p Params) ValidateLayout() error {
	if p.Year < MinYear || p.Year > MaxYear {
		return invalid(P_YEAR, "year must be between %d and %d, is %d", MinYear, MaxYear, p.Year)
	}
	if p.Column < MinColumn || p.Column > MaxColumn {
		return invalid(P_COLUMN, "column must be between %d and %d, is %d", MinColumn, MaxColumn, p.Column)
	}
	if p.Intensity < 1 {
		return invalid(P_INTENSITY, "intensity must be at least 1, is %d", p.Intensity)
	}
	if p.Spacing < 0 {
		return invalid(P_SPACING, "spacing cannot be negative, is %d", p.Spacing)
	}
	return nil
}

// Validate checks all parameters. In addition to ValidateLayout, a painting
// run needs a repository and some non-blank text.
func (p Params) Validate() error {
	if strings.TrimSpace(p.Repository) == "" {
		return invalid(P_REPOSITORY, "repository path cannot be empty")
	}
	if strings.TrimSpace(p.Text) == "" {
		return invalid(P_TEXT, "text cannot be empty")
	}
	return p.ValidateLayout()
}

// Set sets parameter key from a string value, as given on a command line or
// typed at a prompt. It does not check ranges; call Validate for that.
func (p *Params) Set(key Parameter, value string) error {
	var err error
	switch key {
	case P_REPOSITORY:
		p.Repository = strings.TrimSpace(value)
	case P_TEXT:
		p.Text = value
	case P_YEAR:
		p.Year, err = parseInt(key, value)
	case P_COLUMN:
		p.Column, err = parseInt(key, value)
	case P_INTENSITY:
		p.Intensity, err = parseInt(key, value)
	case P_SPACING:
		p.Spacing, err = parseInt(key, value)
	case P_VERBOSE:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "y", "yes", "true", "1", "on":
			p.Verbose = true
		case "n", "no", "false", "0", "off", "":
			p.Verbose = false
		default:
			err = invalid(key, "please answer 'y' or 'n', not %q", value)
		}
	default:
		err = invalid(key, "unknown parameter %d", int(key))
	}
	return err
}

// FromConfiguration reads parameters from conf. Keys not set in conf get
// default values (see Defaults). The result is validated with ValidateLayout;
// repository and text may still be empty.
func FromConfiguration(conf schuko.Configuration, now time.Time) (Params, error) {
	p := Defaults(now)
	if conf == nil {
		return p, nil
	}
	if conf.IsSet(P_REPOSITORY.Key()) {
		p.Repository = strings.TrimSpace(conf.GetString(P_REPOSITORY.Key()))
	}
	if conf.IsSet(P_TEXT.Key()) {
		p.Text = conf.GetString(P_TEXT.Key())
	}
	if conf.IsSet(P_YEAR.Key()) {
		p.Year = conf.GetInt(P_YEAR.Key())
	}
	if conf.IsSet(P_COLUMN.Key()) {
		p.Column = conf.GetInt(P_COLUMN.Key())
	}
	if conf.IsSet(P_INTENSITY.Key()) {
		p.Intensity = conf.GetInt(P_INTENSITY.Key())
	}
	if conf.IsSet(P_SPACING.Key()) {
		p.Spacing = conf.GetInt(P_SPACING.Key())
	}
	if conf.IsSet(P_VERBOSE.Key()) {
		p.Verbose = conf.GetBool(P_VERBOSE.Key())
	}
	return p, p.ValidateLayout()
}

func (p Params) String() string {
	return fmt.Sprintf("{repo=%q text=%q year=%d column=%d intensity=%d spacing=%d verbose=%v}",
		p.Repository, p.Text, p.Year, p.Column, p.Intensity, p.Spacing, p.Verbose)
}

func parseInt(key Parameter, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, invalid(key, "please enter a number for %s, not %q", key, value)
	}
	return n, nil
}

func invalid(key Parameter, format string, v ...interface{}) error {
	return core.WrapError(fmt.Errorf("%w: %s", ErrInvalidParameter, key), core.EINVALID, format, v...)
}
