/*
Package gitcli implements a contribution history as a git repository.

Entries are empty commits with author and committer date set to a moment of
the requested day. Git is run as an external process; a git executable has
to be present on the PATH.

The repository needs at least one commit before dated commits may be added
and pushed. Bootstrap creates the directory, initializes the repository and
adds a README with an initial commit, dated a few days before the target year
starts, if necessary.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package gitcli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/npillmayer/graffiti/backend/history"
	"github.com/npillmayer/graffiti/core"
	"github.com/npillmayer/graffiti/core/calendar"
	"github.com/npillmayer/graffiti/core/locate"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'graffiti.history'.
func tracer() tracing.Trace {
	return tracing.Select("graffiti.history")
}

// DateFormat is the format of commit dates handed to git.
const DateFormat = "2006-01-02T15:04:05-0700"

// DefaultMessage prefixes the commit message of every entry.
const DefaultMessage = "Art commit"

// ErrNoGit is returned by Open if no git executable can be found.
var ErrNoGit = errors.New("git executable not found")

// Runner runs git commands in a directory. env holds additional environment
// variables in "KEY=value" format. Run returns the combined output.
type Runner interface {
	Run(ctx context.Context, dir string, env []string, args ...string) (string, error)
}

// ExecRunner runs git as an external process.
type ExecRunner struct {
	Git string // path of the git executable
}

// Run is part of interface Runner.
func (x ExecRunner) Run(ctx context.Context, dir string, env []string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, x.Git, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))
	tracer().Debugf("git %s → %v", strings.Join(args, " "), err)
	if err != nil {
		if ctx.Err() != nil {
			return output, ctx.Err()
		}
		if output != "" {
			return output, fmt.Errorf("git %s: %w: %s", args[0], err, output)
		}
		return output, fmt.Errorf("git %s: %w", args[0], err)
	}
	return output, nil
}

// Repo is a git repository used as a contribution history.
type Repo struct {
	Path    string           // directory of the working tree
	Runner  Runner           // runs git commands
	Stamper *history.Stamper // spreads commits over a day
	Message string           // commit message prefix
}

// Open prepares a repository located at path, which may start with "~".
// The directory is not required to exist yet, see Bootstrap.
// If no git executable is found, Open returns a core.EMISSING error.
func Open(path string) (*Repo, error) {
	git, err := exec.LookPath("git")
	if err != nil {
		return nil, core.WrapError(fmt.Errorf("%w: %v", ErrNoGit, err), core.EMISSING,
			"git is not installed or not on the PATH")
	}
	return OpenWith(path, ExecRunner{Git: git})
}

// OpenWith prepares a repository located at path, running git commands with
// runner.
func OpenWith(path string, runner Runner) (*Repo, error) {
	dir, err := locate.Expand(path)
	if err != nil {
		return nil, err
	}
	return &Repo{
		Path:    dir,
		Runner:  runner,
		Stamper: history.NewStamper(time.Now().UnixNano()),
		Message: DefaultMessage,
	}, nil
}

func (repo *Repo) git(ctx context.Context, env []string, args ...string) (string, error) {
	return repo.Runner.Run(ctx, repo.Path, env, args...)
}

func dateEnv(t time.Time) []string {
	d := t.Format(DateFormat)
	return []string{"GIT_AUTHOR_DATE=" + d, "GIT_COMMITTER_DATE=" + d}
}

// Bootstrap makes sure the repository is ready to receive entries for year:
// the directory exists, it is a git repository and HEAD points to a commit.
// Failures are core.EBACKEND errors.
func (repo *Repo) Bootstrap(ctx context.Context, year int) error {
	dir, err := locate.Directory(repo.Path, true)
	if err != nil {
		return err
	}
	repo.Path = dir
	if !locate.IsDir(filepath.Join(dir, ".git")) {
		tracer().Infof("initializing git repository in %s", dir)
		if _, err := repo.git(ctx, nil, "init"); err != nil {
			return core.WrapError(err, core.EBACKEND, "cannot initialize git repository in %s", dir)
		}
	}
	if repo.HasCommits(ctx) {
		tracer().Debugf("repository %s already has commits", dir)
		return nil
	}
	readme := filepath.Join(dir, "README.md")
	if _, err := os.Stat(readme); os.IsNotExist(err) {
		text := fmt.Sprintf("# Contribution calendar art %d\n", year)
		if err := os.WriteFile(readme, []byte(text), 0644); err != nil {
			return core.WrapError(err, core.EBACKEND, "cannot create %s", readme)
		}
	}
	if _, err := repo.git(ctx, nil, "add", "README.md"); err != nil {
		return core.WrapError(err, core.EBACKEND, "cannot add README.md to repository")
	}
	when := InitialCommitDate(year)
	msg := fmt.Sprintf("Initial commit (%d)", year)
	if _, err := repo.git(ctx, dateEnv(when), "commit", "-m", msg, "--date", when.Format(DateFormat)); err != nil {
		return core.WrapError(err, core.EBACKEND, "cannot create initial commit")
	}
	tracer().Infof("initial commit created for %s", when.Format(calendar.DateLayout))
	return nil
}

// InitialCommitDate is noon of the third day before year starts.
func InitialCommitDate(year int) time.Time {
	return calendar.Date(year, time.January, 1).AddDate(0, 0, -3).Add(12 * time.Hour)
}

// HasCommits is true if HEAD points to a commit.
func (repo *Repo) HasCommits(ctx context.Context) bool {
	_, err := repo.git(ctx, nil, "rev-parse", "--verify", "--quiet", "HEAD")
	return err == nil
}

// CreateEntries is part of interface history.Backend. It creates count
// empty commits on the day of date. Creation stops at the first failing
// commit; the returned error is a *history.EntryError.
func (repo *Repo) CreateEntries(ctx context.Context, date time.Time, count int) error {
	day := calendar.Truncate(date)
	stamps, err := repo.Stamper.Stamps(day, count)
	if err != nil {
		return &history.EntryError{Date: day, Requested: count, Err: err}
	}
	for i, stamp := range stamps {
		msg := fmt.Sprintf("%s %s (%d/%d)", repo.Message, day.Format(calendar.DateLayout), i+1, count)
		ts := stamp.Format(DateFormat)
		if _, err := repo.git(ctx, dateEnv(stamp), "commit", "--allow-empty", "-m", msg, "--date", ts); err != nil {
			if ctx.Err() == nil {
				tracer().Errorf("commit %d/%d for %s failed, skipping rest of day", i+1, count, ts)
				err = core.WrapError(err, core.EBACKEND, "cannot create commit for %s", ts)
			}
			return &history.EntryError{Date: day, Requested: count, Created: i, Err: err}
		}
		tracer().Debugf("commit %d/%d created for %s", i+1, count, ts)
	}
	return nil
}

// Dates returns the author dates of all commits reachable from HEAD,
// newest first.
func (repo *Repo) Dates(ctx context.Context) ([]time.Time, error) {
	out, err := repo.git(ctx, nil, "log", "--format=%aI")
	if err != nil {
		return nil, core.WrapError(err, core.EBACKEND, "cannot read history")
	}
	var dates []time.Time
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, line)
		if err != nil {
			return nil, core.WrapError(err, core.EBACKEND, "unexpected date in git log: %q", line)
		}
		dates = append(dates, t)
	}
	return dates, nil
}

var _ history.Backend = (*Repo)(nil)
