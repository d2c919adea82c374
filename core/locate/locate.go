package locate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/graffiti/core"
)

// ErrNotADirectory is returned if a path exists but is not a directory.
var ErrNotADirectory = errors.New("path exists but is not a directory")

// NotFound returns an application error for a missing location.
func NotFound(path string) error {
	e := fmt.Errorf("location missing: %v", path)
	return core.WrapError(e, core.EMISSING, "directory not found: %s", path)
}

// Expand makes path absolute, resolving a leading '~' to the user's home
// directory.
func Expand(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", core.Error(core.EINVALID, "empty path")
	}
	if path == "~" || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// Directory resolves path to an absolute directory path. If the directory
// does not exist and create is set, it will be created (with permissions 755,
// including missing parents); otherwise NotFound is returned.
func Directory(path string, create bool) (string, error) {
	dir, err := Expand(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return "", core.WrapError(ErrNotADirectory, core.EINVALID,
			"the specified path %q exists but is not a directory", dir)
	case err == nil:
		tracer().Debugf("directory %s exists", dir)
		return dir, nil
	case !os.IsNotExist(err):
		return "", err
	case !create:
		return "", NotFound(dir)
	}
	if err = os.MkdirAll(dir, 0755); err != nil {
		return "", core.WrapError(err, core.EMISSING, "could not create directory %s", dir)
	}
	tracer().Infof("created directory %s", dir)
	return dir, nil
}

// IsDir is a predicate: does path exist and is it a directory?
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
