package locate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/graffiti/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryCreates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.locate")
	defer teardown()
	//
	base := t.TempDir()
	target := filepath.Join(base, "art", "2024")
	_, err := Directory(target, false)
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	//
	dir, err := Directory(target, true)
	require.NoError(t, err)
	assert.Equal(t, target, dir)
	assert.True(t, IsDir(dir))
	//
	dir, err = Directory(target, false)
	require.NoError(t, err)
	assert.Equal(t, target, dir)
}

func TestDirectoryRejectsFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.locate")
	defer teardown()
	//
	file := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(file, []byte("# art\n"), 0644))
	_, err := Directory(file, true)
	assert.True(t, errors.Is(err, ErrNotADirectory))
	assert.False(t, IsDir(file))
}

func TestExpand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "graffiti.locate")
	defer teardown()
	//
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	p, err := Expand("~/art")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "art"), p)
	p, err = Expand("relative")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(p))
	_, err = Expand("  ")
	assert.Equal(t, core.EINVALID, core.Code(err))
}
