package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Overrides(t *testing.T) {
	root := t.TempDir()
	t.Setenv(EnvConfigDir, filepath.Join(root, "config"))
	t.Setenv(EnvDataDir, filepath.Join(root, "data"))
	t.Setenv(EnvStateDir, filepath.Join(root, "state"))

	p, err := New()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "config"), p.ConfigDir())
	assert.Equal(t, filepath.Join(root, "config", "dotman.toml"), p.ConfigFilePath())
	assert.Equal(t, filepath.Join(root, "data"), p.DataDir())
	assert.Equal(t, filepath.Join(root, "state", "dotman"), p.StateDir())
	assert.Equal(t, filepath.Join(root, "state", "dotman", "dotman.log"), p.LogFilePath())
}

func TestNew_TildeOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	t.Setenv(EnvConfigDir, "~/cfg")
	t.Setenv(EnvDataDir, "")

	p, err := New()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "cfg"), p.ConfigDir())
	assert.True(t, filepath.IsAbs(p.DataDir()))
	assert.Equal(t, AppDirName, filepath.Base(p.DataDir()))
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	tests := []struct {
		in       string
		expected string
	}{
		{in: "", expected: ""},
		{in: "~", expected: home},
		{in: "~/dots/vimrc", expected: filepath.Join(home, "dots", "vimrc")},
		{in: "~other/x", expected: "~other/x"},
		{in: "/abs/path", expected: "/abs/path"},
		{in: "rel/path", expected: "rel/path"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandHome(tt.in))
		})
	}
}

func TestNormalizePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	got, err := NormalizePath("~/a/../b/./c")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "b", "c"), got)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	got, err = NormalizePath("rel")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "rel"), got)

	_, err = NormalizePath("")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, ValidatePath("/etc/hosts"))
	assert.Error(t, ValidatePath(""))
	assert.Error(t, ValidatePath("a\x00b"))

	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, ValidatePath(string(long)))
}

func TestContainsPath(t *testing.T) {
	assert.True(t, ContainsPath("/home/me", "/home/me/.vimrc"))
	assert.True(t, ContainsPath("/home/me", "/home/me"))
	assert.True(t, ContainsPath("/home/me", "/home/me/..dir/x"))
	assert.False(t, ContainsPath("/home/me", "/home/other"))
	assert.False(t, ContainsPath("/home/me", "/home"))
}

func TestListFiles(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"b/two", "a", "b/c/three"} {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(rel), 0644))
	}

	files, err := ListFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a"),
		filepath.Join(root, "b", "c", "three"),
		filepath.Join(root, "b", "two"),
	}, files)

	assert.True(t, Exists(filepath.Join(root, "a")))
	assert.True(t, IsDir(filepath.Join(root, "b")))
	assert.False(t, IsDir(filepath.Join(root, "a")))
	assert.False(t, Exists(filepath.Join(root, "missing")))

	_, err = ListFiles(filepath.Join(root, "missing"))
	assert.Error(t, err)
}
