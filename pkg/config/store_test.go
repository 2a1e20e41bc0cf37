package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_EnsureExists(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	store := NewStore(env.Paths)

	assert.Equal(t, filepath.Join(env.ConfigDir, "dotman.toml"), store.Path())

	created, err := store.EnsureExists()
	require.NoError(t, err)
	assert.True(t, created)

	r, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, env.DataDir, r.HomePath)
	assert.False(t, r.GitInit)
	assert.Empty(t, r.ManagedPaths)
	assert.NotNil(t, r.ManagedPaths)
	assert.Empty(t, r.RemoteURL)

	created, err = store.EnsureExists()
	require.NoError(t, err)
	assert.False(t, created)
}

func TestStore_RoundTrip(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	store := NewStore(env.Paths)

	r := Default(env.DotmanHome)
	r.RemoteURL = "git@example.com:me/dots.git"
	r.GitInit = true
	require.NoError(t, r.Add(env.Source("vars.te", ""), env.Source("gitconfig", "")))
	_, err := r.Link(filepath.Join(env.DotmanHome, "gitconfig"), env.Target(".gitconfig"))
	require.NoError(t, err)
	r.MarkApplied(env.Target(".gitconfig"))

	require.NoError(t, store.Save(r))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, r, loaded)

	content := testutil.ReadFile(t, store.Path())
	assert.Contains(t, content, "[[managed_paths]]")
	assert.NotContains(t, content, "[settings]")
	testutil.AssertNoFile(t, store.Path()+".tmp")
}

func TestStore_KeepsSettingsTable(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	store := NewStore(env.Paths)

	testutil.CreateFile(t, env.ConfigDir, "dotman.toml", `
home_path = "/dots"
git_init = false
applied_paths = []

[[managed_paths]]
source = "/dots/vimrc"
destination = "/home/me/.vimrc"

[settings]
branch = "main"
`)

	require.NoError(t, store.Update(func(r *Record) error {
		r.Unlink("/dots/vimrc")
		return nil
	}))

	r, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []ManagedPath{{Source: "/dots/vimrc"}}, r.ManagedPaths)
	assert.Equal(t, "main", r.Settings["branch"])

	settings, err := store.Settings()
	require.NoError(t, err)
	assert.Equal(t, "main", settings.Branch)
}

func TestStore_LoadErrors(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	store := NewStore(env.Paths)

	_, err := store.Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	testutil.CreateFile(t, env.ConfigDir, "dotman.toml", "home_path = [unterminated")
	_, err = store.Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestStore_UpdateAbortsOnError(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	store := NewStore(env.Paths)
	_, err := store.EnsureExists()
	require.NoError(t, err)

	before := testutil.ReadFile(t, store.Path())
	err = store.Update(func(r *Record) error {
		r.HomePath = "/changed"
		return errors.New(errors.ErrInvalidInput, "nope")
	})
	require.Error(t, err)
	assert.Equal(t, before, testutil.ReadFile(t, store.Path()))
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	require.NoError(t, os.RemoveAll(env.ConfigDir))

	store := NewStore(env.Paths)
	require.NoError(t, store.Save(Default("/dots")))
	assert.True(t, testutil.FileExists(t, store.Path()))
}
