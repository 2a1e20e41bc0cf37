package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotman/pkg/paths"
	"github.com/stretchr/testify/require"
)

// TestEnvironment is an isolated dotman installation under a temp directory.
// Every directory dotman resolves through pkg/paths points inside it.
type TestEnvironment struct {
	// Root is the temp directory holding everything else
	Root string
	// HomeDir is the user's $HOME, where destinations usually live
	HomeDir string
	// DotmanHome is the dotfile home recorded in dotman.toml
	DotmanHome string
	ConfigDir  string
	DataDir    string
	StateDir   string

	Paths paths.Paths

	t *testing.T
}

// NewTestEnvironment creates the directories and points the DOTMAN_*
// variables, HOME and XDG_STATE_HOME at them for the duration of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:       root,
		HomeDir:    filepath.Join(root, "home"),
		DotmanHome: filepath.Join(root, "dotfiles"),
		ConfigDir:  filepath.Join(root, "config"),
		DataDir:    filepath.Join(root, "data"),
		StateDir:   filepath.Join(root, "state"),
		t:          t,
	}

	for _, dir := range []string{env.HomeDir, env.DotmanHome, env.ConfigDir} {
		CreateDir(t, dir, "")
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvDataDir, env.DataDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	t.Setenv("DOTMAN_LOG_FILE", filepath.Join(env.StateDir, paths.LogFileName))

	p, err := paths.New()
	require.NoError(t, err)
	env.Paths = p

	return env
}

// Source writes a file below the dotfile home and returns its path
func (env *TestEnvironment) Source(rel, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.DotmanHome, rel, content)
}

// Target returns a path below the user's home without creating it
func (env *TestEnvironment) Target(rel string) string {
	return filepath.Join(env.HomeDir, rel)
}

// WithFileTree creates tree below the dotfile home
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	createFileTree(env.t, env.DotmanHome, tree)
}

// FileTree describes files (string values) and directories (FileTree values)
type FileTree map[string]interface{}

func createFileTree(t *testing.T, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		switch v := content.(type) {
		case string:
			CreateFile(t, basePath, name, v)
		case FileTree:
			createFileTree(t, CreateDir(t, basePath, name), v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
