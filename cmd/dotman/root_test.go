package dotman

import (
	"testing"

	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Structure(t *testing.T) {
	root := NewRootCmd()
	assert.Equal(t, "dotman", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	expected := []string{"set-home", "source", "apply", "render", "git", "topics", "version", "completion"}
	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, cmd.Name())
			assert.NotEmpty(t, cmd.Short)
		})
	}

	flag := root.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestRootCmd_CreatesRecord(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	store := config.NewStore(env.Paths)
	testutil.AssertNoFile(t, store.Path())

	mustRun(t, "source", "list")

	record, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, env.DataDir, record.HomePath)
	assert.Empty(t, record.ManagedPaths)
}

func TestRootCmd_SkipsSetup(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	store := config.NewStore(env.Paths)

	tests := [][]string{
		{"version"},
		{"topics"},
		{"help"},
		{"completion", "bash"},
	}
	for _, args := range tests {
		mustRun(t, args...)
	}
	testutil.AssertNoFile(t, store.Path())
}

func TestVersionCmd(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out := mustRun(t, "version")
	assert.Contains(t, out, "dotman version dev")
	assert.Contains(t, out, "commit: unknown")
}

func TestTopics(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out := mustRun(t, "topics")
	for _, topic := range []string{"syntax", "sources", "applying", "configuration"} {
		assert.Contains(t, out, topic)
	}

	out = mustRun(t, "help", "syntax")
	assert.Contains(t, out, "Template syntax")

	out = mustRun(t, "help", "apply")
	assert.Contains(t, out, "dotman apply [flags]")
}

func TestUsageTemplate(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("NO_COLOR", "1")

	out := mustRun(t, "--help")
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "FILES:")
	assert.Contains(t, out, "REPOSITORY:")
	assert.Contains(t, out, "FLAGS:")

	out = mustRun(t, "source", "--help")
	assert.Contains(t, out, "GLOBAL FLAGS:")
}
