package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"syntax.md":             {Data: []byte("# Syntax\n\nDirectives live in `{{ }}`.\n")},
		"sources.txt":           {Data: []byte("Variable files end in .te\n")},
		"option-dry-run.txt":    {Data: []byte("Nothing is written\n")},
		"guides/applying.md":    {Data: []byte("# Applying\n")},
		"notes.json":            {Data: []byte("{}")},
		"drafts/unfinished.txx": {Data: []byte("x")},
	}
}

func TestTopicManager_Scan(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
		expected   []string
	}{
		{
			name:     "default extensions",
			expected: []string{"applying", "option-dry-run", "sources", "syntax"},
		},
		{
			name:       "markdown only",
			extensions: []string{".md"},
			expected:   []string{"applying", "syntax"},
		},
		{
			name:       "custom extension",
			extensions: []string{".txx"},
			expected:   []string{"unfinished"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewWithOptions(testFS(), Options{Extensions: tt.extensions})
			require.NoError(t, tm.Scan())
			assert.Equal(t, tt.expected, tm.ListTopics())
		})
	}
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Scan())

	topic, ok := tm.GetTopic("sources")
	require.True(t, ok)
	assert.Equal(t, "Variable files end in .te\n", topic.Content)
	assert.Equal(t, "sources.txt", topic.FilePath)

	topic, ok = tm.GetTopic("--dry-run")
	require.True(t, ok)
	assert.Equal(t, "option-dry-run", topic.Name)

	_, ok = tm.GetTopic("missing")
	assert.False(t, ok)
}

func TestTopicManager_WriteList(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Scan())

	var buf bytes.Buffer
	tm.WriteList(&buf, "dotman")
	out := buf.String()

	assert.Contains(t, out, "General topics:\n  applying\n  sources\n  syntax\n")
	assert.Contains(t, out, "Option topics:\n  --dry-run\n")
	assert.Contains(t, out, "Use 'dotman topics <topic>'")

	empty := New(fstest.MapFS{})
	require.NoError(t, empty.Scan())
	buf.Reset()
	empty.WriteList(&buf, "dotman")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func run(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func newRoot(t *testing.T) *cobra.Command {
	t.Helper()
	root := &cobra.Command{Use: "dotman", Short: "root command"}
	root.AddCommand(&cobra.Command{Use: "apply", Short: "apply managed files", Run: func(*cobra.Command, []string) {}})

	tm, err := InitializeWithOptions(root, testFS(), Options{})
	require.NoError(t, err)
	root.AddCommand(tm.Command())
	return root
}

func TestCommand(t *testing.T) {
	out, err := run(t, newRoot(t), "topics", "syntax")
	require.NoError(t, err)
	assert.Equal(t, "# Syntax\n\nDirectives live in `{{ }}`.\n", out)

	out, err = run(t, newRoot(t), "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "Available help topics:")

	_, err = run(t, newRoot(t), "topics", "nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestHelpCommand(t *testing.T) {
	out, err := run(t, newRoot(t), "help", "sources")
	require.NoError(t, err)
	assert.Equal(t, "Variable files end in .te\n", out)

	out, err = run(t, newRoot(t), "help", "topics")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Available help topics:"))

	out, err = run(t, newRoot(t), "help", "apply")
	require.NoError(t, err)
	assert.Contains(t, out, "apply managed files")
}

func TestGlamourRenderer(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}

	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))

	out := r.Render("# Title\n\nSome **bold** words.\n", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
}
