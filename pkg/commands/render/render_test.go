package render

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	dir := t.TempDir()
	vars := testutil.CreateFile(t, dir, "vars.te", "$user = \"ada\"\n// shell\n$shell = \"zsh\"\n")
	colors := testutil.CreateFile(t, dir, "colors.te", "$bg = \"#000\"\n")
	config := testutil.CreateFile(t, dir, "config", "user={{ $user }}\n{{ $user }}\n{{ if $shell != \"bash\" $bg }}\n")

	tests := []struct {
		name      string
		opts      RenderOptions
		content   string
		variables []string
	}{
		{
			name:      "template with sources",
			opts:      RenderOptions{Path: config, With: []string{vars, colors}},
			content:   "user={{ $user }}\nada\n#000\n",
			variables: []string{"bg", "shell", "user"},
		},
		{
			name:      "source file alone",
			opts:      RenderOptions{Path: vars, Source: true},
			content:   "\n\n\n",
			variables: []string{"shell", "user"},
		},
		{
			name:      "plain text",
			opts:      RenderOptions{Path: colors},
			content:   "$bg = \"#000\"\n",
			variables: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Render(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.opts.Path, result.Path)
			assert.Equal(t, tt.content, result.Content)
			assert.Equal(t, tt.variables, result.Variables)
		})
	}
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()
	broken := testutil.CreateFile(t, dir, "broken", "{{ $ = }}\n")
	undefined := testutil.CreateFile(t, dir, "undefined", "ok\n{{ $nope }}\n")

	tests := []struct {
		name string
		opts RenderOptions
		code errors.ErrorCode
	}{
		{name: "missing file", opts: RenderOptions{Path: filepath.Join(dir, "missing")}, code: errors.ErrFileNotFound},
		{name: "missing source", opts: RenderOptions{Path: undefined, With: []string{filepath.Join(dir, "nope.te")}}, code: errors.ErrFileNotFound},
		{name: "undefined variable", opts: RenderOptions{Path: undefined}, code: errors.ErrUndefinedVariable},
		{name: "template error", opts: RenderOptions{Path: broken}, code: errors.ErrTokenize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.opts)
			require.Error(t, err)
			if tt.code == errors.ErrTokenize {
				assert.True(t, errors.IsTemplateError(err), "got %v", err)
				return
			}
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestRender_MemFS(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/dots/vars.te", []byte("$term = \"foot\"\n"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/dots/profile", []byte("export TERMINAL=\n{{ $term }}\n"), 0644))

	result, err := Render(RenderOptions{
		Path: "/dots/profile",
		With: []string{"/dots/vars.te"},
		FS:   fsys,
	})
	require.NoError(t, err)
	assert.Equal(t, "export TERMINAL=\nfoot\n", result.Content)
	assert.Equal(t, []string{"term"}, result.Variables)

	_, err = Render(RenderOptions{Path: "/dots/missing", FS: fsys})
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound), "got %v", err)
}
