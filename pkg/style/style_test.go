package style

import (
	"strings"
	"testing"

	"github.com/arthur-debert/dotman/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestHelpers(t *testing.T) {
	tests := []struct {
		name  string
		style func(string) string
	}{
		{name: "bold", style: Bold},
		{name: "italic", style: Italic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.style("Hello World"), "Hello World")
		})
	}
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "Hello", Indent("Hello", 0))
	assert.True(t, strings.HasPrefix(Indent("Hello", 1), "  "))
	assert.True(t, strings.HasPrefix(Indent("Hello", 2), "    "))
}

func TestStatusIndicator(t *testing.T) {
	tests := []struct {
		status types.FileStatus
		glyph  string
	}{
		{types.FileWritten, "✓"},
		{types.FilePlanned, "○"},
		{types.FileEvaluated, "•"},
		{types.FileSkipped, "!"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Contains(t, StatusIndicator(tt.status), tt.glyph)
			assert.Contains(t, StatusStyle(tt.status).Render("x"), "x")
		})
	}
	assert.Equal(t, " ", StatusIndicator(types.FileStatus("unknown")))
}

func TestMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		stripped string
	}{
		{name: "plain", input: "no tags here", stripped: "no tags here"},
		{name: "single", input: "[success]done[/success]", stripped: "done"},
		{name: "several", input: "[path]/a[/path] -> [path]/b[/path]", stripped: "/a -> /b"},
		{name: "nested", input: "[bold][warning]careful[/warning][/bold]", stripped: "careful"},
		{name: "unknown tag kept", input: "[nope]x[/nope]", stripped: "[nope]x[/nope]"},
		{name: "template brackets kept", input: "{{ $x }} [1]", stripped: "{{ $x }} [1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.stripped, Strip(tt.input))

			rendered := Render(tt.input)
			assert.NotContains(t, rendered, "[success]")
			assert.NotContains(t, rendered, "[/path]")
			for _, word := range strings.Fields(tt.stripped) {
				assert.Contains(t, rendered, word)
			}
		})
	}
}
