// Package ui renders command results for people or programs. Terminal
// output is styled with lipgloss and pterm, text output is plain, and the
// JSON and YAML renderers encode results as they are.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/ui/json"
	"github.com/arthur-debert/dotman/pkg/ui/terminal"
	"github.com/arthur-debert/dotman/pkg/ui/text"
	"github.com/arthur-debert/dotman/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a command result from pkg/types or a git status
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a message. Text may carry [tag]...[/tag]
	// markup, which only the terminal renderer styles.
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto inspects output when it is a file and falls back to text.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
