// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/git"
	"github.com/arthur-debert/dotman/pkg/style"
	"github.com/arthur-debert/dotman/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder

	switch v := result.(type) {
	case *types.SourceListResult:
		for _, s := range v.Sources {
			b.WriteString(SourceLine(s))
			b.WriteString("\n")
		}
	case *types.ApplyResult:
		if v.DryRun {
			b.WriteString("Dry run, nothing was written\n")
		}
		for _, f := range v.Files {
			fmt.Fprintf(&b, "%-9s %s", f.Status, f.Source)
			if f.Destination != "" {
				fmt.Fprintf(&b, " -> %s", f.Destination)
			}
			if f.Reason != "" {
				fmt.Fprintf(&b, " (%s)", f.Reason)
			}
			b.WriteString("\n")
		}
		writeNotices(&b, UnreportedNotices(v))
	case *types.ChangeResult:
		writeNotices(&b, v.Notices)
	case *types.GitResult:
		writeNotices(&b, v.Notices)
	case *types.RenderResult:
		b.WriteString(v.Content)
	case *git.Status:
		fmt.Fprintf(&b, "Branch: %s\n", v.Branch)
		if v.Head != "" {
			fmt.Fprintf(&b, "Head: %s\n", v.Head)
		} else {
			b.WriteString("Head: no commits yet\n")
		}
		for _, remote := range v.Remotes {
			fmt.Fprintf(&b, "Remote: %s %s\n", remote.Name, strings.Join(remote.URLs, ", "))
		}
		if v.Clean {
			b.WriteString("Working tree clean\n")
		} else {
			fmt.Fprintf(&b, "%d changed files\n", v.Changes)
		}
	default:
		fmt.Fprintf(&b, "%+v\n", result)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	if werr != nil {
		return werr
	}
	if location := ErrorLocation(err); location != "" {
		_, werr = fmt.Fprintf(r.output, "  at %s\n", location)
	}
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Strip(msg))
	return err
}

// SourceLine describes one managed file
func SourceLine(s types.SourceInfo) string {
	line := "Location: " + s.Source
	if s.Destination != "" {
		line += " -> Destination: " + s.Destination
	}
	if s.Missing {
		line += " (missing)"
	}
	return line
}

// UnreportedNotices drops the notices already shown as skipped files
func UnreportedNotices(r *types.ApplyResult) []types.Notice {
	skipped := make(map[string]bool)
	for _, f := range r.Files {
		if f.Status == types.FileSkipped {
			skipped[f.Source] = true
		}
	}
	var out []types.Notice
	for _, n := range r.Notices {
		if !skipped[n.Path] {
			out = append(out, n)
		}
	}
	return out
}

// ErrorLocation formats the file and line attached to a template error
func ErrorLocation(err error) string {
	details := errors.GetErrorDetails(err)
	path, _ := details["path"].(string)
	line, hasLine := details["line"].(int)
	switch {
	case !errors.IsTemplateError(err):
		return ""
	case path != "" && hasLine:
		return fmt.Sprintf("%s:%d", path, line)
	case hasLine:
		return fmt.Sprintf("line %d", line)
	default:
		return path
	}
}

func writeNotices(b *strings.Builder, notices []types.Notice) {
	for _, n := range notices {
		fmt.Fprintf(b, "%s: %s", n.Level, n.Message)
		if n.Path != "" {
			fmt.Fprintf(b, " (%s)", n.Path)
		}
		b.WriteString("\n")
	}
}
