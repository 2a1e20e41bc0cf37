// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotman/pkg/git"
	"github.com/arthur-debert/dotman/pkg/style"
	"github.com/arthur-debert/dotman/pkg/types"
	"github.com/arthur-debert/dotman/pkg/ui/text"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss styles and pterm
// prefixes
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder

	switch v := result.(type) {
	case *types.SourceListResult:
		b.WriteString(style.TitleStyle.Render("Managed files") + "\n")
		for _, s := range v.Sources {
			line := style.PathStyle.Render(s.Source)
			if s.Destination != "" {
				line += style.MutedStyle.Render(" -> ") + s.Destination
			} else {
				line += style.MutedStyle.Render(" (evaluated only)")
			}
			if s.Missing {
				line += " " + style.WarningStyle.Render("missing")
			}
			b.WriteString(style.ListItemStyle.Render(line) + "\n")
		}
		b.WriteString("\n" + style.MutedStyle.Render("home: "+v.Home) + "\n")

	case *types.ApplyResult:
		if v.DryRun {
			b.WriteString(pterm.Info.Prefix.Text + " " + style.InfoStyle.Render("Dry run, nothing was written") + "\n\n")
		}
		for _, f := range v.Files {
			line := fmt.Sprintf("%s %s %s",
				style.StatusIndicator(f.Status),
				style.StatusStyle(f.Status).Render(fmt.Sprintf("%-9s", f.Status)),
				f.Source)
			if f.Destination != "" {
				line += style.MutedStyle.Render(" -> ") + style.PathStyle.Render(f.Destination)
			}
			if f.Reason != "" {
				line += style.MutedStyle.Render(" (" + f.Reason + ")")
			}
			b.WriteString(line + "\n")
		}
		r.writeNotices(&b, text.UnreportedNotices(v))

	case *types.ChangeResult:
		r.writeNotices(&b, v.Notices)

	case *types.GitResult:
		r.writeNotices(&b, v.Notices)

	case *types.RenderResult:
		// rendered files are shown verbatim so they can be copied
		b.WriteString(v.Content)

	case *git.Status:
		b.WriteString(style.SubtitleStyle.Render("On branch "+v.Branch) + "\n")
		if v.Head != "" {
			b.WriteString(style.MutedStyle.Render("head "+v.Head) + "\n")
		} else {
			b.WriteString(style.MutedStyle.Render("no commits yet") + "\n")
		}
		for _, remote := range v.Remotes {
			b.WriteString(style.ListItemStyle.Render(
				style.Bold(remote.Name)+" "+style.PathStyle.Render(strings.Join(remote.URLs, ", "))) + "\n")
		}
		if v.Clean {
			b.WriteString(style.SuccessIndicator + " working tree clean\n")
		} else {
			b.WriteString(style.WarningIndicator + fmt.Sprintf(" %d changed files\n", v.Changes))
		}

	default:
		fmt.Fprintf(&b, "%+v\n", result)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	out := style.ErrorStyle.Render("Error: " + err.Error())
	if location := text.ErrorLocation(err); location != "" {
		out += "\n  " + style.MutedStyle.Render("at "+location)
	}
	_, werr := fmt.Fprintln(r.output, out)
	return werr
}

// RenderMessage renders a message, styling its markup
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Render(msg))
	return err
}

func (r *Renderer) writeNotices(b *strings.Builder, notices []types.Notice) {
	for _, n := range notices {
		prefix := pterm.Info.Prefix.Text
		if n.Level == types.NoticeWarning {
			prefix = pterm.Warning.Prefix.Text
		}
		line := style.NoticeStyle(n.Level).Render(prefix) + " " + n.Message
		if n.Path != "" {
			line += " " + style.PathStyle.Render(n.Path)
		}
		b.WriteString(line + "\n")
	}
}
