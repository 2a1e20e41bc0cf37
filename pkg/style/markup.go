package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var tagPattern = regexp.MustCompile(`\[(/?)([a-z_]+)\]`)

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles
type MarkupParser struct {
	styles map[string]lipgloss.Style
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	return &MarkupParser{
		styles: map[string]lipgloss.Style{
			"title":     TitleStyle,
			"subtitle":  SubtitleStyle,
			"success":   SuccessStyle,
			"error":     ErrorStyle,
			"warning":   WarningStyle,
			"info":      InfoStyle,
			"code":      CodeStyle,
			"path":      PathStyle,
			"muted":     MutedStyle,
			"bold":      lipgloss.NewStyle().Bold(true),
			"italic":    lipgloss.NewStyle().Italic(true),
			"written":   WrittenStyle,
			"planned":   PlannedStyle,
			"evaluated": EvaluatedStyle,
			"skipped":   SkippedStyle,
		},
	}
}

// Render processes markup text and returns styled output
func (p *MarkupParser) Render(text string) string {
	result := text
	for {
		changed := false
		for tag, style := range p.styles {
			pattern := regexp.MustCompile(`\[` + tag + `\](.*?)\[/` + tag + `\]`)
			next := pattern.ReplaceAllStringFunc(result, func(match string) string {
				return style.Render(pattern.FindStringSubmatch(match)[1])
			})
			if next != result {
				changed = true
				result = next
			}
		}
		if !changed {
			return result
		}
	}
}

// Strip removes known tags and keeps their content
func (p *MarkupParser) Strip(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(match string) string {
		if _, ok := p.styles[tagPattern.FindStringSubmatch(match)[2]]; ok {
			return ""
		}
		return match
	})
}

// AddStyle allows adding custom styles
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip is a convenience function using the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}
