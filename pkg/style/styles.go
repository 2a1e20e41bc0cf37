package style

import (
	"github.com/arthur-debert/dotman/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Padding(0, 1)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

// File status styles
var (
	WrittenStyle = lipgloss.NewStyle().
			Foreground(WrittenColor).
			Bold(true)

	PlannedStyle = lipgloss.NewStyle().
			Foreground(PlannedColor).
			Bold(true)

	EvaluatedStyle = lipgloss.NewStyle().
			Foreground(EvaluatedColor)

	SkippedStyle = lipgloss.NewStyle().
			Foreground(SkippedColor)
)

var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator    = InfoStyle.Render("•")
	PendingIndicator = MutedStyle.Render("○")
)

// StatusStyle returns the style used for a file status
func StatusStyle(status types.FileStatus) lipgloss.Style {
	switch status {
	case types.FileWritten:
		return WrittenStyle
	case types.FilePlanned:
		return PlannedStyle
	case types.FileEvaluated:
		return EvaluatedStyle
	case types.FileSkipped:
		return SkippedStyle
	default:
		return MutedStyle
	}
}

// StatusIndicator returns the glyph shown before a file with status
func StatusIndicator(status types.FileStatus) string {
	switch status {
	case types.FileWritten:
		return SuccessIndicator
	case types.FilePlanned:
		return PendingIndicator
	case types.FileEvaluated:
		return InfoIndicator
	case types.FileSkipped:
		return WarningIndicator
	default:
		return " "
	}
}

// NoticeStyle returns the style for a notice level
func NoticeStyle(level types.NoticeLevel) lipgloss.Style {
	if level == types.NoticeWarning {
		return WarningStyle
	}
	return InfoStyle
}

func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func Italic(s string) string {
	return lipgloss.NewStyle().Italic(true).Render(s)
}
