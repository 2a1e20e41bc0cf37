package dotman

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// styledOutput reports whether help text may carry escape codes
func styledOutput() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func formatBold(s string) string {
	if !styledOutput() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper is used for section headings, a trailing colon is
// added when missing
func formatBoldUpper(s string) string {
	heading := strings.ToUpper(s)
	if !strings.HasSuffix(heading, ":") {
		heading += ":"
	}
	return formatBold(heading)
}

// initTemplateFormatting adds the formatting functions used by the usage
// template
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}
