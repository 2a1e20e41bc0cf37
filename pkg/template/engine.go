package template

import (
	stderrors "errors"
	"strings"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/rs/zerolog"
)

const (
	directiveOpen  = "{{"
	directiveClose = "}}"
)

// File is one input of a batch
type File struct {
	// Name is used in error details and logs only; it may be empty
	Name    string
	Content string
	// IsSource selects source mode: every non-blank line is an expression.
	// Otherwise only {{ }} directive lines are evaluated.
	IsSource bool
}

// Result is the outcome of one evaluated line
type Result struct {
	// Line is the zero based position of the line in its file
	Line int
	// Text is the produced output, meaningful only when Produced is set
	Text     string
	Produced bool
}

// Engine evaluates files against a single environment. Variables assigned
// while evaluating one file stay visible to every later file.
type Engine struct {
	env    *Environment
	logger zerolog.Logger
}

// NewEngine creates an engine with an empty environment
func NewEngine() *Engine {
	return &Engine{
		env:    NewEnvironment(),
		logger: logging.GetLogger("template"),
	}
}

// Environment exposes the shared variable store
func (e *Engine) Environment() *Environment {
	return e.env
}

// Define seeds a variable before any file is evaluated
func (e *Engine) Define(name, value string) {
	e.env.Set(name, value)
}

// EvaluateLine tokenizes, parses and evaluates a single expression
func (e *Engine) EvaluateLine(text string) (string, bool, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return "", false, err
	}
	expr, err := Parse(tokens)
	if err != nil {
		return "", false, err
	}
	e.logger.Trace().Str("expression", expr.String()).Msg("evaluating")
	return Evaluate(expr, e.env)
}

// Evaluate runs every expression line of file in order and returns the
// results sorted by line.
func (e *Engine) Evaluate(file File) ([]Result, error) {
	var results []Result

	for i, line := range SplitLines(file.Content) {
		body := line
		if file.IsSource {
			if strings.TrimSpace(line) == "" {
				continue
			}
		} else {
			var ok bool
			if body, ok = DirectiveBody(line); !ok {
				continue
			}
		}

		text, produced, err := e.EvaluateLine(body)
		if err != nil {
			return nil, annotate(err, file, i, body)
		}
		results = append(results, Result{Line: i, Text: text, Produced: produced})
	}

	e.logger.Debug().
		Str("file", file.Name).
		Bool("source", file.IsSource).
		Int("results", len(results)).
		Msg("file evaluated")

	return results, nil
}

// RenderFile evaluates file and merges its results back into the content
func (e *Engine) RenderFile(file File) (string, error) {
	results, err := e.Evaluate(file)
	if err != nil {
		return "", err
	}
	return Render(file.Content, results), nil
}

// RenderAll renders files in order against the engine's environment. The
// first failure aborts the batch and no output is returned.
func (e *Engine) RenderAll(files []File) ([]string, error) {
	done := logging.LogOperationStart(e.logger, "render batch")
	defer done()

	rendered := make([]string, 0, len(files))
	for i, file := range files {
		out, err := e.RenderFile(file)
		if err != nil {
			var dmErr *errors.DotmanError
			if stderrors.As(err, &dmErr) {
				dmErr.WithDetail("file", i)
			}
			return nil, err
		}
		rendered = append(rendered, out)
	}
	return rendered, nil
}

// RenderAll renders a batch with a fresh engine
func RenderAll(files []File) ([]string, error) {
	return NewEngine().RenderAll(files)
}

// Render rebuilds content with every line named by results replaced by the
// result's text, or by an empty line when the result produced nothing.
// results must be ordered by Line. Every emitted line ends with a newline.
func Render(content string, results []Result) string {
	var sb strings.Builder
	next := 0

	for i, line := range SplitLines(content) {
		if next < len(results) && results[next].Line == i {
			line = results[next].Text
			next++
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// SplitLines splits content on newlines, dropping the empty piece after a
// final newline and a trailing carriage return on each line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// DirectiveBody returns the trimmed expression inside a {{ }} line
func DirectiveBody(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < len(directiveOpen)+len(directiveClose) {
		return "", false
	}
	if !strings.HasPrefix(trimmed, directiveOpen) || !strings.HasSuffix(trimmed, directiveClose) {
		return "", false
	}
	inner := trimmed[len(directiveOpen) : len(trimmed)-len(directiveClose)]
	return strings.TrimSpace(inner), true
}

// annotate attaches the failing line to template errors
func annotate(err error, file File, line int, text string) error {
	var dmErr *errors.DotmanError
	if !stderrors.As(err, &dmErr) {
		return err
	}
	dmErr.WithDetail("line", line+1).WithDetail("text", text)
	if file.Name != "" {
		dmErr.WithDetail("path", file.Name)
	}
	return err
}
