package template

import (
	"strings"

	"github.com/arthur-debert/dotman/pkg/errors"
)

// Tokenize converts one line of text into its tokens, left to right.
//
// A backslash makes the next character literal. Characters outside of
// strings and variable names that do not form a token (stray words) are
// discarded.
func Tokenize(line string) ([]Token, error) {
	t := &tokenizer{line: line, runes: []rune(line)}
	return t.run()
}

type tokenizer struct {
	line   string
	runes  []rune
	tokens []Token

	buf strings.Builder
	// literal is set once an escaped character enters buf, so that an
	// escaped `if` is never read as the keyword
	literal bool

	inString  bool
	escape    bool
	variable  bool
	skipSpace bool
}

func (t *tokenizer) run() ([]Token, error) {
	for i := 0; i < len(t.runes); i++ {
		r := t.runes[i]

		if t.skipSpace {
			t.skipSpace = false
			if r == ' ' {
				continue
			}
		}

		if t.escape {
			t.escape = false
			t.buf.WriteRune(r)
			t.literal = true
			continue
		}

		if r == '\\' {
			t.escape = true
			continue
		}

		if r == '"' {
			if t.inString {
				t.emit(StringToken(t.buf.String()))
				t.inString = false
				continue
			}
			if err := t.flushVariable(); err != nil {
				return nil, err
			}
			t.reset()
			t.inString = true
			continue
		}

		if t.inString {
			t.buf.WriteRune(r)
			continue
		}

		switch r {
		case '$':
			if err := t.flushVariable(); err != nil {
				return nil, err
			}
			t.reset()
			t.variable = true
			continue

		case '/':
			if next, ok := t.peek(i); ok && next == '/' {
				if err := t.flushVariable(); err != nil {
					return nil, err
				}
				t.emit(CommentToken())
				return t.tokens, nil
			}

		case '!':
			next, ok := t.peek(i)
			if !ok {
				return nil, t.errorf("unexpected end of expression after '!'")
			}
			if next != '=' {
				return nil, t.errorf("expected comparison after '!', found %q", next)
			}
			if err := t.flushVariable(); err != nil {
				return nil, err
			}
			t.emit(ConditionToken(false))
			i++
			t.skipSpace = true
			continue

		case '=':
			next, ok := t.peek(i)
			if !ok {
				return nil, t.errorf("unexpected end of expression after '='")
			}
			if err := t.flushVariable(); err != nil {
				return nil, err
			}
			switch next {
			case '=':
				t.emit(ConditionToken(true))
				i++
				t.skipSpace = true
			case ' ':
				t.emit(AssignmentToken())
				i++
			default:
				// the value abuts the operator; scan it normally
				t.emit(AssignmentToken())
			}
			continue

		case ' ', '\t':
			if err := t.flushVariable(); err != nil {
				return nil, err
			}
			t.reset()
			continue
		}

		t.buf.WriteRune(r)
		if !t.variable && !t.literal && t.buf.String() == "if" {
			t.emit(IfToken())
		}
	}

	if t.inString {
		return nil, t.errorf("unterminated string literal")
	}

	if err := t.flushVariable(); err != nil {
		return nil, err
	}

	return t.tokens, nil
}

// emit appends tok and clears the buffer
func (t *tokenizer) emit(tok Token) {
	t.tokens = append(t.tokens, tok)
	t.reset()
}

func (t *tokenizer) reset() {
	t.buf.Reset()
	t.literal = false
}

// flushVariable emits the variable name being collected, if any
func (t *tokenizer) flushVariable() error {
	if !t.variable {
		return nil
	}
	t.variable = false
	name := t.buf.String()
	if name == "" {
		return t.errorf("expected variable name after '$'")
	}
	t.emit(VariableToken(name))
	return nil
}

func (t *tokenizer) peek(i int) (rune, bool) {
	if i+1 >= len(t.runes) {
		return 0, false
	}
	return t.runes[i+1], true
}

func (t *tokenizer) errorf(format string, args ...interface{}) *errors.DotmanError {
	return errors.Newf(errors.ErrTokenize, format, args...).
		WithDetail("text", t.line)
}
