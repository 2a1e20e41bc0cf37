package template

import (
	"testing"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []Token
		expected Expression
	}{
		{
			name:     "comment",
			tokens:   []Token{CommentToken()},
			expected: &Comment{},
		},
		{
			name:     "string literal",
			tokens:   []Token{StringToken("hello")},
			expected: &StringLiteral{Text: "hello"},
		},
		{
			name:     "variable value",
			tokens:   []Token{VariableToken("name")},
			expected: &VariableValue{Name: "name"},
		},
		{
			name:     "variable value with comment",
			tokens:   []Token{VariableToken("name"), CommentToken()},
			expected: &VariableValue{Name: "name"},
		},
		{
			name:     "assign literal",
			tokens:   []Token{VariableToken("a"), AssignmentToken(), StringToken("x")},
			expected: &VariableAssignment{Name: "a", Value: LiteralValue("x")},
		},
		{
			name:     "assign variable",
			tokens:   []Token{VariableToken("a"), AssignmentToken(), VariableToken("b")},
			expected: &VariableAssignment{Name: "a", Value: VariableRef("b")},
		},
		{
			name: "conditional",
			tokens: []Token{
				IfToken(), VariableToken("a"), ConditionToken(false), StringToken("x"),
				StringToken("yes"),
			},
			expected: &IfStatement{
				Condition: IsNotEqual(VariableRef("a"), LiteralValue("x")),
				Then:      &StringLiteral{Text: "yes"},
			},
		},
		{
			name: "conditional assignment",
			tokens: []Token{
				IfToken(), StringToken("test"), ConditionToken(true), StringToken("test"),
				VariableToken("test"), AssignmentToken(), StringToken("success"),
			},
			expected: &IfStatement{
				Condition: IsEqual(LiteralValue("test"), LiteralValue("test")),
				Then:      &VariableAssignment{Name: "test", Value: LiteralValue("success")},
			},
		},
		{
			name: "nested conditional",
			tokens: []Token{
				IfToken(), VariableToken("a"), ConditionToken(true), StringToken("1"),
				IfToken(), VariableToken("b"), ConditionToken(true), StringToken("2"),
				StringToken("both"), CommentToken(),
			},
			expected: &IfStatement{
				Condition: IsEqual(VariableRef("a"), LiteralValue("1")),
				Then: &IfStatement{
					Condition: IsEqual(VariableRef("b"), LiteralValue("2")),
					Then:      &StringLiteral{Text: "both"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, expr)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []Token
		message string
	}{
		{
			name:    "no tokens",
			tokens:  nil,
			message: "no tokens provided",
		},
		{
			name:    "leading assignment",
			tokens:  []Token{AssignmentToken(), StringToken("x")},
			message: "can not start an expression",
		},
		{
			name:    "leading condition",
			tokens:  []Token{ConditionToken(true), StringToken("x")},
			message: "can not start an expression",
		},
		{
			name:    "variable followed by string",
			tokens:  []Token{VariableToken("a"), StringToken("x")},
			message: "expected assignment operator",
		},
		{
			name:    "assignment without value",
			tokens:  []Token{VariableToken("a"), AssignmentToken()},
			message: "missing variable or string literal",
		},
		{
			name:    "assignment of keyword",
			tokens:  []Token{VariableToken("a"), AssignmentToken(), IfToken()},
			message: "expected variable or string literal",
		},
		{
			name:    "bare if",
			tokens:  []Token{IfToken()},
			message: "missing variable or string literal after if",
		},
		{
			name:    "if without comparison",
			tokens:  []Token{IfToken(), StringToken("a")},
			message: "missing comparison operator and value",
		},
		{
			name:    "if with wrong operator",
			tokens:  []Token{IfToken(), StringToken("a"), AssignmentToken(), StringToken("b")},
			message: "expected comparison",
		},
		{
			name:    "if without right value",
			tokens:  []Token{IfToken(), StringToken("a"), ConditionToken(true)},
			message: "missing variable or string literal after comparison",
		},
		{
			name:    "if without expression",
			tokens:  []Token{IfToken(), StringToken("a"), ConditionToken(true), StringToken("a")},
			message: "missing expression",
		},
		{
			name:    "trailing tokens",
			tokens:  []Token{StringToken("a"), StringToken("b")},
			message: "unexpected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.tokens)
			require.Error(t, err)
			assert.Nil(t, expr)
			assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParse_FromTokenizer(t *testing.T) {
	tokens, err := Tokenize(`if $os != "darwin" $open = "xdg-open"`)
	require.NoError(t, err)

	expr, err := Parse(tokens)
	require.NoError(t, err)
	assert.Equal(t, `if $os != "darwin" $open = "xdg-open"`, expr.String())
}
