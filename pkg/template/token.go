package template

import "fmt"

// TokenKind identifies the lexical class of a Token
type TokenKind int

const (
	// TokenVariable is a `$name` reference or assignment target
	TokenVariable TokenKind = iota
	// TokenString is a double-quoted literal with the quotes removed
	TokenString
	// TokenIf is the bare keyword `if`
	TokenIf
	// TokenAssignment is a single `=`
	TokenAssignment
	// TokenCondition is `==` or `!=`
	TokenCondition
	// TokenComment is `//`; nothing after it is tokenized
	TokenComment
)

// Token is one lexical unit of a line. Tokens are never mutated after
// the tokenizer creates them.
type Token struct {
	Kind TokenKind
	// Text holds the variable name or the string literal
	Text string
	// Equal is true for `==` and false for `!=`
	Equal bool
}

// VariableToken returns a variable reference token
func VariableToken(name string) Token {
	return Token{Kind: TokenVariable, Text: name}
}

// StringToken returns a string literal token
func StringToken(text string) Token {
	return Token{Kind: TokenString, Text: text}
}

// IfToken returns the `if` keyword token
func IfToken() Token {
	return Token{Kind: TokenIf}
}

// AssignmentToken returns the `=` token
func AssignmentToken() Token {
	return Token{Kind: TokenAssignment}
}

// ConditionToken returns `==` when equal is true, `!=` otherwise
func ConditionToken(equal bool) Token {
	return Token{Kind: TokenCondition, Equal: equal}
}

// CommentToken returns the `//` token
func CommentToken() Token {
	return Token{Kind: TokenComment}
}

// String renders the token close to its surface syntax, for error messages
func (t Token) String() string {
	switch t.Kind {
	case TokenVariable:
		return "$" + t.Text
	case TokenString:
		return fmt.Sprintf("%q", t.Text)
	case TokenIf:
		return "if"
	case TokenAssignment:
		return "="
	case TokenCondition:
		if t.Equal {
			return "=="
		}
		return "!="
	case TokenComment:
		return "//"
	default:
		return fmt.Sprintf("token(%d)", int(t.Kind))
	}
}
