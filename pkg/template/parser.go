package template

import (
	"github.com/arthur-debert/dotman/pkg/errors"
)

// Parse builds the Expression for one line's tokens. The first token
// selects the production:
//
//	//                          comment
//	"text"                      string literal
//	$name                       variable value
//	$name = "text" | $other     assignment
//	if VALUE (==|!=) VALUE EXPR conditional, EXPR parsed from the rest
//
// A trailing comment is allowed after any complete expression; any other
// leftover token is an error.
func Parse(tokens []Token) (Expression, error) {
	if len(tokens) == 0 {
		return nil, errors.New(errors.ErrParse, "no tokens provided")
	}

	p := &parser{tokens: tokens}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if tok, ok := p.next(); ok && tok.Kind != TokenComment {
		return nil, p.errorf("unexpected %s after %s", tok, expr)
	}

	return expr, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) next() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

func (p *parser) parseExpression() (Expression, error) {
	tok, ok := p.next()
	if !ok {
		return nil, p.errorf("no tokens provided")
	}

	switch tok.Kind {
	case TokenComment:
		// the tokenizer never emits anything after a comment
		return &Comment{}, nil

	case TokenString:
		return &StringLiteral{Text: tok.Text}, nil

	case TokenVariable:
		return p.parseVariable(tok.Text)

	case TokenIf:
		return p.parseIf()

	case TokenAssignment:
		return nil, p.errorf("assignment operator can not start an expression")

	case TokenCondition:
		return nil, p.errorf("comparison operator %s can not start an expression", tok)

	default:
		return nil, p.errorf("unknown token %s", tok)
	}
}

// parseVariable handles `$name` and `$name = value`
func (p *parser) parseVariable(name string) (Expression, error) {
	tok, ok := p.next()
	if !ok {
		return &VariableValue{Name: name}, nil
	}

	switch tok.Kind {
	case TokenAssignment:
	case TokenComment:
		p.pos--
		return &VariableValue{Name: name}, nil
	default:
		return nil, p.errorf("expected assignment operator after $%s, found %s", name, tok)
	}

	value, err := p.parseValue("assignment to $" + name)
	if err != nil {
		return nil, err
	}

	return &VariableAssignment{Name: name, Value: value}, nil
}

// parseIf handles `if VALUE COND VALUE EXPR`
func (p *parser) parseIf() (Expression, error) {
	left, err := p.parseValue("if")
	if err != nil {
		return nil, err
	}

	tok, ok := p.next()
	if !ok {
		return nil, p.errorf("missing comparison operator and value after if %s", left)
	}
	if tok.Kind != TokenCondition {
		return nil, p.errorf("expected comparison after if %s, found %s", left, tok)
	}

	right, err := p.parseValue("comparison " + tok.String())
	if err != nil {
		return nil, err
	}

	cond := IsNotEqual(left, right)
	if tok.Equal {
		cond = IsEqual(left, right)
	}

	if p.pos >= len(p.tokens) {
		return nil, p.errorf("missing expression after condition %s", cond)
	}

	then, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &IfStatement{Condition: cond, Then: then}, nil
}

// parseValue reads a string literal or variable reference; after names the
// construct that needs it, for error messages
func (p *parser) parseValue(after string) (Value, error) {
	tok, ok := p.next()
	if !ok {
		return Value{}, p.errorf("missing variable or string literal after %s", after)
	}

	switch tok.Kind {
	case TokenString:
		return LiteralValue(tok.Text), nil
	case TokenVariable:
		return VariableRef(tok.Text), nil
	default:
		return Value{}, p.errorf("expected variable or string literal after %s, found %s", after, tok)
	}
}

func (p *parser) errorf(format string, args ...interface{}) *errors.DotmanError {
	return errors.Newf(errors.ErrParse, format, args...).
		WithDetail("position", p.pos)
}
