package template

import "fmt"

// Value is an operand: either a variable reference resolved through the
// environment, or a literal.
type Value struct {
	// Name is set for variable references
	Name string
	// Literal is set for constants
	Literal    string
	IsVariable bool
}

// VariableRef references a variable by name
func VariableRef(name string) Value {
	return Value{Name: name, IsVariable: true}
}

// LiteralValue wraps a constant string
func LiteralValue(text string) Value {
	return Value{Literal: text}
}

func (v Value) String() string {
	if v.IsVariable {
		return "$" + v.Name
	}
	return fmt.Sprintf("%q", v.Literal)
}

// Condition compares two values as plain strings
type Condition struct {
	Left  Value
	Right Value
	// Equal selects `==`; otherwise the condition is `!=`
	Equal bool
}

// IsEqual builds a `left == right` condition
func IsEqual(left, right Value) Condition {
	return Condition{Left: left, Right: right, Equal: true}
}

// IsNotEqual builds a `left != right` condition
func IsNotEqual(left, right Value) Condition {
	return Condition{Left: left, Right: right}
}

func (c Condition) String() string {
	op := "!="
	if c.Equal {
		op = "=="
	}
	return fmt.Sprintf("%s %s %s", c.Left, op, c.Right)
}

// Expression is the parsed form of one line. The concrete types are
// VariableAssignment, VariableValue, StringLiteral, IfStatement and Comment.
type Expression interface {
	expressionNode()
	String() string
}

// VariableAssignment stores Value under Name
type VariableAssignment struct {
	Name  string
	Value Value
}

// VariableValue produces the current value of a variable
type VariableValue struct {
	Name string
}

// StringLiteral produces its text unchanged
type StringLiteral struct {
	Text string
}

// IfStatement evaluates Then only when Condition holds. Then is owned by
// the statement; trees are built per line and never shared.
type IfStatement struct {
	Condition Condition
	Then      Expression
}

// Comment produces nothing
type Comment struct{}

func (*VariableAssignment) expressionNode() {}
func (*VariableValue) expressionNode()      {}
func (*StringLiteral) expressionNode()      {}
func (*IfStatement) expressionNode()        {}
func (*Comment) expressionNode()            {}

func (e *VariableAssignment) String() string { return fmt.Sprintf("$%s = %s", e.Name, e.Value) }
func (e *VariableValue) String() string      { return "$" + e.Name }
func (e *StringLiteral) String() string      { return fmt.Sprintf("%q", e.Text) }
func (e *IfStatement) String() string        { return fmt.Sprintf("if %s %s", e.Condition, e.Then) }
func (e *Comment) String() string            { return "//" }
