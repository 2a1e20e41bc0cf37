package template

import (
	"sort"

	"github.com/arthur-debert/dotman/pkg/errors"
)

// Environment maps variable names to values for one batch run. Only
// assignments mutate it; the last write wins.
type Environment struct {
	vars map[string]string
}

// NewEnvironment returns an empty environment
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]string)}
}

// Get returns the value of name, or an UNDEFINED_VARIABLE error
func (e *Environment) Get(name string) (string, error) {
	value, ok := e.vars[name]
	if !ok {
		return "", errors.Newf(errors.ErrUndefinedVariable, "undefined variable $%s", name).
			WithDetail("variable", name)
	}
	return value, nil
}

// Set stores value under name, replacing any previous value
func (e *Environment) Set(name, value string) {
	e.vars[name] = value
}

// Len is the number of defined variables
func (e *Environment) Len() int {
	return len(e.vars)
}

// Names returns the defined variable names in sorted order
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluate runs expr against env. The boolean reports whether the
// expression produced text; assignments, comments and false conditionals
// produce nothing.
//
// The nested expression of an IfStatement is only evaluated when its
// condition holds, so assignments inside it have no effect otherwise.
func Evaluate(expr Expression, env *Environment) (string, bool, error) {
	switch e := expr.(type) {
	case *StringLiteral:
		return e.Text, true, nil

	case *Comment:
		return "", false, nil

	case *VariableValue:
		value, err := env.Get(e.Name)
		if err != nil {
			return "", false, err
		}
		return value, true, nil

	case *VariableAssignment:
		value, err := resolve(e.Value, env)
		if err != nil {
			return "", false, err
		}
		env.Set(e.Name, value)
		return "", false, nil

	case *IfStatement:
		holds, err := check(e.Condition, env)
		if err != nil {
			return "", false, err
		}
		if !holds {
			return "", false, nil
		}
		return Evaluate(e.Then, env)

	default:
		return "", false, errors.Newf(errors.ErrInternal, "unsupported expression %T", expr)
	}
}

func resolve(v Value, env *Environment) (string, error) {
	if v.IsVariable {
		return env.Get(v.Name)
	}
	return v.Literal, nil
}

func check(c Condition, env *Environment) (bool, error) {
	left, err := resolve(c.Left, env)
	if err != nil {
		return false, err
	}
	right, err := resolve(c.Right, env)
	if err != nil {
		return false, err
	}
	return (left == right) == c.Equal, nil
}
