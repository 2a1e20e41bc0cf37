package testutil

import (
	"context"
	"os/exec"
	"strings"
)

// Call is one recorded invocation of a FakeRunner
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as a command line
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// FakeRunner records commands instead of running them. It satisfies the
// runner interface of pkg/git.
type FakeRunner struct {
	Calls []Call
	// Missing makes LookPath fail
	Missing bool
	// Errors maps the first argument (for example "push") to the error Run
	// returns for it
	Errors map[string]error
}

// Run records the call
func (f *FakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.Calls = append(f.Calls, Call{Dir: dir, Name: name, Args: append([]string(nil), args...)})
	if len(args) > 0 && f.Errors != nil {
		return f.Errors[args[0]]
	}
	return nil
}

// LookPath pretends the binary lives in /usr/bin
func (f *FakeRunner) LookPath(name string) (string, error) {
	if f.Missing {
		return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return "/usr/bin/" + name, nil
}

// Commands returns the recorded calls as command lines
func (f *FakeRunner) Commands() []string {
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = c.String()
	}
	return out
}
