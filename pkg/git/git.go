package git

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/rs/zerolog"
)

// Runner executes external programs
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
	LookPath(name string) (string, error)
}

// ExecRunner runs programs as child processes wired to the given streams
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner attached to the process's own streams,
// so git can prompt for credentials
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run starts name in dir and waits for it
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// LookPath resolves name through $PATH
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Client drives the git binary for the dotfile home
type Client struct {
	runner Runner
	binary string
	remote string
	branch string
	logger zerolog.Logger
}

// New creates a client using the binary, remote and branch from settings
func New(runner Runner, settings *config.Settings) *Client {
	return &Client{
		runner: runner,
		binary: settings.GitBinary,
		remote: settings.RemoteName,
		branch: settings.Branch,
		logger: logging.GetLogger("git"),
	}
}

// Remote is the remote name used by AddRemote, Push and Pull
func (c *Client) Remote() string {
	return c.remote
}

// Check fails with GIT_NOT_FOUND when the binary can not be resolved
func (c *Client) Check() error {
	path, err := c.runner.LookPath(c.binary)
	if err != nil {
		return errors.Wrapf(err, errors.ErrGitNotFound, "`%s` command not found, please install it", c.binary).
			WithDetail("binary", c.binary)
	}
	c.logger.Trace().Str("path", path).Msg("git binary resolved")
	return nil
}

// Init creates a repository in dir
func (c *Client) Init(ctx context.Context, dir string) error {
	return c.run(ctx, dir, "init")
}

// Clone clones url into dir. The parent of dir must exist.
func (c *Client) Clone(ctx context.Context, url, dir string) error {
	return c.run(ctx, filepath.Dir(dir), "clone", url, dir)
}

// Commit records a commit in dir. With all set, modified tracked files are
// staged first.
func (c *Client) Commit(ctx context.Context, dir, message string, all bool) error {
	args := []string{"commit"}
	if all {
		args = append(args, "--all")
	}
	args = append(args, "-m", message)
	return c.run(ctx, dir, args...)
}

// AddRemote registers url under the configured remote name
func (c *Client) AddRemote(ctx context.Context, dir, url string) error {
	return c.run(ctx, dir, "remote", "add", c.remote, url)
}

// Push pushes the configured branch to the configured remote
func (c *Client) Push(ctx context.Context, dir string) error {
	return c.run(ctx, dir, "push", c.remote, c.branch)
}

// Pull pulls the configured branch from the configured remote
func (c *Client) Pull(ctx context.Context, dir string) error {
	return c.run(ctx, dir, "pull", c.remote, c.branch)
}

func (c *Client) run(ctx context.Context, dir string, args ...string) error {
	if err := c.Check(); err != nil {
		return err
	}

	c.logger.Debug().
		Str("dir", dir).
		Strs("args", args).
		Msg("Running git")

	if err := c.runner.Run(ctx, dir, c.binary, args...); err != nil {
		return errors.Wrapf(err, errors.ErrGitCommand, "git %s failed", args[0]).
			WithDetail("args", strings.Join(args, " ")).
			WithDetail("dir", dir)
	}
	return nil
}
