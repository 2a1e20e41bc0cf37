// Package repo implements the `git` command group. Every command runs in
// the dotfile home recorded in dotman.toml, using the git binary, remote and
// branch from the settings table.
package repo

import (
	"context"

	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/git"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
	"github.com/arthur-debert/dotman/pkg/types"
)

// Options is shared by all git commands
type Options struct {
	Paths paths.Paths
	// Runner runs the git binary, git.NewExecRunner() outside tests
	Runner git.Runner
}

// CloneOptions holds options for `git clone`
type CloneOptions struct {
	Options
	URL string
}

// CommitOptions holds options for `git commit`
type CommitOptions struct {
	Options
	Message string
	// All stages modified tracked files before committing
	All bool
}

// RemoteOptions holds options for `git set-remote-url`
type RemoteOptions struct {
	Options
	URL string
}

type session struct {
	store  *config.Store
	record *config.Record
	client *git.Client
}

func open(opts Options, needHome bool) (*session, error) {
	store := config.NewStore(opts.Paths)
	record, err := store.Load()
	if err != nil {
		return nil, err
	}
	settings, err := store.Settings()
	if err != nil {
		return nil, err
	}

	if needHome && !paths.IsDir(record.HomePath) {
		return nil, errors.Newf(errors.ErrNotFound,
			"home directory %s does not exist, change it with `set-home`", record.HomePath).
			WithDetail("path", record.HomePath)
	}

	return &session{
		store:  store,
		record: record,
		client: git.New(opts.Runner, settings),
	}, nil
}

// Init creates a repository in the dotfile home. It refuses to run twice,
// whether the first repository was created by dotman or not.
func Init(ctx context.Context, opts Options) (*types.GitResult, error) {
	s, err := open(opts, true)
	if err != nil {
		return nil, err
	}
	home := s.record.HomePath

	if s.record.GitInit || git.IsRepository(home) {
		return nil, errors.Newf(errors.ErrGitInitialized,
			"git is already initialized in %s (FIX: set git_init = false in %s if this is wrong)", home, s.store.Path()).
			WithDetail("path", home)
	}

	if err := s.client.Init(ctx, home); err != nil {
		return nil, err
	}

	s.record.GitInit = true
	if err := s.store.Save(s.record); err != nil {
		return nil, err
	}

	logging.GetLogger("commands.repo").Info().Str("dir", home).Msg("Repository initialized")
	return &types.GitResult{Command: "init", Dir: home}, nil
}

// Clone clones a repository into the dotfile home and records its URL
func Clone(ctx context.Context, opts CloneOptions) (*types.GitResult, error) {
	s, err := open(opts.Options, false)
	if err != nil {
		return nil, err
	}
	home := s.record.HomePath

	if err := s.client.Clone(ctx, opts.URL, home); err != nil {
		return nil, err
	}

	s.record.GitInit = true
	s.record.RemoteURL = opts.URL
	if err := s.store.Save(s.record); err != nil {
		return nil, err
	}

	return &types.GitResult{Command: "clone", Dir: home}, nil
}

// Commit records a commit in the dotfile home
func Commit(ctx context.Context, opts CommitOptions) (*types.GitResult, error) {
	if opts.Message == "" {
		return nil, errors.New(errors.ErrInvalidInput, "commit message cannot be empty")
	}

	s, err := open(opts.Options, true)
	if err != nil {
		return nil, err
	}
	if err := s.client.Commit(ctx, s.record.HomePath, opts.Message, opts.All); err != nil {
		return nil, err
	}
	return &types.GitResult{Command: "commit", Dir: s.record.HomePath}, nil
}

// SetRemoteURL adds the configured remote and records its URL
func SetRemoteURL(ctx context.Context, opts RemoteOptions) (*types.GitResult, error) {
	if opts.URL == "" {
		return nil, errors.New(errors.ErrInvalidInput, "remote url cannot be empty")
	}

	s, err := open(opts.Options, true)
	if err != nil {
		return nil, err
	}

	result := &types.GitResult{Command: "set-remote-url", Dir: s.record.HomePath}
	if s.record.RemoteURL != "" && s.record.RemoteURL != opts.URL {
		result.Notices = append(result.Notices,
			types.Warn(s.record.HomePath, "Replacing previously recorded remote "+s.record.RemoteURL))
	}

	if err := s.client.AddRemote(ctx, s.record.HomePath, opts.URL); err != nil {
		return nil, err
	}

	s.record.RemoteURL = opts.URL
	if err := s.store.Save(s.record); err != nil {
		return nil, err
	}
	return result, nil
}

// Push pushes the configured branch
func Push(ctx context.Context, opts Options) (*types.GitResult, error) {
	s, err := open(opts, true)
	if err != nil {
		return nil, err
	}
	if err := s.client.Push(ctx, s.record.HomePath); err != nil {
		return nil, err
	}
	return &types.GitResult{Command: "push", Dir: s.record.HomePath}, nil
}

// Pull pulls the configured branch
func Pull(ctx context.Context, opts Options) (*types.GitResult, error) {
	s, err := open(opts, true)
	if err != nil {
		return nil, err
	}
	if err := s.client.Pull(ctx, s.record.HomePath); err != nil {
		return nil, err
	}
	return &types.GitResult{Command: "pull", Dir: s.record.HomePath}, nil
}

// Status reads the repository in the dotfile home without running git
func Status(opts Options) (*git.Status, error) {
	s, err := open(opts, true)
	if err != nil {
		return nil, err
	}
	return git.Inspect(s.record.HomePath)
}
