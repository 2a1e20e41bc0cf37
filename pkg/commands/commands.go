// Package commands provides the command implementations behind the dotman
// CLI.
//
// Each command group lives in its own subdirectory:
//   - sethome/ - SetHome command
//   - source/  - Add, List, Remove, Link and Unlink of managed files
//   - apply/   - Apply command, rendering and writing managed files
//   - render/  - Render command, a preview of a single file
//   - repo/    - the git command group
//
// This file re-exports them so the CLI depends on a single package.
package commands

import (
	"context"

	"github.com/arthur-debert/dotman/pkg/commands/apply"
	"github.com/arthur-debert/dotman/pkg/commands/render"
	"github.com/arthur-debert/dotman/pkg/commands/repo"
	"github.com/arthur-debert/dotman/pkg/commands/sethome"
	"github.com/arthur-debert/dotman/pkg/commands/source"
	"github.com/arthur-debert/dotman/pkg/git"
	"github.com/arthur-debert/dotman/pkg/types"
)

// SetHome points the record at a new dotfile home.
type SetHomeOptions = sethome.SetHomeOptions

func SetHome(opts SetHomeOptions) (*types.ChangeResult, error) {
	return sethome.SetHome(opts)
}

// AddSource starts managing a file or every file below a directory.
type AddSourceOptions = source.AddOptions

func AddSource(opts AddSourceOptions) (*types.ChangeResult, error) {
	return source.Add(opts)
}

// ListSources returns the managed files in record order.
type ListSourcesOptions = source.ListOptions

func ListSources(opts ListSourcesOptions) (*types.SourceListResult, error) {
	return source.List(opts)
}

// RemoveSource stops managing a file.
type RemoveSourceOptions = source.RemoveOptions

func RemoveSource(opts RemoveSourceOptions) (*types.ChangeResult, error) {
	return source.Remove(opts)
}

// LinkSource sets the destination of a managed file.
type LinkSourceOptions = source.LinkOptions

func LinkSource(opts LinkSourceOptions) (*types.ChangeResult, error) {
	return source.Link(opts)
}

// UnlinkSource clears the destination of a managed file.
type UnlinkSourceOptions = source.UnlinkOptions

func UnlinkSource(opts UnlinkSourceOptions) (*types.ChangeResult, error) {
	return source.Unlink(opts)
}

// Apply renders every managed file and writes linked ones.
type ApplyOptions = apply.ApplyOptions

func Apply(ctx context.Context, opts ApplyOptions) (*types.ApplyResult, error) {
	return apply.Apply(ctx, opts)
}

// Render previews a single file.
type RenderOptions = render.RenderOptions

func Render(opts RenderOptions) (*types.RenderResult, error) {
	return render.Render(opts)
}

// Git commands run in the dotfile home.
type (
	GitOptions       = repo.Options
	GitCloneOptions  = repo.CloneOptions
	GitCommitOptions = repo.CommitOptions
	GitRemoteOptions = repo.RemoteOptions
)

func GitInit(ctx context.Context, opts GitOptions) (*types.GitResult, error) {
	return repo.Init(ctx, opts)
}

func GitClone(ctx context.Context, opts GitCloneOptions) (*types.GitResult, error) {
	return repo.Clone(ctx, opts)
}

func GitCommit(ctx context.Context, opts GitCommitOptions) (*types.GitResult, error) {
	return repo.Commit(ctx, opts)
}

func GitSetRemoteURL(ctx context.Context, opts GitRemoteOptions) (*types.GitResult, error) {
	return repo.SetRemoteURL(ctx, opts)
}

func GitPush(ctx context.Context, opts GitOptions) (*types.GitResult, error) {
	return repo.Push(ctx, opts)
}

func GitPull(ctx context.Context, opts GitOptions) (*types.GitResult, error) {
	return repo.Pull(ctx, opts)
}

func GitStatus(opts GitOptions) (*git.Status, error) {
	return repo.Status(opts)
}
