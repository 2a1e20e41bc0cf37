package sethome

import (
	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
	"github.com/arthur-debert/dotman/pkg/types"
)

// SetHomeOptions holds options for the set-home command
type SetHomeOptions struct {
	Paths paths.Paths
	// Path is the new dotfile home. It does not have to exist yet.
	Path string
}

// SetHome points the record at a new dotfile home. The git_init flag is
// reset since the new home may not be a repository.
func SetHome(opts SetHomeOptions) (*types.ChangeResult, error) {
	logger := logging.GetLogger("commands.sethome")

	home, err := paths.NormalizePath(opts.Path)
	if err != nil {
		return nil, err
	}

	result := &types.ChangeResult{Command: "set-home", Paths: []string{home}}
	if !paths.IsDir(home) {
		logger.Warn().Str("path", home).Msg("New home directory does not exist")
		result.Notices = append(result.Notices, types.Warn(home, "The provided path does not exist"))
	}

	store := config.NewStore(opts.Paths)
	err = store.Update(func(r *config.Record) error {
		r.HomePath = home
		r.GitInit = false
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Changed = true
	logger.Info().Str("home", home).Msg("Home directory changed")
	return result, nil
}
