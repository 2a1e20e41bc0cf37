package source

import (
	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
	"github.com/arthur-debert/dotman/pkg/types"
)

// RemoveOptions holds options for `source remove`
type RemoveOptions struct {
	Paths paths.Paths
	Path  string
}

// Remove stops managing a file. The file itself and anything already
// applied from it stay untouched.
func Remove(opts RemoveOptions) (*types.ChangeResult, error) {
	logger := logging.GetLogger("commands.source")

	path, err := paths.NormalizePath(opts.Path)
	if err != nil {
		return nil, err
	}

	result := &types.ChangeResult{Command: "source remove", Paths: []string{path}}
	store := config.NewStore(opts.Paths)
	err = store.Update(func(r *config.Record) error {
		result.Changed = r.Remove(path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Changed {
		logger.Warn().Str("path", path).Msg("Path not managed")
		result.Notices = append(result.Notices, types.Warn(path, "Could not find the requested path in config"))
	}
	return result, nil
}
