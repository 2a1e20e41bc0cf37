package source

import (
	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
	"github.com/arthur-debert/dotman/pkg/types"
)

// AddOptions holds options for `source add`
type AddOptions struct {
	Paths paths.Paths
	// Path is a file, or a directory whose files are all added
	Path string
}

// Add starts managing a file, or every file below a directory in lexical
// order. Nothing is added when any of them is already managed.
func Add(opts AddOptions) (*types.ChangeResult, error) {
	logger := logging.GetLogger("commands.source")

	path, err := paths.NormalizePath(opts.Path)
	if err != nil {
		return nil, err
	}
	if !paths.Exists(path) {
		return nil, errors.Newf(errors.ErrFileNotFound, "%s does not exist", path).
			WithDetail("path", path)
	}

	sources := []string{path}
	if paths.IsDir(path) {
		sources, err = paths.ListFiles(path)
		if err != nil {
			return nil, err
		}
	}

	result := &types.ChangeResult{Command: "source add", Paths: sources}
	if len(sources) == 0 {
		result.Notices = append(result.Notices, types.Warn(path, "The directory has no files to add"))
		return result, nil
	}

	store := config.NewStore(opts.Paths)
	err = store.Update(func(r *config.Record) error {
		if err := r.Add(sources...); err != nil {
			return errors.Wrap(err, errors.ErrSourceDuplicate,
				"a config with the same path is already managed, use `source list` to see managed configs").
				WithDetail("source", errors.GetErrorDetails(err)["source"])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Changed = true
	logger.Info().Str("path", path).Int("count", len(sources)).Msg("Sources added")
	return result, nil
}
