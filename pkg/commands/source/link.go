package source

import (
	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
	"github.com/arthur-debert/dotman/pkg/types"
)

const notManagedMessage = "The config was not changed. The provided path is not managed, add it by using `source add`"

// LinkOptions holds options for `source link`
type LinkOptions struct {
	Paths       paths.Paths
	Source      string
	Destination string
}

// Link sets where apply writes a managed file. The source must exist and
// the destination must not.
func Link(opts LinkOptions) (*types.ChangeResult, error) {
	logger := logging.GetLogger("commands.source")

	source, err := paths.NormalizePath(opts.Source)
	if err != nil {
		return nil, err
	}
	destination, err := paths.NormalizePath(opts.Destination)
	if err != nil {
		return nil, err
	}

	if !paths.Exists(source) {
		return nil, errors.Newf(errors.ErrFileNotFound, "source %s does not exist", source).
			WithDetail("path", source)
	}
	if paths.Exists(destination) {
		return nil, errors.Newf(errors.ErrFileExists, "destination %s already exists", destination).
			WithDetail("path", destination)
	}

	result := &types.ChangeResult{Command: "source link", Paths: []string{source, destination}}
	var previous string
	err = config.NewStore(opts.Paths).Update(func(r *config.Record) error {
		p, linkErr := r.Link(source, destination)
		previous = p
		return linkErr
	})
	switch {
	case errors.IsErrorCode(err, errors.ErrSourceNotManaged):
		logger.Warn().Str("source", source).Msg("Source not managed")
		result.Notices = append(result.Notices, types.Warn(source, notManagedMessage))
		return result, nil
	case err != nil:
		return nil, err
	}

	result.Changed = true
	if previous != "" && previous != destination {
		logger.Warn().
			Str("source", source).
			Str("previous", previous).
			Str("destination", destination).
			Msg("Link replaced")
		result.Notices = append(result.Notices, types.Warn(source,
			"Source file already had a link that now changed (was "+previous+")"))
	}

	logger.Info().Str("source", source).Str("destination", destination).Msg("Source linked")
	return result, nil
}

// UnlinkOptions holds options for `source unlink`
type UnlinkOptions struct {
	Paths paths.Paths
	Path  string
}

// Unlink clears the destination of a managed file, turning it back into a
// file that is only evaluated
func Unlink(opts UnlinkOptions) (*types.ChangeResult, error) {
	logger := logging.GetLogger("commands.source")

	source, err := paths.NormalizePath(opts.Path)
	if err != nil {
		return nil, err
	}

	result := &types.ChangeResult{Command: "source unlink", Paths: []string{source}}
	err = config.NewStore(opts.Paths).Update(func(r *config.Record) error {
		result.Changed = r.Unlink(source)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Changed {
		logger.Warn().Str("source", source).Msg("Source not managed")
		result.Notices = append(result.Notices, types.Warn(source, notManagedMessage))
	}
	return result, nil
}
