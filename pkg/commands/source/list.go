package source

import (
	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
	"github.com/arthur-debert/dotman/pkg/types"
)

// ListOptions holds options for `source list`
type ListOptions struct {
	Paths paths.Paths
}

// List returns the managed files in record order
func List(opts ListOptions) (*types.SourceListResult, error) {
	logger := logging.GetLogger("commands.source")

	record, err := config.NewStore(opts.Paths).Load()
	if err != nil {
		return nil, err
	}

	result := &types.SourceListResult{
		Home:    record.HomePath,
		Sources: make([]types.SourceInfo, 0, len(record.ManagedPaths)),
	}
	for _, m := range record.ManagedPaths {
		result.Sources = append(result.Sources, types.SourceInfo{
			Source:      m.Source,
			Destination: m.Destination,
			Missing:     !paths.Exists(m.Source),
		})
	}

	logger.Debug().Int("count", len(result.Sources)).Msg("Sources listed")
	return result, nil
}
