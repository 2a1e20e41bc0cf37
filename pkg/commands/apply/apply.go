package apply

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
	"github.com/arthur-debert/dotman/pkg/synthfs"
	"github.com/arthur-debert/dotman/pkg/template"
	"github.com/arthur-debert/dotman/pkg/types"
	"github.com/rs/zerolog"
)

// ApplyOptions holds options for the apply command
type ApplyOptions struct {
	Paths paths.Paths
	// DryRun renders everything but writes nothing, not even the record
	DryRun bool
}

// queued is a managed file that takes part in the batch
type queued struct {
	index int
	entry config.ManagedPath
}

// Apply renders every managed file and writes linked ones to their
// destinations.
//
// Files are queued in record order. Unlinked files with the source
// extension are evaluated in source mode, so their assignments are visible
// to every linked file listed after them. Files that can not take part
// (missing, empty, already applied, unlinked plain files) are skipped with
// a warning. A template error aborts the whole run before anything is
// written.
func Apply(ctx context.Context, opts ApplyOptions) (*types.ApplyResult, error) {
	logger := logging.GetLogger("commands.apply")
	defer logging.LogOperationStart(logger, "apply")()

	store := config.NewStore(opts.Paths)
	record, err := store.Load()
	if err != nil {
		return nil, err
	}
	settings, err := store.Settings()
	if err != nil {
		return nil, err
	}

	result := &types.ApplyResult{
		DryRun: opts.DryRun,
		Files:  make([]types.AppliedFile, 0, len(record.ManagedPaths)),
	}

	var batch []template.File
	var entries []queued
	for _, m := range record.ManagedPaths {
		file := types.AppliedFile{Source: m.Source, Destination: m.Destination}

		content, reason := readSource(m.Source)
		switch {
		case reason != "":
		case m.HasDestination() && paths.Exists(m.Destination):
			reason = "destination already exists"
		case !m.HasDestination() && filepath.Ext(m.Source) != settings.SourceExtension:
			reason = "has no link location"
		}

		if reason != "" {
			file.Status = types.FileSkipped
			file.Reason = reason
			result.Notices = append(result.Notices, types.Warn(m.Source, "Skipped: "+reason))
			logger.Warn().Str("source", m.Source).Str("reason", reason).Msg("Skipping managed file")
			result.Files = append(result.Files, file)
			continue
		}

		batch = append(batch, template.File{
			Name:     m.Source,
			Content:  content,
			IsSource: !m.HasDestination(),
		})
		entries = append(entries, queued{index: len(result.Files), entry: m})
		result.Files = append(result.Files, file)
	}

	logger.Debug().Int("queued", len(batch)).Int("managed", len(record.ManagedPaths)).Msg("Batch assembled")

	rendered, err := template.NewEngine().RenderAll(batch)
	if err != nil {
		return nil, err
	}

	executor := synthfs.NewSynthfsExecutor(opts.DryRun)
	created, err := executor.EnsureDir(ctx, opts.Paths.DataDir())
	if err != nil {
		return nil, err
	}
	if created && !opts.DryRun {
		result.Notices = append(result.Notices,
			types.Warn(opts.Paths.DataDir(), "Data directory did not exist and was created"))
	}

	var ops []synthfs.Operation
	var written []string
	for i, q := range entries {
		file := &result.Files[q.index]
		if !q.entry.HasDestination() {
			file.Status = types.FileEvaluated
			continue
		}
		ops = append(ops, synthfs.WriteFile(q.entry.Destination, rendered[i]))
		written = append(written, q.entry.Destination)
		if opts.DryRun {
			file.Status = types.FilePlanned
		} else {
			file.Status = types.FileWritten
		}
	}

	if err := executor.Execute(ctx, ops); err != nil {
		return nil, err
	}

	result.Timestamp = time.Now()
	if opts.DryRun || len(written) == 0 {
		logApply(logger, result)
		return result, nil
	}

	record.MarkApplied(written...)
	if err := store.Save(record); err != nil {
		return nil, err
	}

	logApply(logger, result)
	return result, nil
}

// readSource returns the content of a managed file, or why it is skipped
func readSource(path string) (string, string) {
	if !paths.Exists(path) {
		return "", "source does not exist"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "source can not be read"
	}
	if len(data) == 0 {
		return "", "source is empty"
	}
	return string(data), ""
}

func logApply(logger zerolog.Logger, result *types.ApplyResult) {
	logger.Info().
		Str("command", "apply").
		Bool("dryRun", result.DryRun).
		Int("written", result.Count(types.FileWritten)).
		Int("planned", result.Count(types.FilePlanned)).
		Int("evaluated", result.Count(types.FileEvaluated)).
		Int("skipped", result.Count(types.FileSkipped)).
		Msg("Apply command completed")
}
