package render

import (
	"os"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
	"github.com/arthur-debert/dotman/pkg/template"
	"github.com/arthur-debert/dotman/pkg/types"
	"github.com/spf13/afero"
)

// RenderOptions holds options for the render command
type RenderOptions struct {
	// Path is the file to render
	Path string
	// Source evaluates Path in source mode instead of template mode
	Source bool
	// With lists source files evaluated before Path in the same batch
	With []string
	// FS is where files are read from, the OS file system when nil
	FS afero.Fs
}

// Render previews a single file without touching the record or any
// destination
func Render(opts RenderOptions) (*types.RenderResult, error) {
	logger := logging.GetLogger("commands.render")

	fsys := opts.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	files := make([]template.File, 0, len(opts.With)+1)
	for _, with := range opts.With {
		file, err := load(fsys, with, true)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	target, err := load(fsys, opts.Path, opts.Source)
	if err != nil {
		return nil, err
	}
	files = append(files, target)

	engine := template.NewEngine()
	rendered, err := engine.RenderAll(files)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", target.Name).
		Int("with", len(opts.With)).
		Int("variables", engine.Environment().Len()).
		Msg("File rendered")

	return &types.RenderResult{
		Path:      target.Name,
		Content:   rendered[len(rendered)-1],
		Variables: engine.Environment().Names(),
	}, nil
}

func load(fsys afero.Fs, path string, isSource bool) (template.File, error) {
	normalized, err := paths.NormalizePath(path)
	if err != nil {
		return template.File{}, err
	}

	data, err := afero.ReadFile(fsys, normalized)
	if err != nil {
		if os.IsNotExist(err) {
			return template.File{}, errors.Wrapf(err, errors.ErrFileNotFound, "%s does not exist", normalized).
				WithDetail("path", normalized)
		}
		return template.File{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", normalized).
			WithDetail("path", normalized)
	}

	return template.File{Name: normalized, Content: string(data), IsSource: isSource}, nil
}
