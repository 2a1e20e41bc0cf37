package synthfs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"
)

// OperationType names what an Operation does to the file system
type OperationType string

const (
	OperationCreateDir OperationType = "create_dir"
	OperationWriteFile OperationType = "write_file"
)

// Operation is a single file system change
type Operation struct {
	Type    OperationType
	Target  string
	Content string
	Mode    os.FileMode
}

// WriteFile returns an operation creating target with content
func WriteFile(target, content string) Operation {
	return Operation{Type: OperationWriteFile, Target: target, Content: content, Mode: 0644}
}

// CreateDir returns an operation creating the directory target
func CreateDir(target string) Operation {
	return Operation{Type: OperationCreateDir, Target: target, Mode: 0755}
}

// protectedPaths are relative to the home directory and never written
var protectedPaths = []string{
	".ssh/authorized_keys",
	".ssh/id_rsa",
	".ssh/id_ed25519",
	".gnupg",
	".password-store",
	".aws/credentials",
	".kube/config",
}

// SynthfsExecutor runs operations through a synthfs pipeline. It creates
// files and directories but never replaces anything that already exists.
type SynthfsExecutor struct {
	logger     zerolog.Logger
	dryRun     bool
	filesystem synthfs.FileSystem
}

// NewSynthfsExecutor returns an executor on the root file system. In dry run
// mode operations are validated and logged but not run.
func NewSynthfsExecutor(dryRun bool) *SynthfsExecutor {
	return &SynthfsExecutor{
		logger:     logging.GetLogger("synthfs"),
		dryRun:     dryRun,
		filesystem: filesystem.NewOSFileSystem("/"),
	}
}

// DryRun reports whether the executor only logs
func (e *SynthfsExecutor) DryRun() bool {
	return e.dryRun
}

// EnsureDir creates dir and its missing parents. It reports whether
// anything had to be created.
func (e *SynthfsExecutor) EnsureDir(ctx context.Context, dir string) (bool, error) {
	if paths.IsDir(dir) {
		return false, nil
	}
	if paths.Exists(dir) {
		return false, errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", dir).
			WithDetail("path", dir)
	}
	if err := e.Execute(ctx, []Operation{CreateDir(dir)}); err != nil {
		return false, err
	}
	return true, nil
}

// Execute validates ops and runs them in order. Missing parent directories
// of every target are created first. Nothing is run when any write target
// already exists or is protected.
func (e *SynthfsExecutor) Execute(ctx context.Context, ops []Operation) error {
	if err := e.validate(ops); err != nil {
		return err
	}

	planned := e.plan(ops)
	if len(planned) == 0 {
		e.logger.Debug().Msg("No operations to execute")
		return nil
	}

	if e.dryRun {
		e.logger.Info().Msg("Dry run mode - operations would be executed:")
		for _, op := range planned {
			e.logOperation(op)
		}
		return nil
	}

	pipeline := synthfs.NewMemPipeline()
	for _, op := range planned {
		synthOp, err := e.convert(op)
		if err != nil {
			return err
		}
		if err := pipeline.Add(synthOp); err != nil {
			return errors.Wrapf(err, codeFor(op), "failed to queue %s", op.Target).
				WithDetail("path", op.Target)
		}
	}

	e.logger.Debug().Int("operationCount", len(planned)).Msg("Executing operations")

	result := synthfs.NewExecutor().Run(ctx, pipeline, e.filesystem)
	if err := result.GetError(); err != nil {
		e.logger.Error().Err(err).Msg("Pipeline execution failed")
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write files")
	}

	e.logger.Info().Int("operationCount", len(planned)).Msg("All operations executed successfully")
	return nil
}

func (e *SynthfsExecutor) validate(ops []Operation) error {
	seen := make(map[string]bool, len(ops))
	for _, op := range ops {
		if op.Target == "" || !filepath.IsAbs(op.Target) {
			return errors.Newf(errors.ErrInvalidInput, "%s operation requires an absolute target, got %q", op.Type, op.Target)
		}
		if err := e.validateNotProtected(op.Target); err != nil {
			return err
		}
		if op.Type != OperationWriteFile {
			continue
		}
		if seen[op.Target] {
			return errors.Newf(errors.ErrFileExists, "%s is written more than once", op.Target).
				WithDetail("path", op.Target)
		}
		seen[op.Target] = true
		if paths.Exists(op.Target) {
			return errors.Newf(errors.ErrFileExists, "%s already exists, refusing to overwrite it", op.Target).
				WithDetail("path", op.Target)
		}
	}
	return nil
}

// plan expands ops with the missing parent directories of each target and
// drops directories that already exist
func (e *SynthfsExecutor) plan(ops []Operation) []Operation {
	queued := make(map[string]bool)
	var planned []Operation

	queueDir := func(dir string, mode os.FileMode) {
		var missing []string
		for d := dir; !queued[d] && !paths.Exists(d); d = filepath.Dir(d) {
			missing = append(missing, d)
			if d == filepath.Dir(d) {
				break
			}
		}
		sort.Slice(missing, func(i, j int) bool { return len(missing[i]) < len(missing[j]) })
		for _, d := range missing {
			queued[d] = true
			planned = append(planned, Operation{Type: OperationCreateDir, Target: d, Mode: mode})
		}
	}

	for _, op := range ops {
		switch op.Type {
		case OperationCreateDir:
			queueDir(op.Target, op.Mode)
		case OperationWriteFile:
			queueDir(filepath.Dir(op.Target), 0755)
			planned = append(planned, op)
		}
	}
	return planned
}

func (e *SynthfsExecutor) convert(op Operation) (synthfs.Operation, error) {
	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", op.Target)
	}

	e.logger.Debug().
		Str("type", string(op.Type)).
		Str("target", op.Target).
		Str("mode", op.Mode.String()).
		Msg("Creating synthfs operation")

	switch op.Type {
	case OperationCreateDir:
		createOp := operations.NewCreateDirectoryOperation(core.OperationID(fmt.Sprintf("create-dir-%s", op.Target)), relPath)
		createOp.SetItem(&directoryItem{path: relPath, mode: op.Mode})
		return synthfs.NewOperationsPackageAdapter(createOp), nil
	case OperationWriteFile:
		createOp := operations.NewCreateFileOperation(core.OperationID(fmt.Sprintf("write-file-%s", op.Target)), relPath)
		createOp.SetItem(&fileItem{path: relPath, content: []byte(op.Content), mode: op.Mode})
		return synthfs.NewOperationsPackageAdapter(createOp), nil
	default:
		return nil, errors.Newf(errors.ErrInternal, "unsupported operation type: %s", op.Type)
	}
}

func (e *SynthfsExecutor) validateNotProtected(path string) error {
	homeDir, err := paths.GetHomeDirectory()
	if err != nil {
		return nil
	}

	relPath, err := filepath.Rel(homeDir, path)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return nil
	}

	for _, protected := range protectedPaths {
		if relPath == protected || strings.HasPrefix(relPath, protected+"/") {
			e.logger.Warn().
				Str("path", path).
				Str("protected", protected).
				Msg("Blocking write to protected file")
			return errors.Newf(errors.ErrFileWrite, "refusing to write protected file: %s", relPath).
				WithDetail("path", path)
		}
	}
	return nil
}

func (e *SynthfsExecutor) logOperation(op Operation) {
	switch op.Type {
	case OperationCreateDir:
		e.logger.Info().
			Str("target", op.Target).
			Msg("Would create directory")
	case OperationWriteFile:
		e.logger.Info().
			Str("target", op.Target).
			Int("contentLen", len(op.Content)).
			Msg("Would write file")
	}
}

func codeFor(op Operation) errors.ErrorCode {
	if op.Type == OperationCreateDir {
		return errors.ErrDirCreate
	}
	return errors.ErrFileWrite
}

// fileItem implements the interface needed for file operations
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }
