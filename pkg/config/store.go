package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
	toml "github.com/pelletier/go-toml/v2"
)

// Store reads and writes the record at a fixed location
type Store struct {
	path        string
	defaultHome string
}

// NewStore returns a store for the record under p's config directory. A
// record created by EnsureExists points its home at p's data directory.
func NewStore(p paths.Paths) *Store {
	return &Store{
		path:        p.ConfigFilePath(),
		defaultHome: p.DataDir(),
	}
}

// Path returns the location of dotman.toml
func (s *Store) Path() string {
	return s.path
}

// EnsureExists writes a default record when none exists and reports
// whether it did.
func (s *Store) EnsureExists() (bool, error) {
	logger := logging.GetLogger("config")

	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", s.path)
	}

	logger.Warn().Str("path", s.path).Msg("No dotman config found, creating default config")
	if err := s.Save(Default(s.defaultHome)); err != nil {
		return false, err
	}
	return true, nil
}

// Load parses the record
func (s *Store) Load() (*Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s does not exist", s.path).
				WithDetail("path", s.path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", s.path).
			WithDetail("path", s.path)
	}

	var r Record
	if err := toml.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", s.path).
			WithDetail("path", s.path)
	}

	if r.AppliedPaths == nil {
		r.AppliedPaths = []string{}
	}
	if r.ManagedPaths == nil {
		r.ManagedPaths = []ManagedPath{}
	}

	return &r, nil
}

// Save replaces the record on disk
func (s *Store) Save(r *Record) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "failed to encode config")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(s.path))
	}

	// an interrupted save leaves the previous record in place
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to write %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to replace %s", s.path)
	}

	logging.GetLogger("config").Debug().Str("path", s.path).Msg("Config saved")
	return nil
}

// Settings loads the effective settings for this record
func (s *Store) Settings() (*Settings, error) {
	return LoadSettings(s.path)
}

// Update loads the record, applies fn and saves the result unless fn fails
func (s *Store) Update(fn func(*Record) error) error {
	r, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(r); err != nil {
		return err
	}
	return s.Save(r)
}
