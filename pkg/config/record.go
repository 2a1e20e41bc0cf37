package config

import (
	"github.com/arthur-debert/dotman/pkg/errors"
)

// ManagedPath is one managed file. Without a destination the file is only
// evaluated, which is how variable source files are declared.
type ManagedPath struct {
	Source      string `toml:"source" json:"source" yaml:"source"`
	Destination string `toml:"destination,omitempty" json:"destination,omitempty" yaml:"destination,omitempty"`
}

// HasDestination reports whether the file is linked somewhere
func (m ManagedPath) HasDestination() bool {
	return m.Destination != ""
}

// Record is the content of dotman.toml
type Record struct {
	// HomePath is the dotfile home, usually a git repository
	HomePath  string `toml:"home_path"`
	RemoteURL string `toml:"remote_url,omitempty"`
	// GitInit is set once `git init` ran through dotman
	GitInit      bool          `toml:"git_init"`
	AppliedPaths []string      `toml:"applied_paths"`
	ManagedPaths []ManagedPath `toml:"managed_paths"`
	// Settings keeps the [settings] table as written so that saving the
	// record never bakes in defaults or environment overrides
	Settings map[string]interface{} `toml:"settings,omitempty"`
}

// Default returns the record written on first run
func Default(homePath string) *Record {
	return &Record{
		HomePath:     homePath,
		AppliedPaths: []string{},
		ManagedPaths: []ManagedPath{},
	}
}

// Index returns the position of the first entry for source, or -1
func (r *Record) Index(source string) int {
	for i, m := range r.ManagedPaths {
		if m.Source == source {
			return i
		}
	}
	return -1
}

// IsManaged reports whether source has an entry
func (r *Record) IsManaged(source string) bool {
	return r.Index(source) >= 0
}

// Add appends sources as unlinked entries. Nothing is added when any of
// them is already managed or repeated.
func (r *Record) Add(sources ...string) error {
	seen := make(map[string]bool, len(r.ManagedPaths)+len(sources))
	for _, m := range r.ManagedPaths {
		seen[m.Source] = true
	}
	for _, source := range sources {
		if seen[source] {
			return errors.Newf(errors.ErrSourceDuplicate, "%s is already managed", source).
				WithDetail("source", source)
		}
		seen[source] = true
	}

	for _, source := range sources {
		r.ManagedPaths = append(r.ManagedPaths, ManagedPath{Source: source})
	}
	return nil
}

// Remove drops the first entry for source and reports whether one existed
func (r *Record) Remove(source string) bool {
	i := r.Index(source)
	if i < 0 {
		return false
	}
	r.ManagedPaths = append(r.ManagedPaths[:i], r.ManagedPaths[i+1:]...)
	return true
}

// Link sets the destination of source. It returns the previous
// destination, empty when the entry was not linked.
func (r *Record) Link(source, destination string) (string, error) {
	i := -1
	for j, m := range r.ManagedPaths {
		if m.Source != source {
			continue
		}
		if i >= 0 {
			return "", errors.Newf(errors.ErrSourceDuplicate, "%s is managed more than once, remove the duplicates", source).
				WithDetail("source", source)
		}
		i = j
	}
	if i < 0 {
		return "", errors.Newf(errors.ErrSourceNotManaged, "%s is not managed", source).
			WithDetail("source", source)
	}

	previous := r.ManagedPaths[i].Destination
	r.ManagedPaths[i].Destination = destination
	return previous, nil
}

// Unlink clears the destination of every entry for source and reports
// whether any entry matched
func (r *Record) Unlink(source string) bool {
	found := false
	for i := range r.ManagedPaths {
		if r.ManagedPaths[i].Source == source {
			r.ManagedPaths[i].Destination = ""
			found = true
		}
	}
	return found
}

// MarkApplied appends destinations not already listed in AppliedPaths
func (r *Record) MarkApplied(destinations ...string) {
	seen := make(map[string]bool, len(r.AppliedPaths))
	for _, p := range r.AppliedPaths {
		seen[p] = true
	}
	for _, d := range destinations {
		if !seen[d] {
			r.AppliedPaths = append(r.AppliedPaths, d)
			seen[d] = true
		}
	}
}
