package types

import "time"

// NoticeLevel classifies a Notice
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
)

// Notice is a non fatal condition a command reports back to the user
type Notice struct {
	Level   NoticeLevel `json:"level" yaml:"level"`
	Message string      `json:"message" yaml:"message"`
	Path    string      `json:"path,omitempty" yaml:"path,omitempty"`
}

// Warn builds a warning notice
func Warn(path, message string) Notice {
	return Notice{Level: NoticeWarning, Message: message, Path: path}
}

// Info builds an informational notice
func Info(path, message string) Notice {
	return Notice{Level: NoticeInfo, Message: message, Path: path}
}

// ChangeResult is returned by commands that edit the record
type ChangeResult struct {
	Command string `json:"command" yaml:"command"`
	// Changed is false when the record was left untouched
	Changed bool     `json:"changed" yaml:"changed"`
	Paths   []string `json:"paths,omitempty" yaml:"paths,omitempty"`
	Notices []Notice `json:"notices,omitempty" yaml:"notices,omitempty"`
}

// SourceListResult holds the result of `source list`
type SourceListResult struct {
	Home    string       `json:"home" yaml:"home"`
	Sources []SourceInfo `json:"sources" yaml:"sources"`
}

// SourceInfo describes one managed file
type SourceInfo struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`
	// Missing is set when the source no longer exists on disk
	Missing bool `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// FileStatus is the outcome of apply for one managed file
type FileStatus string

const (
	// FileWritten destinations were created
	FileWritten FileStatus = "written"
	// FilePlanned destinations would be created by a real run
	FilePlanned FileStatus = "planned"
	// FileEvaluated variable sources fed the batch but have no destination
	FileEvaluated FileStatus = "evaluated"
	// FileSkipped files were left out of the batch, see the reason
	FileSkipped FileStatus = "skipped"
)

// ApplyResult holds the result of `apply`
type ApplyResult struct {
	DryRun    bool          `json:"dryRun" yaml:"dryRun"`
	Files     []AppliedFile `json:"files" yaml:"files"`
	Notices   []Notice      `json:"notices,omitempty" yaml:"notices,omitempty"`
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
}

// AppliedFile is one managed file as seen by apply
type AppliedFile struct {
	Source      string     `json:"source" yaml:"source"`
	Destination string     `json:"destination,omitempty" yaml:"destination,omitempty"`
	Status      FileStatus `json:"status" yaml:"status"`
	Reason      string     `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Count returns how many files ended with status
func (r *ApplyResult) Count(status FileStatus) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// RenderResult holds the output of `render`
type RenderResult struct {
	Path      string   `json:"path" yaml:"path"`
	Content   string   `json:"content" yaml:"content"`
	Variables []string `json:"variables" yaml:"variables"`
}

// GitResult is returned by git commands that run the git binary
type GitResult struct {
	Command string   `json:"command" yaml:"command"`
	Dir     string   `json:"dir" yaml:"dir"`
	Notices []Notice `json:"notices,omitempty" yaml:"notices,omitempty"`
}
