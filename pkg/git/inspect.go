package git

import (
	stderrors "errors"
	"sort"

	"github.com/arthur-debert/dotman/pkg/errors"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Status summarizes a repository without shelling out
type Status struct {
	Branch  string   `json:"branch"`
	Head    string   `json:"head,omitempty"`
	Remotes []Remote `json:"remotes"`
	Clean   bool     `json:"clean"`
	// Changes counts files that differ from HEAD, untracked included
	Changes int `json:"changes"`
}

// Remote is a configured remote and its URLs
type Remote struct {
	Name string   `json:"name"`
	URLs []string `json:"urls"`
}

// IsRepository reports whether dir is the root of a git repository
func IsRepository(dir string) bool {
	_, err := gogit.PlainOpen(dir)
	return err == nil
}

// Inspect reads branch, head, remotes and worktree state of the repository
// at dir. A repository without commits has an empty Head.
func Inspect(dir string) (*Status, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		if stderrors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, errors.Wrapf(err, errors.ErrGitRepository, "%s is not a git repository", dir).
				WithDetail("dir", dir)
		}
		return nil, errors.Wrapf(err, errors.ErrGitRepository, "could not open git repo at %s", dir).
			WithDetail("dir", dir)
	}

	status := &Status{Remotes: []Remote{}}

	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGitRepository, "could not read git HEAD")
	}
	if ref.Type() == plumbing.SymbolicReference {
		status.Branch = ref.Target().Short()
	}

	head, err := repo.Head()
	switch {
	case err == nil:
		status.Head = head.Hash().String()
	case stderrors.Is(err, plumbing.ErrReferenceNotFound):
		// no commits yet
	default:
		return nil, errors.Wrap(err, errors.ErrGitRepository, "could not resolve git HEAD")
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGitRepository, "could not read git remotes")
	}
	for _, r := range remotes {
		cfg := r.Config()
		status.Remotes = append(status.Remotes, Remote{Name: cfg.Name, URLs: cfg.URLs})
	}
	sort.Slice(status.Remotes, func(i, j int) bool {
		return status.Remotes[i].Name < status.Remotes[j].Name
	})

	wt, err := repo.Worktree()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGitRepository, "could not open git worktree")
	}
	ws, err := wt.Status()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGitRepository, "could not read git worktree status")
	}
	status.Clean = ws.IsClean()
	status.Changes = len(ws)

	return status, nil
}
