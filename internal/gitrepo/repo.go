package gitrepo

import (
	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
)

// Repo wraps a go-git repository handle along with the resolved base
// branch, cached lazily on first use.
type Repo struct {
	path string
	git  *git.Repository

	baseName string
	baseHash plumbing.Hash
	baseErr  error
	baseOnce bool
}

// Open opens the repository rooted at path (or an ancestor directory
// containing .git). It does not resolve the base branch eagerly; that
// happens on first call to ResolveBase.
func Open(path string) (*Repo, error) {
	r, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, wrap(KindRepoMissing, path, err)
	}
	return &Repo{path: path, git: r}, nil
}

// Path returns the directory the repository was opened from.
func (r *Repo) Path() string { return r.path }

// Head returns the current HEAD commit.
func (r *Repo) Head() (*object.Commit, error) {
	ref, err := r.git.Head()
	if err != nil {
		return nil, wrap(KindIoError, "HEAD", err)
	}
	c, err := r.git.CommitObject(ref.Hash())
	if err != nil {
		return nil, wrap(KindIoError, "HEAD", err)
	}
	return c, nil
}

// HeadBranch returns the short name of the branch HEAD points to, or ""
// when HEAD is detached.
func (r *Repo) HeadBranch() string {
	ref, err := r.git.Head()
	if err != nil || !ref.Name().IsBranch() {
		return ""
	}
	return ref.Name().Short()
}

func (r *Repo) commitForRef(name plumbing.ReferenceName) (*object.Commit, plumbing.Hash, error) {
	ref, err := r.git.Reference(name, true)
	if err != nil {
		return nil, plumbing.ZeroHash, err
	}
	c, err := r.git.CommitObject(ref.Hash())
	if err != nil {
		return nil, plumbing.ZeroHash, err
	}
	return c, ref.Hash(), nil
}
