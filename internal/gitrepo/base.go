package gitrepo

import (
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
)

// baseCandidates is the ordered probe: remote main preferred, since that
// is what a forge computes a pull request diff against.
var baseCandidates = []struct {
	name string
	ref  func() plumbing.ReferenceName
}{
	{"origin/main", func() plumbing.ReferenceName { return plumbing.NewRemoteReferenceName("origin", "main") }},
	{"origin/master", func() plumbing.ReferenceName { return plumbing.NewRemoteReferenceName("origin", "master") }},
	{"main", func() plumbing.ReferenceName { return plumbing.NewBranchReferenceName("main") }},
	{"master", func() plumbing.ReferenceName { return plumbing.NewBranchReferenceName("master") }},
}

// ResolveBase runs the ordered probe and caches the result. It returns
// ErrNoBaseBranch (wrapped as KindNoBaseBranch) when none of the
// candidates resolve.
func (r *Repo) ResolveBase() (string, error) {
	if r.baseOnce {
		if r.baseErr != nil {
			return "", r.baseErr
		}
		return r.baseName, nil
	}
	r.baseOnce = true

	for _, cand := range baseCandidates {
		if _, hash, err := r.commitForRef(cand.ref()); err == nil {
			r.baseName = cand.name
			r.baseHash = hash
			return r.baseName, nil
		}
	}

	r.baseErr = wrap(KindNoBaseBranch, "", ErrNoBaseBranch)
	return "", r.baseErr
}

// baseCommit returns the resolved base branch's commit object.
func (r *Repo) baseCommit() (*object.Commit, error) {
	if _, err := r.ResolveBase(); err != nil {
		return nil, err
	}
	return r.git.CommitObject(r.baseHash)
}

// MergeBase returns the merge-base commit of the resolved base branch and
// HEAD.
func (r *Repo) MergeBase() (*object.Commit, error) {
	base, err := r.baseCommit()
	if err != nil {
		return nil, err
	}
	head, err := r.Head()
	if err != nil {
		return nil, err
	}

	bases, err := head.MergeBase(base)
	if err != nil {
		return nil, wrap(KindIoError, "merge-base", err)
	}
	if len(bases) == 0 {
		return nil, wrap(KindIoError, "merge-base", ErrNoBaseBranch)
	}
	return bases[0], nil
}
