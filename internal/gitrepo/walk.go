package gitrepo

import "github.com/go-git/go-git/v6/plumbing/object"

// FirstParentOffset walks n-1 first-parent edges from HEAD to find
// child, then one more to find parent. At n=1, child is HEAD itself and
// parent is HEAD^1. The walk never follows a second parent, so merges
// from the base branch into the working branch are elided, matching how
// a forge renders pull-request history.
func (r *Repo) FirstParentOffset(n int) (child, parent *object.Commit, err error) {
	head, err := r.Head()
	if err != nil {
		return nil, nil, err
	}

	cur := head
	for i := 1; i < n; i++ {
		next, perr := cur.Parent(0)
		if perr != nil {
			return nil, nil, wrap(KindIoError, "first-parent walk", perr)
		}
		cur = next
	}
	child = cur

	parent, perr := cur.Parent(0)
	if perr != nil {
		return nil, nil, wrap(KindIoError, "first-parent walk", perr)
	}
	return child, parent, nil
}
