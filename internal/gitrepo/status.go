package gitrepo

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/utils/merkletrie"
)

// StatusKind is the variant a status entry carries.
type StatusKind int

const (
	Unchanged StatusKind = iota
	Modified
	Added
	Deleted
	Renamed
	Untracked
)

// StatusEntry is a repository-relative path paired with its status
// variant. Equality is by Path; ordering is by Path.
type StatusEntry struct {
	Path   string
	Status StatusKind
}

// Status returns the ordered status-entry list for pos.
func (r *Repo) Status(pos Position) ([]StatusEntry, error) {
	switch pos.Kind {
	case Wip:
		head, err := r.Head()
		if err != nil {
			return nil, err
		}
		tree, err := head.Tree()
		if err != nil {
			return nil, wrap(KindIoError, "HEAD tree", err)
		}
		return r.statusAgainstWorkdir(tree)
	case Full:
		mb, err := r.MergeBase()
		if err != nil {
			return nil, err
		}
		tree, err := mb.Tree()
		if err != nil {
			return nil, wrap(KindIoError, "merge-base tree", err)
		}
		return r.statusAgainstWorkdir(tree)
	case CommitOffset:
		child, parent, err := r.FirstParentOffset(pos.Offset)
		if err != nil {
			return nil, err
		}
		childTree, err := child.Tree()
		if err != nil {
			return nil, wrap(KindIoError, "commit tree", err)
		}
		parentTree, err := parent.Tree()
		if err != nil {
			return nil, wrap(KindIoError, "commit tree", err)
		}
		return r.statusBetweenTrees(parentTree, childTree)
	case Browse:
		return r.listTracked(func(string) bool { return true })
	case Docs:
		return r.listTracked(func(p string) bool { return strings.HasSuffix(p, ".md") })
	default:
		return nil, nil
	}
}

// listTracked enumerates every blob path at HEAD passing filter, with
// status Unchanged (Browse/Docs carry no diff).
func (r *Repo) listTracked(filter func(string) bool) ([]StatusEntry, error) {
	head, err := r.Head()
	if err != nil {
		return nil, err
	}
	tree, err := head.Tree()
	if err != nil {
		return nil, wrap(KindIoError, "HEAD tree", err)
	}

	var entries []StatusEntry
	iter := tree.Files()
	defer iter.Close()
	err = iter.ForEach(func(f *object.File) error {
		if filter(f.Name) {
			entries = append(entries, StatusEntry{Path: f.Name, Status: Unchanged})
		}
		return nil
	})
	if err != nil {
		return nil, wrap(KindIoError, "HEAD tree", err)
	}
	sortEntries(entries)
	return entries, nil
}

// statusBetweenTrees computes a pure tree-to-tree status list (used for
// CommitOffset, where no working-directory state is involved).
func (r *Repo) statusBetweenTrees(oldTree, newTree *object.Tree) ([]StatusEntry, error) {
	changes, err := oldTree.Diff(newTree)
	if err != nil {
		return nil, wrap(KindIoError, "tree diff", err)
	}

	type pending struct {
		path string
		hash string
	}
	var deletes, inserts []pending
	entries := map[string]StatusKind{}

	for _, c := range changes {
		action, err := c.Action()
		if err != nil {
			continue
		}
		switch action {
		case merkletrie.Insert:
			entries[c.To.Name] = Added
			inserts = append(inserts, pending{c.To.Name, c.To.TreeEntry.Hash.String()})
		case merkletrie.Delete:
			entries[c.From.Name] = Deleted
			deletes = append(deletes, pending{c.From.Name, c.From.TreeEntry.Hash.String()})
		case merkletrie.Modify:
			entries[c.To.Name] = Modified
		}
	}

	for _, d := range deletes {
		for _, ins := range inserts {
			if ins.hash == d.hash && entries[ins.path] == Added {
				entries[ins.path] = Renamed
				delete(entries, d.path)
				break
			}
		}
	}

	return toSortedEntries(entries), nil
}

// statusAgainstWorkdir compares oldTree's blobs to the current working
// directory contents, unioned with HEAD's tracked paths and the
// untracked paths reported by the worktree, so that both "committed
// since oldTree" and "uncommitted" changes are captured in one pass.
func (r *Repo) statusAgainstWorkdir(oldTree *object.Tree) ([]StatusEntry, error) {
	wt, err := r.git.Worktree()
	if err != nil {
		return nil, wrap(KindIoError, "worktree", err)
	}
	wtStatus, err := wt.Status()
	if err != nil {
		return nil, wrap(KindIoError, "worktree status", err)
	}

	head, err := r.Head()
	if err != nil {
		return nil, err
	}
	headTree, err := head.Tree()
	if err != nil {
		return nil, wrap(KindIoError, "HEAD tree", err)
	}

	paths := map[string]struct{}{}
	oldBlobs := map[string]*object.File{}
	addTreePaths := func(t *object.Tree, dest map[string]*object.File) {
		iter := t.Files()
		defer iter.Close()
		_ = iter.ForEach(func(f *object.File) error {
			paths[f.Name] = struct{}{}
			if dest != nil {
				dest[f.Name] = f
			}
			return nil
		})
	}
	addTreePaths(oldTree, oldBlobs)
	addTreePaths(headTree, nil)
	for p, st := range wtStatus {
		if st.Worktree == git.Untracked || st.Staging == git.Untracked {
			paths[p] = struct{}{}
		}
	}

	type pending struct {
		path string
		data []byte
	}
	var deletes, inserts []pending
	entries := map[string]StatusKind{}

	for p := range paths {
		oldFile, hadOld := oldBlobs[p]
		diskData, diskErr := readWorkdirFile(wt, p)
		diskExists := diskErr == nil

		switch {
		case hadOld && !diskExists:
			entries[p] = Deleted
			old, _ := oldFile.Contents()
			deletes = append(deletes, pending{p, []byte(old)})
		case !hadOld && diskExists:
			kind := Added
			if st, ok := wtStatus[p]; ok && (st.Worktree == git.Untracked || st.Staging == git.Untracked) {
				kind = Untracked
			}
			entries[p] = kind
			if kind == Added {
				inserts = append(inserts, pending{p, diskData})
			}
		case hadOld && diskExists:
			old, oerr := oldFile.Contents()
			if oerr == nil && !bytes.Equal([]byte(old), diskData) {
				entries[p] = Modified
			}
		}
	}

	for _, d := range deletes {
		for _, ins := range inserts {
			if entries[ins.path] == Added && bytes.Equal(d.data, ins.data) {
				entries[ins.path] = Renamed
				delete(entries, d.path)
				break
			}
		}
	}

	return toSortedEntries(entries), nil
}

func readWorkdirFile(wt *git.Worktree, path string) ([]byte, error) {
	f, err := wt.Filesystem.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func toSortedEntries(m map[string]StatusKind) []StatusEntry {
	entries := make([]StatusEntry, 0, len(m))
	for p, k := range m {
		entries = append(entries, StatusEntry{Path: p, Status: k})
	}
	sortEntries(entries)
	return entries
}

func sortEntries(entries []StatusEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
}
