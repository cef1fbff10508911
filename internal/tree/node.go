// Package tree builds a collapsible file tree from a flat status list and
// tracks the cursor and collapse state needed to drive the Files pane.
package tree

import (
	"sort"
	"strings"

	"github.com/wilbur182/timecop/internal/gitrepo"
)

// NodeKind distinguishes a directory node from a file node.
type NodeKind int

const (
	Dir NodeKind = iota
	File
)

// aggregatePriority is the fixed emission order for a collapsed folder's
// displayed statuses.
var aggregatePriority = []gitrepo.StatusKind{
	gitrepo.Deleted,
	gitrepo.Modified,
	gitrepo.Added,
	gitrepo.Renamed,
	gitrepo.Untracked,
}

// Node is one entry in the tree: the synthetic root, a directory, or a
// file carrying its own status.
type Node struct {
	Name     string
	Path     string
	Kind     NodeKind
	Status   gitrepo.StatusKind
	Children []*Node

	hasComments bool
}

func newRoot() *Node {
	return &Node{Name: "", Path: "", Kind: Dir}
}

// build inserts every status entry into a fresh tree rooted at "" by
// splitting each path on "/", creating intermediate directories as
// needed. Children are sorted directories-first, then by name.
func build(entries []gitrepo.StatusEntry, commented map[string]bool) *Node {
	root := newRoot()
	byPath := map[string]*Node{"": root}

	for _, e := range entries {
		parts := strings.Split(e.Path, "/")
		cur := root
		curPath := ""
		for i, part := range parts {
			if curPath == "" {
				curPath = part
			} else {
				curPath = curPath + "/" + part
			}
			isLeaf := i == len(parts)-1
			child, ok := byPath[curPath]
			if !ok {
				kind := Dir
				if isLeaf {
					kind = File
				}
				child = &Node{Name: part, Path: curPath, Kind: kind}
				byPath[curPath] = child
				cur.Children = append(cur.Children, child)
			}
			if isLeaf {
				child.Status = e.Status
				child.hasComments = commented[curPath]
			}
			cur = child
		}
	}

	sortChildren(root)
	return root
}

func sortChildren(n *Node) {
	sort.Slice(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if a.Kind != b.Kind {
			return a.Kind == Dir
		}
		return a.Name < b.Name
	})
	for _, c := range n.Children {
		sortChildren(c)
	}
}

// aggregate computes, for every directory node, the priority-ordered
// set of transitive descendant statuses and whether any descendant
// carries a comment. Leaf status/hasComments are left untouched.
func aggregate(n *Node) ([]gitrepo.StatusKind, bool) {
	if n.Kind == File {
		return statusSet(n.Status), n.hasComments
	}

	seen := map[gitrepo.StatusKind]bool{}
	anyComments := n.hasComments
	for _, c := range n.Children {
		childStatuses, childComments := aggregate(c)
		for _, s := range childStatuses {
			seen[s] = true
		}
		anyComments = anyComments || childComments
	}

	var ordered []gitrepo.StatusKind
	for _, s := range aggregatePriority {
		if seen[s] {
			ordered = append(ordered, s)
		}
	}
	n.hasComments = anyComments
	return ordered, anyComments
}

func statusSet(s gitrepo.StatusKind) []gitrepo.StatusKind {
	if s == gitrepo.Unchanged {
		return nil
	}
	return []gitrepo.StatusKind{s}
}

func find(root *Node, path string) *Node {
	if path == "" {
		return root
	}
	parts := strings.Split(path, "/")
	cur := root
	for _, part := range parts {
		var next *Node
		for _, c := range cur.Children {
			if c.Name == part {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

func onlyFiles(n *Node) bool {
	for _, c := range n.Children {
		if c.Kind == Dir {
			return false
		}
	}
	return len(n.Children) > 0
}

func depth(path string) int {
	if path == "" {
		return 0
	}
	return strings.Count(path, "/") + 1
}
