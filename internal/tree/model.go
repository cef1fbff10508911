package tree

import "github.com/wilbur182/timecop/internal/gitrepo"

// FlatEntry is one visible row in the Files pane.
type FlatEntry struct {
	Name        string
	Path        string
	Kind        NodeKind
	Depth       int
	Status      gitrepo.StatusKind   // own status; meaningful for File rows
	Statuses    []gitrepo.StatusKind // aggregated, priority-ordered; meaningful for Dir rows
	Collapsed   bool
	HasComments bool
}

// SelectionKind distinguishes the three selectable shapes.
type SelectionKind int

const (
	SelRoot SelectionKind = iota
	SelFolder
	SelFile
)

// Selection is the result of Selection(): the synthetic root, a folder
// with its immediate children, or a single file.
type Selection struct {
	Kind     SelectionKind
	Path     string
	Children []*Node
}

// Model holds the current status list, collapse state, flattened view,
// and cursor needed to drive the Files pane.
type Model struct {
	entries       []gitrepo.StatusEntry
	commented     map[string]bool
	root          *Node
	collapsedUser map[string]bool
	collapsedAuto map[string]bool
	flat          []FlatEntry
	cursor        int
}

// New returns an empty tree model positioned at the root.
func New() *Model {
	return &Model{
		root:          newRoot(),
		collapsedUser: map[string]bool{},
		collapsedAuto: map[string]bool{},
		flat:          []FlatEntry{{Name: "", Path: "", Kind: Dir, Depth: 0}},
	}
}

// SetStatus rebuilds the tree from a fresh status list, preserving
// collapse state and the cursor's logical target: the same path if it
// is still present, otherwise the nearest prior path in the flattened
// order.
func (m *Model) SetStatus(entries []gitrepo.StatusEntry, commented map[string]bool) {
	var priorPath string
	if m.cursor >= 0 && m.cursor < len(m.flat) {
		priorPath = m.flat[m.cursor].Path
	}
	priorFlat := m.flat

	m.entries = entries
	m.commented = commented
	m.root = build(entries, commented)
	aggregate(m.root)
	m.rebuildFlat()

	if idx := m.indexOf(priorPath); idx >= 0 {
		m.cursor = idx
		return
	}
	m.cursor = m.nearestPriorIndex(priorFlat, priorPath)
}

func (m *Model) indexOf(path string) int {
	for i, f := range m.flat {
		if f.Path == path {
			return i
		}
	}
	return -1
}

// nearestPriorIndex finds, among paths that preceded priorPath in the
// old flattened order, the closest one still present in the new
// flattened order.
func (m *Model) nearestPriorIndex(priorFlat []FlatEntry, priorPath string) int {
	start := 0
	for i, f := range priorFlat {
		if f.Path == priorPath {
			start = i
			break
		}
	}
	for i := start; i >= 0; i-- {
		if idx := m.indexOf(priorFlat[i].Path); idx >= 0 {
			return idx
		}
	}
	if len(m.flat) == 0 {
		return 0
	}
	return 0
}

// collapsed reports whether path is collapsed, by either mechanism.
func (m *Model) collapsed(path string) bool {
	return m.collapsedUser[path] || m.collapsedAuto[path]
}

func (m *Model) rebuildFlat() {
	var flat []FlatEntry
	flat = append(flat, FlatEntry{Name: "", Path: "", Kind: Dir, Depth: 0})
	m.appendChildren(m.root, 0, &flat)
	m.flat = flat
}

func (m *Model) appendChildren(n *Node, depth int, flat *[]FlatEntry) {
	for _, c := range n.Children {
		entry := FlatEntry{
			Name:        c.Name,
			Path:        c.Path,
			Kind:        c.Kind,
			Depth:       depth,
			HasComments: c.hasComments,
		}
		if c.Kind == File {
			entry.Status = c.Status
		} else {
			entry.Statuses, _ = aggregate(c)
			entry.Collapsed = m.collapsed(c.Path)
		}
		*flat = append(*flat, entry)
		if c.Kind == Dir && !m.collapsed(c.Path) {
			m.appendChildren(c, depth+1, flat)
		}
	}
}

// Collapse marks path collapsed (a no-op for files).
func (m *Model) Collapse(path string) {
	m.collapsedUser[path] = true
	m.rebuildFlat()
	m.clampCursor()
}

// Expand un-marks path, clearing both the user and auto collapse
// records so an expanded folder stays expanded even after leaving
// Browse.
func (m *Model) Expand(path string) {
	delete(m.collapsedUser, path)
	delete(m.collapsedAuto, path)
	m.rebuildFlat()
}

// Toggle flips the collapse state of path.
func (m *Model) Toggle(path string) {
	if m.collapsed(path) {
		m.Expand(path)
		return
	}
	m.Collapse(path)
}

// ApplyBrowseAutoCollapse collapses, at entry to Browse, every
// directory at depth >= 1 that contains only files.
func (m *Model) ApplyBrowseAutoCollapse() {
	m.collapsedAuto = map[string]bool{}
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			if c.Kind != Dir {
				continue
			}
			if depth(c.Path) >= 1 && onlyFiles(c) {
				m.collapsedAuto[c.Path] = true
			}
			walk(c)
		}
	}
	walk(m.root)
	m.rebuildFlat()
	m.clampCursor()
}

// ClearBrowseAutoCollapse drops the auto-collapse set on leaving
// Browse, preserving user-made collapses.
func (m *Model) ClearBrowseAutoCollapse() {
	m.collapsedAuto = map[string]bool{}
	m.rebuildFlat()
}

// MoveCursor advances or retreats the cursor by delta, clamped to the
// flattened vector's bounds, and returns the new selection.
func (m *Model) MoveCursor(delta int) Selection {
	m.cursor += delta
	m.clampCursor()
	return m.Selection()
}

func (m *Model) clampCursor() {
	if len(m.flat) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
}

// Cursor returns the current cursor index into Flat().
func (m *Model) Cursor() int { return m.cursor }

// Flat returns the current flattened display vector.
func (m *Model) Flat() []FlatEntry { return m.flat }

// Selection returns the shape at the current cursor.
func (m *Model) Selection() Selection {
	if len(m.flat) == 0 {
		return Selection{Kind: SelRoot}
	}
	cur := m.flat[m.cursor]
	if cur.Path == "" {
		return Selection{Kind: SelRoot, Children: m.root.Children}
	}
	n := find(m.root, cur.Path)
	if n == nil {
		return Selection{Kind: SelRoot, Children: m.root.Children}
	}
	if n.Kind == Dir {
		return Selection{Kind: SelFolder, Path: n.Path, Children: n.Children}
	}
	return Selection{Kind: SelFile, Path: n.Path}
}
