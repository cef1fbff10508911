package tree

import (
	"testing"

	"github.com/wilbur182/timecop/internal/gitrepo"
)

func sampleEntries() []gitrepo.StatusEntry {
	return []gitrepo.StatusEntry{
		{Path: "README.md", Status: gitrepo.Modified},
		{Path: "internal/app/model.go", Status: gitrepo.Modified},
		{Path: "internal/app/update.go", Status: gitrepo.Added},
		{Path: "internal/tree/node.go", Status: gitrepo.Untracked},
		{Path: "main.go", Status: gitrepo.Deleted},
	}
}

func TestSetStatusSortsDirsBeforeFiles(t *testing.T) {
	m := New()
	m.SetStatus(sampleEntries(), nil)

	flat := m.Flat()
	if flat[0].Path != "" {
		t.Fatalf("expected root first, got %q", flat[0].Path)
	}
	if flat[1].Kind != Dir {
		t.Fatalf("expected a directory before files, got %+v", flat[1])
	}
}

func TestAggregateStatusPriority(t *testing.T) {
	m := New()
	m.SetStatus(sampleEntries(), nil)

	var internalEntry *FlatEntry
	for i := range m.Flat() {
		if m.Flat()[i].Path == "internal" {
			internalEntry = &m.Flat()[i]
		}
	}
	if internalEntry == nil {
		t.Fatal("expected an internal directory entry")
	}
	want := []gitrepo.StatusKind{gitrepo.Modified, gitrepo.Added, gitrepo.Untracked}
	if len(internalEntry.Statuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", internalEntry.Statuses, want)
	}
	for i, s := range want {
		if internalEntry.Statuses[i] != s {
			t.Errorf("statuses[%d] = %v, want %v", i, internalEntry.Statuses[i], s)
		}
	}
}

func TestCollapseHidesDescendants(t *testing.T) {
	m := New()
	m.SetStatus(sampleEntries(), nil)

	before := len(m.Flat())
	m.Collapse("internal")
	after := len(m.Flat())
	if after >= before {
		t.Fatalf("expected collapse to shrink the flattened view: before=%d after=%d", before, after)
	}

	m.Expand("internal")
	if len(m.Flat()) != before {
		t.Fatalf("expected expand to restore the flattened view: got %d want %d", len(m.Flat()), before)
	}
}

func TestToggleRoundTrips(t *testing.T) {
	m := New()
	m.SetStatus(sampleEntries(), nil)

	before := len(m.Flat())
	m.Toggle("internal")
	m.Toggle("internal")
	if len(m.Flat()) != before {
		t.Fatalf("expected double toggle to be a no-op: got %d want %d", len(m.Flat()), before)
	}
}

func TestMoveCursorClamps(t *testing.T) {
	m := New()
	m.SetStatus(sampleEntries(), nil)

	m.MoveCursor(-100)
	if m.Cursor() != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", m.Cursor())
	}
	m.MoveCursor(1000)
	if m.Cursor() != len(m.Flat())-1 {
		t.Errorf("expected cursor clamped to last index, got %d", m.Cursor())
	}
}

func TestSelectionKinds(t *testing.T) {
	m := New()
	m.SetStatus(sampleEntries(), nil)

	if sel := m.Selection(); sel.Kind != SelRoot {
		t.Fatalf("expected root selection at cursor 0, got %v", sel.Kind)
	}

	idx := -1
	for i, f := range m.Flat() {
		if f.Path == "main.go" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatal("expected main.go in flattened view")
	}
	m.MoveCursor(idx)
	if sel := m.Selection(); sel.Kind != SelFile || sel.Path != "main.go" {
		t.Fatalf("expected file selection for main.go, got %+v", sel)
	}
}

func TestSetStatusPreservesCursorOnSamePath(t *testing.T) {
	m := New()
	m.SetStatus(sampleEntries(), nil)

	idx := -1
	for i, f := range m.Flat() {
		if f.Path == "internal/app/model.go" {
			idx = i
		}
	}
	m.MoveCursor(idx)

	m.SetStatus(sampleEntries(), nil)
	if m.Flat()[m.Cursor()].Path != "internal/app/model.go" {
		t.Fatalf("expected cursor to stay on internal/app/model.go, got %q", m.Flat()[m.Cursor()].Path)
	}
}

func TestSetStatusFallsBackToNearestPriorPath(t *testing.T) {
	m := New()
	m.SetStatus(sampleEntries(), nil)

	idx := -1
	for i, f := range m.Flat() {
		if f.Path == "internal/tree/node.go" {
			idx = i
		}
	}
	m.MoveCursor(idx)

	reduced := []gitrepo.StatusEntry{
		{Path: "README.md", Status: gitrepo.Modified},
		{Path: "internal/app/model.go", Status: gitrepo.Modified},
		{Path: "main.go", Status: gitrepo.Deleted},
	}
	m.SetStatus(reduced, nil)

	if m.Cursor() < 0 || m.Cursor() >= len(m.Flat()) {
		t.Fatalf("cursor out of range: %d", m.Cursor())
	}
}

func TestBrowseAutoCollapseOnlyFileFolders(t *testing.T) {
	m := New()
	entries := []gitrepo.StatusEntry{
		{Path: "docs/a.md", Status: gitrepo.Unchanged},
		{Path: "docs/b.md", Status: gitrepo.Unchanged},
		{Path: "src/pkg/x.go", Status: gitrepo.Unchanged},
		{Path: "src/y.go", Status: gitrepo.Unchanged},
	}
	m.SetStatus(entries, nil)

	m.ApplyBrowseAutoCollapse()

	var docsEntry, srcEntry *FlatEntry
	for i := range m.Flat() {
		switch m.Flat()[i].Path {
		case "docs":
			docsEntry = &m.Flat()[i]
		case "src":
			srcEntry = &m.Flat()[i]
		}
	}
	if docsEntry == nil || !docsEntry.Collapsed {
		t.Error("expected docs/ (only files) to auto-collapse")
	}
	if srcEntry == nil || srcEntry.Collapsed {
		t.Error("expected src/ (has a subdirectory) to stay expanded")
	}

	m.ClearBrowseAutoCollapse()
	for _, f := range m.Flat() {
		if f.Path == "docs" && f.Collapsed {
			t.Error("expected auto-collapse to clear on leaving Browse")
		}
	}
}

func TestBrowseAutoCollapsePreservesUserCollapse(t *testing.T) {
	m := New()
	entries := []gitrepo.StatusEntry{
		{Path: "docs/a.md", Status: gitrepo.Unchanged},
		{Path: "src/y.go", Status: gitrepo.Unchanged},
	}
	m.SetStatus(entries, nil)

	m.Collapse("src")
	m.ApplyBrowseAutoCollapse()
	m.ClearBrowseAutoCollapse()

	for _, f := range m.Flat() {
		if f.Path == "src" && !f.Collapsed {
			t.Error("expected user collapse on src to survive clearing auto-collapse")
		}
	}
}

func TestHasCommentsPropagatesToAncestors(t *testing.T) {
	m := New()
	entries := []gitrepo.StatusEntry{
		{Path: "internal/app/model.go", Status: gitrepo.Modified},
	}
	m.SetStatus(entries, map[string]bool{"internal/app/model.go": true})

	for _, f := range m.Flat() {
		if f.Path == "internal" && !f.HasComments {
			t.Error("expected has_comments to propagate to the internal/ directory")
		}
	}
}
