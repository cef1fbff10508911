package app

import (
	"testing"

	"github.com/wilbur182/timecop/internal/diffview"
	"github.com/wilbur182/timecop/internal/forge"
	"github.com/wilbur182/timecop/internal/gitrepo"
	"github.com/wilbur182/timecop/internal/tree"
	"github.com/wilbur182/timecop/internal/ui"
)

func TestMoveTimeline(t *testing.T) {
	tests := []struct {
		name  string
		start gitrepo.Position
		depth int
		delta int
		want  gitrepo.Position
	}{
		{"wip back one enters full", gitrepo.WipPosition(), 2, -1, gitrepo.FullPosition()},
		{"full back one enters offset1", gitrepo.FullPosition(), 2, -1, gitrepo.OffsetPosition(1)},
		{"offset1 forward one enters full", gitrepo.OffsetPosition(1), 2, 1, gitrepo.FullPosition()},
		{"full forward one enters wip", gitrepo.FullPosition(), 2, 1, gitrepo.WipPosition()},
		{"wip forward one clamps at wip", gitrepo.WipPosition(), 2, 1, gitrepo.WipPosition()},
		{"offset1 back one enters offset2", gitrepo.OffsetPosition(1), 2, -1, gitrepo.OffsetPosition(2)},
		{"offset2 back one clamps at offset2", gitrepo.OffsetPosition(2), 2, -1, gitrepo.OffsetPosition(2)},
		{"browse is a no-op", gitrepo.BrowsePosition(), 2, 1, gitrepo.BrowsePosition()},
		{"docs is a no-op", gitrepo.DocsPosition(), 2, -1, gitrepo.DocsPosition()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Model{timeline: tt.start, depth: tt.depth}
			m.moveTimeline(tt.delta)
			if m.timeline != tt.want {
				t.Errorf("moveTimeline(%d) from %+v = %+v, want %+v", tt.delta, tt.start, m.timeline, tt.want)
			}
		})
	}
}

func TestToggleWipFull(t *testing.T) {
	m := &Model{timeline: gitrepo.WipPosition()}
	m.toggleWipFull()
	if m.timeline != gitrepo.FullPosition() {
		t.Fatalf("toggling from Wip should land on Full, got %+v", m.timeline)
	}
	m.toggleWipFull()
	if m.timeline != gitrepo.WipPosition() {
		t.Fatalf("toggling from Full should land on Wip, got %+v", m.timeline)
	}

	m2 := &Model{timeline: gitrepo.BrowsePosition()}
	m2.toggleWipFull()
	if m2.timeline != gitrepo.WipPosition() {
		t.Fatalf("toggling from Browse should jump to Wip, got %+v", m2.timeline)
	}
}

func TestCycleFocus(t *testing.T) {
	m := &Model{focus: ui.FilesPane}
	m.cycleFocus(1)
	if m.focus != ui.PrListPane {
		t.Errorf("cycleFocus(1) from FilesPane = %v, want PrListPane", m.focus)
	}
	m.cycleFocus(1)
	if m.focus != ui.PreviewPane {
		t.Errorf("cycleFocus(1) from PrListPane = %v, want PreviewPane", m.focus)
	}
	m.cycleFocus(1)
	if m.focus != ui.FilesPane {
		t.Errorf("cycleFocus(1) from PreviewPane should wrap to FilesPane, got %v", m.focus)
	}
	m.cycleFocus(-1)
	if m.focus != ui.PreviewPane {
		t.Errorf("cycleFocus(-1) from FilesPane should wrap to PreviewPane, got %v", m.focus)
	}
}

func TestParentPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a/b/c.go", "a/b"},
		{"a/b.go", "a"},
		{"b.go", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := parentPath(tt.path); got != tt.want {
			t.Errorf("parentPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestFirstChangedLine(t *testing.T) {
	m := &Model{}
	if got := m.firstChangedLine("missing.go"); got != 0 {
		t.Errorf("firstChangedLine with no lineMap = %d, want 0", got)
	}
}

func TestCollapseSelectedOnRootIsNoop(t *testing.T) {
	m := &Model{tree: tree.New()}
	sel := m.tree.Selection()
	if sel.Kind != tree.SelRoot {
		t.Fatalf("fresh tree.New() should select the root, got %v", sel.Kind)
	}
	m.collapseSelected()
}

func TestExpandOrOpenSelectedOnRootReturnsNilCmd(t *testing.T) {
	m := &Model{tree: tree.New()}
	if cmd := m.expandOrOpenSelected(); cmd != nil {
		t.Error("expandOrOpenSelected on the root selection should return a nil command")
	}
}

func sampleLineMap() []diffview.LineLocation {
	return []diffview.LineLocation{
		{Path: "a.go", Line: 1, Side: forge.New},
		{Path: "a.go", Line: 2, Side: forge.New},
		{Path: "b.go", Line: 9, Side: forge.Old},
	}
}

func TestMovePreviewCursorClampsToLineMapBounds(t *testing.T) {
	m := &Model{lineMap: sampleLineMap()}

	m.movePreviewCursor(-5)
	if m.previewCursor != 0 {
		t.Errorf("movePreviewCursor(-5) from 0 = %d, want clamped to 0", m.previewCursor)
	}

	m.movePreviewCursor(1)
	if m.previewCursor != 1 {
		t.Errorf("movePreviewCursor(1) = %d, want 1", m.previewCursor)
	}

	m.movePreviewCursor(10)
	if m.previewCursor != len(m.lineMap)-1 {
		t.Errorf("movePreviewCursor(10) = %d, want clamped to last index %d", m.previewCursor, len(m.lineMap)-1)
	}
}

func TestMovePreviewCursorNoopOnEmptyLineMap(t *testing.T) {
	m := &Model{}
	m.movePreviewCursor(3)
	if m.previewCursor != 0 {
		t.Errorf("movePreviewCursor on an empty line map should leave previewCursor at 0, got %d", m.previewCursor)
	}
}

func TestSelectedLocationUsesPreviewCursorWhenPreviewFocused(t *testing.T) {
	m := &Model{focus: ui.PreviewPane, lineMap: sampleLineMap(), previewCursor: 2}
	path, line, ok := m.selectedLocation()
	if !ok || path != "b.go" || line != 9 {
		t.Errorf("selectedLocation() = (%q, %d, %v), want (\"b.go\", 9, true)", path, line, ok)
	}
}

func TestSelectedLocationFallsBackToFirstChangedLineWhenFilesFocused(t *testing.T) {
	tr := tree.New()
	tr.SetStatus([]gitrepo.StatusEntry{{Path: "a.go", Status: gitrepo.Modified}}, nil)
	for tr.Selection().Kind != tree.SelFile {
		if tr.MoveCursor(1).Kind == tree.SelRoot {
			t.Fatal("tree has no file entries to select")
		}
	}
	m := &Model{focus: ui.FilesPane, tree: tr, lineMap: sampleLineMap()}
	path, line, ok := m.selectedLocation()
	if !ok || path != "a.go" || line != 1 {
		t.Errorf("selectedLocation() = (%q, %d, %v), want (\"a.go\", 1, true)", path, line, ok)
	}
}

func TestSelectedLocationNotOkWhenPreviewHasNoLineMap(t *testing.T) {
	m := &Model{focus: ui.PreviewPane}
	if _, _, ok := m.selectedLocation(); ok {
		t.Error("selectedLocation with an empty line map should report not-found")
	}
}

func TestSelectedLineLocationMatchesPreviewCursor(t *testing.T) {
	m := &Model{focus: ui.PreviewPane, lineMap: sampleLineMap(), previewCursor: 2}
	loc := m.selectedLineLocation()
	if loc == nil || loc.Path != "b.go" || loc.Side != forge.Old {
		t.Errorf("selectedLineLocation() = %+v, want b.go on the old side", loc)
	}
}

func TestSelectedLineLocationNilOnEmptyLineMap(t *testing.T) {
	m := &Model{focus: ui.PreviewPane}
	if loc := m.selectedLineLocation(); loc != nil {
		t.Errorf("selectedLineLocation() with no line map = %+v, want nil", loc)
	}
}

func TestScrollPanePreviewMovesPreviewCursor(t *testing.T) {
	m := &Model{lineMap: sampleLineMap()}
	m.scrollPane(ui.PreviewPane, 1)
	if m.previewCursor != 1 {
		t.Errorf("scrollPane(PreviewPane, 1) = previewCursor %d, want 1", m.previewCursor)
	}
}

func TestScrollPanePrListClampsAtZero(t *testing.T) {
	m := &Model{}
	m.scrollPane(ui.PrListPane, -5)
	if m.prListScroll != 0 {
		t.Errorf("scrollPane(PrListPane, -5) from 0 = %d, want clamped to 0", m.prListScroll)
	}
	m.scrollPane(ui.PrListPane, 3)
	if m.prListScroll != 3 {
		t.Errorf("scrollPane(PrListPane, 3) = %d, want 3", m.prListScroll)
	}
}

func TestScrollPaneFilesMovesTreeCursor(t *testing.T) {
	tr := tree.New()
	tr.SetStatus([]gitrepo.StatusEntry{
		{Path: "a.go", Status: gitrepo.Modified},
		{Path: "b.go", Status: gitrepo.Modified},
	}, nil)
	m := &Model{tree: tr}
	before := tr.Cursor()
	m.scrollPane(ui.FilesPane, 1)
	if tr.Cursor() == before {
		t.Error("scrollPane(FilesPane, 1) should move the tree cursor")
	}
}
