package ui

import (
	"strings"
	"testing"

	"github.com/wilbur182/timecop/internal/mouse"
)

func TestComposeWideSplitsLeftColumn(t *testing.T) {
	p := Panes{
		Timeline:  "TIMELINE",
		Files:     "main.go",
		PrList:    "#42 add feature",
		Preview:   "diff content",
		StatusBar: "main · Wip",
		Focus:     FilesPane,
	}
	h := mouse.NewHandler()
	out := Compose(p, 120, 40, h)

	if !strings.Contains(out, "main.go") || !strings.Contains(out, "diff content") {
		t.Fatal("expected both files and preview content in wide layout output")
	}

	regions := h.HitMap.Regions()
	if len(regions) != 3 {
		t.Fatalf("expected 3 hit regions registered, got %d", len(regions))
	}
}

func TestComposeNarrowStacksPanes(t *testing.T) {
	p := Panes{
		Timeline:  "TIMELINE",
		Files:     "main.go",
		PrList:    "#42 add feature",
		Preview:   "diff content",
		StatusBar: "main · Wip",
		Focus:     PreviewPane,
	}
	h := mouse.NewHandler()
	out := Compose(p, 60, 40, h)

	if !strings.Contains(out, "main.go") || !strings.Contains(out, "diff content") {
		t.Fatal("expected all three panes present in narrow stacked output")
	}
}

func TestComposeClampsThinLeftColumn(t *testing.T) {
	p := Panes{Timeline: "T", Files: "a", PrList: "b", Preview: "c", StatusBar: "s"}
	// Does not panic on a very narrow wide-mode width.
	Compose(p, WideThreshold, 24, nil)
}

func TestComposeScrollsToHiddenLine(t *testing.T) {
	var lines []string
	for i := 0; i < 50; i++ {
		lines = append(lines, "line"+string(rune('a'+i%26)))
	}
	content := strings.Join(lines, "\n")

	p := Panes{
		Timeline:      "T",
		Files:         content,
		PrList:        "b",
		Preview:       "c",
		StatusBar:     "s",
		Focus:         FilesPane,
		FilesScroll:   0,
	}
	unscrolled := Compose(p, 120, 40, nil)
	if !strings.Contains(unscrolled, "linea") {
		t.Fatal("expected the first line visible with no scroll offset")
	}

	p.FilesScroll = 40
	scrolled := Compose(p, 120, 40, nil)
	if strings.Contains(scrolled, "linea") {
		t.Error("expected the first line to have scrolled out of view")
	}
}

func TestFollowCursorKeepsCursorInWindow(t *testing.T) {
	tests := []struct {
		name    string
		scroll  int
		cursor  int
		visible int
		total   int
		want    int
	}{
		{"cursor above window scrolls up to it", 10, 2, 5, 20, 2},
		{"cursor below window scrolls down to trail it", 0, 9, 5, 20, 5},
		{"cursor already visible is a no-op", 3, 4, 5, 20, 3},
		{"never scrolls past the final page", 0, 19, 5, 20, 15},
		{"empty content clamps to zero", 5, 0, 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FollowCursor(tt.scroll, tt.cursor, tt.visible, tt.total)
			if got != tt.want {
				t.Errorf("FollowCursor(%d, %d, %d, %d) = %d, want %d", tt.scroll, tt.cursor, tt.visible, tt.total, got, tt.want)
			}
		})
	}
}

func TestPaneHeightsWideSplitsFilesAndPrListInHalf(t *testing.T) {
	files, prList, preview := PaneHeights(WideThreshold, 20)
	if files != 10 || prList != 10 {
		t.Errorf("PaneHeights wide = (%d, %d), want (10, 10)", files, prList)
	}
	if preview != 20 {
		t.Errorf("PaneHeights wide preview = %d, want full body height 20", preview)
	}
}

func TestPaneHeightsNarrowSplitsThreeWays(t *testing.T) {
	files, prList, preview := PaneHeights(WideThreshold-1, 30)
	if files != 10 || prList != 10 || preview != 10 {
		t.Errorf("PaneHeights narrow = (%d, %d, %d), want (10, 10, 10)", files, prList, preview)
	}
}

func TestBodyHeightClampsToMinimumThree(t *testing.T) {
	if got := BodyHeight(4, "one\ntwo", "status"); got != 3 {
		t.Errorf("BodyHeight with a tiny screen = %d, want clamped to 3", got)
	}
	if got := BodyHeight(40, "T", "S"); got != 38 {
		t.Errorf("BodyHeight(40, 1-line, 1-line) = %d, want 38", got)
	}
}

func TestContentHeightClampsToMinimumOne(t *testing.T) {
	if got := ContentHeight(2); got != 1 {
		t.Errorf("ContentHeight(2) = %d, want clamped to 1", got)
	}
	if got := ContentHeight(10); got != 7 {
		t.Errorf("ContentHeight(10) = %d, want 7", got)
	}
}
