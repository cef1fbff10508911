package ui

import (
	"strings"
	"testing"

	"github.com/wilbur182/timecop/internal/gitrepo"
)

func TestTimelineHighlightsWipAtEnd(t *testing.T) {
	out := Timeline(gitrepo.WipPosition(), 2)
	if !strings.Contains(out, "Wip") {
		t.Errorf("expected the Wip label in the timeline, got %q", out)
	}
}

func TestTimelineHighlightsFull(t *testing.T) {
	out := Timeline(gitrepo.FullPosition(), 2)
	if !strings.Contains(out, "Full") {
		t.Errorf("expected the Full label in the timeline, got %q", out)
	}
}

func TestTimelineOffsetLabel(t *testing.T) {
	out := Timeline(gitrepo.OffsetPosition(2), 3)
	if !strings.Contains(out, "-2") {
		t.Errorf("expected the -2 label in the timeline, got %q", out)
	}
}

func TestSlotForMatchesPositionKind(t *testing.T) {
	depth := 3
	if got := slotFor(gitrepo.OffsetPosition(1), depth); got != depth-1 {
		t.Errorf("expected offset 1 at slot %d, got %d", depth-1, got)
	}
	if got := slotFor(gitrepo.FullPosition(), depth); got != depth {
		t.Errorf("expected Full at slot %d, got %d", depth, got)
	}
	if got := slotFor(gitrepo.WipPosition(), depth); got != depth+1 {
		t.Errorf("expected Wip at slot %d, got %d", depth+1, got)
	}
}
