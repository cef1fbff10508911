package ui

import (
	"strings"
	"testing"
)

func TestStatusBarIncludesBranchAndMode(t *testing.T) {
	out := StatusBar(StatusBarInfo{Branch: "feature/x", Mode: "Wip", FileCount: 3}, 80)
	if !strings.Contains(out, "feature/x") || !strings.Contains(out, "Wip") || !strings.Contains(out, "3 files") {
		t.Errorf("expected branch, mode, and file count in status bar, got %q", out)
	}
}

func TestStatusBarShowsDiffStatOnlyWhenNonzero(t *testing.T) {
	out := StatusBar(StatusBarInfo{Branch: "main", Mode: "Full"}, 80)
	if strings.Contains(out, "+0") {
		t.Errorf("did not expect a diffstat chip when added/removed are zero, got %q", out)
	}
}

func TestStatusBarShowsForgeDownOverPr(t *testing.T) {
	out := StatusBar(StatusBarInfo{Branch: "main", Mode: "Wip", HasPr: true, ForgeDown: true}, 80)
	if strings.Contains(out, "PR:") {
		t.Errorf("expected forge-down indicator to suppress the PR chip, got %q", out)
	}
	if !strings.Contains(out, "no forge") {
		t.Errorf("expected a no-forge indicator, got %q", out)
	}
}
