package app

import (
	"strings"
	"testing"

	"github.com/wilbur182/timecop/internal/gitrepo"
)

func TestStatusGlyph(t *testing.T) {
	tests := []struct {
		kind gitrepo.StatusKind
		want string
	}{
		{gitrepo.Modified, "M"},
		{gitrepo.Added, "A"},
		{gitrepo.Deleted, "D"},
		{gitrepo.Renamed, "R"},
		{gitrepo.Untracked, "?"},
		{gitrepo.Unchanged, " "},
	}
	for _, tt := range tests {
		if got := statusGlyph(tt.kind); !strings.Contains(got, tt.want) {
			t.Errorf("statusGlyph(%v) = %q, want it to contain %q", tt.kind, got, tt.want)
		}
	}
}

func TestFirstOrUnchanged(t *testing.T) {
	if got := firstOrUnchanged(nil); got != gitrepo.Unchanged {
		t.Errorf("firstOrUnchanged(nil) = %v, want Unchanged", got)
	}
	kinds := []gitrepo.StatusKind{gitrepo.Modified, gitrepo.Added}
	if got := firstOrUnchanged(kinds); got != gitrepo.Modified {
		t.Errorf("firstOrUnchanged(%v) = %v, want Modified (first entry)", kinds, got)
	}
}
