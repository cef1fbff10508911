package app

import (
	"testing"

	"github.com/wilbur182/timecop/internal/gitrepo"
)

func TestPositionModeLabel(t *testing.T) {
	tests := []struct {
		pos  gitrepo.Position
		want string
	}{
		{gitrepo.WipPosition(), "Wip"},
		{gitrepo.FullPosition(), "Full"},
		{gitrepo.OffsetPosition(3), "-3"},
		{gitrepo.BrowsePosition(), "Browse"},
		{gitrepo.DocsPosition(), "Docs"},
	}
	for _, tt := range tests {
		if got := positionModeLabel(tt.pos); got != tt.want {
			t.Errorf("positionModeLabel(%+v) = %q, want %q", tt.pos, got, tt.want)
		}
	}
}
