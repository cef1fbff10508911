package app

import (
	"testing"

	"github.com/wilbur182/timecop/internal/preview"
	"github.com/wilbur182/timecop/internal/ui"
)

func TestPreviewFocus(t *testing.T) {
	tests := []struct {
		pane ui.Pane
		want preview.FocusedPane
	}{
		{ui.PrListPane, preview.PRListPane},
		{ui.PreviewPane, preview.PreviewPane},
		{ui.FilesPane, preview.FilesPane},
	}
	for _, tt := range tests {
		m := &Model{focus: tt.pane}
		if got := m.previewFocus(); got != tt.want {
			t.Errorf("previewFocus() with focus=%v = %v, want %v", tt.pane, got, tt.want)
		}
	}
}
