package diffview

import "testing"

func TestNewHighlighterReturnsNilForUnknownExtension(t *testing.T) {
	if h := NewHighlighter("file.nonexistentext12345"); h != nil {
		t.Error("expected no highlighter for an unrecognized extension")
	}
}

func TestHighlightWithNilHighlighterReturnsRawText(t *testing.T) {
	var h *Highlighter
	segs := h.Highlight("package main")
	if len(segs) != 1 || segs[0].Text != "package main" {
		t.Errorf("expected raw passthrough, got %+v", segs)
	}
}
