package gitrepo

import "testing"

func TestLineDiffEqual(t *testing.T) {
	content := []byte("a\nb\nc\n")
	entries := lineDiff(content, content)
	for _, e := range entries {
		if e.kind != 'e' {
			t.Fatalf("expected all lines equal, got kind %c for %q", e.kind, e.text)
		}
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
}

func TestLineDiffModification(t *testing.T) {
	old := []byte("one\ntwo\nthree\n")
	new := []byte("one\nTWO\nthree\n")

	entries := lineDiff(old, new)
	added, removed := 0, 0
	for _, e := range entries {
		switch e.kind {
		case 'i':
			added++
		case 'd':
			removed++
		}
	}
	if added != 1 || removed != 1 {
		t.Fatalf("added=%d removed=%d, want 1 and 1", added, removed)
	}
}

func TestBuildHunksMergesAdjacentRuns(t *testing.T) {
	old := []byte("1\n2\n3\n4\n5\n6\n7\n8\n9\n")
	new := []byte("1\n2\nX\n4\n5\n6\n7\n8\nY\n")

	entries := lineDiff(old, new)
	hunks := buildHunks(entries, 3)
	if len(hunks) == 0 {
		t.Fatal("expected at least one hunk")
	}
	total := 0
	for _, h := range hunks {
		total += len(h.lines)
	}
	if total > len(entries) {
		t.Fatalf("hunk lines %d exceed entries %d", total, len(entries))
	}
}

func TestScopeMatches(t *testing.T) {
	if !scopeMatches(WholeScope(), "any/path.go") {
		t.Error("whole scope should match everything")
	}
	if !scopeMatches(PathScope("src/a.rs"), "src/a.rs") {
		t.Error("path scope should match exact path")
	}
	if scopeMatches(PathScope("src/a.rs"), "src/b.rs") {
		t.Error("path scope should not match a different path")
	}
	if !scopeMatches(PrefixScope("src"), "src/a.rs") {
		t.Error("prefix scope should match nested path")
	}
	if scopeMatches(PrefixScope("src"), "srcfoo/a.rs") {
		t.Error("prefix scope should not match a sibling with a shared string prefix")
	}
}

func TestClampOffset(t *testing.T) {
	cases := []struct {
		n, depth, want int
	}{
		{0, 5, 1},
		{3, 5, 3},
		{10, 5, 5},
		{1, 0, 0},
	}
	for _, c := range cases {
		if got := ClampOffset(c.n, c.depth); got != c.want {
			t.Errorf("ClampOffset(%d, %d) = %d, want %d", c.n, c.depth, got, c.want)
		}
	}
}

func TestIsBinaryDetectsNullByte(t *testing.T) {
	if isBinary([]byte("hello world")) {
		t.Error("plain text should not be detected as binary")
	}
	if !isBinary([]byte("hello\x00world")) {
		t.Error("content with a null byte should be detected as binary")
	}
}
