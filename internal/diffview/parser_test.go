package diffview

import "testing"

const sampleDiff = `diff --git a/main.go b/main.go
--- a/main.go
+++ b/main.go
@@ -1,3 +1,4 @@
 package main
-func old() {}
+func new() {}
+func extra() {}

`

func TestParseModifiedFile(t *testing.T) {
	p := Parse([]byte(sampleDiff))
	if len(p.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(p.Files))
	}
	f := p.Files[0]
	if f.Path() != "main.go" {
		t.Errorf("path = %q, want main.go", f.Path())
	}
	if len(f.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(f.Hunks))
	}
	h := f.Hunks[0]
	if h.OldStart != 1 || h.OldCount != 3 || h.NewStart != 1 || h.NewCount != 4 {
		t.Errorf("unexpected hunk range: %+v", h)
	}
	if len(h.Lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(h.Lines))
	}
	if h.Lines[0].Type != Context {
		t.Errorf("line 0 should be context, got %v", h.Lines[0].Type)
	}
	if h.Lines[1].Type != Del || h.Lines[1].OldNum != 2 {
		t.Errorf("line 1 should be del at old 2, got %+v", h.Lines[1])
	}
	if h.Lines[2].Type != Add || h.Lines[2].NewNum != 2 {
		t.Errorf("line 2 should be add at new 2, got %+v", h.Lines[2])
	}
}

const newFileDiff = `diff --git a/added.go b/added.go
new file mode 100644
--- /dev/null
+++ b/added.go
@@ -0,0 +1,2 @@
+line one
+line two
`

func TestParseNewFile(t *testing.T) {
	p := Parse([]byte(newFileDiff))
	f := p.Files[0]
	if !f.NewFile {
		t.Error("expected NewFile to be true")
	}
	if f.OldPath != "" {
		t.Errorf("expected empty old path, got %q", f.OldPath)
	}
	if f.Path() != "added.go" {
		t.Errorf("path = %q, want added.go", f.Path())
	}
}

const deletedFileDiff = `diff --git a/gone.go b/gone.go
deleted file mode 100644
--- a/gone.go
+++ /dev/null
@@ -1,1 +0,0 @@
-bye
`

func TestParseDeletedFile(t *testing.T) {
	p := Parse([]byte(deletedFileDiff))
	f := p.Files[0]
	if !f.Deleted {
		t.Error("expected Deleted to be true")
	}
	if f.Path() != "gone.go" {
		t.Errorf("path = %q, want gone.go (falls back to old path)", f.Path())
	}
}

const binaryDiff = `diff --git a/image.png b/image.png
Binary file image.png differs
`

func TestParseBinaryFile(t *testing.T) {
	p := Parse([]byte(binaryDiff))
	f := p.Files[0]
	if !f.Binary {
		t.Error("expected Binary to be true")
	}
	if len(f.Hunks) != 0 {
		t.Errorf("expected no hunks for a binary file, got %d", len(f.Hunks))
	}
}

func TestParseMultipleFiles(t *testing.T) {
	combined := sampleDiff + newFileDiff
	p := Parse([]byte(combined))
	if len(p.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(p.Files))
	}
}
