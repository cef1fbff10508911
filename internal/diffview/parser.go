// Package diffview parses the unified-diff byte stream produced by
// internal/gitrepo and renders it as a side-by-side or unified screen
// region, overlaying PR line comments and tracking a row-to-source
// line map for yank/open-in-editor.
package diffview

import (
	"regexp"
	"strconv"
	"strings"
)

// LineType is the unified-diff prefix a line carries.
type LineType int

const (
	Context LineType = iota
	Add
	Del
)

// Line is a single line within a hunk.
type Line struct {
	Type    LineType
	Content string
	OldNum  int // 0 when the line has no old-side number (Add)
	NewNum  int // 0 when the line has no new-side number (Del)
}

// Hunk is one "@@ -a,b +c,d @@" block.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Header   string // text following the closing "@@", if any
	Lines    []Line
}

// FileDiff is the parsed diff for a single path.
type FileDiff struct {
	OldPath string
	NewPath string
	Binary  bool
	NewFile bool
	Deleted bool
	Hunks   []Hunk
}

// Parsed is the full parsed output of a Diff byte stream.
type Parsed struct {
	Files []FileDiff
}

var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@(.*)$`)

// Parse turns a unified-diff byte stream into a sequence of per-file
// hunks. Unrecognized lines between file blocks are ignored.
func Parse(data []byte) Parsed {
	lines := strings.Split(string(data), "\n")

	var result Parsed
	var cur *FileDiff
	var hunk *Hunk
	oldLine, newLine := 0, 0

	flushHunk := func() {
		if hunk != nil && cur != nil {
			cur.Hunks = append(cur.Hunks, *hunk)
			hunk = nil
		}
	}
	flushFile := func() {
		flushHunk()
		if cur != nil {
			result.Files = append(result.Files, *cur)
			cur = nil
		}
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			flushFile()
			path := parseGitDiffPath(line)
			cur = &FileDiff{OldPath: path, NewPath: path}

		case strings.HasPrefix(line, "new file mode"):
			if cur != nil {
				cur.NewFile = true
				cur.OldPath = ""
			}

		case strings.HasPrefix(line, "deleted file mode"):
			if cur != nil {
				cur.Deleted = true
				cur.NewPath = ""
			}

		case strings.HasPrefix(line, "Binary file"):
			if cur != nil {
				cur.Binary = true
			}

		case strings.HasPrefix(line, "--- "):
			if cur != nil {
				cur.OldPath = stripDiffPrefix(strings.TrimPrefix(line, "--- "))
			}

		case strings.HasPrefix(line, "+++ "):
			if cur != nil {
				cur.NewPath = stripDiffPrefix(strings.TrimPrefix(line, "+++ "))
			}

		case hunkHeaderRe.MatchString(line):
			flushHunk()
			m := hunkHeaderRe.FindStringSubmatch(line)
			oldStart, _ := strconv.Atoi(m[1])
			oldCount := 1
			if m[2] != "" {
				oldCount, _ = strconv.Atoi(m[2])
			}
			newStart, _ := strconv.Atoi(m[3])
			newCount := 1
			if m[4] != "" {
				newCount, _ = strconv.Atoi(m[4])
			}
			hunk = &Hunk{OldStart: oldStart, OldCount: oldCount, NewStart: newStart, NewCount: newCount, Header: m[5]}
			oldLine, newLine = oldStart, newStart

		case hunk != nil && strings.HasPrefix(line, "+"):
			hunk.Lines = append(hunk.Lines, Line{Type: Add, Content: strings.TrimPrefix(line, "+"), NewNum: newLine})
			newLine++

		case hunk != nil && strings.HasPrefix(line, "-"):
			hunk.Lines = append(hunk.Lines, Line{Type: Del, Content: strings.TrimPrefix(line, "-"), OldNum: oldLine})
			oldLine++

		case hunk != nil && strings.HasPrefix(line, " "):
			hunk.Lines = append(hunk.Lines, Line{Type: Context, Content: strings.TrimPrefix(line, " "), OldNum: oldLine, NewNum: newLine})
			oldLine++
			newLine++

		case line == `\ No newline at end of file`:
			// ignored

		default:
			// blank separator or truncation sentinel; ignored
		}
	}

	flushFile()
	return result
}

func parseGitDiffPath(line string) string {
	rest := strings.TrimPrefix(line, "diff --git ")
	idx := strings.Index(rest, " b/")
	if idx < 0 {
		return ""
	}
	return strings.TrimPrefix(rest[:idx], "a/")
}

func stripDiffPrefix(path string) string {
	if path == "/dev/null" {
		return ""
	}
	if strings.HasPrefix(path, "a/") || strings.HasPrefix(path, "b/") {
		return path[2:]
	}
	return path
}

// Path returns the file's path, preferring the new side.
func (f FileDiff) Path() string {
	if f.NewPath != "" {
		return f.NewPath
	}
	return f.OldPath
}
