package gitrepo

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v6/plumbing/object"
)

// DefaultTruncationCeiling is the default hard line ceiling applied to
// diff output.
const DefaultTruncationCeiling = 10000

// TruncationSentinel is appended verbatim when output is cut at the
// ceiling; callers must render it as-is.
const TruncationSentinel = "... (diff truncated, output exceeds the rendering limit)"

// TruncationCeiling may be overridden by configuration; it defaults to
// DefaultTruncationCeiling.
var TruncationCeiling = DefaultTruncationCeiling

// Diff produces a unified-diff byte stream for position narrowed by
// scope. Output is truncated at TruncationCeiling lines with
// TruncationSentinel appended.
func (r *Repo) Diff(pos Position, scope Scope) ([]byte, error) {
	if pos.Kind == Browse || pos.Kind == Docs {
		return nil, nil
	}

	entries, err := r.Status(pos)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	lineCount := 0
	truncated := false

	for _, e := range entries {
		if !scopeMatches(scope, e.Path) {
			continue
		}
		old, new, oldExists, newExists, err := r.loadPair(pos, e.Path)
		if err != nil {
			continue
		}

		block := renderFileDiff(e.Path, old, new, oldExists, newExists)
		blockLines := strings.Count(block, "\n")
		if lineCount+blockLines > TruncationCeiling {
			truncated = true
			break
		}
		buf.WriteString(block)
		lineCount += blockLines
	}

	if truncated {
		buf.WriteString(TruncationSentinel)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// DiffStats returns the total added/removed line counts for the whole
// position.
func (r *Repo) DiffStats(pos Position) (added, removed int, err error) {
	if pos.Kind == Browse || pos.Kind == Docs {
		return 0, 0, nil
	}

	entries, err := r.Status(pos)
	if err != nil {
		return 0, 0, err
	}

	for _, e := range entries {
		old, new, oldExists, newExists, lerr := r.loadPair(pos, e.Path)
		if lerr != nil {
			continue
		}
		if !oldExists || !newExists {
			// Whole-file add or delete: every line counts one way.
			content := new
			if !newExists {
				content = old
			}
			n := strings.Count(string(content), "\n") + 1
			if len(content) == 0 {
				n = 0
			}
			if !oldExists {
				added += n
			} else {
				removed += n
			}
			continue
		}
		a, d := diffStatsForPair(old, new)
		added += a
		removed += d
	}
	return added, removed, nil
}

func diffStatsForPair(old, new []byte) (added, removed int) {
	for _, e := range lineDiff(old, new) {
		switch e.kind {
		case 'i':
			added++
		case 'd':
			removed++
		}
	}
	return
}

func scopeMatches(scope Scope, path string) bool {
	switch scope.Kind {
	case ScopeWhole:
		return true
	case ScopePath:
		return path == scope.Path
	case ScopePrefix:
		return path == scope.Path || strings.HasPrefix(path, strings.TrimSuffix(scope.Path, "/")+"/")
	default:
		return false
	}
}

// loadPair resolves the old and new blob/working-directory content for a
// single path under pos.
func (r *Repo) loadPair(pos Position, path string) (old, new []byte, oldExists, newExists bool, err error) {
	switch pos.Kind {
	case Wip:
		head, herr := r.Head()
		if herr != nil {
			return nil, nil, false, false, herr
		}
		old, oldExists = blobAt(head, path)
		new, newExists, err = r.workdirFile(path)
		return old, new, oldExists, newExists, err
	case Full:
		mb, merr := r.MergeBase()
		if merr != nil {
			return nil, nil, false, false, merr
		}
		old, oldExists = blobAt(mb, path)
		new, newExists, err = r.workdirFile(path)
		return old, new, oldExists, newExists, err
	case CommitOffset:
		child, parent, cerr := r.FirstParentOffset(pos.Offset)
		if cerr != nil {
			return nil, nil, false, false, cerr
		}
		old, oldExists = blobAt(parent, path)
		new, newExists = blobAt(child, path)
		return old, new, oldExists, newExists, nil
	default:
		return nil, nil, false, false, nil
	}
}

func blobAt(commit *object.Commit, path string) ([]byte, bool) {
	tree, err := commit.Tree()
	if err != nil {
		return nil, false
	}
	f, err := tree.File(path)
	if err != nil {
		return nil, false
	}
	content, err := f.Contents()
	if err != nil {
		return nil, false
	}
	return []byte(content), true
}

func (r *Repo) workdirFile(path string) ([]byte, bool, error) {
	wt, err := r.git.Worktree()
	if err != nil {
		return nil, false, wrap(KindIoError, path, err)
	}
	data, err := readWorkdirFile(wt, path)
	if err != nil {
		return nil, false, nil
	}
	return data, true, nil
}

// renderFileDiff builds the "diff --git"/"---"/"+++"/"@@" text for one
// file, handling new files, deletions, binary content, and the common
// modified case.
func renderFileDiff(path string, old, new []byte, oldExists, newExists bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "diff --git a/%s b/%s\n", path, path)

	switch {
	case !oldExists && newExists:
		sb.WriteString("new file mode 100644\n")
		if isBinary(new) {
			fmt.Fprintf(&sb, "Binary file %s\n", path)
			return sb.String()
		}
		sb.WriteString("--- /dev/null\n")
		fmt.Fprintf(&sb, "+++ b/%s\n", path)
		writeWholeFileHunk(&sb, new, true)
		return sb.String()

	case oldExists && !newExists:
		sb.WriteString("deleted file mode 100644\n")
		if isBinary(old) {
			fmt.Fprintf(&sb, "Binary file %s\n", path)
			return sb.String()
		}
		fmt.Fprintf(&sb, "--- a/%s\n", path)
		sb.WriteString("+++ /dev/null\n")
		writeWholeFileHunk(&sb, old, false)
		return sb.String()

	default:
		if isBinary(old) || isBinary(new) {
			fmt.Fprintf(&sb, "Binary file %s\n", path)
			return sb.String()
		}
		fmt.Fprintf(&sb, "--- a/%s\n", path)
		fmt.Fprintf(&sb, "+++ b/%s\n", path)
		entries := lineDiff(old, new)
		for _, h := range buildHunks(entries, diffContext) {
			writeHunk(&sb, h)
		}
		return sb.String()
	}
}

func writeWholeFileHunk(sb *strings.Builder, content []byte, added bool) {
	lines := splitLines(string(content))
	if len(lines) == 0 {
		return
	}
	if added {
		fmt.Fprintf(sb, "@@ -0,0 +1,%d @@\n", len(lines))
	} else {
		fmt.Fprintf(sb, "@@ -1,%d +0,0 @@\n", len(lines))
	}
	prefix := "+"
	if !added {
		prefix = "-"
	}
	for _, l := range lines {
		sb.WriteString(prefix)
		sb.WriteString(l)
		sb.WriteString("\n")
	}
}

func writeHunk(sb *strings.Builder, h hunk) {
	fmt.Fprintf(sb, "@@ -%d,%d +%d,%d @@\n", h.oldStart, h.oldCount, h.newStart, h.newCount)
	for _, l := range h.lines {
		switch l.kind {
		case 'e':
			sb.WriteString(" ")
		case 'd':
			sb.WriteString("-")
		case 'i':
			sb.WriteString("+")
		}
		sb.WriteString(l.text)
		sb.WriteString("\n")
	}
}
