package gitrepo

import (
	"bytes"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const diffContext = 3

// maxBinaryProbe mirrors git's own heuristic: scan only the first 8KB
// when deciding whether content is binary.
const maxBinaryProbe = 8192

func isBinary(content []byte) bool {
	n := len(content)
	if n > maxBinaryProbe {
		n = maxBinaryProbe
	}
	return bytes.IndexByte(content[:n], 0) >= 0
}

type lineEntry struct {
	kind   byte // 'e', 'i', 'd'
	text   string
	oldNum int
	newNum int
}

// lineDiff produces a flat, line-numbered edit script between old and
// new using a line-mode Myers diff.
func lineDiff(oldContent, newContent []byte) []lineEntry {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(oldContent), string(newContent))
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var entries []lineEntry
	oldNum, newNum := 1, 1
	for _, d := range diffs {
		lines := splitLines(d.Text)
		var kind byte
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			kind = 'e'
		case diffmatchpatch.DiffInsert:
			kind = 'i'
		case diffmatchpatch.DiffDelete:
			kind = 'd'
		}
		for _, l := range lines {
			e := lineEntry{kind: kind, text: l}
			switch kind {
			case 'e':
				e.oldNum, e.newNum = oldNum, newNum
				oldNum++
				newNum++
			case 'd':
				e.oldNum = oldNum
				oldNum++
			case 'i':
				e.newNum = newNum
				newNum++
			}
			entries = append(entries, e)
		}
	}
	return entries
}

// splitLines splits text on "\n", dropping the final empty element
// produced when text ends in a newline (every diffmatchpatch line chunk
// does, except possibly the very last line of the file).
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// hunk is a contiguous run of the flat edit script (entries[startIdx:
// startIdx+len(lines)]) destined to become one "@@" block.
type hunk struct {
	startIdx int
	lines    []lineEntry

	oldStart, oldCount int
	newStart, newCount int
}

func (h *hunk) endIdx() int { return h.startIdx + len(h.lines) }

// buildHunks groups a flat edit script into unified-diff hunks,
// expanding each change run by up to context equal lines on either side
// and merging runs that end up overlapping or adjacent.
func buildHunks(entries []lineEntry, context int) []hunk {
	var changeRanges [][2]int
	i := 0
	for i < len(entries) {
		if entries[i].kind == 'e' {
			i++
			continue
		}
		start := i
		for i < len(entries) && entries[i].kind != 'e' {
			i++
		}
		changeRanges = append(changeRanges, [2]int{start, i})
	}
	if len(changeRanges) == 0 {
		return nil
	}

	var hunks []hunk
	for _, cr := range changeRanges {
		lo := cr[0] - context
		if lo < 0 {
			lo = 0
		}
		hi := cr[1] + context
		if hi > len(entries) {
			hi = len(entries)
		}
		if len(hunks) > 0 && lo <= hunks[len(hunks)-1].endIdx() {
			hunks[len(hunks)-1].setRange(entries, hunks[len(hunks)-1].startIdx, hi)
			continue
		}
		h := hunk{}
		h.setRange(entries, lo, hi)
		hunks = append(hunks, h)
	}
	return hunks
}

// setRange (re)populates the hunk from entries[lo:hi] and recomputes its
// old/new start and count from scratch.
func (h *hunk) setRange(entries []lineEntry, lo, hi int) {
	h.startIdx = lo
	h.lines = append([]lineEntry(nil), entries[lo:hi]...)
	h.oldStart, h.oldCount, h.newStart, h.newCount = 0, 0, 0, 0

	for _, l := range h.lines {
		switch l.kind {
		case 'e':
			if h.oldStart == 0 {
				h.oldStart = l.oldNum
			}
			if h.newStart == 0 {
				h.newStart = l.newNum
			}
			h.oldCount++
			h.newCount++
		case 'd':
			if h.oldStart == 0 {
				h.oldStart = l.oldNum
			}
			h.oldCount++
		case 'i':
			if h.newStart == 0 {
				h.newStart = l.newNum
			}
			h.newCount++
		}
	}
}
