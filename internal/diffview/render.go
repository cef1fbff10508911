package diffview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wilbur182/timecop/internal/forge"
	"github.com/wilbur182/timecop/internal/styles"
)

// Mode selects side-by-side or unified composition.
type Mode int

const (
	SideBySide Mode = iota
	Unified
)

// ResponsiveWidthThreshold is the render-width floor below which the
// auto-switch falls back to Unified.
const ResponsiveWidthThreshold = 100

// AutoMode is the width-based default; callers track an explicit
// override separately and clear it on resize.
func AutoMode(width int) Mode {
	if width < ResponsiveWidthThreshold {
		return Unified
	}
	return SideBySide
}

// LineLocation is the source (path, line, side) a visible row maps to.
type LineLocation struct {
	Path string
	Line int
	Side forge.Side
}

// Highlighters resolves a Highlighter for a path; Render calls it once
// per file and caches nothing. Callers may pass a function that always
// returns nil to disable highlighting.
type Highlighters func(path string) *Highlighter

// Render composes parsed into a screen region of the given width,
// returning the rendered text and a parallel per-row source location
// vector. Comment rows duplicate their anchor's location; a file-header
// or binary-file row carries only the path, a hunk-header row carries
// the path and the hunk's new-side start line, and the blank row between
// two files repeats the location of the row above it.
func Render(parsed Parsed, comments map[string][]forge.LineComment, mode Mode, width int, highlighterFor Highlighters) (string, []LineLocation) {
	var sb strings.Builder
	var locs []LineLocation
	seen := map[string]map[int]bool{}
	alreadyShown := func(path string, line int) bool {
		if seen[path] == nil {
			seen[path] = map[int]bool{}
		}
		if seen[path][line] {
			return true
		}
		seen[path][line] = true
		return false
	}

	emit := func(text string, loc LineLocation) {
		sb.WriteString(text)
		sb.WriteString("\n")
		locs = append(locs, loc)
	}

	for fi, f := range parsed.Files {
		if fi > 0 {
			emit("", locs[len(locs)-1])
		}
		path := f.Path()
		h := (*Highlighter)(nil)
		if highlighterFor != nil {
			h = highlighterFor(path)
		}

		if f.Binary {
			emit(styles.Muted.Render(fmt.Sprintf(" Binary file differs: %s", path)), LineLocation{Path: path})
			continue
		}

		emit(styles.DiffHeader.Render(fmt.Sprintf(" %s", path)), LineLocation{Path: path})

		for _, hk := range f.Hunks {
			headerLoc := LineLocation{Path: path, Line: hk.NewStart}
			emit(styles.DiffHeader.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@%s", hk.OldStart, hk.OldCount, hk.NewStart, hk.NewCount, hk.Header)), headerLoc)

			var rows []row
			if mode == SideBySide {
				rows = buildSideBySideRows(hk)
			} else {
				rows = buildUnifiedRows(hk)
			}

			for _, r := range rows {
				text, loc := renderRow(r, mode, width, path, h)
				emit(text, loc)

				if loc.Side == forge.New && loc.Line > 0 && !alreadyShown(path, loc.Line) {
					for _, c := range commentsAt(comments, path, loc.Line, forge.New) {
						emitCommentBlock(emit, loc, c, width)
					}
				}
			}
		}
	}

	return sb.String(), locs
}

// GetSelectedLocation returns the source location the cursor row of locs
// points at, clamping cursor to the vector's bounds. The side is already
// resolved during Render: deletion rows carry the old side, every other
// row carries the new side, so a cursor sitting over a deleted line
// naturally falls back to that line's old-side number rather than 0.
func GetSelectedLocation(locs []LineLocation, cursor int) (LineLocation, bool) {
	if len(locs) == 0 {
		return LineLocation{}, false
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(locs) {
		cursor = len(locs) - 1
	}
	return locs[cursor], true
}

func commentsAt(comments map[string][]forge.LineComment, path string, line int, side forge.Side) []forge.LineComment {
	var out []forge.LineComment
	for _, c := range comments[path] {
		if c.Line == line && c.Side == side {
			out = append(out, c)
		}
	}
	return out
}

func emitCommentBlock(emit func(string, LineLocation), loc LineLocation, c forge.LineComment, width int) {
	indent := "  "
	bodyWidth := width - len(indent)
	if bodyWidth < 10 {
		bodyWidth = 10
	}

	emit(styles.Muted.Render(fmt.Sprintf("┌─ %s", c.Author)), loc)
	for _, line := range wrapText(c.Body, bodyWidth) {
		emit(indent+styles.Body.Render(line), loc)
	}
	emit(styles.Muted.Render("└─"), loc)
}

func wrapText(body string, width int) []string {
	wrapped := lipgloss.NewStyle().Width(width).Render(body)
	return strings.Split(wrapped, "\n")
}

// row is one pending visible line before rendering: either a paired
// side-by-side row or a single unified row.
type row struct {
	left, right *Line
	single      *Line
}

func buildSideBySideRows(hk Hunk) []row {
	var rows []row
	i := 0
	lines := hk.Lines
	for i < len(lines) {
		switch lines[i].Type {
		case Context:
			l := lines[i]
			rows = append(rows, row{left: &l, right: &l})
			i++
		case Del:
			delStart := i
			for i < len(lines) && lines[i].Type == Del {
				i++
			}
			delEnd := i
			addStart := i
			for i < len(lines) && lines[i].Type == Add {
				i++
			}
			addEnd := i
			n := max(delEnd-delStart, addEnd-addStart)
			for j := 0; j < n; j++ {
				var l, r *Line
				if j < delEnd-delStart {
					ln := lines[delStart+j]
					l = &ln
				}
				if j < addEnd-addStart {
					ln := lines[addStart+j]
					r = &ln
				}
				rows = append(rows, row{left: l, right: r})
			}
		case Add:
			l := lines[i]
			rows = append(rows, row{right: &l})
			i++
		}
	}
	return rows
}

func buildUnifiedRows(hk Hunk) []row {
	rows := make([]row, 0, len(hk.Lines))
	for i := range hk.Lines {
		rows = append(rows, row{single: &hk.Lines[i]})
	}
	return rows
}

func renderRow(r row, mode Mode, width int, path string, h *Highlighter) (string, LineLocation) {
	if mode == Unified {
		return renderUnifiedRow(r.single, width, path, h)
	}
	return renderSideBySideRow(r, width, path, h)
}

func renderUnifiedRow(l *Line, width int, path string, h *Highlighter) (string, LineLocation) {
	numWidth := 5
	contentWidth := width - numWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
	}

	num := " "
	switch l.Type {
	case Del:
		if l.OldNum > 0 {
			num = fmt.Sprintf("%d", l.OldNum)
		}
	default:
		if l.NewNum > 0 {
			num = fmt.Sprintf("%d", l.NewNum)
		}
	}

	prefix := " "
	if l.Type == Add {
		prefix = "+"
	} else if l.Type == Del {
		prefix = "-"
	}

	gutter := styles.LineNumber.Width(numWidth).Render(num)
	content := renderContent(truncate(l.Content, contentWidth), l.Type, h)

	loc := LineLocation{Path: path, Line: l.NewNum, Side: forge.New}
	if l.Type == Del {
		loc = LineLocation{Path: path, Line: l.OldNum, Side: forge.Old}
	}
	return fmt.Sprintf("%s │%s%s", gutter, prefix, content), loc
}

func renderSideBySideRow(r row, width int, path string, h *Highlighter) (string, LineLocation) {
	panelWidth := (width - 3) / 2
	numWidth := 5
	contentWidth := panelWidth - numWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
	}

	leftText, leftNum := sidePanel(r.left, contentWidth, path, h)
	rightText, rightNum := sidePanel(r.right, contentWidth, path, h)

	leftGutter := styles.LineNumber.Width(numWidth).Render(leftNum)
	rightGutter := styles.LineNumber.Width(numWidth).Render(rightNum)

	line := fmt.Sprintf("%s │%s │ %s │%s", leftGutter, padToWidth(leftText, contentWidth), rightGutter, padToWidth(rightText, contentWidth))

	// The selected location prefers the new side; fall back to the old
	// side for pure-deletion rows.
	loc := LineLocation{Path: path}
	if r.right != nil && r.right.NewNum > 0 {
		loc.Line = r.right.NewNum
		loc.Side = forge.New
	} else if r.left != nil && r.left.OldNum > 0 {
		loc.Line = r.left.OldNum
		loc.Side = forge.Old
	}
	return line, loc
}

func sidePanel(l *Line, contentWidth int, path string, h *Highlighter) (text, num string) {
	if l == nil {
		return "", " "
	}
	switch l.Type {
	case Del:
		if l.OldNum > 0 {
			num = fmt.Sprintf("%d", l.OldNum)
		}
	default:
		if l.NewNum > 0 {
			num = fmt.Sprintf("%d", l.NewNum)
		}
	}
	if num == "" {
		num = " "
	}
	return renderContent(truncate(l.Content, contentWidth), l.Type, h), num
}

func truncate(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		r := []rune(s)
		if len(r) > maxWidth {
			return string(r[:maxWidth])
		}
		return s
	}
	r := []rune(s)
	for i := len(r); i > 0; i-- {
		candidate := string(r[:i]) + "..."
		if lipgloss.Width(candidate) <= maxWidth {
			return candidate
		}
	}
	return "..."
}

func padToWidth(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
