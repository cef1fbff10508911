package app

import (
	"strings"

	"github.com/wilbur182/timecop/internal/gitrepo"
	"github.com/wilbur182/timecop/internal/styles"
	"github.com/wilbur182/timecop/internal/tree"
	"github.com/wilbur182/timecop/internal/ui"
)

// renderFiles renders the Files pane: one row per flattened tree entry,
// indented by depth, with a status glyph and the cursor row highlighted.
func (m *Model) renderFiles(width int) string {
	flat := m.tree.Flat()
	cursor := m.tree.Cursor()

	var b strings.Builder
	for i, e := range flat {
		row := renderFileRow(e)
		if i == cursor && m.focus == ui.FilesPane {
			row = ui.InjectSelectionBackground(row)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(row)
	}
	return b.String()
}

func renderFileRow(e tree.FlatEntry) string {
	indent := strings.Repeat("  ", e.Depth)
	if e.Path == "" {
		return indent + styles.TreeDir.Render(".")
	}

	glyph := " "
	if e.Kind == tree.Dir {
		glyph = statusGlyph(firstOrUnchanged(e.Statuses))
		if e.Collapsed {
			glyph = "+" + glyph
		}
	} else {
		glyph = statusGlyph(e.Status)
	}
	if e.HasComments {
		glyph += "*"
	}

	name := e.Name
	if e.Kind == tree.Dir {
		name = styles.TreeDir.Render(name + "/")
	} else {
		name = styles.TreeFile.Render(name)
	}

	return indent + glyph + " " + name
}

func firstOrUnchanged(kinds []gitrepo.StatusKind) gitrepo.StatusKind {
	if len(kinds) == 0 {
		return gitrepo.Unchanged
	}
	return kinds[0]
}

func statusGlyph(s gitrepo.StatusKind) string {
	switch s {
	case gitrepo.Modified:
		return styles.StatusModified.Render("M")
	case gitrepo.Added:
		return styles.StatusStaged.Render("A")
	case gitrepo.Deleted:
		return styles.StatusDeleted.Render("D")
	case gitrepo.Renamed:
		return styles.StatusStaged.Render("R")
	case gitrepo.Untracked:
		return styles.StatusUntracked.Render("?")
	default:
		return " "
	}
}
