package app

import (
	"strconv"
	"strings"

	"github.com/wilbur182/timecop/internal/diffview"
	"github.com/wilbur182/timecop/internal/forge"
	"github.com/wilbur182/timecop/internal/preview"
	"github.com/wilbur182/timecop/internal/styles"
	"github.com/wilbur182/timecop/internal/ui"
)

// renderPreview materializes the current preview content into the
// Preview pane's body, dispatching on Content.Kind.
func (m *Model) renderPreview(width int) string {
	c := m.previewContent
	switch c.Kind {
	case preview.Empty:
		return styles.Muted.Render("nothing to show")

	case preview.Loading:
		reason := c.Reason
		if reason == "" {
			reason = "loading"
		}
		return styles.Muted.Render(reason + "…")

	case preview.PrDetails:
		return m.renderPrDetails(width)

	case preview.FolderDiff, preview.FileDiff:
		return m.renderDiff(c, width)

	case preview.FileContent:
		return string(c.Blob)

	default:
		return ""
	}
}

func (m *Model) renderPrDetails(width int) string {
	if m.pr == nil {
		return styles.Muted.Render("no pull request for this branch")
	}
	var b strings.Builder
	b.WriteString(styles.Title.Render(m.pr.Title))
	b.WriteByte('\n')
	b.WriteString(styles.Muted.Render("#" + strconv.Itoa(m.pr.Number) + " by " + m.pr.Author + " · " + m.pr.State))
	b.WriteString("\n\n")
	if m.md != nil {
		for _, line := range m.md.RenderContent(m.pr.Body, width) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	} else {
		b.WriteString(m.pr.Body)
		b.WriteByte('\n')
	}
	for _, r := range m.pr.Reviews {
		b.WriteString(styles.Subtle.Render(r.Author + ": " + r.State))
		b.WriteByte('\n')
	}
	for _, cm := range m.pr.GeneralComments {
		b.WriteString(styles.Subtle.Render(cm.Author + ": " + cm.Body))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *Model) renderDiff(c preview.Content, width int) string {
	if len(c.Diff) == 0 {
		return styles.Muted.Render("no changes")
	}
	parsed := diffview.Parse(c.Diff)
	mode := diffview.AutoMode(width)
	if m.diffModeOverride != nil {
		mode = *m.diffModeOverride
	}

	rendered, lineMap := diffview.Render(parsed, m.prFileComments(), mode, width, m.highlighterFor)
	m.lineMap = lineMap
	if m.previewCursor >= len(lineMap) {
		m.previewCursor = len(lineMap) - 1
	}
	if m.previewCursor < 0 {
		m.previewCursor = 0
	}
	if m.focus != ui.PreviewPane || len(lineMap) == 0 {
		return rendered
	}

	rows := strings.Split(rendered, "\n")
	if m.previewCursor < len(rows) {
		rows[m.previewCursor] = ui.InjectSelectionBackground(rows[m.previewCursor])
	}
	return strings.Join(rows, "\n")
}

// prFileComments returns the active pull request's line comments, or
// nil when there is none.
func (m *Model) prFileComments() map[string][]forge.LineComment {
	if m.pr == nil {
		return nil
	}
	return m.pr.FileComments
}

// highlighterFor resolves a syntax highlighter for path, caching
// nothing itself: diffview.NewHighlighter is cheap relative to parsing.
func (m *Model) highlighterFor(path string) *diffview.Highlighter {
	return diffview.NewHighlighter(path)
}
