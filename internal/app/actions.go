package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/timecop/internal/clipboard"
	"github.com/wilbur182/timecop/internal/diffview"
	"github.com/wilbur182/timecop/internal/editor"
	"github.com/wilbur182/timecop/internal/forge"
	"github.com/wilbur182/timecop/internal/gitrepo"
	"github.com/wilbur182/timecop/internal/preview"
	"github.com/wilbur182/timecop/internal/tree"
	"github.com/wilbur182/timecop/internal/ui"
)

// yankPreviewCmd copies the current preview's raw text (diff or blob) to
// the system clipboard, reported through a toast since clipboard errors
// are non-fatal.
func (m *Model) yankPreviewCmd() tea.Cmd {
	var text string
	switch m.previewContent.Kind {
	case preview.FolderDiff, preview.FileDiff:
		text = string(m.previewContent.Diff)
	case preview.FileContent:
		text = string(m.previewContent.Blob)
	default:
		return nil
	}
	if text == "" {
		return nil
	}
	return func() tea.Msg {
		return clipboardResultMsg{err: clipboard.Copy(text)}
	}
}

// timelineChangedCmd re-fetches everything that depends on the timeline
// position: the status list (which drives the file tree) and, once that
// lands, the diff stats and preview content.
func (m *Model) timelineChangedCmd() tea.Cmd {
	return m.refreshStatusCmd()
}

// moveTimeline steps the position by delta along the CommitOffset(D..1),
// Full, Wip slot order; it is a no-op from Browse or Docs.
func (m *Model) moveTimeline(delta int) {
	if m.timeline.Kind == gitrepo.Browse || m.timeline.Kind == gitrepo.Docs {
		return
	}

	slot := 0
	switch m.timeline.Kind {
	case gitrepo.CommitOffset:
		slot = m.depth - m.timeline.Offset
	case gitrepo.Full:
		slot = m.depth
	case gitrepo.Wip:
		slot = m.depth + 1
	}

	slot += delta
	if slot < 0 {
		slot = 0
	}
	maxSlot := m.depth + 1
	if slot > maxSlot {
		slot = maxSlot
	}

	switch {
	case slot < m.depth:
		m.timeline = gitrepo.OffsetPosition(m.depth - slot)
	case slot == m.depth:
		m.timeline = gitrepo.FullPosition()
	default:
		m.timeline = gitrepo.WipPosition()
	}
}

// toggleWipFull flips between the Wip and Full endpoints; from any other
// position it jumps to Wip.
func (m *Model) toggleWipFull() {
	if m.timeline.Kind == gitrepo.Wip {
		m.timeline = gitrepo.FullPosition()
		return
	}
	m.timeline = gitrepo.WipPosition()
}

// setTimeline jumps directly to pos. Browse/Docs auto-collapse is applied
// or cleared by mergeStatus once the status list for pos arrives.
func (m *Model) setTimeline(pos gitrepo.Position) {
	m.timeline = pos
}

// cycleFocus moves keyboard focus among the three panes in display
// order.
func (m *Model) cycleFocus(delta int) {
	order := []ui.Pane{ui.FilesPane, ui.PrListPane, ui.PreviewPane}
	idx := 0
	for i, p := range order {
		if p == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	m.focus = order[idx]
}

// collapseSelected collapses the folder at the cursor, or its parent
// when a file is selected.
func (m *Model) collapseSelected() {
	sel := m.tree.Selection()
	switch sel.Kind {
	case tree.SelFolder:
		m.tree.Collapse(sel.Path)
	case tree.SelFile:
		if parent := parentPath(sel.Path); parent != "" {
			m.tree.Collapse(parent)
		}
	}
}

// expandOrOpenSelected expands a collapsed folder, or opens the
// selected file in the external editor.
func (m *Model) expandOrOpenSelected() tea.Cmd {
	sel := m.tree.Selection()
	switch sel.Kind {
	case tree.SelFolder:
		m.tree.Expand(sel.Path)
		return nil
	case tree.SelFile:
		return m.openInEditorCmd()
	}
	return nil
}

func parentPath(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return ""
}

// movePreviewCursor steps the preview pane's cursor row within the
// current line map, clamped to its bounds; a no-op when there is
// nothing rendered yet.
func (m *Model) movePreviewCursor(delta int) {
	if len(m.lineMap) == 0 {
		return
	}
	cursor := m.previewCursor + delta
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(m.lineMap) {
		cursor = len(m.lineMap) - 1
	}
	m.previewCursor = cursor
}

// selectedLocation resolves the (path, line) the user is currently
// pointing at: the preview cursor's row when the Preview pane has
// focus and a diff is rendered, otherwise the first changed line of
// whichever file is selected in the Files pane.
func (m *Model) selectedLocation() (path string, line int, ok bool) {
	if m.focus == ui.PreviewPane {
		if loc, found := diffview.GetSelectedLocation(m.lineMap, m.previewCursor); found {
			return loc.Path, loc.Line, true
		}
		return "", 0, false
	}

	sel := m.tree.Selection()
	if sel.Kind != tree.SelFile {
		return "", 0, false
	}
	return sel.Path, m.firstChangedLine(sel.Path), true
}

// selectedLineLocation resolves the full (path, line, side) location a
// line comment should anchor to, by the same rule as selectedLocation:
// the preview cursor's row when the Preview pane has focus, otherwise
// the first line-map entry for the file selected in the Files pane.
func (m *Model) selectedLineLocation() *diffview.LineLocation {
	if len(m.lineMap) == 0 {
		return nil
	}

	if m.focus == ui.PreviewPane {
		loc, ok := diffview.GetSelectedLocation(m.lineMap, m.previewCursor)
		if !ok {
			return nil
		}
		return &loc
	}

	sel := m.tree.Selection()
	if sel.Kind != tree.SelFile {
		return nil
	}
	for i := range m.lineMap {
		if m.lineMap[i].Path == sel.Path {
			loc := m.lineMap[i]
			return &loc
		}
	}
	return nil
}

// openInEditorCmd suspends the TUI to open the selected file in the
// user's editor, anchored at the current line when one is known.
func (m *Model) openInEditorCmd() tea.Cmd {
	path, line, ok := m.selectedLocation()
	if !ok {
		return nil
	}

	if m.watcher != nil {
		m.watcher.Pause()
	}
	return editor.Open(m.repo.Path()+"/"+path, line)
}

func (m *Model) firstChangedLine(path string) int {
	for _, loc := range m.lineMap {
		if loc.Path == path {
			return loc.Line
		}
	}
	return 0
}

// resumeAfterEditor resumes the paused watcher and issues a synthetic
// refresh once the editor process exits.
func (m *Model) resumeAfterEditor(msg editor.OpenMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.ShowToast("editor exited with an error: "+msg.Err.Error(), true, 3*time.Second)
	}
	if m.watcher != nil {
		m.watcher.Resume()
	}
	return m, tea.Batch(tea.ClearScreen, m.refreshAllCmd())
}

func (m *Model) openHelp() {
	m.activeModal = helpModal
	m.modalView = ui.HelpModal()
}

func (m *Model) openRequestChanges() {
	ti := textinput.New()
	ti.Placeholder = "reason"
	ti.Focus()
	m.inputReason = &ti
	m.activeModal = requestChangesModal
	m.modalView = ui.ApprovalModal("Request changes", m.inputReason)
}

func (m *Model) openReviewComment() {
	ta := textarea.New()
	ta.Placeholder = "comment"
	ta.Focus()
	m.inputBody = &ta
	m.pendingLoc = nil
	m.activeModal = reviewCommentModal
	m.modalView = ui.TextInputModal("Comment", m.inputBody)
}

func (m *Model) openLineComment() {
	loc := m.selectedLineLocation()
	if loc == nil {
		return
	}
	ta := textarea.New()
	ta.Placeholder = "comment"
	ta.Focus()
	m.inputBody = &ta
	m.pendingLoc = loc
	m.activeModal = lineCommentModal
	m.modalView = ui.TextInputModal("Line comment", m.inputBody)
}

// updateModal forwards input to the open modal and runs its submit
// action, if any, once Enter/click resolves one.
func (m *Model) updateModal(msg tea.Msg) tea.Cmd {
	if m.modalView == nil {
		return nil
	}
	action, cmd := m.modalView.Update(msg)
	switch action {
	case "submit":
		return tea.Batch(cmd, m.submitModal())
	case "cancel":
		m.closeModal()
		return nil
	}
	return cmd
}

func (m *Model) cancelModal() tea.Cmd {
	m.closeModal()
	return nil
}

func (m *Model) closeModal() {
	m.activeModal = noModal
	m.modalView = nil
	m.inputBody = nil
	m.inputReason = nil
	m.pendingLoc = nil
}

// submitModal dispatches the active modal's action to the forge
// adapter and closes the modal.
func (m *Model) submitModal() tea.Cmd {
	kind := m.activeModal
	fg := m.forge
	if fg == nil || m.pr == nil {
		m.closeModal()
		return nil
	}
	n := m.pr.Number

	var cmd tea.Cmd
	switch kind {
	case requestChangesModal:
		reason := ""
		if m.inputReason != nil {
			reason = m.inputReason.Value()
		}
		cmd = func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), forge.CallTimeout)
			defer cancel()
			return forgeActionResultMsg{err: fg.RequestChanges(ctx, n, reason)}
		}
	case reviewCommentModal:
		body := ""
		if m.inputBody != nil {
			body = m.inputBody.Value()
		}
		cmd = func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), forge.CallTimeout)
			defer cancel()
			return forgeActionResultMsg{err: fg.Comment(ctx, n, body)}
		}
	case lineCommentModal:
		body := ""
		if m.inputBody != nil {
			body = m.inputBody.Value()
		}
		loc := m.pendingLoc
		if loc != nil {
			cmd = func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), forge.CallTimeout)
				defer cancel()
				return forgeActionResultMsg{err: fg.AddLineComment(ctx, n, loc.Path, loc.Line, loc.Side, body)}
			}
		}
	}

	m.closeModal()
	return cmd
}
