package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/timecop/internal/editor"
	"github.com/wilbur182/timecop/internal/events"
	"github.com/wilbur182/timecop/internal/forge"
	"github.com/wilbur182/timecop/internal/loader"
	"github.com/wilbur182/timecop/internal/mouse"
	"github.com/wilbur182/timecop/internal/preview"
	"github.com/wilbur182/timecop/internal/ui"
)

// forgeActionResultMsg carries the outcome of a forge mutation: approve,
// request-changes, a review comment, or a line comment.
type forgeActionResultMsg struct{ err error }

// clipboardResultMsg carries the outcome of a yank-to-clipboard action.
type clipboardResultMsg struct{ err error }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		events.Tick(),
		m.refreshAllCmd(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case events.TickMsg:
		m.ClearToast()
		return m, m.handleTick()

	case events.FileChangedMsg:
		return m, m.refreshAllCmd()

	case editor.OpenMsg:
		return m.resumeAfterEditor(msg)

	case forgeActionResultMsg:
		if msg.err != nil {
			m.ShowToast("forge action failed: "+msg.err.Error(), true, 3*time.Second)
			return m, nil
		}
		m.ShowToast("done", false, 2*time.Second)
		return m, m.launchPRDetailsCmd()

	case clipboardResultMsg:
		if msg.err != nil {
			m.ShowToast("clipboard error: "+msg.err.Error(), true, 3*time.Second)
			return m, nil
		}
		m.ShowToast("copied", false, 1*time.Second)
		return m, nil

	case loader.Result[[]forge.PrSummary]:
		return m, m.mergePRList(msg)

	case loader.Result[*forge.PrInfo]:
		return m, m.mergePRDetails(msg)

	case loader.Result[loader.DiffStatsResult]:
		return m, m.mergeDiffStats(msg)

	case loader.Result[preview.Content]:
		return m, m.mergePreview(msg)

	case statusLoadedMsg:
		return m, m.mergeStatus(msg)
	}

	return m, nil
}

// handleTick checks whether the PR-list / PR-details poll interval has
// elapsed and, if so, launches a refresh; it also re-issues the next
// tick so the cadence continues.
func (m *Model) handleTick() tea.Cmd {
	cmds := []tea.Cmd{events.Tick()}

	if m.forge != nil && m.forge.Available() {
		interval := m.cfg.Forge.PollInterval
		now := time.Now()
		if now.Sub(m.lastPRListPoll) >= interval {
			m.lastPRListPoll = now
			cmds = append(cmds, m.launchPRListCmd())
		}
		if now.Sub(m.lastPRDetailsPoll) >= interval {
			m.lastPRDetailsPoll = now
			cmds = append(cmds, m.launchPRDetailsCmd())
		}
	}

	return tea.Batch(cmds...)
}

// handleKey implements the modal-first precedence: with a modal open, q
// quits, ? closes it, Esc cancels it, and every other key goes to the
// modal; otherwise global keys are tried before delegating to the
// focused widget.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.activeModal != noModal {
		switch key {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "?":
			m.closeModal()
			return m, nil
		case "esc":
			return m, m.cancelModal()
		default:
			return m, m.updateModal(msg)
		}
	}

	if key == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	if cmd := m.keymap.Handle(msg, "global"); cmd != nil {
		return m, cmd
	}

	return m.delegateToFocused(msg)
}

// delegateToFocused hands unclaimed keys to whichever pane currently
// has focus: up/down move the file tree's cursor (Files), scroll the
// list (PrList), or step the diff cursor (Preview); left/right
// collapse/expand a folder in Files. Y yanks the preview to the
// clipboard regardless of which pane is focused.
func (m *Model) delegateToFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "Y" {
		return m, m.yankPreviewCmd()
	}

	switch m.focus {
	case ui.FilesPane:
		switch msg.String() {
		case "up", "k":
			m.tree.MoveCursor(-1)
		case "down", "j":
			m.tree.MoveCursor(1)
		case "left", "h":
			m.collapseSelected()
		case "right", "l", "enter":
			if cmd := m.expandOrOpenSelected(); cmd != nil {
				return m, tea.Batch(cmd, m.refreshPreviewCmd())
			}
		}
		return m, m.refreshPreviewCmd()

	case ui.PrListPane:
		switch msg.String() {
		case "up", "k":
			m.prListScroll--
		case "down", "j":
			m.prListScroll++
		}
		if m.prListScroll < 0 {
			m.prListScroll = 0
		}
		return m, nil

	case ui.PreviewPane:
		switch msg.String() {
		case "up", "k":
			m.movePreviewCursor(-1)
		case "down", "j":
			m.movePreviewCursor(1)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := m.mouseHandler.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionClick:
		if action.Region == nil {
			return m, nil
		}
		if pane, ok := action.Region.Data.(ui.Pane); ok {
			m.focus = pane
		}
		return m, m.refreshPreviewCmd()

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		if action.Region == nil {
			return m, nil
		}
		if pane, ok := action.Region.Data.(ui.Pane); ok {
			m.scrollPane(pane, action.Delta)
		}
		return m, nil
	}

	return m, nil
}

// scrollPane applies a wheel delta to the pane under the cursor: the
// file tree and the preview move their cursor (the preview's scroll
// offset follows it on the next render), the PR list moves its scroll
// offset.
func (m *Model) scrollPane(p ui.Pane, delta int) {
	switch p {
	case ui.FilesPane:
		m.tree.MoveCursor(delta)
	case ui.PrListPane:
		m.prListScroll += delta
		if m.prListScroll < 0 {
			m.prListScroll = 0
		}
	case ui.PreviewPane:
		m.movePreviewCursor(delta)
	}
}

func (m *Model) refreshAllCmd() tea.Cmd {
	cmds := []tea.Cmd{m.refreshStatusCmd()}
	if m.forge != nil && m.forge.Available() {
		m.lastPRListPoll = time.Now()
		m.lastPRDetailsPoll = time.Now()
		cmds = append(cmds, m.launchPRListCmd(), m.launchPRDetailsCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) approveCmd() tea.Cmd {
	if m.pr == nil || m.forge == nil {
		return nil
	}
	n := m.pr.Number
	fg := m.forge
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), forge.CallTimeout)
		defer cancel()
		return forgeActionResultMsg{err: fg.Approve(ctx, n)}
	}
}
