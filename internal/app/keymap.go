package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/timecop/internal/config"
	"github.com/wilbur182/timecop/internal/gitrepo"
	"github.com/wilbur182/timecop/internal/keymap"
)

// registerKeyBindings populates the keymap registry with TimeCop's global
// commands, then applies any user overrides from cfg.Keymap.Overrides.
// Handlers close over m so a rebound key still reaches the same behavior.
func (m *Model) registerKeyBindings(cfg *config.Config) {
	km := keymap.NewRegistry()

	register := func(id, name, key string, handler func() tea.Cmd) {
		km.RegisterCommand(keymap.Command{ID: id, Name: name, Handler: handler, Context: "global"})
		km.RegisterBinding(keymap.Binding{Key: key, Command: id, Context: "global"})
	}

	// "q" always quits and is handled directly in handleKey, never through
	// the registry, so it cannot be remapped away by a user override.
	register("help", "Toggle help", "?", func() tea.Cmd {
		m.openHelp()
		return nil
	})
	register("refresh", "Refresh everything", "r", func() tea.Cmd {
		return m.refreshAllCmd()
	})
	register("timeline-back", "Step timeline back", ",", func() tea.Cmd {
		m.moveTimeline(-1)
		return m.timelineChangedCmd()
	})
	register("timeline-forward", "Step timeline forward", ".", func() tea.Cmd {
		m.moveTimeline(1)
		return m.timelineChangedCmd()
	})
	register("toggle-wip-full", "Toggle Wip/Full", "s", func() tea.Cmd {
		m.toggleWipFull()
		return m.timelineChangedCmd()
	})
	register("focus-next", "Focus next pane", "tab", func() tea.Cmd {
		m.cycleFocus(1)
		return m.refreshPreviewCmd()
	})
	register("focus-prev", "Focus previous pane", "shift+tab", func() tea.Cmd {
		m.cycleFocus(-1)
		return m.refreshPreviewCmd()
	})
	register("goto-wip", "Jump to Wip", "1", func() tea.Cmd {
		m.setTimeline(gitrepo.WipPosition())
		return m.timelineChangedCmd()
	})
	register("goto-full", "Jump to Full", "2", func() tea.Cmd {
		m.setTimeline(gitrepo.FullPosition())
		return m.timelineChangedCmd()
	})
	register("goto-browse", "Jump to Browse", "3", func() tea.Cmd {
		m.setTimeline(gitrepo.BrowsePosition())
		return m.timelineChangedCmd()
	})
	register("goto-docs", "Jump to Docs", "4", func() tea.Cmd {
		m.setTimeline(gitrepo.DocsPosition())
		return m.timelineChangedCmd()
	})
	register("approve", "Approve the pull request", "y", func() tea.Cmd {
		return m.approveCmd()
	})
	register("open-editor", "Open selection in editor", "o", func() tea.Cmd {
		return m.openInEditorCmd()
	})
	register("request-changes", "Request changes", "a", func() tea.Cmd {
		m.openRequestChanges()
		return nil
	})
	register("line-comment", "Comment on a line", "x", func() tea.Cmd {
		m.openLineComment()
		return nil
	})
	register("review-comment", "Comment on the pull request", "c", func() tea.Cmd {
		m.openReviewComment()
		return nil
	})

	for key, cmdID := range cfg.Keymap.Overrides {
		km.SetUserOverride(key, cmdID)
	}

	m.keymap = km
}
