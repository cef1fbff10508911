package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/timecop/internal/forge"
	"github.com/wilbur182/timecop/internal/gitrepo"
	"github.com/wilbur182/timecop/internal/loader"
	"github.com/wilbur182/timecop/internal/preview"
	"github.com/wilbur182/timecop/internal/ui"
)

// statusLoadedMsg carries a freshly computed status list; status reads
// are local and cheap, so unlike the forge loaders this bypasses the
// generation-stamped Registry entirely.
type statusLoadedMsg struct {
	entries []gitrepo.StatusEntry
	err     error
}

// refreshStatusCmd recomputes the status list for the current timeline
// position.
func (m *Model) refreshStatusCmd() tea.Cmd {
	repo := m.repo
	pos := m.timeline
	return func() tea.Msg {
		entries, err := repo.Status(pos)
		return statusLoadedMsg{entries: entries, err: err}
	}
}

func (m *Model) mergeStatus(msg statusLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.lastError = msg.err.Error()
		return nil
	}
	m.statusEntries = msg.entries
	m.tree.SetStatus(msg.entries, m.commented)
	if m.timeline.Kind == gitrepo.Browse || m.timeline.Kind == gitrepo.Docs {
		m.tree.ApplyBrowseAutoCollapse()
	} else {
		m.tree.ClearBrowseAutoCollapse()
	}
	return tea.Batch(m.refreshPreviewCmd(), m.launchDiffStatsCmd())
}

// launchPRListCmd fetches the repository's open pull requests.
func (m *Model) launchPRListCmd() tea.Cmd {
	fg := m.forge
	return m.loaders.Request(loader.PRList, func(epoch int) tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), forge.CallTimeout)
		defer cancel()
		prs, err := fg.ListOpenPRs(ctx)
		return loader.Result[[]forge.PrSummary]{Kind: loader.PRList, Epoch: epoch, Value: prs, Err: err}
	})
}

func (m *Model) mergePRList(msg loader.Result[[]forge.PrSummary]) tea.Cmd {
	m.loaders.Complete(loader.PRList, msg.Epoch)
	if !m.loaders.IsCurrent(loader.PRList, msg.Epoch) {
		return nil
	}
	if msg.Err != nil {
		m.lastError = msg.Err.Error()
		return nil
	}
	m.prList = msg.Value
	return nil
}

// launchPRDetailsCmd fetches the pull request associated with the
// current branch, or by number when prNumber was explicitly set.
func (m *Model) launchPRDetailsCmd() tea.Cmd {
	fg := m.forge
	repo := m.repo
	n := m.prNumber
	return m.loaders.Request(loader.PRDetails, func(epoch int) tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), forge.CallTimeout)
		defer cancel()
		var pr *forge.PrInfo
		var err error
		if n != 0 {
			pr, err = fg.GetPRByNumber(ctx, n)
		} else {
			pr, err = fg.GetPRForBranch(ctx, repo.HeadBranch())
		}
		return loader.Result[*forge.PrInfo]{Kind: loader.PRDetails, Epoch: epoch, Value: pr, Err: err}
	})
}

func (m *Model) mergePRDetails(msg loader.Result[*forge.PrInfo]) tea.Cmd {
	m.loaders.Complete(loader.PRDetails, msg.Epoch)
	if !m.loaders.IsCurrent(loader.PRDetails, msg.Epoch) {
		return nil
	}
	if msg.Err != nil {
		m.lastError = msg.Err.Error()
		return nil
	}
	m.pr = msg.Value
	if m.pr != nil {
		for path := range m.pr.FileComments {
			m.commented[path] = true
		}
		m.tree.SetStatus(m.statusEntries, m.commented)
	}
	return m.refreshPreviewCmd()
}

// launchDiffStatsCmd fetches the added/removed line counts for the
// current timeline position, shown in the status bar.
func (m *Model) launchDiffStatsCmd() tea.Cmd {
	repo := m.repo
	pos := m.timeline
	return m.loaders.Request(loader.DiffStats, func(epoch int) tea.Msg {
		added, removed, err := repo.DiffStats(pos)
		return loader.Result[loader.DiffStatsResult]{
			Kind:  loader.DiffStats,
			Epoch: epoch,
			Value: loader.DiffStatsResult{Added: added, Removed: removed},
			Err:   err,
		}
	})
}

func (m *Model) mergeDiffStats(msg loader.Result[loader.DiffStatsResult]) tea.Cmd {
	m.loaders.Complete(loader.DiffStats, msg.Epoch)
	if !m.loaders.IsCurrent(loader.DiffStats, msg.Epoch) {
		return nil
	}
	if msg.Err != nil {
		m.lastError = msg.Err.Error()
		return nil
	}
	m.diffAdded = msg.Value.Added
	m.diffRemoved = msg.Value.Removed
	return nil
}

// refreshPreviewCmd re-dispatches the pure preview decision for the
// current focus/selection/position and, when it changed, launches the
// I/O needed to materialize it.
func (m *Model) refreshPreviewCmd() tea.Cmd {
	decision := preview.Dispatch(preview.Params{
		Focus:     m.previewFocus(),
		Selection: m.tree.Selection(),
		HasPr:     m.pr != nil,
		Position:  m.timeline,
		HasStatus: len(m.statusEntries) > 0,
		Loading:   m.loaders.IsLoading(loader.PRDetails) && m.pr == nil,
	})
	if decision == m.previewDecision {
		return nil
	}
	m.previewDecision = decision

	repo := m.repo
	pr := m.pr
	return m.loaders.Request(loader.Preview, func(epoch int) tea.Msg {
		content, err := preview.Resolve(repo, pr, decision)
		return loader.Result[preview.Content]{Kind: loader.Preview, Epoch: epoch, Value: content, Err: err}
	})
}

func (m *Model) mergePreview(msg loader.Result[preview.Content]) tea.Cmd {
	m.loaders.Complete(loader.Preview, msg.Epoch)
	if !m.loaders.IsCurrent(loader.Preview, msg.Epoch) {
		return nil
	}
	if msg.Err != nil {
		m.lastError = msg.Err.Error()
		return nil
	}
	m.previewContent = msg.Value
	m.previewCursor = 0
	return nil
}

func (m *Model) previewFocus() preview.FocusedPane {
	switch m.focus {
	case ui.PrListPane:
		return preview.PRListPane
	case ui.PreviewPane:
		return preview.PreviewPane
	default:
		return preview.FilesPane
	}
}
