package app

import (
	"strconv"

	"github.com/wilbur182/timecop/internal/gitrepo"
	"github.com/wilbur182/timecop/internal/ui"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}

	leftWidth := m.width * 30 / 100
	if leftWidth < 28 {
		leftWidth = 28
	}
	rightWidth := m.width - leftWidth

	timeline := ui.Timeline(m.timeline, m.depth)
	statusBar := ui.StatusBar(m.statusBarInfo(), m.width)
	m.syncScrollOffsets(timeline, statusBar)

	panes := ui.Panes{
		Timeline:      timeline,
		Files:         m.renderFiles(leftWidth),
		PrList:        m.renderPrList(leftWidth),
		Preview:       m.renderPreview(rightWidth),
		StatusBar:     statusBar,
		Focus:         m.focus,
		FilesScroll:   m.filesScroll,
		PrListScroll:  m.prListScroll,
		PreviewScroll: m.previewScroll,
	}

	base := ui.Compose(panes, m.width, m.height, m.mouseHandler)

	if m.activeModal != noModal && m.modalView != nil {
		return m.modalView.View(m.width, m.height, m.mouseHandler)
	}

	return base
}

// syncScrollOffsets keeps each pane's scroll position following its
// cursor (Files, Preview) or within bounds (PrList), using the same
// pane-height arithmetic ui.Compose will use for this render.
func (m *Model) syncScrollOffsets(timeline, statusBar string) {
	bodyHeight := ui.BodyHeight(m.height, timeline, statusBar)
	filesH, prListH, previewH := ui.PaneHeights(m.width, bodyHeight)

	m.filesScroll = ui.FollowCursor(m.filesScroll, m.tree.Cursor(), ui.ContentHeight(filesH), len(m.tree.Flat()))
	m.previewScroll = ui.FollowCursor(m.previewScroll, m.previewCursor, ui.ContentHeight(previewH), len(m.lineMap))

	maxPrListScroll := len(m.prList) - ui.ContentHeight(prListH)
	if maxPrListScroll < 0 {
		maxPrListScroll = 0
	}
	if m.prListScroll > maxPrListScroll {
		m.prListScroll = maxPrListScroll
	}
}

func (m *Model) statusBarInfo() ui.StatusBarInfo {
	info := ui.StatusBarInfo{
		Branch:    m.repo.HeadBranch(),
		Mode:      positionModeLabel(m.timeline),
		FileCount: len(m.statusEntries),
		Added:     m.diffAdded,
		Removed:   m.diffRemoved,
		LastError: m.lastError,
	}
	if m.forge == nil || !m.forge.Available() {
		info.ForgeDown = true
	} else if m.pr != nil {
		info.HasPr = true
		info.PrState = m.pr.State
	}
	if m.statusMsg != "" {
		info.LastError = m.statusMsg
	}
	return info
}

func positionModeLabel(pos gitrepo.Position) string {
	switch pos.Kind {
	case gitrepo.Wip:
		return "Wip"
	case gitrepo.Full:
		return "Full"
	case gitrepo.CommitOffset:
		return "-" + strconv.Itoa(pos.Offset)
	case gitrepo.Browse:
		return "Browse"
	case gitrepo.Docs:
		return "Docs"
	default:
		return ""
	}
}
