// Package ui composes the panes, status bar, and timeline header into the
// terminal framebuffer, and registers mouse hit regions for them.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wilbur182/timecop/internal/mouse"
	"github.com/wilbur182/timecop/internal/styles"
)

// Pane names a focusable region of the main layout.
type Pane int

const (
	FilesPane Pane = iota
	PrListPane
	PreviewPane
)

// WideThreshold is the minimum total width at which the layout splits the
// left column from the right column instead of stacking panes vertically.
const WideThreshold = 80

// Panes carries each pane's already-rendered inner content (without a
// border) plus the glyph header and status bar lines that bracket them.
// The three scroll offsets index the first visible line of the
// corresponding content string; Compose slices to the viewport and
// draws a scrollbar whenever content overflows it.
type Panes struct {
	Timeline  string
	Files     string
	PrList    string
	Preview   string
	StatusBar string
	Focus     Pane

	FilesScroll   int
	PrListScroll  int
	PreviewScroll int
}

// BodyHeight returns the row count left for the three panes once the
// timeline header and status bar have taken their own lines, the same
// arithmetic Compose uses internally. Callers that need to keep a
// scroll position following a cursor compute pane heights from this
// before Compose runs.
func BodyHeight(screenH int, timeline, statusBar string) int {
	timelineHeight := lipgloss.Height(timeline)
	statusHeight := lipgloss.Height(statusBar)
	bodyHeight := screenH - timelineHeight - statusHeight
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	return bodyHeight
}

// PaneHeights returns the Files/PrList/Preview viewport heights Compose
// would produce for the given screen width and body height.
func PaneHeights(screenW, bodyHeight int) (files, prList, preview int) {
	if screenW >= WideThreshold {
		files = bodyHeight / 2
		prList = bodyHeight - files
		preview = bodyHeight
		return
	}
	third := bodyHeight / 3
	return third, third, bodyHeight - 2*third
}

// Compose lays out Panes within a screenW x screenH canvas, responsively:
// wide splits a 30% left column (Files over PrList) from a Preview column,
// narrow stacks Files, PrList, and Preview top to bottom. Every pane is
// wrapped in a bordered box whose border color reflects focus. Hit regions
// for each pane are registered on handler so mouse clicks can route focus.
func Compose(p Panes, screenW, screenH int, handler *mouse.Handler) string {
	if handler != nil {
		handler.HitMap.Clear()
	}

	timelineHeight := lipgloss.Height(p.Timeline)
	statusHeight := lipgloss.Height(p.StatusBar)
	bodyHeight := screenH - timelineHeight - statusHeight
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	if screenW >= WideThreshold {
		body = composeWide(p, screenW, bodyHeight, handler, timelineHeight)
	} else {
		body = composeNarrow(p, screenW, bodyHeight, handler, timelineHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, p.Timeline, body, p.StatusBar)
}

func composeWide(p Panes, screenW, bodyHeight int, handler *mouse.Handler, yOffset int) string {
	leftWidth := screenW * 30 / 100
	if leftWidth < 28 {
		leftWidth = 28
	}
	rightWidth := screenW - leftWidth
	if rightWidth < 20 {
		rightWidth = 20
		leftWidth = screenW - rightWidth
	}

	filesHeight := bodyHeight / 2
	prListHeight := bodyHeight - filesHeight

	filesBox := pane(p.Files, "Files", leftWidth, filesHeight, p.Focus == FilesPane, p.FilesScroll)
	prListBox := pane(p.PrList, "Pull Request", leftWidth, prListHeight, p.Focus == PrListPane, p.PrListScroll)
	previewBox := pane(p.Preview, "Preview", rightWidth, bodyHeight, p.Focus == PreviewPane, p.PreviewScroll)

	leftCol := lipgloss.JoinVertical(lipgloss.Left, filesBox, prListBox)

	if handler != nil {
		handler.HitMap.AddRect("pane-files", 0, yOffset, leftWidth, filesHeight, FilesPane)
		handler.HitMap.AddRect("pane-prlist", 0, yOffset+filesHeight, leftWidth, prListHeight, PrListPane)
		handler.HitMap.AddRect("pane-preview", leftWidth, yOffset, rightWidth, bodyHeight, PreviewPane)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, previewBox)
}

func composeNarrow(p Panes, screenW, bodyHeight int, handler *mouse.Handler, yOffset int) string {
	third := bodyHeight / 3
	filesHeight := third
	prListHeight := third
	previewHeight := bodyHeight - filesHeight - prListHeight

	filesBox := pane(p.Files, "Files", screenW, filesHeight, p.Focus == FilesPane, p.FilesScroll)
	prListBox := pane(p.PrList, "Pull Request", screenW, prListHeight, p.Focus == PrListPane, p.PrListScroll)
	previewBox := pane(p.Preview, "Preview", screenW, previewHeight, p.Focus == PreviewPane, p.PreviewScroll)

	if handler != nil {
		handler.HitMap.AddRect("pane-files", 0, yOffset, screenW, filesHeight, FilesPane)
		handler.HitMap.AddRect("pane-prlist", 0, yOffset+filesHeight, screenW, prListHeight, PrListPane)
		handler.HitMap.AddRect("pane-preview", 0, yOffset+filesHeight+prListHeight, screenW, previewHeight, PreviewPane)
	}

	return lipgloss.JoinVertical(lipgloss.Left, filesBox, prListBox, previewBox)
}

// ContentHeight converts a pane's outer height (as returned by
// PaneHeights) to the number of content rows visible inside it, once
// the border and title row are subtracted.
func ContentHeight(paneHeight int) int {
	h := paneHeight - 3
	if h < 1 {
		h = 1
	}
	return h
}

// FollowCursor adjusts scroll so cursor stays within the visible window
// [scroll, scroll+visible), clamped so the view never scrolls past the
// point where the last line would leave a blank trailing gap.
func FollowCursor(scroll, cursor, visible, total int) int {
	if visible < 1 {
		visible = 1
	}
	if cursor < scroll {
		scroll = cursor
	} else if cursor >= scroll+visible {
		scroll = cursor - visible + 1
	}
	maxScroll := total - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}

// pane wraps content in a bordered, titled box of exactly width x height,
// showing the scrollOffset-th line onward and a scrollbar column when
// content overflows the viewport.
func pane(content, title string, width, height int, focused bool, scrollOffset int) string {
	border := styles.PanelInactive
	if focused {
		border = styles.PanelActive
	}

	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}
	bodyHeight := innerHeight - 1

	lines := strings.Split(content, "\n")
	visible := sliceLines(lines, scrollOffset, bodyHeight)
	bodyWidth := innerWidth - scrollbarWidth

	header := styles.PanelHeader.Render(title)
	body := lipgloss.NewStyle().Width(bodyWidth).Height(bodyHeight).MaxHeight(bodyHeight).Render(strings.Join(visible, "\n"))
	scrollbar := RenderScrollbar(ScrollbarParams{
		TotalItems:   len(lines),
		ScrollOffset: scrollOffset,
		VisibleItems: bodyHeight,
		TrackHeight:  bodyHeight,
	})
	row := lipgloss.JoinHorizontal(lipgloss.Top, body, scrollbar)
	inner := lipgloss.JoinVertical(lipgloss.Left, header, row)

	return border.Width(innerWidth).Height(innerHeight).Render(inner)
}

// scrollbarWidth is the single-column width RenderScrollbar always emits.
const scrollbarWidth = 1

// sliceLines returns at most count lines of lines starting at offset,
// clamping offset so the last page still fills the viewport.
func sliceLines(lines []string, offset, count int) []string {
	if count < 1 {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	maxOffset := len(lines) - count
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	end := offset + count
	if end > len(lines) {
		end = len(lines)
	}
	return lines[offset:end]
}
