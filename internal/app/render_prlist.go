package app

import (
	"strconv"
	"strings"

	"github.com/wilbur182/timecop/internal/styles"
	"github.com/wilbur182/timecop/internal/ui"
)

// renderPrList renders the pull-request list pane: the open pull
// requests in the order the forge returned them.
func (m *Model) renderPrList(width int) string {
	if len(m.prList) == 0 {
		if m.forge == nil || !m.forge.Available() {
			return styles.Muted.Render("no forge adapter available")
		}
		return styles.Muted.Render("no open pull requests")
	}

	var b strings.Builder
	for i, pr := range m.prList {
		line := prSummaryLine(pr.Number, pr.Title, pr.Author, pr.ReviewDecision)
		if m.pr != nil && pr.Number == m.pr.Number && m.focus == ui.PrListPane {
			line = ui.InjectSelectionBackground(line)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}

func prSummaryLine(number int, title, author, reviewDecision string) string {
	state := reviewDecision
	if state == "" {
		state = "PENDING"
	}
	return styles.BarText.Render("#"+strconv.Itoa(number)) + "  " + title + "  " + styles.Muted.Render("@"+author+" · "+state)
}
