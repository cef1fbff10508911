package ui

import (
	"fmt"
	"strings"

	"github.com/wilbur182/timecop/internal/styles"
)

// StatusBarInfo carries the fields the one-line status bar reports.
type StatusBarInfo struct {
	Branch      string
	Mode        string // "Wip", "Full", "-2", "Browse", "Docs"
	FileCount   int
	Added       int
	Removed     int
	HasPr       bool
	PrState     string // "open", "draft", "merged", "closed" — only meaningful when HasPr
	ForgeDown   bool
	LastError   string
}

// StatusBar renders the bottom anchor line: branch, mode, file count,
// +added/-removed, and a PR indicator, truncated to fit width.
func StatusBar(info StatusBarInfo, width int) string {
	var parts []string

	parts = append(parts, styles.BarTitle.Render(info.Branch))
	parts = append(parts, styles.BarChip.Render(info.Mode))
	parts = append(parts, styles.BarText.Render(fmt.Sprintf("%d files", info.FileCount)))

	if info.Added > 0 || info.Removed > 0 {
		diffStat := styles.DiffAdd.Render(fmt.Sprintf("+%d", info.Added)) + " " +
			styles.DiffRemove.Render(fmt.Sprintf("-%d", info.Removed))
		parts = append(parts, diffStat)
	}

	switch {
	case info.ForgeDown:
		parts = append(parts, styles.Muted.Render("no forge"))
	case info.HasPr:
		parts = append(parts, styles.BarChipActive.Render("PR:"+info.PrState))
	}

	if info.LastError != "" {
		parts = append(parts, styles.ToastError.Render(info.LastError))
	}

	line := strings.Join(parts, styles.Muted.Render(" · "))
	return styles.Footer.Width(width).Render(line)
}
