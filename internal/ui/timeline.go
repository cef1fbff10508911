package ui

import (
	"fmt"
	"strings"

	"github.com/wilbur182/timecop/internal/gitrepo"
	"github.com/wilbur182/timecop/internal/styles"
)

// timelineGlyphs is the letter string the header renders one marker per
// reachable position over, left (oldest) to right (Wip).
const timelineGlyphs = "TIMECOP"

// Timeline renders the glyph header: one letter per timeline slot, with a
// dot under every valid CommitOffset(n) plus Full and Wip, and the current
// position's letter highlighted in a distinct color.
func Timeline(pos gitrepo.Position, depth int) string {
	letters := []rune(timelineGlyphs)
	slots := depth + 2 // one per CommitOffset(1..depth), plus Full, plus Wip
	if slots > len(letters) {
		slots = len(letters)
	}
	if slots < 1 {
		slots = 1
	}

	currentSlot := slotFor(pos, depth)

	var top, bottom strings.Builder
	for i := 0; i < slots; i++ {
		letter := string(letters[i%len(letters)])
		marked := i < depth || i == slots-2 || i == slots-1
		dot := " "
		if marked {
			dot = "."
		}

		if i == currentSlot {
			top.WriteString(styles.BarChipActive.Render(letter))
			bottom.WriteString(styles.BarChipActive.Render(dot))
		} else {
			top.WriteString(styles.BarTitle.Render(letter))
			bottom.WriteString(styles.Muted.Render(dot))
		}
	}

	label := positionLabel(pos)
	return fmt.Sprintf("%s  %s\n%s", top.String(), styles.Muted.Render(label), bottom.String())
}

func slotFor(pos gitrepo.Position, depth int) int {
	switch pos.Kind {
	case gitrepo.CommitOffset:
		return depth - pos.Offset
	case gitrepo.Full:
		return depth
	case gitrepo.Wip:
		return depth + 1
	default:
		return -1
	}
}

func positionLabel(pos gitrepo.Position) string {
	switch pos.Kind {
	case gitrepo.Wip:
		return "Wip"
	case gitrepo.Full:
		return "Full"
	case gitrepo.CommitOffset:
		return fmt.Sprintf("-%d", pos.Offset)
	case gitrepo.Browse:
		return "Browse"
	case gitrepo.Docs:
		return "Docs"
	default:
		return ""
	}
}
