package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/wilbur182/timecop/internal/modal"
)

// helpBinding is one row of the keybinding reference.
type helpBinding struct {
	key  string
	desc string
}

var globalBindings = []helpBinding{
	{"q", "quit"},
	{"?", "toggle this help"},
	{"r", "refresh status, diff stats, and PR data"},
	{",", "move the timeline one commit older"},
	{".", "move the timeline one commit newer"},
	{"s", "jump to Wip / Full"},
	{"tab / shift+tab", "cycle pane focus"},
	{"1-4", "jump to Wip, Full, Browse, Docs"},
	{"y", "approve the pull request"},
	{"o", "open the selected file in $EDITOR"},
	{"a", "request changes (prompts for a reason)"},
	{"x", "add a line comment at the cursor"},
	{"c", "submit a review comment"},
	{"Y", "yank the preview's raw text to the clipboard"},
}

// HelpModal builds the always-available keybinding reference overlay.
func HelpModal() *modal.Modal {
	sections := make([]modal.Section, 0, len(globalBindings)+1)
	sections = append(sections, modal.Text("Global keys"))
	for _, b := range globalBindings {
		sections = append(sections, modal.Custom(
			func(contentWidth int, focusID, hoverID string) modal.RenderedSection {
				return renderHelpRow(b, contentWidth)
			},
			nil,
		))
	}
	return modal.New("Help", sections, modal.WithWidth(64))
}

func renderHelpRow(b helpBinding, contentWidth int) modal.RenderedSection {
	return modal.RenderedSection{Content: padKey(b.key) + "  " + b.desc}
}

func padKey(key string) string {
	const keyWidth = 16
	if len(key) >= keyWidth {
		return key
	}
	return key + strings.Repeat(" ", keyWidth-len(key))
}

// TextInputModal builds the multi-line capture overlay used by the add
// line-comment (x) and submit-review-comment (c) commands.
func TextInputModal(title string, body *textarea.Model) *modal.Modal {
	return modal.New(title, []modal.Section{
		modal.Textarea("body", body, 6),
		modal.Buttons(
			modal.Btn("Submit", "submit"),
			modal.Btn("Cancel", "cancel"),
		),
	}, modal.WithWidth(70), modal.WithHints(), modal.WithPrimaryAction("submit"))
}

// ApprovalModal builds the single-line capture overlay used by the
// request-changes command (a), which takes a short reason.
func ApprovalModal(title string, reason *textinput.Model) *modal.Modal {
	return modal.New(title, []modal.Section{
		modal.InputWithLabel("reason", "Reason (optional):", reason),
		modal.Buttons(
			modal.Btn("Submit", "submit"),
			modal.Btn("Cancel", "cancel"),
		),
	}, modal.WithWidth(60), modal.WithHints(), modal.WithPrimaryAction("submit"))
}
