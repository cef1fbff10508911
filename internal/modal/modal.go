// Package modal renders focusable overlay dialogs (help reference, text
// input prompts, confirmations) centered on the screen.
package modal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/wilbur182/timecop/internal/mouse"
)

// Variant selects the modal's border/title color and conveys intent.
type Variant int

const (
	VariantNormal Variant = iota
	VariantInfo
	VariantWarning
	VariantDanger
)

const (
	// MinModalWidth is the narrowest a modal will render, even on tiny terminals.
	MinModalWidth = 40
	// ModalPadding accounts for the horizontal padding (2 cols each side);
	// the border is drawn outside the styled width.
	ModalPadding = 4
)

// Modal is a focusable, scrollable overlay dialog built from Sections.
type Modal struct {
	title   string
	variant Variant
	width   int

	sections []Section
	focusIDs []string
	focusIdx int

	hoverID      string
	scrollOffset int
	showHints    bool

	// primaryAction is returned by Update when Enter submits a focused
	// input section that names no submit action of its own.
	primaryAction string
}

// Option configures a Modal at construction time.
type Option func(*Modal)

// WithVariant sets the modal's visual variant.
func WithVariant(v Variant) Option {
	return func(m *Modal) { m.variant = v }
}

// WithWidth sets a preferred modal width; it is still clamped to the screen.
func WithWidth(w int) Option {
	return func(m *Modal) { m.width = w }
}

// WithHints shows the Tab/Enter/Esc hint line at the bottom of the modal.
func WithHints() Option {
	return func(m *Modal) { m.showHints = true }
}

// WithPrimaryAction sets the action ID returned when a section submits
// without specifying its own action.
func WithPrimaryAction(action string) Option {
	return func(m *Modal) { m.primaryAction = action }
}

// New creates a modal with the given title and content sections.
func New(title string, sections []Section, opts ...Option) *Modal {
	m := &Modal{
		title:    title,
		width:    60,
		sections: sections,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// currentFocusID returns the ID of the currently focused element, or ""
// if nothing is focusable.
func (m *Modal) currentFocusID() string {
	if len(m.focusIDs) == 0 {
		return ""
	}
	if m.focusIdx < 0 || m.focusIdx >= len(m.focusIDs) {
		return ""
	}
	return m.focusIDs[m.focusIdx]
}

// View renders the modal centered within a screenW x screenH canvas.
func (m *Modal) View(screenW, screenH int, handler *mouse.Handler) string {
	return m.buildLayout(screenW, screenH, handler)
}

// Update dispatches a message to the focused section, handling Tab/Shift+Tab
// focus cycling and Esc cancellation itself. It returns the action ID
// triggered by the message (empty if none) and any tea.Cmd to run.
func (m *Modal) Update(msg tea.Msg) (action string, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return "cancel", nil
		case "tab":
			m.focusNext()
			return "", nil
		case "shift+tab":
			m.focusPrev()
			return "", nil
		}
	}

	focusID := m.currentFocusID()
	for _, s := range m.sections {
		act, c := s.Update(msg, focusID)
		if act != "" {
			return act, c
		}
		if c != nil {
			cmd = c
		}
	}

	// Enter in a focused input section that submits on Enter but names
	// no action of its own submits the modal with primaryAction.
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" && m.primaryAction != "" {
		for _, s := range m.sections {
			if in, ok := s.(*inputSection); ok && in.id == focusID && in.submitOnEnter && in.submitAction == "" {
				return m.primaryAction, cmd
			}
		}
	}
	return "", cmd
}

func (m *Modal) focusNext() {
	if len(m.focusIDs) == 0 {
		return
	}
	m.focusIdx = (m.focusIdx + 1) % len(m.focusIDs)
}

func (m *Modal) focusPrev() {
	if len(m.focusIDs) == 0 {
		return
	}
	m.focusIdx--
	if m.focusIdx < 0 {
		m.focusIdx = len(m.focusIDs) - 1
	}
}

// SetHover records which element ID the mouse is currently over.
func (m *Modal) SetHover(id string) {
	m.hoverID = id
}

// FocusID jumps focus directly to the given element ID, if present.
func (m *Modal) FocusID(id string) {
	for i, f := range m.focusIDs {
		if f == id {
			m.focusIdx = i
			return
		}
	}
}

// Scroll adjusts the scroll offset by delta lines.
func (m *Modal) Scroll(delta int) {
	m.scrollOffset += delta
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}
