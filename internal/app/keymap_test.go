package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/timecop/internal/config"
	"github.com/wilbur182/timecop/internal/gitrepo"
)

func TestRegisterKeyBindingsTimelineStep(t *testing.T) {
	m := &Model{timeline: gitrepo.WipPosition(), depth: 2}
	m.registerKeyBindings(config.Default())

	cmd := m.keymap.Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, "global")
	if cmd == nil {
		t.Fatal("expected the 's' binding to produce a command")
	}
	if m.timeline != gitrepo.FullPosition() {
		t.Errorf("toggle-wip-full via keymap should land on Full, got %+v", m.timeline)
	}
}

func TestRegisterKeyBindingsRespectsUserOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Keymap.Overrides = map[string]string{"n": "timeline-back"}

	m := &Model{timeline: gitrepo.WipPosition(), depth: 2}
	m.registerKeyBindings(cfg)

	m.keymap.Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, "global")
	if m.timeline != gitrepo.FullPosition() {
		t.Errorf("remapped 'n' should step the timeline back from Wip to Full, got %+v", m.timeline)
	}
}

func TestRegisterKeyBindingsUnknownKeyIsNil(t *testing.T) {
	m := &Model{}
	m.registerKeyBindings(config.Default())

	if cmd := m.keymap.Handle(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, "global"); cmd != nil {
		t.Error("an unbound key should produce a nil command")
	}
}
