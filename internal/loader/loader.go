// Package loader is the generation-stamped bookkeeping for the
// background task kinds the app core launches: PR list, PR details,
// diff statistics, and preview-content resolution. At most one task per
// kind is ever inflight; a new request supersedes the previous one by
// advancing that kind's generation, so a result that arrives after
// being superseded is recognized as stale and discarded.
package loader

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind identifies one of the background task kinds.
type Kind int

const (
	PRList Kind = iota
	PRDetails
	DiffStats
	Preview
)

// Registry tracks the current generation and inflight flag per Kind.
// Draining is handled by bubbletea itself (every tea.Cmd's returned Msg
// reaches Update); Registry's job is purely the generation/inflight
// bookkeeping Update needs to recognize and discard stale results.
type Registry struct {
	mu         sync.Mutex
	generation map[Kind]int
	inflight   map[Kind]bool
}

func NewRegistry() *Registry {
	return &Registry{
		generation: make(map[Kind]int),
		inflight:   make(map[Kind]bool),
	}
}

// Request advances kind's generation, marks it inflight, and returns a
// tea.Cmd that runs work with the new generation stamped in. If a prior
// task for kind is still inflight, its eventual result will carry a
// stale generation and be discarded when it arrives.
func (r *Registry) Request(kind Kind, work func(epoch int) tea.Msg) tea.Cmd {
	r.mu.Lock()
	r.generation[kind]++
	epoch := r.generation[kind]
	r.inflight[kind] = true
	r.mu.Unlock()

	return func() tea.Msg {
		return work(epoch)
	}
}

// Complete clears the inflight flag for kind, but only when epoch still
// matches kind's current generation. Callers invoke this from Update once
// a result for kind has been processed; a stale result's epoch no longer
// matches, so it leaves the newer, still-inflight request's flag alone.
func (r *Registry) Complete(kind Kind, epoch int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.generation[kind] == epoch {
		r.inflight[kind] = false
	}
}

// IsLoading reports whether kind currently has a task inflight, for
// driving UI spinners.
func (r *Registry) IsLoading(kind Kind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inflight[kind]
}

// IsCurrent reports whether epoch is still kind's latest generation,
// i.e. whether a result stamped with epoch should be merged into state
// rather than discarded.
func (r *Registry) IsCurrent(kind Kind, epoch int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation[kind] == epoch
}
