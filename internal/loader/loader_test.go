package loader

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type epochMsg int

func TestRequestSupersedesInflight(t *testing.T) {
	r := NewRegistry()

	cmd1 := r.Request(PRList, func(epoch int) tea.Msg { return epochMsg(epoch) })
	epoch1 := int(cmd1().(epochMsg))

	if !r.IsCurrent(PRList, epoch1) {
		t.Fatal("first request should be current immediately after it is issued")
	}

	cmd2 := r.Request(PRList, func(epoch int) tea.Msg { return epochMsg(epoch) })
	epoch2 := int(cmd2().(epochMsg))

	if r.IsCurrent(PRList, epoch1) {
		t.Error("first request's epoch should be stale after a second request")
	}
	if !r.IsCurrent(PRList, epoch2) {
		t.Error("second request's epoch should be current")
	}
}

func TestIsLoadingTracksCompletion(t *testing.T) {
	r := NewRegistry()
	if r.IsLoading(DiffStats) {
		t.Fatal("nothing requested yet, should not be loading")
	}

	cmd := r.Request(DiffStats, func(epoch int) tea.Msg { return epochMsg(epoch) })
	if !r.IsLoading(DiffStats) {
		t.Error("expected DiffStats to be loading after Request")
	}
	epoch := int(cmd().(epochMsg))

	r.Complete(DiffStats, epoch)
	if r.IsLoading(DiffStats) {
		t.Error("expected DiffStats to stop loading after Complete with the current epoch")
	}
}

func TestCompleteIgnoresStaleEpoch(t *testing.T) {
	r := NewRegistry()

	cmd1 := r.Request(PRList, func(epoch int) tea.Msg { return epochMsg(epoch) })
	stale := int(cmd1().(epochMsg))
	r.Request(PRList, func(epoch int) tea.Msg { return epochMsg(epoch) })

	r.Complete(PRList, stale)
	if !r.IsLoading(PRList) {
		t.Error("a stale epoch's Complete should not clear the newer request's inflight flag")
	}
}

func TestKindsAreIndependent(t *testing.T) {
	r := NewRegistry()
	r.Request(PRList, func(epoch int) tea.Msg { return nil })
	if r.IsLoading(PRDetails) {
		t.Error("requesting PRList should not mark PRDetails as loading")
	}
}
