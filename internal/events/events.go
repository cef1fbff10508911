// Package events supplies the two synthetic input streams the app core
// needs beyond what bubbletea's own runtime already delivers (key and
// resize events): a debounced filesystem watcher and a periodic tick.
// Both are emitted as ordinary tea.Msg values so they flow through the
// same Update dispatcher as native bubbletea messages.
package events

import (
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-git/go-billy/v6/osfs"
	"github.com/go-git/go-git/v6/plumbing/format/gitignore"
	tea "github.com/charmbracelet/bubbletea"
)

// TickInterval is the default period driving loader polling and
// time-based UI updates.
const TickInterval = 250 * time.Millisecond

// DebounceInterval coalesces bursts of filesystem events into one
// refresh, within the 300-500ms range.
const DebounceInterval = 400 * time.Millisecond

// TickMsg is emitted every TickInterval.
type TickMsg struct{ Time time.Time }

// FileChangedMsg is emitted after DebounceInterval of filesystem
// quiescence following a relevant change.
type FileChangedMsg struct{}

// Tick returns a tea.Cmd that fires one TickMsg after TickInterval. The
// app core must re-issue Tick() from its Update loop on every TickMsg to
// keep the cadence going, the standard bubbletea ticking idiom.
func Tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// Watcher recursively watches a repository root and delivers debounced
// FileChangedMsg values to a bubbletea program. It can be paused for the
// duration of an external-editor suspension so that churn during that
// window does not accumulate.
type Watcher struct {
	fsw     *fsnotify.Watcher
	root    string
	matcher gitignore.Matcher
	paused  atomic.Bool
	done    chan struct{}
}

// Watch starts watching root and sends FileChangedMsg to program as
// relevant changes settle. Callers should call Close when the program
// exits.
func Watch(root string, program *tea.Program) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fsw: fsw, root: root, done: make(chan struct{})}
	w.matcher = loadGitignore(root)

	if err := addRecursive(fsw, root); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.loop(program)
	return w, nil
}

// Pause stops delivering FileChangedMsg until Resume is called. Events
// observed while paused are dropped, not queued.
func (w *Watcher) Pause() { w.paused.Store(true) }

// Resume re-enables delivery. Callers are expected to emit a synthetic
// refresh themselves on resume (see App Core's editor suspension
// sequence), since filesystem churn during the paused window was
// dropped rather than coalesced.
func (w *Watcher) Resume() { w.paused.Store(false) }

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop(program *tea.Program) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev.Name) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(DebounceInterval)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timerC:
					default:
					}
				}
				timer.Reset(DebounceInterval)
			}
			if fi, err := statIsDir(ev.Name); err == nil && fi {
				_ = w.fsw.Add(ev.Name)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			if !w.paused.Load() {
				program.Send(FileChangedMsg{})
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// relevant filters .git internal churn except HEAD and refs/**, and
// honors .gitignore.
func (w *Watcher) relevant(name string) bool {
	rel, err := filepath.Rel(w.root, name)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	if strings.HasPrefix(rel, ".git/") {
		if rel == ".git/HEAD" || strings.HasPrefix(rel, ".git/refs/") {
			return true
		}
		return false
	}

	if w.matcher != nil {
		parts := strings.Split(rel, "/")
		if w.matcher.Match(parts, false) {
			return false
		}
	}
	return true
}

func loadGitignore(root string) gitignore.Matcher {
	fs := osfs.New(root)
	patterns, err := gitignore.ReadPatterns(fs, nil)
	if err != nil || len(patterns) == 0 {
		return nil
	}
	return gitignore.NewMatcher(patterns)
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return walkDirs(root, func(dir string) error {
		return fsw.Add(dir)
	})
}
