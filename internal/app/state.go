// Package app hosts the single root bubbletea.Model: it owns every
// piece of process-wide state, dispatches incoming events, and
// coordinates the background loaders, the file tree, and the preview
// pane. There is exactly one screen, so unlike a multi-plugin registry
// there is no tab-switching indirection to thread through.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/timecop/internal/config"
	"github.com/wilbur182/timecop/internal/diffview"
	"github.com/wilbur182/timecop/internal/events"
	"github.com/wilbur182/timecop/internal/forge"
	"github.com/wilbur182/timecop/internal/gitrepo"
	"github.com/wilbur182/timecop/internal/keymap"
	"github.com/wilbur182/timecop/internal/loader"
	"github.com/wilbur182/timecop/internal/markdown"
	"github.com/wilbur182/timecop/internal/modal"
	"github.com/wilbur182/timecop/internal/mouse"
	"github.com/wilbur182/timecop/internal/preview"
	"github.com/wilbur182/timecop/internal/tree"
	"github.com/wilbur182/timecop/internal/ui"
)

// modalKind names which overlay, if any, currently captures input.
type modalKind int

const (
	noModal modalKind = iota
	helpModal
	lineCommentModal
	reviewCommentModal
	requestChangesModal
)

// Model is the root bubbletea.Model for TimeCop.
type Model struct {
	cfg      *config.Config
	repo     *gitrepo.Repo
	forge    *forge.Adapter
	repoName string

	loaders *loader.Registry
	watcher *events.Watcher
	program *tea.Program
	md      *markdown.Renderer
	keymap  *keymap.Registry

	width, height int
	focus         ui.Pane
	mouseHandler  *mouse.Handler

	timeline gitrepo.Position
	depth    int

	statusEntries []gitrepo.StatusEntry
	tree          *tree.Model
	commented     map[string]bool

	diffAdded, diffRemoved int
	diffModeOverride       *diffview.Mode
	lineMap                []diffview.LineLocation
	previewCursor          int

	filesScroll, prListScroll, previewScroll int

	prNumber int
	pr       *forge.PrInfo
	prList   []forge.PrSummary

	previewDecision preview.Decision
	previewContent  preview.Content

	lastPRListPoll    time.Time
	lastPRDetailsPoll time.Time

	statusMsg    string
	statusExpiry time.Time
	statusIsErr  bool
	lastError    string

	activeModal   modalKind
	modalView     *modal.Modal
	inputBody     *textarea.Model
	inputReason   *textinput.Model
	pendingLoc    *diffview.LineLocation

	quitting bool
}

// New builds the initial Model for a repository rooted at repo.Path().
func New(cfg *config.Config, repo *gitrepo.Repo, fg *forge.Adapter) *Model {
	m := &Model{
		cfg:          cfg,
		repo:         repo,
		forge:        fg,
		repoName:     GetRepoName(repo.Path()),
		loaders:      loader.NewRegistry(),
		mouseHandler: mouse.NewHandler(),
		focus:        ui.FilesPane,
		timeline:     gitrepo.WipPosition(),
		tree:         tree.New(),
		commented:    make(map[string]bool),
	}
	if depth, err := repo.FirstParentDepth(); err == nil {
		m.depth = depth
	}
	m.md, _ = markdown.NewRenderer()
	m.registerKeyBindings(cfg)
	return m
}

// SetWatcher attaches the filesystem watcher. The watcher needs the
// tea.Program to call Send on, so it cannot be constructed inside New;
// main builds the program and the watcher together and wires this in
// before calling Run, while the model is still uniquely owned by the
// calling goroutine.
func (m *Model) SetWatcher(w *events.Watcher) { m.watcher = w }

// SetProgram records the running program on the model; nothing in the
// package reads it, and editor suspension pauses the watcher directly.
func (m *Model) SetProgram(p *tea.Program) { m.program = p }

// ShowToast displays a temporary status-bar message.
func (m *Model) ShowToast(msg string, isErr bool, d time.Duration) {
	m.statusMsg = msg
	m.statusIsErr = isErr
	m.statusExpiry = time.Now().Add(d)
}

// ClearToast clears an expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsErr = false
	}
}
