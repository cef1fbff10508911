// Package preview decides what the Preview pane shows next: a pure
// function of which pane has focus, what is selected in the file tree,
// the current pull request (if any), and the timeline position.
package preview

import (
	"github.com/wilbur182/timecop/internal/forge"
	"github.com/wilbur182/timecop/internal/gitrepo"
	"github.com/wilbur182/timecop/internal/tree"
)

// FocusedPane is which of the three panes currently has keyboard focus.
type FocusedPane int

const (
	PRListPane FocusedPane = iota
	FilesPane
	PreviewPane
)

// Kind is the shape of content the Preview pane should render.
type Kind int

const (
	Empty Kind = iota
	Loading
	PrDetails
	FolderDiff
	FileContent
	FileDiff
)

// Decision is the pure result of Dispatch: what to show and, for the
// kinds that need data, enough information for a caller to fetch it.
type Decision struct {
	Kind          Kind
	Path          string
	Scope         gitrepo.Scope
	Position      gitrepo.Position
	LoadingReason string
}

// Params carries every input Dispatch's table keys on.
type Params struct {
	Focus         FocusedPane
	Selection     tree.Selection
	HasPr         bool
	Position      gitrepo.Position
	HasStatus     bool
	Loading       bool
	LoadingReason string
}

// Dispatch maps Params to a Decision per the fixed precedence: a
// pending loader always wins, then an empty status list, then the
// focus/selection/position table.
func Dispatch(p Params) Decision {
	if p.Loading {
		return Decision{Kind: Loading, LoadingReason: p.LoadingReason}
	}
	if !p.HasStatus {
		return Decision{Kind: Empty}
	}

	if p.Focus == PRListPane {
		return Decision{Kind: PrDetails}
	}

	switch p.Selection.Kind {
	case tree.SelRoot:
		return Decision{Kind: PrDetails}
	case tree.SelFolder:
		return Decision{Kind: FolderDiff, Path: p.Selection.Path, Scope: gitrepo.PrefixScope(p.Selection.Path), Position: p.Position}
	case tree.SelFile:
		if p.Position.Kind == gitrepo.Browse || p.Position.Kind == gitrepo.Docs {
			return Decision{Kind: FileContent, Path: p.Selection.Path}
		}
		return Decision{Kind: FileDiff, Path: p.Selection.Path, Scope: gitrepo.PathScope(p.Selection.Path), Position: p.Position}
	default:
		return Decision{Kind: Empty}
	}
}

// Content is a materialized Decision, ready to hand to the renderer.
type Content struct {
	Kind    Kind
	Path    string
	Pr      *forge.PrInfo
	Diff    []byte
	Blob    []byte
	Reason  string
}

// Resolve performs the I/O a Decision calls for: reading a diff or
// blob from repo, or attaching the current pull request. Dispatch
// itself stays pure; Resolve is the thin materialization step the app
// core runs once per Decision change.
func Resolve(repo *gitrepo.Repo, pr *forge.PrInfo, d Decision) (Content, error) {
	switch d.Kind {
	case Empty, Loading:
		return Content{Kind: d.Kind, Reason: d.LoadingReason}, nil

	case PrDetails:
		return Content{Kind: PrDetails, Pr: pr}, nil

	case FolderDiff:
		diff, err := repo.Diff(d.Position, d.Scope)
		if err != nil {
			return Content{}, err
		}
		return Content{Kind: FolderDiff, Path: d.Path, Diff: diff}, nil

	case FileDiff:
		diff, err := repo.Diff(d.Position, d.Scope)
		if err != nil {
			return Content{}, err
		}
		return Content{Kind: FileDiff, Path: d.Path, Diff: diff}, nil

	case FileContent:
		blob, err := repo.ReadBlob(d.Path)
		if err != nil {
			return Content{}, err
		}
		return Content{Kind: FileContent, Path: d.Path, Blob: blob}, nil

	default:
		return Content{Kind: Empty}, nil
	}
}
