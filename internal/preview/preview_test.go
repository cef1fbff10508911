package preview

import (
	"testing"

	"github.com/wilbur182/timecop/internal/gitrepo"
	"github.com/wilbur182/timecop/internal/tree"
)

func TestDispatchLoadingTakesPrecedence(t *testing.T) {
	d := Dispatch(Params{Loading: true, LoadingReason: "fetching PR", HasStatus: true})
	if d.Kind != Loading || d.LoadingReason != "fetching PR" {
		t.Fatalf("expected Loading to win regardless of other fields, got %+v", d)
	}
}

func TestDispatchEmptyWhenNoStatus(t *testing.T) {
	d := Dispatch(Params{HasStatus: false})
	if d.Kind != Empty {
		t.Fatalf("expected Empty, got %+v", d)
	}
}

func TestDispatchPrListPaneAlwaysShowsPrDetails(t *testing.T) {
	d := Dispatch(Params{Focus: PRListPane, HasStatus: true, Selection: tree.Selection{Kind: tree.SelFile, Path: "x.go"}})
	if d.Kind != PrDetails {
		t.Fatalf("expected PrDetails for PR-list focus regardless of selection, got %+v", d)
	}
}

func TestDispatchRootSelectionShowsPrDetails(t *testing.T) {
	d := Dispatch(Params{Focus: FilesPane, HasStatus: true, Selection: tree.Selection{Kind: tree.SelRoot}})
	if d.Kind != PrDetails {
		t.Fatalf("expected PrDetails for root selection, got %+v", d)
	}
}

func TestDispatchFolderSelectionShowsFolderDiffWithPrefixScope(t *testing.T) {
	d := Dispatch(Params{Focus: FilesPane, HasStatus: true, Selection: tree.Selection{Kind: tree.SelFolder, Path: "internal/app"}})
	if d.Kind != FolderDiff || d.Path != "internal/app" {
		t.Fatalf("expected FolderDiff for internal/app, got %+v", d)
	}
	if d.Scope.Kind != gitrepo.ScopePrefix || d.Scope.Path != "internal/app" {
		t.Fatalf("expected a prefix scope over internal/app, got %+v", d.Scope)
	}
}

func TestDispatchFileSelectionInBrowseShowsFileContent(t *testing.T) {
	d := Dispatch(Params{
		Focus:     FilesPane,
		HasStatus: true,
		Selection: tree.Selection{Kind: tree.SelFile, Path: "README.md"},
		Position:  gitrepo.BrowsePosition(),
	})
	if d.Kind != FileContent || d.Path != "README.md" {
		t.Fatalf("expected FileContent in Browse, got %+v", d)
	}
}

func TestDispatchFileSelectionOutsideBrowseShowsFileDiff(t *testing.T) {
	d := Dispatch(Params{
		Focus:     FilesPane,
		HasStatus: true,
		Selection: tree.Selection{Kind: tree.SelFile, Path: "README.md"},
		Position:  gitrepo.WipPosition(),
	})
	if d.Kind != FileDiff || d.Path != "README.md" {
		t.Fatalf("expected FileDiff outside Browse, got %+v", d)
	}
	if d.Scope.Kind != gitrepo.ScopePath {
		t.Fatalf("expected a path scope, got %+v", d.Scope)
	}
}

func TestDispatchDocsTreatedLikeBrowseForFileContent(t *testing.T) {
	d := Dispatch(Params{
		Focus:     PreviewPane,
		HasStatus: true,
		Selection: tree.Selection{Kind: tree.SelFile, Path: "docs/guide.md"},
		Position:  gitrepo.DocsPosition(),
	})
	if d.Kind != FileContent {
		t.Fatalf("expected FileContent in Docs, got %+v", d)
	}
}
