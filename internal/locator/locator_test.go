package locator

import (
	"context"
	"testing"

	"promptfind/internal/fileaccess"
	"promptfind/internal/uri"
	"promptfind/internal/workspace"
)

type staticLocations []string

func (s staticLocations) SourceLocations() []string { return s }

type fakeWorkspace struct {
	state   workspace.State
	folders []workspace.Folder
}

func (w *fakeWorkspace) State() workspace.State      { return w.state }
func (w *fakeWorkspace) Folders() []workspace.Folder { return w.folders }

func folder(path string) workspace.Folder {
	u := uri.File(path)
	return workspace.Folder{Name: u.Basename(), URI: u}
}

func paths(uris []uri.URI) []string {
	out := make([]string, len(uris))
	for i, u := range uris {
		out[i] = u.Path()
	}
	return out
}

func TestCandidateLocationsEmptyWorkspace(t *testing.T) {
	ws := &fakeWorkspace{state: workspace.StateEmpty}
	l := New(ws, fileaccess.NewFake(), staticLocations{".prompts", "/abs/prompts"})
	if got := l.CandidateLocations(); len(got) != 0 {
		t.Fatalf("expected no candidates for empty workspace, got %v", paths(got))
	}
}

func TestCandidateLocationsSingleFolder(t *testing.T) {
	ws := &fakeWorkspace{
		state:   workspace.StateFolder,
		folders: []workspace.Folder{folder("/ws/a")},
	}
	l := New(ws, fileaccess.NewFake(), staticLocations{".prompts", "/abs/prompts"})
	got := paths(l.CandidateLocations())
	want := []string{"/ws/a/.prompts", "/abs/prompts"}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidates = %v, want %v", got, want)
		}
	}
}

func TestCandidateLocationsMultiRoot(t *testing.T) {
	// The third folder is the workspace root itself, so the root-level
	// candidate /ws/.prompts falls inside its subtree and must appear
	// exactly once.
	ws := &fakeWorkspace{
		state: workspace.StateWorkspace,
		folders: []workspace.Folder{
			folder("/ws/a"),
			folder("/ws/b"),
			folder("/ws"),
		},
	}
	l := New(ws, fileaccess.NewFake(), staticLocations{".prompts"})
	got := paths(l.CandidateLocations())
	want := []string{"/ws/a/.prompts", "/ws/b/.prompts", "/ws/.prompts"}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidates = %v, want %v", got, want)
		}
	}
}

func TestCandidateLocationsMultiRootOutsideSubtrees(t *testing.T) {
	// With only /ws/a and /ws/b open, the root-level candidate /ws/.prompts
	// sits outside both subtrees and is not added.
	ws := &fakeWorkspace{
		state: workspace.StateWorkspace,
		folders: []workspace.Folder{
			folder("/ws/a"),
			folder("/ws/b"),
		},
	}
	l := New(ws, fileaccess.NewFake(), staticLocations{".prompts"})
	got := paths(l.CandidateLocations())
	want := []string{"/ws/a/.prompts", "/ws/b/.prompts"}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidates = %v, want %v", got, want)
		}
	}
}

func TestCandidateLocationsOverlapResolution(t *testing.T) {
	// A configured name that repeats the folder's own basename resolves one
	// level up instead of duplicating the segment.
	ws := &fakeWorkspace{
		state:   workspace.StateFolder,
		folders: []workspace.Folder{folder("/foo/bar")},
	}
	l := New(ws, fileaccess.NewFake(), staticLocations{"bar/prompts"})
	got := paths(l.CandidateLocations())
	if len(got) != 1 || got[0] != "/foo/bar/prompts" {
		t.Fatalf("candidates = %v, want [/foo/bar/prompts]", got)
	}
}

func TestListPromptFilesFiltering(t *testing.T) {
	dir := uri.File("/ws/a/.prompts")
	files := fileaccess.NewFake()
	files.AddFile(dir, "x.prompt.md")
	files.AddFile(dir, "x.txt")
	files.AddDir(dir, "sub.prompt.md")
	files.AddFile(dir, "y.prompt.md")

	ws := &fakeWorkspace{
		state:   workspace.StateFolder,
		folders: []workspace.Folder{folder("/ws/a")},
	}
	l := New(ws, files, staticLocations{".prompts"})

	got, err := l.ListPromptFiles(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListPromptFiles error: %v", err)
	}
	want := []string{"/ws/a/.prompts/x.prompt.md", "/ws/a/.prompts/y.prompt.md"}
	if len(got) != len(want) {
		t.Fatalf("files = %v, want %v", paths(got), want)
	}
	for i := range want {
		if got[i].Path() != want[i] {
			t.Fatalf("files = %v, want %v", paths(got), want)
		}
	}

	// Excluding a file by path removes it from the listing.
	got, err = l.ListPromptFiles(context.Background(), []uri.URI{uri.File("/ws/a/.prompts/x.prompt.md")})
	if err != nil {
		t.Fatalf("ListPromptFiles error: %v", err)
	}
	if len(got) != 1 || got[0].Path() != "/ws/a/.prompts/y.prompt.md" {
		t.Fatalf("files = %v, want [/ws/a/.prompts/y.prompt.md]", paths(got))
	}
}

func TestListPromptFilesExcludedCandidateDir(t *testing.T) {
	dir := uri.File("/ws/a/.prompts")
	files := fileaccess.NewFake()
	files.AddFile(dir, "x.prompt.md")

	ws := &fakeWorkspace{
		state:   workspace.StateFolder,
		folders: []workspace.Folder{folder("/ws/a")},
	}
	l := New(ws, files, staticLocations{".prompts"})

	got, err := l.ListPromptFiles(context.Background(), []uri.URI{dir})
	if err != nil {
		t.Fatalf("ListPromptFiles error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no files from excluded directory, got %v", paths(got))
	}
	// The excluded directory must not even be requested.
	if len(files.Calls) != 0 {
		t.Fatalf("expected no batch request, got %d", len(files.Calls))
	}
}

func TestListPromptFilesFailedResolutionNonFatal(t *testing.T) {
	good := uri.File("/ws/a/.prompts")
	bad := uri.File("/ws/b/.prompts")
	files := fileaccess.NewFake()
	files.AddFile(good, "ok.prompt.md")
	files.AddFile(bad, "lost.prompt.md")
	files.Fail[bad.Path()] = true

	ws := &fakeWorkspace{
		state: workspace.StateWorkspace,
		folders: []workspace.Folder{
			folder("/ws/a"),
			folder("/ws/b"),
		},
	}
	l := New(ws, files, staticLocations{".prompts"})

	got, err := l.ListPromptFiles(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListPromptFiles error: %v", err)
	}
	if len(got) != 1 || got[0].Path() != "/ws/a/.prompts/ok.prompt.md" {
		t.Fatalf("files = %v, want only the successful directory's match", paths(got))
	}
	// The whole lookup is one batched request.
	if len(files.Calls) != 1 {
		t.Fatalf("expected a single batch request, got %d", len(files.Calls))
	}
}
