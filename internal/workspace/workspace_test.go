package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromDirs(t *testing.T) {
	ws, err := FromDirs(nil)
	if err != nil {
		t.Fatalf("FromDirs error: %v", err)
	}
	if ws.State() != StateEmpty || len(ws.Folders()) != 0 {
		t.Fatalf("expected empty workspace, got %v with %d folders", ws.State(), len(ws.Folders()))
	}

	ws, err = FromDirs([]string{t.TempDir()})
	if err != nil {
		t.Fatalf("FromDirs error: %v", err)
	}
	if ws.State() != StateFolder {
		t.Fatalf("expected folder state, got %v", ws.State())
	}

	ws, err = FromDirs([]string{t.TempDir(), t.TempDir()})
	if err != nil {
		t.Fatalf("FromDirs error: %v", err)
	}
	if ws.State() != StateWorkspace || len(ws.Folders()) != 2 {
		t.Fatalf("expected multi-root workspace, got %v with %d folders", ws.State(), len(ws.Folders()))
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	doc := `{"folders": [{"path": "a"}, {"path": "b", "name": "backend"}]}`
	path := filepath.Join(dir, "demo.code-workspace")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ws, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile error: %v", err)
	}
	if ws.State() != StateWorkspace {
		t.Fatalf("expected workspace state, got %v", ws.State())
	}
	folders := ws.Folders()
	if len(folders) != 2 {
		t.Fatalf("expected 2 folders, got %d", len(folders))
	}
	if folders[0].Name != "a" || !strings.HasSuffix(folders[0].URI.Path(), "/a") {
		t.Fatalf("unexpected first folder: %+v", folders[0])
	}
	if folders[1].Name != "backend" {
		t.Fatalf("expected explicit name to win, got %q", folders[1].Name)
	}

	if _, err := FromFile(filepath.Join(dir, "absent.code-workspace")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
