// Package workspace models the open workspace: its workbench state and the
// ordered list of root folders.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"promptfind/internal/uri"
)

// State classifies the currently open workspace.
type State int

const (
	// StateEmpty means no workspace is open.
	StateEmpty State = iota
	// StateFolder means a single folder is open.
	StateFolder
	// StateWorkspace means a multi-root workspace is open.
	StateWorkspace
)

func (s State) String() string {
	switch s {
	case StateFolder:
		return "folder"
	case StateWorkspace:
		return "workspace"
	default:
		return "empty"
	}
}

// Folder is a named workspace root.
type Folder struct {
	Name string
	URI  uri.URI
}

// Service exposes the current workspace topology.
type Service interface {
	State() State
	Folders() []Folder
}

// Static is a Service over a fixed set of folders.
type Static struct {
	state   State
	folders []Folder
}

func (s *Static) State() State      { return s.state }
func (s *Static) Folders() []Folder { return s.folders }

// FromDirs builds a workspace from a list of folder paths. Zero paths yield
// the empty state, one the single-folder state, more the multi-root state.
func FromDirs(dirs []string) (*Static, error) {
	ws := &Static{}
	for _, d := range dirs {
		abs, err := filepath.Abs(d)
		if err != nil {
			return nil, fmt.Errorf("resolving folder %q: %w", d, err)
		}
		ws.folders = append(ws.folders, Folder{Name: filepath.Base(abs), URI: uri.File(abs)})
	}
	switch len(ws.folders) {
	case 0:
		ws.state = StateEmpty
	case 1:
		ws.state = StateFolder
	default:
		ws.state = StateWorkspace
	}
	return ws, nil
}

// workspaceFile mirrors the folders section of a .code-workspace document.
type workspaceFile struct {
	Folders []struct {
		Path string `json:"path"`
		Name string `json:"name"`
	} `json:"folders"`
}

// FromFile builds a workspace from a .code-workspace JSON file. Relative
// folder paths are resolved against the file's directory. A workspace file
// always yields the multi-root state, whatever the folder count.
func FromFile(path string) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workspace file: %w", err)
	}
	var doc workspaceFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing workspace file %s: %w", path, err)
	}

	base := filepath.Dir(path)
	ws := &Static{state: StateWorkspace}
	for _, f := range doc.Folders {
		p := f.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		name := f.Name
		if name == "" {
			name = filepath.Base(p)
		}
		ws.folders = append(ws.folders, Folder{Name: name, URI: uri.File(p)})
	}
	if len(ws.folders) == 0 {
		ws.state = StateEmpty
	}
	return ws, nil
}
