package fileaccess

import (
	"context"

	"promptfind/internal/uri"
)

// Fake is an in-memory Service for tests. Directories are keyed by URI path;
// paths listed in Fail resolve unsuccessfully regardless of Dirs.
type Fake struct {
	Dirs  map[string][]Entry
	Fail  map[string]bool
	Calls [][]uri.URI
}

func NewFake() *Fake {
	return &Fake{Dirs: make(map[string][]Entry), Fail: make(map[string]bool)}
}

// AddFile registers a plain file child under the directory dir.
func (f *Fake) AddFile(dir uri.URI, name string) {
	f.Dirs[dir.Path()] = append(f.Dirs[dir.Path()], Entry{
		Name:     name,
		Resource: dir.JoinPath(name),
	})
}

// AddDir registers a subdirectory child under the directory dir.
func (f *Fake) AddDir(dir uri.URI, name string) {
	f.Dirs[dir.Path()] = append(f.Dirs[dir.Path()], Entry{
		Name:        name,
		Resource:    dir.JoinPath(name),
		IsDirectory: true,
	})
}

func (f *Fake) ResolveAll(_ context.Context, resources []uri.URI) ([]Resolution, error) {
	f.Calls = append(f.Calls, append([]uri.URI(nil), resources...))
	results := make([]Resolution, len(resources))
	for i, res := range resources {
		results[i] = Resolution{Resource: res}
		if f.Fail[res.Path()] {
			continue
		}
		children, ok := f.Dirs[res.Path()]
		if !ok {
			continue
		}
		results[i].Success = true
		results[i].Stat = Stat{Resource: res, IsDirectory: true, Children: children}
	}
	return results, nil
}
