// Package locator computes where prompt files may live in the current
// workspace and discovers the ones actually present.
package locator

import (
	"context"
	"fmt"
	"strings"

	"promptfind/internal/fileaccess"
	"promptfind/internal/logging"
	"promptfind/internal/uri"
	"promptfind/internal/workspace"
)

// PromptFileExtension is the fixed extension identifying prompt files.
const PromptFileExtension = ".prompt.md"

// Locations supplies the configured source-location names, each a relative or
// absolute path identifying where prompt files live within a workspace folder.
type Locations interface {
	SourceLocations() []string
}

// ResourceSet tracks URIs by raw path string. Casing and trailing-slash
// differences are deliberately not collapsed.
type ResourceSet map[string]struct{}

func NewResourceSet(uris ...uri.URI) ResourceSet {
	s := make(ResourceSet, len(uris))
	for _, u := range uris {
		s.Add(u)
	}
	return s
}

func (s ResourceSet) Add(u uri.URI)      { s[u.Path()] = struct{}{} }
func (s ResourceSet) Has(u uri.URI) bool { _, ok := s[u.Path()]; return ok }

// Locator discovers prompt files across workspace folders. It holds no state
// between calls; every listing recomputes locations from the current
// workspace and configuration.
type Locator struct {
	ws        workspace.Service
	files     fileaccess.Service
	locations Locations
}

func New(ws workspace.Service, files fileaccess.Service, locations Locations) *Locator {
	return &Locator{ws: ws, files: files, locations: locations}
}

// ListPromptFiles returns the prompt files found across all candidate source
// folders, excluding any URI whose path appears in exclude. Result order
// follows candidate-folder order, then directory listing order.
func (l *Locator) ListPromptFiles(ctx context.Context, exclude []uri.URI) ([]uri.URI, error) {
	excluded := NewResourceSet(exclude...)

	candidates := l.CandidateLocations()
	dirs := make([]uri.URI, 0, len(candidates))
	for _, dir := range candidates {
		if excluded.Has(dir) {
			continue
		}
		dirs = append(dirs, dir)
	}
	logging.Debug("listing prompt files", "candidates", len(candidates), "searched", len(dirs))

	return l.discoverFiles(ctx, dirs, excluded)
}

// CandidateLocations enumerates the directories to search, derived from the
// workspace topology and the configured source-location names. Deduplication
// is by raw path string, so candidates differing only in casing or trailing
// slash may both appear.
func (l *Locator) CandidateLocations() []uri.URI {
	if l.ws.State() == workspace.StateEmpty {
		return nil
	}
	folders := l.ws.Folders()
	if len(folders) == 0 {
		return nil
	}

	// Parent of the first folder; only consulted for multi-root workspaces.
	var wsRoot uri.URI
	if len(folders) > 1 {
		wsRoot = folders[0].URI.Dirname()
	}

	seen := make(ResourceSet)
	var out []uri.URI
	for _, folder := range folders {
		for _, name := range l.locations.SourceLocations() {
			candidate, err := uri.ResolvePath(folder.URI, name)
			if err != nil {
				logging.Warn("skipping unusable source location", "location", name, "error", err)
				continue
			}
			if !seen.Has(candidate) {
				seen.Add(candidate)
				out = append(out, candidate)
			}
			if len(folders) < 2 {
				continue
			}
			// In multi-root workspaces a name may also designate a single
			// directory at the workspace root; include it when it falls
			// inside this folder's subtree.
			rooted, err := uri.ResolvePath(wsRoot, name)
			if err != nil {
				continue
			}
			if !seen.Has(rooted) && strings.HasPrefix(rooted.Path(), folder.URI.Path()) {
				seen.Add(rooted)
				out = append(out, rooted)
			}
		}
	}
	return out
}

// discoverFiles batch-resolves the candidate directories and collects the
// children that are plain files with the prompt extension and are not
// excluded. Directories that fail to resolve contribute nothing.
func (l *Locator) discoverFiles(ctx context.Context, dirs []uri.URI, excluded ResourceSet) ([]uri.URI, error) {
	if len(dirs) == 0 {
		return nil, nil
	}
	resolutions, err := l.files.ResolveAll(ctx, dirs)
	if err != nil {
		return nil, fmt.Errorf("resolving source folders: %w", err)
	}

	var found []uri.URI
	for _, res := range resolutions {
		if !res.Success || len(res.Stat.Children) == 0 {
			logging.Debug("source folder yielded nothing", "dir", res.Resource.Path())
			continue
		}
		for _, child := range res.Stat.Children {
			if child.IsDirectory {
				continue
			}
			if !strings.HasSuffix(child.Name, PromptFileExtension) {
				continue
			}
			if excluded.Has(child.Resource) {
				continue
			}
			found = append(found, child.Resource)
		}
	}
	return found, nil
}
