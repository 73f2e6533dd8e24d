package locator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"promptfind/internal/uri"
	"promptfind/internal/workspace"
)

// ExcludeGlobs drops files whose path relative to their workspace folder
// matches any of the doublestar patterns. Files outside every folder are
// matched against their full path.
func ExcludeGlobs(files []uri.URI, folders []workspace.Folder, patterns []string) []uri.URI {
	if len(patterns) == 0 {
		return files
	}
	kept := files[:0:0]
	for _, f := range files {
		rel := relativeTo(f, folders)
		excluded := false
		for _, p := range patterns {
			if ok, _ := doublestar.PathMatch(p, rel); ok {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, f)
		}
	}
	return kept
}

// ExcludeIgnored drops files matched by their workspace folder's .gitignore
// (or .git/info/exclude). Folders without ignore rules pass everything.
func ExcludeIgnored(files []uri.URI, folders []workspace.Folder) []uri.URI {
	matchers := make(map[string]*ignore.GitIgnore, len(folders))
	for _, folder := range folders {
		matchers[folder.URI.Path()] = loadGitIgnore(folder.URI.FSPath())
	}

	kept := files[:0:0]
	for _, f := range files {
		drop := false
		for _, folder := range folders {
			m := matchers[folder.URI.Path()]
			if m == nil {
				continue
			}
			if rel, ok := strings.CutPrefix(f.Path(), folder.URI.Path()+"/"); ok && m.MatchesPath(rel) {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, f)
		}
	}
	return kept
}

func relativeTo(f uri.URI, folders []workspace.Folder) string {
	for _, folder := range folders {
		if rel, ok := strings.CutPrefix(f.Path(), folder.URI.Path()+"/"); ok {
			return rel
		}
	}
	return f.Path()
}

func loadGitIgnore(root string) *ignore.GitIgnore {
	var lines []string
	if b, err := os.ReadFile(filepath.Join(root, ".gitignore")); err == nil {
		lines = append(lines, strings.Split(string(b), "\n")...)
	}
	if b, err := os.ReadFile(filepath.Join(root, ".git", "info", "exclude")); err == nil {
		lines = append(lines, strings.Split(string(b), "\n")...)
	}
	if len(lines) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(lines...)
}
