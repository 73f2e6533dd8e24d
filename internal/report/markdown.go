package report

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"promptfind/internal/uri"
)

// Summary captures high-level run details for the report.
type Summary struct {
	Workspace  string
	State      string
	Locations  []string
	StartedAt  time.Time
	FinishedAt time.Time
	Searched   int
	Found      int
	JSONPath   string
}

// WriteMarkdown writes a GitHub-flavored Markdown report of the located
// prompt files to path. If path is empty, it derives a safe filename from
// s.Workspace.
func WriteMarkdown(path string, files []uri.URI, s Summary) (string, error) {
	if strings.TrimSpace(path) == "" {
		base := filepath.Base(s.Workspace)
		if strings.TrimSpace(base) == "" || base == "." || base == string(filepath.Separator) {
			base = "prompts"
		}
		var b strings.Builder
		for _, r := range strings.ToLower(base) {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
				b.WriteRune(r)
			} else {
				b.WriteByte('_')
			}
		}
		path = fmt.Sprintf("%s.md", b.String())
	}

	var buf bytes.Buffer
	buf.WriteString("## Prompt File Report\n\n")
	buf.WriteString(fmt.Sprintf("- **Workspace**: %s (%s)\n", escapeMD(s.Workspace), escapeMD(s.State)))
	buf.WriteString(fmt.Sprintf("- **Locations**: %s\n", escapeMD(strings.Join(s.Locations, ", "))))
	buf.WriteString(fmt.Sprintf("- **Started**: %s\n", s.StartedAt.Format("2006-01-02 15:04:05 MST")))
	buf.WriteString(fmt.Sprintf("- **Finished**: %s\n", s.FinishedAt.Format("2006-01-02 15:04:05 MST")))
	buf.WriteString(fmt.Sprintf("- **Folders searched**: %d  •  **Files found**: %d\n", s.Searched, s.Found))
	if s.JSONPath != "" {
		buf.WriteString(fmt.Sprintf("- **JSON**: %s\n", escapeMD(filepath.Base(s.JSONPath))))
	}
	buf.WriteString("\n")

	buf.WriteString("### Files by folder\n\n")

	// Group files by parent directory, preserving discovery order.
	var dirs []string
	byDir := make(map[string][]uri.URI)
	for _, f := range files {
		dir := f.Dirname().Path()
		if _, ok := byDir[dir]; !ok {
			dirs = append(dirs, dir)
		}
		byDir[dir] = append(byDir[dir], f)
	}

	if len(dirs) == 0 {
		buf.WriteString("No prompt files found.\n")
	}
	for _, dir := range dirs {
		buf.WriteString(fmt.Sprintf("- `%s`\n", escapeMD(dir)))
		buf.WriteString("  <details><summary>files</summary>\n\n")
		for _, f := range byDir[dir] {
			buf.WriteString(fmt.Sprintf("  - [%s](%s)\n", escapeMD(f.Basename()), escapeLinkPath(f.Path())))
		}
		buf.WriteString("\n  </details>\n\n")
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.Write(buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

func escapeMD(s string) string {
	// Basic HTML escape to be safe in GitHub Markdown.
	return html.EscapeString(s)
}

// escapeLinkPath escapes a path for inclusion in a Markdown link URL. We keep
// it simple and only escape parentheses and spaces.
func escapeLinkPath(p string) string {
	p = strings.ReplaceAll(p, " ", "%20")
	p = strings.ReplaceAll(p, "(", "%28")
	p = strings.ReplaceAll(p, ")", "%29")
	return p
}
