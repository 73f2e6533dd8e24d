package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"promptfind/internal/config"
	"promptfind/internal/locator"
	"promptfind/internal/uri"
	"promptfind/internal/workspace"
)

var rootCmd = &cobra.Command{
	Use:   "promptfind",
	Short: "Locate reusable prompt files across workspace folders",
	Long:  "Promptfind enumerates the configured prompt source folders of a workspace (single folder or multi-root) and lists the *.prompt.md files they contain.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// addLocatorFlags registers the flags shared by list and run. Names match
// the koanf keys so the posflag provider can overlay them onto the config.
func addLocatorFlags(c *cobra.Command) {
	c.Flags().StringSlice("locations", nil, "source folder names to search (relative or absolute)")
	c.Flags().String("workspace-file", "", "path to a .code-workspace file defining a multi-root workspace")
	c.Flags().StringSlice("exclude", nil, "file or folder paths to exclude")
	c.Flags().StringSlice("exclude-globs", nil, "doublestar patterns to exclude, relative to their folder")
	c.Flags().Bool("respect-gitignore", true, "respect .gitignore while listing")
	c.Flags().String("json-out", "", "path to write located files as JSON")
	c.Flags().String("md-out", "", "path to write a Markdown report")
	c.Flags().Int("verbose", 0, "verbosity: 1 info, 2 debug")
}

// buildWorkspace derives the workspace topology from positional folder
// arguments or a workspace file. Arguments may be comma-separated chunks.
func buildWorkspace(args []string, cfg *config.Config) (workspace.Service, error) {
	if strings.TrimSpace(cfg.WorkspaceFile) != "" {
		return workspace.FromFile(cfg.WorkspaceFile)
	}
	var dirs []string
	for _, a := range args {
		for _, part := range strings.Split(a, ",") {
			if p := strings.TrimSpace(part); p != "" {
				dirs = append(dirs, p)
			}
		}
	}
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	return workspace.FromDirs(dirs)
}

func parseExcludes(entries []string) ([]uri.URI, error) {
	var out []uri.URI
	for _, e := range entries {
		u, err := uri.Parse(e)
		if err != nil {
			return nil, fmt.Errorf("bad exclude %q: %w", e, err)
		}
		if u.Scheme() == uri.SchemeFile && !u.IsAbsolute() {
			abs, aerr := filepath.Abs(u.FSPath())
			if aerr != nil {
				return nil, fmt.Errorf("bad exclude %q: %w", e, aerr)
			}
			u = uri.File(abs)
		}
		out = append(out, u)
	}
	return out, nil
}

// postFilter applies the supplemental glob and gitignore exclusions on top of
// the locator's own URI-based exclusion set.
func postFilter(cfg *config.Config, folders []workspace.Folder) func([]uri.URI) []uri.URI {
	return func(files []uri.URI) []uri.URI {
		files = locator.ExcludeGlobs(files, folders, cfg.ExcludeGlobs)
		if cfg.RespectGitignore {
			files = locator.ExcludeIgnored(files, folders)
		}
		return files
	}
}

func workspaceLabel(ws workspace.Service) string {
	folders := ws.Folders()
	switch len(folders) {
	case 0:
		return "(no workspace)"
	case 1:
		return folders[0].URI.Path()
	default:
		return fmt.Sprintf("%s (%d folders)", folders[0].URI.Dirname().Path(), len(folders))
	}
}
