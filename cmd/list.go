package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"promptfind/internal/config"
	"promptfind/internal/fileaccess"
	"promptfind/internal/locator"
	"promptfind/internal/logging"
	"promptfind/internal/report"
)

// SerializablePrompt is the JSON shape for a located prompt file.
type SerializablePrompt struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Dir  string `json:"dir"`
}

func init() {
	listCmd := &cobra.Command{
		Use:   "list [folders...]",
		Short: "Locate prompt files and print them (headless)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			logging.Setup(cfg.Verbose)

			ws, err := buildWorkspace(args, cfg)
			if err != nil {
				return err
			}
			exclude, err := parseExcludes(cfg.Exclude)
			if err != nil {
				return err
			}

			loc := locator.New(ws, fileaccess.NewOS(), cfg)
			startedAt := time.Now()
			files, err := loc.ListPromptFiles(cmd.Context(), exclude)
			if err != nil {
				return err
			}
			files = postFilter(cfg, ws.Folders())(files)
			finishedAt := time.Now()

			for _, f := range files {
				fmt.Println(f.Path())
			}

			if cfg.JSONOut != "" {
				out := make([]SerializablePrompt, 0, len(files))
				for _, f := range files {
					out = append(out, SerializablePrompt{
						Name: f.Basename(),
						Path: f.Path(),
						Dir:  f.Dirname().Path(),
					})
				}
				jf, jerr := os.Create(cfg.JSONOut)
				if jerr != nil {
					return jerr
				}
				enc := json.NewEncoder(jf)
				enc.SetIndent("", "  ")
				if err := enc.Encode(out); err != nil {
					_ = jf.Close()
					return err
				}
				_ = jf.Close()
			}

			if cfg.MDOut != "" {
				summary := report.Summary{
					Workspace:  workspaceLabel(ws),
					State:      ws.State().String(),
					Locations:  cfg.Locations,
					StartedAt:  startedAt,
					FinishedAt: finishedAt,
					Searched:   len(loc.CandidateLocations()),
					Found:      len(files),
					JSONPath:   cfg.JSONOut,
				}
				if _, err := report.WriteMarkdown(cfg.MDOut, files, summary); err != nil {
					return err
				}
			}

			fmt.Fprintf(os.Stderr, "Found %d prompt files\n", len(files))
			return nil
		},
	}

	addLocatorFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}
