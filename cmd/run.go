package cmd

import (
	"github.com/spf13/cobra"

	"promptfind/internal/config"
	"promptfind/internal/fileaccess"
	"promptfind/internal/locator"
	"promptfind/internal/logging"
	"promptfind/internal/tui"
)

func init() {
	runCmd := &cobra.Command{
		Use:   "run [folders...]",
		Short: "Locate prompt files and browse them in a TUI",
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
			return tui.Run(loc, tui.Options{
				Workspace: workspaceLabel(ws),
				State:     ws.State().String(),
				Locations: cfg.Locations,
				Exclude:   exclude,
				Filter:    postFilter(cfg, ws.Folders()),
				JSONOut:   cfg.JSONOut,
				MDOut:     cfg.MDOut,
			})
		},
	}

	addLocatorFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}
