package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Joshuacru/train-routes/internal/buildinfo"
	"github.com/Joshuacru/train-routes/internal/infra/logger"
	"github.com/Joshuacru/train-routes/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "train-routes",
		Short:        "train-routes — shortest train route between two stations",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// No subcommand: interactive mode.
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  wd,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			src, err := openSource(cmd)
			if err != nil {
				return err
			}
			defer src.Close()

			return tui.Run(tui.Deps{
				Source: src.routes,
				Name:   src.name,
				Logger: logger.L(),
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .trainroutes/logs/trainroutes.log")
	addSourceFlags(cmd)

	cmd.AddCommand(queryCmd())
	cmd.AddCommand(stationsCmd())
	cmd.AddCommand(validateCmd())
	cmd.AddCommand(importCmd())
	cmd.AddCommand(serveCmd())

	return cmd
}
