package cmd

import (
	"github.com/Noel007-cse/plot-twist-cli/internal/adapters/tui"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive client",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, app)
		},
	}
}

func runInteractive(cmd *cobra.Command, app *app) error {
	return tui.Run(cmd.Context(), app.orchestrator())
}
