package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show your past suggestions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			entries, err := app.backend.History.History(cmd.Context(), session.UserID)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No suggestions yet: run 'pt suggest'")
				return nil
			}

			for _, entry := range entries {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), entry.Suggestion)
				meta := fmt.Sprintf("  %d mins, %s energy", entry.Minutes, entry.Energy)
				if !entry.CreatedAt.IsZero() {
					meta += ", " + entry.CreatedAt.Format("2006-01-02")
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), meta)
			}

			return nil
		},
	}
}
