package cmd

import (
	"fmt"

	"github.com/Noel007-cse/plot-twist-cli/internal/application"
	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSuggestCmd(app *app) *cobra.Command {
	var (
		minutes int
		energy  string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask for an activity suggestion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuggest(cmd, app, minutes, energy)
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 30, "Free minutes available (10-120)")
	cmd.Flags().StringVar(&energy, "energy", string(domain.EnergyMedium), "Energy level: low, medium or high")

	return cmd
}

// runSuggest is the one-shot version of the workflow cycle: the same
// guards apply, a failed fetch still shows the fallback text, and
// history refreshes only after a successful suggestion.
func runSuggest(cmd *cobra.Command, app *app, minutes int, energy string) error {
	ctx := cmd.Context()

	session, err := requireSession(ctx, app)
	if err != nil {
		return err
	}

	workflow := application.NewWorkflow(app.backend.Suggestions, app.backend.History, app.backend.Chat, app.clock, session.UserID)

	req := domain.FreeTime{Minutes: minutes, Energy: domain.Energy(energy)}
	attempt, err := workflow.Begin(req)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), domain.TimeWindowMessage(minutes))

	var outcome application.Outcome
	err = runFetchSpinner(ctx, cmd.OutOrStdout(), "Finding something for you...", func() {
		outcome = workflow.Fetch(ctx, attempt)
	})
	if err != nil {
		return err
	}

	workflow.Apply(outcome)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), workflow.Suggestion())

	if workflow.Phase() == application.PhaseReady {
		workflow.ApplyHistory(workflow.RefreshHistory(ctx))
		if entries := workflow.History(); len(entries) > 0 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "(%d past suggestions: see 'pt history')\n", len(entries))
		}
	}

	return nil
}
