package cmd

import (
	"fmt"
	"strings"

	"github.com/Noel007-cse/plot-twist-cli/internal/application"
	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newInterestsCmd(app *app) *cobra.Command {
	var set string

	cmd := &cobra.Command{
		Use:   "interests",
		Short: "Show or update your interests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			if set != "" {
				return setInterests(cmd, app, session.UserID, set)
			}
			return showInterests(cmd, app, session.UserID)
		},
	}

	cmd.Flags().StringVar(&set, "set", "", "Comma-separated interests to save (e.g. Music,Reading)")

	return cmd
}

func showInterests(cmd *cobra.Command, app *app, userID string) error {
	interests, err := app.backend.Interests.Interests(cmd.Context(), userID)
	if err != nil {
		return err
	}

	if len(interests) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No interests on file")
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Interests: %s\n", strings.Join(interests, ", "))
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Available: %s\n", strings.Join(domain.AvailableInterests, ", "))

	return nil
}

func setInterests(cmd *cobra.Command, app *app, userID, raw string) error {
	var interests []string
	for _, label := range strings.Split(raw, ",") {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if !domain.KnownInterest(label) {
			return fmt.Errorf("unknown interest %q (available: %s)", label, strings.Join(domain.AvailableInterests, ", "))
		}
		interests = append(interests, label)
	}

	gate := application.NewInterestGate(app.backend.Interests)
	if err := gate.Save(cmd.Context(), userID, interests); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %d interests\n", len(interests))
	return nil
}
