package cmd

import (
	"fmt"

	"github.com/Noel007-cse/plot-twist-cli/internal/application"
	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	return newAuthCmd(app, domain.AuthModeLogin, "login", "Log in to the Plot Twist backend")
}

func newSignupCmd(app *app) *cobra.Command {
	return newAuthCmd(app, domain.AuthModeSignup, "signup", "Create a Plot Twist account")
}

func newAuthCmd(app *app, mode domain.AuthMode, use, short string) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAuth(cmd, app, mode, email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// runAuth walks the same path the interactive client does: exchange
// credentials, persist the session, then resolve the interest gate
// fresh for the new login.
func runAuth(cmd *cobra.Command, app *app, mode domain.AuthMode, email, password string) error {
	ctx := cmd.Context()
	orchestrator := app.orchestrator()

	session, err := orchestrator.Auth().Submit(ctx, mode, email, password)
	if err != nil {
		return err
	}

	query, err := orchestrator.CompleteLogin(ctx, session)
	if err != nil {
		return err
	}
	orchestrator.ApplyGate(orchestrator.ResolveGate(ctx, query))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", session.Email)
	if orchestrator.Screen() == application.ScreenInterests {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No interests on file yet: run 'pt interests --set Music,Reading' to pick some")
	}

	return nil
}
