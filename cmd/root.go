package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pt",
		Short:         "Plot Twist (pt): find something to do with your free time",
		Long:          "pt is the terminal client for the Plot Twist activity suggester: log in, declare interests once, then ask for activity suggestions sized to your free time and energy, chat about them, and review past suggestions.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runInteractive(cmd, app)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newLoginCmd(app),
		newSignupCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newInterestsCmd(app),
		newSuggestCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}
