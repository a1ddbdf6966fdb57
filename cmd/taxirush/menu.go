package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/taxi-rush/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start screen with leaderboard and role choice",
	Long: `Open the start screen. From there you can view the leaderboard and
run history, or pick a role and a name and start a shift. Finishing a shift
returns to the start screen.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := setup(modeTUI)
	if err != nil {
		return err
	}
	defer a.close()

	return tui.RunSession(a.runtime, a.svc)
}
