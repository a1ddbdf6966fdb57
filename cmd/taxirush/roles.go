package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/taxi-rush/internal/registry"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the playable roles",
	Long:  `Shows every role that can be passed to 'taxirush play'.`,
	Args:  cobra.NoArgs,
	Run:   runRoles,
}

func runRoles(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	fmt.Fprintln(out, "Available roles:")
	fmt.Fprintln(out)

	maxIDLen := len("random")
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "random", "Either one")

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'taxirush play <id>' to start a shift.")
}
