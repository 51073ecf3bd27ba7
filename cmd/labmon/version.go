package main

import (
	"fmt"

	"github.com/justinpbarnett/labmon/internal/ui/panels"
	"github.com/justinpbarnett/labmon/internal/update"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and check for a newer release",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runVersion(cmd, update.Repo)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, repo string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "labmon version %s\n", panels.Version)

	if update.IsDev(panels.Version) {
		fmt.Fprintln(out, "Development build, update check skipped.")
		return
	}

	rel, err := update.CheckForUpdate(cmd.Context(), panels.Version, repo)
	if err != nil {
		fmt.Fprintf(out, "Update check failed: %v\n", err)
		return
	}

	if rel != nil {
		fmt.Fprintf(out, "Update available: v%s. Run \"labmon update\" to install.\n", rel.Version)
	} else {
		fmt.Fprintln(out, "You are up to date.")
	}
}
