package main

import (
	"fmt"

	"github.com/justinpbarnett/labmon/internal/ui/panels"
	"github.com/justinpbarnett/labmon/internal/update"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace this binary with the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Current version: %s\n", panels.Version)

		rel, err := update.Apply(cmd.Context(), panels.Version, update.Repo)
		if err != nil {
			return err
		}
		if update.CompareVersions(panels.Version, rel.Version) >= 0 {
			fmt.Fprintln(out, "Already up to date.")
			return nil
		}
		fmt.Fprintf(out, "Updated to v%s.\n", rel.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
