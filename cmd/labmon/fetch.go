package main

import (
	"fmt"

	"github.com/justinpbarnett/labmon/internal/events"
	"github.com/justinpbarnett/labmon/internal/ui/panels"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the event list once and print it",
	Long: `Fetch the event list once, print it the way the dashboard would show
it, and exit. Exits non-zero when the fetch fails.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client := events.NewClient(cfg.Backend.URL, panels.Version)
	defer client.Close()

	state := events.NewState()
	evs, fetchErr := client.Fetch(cmd.Context())
	state.Apply(evs, fetchErr)

	fmt.Fprintln(cmd.OutOrStdout(), panels.RenderEvents(state))
	if fetchErr != nil {
		return fmt.Errorf("fetch %s: %w", client.URL(), fetchErr)
	}
	return nil
}
