// Command labmon is a terminal dashboard for the ASIC lab event service.
//
// Usage:
//
//	labmon                      # open the live dashboard
//	labmon -u http://lab:5000   # point at another backend
//	labmon fetch                # fetch once and print the events
//	labmon config               # print the effective configuration
//	labmon version              # show version and check for updates
//	labmon update               # install the latest release
package main

import (
	"fmt"
	"os"

	"github.com/justinpbarnett/labmon/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labmon",
	Short: "Live ASIC lab event monitor",
	Long: `labmon polls the lab event service every 5 seconds and shows the
latest activity in a terminal dashboard.

Configuration is read from ./labmon.yaml, ./labmon.toml or
~/.config/labmon/config.{yaml,toml}, then LABMON_URL, LABMON_LOG_LEVEL and
LABMON_LOG_FILE, then the flags below.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringP("url", "u", "", "backend base URL (default http://localhost:5000)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config file (skips discovery)")
}

// loadConfig resolves the effective configuration for cmd: file, env,
// then the --url flag, validated once at the end.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	url, _ := cmd.Flags().GetString("url")
	return config.LoadWith(path, config.Overrides{URL: url})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
