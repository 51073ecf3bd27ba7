package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultBackendURL = "http://localhost:5000"
	DefaultTitle      = "Live ASIC Lab Monitor"
)

func strPtr(s string) *string { return &s }

func DefaultConfig() Config {
	return Config{
		Backend: BackendConfig{
			URL: DefaultBackendURL,
		},
		Log: LogConfig{
			Level: "info",
			File:  strPtr(defaultLogFile()),
		},
		UI: UIConfig{
			Title: DefaultTitle,
		},
	}
}

// defaultLogFile resolves $XDG_STATE_HOME/labmon/labmon.log, falling back to
// ~/.local/state. Returns "" if no home directory can be found.
func defaultLogFile() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "labmon", "labmon.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "labmon", "labmon.log")
}
