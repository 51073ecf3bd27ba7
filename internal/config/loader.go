package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Overrides are command-line values. They are applied after the file and
// environment and before validation, so a valid flag rescues a bad env value.
type Overrides struct {
	URL string
}

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	return LoadWith("", Overrides{})
}

// LoadWith is Load with command-line overrides. A non-empty path is used
// instead of discovery.
func LoadWith(path string, ov Overrides) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		return load(path, ov)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return loadFrom(cwd, ov)
}

// LoadFrom loads config using dir as the starting point for file discovery.
func LoadFrom(dir string) (*Config, error) {
	return loadFrom(dir, Overrides{})
}

// LoadFile loads config from an explicit path, skipping discovery.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	return load(path, Overrides{})
}

func loadFrom(dir string, ov Overrides) (*Config, error) {
	path, err := discoverConfigPath(dir)
	if err != nil {
		return nil, fmt.Errorf("config discovery: %w", err)
	}
	return load(path, ov)
}

func load(path string, ov Overrides) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)
	if ov.URL != "" {
		cfg.Backend.URL = ov.URL
	}
	cfg.Backend.URL = strings.TrimRight(cfg.Backend.URL, "/")

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath returns the first existing file in the discovery chain,
// or "" when none exists (defaults-only mode).
func discoverConfigPath(dir string) (string, error) {
	candidates := []string{
		filepath.Join(dir, "labmon.yaml"),
		filepath.Join(dir, "labmon.toml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "labmon", "config.yaml"),
			filepath.Join(home, ".config", "labmon", "config.toml"),
		)
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// loadFromFile decodes a YAML or TOML file, chosen by extension.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	}

	return &cfg, nil
}

// merge overlays override onto base. Strings override when non-empty;
// pointer fields override when non-nil.
func merge(base *Config, override *Config) {
	if override.Backend.URL != "" {
		base.Backend.URL = override.Backend.URL
	}

	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	if override.Log.File != nil {
		base.Log.File = override.Log.File
	}

	if override.UI.Title != "" {
		base.UI.Title = override.UI.Title
	}
}

// applyEnvOverrides applies LABMON_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LABMON_URL"); v != "" {
		cfg.Backend.URL = v
	}
	if v := os.Getenv("LABMON_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("LABMON_LOG_FILE"); ok {
		cfg.Log.File = strPtr(v)
	}
}
