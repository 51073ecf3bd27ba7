package config

type Config struct {
	Backend BackendConfig `yaml:"backend" toml:"backend"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	UI      UIConfig      `yaml:"ui" toml:"ui"`
}

// BackendConfig locates the lab event service. The poll cadence is fixed
// and intentionally not configurable.
type BackendConfig struct {
	URL string `yaml:"url" toml:"url"`
}

type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	// File is a pointer so an explicit empty string (logging off) can be
	// told apart from "not set".
	File *string `yaml:"file" toml:"file"`
}

type UIConfig struct {
	Title string `yaml:"title" toml:"title"`
}

// LogFile returns the configured log path, or "" when logging is disabled.
func (c *Config) LogFile() string {
	if c.Log.File == nil {
		return ""
	}
	return *c.Log.File
}
