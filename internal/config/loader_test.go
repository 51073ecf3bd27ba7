package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and XDG_STATE_HOME at a temp dir and clears LABMON_*
// overrides so host config never leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("LABMON_URL", "")
	t.Setenv("LABMON_LOG_LEVEL", "")
	t.Setenv("LABMON_LOG_FILE", "")
	os.Unsetenv("LABMON_LOG_FILE")
	return tmp
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	tmp := isolate(t)

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Backend.URL != "http://localhost:5000" {
		t.Errorf("expected backend url %q, got %q", "http://localhost:5000", cfg.Backend.URL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level info, got %q", cfg.Log.Level)
	}
	want := filepath.Join(tmp, "state", "labmon", "labmon.log")
	if cfg.LogFile() != want {
		t.Errorf("expected log file %q, got %q", want, cfg.LogFile())
	}
	if cfg.UI.Title != DefaultTitle {
		t.Errorf("expected title %q, got %q", DefaultTitle, cfg.UI.Title)
	}
}

func TestLoadFromYAML(t *testing.T) {
	tmp := isolate(t)
	writeFile(t, filepath.Join(tmp, "labmon.yaml"), `
backend:
  url: http://lab-01:5000
log:
  level: debug
ui:
  title: Bench 3
`)

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Backend.URL != "http://lab-01:5000" {
		t.Errorf("expected url from file, got %q", cfg.Backend.URL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Log.Level)
	}
	if cfg.UI.Title != "Bench 3" {
		t.Errorf("expected title from file, got %q", cfg.UI.Title)
	}
}

func TestLoadFromTOML(t *testing.T) {
	tmp := isolate(t)
	writeFile(t, filepath.Join(tmp, "labmon.toml"), `
[backend]
url = "http://lab-02:5000"

[log]
level = "warn"
file = ""
`)

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Backend.URL != "http://lab-02:5000" {
		t.Errorf("expected url from toml, got %q", cfg.Backend.URL)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected warn level, got %q", cfg.Log.Level)
	}
	if cfg.LogFile() != "" {
		t.Errorf("expected explicit empty log file to disable logging, got %q", cfg.LogFile())
	}
}

func TestYAMLTakesPrecedenceOverTOML(t *testing.T) {
	tmp := isolate(t)
	writeFile(t, filepath.Join(tmp, "labmon.yaml"), "backend:\n  url: http://from-yaml:5000\n")
	writeFile(t, filepath.Join(tmp, "labmon.toml"), "[backend]\nurl = \"http://from-toml:5000\"\n")

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Backend.URL != "http://from-yaml:5000" {
		t.Errorf("expected yaml to win, got %q", cfg.Backend.URL)
	}
}

func TestLoadFromUserConfig(t *testing.T) {
	tmp := isolate(t)
	writeFile(t, filepath.Join(tmp, ".config", "labmon", "config.yaml"), "backend:\n  url: http://user-level:5000\n")

	cfg, err := LoadFrom(filepath.Join(tmp, "project"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Backend.URL != "http://user-level:5000" {
		t.Errorf("expected user config url, got %q", cfg.Backend.URL)
	}
}

func TestLoadFileExplicit(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "elsewhere.yml")
	writeFile(t, path, "backend:\n  url: https://lab.example.com\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.Backend.URL != "https://lab.example.com" {
		t.Errorf("unexpected url %q", cfg.Backend.URL)
	}
}

func TestLoadFileMissing(t *testing.T) {
	tmp := isolate(t)
	if _, err := LoadFile(filepath.Join(tmp, "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmp := isolate(t)
	writeFile(t, filepath.Join(tmp, "labmon.yaml"), "backend: [unterminated\n")

	if _, err := LoadFrom(tmp); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tmp := isolate(t)
	writeFile(t, filepath.Join(tmp, "labmon.yaml"), "backend:\n  url: ftp://lab\nlog:\n  level: loud\n")

	_, err := LoadFrom(tmp)
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestEnvOverrides(t *testing.T) {
	tmp := isolate(t)
	writeFile(t, filepath.Join(tmp, "labmon.yaml"), "backend:\n  url: http://from-file:5000\n")
	t.Setenv("LABMON_URL", "http://from-env:5000")
	t.Setenv("LABMON_LOG_LEVEL", "DEBUG")
	t.Setenv("LABMON_LOG_FILE", "")

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Backend.URL != "http://from-env:5000" {
		t.Errorf("expected env url to win, got %q", cfg.Backend.URL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected lowercased env level, got %q", cfg.Log.Level)
	}
	if cfg.LogFile() != "" {
		t.Errorf("expected LABMON_LOG_FILE=\"\" to disable logging, got %q", cfg.LogFile())
	}
}

func TestMergePreservesDefaults(t *testing.T) {
	isolate(t)
	base := DefaultConfig()
	merge(&base, &Config{UI: UIConfig{Title: "Override"}})

	if base.UI.Title != "Override" {
		t.Errorf("expected title %q, got %q", "Override", base.UI.Title)
	}
	if base.Backend.URL != DefaultBackendURL {
		t.Errorf("expected default url preserved, got %q", base.Backend.URL)
	}
	if base.Log.Level != "info" {
		t.Errorf("expected level preserved, got %q", base.Log.Level)
	}
	if base.Log.File == nil {
		t.Error("expected default log file preserved")
	}
}

func TestLoadTrimsSlash(t *testing.T) {
	tmp := isolate(t)
	writeFile(t, filepath.Join(tmp, "labmon.yaml"), "backend:\n  url: http://lab:5000/\n")

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Backend.URL != "http://lab:5000" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.Backend.URL)
	}
}

func TestLoadWithURLOverrideWins(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "labmon.yaml")
	writeFile(t, path, "backend:\n  url: http://from-file:5000\n")
	t.Setenv("LABMON_URL", "http://from-env:5000")

	cfg, err := LoadWith(path, Overrides{URL: "http://from-flag:5000/"})
	if err != nil {
		t.Fatalf("LoadWith() error: %v", err)
	}
	if cfg.Backend.URL != "http://from-flag:5000" {
		t.Errorf("expected flag url to win, got %q", cfg.Backend.URL)
	}
}

func TestLoadWithURLOverrideRescuesBadEnv(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "labmon.yaml")
	writeFile(t, path, "")
	t.Setenv("LABMON_URL", "not a url")

	if _, err := LoadWith(path, Overrides{}); err == nil {
		t.Fatal("expected the bad env url to fail without an override")
	}
	cfg, err := LoadWith(path, Overrides{URL: "http://lab:5000"})
	if err != nil {
		t.Fatalf("expected a valid flag url to override a bad env url, got %v", err)
	}
	if cfg.Backend.URL != "http://lab:5000" {
		t.Errorf("unexpected url %q", cfg.Backend.URL)
	}
}

func TestLoadWithOverrideStillValidated(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "labmon.yaml")
	writeFile(t, path, "")

	if _, err := LoadWith(path, Overrides{URL: "ftp://lab"}); err == nil {
		t.Fatal("expected an invalid override to be rejected")
	}
}

func TestLoadIgnoresUnknownUIKeys(t *testing.T) {
	tmp := isolate(t)
	writeFile(t, filepath.Join(tmp, "labmon.yaml"), "ui:\n  theme: neon\n  title: Bench 5\n")

	cfg, err := LoadFrom(tmp)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.UI.Title != "Bench 5" {
		t.Errorf("expected title from file, got %q", cfg.UI.Title)
	}
}
