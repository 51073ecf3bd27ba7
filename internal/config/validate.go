package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/justinpbarnett/labmon/internal/logger"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks every field and returns a ValidationError listing all
// failures, not just the first.
func validate(cfg *Config) error {
	var errs []string

	if cfg.Backend.URL == "" {
		errs = append(errs, "backend.url must be set")
	} else if u, err := url.Parse(cfg.Backend.URL); err != nil {
		errs = append(errs, fmt.Sprintf("backend.url %q is not a valid URL: %v", cfg.Backend.URL, err))
	} else {
		if u.Scheme != "http" && u.Scheme != "https" {
			errs = append(errs, fmt.Sprintf("backend.url %q must use http or https", cfg.Backend.URL))
		}
		if u.Host == "" {
			errs = append(errs, fmt.Sprintf("backend.url %q has no host", cfg.Backend.URL))
		}
		if u.RawQuery != "" || u.Fragment != "" {
			errs = append(errs, fmt.Sprintf("backend.url %q must not carry a query or fragment", cfg.Backend.URL))
		}
	}

	if !logger.ValidLevel(cfg.Log.Level) {
		errs = append(errs, fmt.Sprintf("log.level %q must be \"debug\", \"info\", \"warn\", or \"error\"", cfg.Log.Level))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
