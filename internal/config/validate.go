package config

import (
	"fmt"
	"strings"

	"github.com/davetashner/autoimport/internal/catalog"
	"github.com/davetashner/autoimport/internal/inspect"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Library != "" {
		if _, err := catalog.Parse(cfg.Library); err != nil {
			errs = append(errs, fmt.Sprintf("library: %v", err))
		}
	}

	if cfg.PackageManager != "" {
		if _, err := inspect.ParsePackageManager(cfg.PackageManager); err != nil {
			errs = append(errs, fmt.Sprintf("package_manager: %v", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
