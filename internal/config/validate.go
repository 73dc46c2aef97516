package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/workmon/internal/errors"
)

// MinInterval keeps the poll loop from hammering the database.
const MinInterval = time.Second

// validSSLModes are the sslmode values lib/pq understands.
var validSSLModes = map[string]bool{
	"disable":     true,
	"require":     true,
	"verify-ca":   true,
	"verify-full": true,
}

// validColorModes are the accepted output.color values.
var validColorModes = map[string]bool{
	"auto":   true,
	"always": true,
	"never":  true,
}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return err
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval %s is too short", cfg.Interval),
			fmt.Sprintf("Use at least %s, e.g. interval: 10s", MinInterval))
	}

	if cfg.Chart.OthersThreshold < 0 || cfg.Chart.OthersThreshold >= 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("chart.others_threshold %.3f must be in [0, 1)", cfg.Chart.OthersThreshold),
			"Use a fraction such as 0.05 for 5%.")
	}

	if !validColorModes[cfg.Output.Color] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown output.color '%s'", cfg.Output.Color),
			"Use one of: auto, always, never")
	}

	return nil
}

func validateDatabase(db DatabaseConfig) error {
	if db.Host == "" {
		return errors.New(errors.ErrConfig,
			"Database host is empty",
			"Set database.host or pass --host")
	}
	if db.Port < 1 || db.Port > 65535 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Port %d is out of range", db.Port),
			"Use a number between 1 and 65535, e.g. 15432")
	}
	if db.Name == "" || db.User == "" {
		return errors.New(errors.ErrConfig,
			"Database name and user are required",
			"Set database.name and database.user, or answer the prompt")
	}
	if !validSSLModes[db.SSLMode] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown sslmode '%s'", db.SSLMode),
			"Use one of: disable, require, verify-ca, verify-full")
	}
	if db.ConnectTimeout < 0 {
		return errors.New(errors.ErrConfig,
			"database.connect_timeout cannot be negative",
			"Use 0 to wait forever, or a duration like 5s")
	}
	return nil
}
