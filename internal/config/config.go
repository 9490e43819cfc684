// Package config resolves runtime settings from flags, environment and defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/linerhc/linerhc/internal/model"
)

// Environment variables consulted when the matching flag is unset.
const (
	EnvModel    = "LINERHC_MODEL"
	EnvLogFile  = "LINERHC_LOG"
	EnvLogLevel = "LINERHC_LOG_LEVEL"
)

// Config holds everything needed to start a session.
type Config struct {
	// ModelPath is the estimator artifact. Default: rf_gwo_model.json.
	ModelPath string

	// LogFile receives structured logs. Empty means the command's default
	// sink (discarded in the interactive form, stderr for predict).
	LogFile string

	// LogLevel is one of debug, info, warn, error. Default: info.
	LogLevel string
}

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() Config {
	return Config{
		ModelPath: model.DefaultPath,
		LogLevel:  "info",
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := DefaultConfig()
	if p := os.Getenv(EnvModel); p != "" {
		cfg.ModelPath = p
	}
	if p := os.Getenv(EnvLogFile); p != "" {
		cfg.LogFile = p
	}
	if l := os.Getenv(EnvLogLevel); l != "" {
		cfg.LogLevel = strings.ToLower(l)
	}
	return cfg
}

// Validate checks the resolved settings.
func (c Config) Validate() error {
	if c.ModelPath == "" {
		return fmt.Errorf("model path is required (--model or %s)", EnvModel)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
	return nil
}
