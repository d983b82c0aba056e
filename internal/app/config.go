package app

import (
	"fmt"

	"github.com/specialistvlad/taqueria/internal/order"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MenuPath string // hcl file; empty means the built-in menu
	Prompt   string
	Receipt  bool
	ListMenu bool

	LogFormat string
	LogLevel  string
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Prompt:    order.DefaultPrompt,
		LogFormat: "text",
		LogLevel:  "warn",
	}
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.ListMenu && cfg.Receipt {
		return nil, fmt.Errorf("list and receipt cannot be combined: listing the menu does not take an order")
	}

	return &cfg, nil
}
