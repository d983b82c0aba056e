package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/taqueria/internal/ctxlog"
	"github.com/specialistvlad/taqueria/internal/menu"
)

// Streams groups the process streams an App talks to. Order output goes to
// Out; logs go to Err so they never interleave with totals.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	streams Streams
	logger  *slog.Logger
	menu    *menu.Menu
	config  *Config
}

// NewApp is the constructor for the main application. It configures an
// isolated logger and loads the menu, either the built-in one or the HCL
// file or directory named by cfg.MenuPath.
func NewApp(streams Streams, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, streams.Err)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	m := menu.Default()
	if cfg.MenuPath != "" {
		loaded, err := menu.Load(ctx, cfg.MenuPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load menu: %w", err)
		}
		m = loaded
	}
	logger.Debug("Menu ready.", "items", m.Len(), "source", menuSource(cfg.MenuPath))

	return &App{
		streams: streams,
		logger:  logger,
		menu:    m,
		config:  cfg,
	}, nil
}

func menuSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
