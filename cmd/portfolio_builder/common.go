package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/portfolio-builder/internal/config"
	"github.com/jonathan/portfolio-builder/internal/engine"
	"github.com/jonathan/portfolio-builder/internal/logging"
	"github.com/jonathan/portfolio-builder/internal/schemas"
	"github.com/jonathan/portfolio-builder/internal/state"
	"github.com/jonathan/portfolio-builder/internal/templates"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// loadConfig reads configuration and applies the persistent flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *zap.Logger {
	return logging.New(cfg.Log.Level, cfg.Log.Development)
}

// newEngine builds an engine over the built-in templates with the configured default
func newEngine(cfg *config.Config, logger *zap.Logger) (*engine.Engine, error) {
	registry, err := templates.NewBuiltinRegistry()
	if err != nil {
		return nil, err
	}
	if err := registry.SetDefault(cfg.Templates.Default); err != nil {
		return nil, fmt.Errorf("default template: %w", err)
	}
	return engine.New(registry, engine.WithLogger(logger))
}

// loadState reads a portfolio file, or returns the seed state when path is
// empty. Items without ids are assigned fresh ones.
func loadState(path string) (types.PortfolioState, error) {
	if path == "" {
		return types.SeedState(), nil
	}
	st, err := schemas.LoadPortfolioFile(path)
	if err != nil {
		return st, err
	}
	return state.WithIDs(st), nil
}

// writeOutput writes data to path, or to stdout when path is empty or "-"
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// setup loads config, logger and engine for one-shot commands
func setup() (*config.Config, *zap.Logger, *engine.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := newLogger(cfg)
	eng, err := newEngine(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, eng, nil
}
