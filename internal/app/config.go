package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/packinit/internal/install"
	"github.com/specialistvlad/packinit/internal/store"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Dir         string // target project directory
	AnswersPath string // HCL answer file; empty means interactive

	UsingDefaults  bool
	StorePath      string
	Emit           bool
	SkipInstall    bool
	DryRun         bool
	PackageManager install.Manager

	LogFormat string
	LogLevel  string
}

// NewConfig applies defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.StorePath == "" {
		cfg.StorePath = store.DefaultPath
	}
	if _, err := store.FormatFor(cfg.StorePath); err != nil {
		return nil, fmt.Errorf("invalid store path %q: %w", cfg.StorePath, err)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, ok := parseLevel(cfg.LogLevel); !ok {
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	m, err := install.ParseManager(string(cfg.PackageManager))
	if err != nil {
		return nil, err
	}
	cfg.PackageManager = m

	return &cfg, nil
}

// ResolvedStorePath returns the store path, relative to Dir unless absolute.
func (c *Config) ResolvedStorePath() string {
	if filepath.IsAbs(c.StorePath) {
		return c.StorePath
	}
	return filepath.Join(c.Dir, c.StorePath)
}
