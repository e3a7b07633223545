package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/specialistvlad/packinit/internal/ctxlog"
	"github.com/specialistvlad/packinit/internal/install"
	"github.com/specialistvlad/packinit/internal/prompt"
)

// Option customizes an App at construction time.
type Option func(*App)

// WithSource replaces the answer source chosen from the config.
func WithSource(src prompt.Source) Option {
	return func(a *App) { a.source = src }
}

// WithRunner replaces the command runner used by the installer.
func WithRunner(r install.Runner) Option {
	return func(a *App) { a.runner = r }
}

// WithLookPath replaces PATH lookup during package manager detection.
func WithLookPath(f install.LookPathFunc) Option {
	return func(a *App) { a.lookPath = f }
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	source   prompt.Source
	terminal *prompt.Terminal
	runner   install.Runner
	lookPath install.LookPathFunc
}

// NewApp is the constructor for the main application. Prompts go to outW,
// logs go to logW. A broken answer file is a fatal startup error and panics.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		runner:   install.ExecRunner{Stdout: outW, Stderr: logW},
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.source == nil {
		if cfg.AnswersPath != "" {
			f, err := prompt.LoadFile(cfg.AnswersPath)
			if err != nil {
				panic(fmt.Errorf("failed to load answers: %w", err))
			}
			a.source = f
			logger.Debug("Answers loaded from file.", "path", cfg.AnswersPath)
		} else {
			a.terminal = prompt.NewTerminal(in, outW)
			a.source = a.terminal
			logger.Debug("Using interactive terminal for answers.")
		}
	}

	return a
}

// Context returns ctx carrying the App's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
