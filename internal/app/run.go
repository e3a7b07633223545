package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/packinit/internal/emit"
	"github.com/specialistvlad/packinit/internal/generator"
	"github.com/specialistvlad/packinit/internal/install"
	"github.com/specialistvlad/packinit/internal/store"
)

const docsURL = "https://github.com/webpack/webpack-cli/blob/master/INIT.md"

// Run asks the questions, then stores, emits and installs the result.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.", "dir", a.config.Dir)

	if a.terminal != nil {
		a.terminal.Info("For more information and a detailed description of each question, have a look at ", docsURL)
		a.terminal.Info("Alternatively, run `packinit -h` for usage info.", "")
		fmt.Fprintln(a.outW)
	}

	gen := generator.New(a.source, generator.Options{UsingDefaults: a.config.UsingDefaults})
	res, err := gen.Run(ctx)
	if err != nil {
		return fmt.Errorf("init flow failed: %w", err)
	}
	doc := res.Document

	storePath := a.config.ResolvedStorePath()
	if err := store.Save(ctx, storePath, doc); err != nil {
		return fmt.Errorf("failed to store configuration: %w", err)
	}
	a.logger.Info("Configuration stored.", "path", storePath)

	if a.config.Emit {
		path, err := emit.WriteFile(ctx, a.config.Dir, doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "Webpack config written to %s\n", path)
	}

	if a.config.SkipInstall {
		a.logger.Info("Skipping dependency install.", "dependencies", doc.Dependencies)
		a.logger.Debug("App.Run method finished.")
		return nil
	}

	manager := a.config.PackageManager
	if manager == install.Auto {
		manager = install.Detect(a.config.Dir, a.lookPath)
	}
	installer := &install.Installer{
		Manager: manager,
		Dir:     a.config.Dir,
		Runner:  a.runner,
		DryRun:  a.config.DryRun,
	}
	req := install.Request{Dependencies: doc.Dependencies, Production: doc.Production()}
	if err := installer.Install(ctx, req); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
