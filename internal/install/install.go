// Package install detects the project's package manager and installs the
// dependencies collected by the init flow as dev-dependencies.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/packinit/internal/ctxlog"
	"github.com/specialistvlad/packinit/internal/fsutil"
)

// Manager is a package manager binary.
type Manager string

const (
	Auto Manager = "auto"
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
)

// ParseManager validates a manager name.
func ParseManager(s string) (Manager, error) {
	switch m := Manager(strings.ToLower(strings.TrimSpace(s))); m {
	case "", Auto:
		return Auto, nil
	case NPM, Yarn:
		return m, nil
	default:
		return "", fmt.Errorf("unknown package manager %q: must be 'auto', 'npm' or 'yarn'", s)
	}
}

// LookPathFunc finds a binary on PATH.
type LookPathFunc func(file string) (string, error)

// Detect picks the package manager for dir. The nearest lockfile in dir or
// its parents decides: yarn.lock selects yarn, package-lock.json selects npm.
// Without a lockfile yarn is used when it is on PATH.
func Detect(dir string, lookPath LookPathFunc) Manager {
	if lock, ok := fsutil.FindUp(dir, "yarn.lock", "package-lock.json"); ok {
		if filepath.Base(lock) == "yarn.lock" {
			return Yarn
		}
		return NPM
	}
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, err := lookPath("yarn"); err == nil {
		return Yarn
	}
	return NPM
}

// Request is what the init flow hands to the installer.
type Request struct {
	Dependencies []string
	// Production is the install mode of the generated config. It is reported
	// with the install, but packages always go in as dev-dependencies since
	// they are build tooling in either mode.
	Production bool
}

// Runner executes a command in a directory.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args in dir.
func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// Installer installs a Request with one package manager.
type Installer struct {
	Manager Manager
	Dir     string
	Runner  Runner
	DryRun  bool
}

// ErrNoRunner is returned when a non-dry-run install has no Runner.
var ErrNoRunner = errors.New("install: no command runner configured")

// Command returns the binary and arguments that install req. The arguments
// do not depend on req.Production.
func (i *Installer) Command(req Request) (string, []string) {
	switch i.Manager {
	case Yarn:
		return "yarn", append([]string{"add", "--dev"}, req.Dependencies...)
	default:
		return "npm", append([]string{"install", "--save-dev"}, req.Dependencies...)
	}
}

// Install runs the install command, or only logs it in dry-run mode.
func (i *Installer) Install(ctx context.Context, req Request) error {
	logger := ctxlog.FromContext(ctx)
	if len(req.Dependencies) == 0 {
		logger.Warn("No dependencies to install.")
		return nil
	}

	name, args := i.Command(req)
	logger.Info("Installing dependencies.",
		"manager", name,
		"count", len(req.Dependencies),
		"production", req.Production,
		"dry_run", i.DryRun,
	)
	logger.Debug("Install command.", "command", name+" "+strings.Join(args, " "))
	if i.DryRun {
		return nil
	}
	if i.Runner == nil {
		return ErrNoRunner
	}
	if err := i.Runner.Run(ctx, i.Dir, name, args...); err != nil {
		return fmt.Errorf("%s install failed: %w", name, err)
	}
	return nil
}
