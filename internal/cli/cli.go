package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/packinit/internal/app"
	"github.com/specialistvlad/packinit/internal/install"
	"github.com/specialistvlad/packinit/internal/store"
)

// Environment variables that provide flag defaults.
const (
	EnvLogLevel       = "PACKINIT_LOG_LEVEL"
	EnvLogFormat      = "PACKINIT_LOG_FORMAT"
	EnvPackageManager = "PACKINIT_PACKAGE_MANAGER"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// LoadEnv loads an optional .env file from the working directory. A missing
// file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded.", "error", err)
	}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("packinit", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
packinit - answer a few questions, get a webpack configuration.

Usage:
  packinit [options] [PROJECT_DIR]

Arguments:
  PROJECT_DIR
    Directory of the project to initialize (default: current directory).

Options:
`)
		flagSet.PrintDefaults()
	}

	dirFlag := flagSet.String("dir", "", "Project directory (overrides PROJECT_DIR).")
	answersFlag := flagSet.String("answers", "", "HCL file answering the questions instead of the terminal.")
	defaultsFlag := flagSet.Bool("defaults", false, "Use defaults: production mode, no output block.")
	storeFlag := flagSet.String("store", store.DefaultPath, "Store file for the generated configuration (.json, .yaml or .hcl).")
	emitFlag := flagSet.Bool("emit", true, "Write webpack.<name>.js into the project directory.")
	skipInstallFlag := flagSet.Bool("skip-install", false, "Do not install dependencies.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Log the install command without running it.")
	pmFlag := flagSet.String("package-manager", envOr(EnvPackageManager, "auto"), "Package manager. Options: 'auto', 'npm', 'yarn'.")
	logFormatFlag := flagSet.String("log-format", envOr(EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envOr(EnvLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	dir := *dirFlag
	if dir == "" && flagSet.NArg() > 0 {
		dir = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "too many arguments: expected at most one PROJECT_DIR"}
	}
	slog.Debug("Project directory determined.", "dir", dir)

	config, err := app.NewConfig(app.Config{
		Dir:            dir,
		AnswersPath:    *answersFlag,
		UsingDefaults:  *defaultsFlag,
		StorePath:      *storeFlag,
		Emit:           *emitFlag,
		SkipInstall:    *skipInstallFlag,
		DryRun:         *dryRunFlag,
		PackageManager: install.Manager(strings.ToLower(*pmFlag)),
		LogFormat:      strings.ToLower(*logFormatFlag),
		LogLevel:       strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
