// Package commands implements the datagen subcommands.
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/teranos/datasets/config"
	"github.com/teranos/datasets/display"
	"github.com/teranos/datasets/errors"
	"github.com/teranos/datasets/logger"
	"github.com/teranos/datasets/version"
)

// ConfigPath is the --config flag, bound by the root command.
var ConfigPath string

// loadConfig loads and validates the config and checks the generator
// version against its requires constraint.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.CheckRequires(version.Get().Version); err != nil {
		return nil, err
	}

	if logger.ShouldOutput(logger.Verbosity, logger.OutputConfig) {
		logger.ComponentLogger("config").Debugw("loaded config",
			logger.FieldFile, cfg.Path,
			"datasets", len(cfg.Datasets),
			"jobs", cfg.Generate.Jobs,
			"strict", cfg.Generate.Strict,
			"verbosity", logger.LevelName(logger.Verbosity),
		)
	}
	return cfg, nil
}

// signalContext is cancelled on interrupt or termination.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	return display.PrintJSON(os.Stdout, v)
}

// errString is the JSON form of a possibly nil error.
func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// PrintError reports a command failure with every combined error on its own
// line, followed by any hints.
func PrintError(err error) {
	for _, e := range errors.Errors(err) {
		pterm.Error.Println(e.Error())
	}
	for _, hint := range errors.GetAllHints(err) {
		pterm.Info.Println(hint)
	}
}
