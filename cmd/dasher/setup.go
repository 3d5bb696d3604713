package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dapper-dasher/internal/config"
)

// loadConfig resolves the config file, applies the difficulty preset and
// validates the result. It returns the config and how it was resolved.
func loadConfig() (config.DasherConfig, config.LoadInfo, error) {
	cfg, info, err := config.Load(flagConfig)
	if err != nil {
		return config.DasherConfig{}, info, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DasherConfig{}, info, err
	}
	config.ApplyDasherPreset(&cfg, preset)

	if flagFPS < 0 {
		return config.DasherConfig{}, info, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagFPS > 0 {
		cfg.Driver.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return config.DasherConfig{}, info, fmt.Errorf("%s: %w", info.Source, err)
	}
	return cfg, info, nil
}

// logConfig reports which config file is in use and warns about the ones
// that were skipped.
func logConfig(logger *log.Logger, info config.LoadInfo) {
	for _, err := range info.Skipped {
		logger.Warn("ignoring config file", "error", err)
	}
	logger.Debug("config loaded", "source", info.Source, "difficulty", flagDifficulty)
}

// newLogger builds the application logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	out, closeFn := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "dasher",
		Level:           level,
	})
	return logger, closeFn, nil
}

// fail prints an error and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
