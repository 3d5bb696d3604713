package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dapper-dasher/internal/platform/gfx"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Dapper Dasher in a desktop window.

Controls:
  Space       - Jump
  P           - Pause
  R           - Restart (after the run ends)
  Q/Esc       - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, info, err := loadConfig()
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail(err)
	}
	defer closeLog()
	logConfig(logger, info)

	if err := gfx.Run(cfg, cfg.Driver.TickRate, logger); err != nil {
		logger.Error("window driver failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}
