package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dapper-dasher/internal/core"
	"github.com/vovakirdan/dapper-dasher/internal/games/dasher"
	"github.com/vovakirdan/dapper-dasher/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Dapper Dasher in the terminal.

Controls:
  Space/Up/W  - Jump
  P/Esc       - Pause
  R           - Restart (after the run ends)
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  dasher play
  dasher play --difficulty easy
  dasher play --config ./my-dasher.yaml --log-file dasher.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, info, err := loadConfig()
	if err != nil {
		fail(err)
	}

	// The alternate screen owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail(err)
	}
	defer closeLog()
	logConfig(logger, info)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickRate:     cfg.Driver.TickRate,
		MaxFrameTime: time.Duration(cfg.Driver.MaxFrameTime * float64(time.Second)),
	}

	if err := tui.Run(dasher.New(cfg), runtime, logger); err != nil {
		logger.Error("terminal driver failed", "error", err)
		closeLog()
		fail(err)
	}
}
