package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
	"github.com/vovakirdan/dapper-dasher/internal/games/dasher"
)

var (
	flagDuration  time.Duration
	flagDT        time.Duration
	flagJumpEvery time.Duration
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless simulation",
	Long: `Run the game without a display using a fixed time step, and print how
the run ended. A jump is requested every --jump-every of simulated time
(0 never jumps); it only takes effect when the player is on the ground.

Examples:
  dasher simulate
  dasher simulate --dt 10ms --jump-every 1.3s
  dasher simulate --difficulty hard --duration 30s`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Maximum simulated time")
	simulateCmd.Flags().DurationVar(&flagDT, "dt", time.Second/64, "Fixed time step")
	simulateCmd.Flags().DurationVar(&flagJumpEvery, "jump-every", 0, "Interval between jump requests (0 = never)")
}

// simOptions controls a headless run.
type simOptions struct {
	Duration  time.Duration
	DT        time.Duration
	JumpEvery time.Duration
}

// simResult summarizes a headless run.
type simResult struct {
	Outcome  core.Outcome
	Ticks    int
	Jumps    int
	Elapsed  time.Duration
	Progress float64
}

// simulate runs a world with a fixed step until it ends or the time budget
// is used up.
func simulate(cfg config.DasherConfig, opts simOptions) simResult {
	w := dasher.NewWorld(cfg)
	dt := opts.DT.Seconds()

	var res simResult
	var sinceJump time.Duration
	for simulated := time.Duration(0); simulated < opts.Duration; simulated += opts.DT {
		jump := false
		if opts.JumpEvery > 0 {
			sinceJump += opts.DT
			if sinceJump >= opts.JumpEvery {
				jump = true
				sinceJump = 0
				res.Jumps++
			}
		}

		res.Ticks++
		if w.Tick(dt, jump).Terminal() {
			break
		}
	}

	res.Outcome = w.Outcome()
	res.Elapsed = w.Elapsed()
	res.Progress = w.Progress()
	return res
}

func runSimulate(cmd *cobra.Command, args []string) {
	cfg, info, err := loadConfig()
	if err != nil {
		fail(err)
	}
	if flagDT <= 0 {
		fail(fmt.Errorf("--dt must be positive, got %v", flagDT))
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail(err)
	}
	defer closeLog()
	logConfig(logger, info)

	opts := simOptions{Duration: flagDuration, DT: flagDT, JumpEvery: flagJumpEvery}
	logger.Info("simulation started", "duration", opts.Duration, "dt", opts.DT, "jump_every", opts.JumpEvery)

	res := simulate(cfg, opts)
	logger.Info("simulation finished", "outcome", res.Outcome, "ticks", res.Ticks, "jumps", res.Jumps)

	fmt.Printf("outcome:  %s\n", res.Outcome)
	fmt.Printf("ticks:    %d\n", res.Ticks)
	fmt.Printf("jumps:    %d\n", res.Jumps)
	fmt.Printf("elapsed:  %.2fs\n", res.Elapsed.Seconds())
	fmt.Printf("progress: %.0f%%\n", res.Progress*100)
}
