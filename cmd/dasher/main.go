// dasher is Dapper Dasher: jump over the nebulae and reach the finish line.
//
// Usage:
//
//	dasher [play]            - Play in the terminal
//	dasher window            - Play in a desktop window
//	dasher simulate          - Run a headless simulation and print the result
//	dasher config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--fps <rate>           - Tick rate (default: from config)
//	--log-file <path>      - Write logs to a file
//	--debug                - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dasher",
	Short: "Dapper Dasher - jump the nebulae, reach the finish line",
	Long: `Dapper Dasher is a side-scrolling runner. A row of nebulae drifts in
from the right; jump over every one of them to reach the finish line.

Available commands:
  play      - Play in the terminal (default)
  window    - Play in a desktop window
  simulate  - Run a headless simulation
  config    - Print the effective configuration

Examples:
  dasher
  dasher play --difficulty hard
  dasher window --fps 120
  dasher simulate --jump-every 1.2s
  dasher config > my-dasher.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = driver.tick_rate from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
