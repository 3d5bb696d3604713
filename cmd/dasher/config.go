package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dapper-dasher/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, after the config file search
and the difficulty preset, as YAML. The output is a valid config file.

Config search order:
  --config <path>
  ~/.dasher/dasher.yaml
  ./configs/dasher.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
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

	data, err := config.Marshal(cfg)
	if err != nil {
		fail(err)
	}
	fmt.Fprintf(os.Stdout, "# source: %s\n", info.Source)
	os.Stdout.Write(data)
}
