// flappy is a terminal Flappy Bird: fall, flap through the gaps, score.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy serve             - Start SSH server for remote play
//	flappy replays           - List recorded runs
//	flappy replay <id>       - Re-simulate a recorded run and verify it
//	flappy headless          - Run the simulation without a terminal
//	flappy config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Load game tuning from a YAML file
//	--log <path>     - Write logs to a file
//	--db <path>      - Set database path (default: ~/.flappy/replays.db)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
	flagDBPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a falling bird through scrolling gaps",
	Long: `Flappy is a terminal take on the one-button arcade classic.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  replays   - List recorded runs
  replay    - Re-simulate a recorded run
  headless  - Run the simulation without a terminal
  config    - Print the effective game config

Examples:
  flappy play
  flappy play --seed 42 --record
  flappy serve --ssh :2222
  flappy replay 3`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/replays.db", "Path to replay database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads game tuning from --config or the search path.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", cfg.Source)
	return cfg, nil
}

// newLogger opens the --log file, or falls back to fallback when no file is
// set. The returned close func is always safe to call.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.NewWithOptions(fallback, log.Options{Prefix: "flappy"}), func() {}, nil
	}

	path, err := config.ExpandHome(flagLogPath)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
