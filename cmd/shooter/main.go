// shooter is a terminal arcade shooter: steer the ship, shoot the enemies
// falling from the top, and keep them from reaching the floor.
//
// Usage:
//
//	shooter play              - Play in the terminal
//	shooter play --demo       - Watch the autopilot play
//	shooter menu              - Start with a title menu
//	shooter simulate          - Run the autopilot headless and print a summary
//	shooter config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "TUI Shooter - an arcade shooter in your terminal",
	Long: `TUI Shooter is a small arcade shooter for the terminal. Move the ship,
shoot the enemies descending from the top, and do not let them through.

Available commands:
  play      - Play interactively
  menu      - Title menu; returns to it after each game
  simulate  - Let the autopilot play without a terminal
  config    - Print the effective configuration

Examples:
  shooter play
  shooter play --demo
  shooter play --config ./my-shooter.yaml
  shooter simulate --duration 1m --seed 7
  shooter config > ~/.arcade/configs/shooter.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// seed returns the --seed flag, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds the process logger. Without --log-file, logs go to
// fallback; nil discards them.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	return logging.New(logging.Options{
		Path:     flagLogFile,
		Fallback: fallback,
		Level:    flagLogLevel,
	})
}

// loadConfig loads the shooter configuration and logs where it came from.
func loadConfig(path string, logger *log.Logger) (config.ShooterConfig, error) {
	cfg, source, err := config.LoadShooter(path)
	if err != nil {
		return cfg, err
	}
	logger.Info("config loaded", "source", source)
	return cfg, nil
}
