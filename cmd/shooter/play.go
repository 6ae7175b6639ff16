package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var (
	flagConfig string
	flagDemo   bool
	flagHold   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the shooter",
	Long: `Start the shooter in the terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  P/Esc        - Pause
  R            - Restart (after game over)
  ?            - Toggle full help
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  shooter play
  shooter play --demo
  shooter play --config ./my-shooter.yaml
  shooter play --seed 42 --log-file /tmp/shooter.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let the autopilot play")
	playCmd.Flags().IntVar(&flagHold, "hold-ms", 0, "How long a movement key stays held after a press (0 = default)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The TUI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	shooterCfg, err := loadConfig(flagConfig, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}

	world, err := shooter.New(shooterCfg, cfg.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("world created", "seed", cfg.Seed, "screen", fmt.Sprintf("%dx%d", width, height))

	runErr := tui.Run(world, tui.Options{
		Runtime: cfg,
		Demo:    flagDemo,
		Hold:    msDuration(flagHold),
		Logger:  logger,
	})
	if runErr != nil {
		logger.Error("tui stopped", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// msDuration converts a millisecond flag to a duration.
func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
