package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/headless"
)

var (
	flagSimConfig   string
	flagSimDuration time.Duration
	flagSimFast     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot without a terminal",
	Long: `Play the shooter headless with the autopilot and print a summary.

By default the run uses real frame and spawn timers. With --fast the game
clock is simulated, so a long run finishes immediately and the result
depends only on the seed.

Examples:
  shooter simulate
  shooter simulate --duration 2m --seed 7
  shooter simulate --fast --duration 10m --seed 7`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom shooter config YAML")
	simulateCmd.Flags().DurationVar(&flagSimDuration, "duration", 30*time.Second, "How long to play")
	simulateCmd.Flags().BoolVar(&flagSimFast, "fast", false, "Simulate the clock instead of waiting for it")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	shooterCfg, err := loadConfig(flagSimConfig, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := seed()
	world, err := shooter.New(shooterCfg, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run := headless.Run
	if flagSimFast {
		run = headless.RunVirtual
	}

	sum, err := run(ctx, world, shooter.NewPilot(), headless.Options{
		TickRate: flagFPS,
		Duration: flagSimDuration,
		Logger:   logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(formatSummary(sum, s))
}

var (
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	summaryLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
)

// formatSummary renders a run summary as a small table.
func formatSummary(sum headless.Summary, seed int64) string {
	rows := []struct {
		label string
		value string
	}{
		{"Seed", fmt.Sprintf("%d", seed)},
		{"Status", sum.Status.String()},
		{"Score", fmt.Sprintf("%d", sum.Score)},
		{"Lives", fmt.Sprintf("%d", sum.Lives)},
		{"Steps", fmt.Sprintf("%d", sum.Steps)},
		{"Played", sum.Elapsed.Round(time.Millisecond).String()},
		{"Spawned", fmt.Sprintf("%d", sum.Spawned)},
		{"Kills", fmt.Sprintf("%d", sum.Kills)},
		{"Hits", fmt.Sprintf("%d", sum.Hits)},
		{"Escapes", fmt.Sprintf("%d", sum.Escapes)},
	}

	lines := []string{summaryTitle.Render("Simulation summary")}
	if sum.Canceled {
		lines[0] += " (interrupted)"
	}
	for _, r := range rows {
		lines = append(lines, summaryLabel.Render(r.label)+r.value)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
