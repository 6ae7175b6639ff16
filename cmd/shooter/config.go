package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var flagShowConfig string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would run with, after the search
order is applied:

  1. --config path
  2. ~/.arcade/configs/shooter.yaml
  3. ./configs/shooter.yaml
  4. built-in defaults

The output is valid input for --config.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom shooter config YAML")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source, err := config.LoadShooter(flagShowConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(data)
}
