// dodge is a vsync-driven arcade game: steer left and right to dodge the
// obstacles falling from the top of the screen.
//
// Usage:
//
//	dodge            - Open a window and play
//	dodge config     - Print the effective game configuration as YAML
//
// Global flags:
//
//	--config <path>     - Game config YAML (default search: ~/.dodge, ./configs)
//	--seed <value>      - RNG seed for reproducible rounds (0 = random)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"dodge/internal/game"
)

var (
	flagConfig   string
	flagSeed     uint64
	flagLogLevel string
)

// glfw and the GL context must stay on the main OS thread.
func init() { runtime.LockOSThread() }

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge the falling obstacles",
	Long: `dodge opens a window and runs one round after another of the falling
obstacle game, one frame per display refresh.

Controls:
  Left/A, Right/D  - Move
  R/Space/Enter    - Restart after game over
  Esc/Q            - Quit

Examples:
  dodge
  dodge --width 540 --height 960 --refresh 120
  dodge --config ./configs/hard.yaml --seed 42
  dodge config > my-dodge.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a game config YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random each round)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(configCmd)
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodge",
		Level:           level,
	})
	return logger, nil
}

func loadConfig() (game.Config, error) {
	cfg, err := game.LoadConfig(flagConfig)
	if err != nil {
		return game.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
