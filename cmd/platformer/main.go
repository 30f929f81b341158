// platformer is a 2D platformer simulation that runs in the terminal.
//
// Usage:
//
//	platformer list                  - List available backends
//	platformer play                  - Play in the terminal
//	platformer sim                   - Run headless and save a PNG snapshot
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: from config, 60)
//	--config <path>   - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/engine"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-platformer/internal/platform/headless"
	_ "github.com/vovakirdan/tui-platformer/internal/platform/native"
	_ "github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - a 2D platformer simulation in your terminal",
	Long: `Platformer simulates entities with position, velocity and hitboxes,
colliding with each other inside a bounded world, with a camera that
follows the player.

Available commands:
  list     - Show all available backends
  play     - Play interactively
  sim      - Run headless and save a snapshot

Examples:
  platformer list
  platformer play
  platformer play --backend tcell --sound
  platformer sim --frames 300 --script "d:120 dj:1 :60" --out snap.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger returns the stderr logger shared by all commands.
func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadEngine reads the configuration, applies global flags and builds the
// engine. Asset failures are logged; the scene runs with placeholders.
func loadEngine(logger *log.Logger) (*engine.Engine, config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	eng, err := engine.New(cfg, logger)
	if err != nil {
		logger.Warn("assets not loaded, using placeholders", "error", err)
	}
	return eng, cfg, nil
}
