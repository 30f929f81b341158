package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagBackend string
	flagSound   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the platformer",
	Long: `Start the platformer on an interactive backend.

Controls:
  W/A/S/D, arrows  - Move
  Space            - Jump
  Q/Ctrl+C         - Quit

Terminals do not report key releases, so a press keeps moving the
player for input.hold_ticks ticks (see the config file).

Examples:
  platformer play
  platformer play --backend tcell --sound
  platformer play --config ./level.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Backend to run on (see 'platformer list')")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play jump and land sound cues (tcell backend)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	backend, err := registry.Create(flagBackend)
	if err != nil {
		return fmt.Errorf("%w; run 'platformer list' to see available backends", err)
	}

	logger := newLogger(false)
	eng, cfg, err := loadEngine(logger)
	if err != nil {
		return err
	}

	// Get terminal size
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.TickRate

	opts := registry.Options{
		Config:  cfg,
		Runtime: rc,
		Logger:  logger,
		Sound:   flagSound,
	}
	if err := backend.Run(eng, opts); err != nil {
		return fmt.Errorf("running %s: %w", backend.ID(), err)
	}
	return nil
}
