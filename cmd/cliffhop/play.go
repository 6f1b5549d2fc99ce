package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/velikanov/cliffhop/internal/core"
	"github.com/velikanov/cliffhop/internal/games/cliff"
	"github.com/velikanov/cliffhop/internal/platform/tui"
	"github.com/velikanov/cliffhop/internal/registry"
	"github.com/velikanov/cliffhop/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a run",
	Long: `Start a run. With no argument the standard mode is played.

Controls:
  Left/Right/A/D - Run
  Up/W/Z/Space   - Jump
  X              - Dash (hold a direction to aim it)
  HJKL           - Vim-style movement
  P              - Pause
  R              - Restart (after a fall)
  Q/Ctrl+C       - Quit

Tuning presets:
  standard - Regular difficulty ramp (default)
  zen      - Slower ramp with a lower cap, for relaxed runs

Examples:
  cliffhop play
  cliffhop play cliff_zen
  cliffhop play --preset zen
  cliffhop play --seed 42
  cliffhop play --config ./my-cliff.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Tuning preset: standard, zen")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "cliff"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'cliffhop list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and preset before creation
	cliff.SetConfigPath(flagConfig)
	cliff.SetPreset(flagPreset)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
