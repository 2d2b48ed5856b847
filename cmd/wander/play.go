package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wander/internal/core"
	"github.com/vovakirdan/wander/internal/platform/tui"
	"github.com/vovakirdan/wander/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Watch the piece in the terminal",
	Long: `Run the piece in the terminal.

Controls:
  Click      - Start over (up/down: wands, left/right: resolution)
  H          - Draw wands at the center of their cell
  W          - Show or hide wands
  R          - Start over with a new seed
  P          - Pause
  Ctrl+S     - Save a screenshot to ~/.wander/screenshots
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Examples:
  wander play
  wander play --seed 42
  wander play --agents 30 --resolution 50
  wander play --replay 17
  wander play --config ./my-wander.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGenerationFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings()
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

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open generation history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open generation history: %v\n", err)
		// Continue without storage - the piece still works
		store = nil
	}

	start, err := startGeneration(cmd, store, settings)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Run the piece
	runErr := tui.Run(tui.Options{
		Settings:      settings,
		Store:         store,
		Source:        "terminal",
		Start:         start,
		ScreenshotDir: tui.DefaultScreenshotDir(),
	}, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running wander: %v\n", runErr)
		os.Exit(1)
	}
}
