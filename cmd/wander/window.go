package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wander/internal/core"
	"github.com/vovakirdan/wander/internal/platform/window"
	"github.com/vovakirdan/wander/internal/storage"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Watch the piece in a desktop window",
	Long: `Open a desktop window showing the piece at canvas size.

Controls:
  Click      - Start over (up/down: wands, left/right: resolution)
  H          - Draw wands at the center of their cell
  W          - Show or hide wands
  R          - Start over with a new seed
  P          - Pause
  Ctrl+S     - Save a PNG screenshot to ~/.wander/screenshots
  Q/Esc      - Quit

Examples:
  wander window
  wander window --scale 1
  wander window --replay 17`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addGenerationFlags(windowCmd)
	windowCmd.Flags().IntVar(&flagScale, "scale", 2, "Window pixels per canvas unit")
}

func runWindow(cmd *cobra.Command, _ []string) {
	logger := newLogger("wander-window")

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open generation history", "error", err)
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

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := window.Run(window.Options{
		Settings:      settings,
		Store:         store,
		Start:         start,
		Logger:        logger,
		Scale:         flagScale,
		ScreenshotDir: filepath.Join(os.Getenv("HOME"), ".wander", "screenshots"),
	}, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running wander: %v\n", runErr)
		os.Exit(1)
	}
}
