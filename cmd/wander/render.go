package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wander/internal/core"
	"github.com/vovakirdan/wander/internal/platform/tui"
	"github.com/vovakirdan/wander/internal/storage"
	"github.com/vovakirdan/wander/internal/wander"
)

var (
	flagFrames int
	flagCols   int
	flagRows   int
	flagASCII  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Run a generation headless and print the result",
	Long: `Run a generation for a number of frames without a viewer and print
the final frame.

By default the frame is printed in color at terminal size. With --ascii,
the grid is printed one character per cell: '#' for claimed cells and
'.' for free ones.

Examples:
  wander render
  wander render --seed 42 --frames 1000
  wander render --agents 35 --resolution 50 --ascii
  wander render --replay 17 --cols 120 --rows 60`,
	Args: cobra.NoArgs,
	Run:  runRender,
}

func init() {
	addGenerationFlags(renderCmd)
	renderCmd.Flags().IntVar(&flagFrames, "frames", 300, "Frames to run before printing")
	renderCmd.Flags().IntVar(&flagCols, "cols", 0, "Output width in characters (default: terminal width)")
	renderCmd.Flags().IntVar(&flagRows, "rows", 0, "Output height in characters (default: terminal height)")
	renderCmd.Flags().BoolVar(&flagASCII, "ascii", false, "Print the grid as plain characters")
}

func runRender(cmd *cobra.Command, _ []string) {
	logger := newLogger("wander-render")

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// History is only needed to look up replays
	var store *storage.Store
	if flagReplay != 0 {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening generation history: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	start, err := startGeneration(cmd, store, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctrl := wander.NewController(settings, nil)
	gen := ctrl.Reset(core.RuntimeConfig{Seed: seed})
	if start != nil {
		ctrl.Regenerate(*start)
		gen = ctrl.Generation()
	}

	for i := 0; i < flagFrames; i++ {
		ctrl.Step()
	}

	stats := ctrl.Stats()
	logger.Info("rendered generation",
		"seed", gen.Seed,
		"agents", gen.Agents,
		"resolution", gen.Resolution,
		"frames", stats.Frames,
		"engaged", fmt.Sprintf("%d/%d", stats.Engaged, stats.Cells),
	)
	logger.Debug("moves", "accepted", stats.Accepted, "rejected", stats.Rejected)

	if flagASCII {
		fmt.Println(ctrl.State().Grid.String())
		return
	}

	cols, rows := outputSize()
	screen := core.NewScreen(cols, rows)
	canvas := tui.NewScreenCanvas(screen, tui.FitArea(cols, rows, settings.Width, settings.Height), settings.Width, settings.Height)
	ctrl.Render(canvas)
	fmt.Println(tui.RenderScreen(nil, screen))
}

// outputSize returns the flag size, falling back to the terminal size.
func outputSize() (int, int) {
	cols, rows := 80, 40 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h-1
	}
	if flagCols > 0 {
		cols = flagCols
	}
	if flagRows > 0 {
		rows = flagRows
	}
	return core.Max(cols, 1), core.Max(rows, 1)
}
