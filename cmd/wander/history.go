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

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded generations",
	Long: `Show the generations recorded by play, window and serve.

In a terminal, opens a browser: press Enter to replay the selected
generation. With --plain, or when output is not a terminal, prints the
most recent generations instead.

Examples:
  wander history
  wander history --plain --limit 50
  wander history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of generations to print with --plain")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the browser")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded generations")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening generation history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearGenerations(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		printHistory(store)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width = w
		height = h
	}

	selected, err := tui.RunHistory(store, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if selected == nil {
		return
	}

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if err := tui.Run(tui.Options{
		Settings:      settings,
		Store:         store,
		Source:        "terminal",
		Start:         &selected.Generation,
		ScreenshotDir: tui.DefaultScreenshotDir(),
	}, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running wander: %v\n", err)
		os.Exit(1)
	}
}

// printHistory prints the most recent generations as a table.
func printHistory(store *storage.Store) {
	entries, err := store.RecentGenerations(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent generations")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No generations recorded yet.")
		fmt.Println()
		fmt.Println("Run 'wander play' to start one!")
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-20s  %-6s  %-5s  %-16s  %s\n", "ID", "Seed", "Wands", "Res", "Source", "Date")
	fmt.Printf("  %-6s  %-20s  %-6s  %-5s  %-16s  %s\n", "--", "----", "-----", "---", "------", "----")

	for _, e := range entries {
		fmt.Printf("  %-6d  %-20d  %-6d  %-5d  %-16s  %s\n",
			e.ID,
			e.Generation.Seed,
			e.Generation.Agents,
			e.Generation.Resolution,
			e.Source,
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	if total, err := store.CountGenerations(); err == nil {
		fmt.Println()
		fmt.Printf("Total: %d\n", total)
	}
	fmt.Println("Run 'wander play --replay <id>' to replay one.")
}
