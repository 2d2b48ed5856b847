// wander is a generative piece: wands drift over a grid and claim every
// cell they enter, leaving a trail of colored cells.
//
// Usage:
//
//	wander play              - Watch the piece in the terminal
//	wander window            - Watch the piece in a desktop window
//	wander serve             - Start SSH server, one piece per session
//	wander render            - Run a generation headless and print the result
//	wander history           - Browse recorded generations
//	wander config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set seed for reproducible generations
//	--db <path>         - Set database path (default: ~/.wander/wander.db)
//	--config <path>     - Use a custom wander.yaml
//	--log-level <level> - Set log level (debug, info, warn, error)
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wander/internal/config"
	"github.com/vovakirdan/wander/internal/storage"
	"github.com/vovakirdan/wander/internal/wander"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Generation flags shared by play, window and render
	flagAgents     int
	flagResolution int
	flagReplay     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wander",
	Short: "wander - wands claiming a grid, one cell at a time",
	Long: `wander is a generative piece. Wands drift randomly over a grid and
claim each cell they enter. A claimed cell keeps the color of the first wand
that reached it, and no other wand may enter it.

Click anywhere to start over: the vertical position picks how many wands
there are, the horizontal position picks the grid resolution.

Available commands:
  play     - Watch the piece in the terminal
  window   - Watch the piece in a desktop window
  serve    - Start SSH server, one piece per session
  render   - Run a generation headless and print the result
  history  - Browse recorded generations
  config   - Print the effective configuration

Examples:
  wander play
  wander play --agents 20 --resolution 40
  wander window --seed 42
  wander serve --ssh :2222
  wander render --frames 500 --ascii
  wander history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wander/wander.db", "Path to generation history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom wander.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// addGenerationFlags registers the flags that pick the first generation.
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagAgents, "agents", 0, "Number of wands in the first generation")
	cmd.Flags().IntVar(&flagResolution, "resolution", 0, "Grid resolution of the first generation")
	cmd.Flags().Int64Var(&flagReplay, "replay", 0, "Replay a recorded generation by ID")
}

// newLogger creates a logger writing to stderr at the --log-level level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadSettings loads the configuration and converts it to settings.
func loadSettings() (wander.Settings, error) {
	cfg, err := config.LoadWander(flagConfig)
	if err != nil {
		return wander.Settings{}, err
	}
	return wander.SettingsFromConfig(cfg)
}

// startGeneration resolves the generation flags. It returns nil when the
// piece should start from the configured defaults.
func startGeneration(cmd *cobra.Command, store *storage.Store, settings wander.Settings) (*wander.Generation, error) {
	if flagReplay != 0 {
		if store == nil {
			return nil, errors.New("replay needs the history database")
		}
		entry, err := store.GenerationByID(flagReplay)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("generation %d not found", flagReplay)
		}
		if err != nil {
			return nil, err
		}
		return &entry.Generation, nil
	}

	agentsSet := cmd.Flags().Changed("agents")
	resolutionSet := cmd.Flags().Changed("resolution")
	if !agentsSet && !resolutionSet {
		return nil, nil
	}

	gen := wander.Generation{
		Seed:       flagSeed,
		Agents:     settings.InitialAgents,
		Resolution: settings.InitialResolution,
	}
	if gen.Seed == 0 {
		gen.Seed = time.Now().UnixNano()
	}
	if agentsSet {
		gen.Agents = flagAgents
	}
	if resolutionSet {
		gen.Resolution = flagResolution
	}
	return &gen, nil
}
