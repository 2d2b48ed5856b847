package window

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/wander/internal/core"
	"github.com/vovakirdan/wander/internal/storage"
	"github.com/vovakirdan/wander/internal/wander"
)

// Options configure the window viewer.
type Options struct {
	Settings      wander.Settings
	Store         *storage.Store     // Optional generation history
	Start         *wander.Generation // Optional first generation
	Logger        *log.Logger        // Optional
	Scale         int                // Window pixels per canvas unit
	ScreenshotDir string             // Enables ctrl+s PNG screenshots when non-empty
}

// Game implements ebiten.Game for the piece.
type Game struct {
	ctrl      *wander.Controller
	canvas    *ImageCanvas
	opts      Options
	logger    *log.Logger
	input     core.InputFrame
	w, h      int
	lastTitle string
}

// NewGame creates the viewer and starts its first generation.
func NewGame(opts Options, cfg core.RuntimeConfig) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "wander-window",
		})
	}

	w := core.Max(int(opts.Settings.Width), 1)
	h := core.Max(int(opts.Settings.Height), 1)
	g := &Game{
		ctrl:   wander.NewController(opts.Settings, nil),
		canvas: NewImageCanvas(ebiten.NewImage(w, h)),
		opts:   opts,
		logger: opts.Logger,
		input:  core.NewInputFrame(),
		w:      w,
		h:      h,
	}

	gen := g.ctrl.Reset(cfg)
	if opts.Start != nil {
		g.ctrl.Regenerate(*opts.Start)
		gen = g.ctrl.Generation()
	}
	g.generated(gen)
	return g
}

// Update applies input, then draws and advances one frame offscreen.
func (g *Game) Update() error {
	readInput(&g.input)
	defer g.input.Clear()

	if g.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if gen, ok := g.ctrl.Apply(g.input); ok {
		g.generated(gen)
	}
	g.ctrl.Frame(g.canvas)

	if g.input.Has(core.ActionScreenshot) {
		g.saveScreenshot()
	}
	g.updateTitle()
	return nil
}

// Draw copies the offscreen frame to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Image(), nil)
}

// Layout keeps the logical screen at canvas size.
func (g *Game) Layout(_, _ int) (int, int) { return g.w, g.h }

// generated records and logs a new generation.
func (g *Game) generated(gen wander.Generation) {
	g.logger.Info("generation started",
		"seed", gen.Seed,
		"agents", gen.Agents,
		"resolution", gen.Resolution,
	)
	if g.opts.Store != nil {
		//nolint:errcheck // Best-effort save, the piece continues regardless
		g.opts.Store.SaveGeneration(gen, "window")
	}
}

func (g *Game) updateTitle() {
	gen := g.ctrl.Generation()
	title := fmt.Sprintf("wander - %d wands, %dx%d", gen.Agents, gen.Resolution, gen.Resolution)
	if g.ctrl.Paused() {
		title += " (paused)"
	}
	if title != g.lastTitle {
		ebiten.SetWindowTitle(title)
		g.lastTitle = title
	}
}

// saveScreenshot writes the current frame as a PNG.
func (g *Game) saveScreenshot() {
	if g.opts.ScreenshotDir == "" {
		return
	}
	if err := os.MkdirAll(g.opts.ScreenshotDir, 0o755); err != nil {
		g.logger.Warn("screenshot failed", "error", err)
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, g.w, g.h))
	g.canvas.Image().ReadPixels(img.Pix)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(g.opts.ScreenshotDir,
		fmt.Sprintf("wander_%d_%s.png", g.ctrl.Generation().Seed, timestamp))

	f, err := os.Create(path)
	if err != nil {
		g.logger.Warn("screenshot failed", "error", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		g.logger.Warn("screenshot failed", "error", err)
		return
	}
	g.logger.Info("screenshot saved", "path", path)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options, cfg core.RuntimeConfig) error {
	cfg = cfg.Normalized()
	if opts.Scale <= 0 {
		opts.Scale = 2
	}
	g := NewGame(opts, cfg)

	ebiten.SetWindowSize(g.w*opts.Scale, g.h*opts.Scale)
	ebiten.SetWindowTitle("wander")
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
