package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wander/internal/core"
	"github.com/vovakirdan/wander/internal/storage"
	"github.com/vovakirdan/wander/internal/wander"
)

// Options configure a terminal viewer.
type Options struct {
	Settings wander.Settings
	Store    *storage.Store     // Optional generation history
	Source   string             // Recorded with every generation
	Start    *wander.Generation // Optional first generation (replays, explicit parameters)
	Renderer *lipgloss.Renderer // Optional; SSH sessions pass their own

	// ScreenshotDir enables ctrl+s screenshots when non-empty.
	ScreenshotDir string

	// OnGenerate is called after every new generation.
	OnGenerate func(wander.Generation)
}

// DefaultScreenshotDir returns ~/.wander/screenshots.
func DefaultScreenshotDir() string {
	return filepath.Join(os.Getenv("HOME"), ".wander", "screenshots")
}

// Model is the Bubble Tea model that plays the piece in a terminal.
type Model struct {
	ctrl       *wander.Controller
	screen     *core.Screen
	canvas     *ScreenCanvas
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	theme      Theme
	inputFrame core.InputFrame
	notice     string
	quitting   bool
}

// NewModel creates a viewer and starts its first generation.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	cfg = cfg.Normalized()
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		ctrl:       wander.NewController(opts.Settings, nil),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       h,
		theme:      NewTheme(opts.Renderer),
		inputFrame: core.NewInputFrame(),
	}
	m.canvas = NewScreenCanvas(m.screen, core.Rect{}, opts.Settings.Width, opts.Settings.Height)

	gen := m.ctrl.Reset(cfg)
	if opts.Start != nil {
		m.ctrl.Regenerate(*opts.Start)
		gen = m.ctrl.Generation()
	}
	m.generated(gen)
	m.layout()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case core.ActionScreenshot:
		m.notice = m.saveScreenshot()
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse turns left clicks on the canvas into regeneration requests.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if x, y, ok := m.canvas.ToCanvas(msg.X, msg.Y); ok {
		m.inputFrame.Click(core.Point{X: x, Y: y})
	}
	return m, nil
}

// handleResize processes window resize events. The piece keeps running;
// only the raster is rebuilt.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// handleTick applies the input of the frame, then draws and advances the piece.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if gen, ok := m.ctrl.Apply(m.inputFrame); ok {
		m.generated(gen)
		m.notice = ""
	}
	m.ctrl.Frame(m.canvas)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// generated records a new generation.
func (m Model) generated(gen wander.Generation) {
	if m.opts.Store != nil {
		//nolint:errcheck // Best-effort save, the piece continues regardless
		m.opts.Store.SaveGeneration(gen, m.opts.Source)
	}
	if m.opts.OnGenerate != nil {
		m.opts.OnGenerate(gen)
	}
}

// layout sizes the screen to the space above the footer and fits the
// canvas into it, then redraws the current state without moving.
func (m *Model) layout() {
	rows := core.Max(m.config.ScreenH-m.footerHeight(), 1)
	m.screen.Resize(m.config.ScreenW, rows)
	m.screen.Clear()
	m.canvas.area = FitArea(m.config.ScreenW, rows, m.opts.Settings.Width, m.opts.Settings.Height)
	m.ctrl.Render(m.canvas)
}

// footerHeight returns the number of lines below the canvas.
func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// saveScreenshot saves the current screen to a text file and returns a
// notice for the status line.
func (m Model) saveScreenshot() string {
	if m.opts.ScreenshotDir == "" {
		return "screenshots disabled"
	}
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return "screenshot failed"
	}

	// Generate filename with seed and timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("wander_%d_%s.txt", m.ctrl.Generation().Seed, timestamp)
	path := filepath.Join(m.opts.ScreenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "screenshot failed"
	}
	return "saved " + path
}

// statusLine describes the current generation.
func (m Model) statusLine() string {
	gen := m.ctrl.Generation()
	stats := m.ctrl.Stats()
	sep := m.theme.HUDSeparator.Render(" │ ")
	field := func(label string, value any) string {
		return m.theme.HUDLabel.Render(label+" ") + m.theme.HUDValue.Render(fmt.Sprint(value))
	}

	parts := []string{
		m.theme.HUDTitle.Render("wander"),
		field("seed", gen.Seed),
		field("wands", gen.Agents),
		field("res", gen.Resolution),
		field("engaged", fmt.Sprintf("%d/%d", stats.Engaged, stats.Cells)),
	}
	if m.ctrl.Paused() {
		parts = append(parts, m.theme.HUDPaused.Render("paused"))
	}
	if m.notice != "" {
		parts = append(parts, m.theme.HUDNotice.Render(m.notice))
	}
	return strings.Join(parts, sep)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.opts.Renderer, m.screen))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Controller returns the controller driving the piece.
func (m Model) Controller() *wander.Controller {
	return m.ctrl
}

// Canvas returns the terminal canvas.
func (m Model) Canvas() *ScreenCanvas {
	return m.canvas
}

// Notice returns the current status notice.
func (m Model) Notice() string {
	return m.notice
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks regenerate the piece
	)

	_, err := p.Run()
	return err
}
