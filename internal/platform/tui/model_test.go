package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wander/internal/core"
	"github.com/vovakirdan/wander/internal/storage"
	"github.com/vovakirdan/wander/internal/wander"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 1}
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Settings.Width == 0 {
		opts.Settings = wander.DefaultSettings()
	}
	return NewModel(opts, testConfig())
}

// send feeds messages through Update and returns the final model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, expected Model", next)
		}
	}
	return m
}

func tick() tea.Msg {
	return TickMsg{}
}

func TestModelStartsInitialGeneration(t *testing.T) {
	m := newTestModel(t, Options{})

	gen := m.Controller().Generation()
	if gen.Agents != 10 || gen.Resolution != 10 {
		t.Errorf("initial generation = %+v, expected 10 wands at resolution 10", gen)
	}
	if m.Controller().Stats().Cells != 100 {
		t.Errorf("initial grid should have 100 cells, got %d", m.Controller().Stats().Cells)
	}
}

func TestModelStartGeneration(t *testing.T) {
	start := wander.Generation{Seed: 99, Agents: 3, Resolution: 7}
	m := newTestModel(t, Options{Start: &start})

	if got := m.Controller().Generation(); got != start {
		t.Errorf("Generation() = %+v, expected %+v", got, start)
	}
}

func TestModelToggles(t *testing.T) {
	m := newTestModel(t, Options{})
	before := m.Controller().Flags()

	m = send(t, m, runeKey("h"), tick())
	if m.Controller().Flags().Quantized == before.Quantized {
		t.Error("h should toggle quantized markers")
	}

	m = send(t, m, runeKey("w"), tick())
	if m.Controller().Flags().ShowWands == before.ShowWands {
		t.Error("w should toggle wand markers")
	}

	// Toggles do not start a generation
	if m.Controller().Stats().Generations != 1 {
		t.Errorf("toggles should not regenerate, got %d generations", m.Controller().Stats().Generations)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, Options{})

	m = send(t, m, tick(), tick())
	frames := m.Controller().Stats().Frames
	if frames != 2 {
		t.Fatalf("expected 2 frames, got %d", frames)
	}

	m = send(t, m, runeKey("p"), tick(), tick())
	if !m.Controller().Paused() {
		t.Fatal("p should pause")
	}
	if got := m.Controller().Stats().Frames; got != frames {
		t.Errorf("paused frames advanced from %d to %d", frames, got)
	}
	if !strings.Contains(m.View(), "paused") {
		t.Error("status line should show paused")
	}
}

func TestModelClickRegenerates(t *testing.T) {
	m := newTestModel(t, Options{})
	area := m.Canvas().Area()

	// Bottom-right cell of the canvas maps to the largest parameters.
	click := tea.MouseMsg{
		X:      area.Right() - 1,
		Y:      area.Bottom() - 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	m = send(t, m, click, tick())

	gen := m.Controller().Generation()
	if gen.Agents < 30 || gen.Resolution < 45 {
		t.Errorf("bottom-right click produced %+v, expected close to 35 wands at resolution 50", gen)
	}
	if m.Controller().Stats().Generations != 2 {
		t.Errorf("click should start a second generation, got %d", m.Controller().Stats().Generations)
	}
}

func TestModelIgnoresClicksOutsideCanvas(t *testing.T) {
	m := newTestModel(t, Options{})
	before := m.Controller().Generation()
	area := m.Canvas().Area()

	tests := []tea.MouseMsg{
		{X: area.X - 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		{X: area.X, Y: area.Bottom() + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		{X: area.X, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		{X: area.X, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
	}
	for _, msg := range tests {
		m = send(t, m, msg, tick())
	}

	if got := m.Controller().Generation(); got != before {
		t.Errorf("generation changed to %+v, expected %+v", got, before)
	}
}

func TestModelRecordsGenerations(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var seen []wander.Generation
	m := newTestModel(t, Options{
		Store:      store,
		Source:     "terminal",
		OnGenerate: func(g wander.Generation) { seen = append(seen, g) },
	})
	m = send(t, m, runeKey("r"), tick())

	n, err := store.CountGenerations()
	if err != nil {
		t.Fatalf("CountGenerations() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 recorded generations, got %d", n)
	}
	if len(seen) != 2 {
		t.Errorf("OnGenerate called %d times, expected 2", len(seen))
	}

	recent, _ := store.RecentGenerations(1)
	if len(recent) != 1 || recent[0].Generation != m.Controller().Generation() {
		t.Errorf("newest record %+v does not match current generation %+v", recent, m.Controller().Generation())
	}
	if recent[0].Source != "terminal" {
		t.Errorf("source = %q, expected terminal", recent[0].Source)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, Options{ScreenshotDir: dir})

	m = send(t, m, tick(), tea.KeyMsg{Type: tea.KeyCtrlS})

	if !strings.HasPrefix(m.Notice(), "saved ") {
		t.Fatalf("notice = %q, expected saved path", m.Notice())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "wander_") {
		t.Errorf("expected one wander_ screenshot, got %v", entries)
	}
}

func TestModelScreenshotDisabled(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.Notice() != "screenshots disabled" {
		t.Errorf("notice = %q, expected screenshots disabled", m.Notice())
	}
}

func TestModelHelpResizesCanvas(t *testing.T) {
	m := newTestModel(t, Options{})
	short := m.Canvas().Area()

	m = send(t, m, runeKey("?"))
	full := m.Canvas().Area()

	if full.H >= short.H {
		t.Errorf("full help should shrink the canvas: %d rows before, %d after", short.H, full.H)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, Options{})
	gen := m.Controller().Generation()

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})

	area := m.Canvas().Area()
	if area.Right() > 120 || area.Bottom() > 50 {
		t.Errorf("canvas %+v exceeds the new window", area)
	}
	if m.Controller().Generation() != gen {
		t.Error("resize should keep the current generation")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{})

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quitting")
	}
}
