package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/wander/internal/core"
)

// keyActions maps keys to viewer actions.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyH, core.ActionToggleQuantized},
	{ebiten.KeyW, core.ActionToggleWands},
	{ebiten.KeyR, core.ActionReseed},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// readInput collects the input delivered since the last tick.
// Cursor positions are in layout units, which are canvas units.
func readInput(frame *core.InputFrame) {
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			frame.Set(ka.action)
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		frame.Set(core.ActionScreenshot)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame.Click(core.Point{X: float64(x), Y: float64(y)})
	}
}
