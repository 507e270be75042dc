package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/dot-connect/internal/sim"
)

var bindings = map[sim.Action]ebiten.Key{
	sim.ActionConnectUp:   ebiten.KeyI,
	sim.ActionConnectDown: ebiten.KeyK,
	sim.ActionSpeedUp:     ebiten.KeyU,
	sim.ActionSpeedDown:   ebiten.KeyJ,
	sim.ActionReverse:     ebiten.KeyR,
	sim.ActionFreeze:      ebiten.KeyP,
	sim.ActionClear:       ebiten.KeySpace,
	sim.ActionExit:        ebiten.KeyEscape,
}

// ebitenInput reads the current ebiten input state. It is only valid inside Update.
type ebitenInput struct {
	width, height int
}

func (in ebitenInput) Pressed(a sim.Action) bool {
	k, ok := bindings[a]
	return ok && ebiten.IsKeyPressed(k)
}

func (in ebitenInput) JustPressed(a sim.Action) bool {
	k, ok := bindings[a]
	return ok && inpututil.IsKeyJustPressed(k)
}

func (in ebitenInput) PointerHeld() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Cursor reports the pointer in layout pixels. ebiten keeps the last position
// once the pointer leaves the window, so bounds are checked here.
func (in ebitenInput) Cursor() (float64, float64, bool) {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= in.width || y >= in.height {
		return 0, 0, false
	}
	return float64(x), float64(y), true
}
