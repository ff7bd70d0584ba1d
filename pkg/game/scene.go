package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene IDs used by the scene factory.
const (
	SceneStart = "start" // title screen with the start button
	ScenePlay  = "play"  // a fresh session, started immediately
)

// Scene represents a game screen (e.g., start screen, gameplay).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic.
	// now is the driver clock in milliseconds; every scene sees the same clock.
	Update(now float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}
