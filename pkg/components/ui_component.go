package components

import "github.com/decker502/firedodge/pkg/config"

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the pointer is hovering over the UI element.
	UIHovered
	// UIPressed indicates the UI element is being held down.
	UIPressed
)

// Button is a rectangular on-screen control.
// Hold buttons (left/right movement) report Pressed every frame while held;
// tap buttons (start/restart) fire once on release inside the rectangle.
type Button struct {
	// Bounds is the button rectangle in screen space.
	Bounds config.Rect
	// Label is drawn centered inside the button.
	Label string
	// State is the current interaction state, updated once per frame.
	State UIState
}

// NewButton creates a button in the normal state.
func NewButton(bounds config.Rect, label string) *Button {
	return &Button{Bounds: bounds, Label: label, State: UINormal}
}

// IsPressed reports whether the button is currently held down.
func (b *Button) IsPressed() bool {
	return b.State == UIPressed
}

// Contains reports whether the screen point lies inside the button.
func (b *Button) Contains(x, y int) bool {
	return b.Bounds.Contains(float64(x), float64(y))
}
