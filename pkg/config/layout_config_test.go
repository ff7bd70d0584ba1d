package config

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"top-left corner", 10, 20, true},
		{"inside", 25, 40, true},
		{"right edge excluded", 40, 40, false},
		{"bottom edge excluded", 25, 60, false},
		{"left of rect", 9, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestTouchButtonsDoNotOverlap(t *testing.T) {
	left := LeftButtonRect(GameWindowWidth, GameWindowHeight)
	right := RightButtonRect(GameWindowWidth, GameWindowHeight)

	if left.X+left.Width >= right.X {
		t.Errorf("Left button %+v overlaps right button %+v", left, right)
	}
	if left.Y+left.Height > GameWindowHeight || right.X+right.Width > GameWindowWidth {
		t.Error("Touch buttons must stay inside the window")
	}
}
