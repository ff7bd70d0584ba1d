package utils

import (
	"math"
	"testing"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{0, 0},
		{0.5, 0.875},
		{1, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 176, 0.5); got != 88 {
		t.Errorf("Lerp(0, 176, 0.5) = %v, want 88", got)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name                 string
		start, now, duration float64
		want                 float64
	}{
		{"开始前", 1000, 900, 300, 0},
		{"一半", 1000, 1150, 300, 0.5},
		{"结束后", 1000, 2000, 300, 1},
		{"时长为0", 1000, 1000, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.start, tt.now, tt.duration); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}
