package utils

import (
	"image"
	"testing"
)

func TestPointInRect(t *testing.T) {
	rect := image.Rect(10, 10, 110, 60)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"矩形内部", 50, 30, true},
		{"左上角（含）", 10, 10, true},
		{"右下角（不含）", 110, 60, false},
		{"矩形左侧", 5, 30, false},
		{"矩形下方", 50, 80, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRect(tt.x, tt.y, rect); got != tt.want {
				t.Errorf("PointInRect(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v, want 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %v, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %v, want 10", got)
	}
}
