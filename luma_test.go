package tint

import (
	"math"
	"testing"
)

func TestLuma(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want float64
	}{
		{"opaque black", Color{0, 0, 0, 1}, 0},
		{"opaque white", Color{1, 1, 1, 1}, 255},
		{"transparent black reads as white", Color{0, 0, 0, 0}, 255},
		{"opaque red", Color{1, 0, 0, 1}, 76.245},
		{"opaque yellow", Color{1, 1, 0, 1}, 225.93},
		{"half-transparent black", Color{0, 0, 0, 0.5}, 127.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Luma()
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("got %.3f, want %.3f", got, tt.want)
			}
		})
	}
}

func TestIsDark(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want bool
	}{
		{"opaque black", Color{0, 0, 0, 1}, true},
		{"opaque white", Color{1, 1, 1, 1}, false},
		{"transparent black composites to white", Color{0, 0, 0, 0}, false},
		{"opaque red", Color{1, 0, 0, 1}, true},
		{"opaque yellow", Color{1, 1, 0, 1}, false},
		{"mid gray", Color{0.5, 0.5, 0.5, 1}, true},
		{"gray below threshold", ParseColor("#c6c6c6"), true},
		{"gray above threshold", ParseColor("#c9c9c9"), false},
		{"faint black wash", Color{0, 0, 0, 0.2}, false},
		{"half black wash", Color{0, 0, 0, 0.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsDark(); got != tt.want {
				t.Errorf("%+v.IsDark() = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}
