package util

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
	if got := Lerp(0.85, 1.0, 0); got != 0.85 {
		t.Errorf("Lerp(0.85, 1.0, 0) = %v, want 0.85", got)
	}
	if got := Lerp(0.85, 1.0, 1); got != 1.0 {
		t.Errorf("Lerp(0.85, 1.0, 1) = %v, want 1.0", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	// Ascending edges
	if got := Smoothstep(0, 1, -0.5); got != 0 {
		t.Errorf("Smoothstep below edge0 = %v, want 0", got)
	}
	if got := Smoothstep(0, 1, 1.5); got != 1 {
		t.Errorf("Smoothstep above edge1 = %v, want 1", got)
	}
	if got := Smoothstep(0, 1, 0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Smoothstep midpoint = %v, want 0.5", got)
	}

	// Descending edges, as used by the vignette
	if got := Smoothstep(0.9, 0.2, 0.1); got != 1 {
		t.Errorf("Smoothstep(0.9, 0.2, 0.1) = %v, want 1", got)
	}
	if got := Smoothstep(0.9, 0.2, 0.95); got != 0 {
		t.Errorf("Smoothstep(0.9, 0.2, 0.95) = %v, want 0", got)
	}
}
