package rangemap

import (
	"math"
	"testing"
)

func TestMapEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		xMin, xMax float64
	}{
		{"unit", 0, 1},
		{"opacity", 0.5, 1.0},
		{"drag range", 0, 100},
		{"negative", -40, -10},
		{"reversed", 10, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Map(tt.xMin, tt.xMin, tt.xMax, 0, 1); got != 0 {
				t.Fatalf("Map(xMin) = %v, want 0", got)
			}
			if got := Map(tt.xMax, tt.xMin, tt.xMax, 0, 1); got != 1 {
				t.Fatalf("Map(xMax) = %v, want 1", got)
			}
		})
	}
}

func TestMapMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for x := -50.0; x <= 150; x += 2.5 {
		got := Map(x, 0, 100, 0, 1)
		if got <= prev {
			t.Fatalf("Map not increasing at x=%v: %v <= %v", x, got, prev)
		}
		prev = got
	}
}

func TestMapMidpoint(t *testing.T) {
	if got := Map(50, 0, 100, 0.5, 1.0); got != 0.75 {
		t.Fatalf("Map(50) = %v, want 0.75", got)
	}
	if got := Map(0, 0.5, 1.0, 0, 100); got != -100 {
		t.Fatalf("Map(0, 0.5..1) = %v, want -100", got)
	}
}

func TestMapClampedStaysInRange(t *testing.T) {
	inputs := []float64{-1e9, -1000, -1, 0, 33.3, 50, 99.9, 100, 101, 1e6, 1e12}
	for _, x := range inputs {
		got := MapClamped(x, 0, 100, 0.5, 1.0)
		if got < 0.5 || got > 1.0 {
			t.Fatalf("MapClamped(%v) = %v escaped [0.5, 1.0]", x, got)
		}
	}

	if got := MapClamped(-20, 0, 100, 0.5, 1.0); got != 0.5 {
		t.Fatalf("undershoot = %v, want 0.5", got)
	}
	if got := MapClamped(250, 0, 100, 0.5, 1.0); got != 1.0 {
		t.Fatalf("overshoot = %v, want 1.0", got)
	}
}

func TestMapClampedDescendingOutput(t *testing.T) {
	got := MapClamped(200, 0, 100, 1.0, 0.5)
	if got != 0.5 {
		t.Fatalf("MapClamped with descending output = %v, want 0.5", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.2, 0.5, 1, 0.5},
		{0.7, 0.5, 1, 0.7},
		{1.2, 0.5, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
