package utils

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%f): expected %f, got %f", tt.in, tt.want, got)
		}
	}
}

func TestLerpAngleShortestWay(t *testing.T) {
	// Из 170° в -170° — через 180°, а не через ноль
	from := 170 * math.Pi / 180
	to := -170 * math.Pi / 180
	got := LerpAngle(from, to, 0.5)
	if math.Abs(math.Abs(got)-math.Pi) > 1e-9 {
		t.Errorf("Expected ±π, got %f", got)
	}

	if got := LerpAngle(0, -math.Pi/2, 0.1); math.Abs(got+math.Pi/20) > 1e-9 {
		t.Errorf("Expected %f, got %f", -math.Pi/20, got)
	}
	if got := LerpAngle(0.3, -1.2, 1); math.Abs(got+1.2) > 1e-9 {
		t.Errorf("Expected full blend to reach target, got %f", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.25); got != 2.5 {
		t.Errorf("Expected 2.5, got %f", got)
	}
}
