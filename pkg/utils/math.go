// pkg/utils/math.go
package utils

import "math"

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Hypot returns the euclidean length of the vector (dx, dz).
func Hypot(dx, dz float64) float64 {
	return math.Sqrt(dx*dx + dz*dz)
}

// Clamp01 clamps t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
