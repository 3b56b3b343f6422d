// pkg/easing/easing.go
package easing

import (
	"math"
	"strings"
)

// Func maps linear progress in [0, 1] to eased progress in [0, 1].
// Every function here satisfies f(0) = 0 and f(1) = 1.
type Func func(t float64) float64

func Linear(t float64) float64 {
	return t
}

// SineInOut — симметричное ускорение и замедление по синусоиде
func SineInOut(t float64) float64 {
	return -0.5 * (math.Cos(math.Pi*t) - 1)
}

func QuadInOut(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t
	}
	t--
	return -0.5 * (t*(t-2) - 1)
}

func CubicIn(t float64) float64 {
	return t * t * t
}

func CubicOut(t float64) float64 {
	f := t - 1
	return f*f*f + 1
}

func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 0.5*math.Pow(2*t-2, 3) + 1
}

func ExpoInOut(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	if t < 0.5 {
		return 0.5 * math.Pow(2, 20*t-10)
	}
	return -0.5*math.Pow(2, 10-20*t) + 1
}

var byName = map[string]Func{
	"linear":     Linear,
	"sineinout":  SineInOut,
	"quadinout":  QuadInOut,
	"cubicin":    CubicIn,
	"cubicout":   CubicOut,
	"cubicinout": CubicInOut,
	"expoinout":  ExpoInOut,
}

// ByName ищет функцию по имени без учёта регистра, дефисов и подчёркиваний
func ByName(name string) (Func, bool) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	f, ok := byName[key]
	return f, ok
}
