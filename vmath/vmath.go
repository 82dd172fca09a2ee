// Package vmath holds the float32 geometry and random helpers shared by the
// simulation and the opponent controller.
package vmath

import "github.com/chewxy/math32"

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}

// ClampInt restricts v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Away returns |v| carrying the sign of dir
func Away(v, dir float32) float32 {
	return math32.Copysign(math32.Abs(v), dir)
}

// CapAbs limits |v| to limit, preserving sign
func CapAbs(v, limit float32) float32 {
	if math32.Abs(v) > limit {
		return math32.Copysign(limit, v)
	}
	return v
}

// Wrap returns i modulo n in [0, n)
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
