package vmath

import "math"

// Epsilon is the tolerance used for float comparisons in geometry tests
const Epsilon = 1e-9

// --- Scalar ---

// Lerp linearly interpolates between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
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

// Repeat wraps t into [0, length), negative inputs wrap from the top
func Repeat(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	r := math.Mod(t, length)
	if r < 0 {
		r += length
	}
	// -tiny + length rounds up to length
	if r >= length {
		r = 0
	}
	return r
}

// PingPong folds t into [0, length]: rises 0→length over one length, falls back over the next
// Continuous everywhere, derivative flips sign at each multiple of length
func PingPong(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	r := Repeat(t, 2*length)
	return length - math.Abs(r-length)
}

// WrapDegrees normalizes an angle into [0, 360)
func WrapDegrees(deg float64) float64 {
	return Repeat(deg, 360)
}

// NearlyEqual reports |a-b| <= eps
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
