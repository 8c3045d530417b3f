// Package raymath provides raylib's vector, matrix and quaternion helpers
// for the raylib struct mirrors.
//
// The functions keep raymath's names and float32 arithmetic, so results
// match what the C header computes. Angles are in radians. Comparisons
// use a relative tolerance of Epsilon.
package raymath

import (
	"math"
)

// Epsilon is the tolerance used by FloatEquals and the Equals helpers.
const Epsilon = 0.000001

// Clamp limits value to [min, max].
func Clamp(value, min, max float32) float32 {
	r := value
	if value < min {
		r = min
	}
	if r > max {
		r = max
	}
	return r
}

// Lerp interpolates linearly between start and end.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

// Normalize maps value from [start, end] to [0, 1].
func Normalize(value, start, end float32) float32 {
	return (value - start) / (end - start)
}

// Remap maps value from one range to another.
func Remap(value, inputStart, inputEnd, outputStart, outputEnd float32) float32 {
	return (value-inputStart)/(inputEnd-inputStart)*(outputEnd-outputStart) + outputStart
}

// Wrap wraps value into [min, max).
func Wrap(value, min, max float32) float32 {
	return value - (max-min)*floorf((value-min)/(max-min))
}

// FloatEquals reports whether x and y are equal within Epsilon, scaled by
// their magnitude.
func FloatEquals(x, y float32) bool {
	return absf(x-y) <= Epsilon*maxf(1, maxf(absf(x), absf(y)))
}

func sqrtf(x float32) float32     { return float32(math.Sqrt(float64(x))) }
func sinf(x float32) float32      { return float32(math.Sin(float64(x))) }
func cosf(x float32) float32      { return float32(math.Cos(float64(x))) }
func acosf(x float32) float32     { return float32(math.Acos(float64(x))) }
func asinf(x float32) float32     { return float32(math.Asin(float64(x))) }
func atan2f(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }
func floorf(x float32) float32    { return float32(math.Floor(float64(x))) }
func absf(x float32) float32      { return float32(math.Abs(float64(x))) }

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
