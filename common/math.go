package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the world-space up axis shared by every camera and look-at computation.
var WorldUp = mgl32.Vec3{0, 1, 0}

// EaseOutCubic remaps a linear progress value to a decelerating curve: 1 - (1-t)^3.
// Inputs outside [0, 1] are clamped first.
//
// Parameters:
//   - t: linear progress
//
// Returns:
//   - float32: eased progress in [0, 1]
func EaseOutCubic(t float32) float32 {
	t = mgl32.Clamp(t, 0, 1)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// LerpVec3 linearly interpolates between a and b.
//
// Parameters:
//   - a: value at t = 0
//   - b: value at t = 1
//   - t: interpolation factor
//
// Returns:
//   - mgl32.Vec3: the interpolated vector
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float32) bool {
	f64 := float64(f)
	return !math.IsNaN(f64) && !math.IsInf(f64, 0)
}

// IsFiniteVec3 reports whether every component of v is finite.
func IsFiniteVec3(v mgl32.Vec3) bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2])
}

// IsFiniteVec2 reports whether every component of v is finite.
func IsFiniteVec2(v mgl32.Vec2) bool {
	return IsFinite(v[0]) && IsFinite(v[1])
}

// SafeNormalize returns v scaled to unit length, or the zero vector when v has
// no usable length. mgl32's Normalize divides by zero on a zero vector.
//
// Parameters:
//   - v: vector to normalize
//
// Returns:
//   - mgl32.Vec3: unit vector or zero
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-8 || !IsFinite(l) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// ClampVec2Len limits v to at most limit length while keeping its direction.
//
// Parameters:
//   - v: vector to clamp
//   - limit: maximum allowed length
//
// Returns:
//   - mgl32.Vec2: the clamped vector
func ClampVec2Len(v mgl32.Vec2, limit float32) mgl32.Vec2 {
	l := v.Len()
	if l <= limit || l == 0 {
		return v
	}
	return v.Mul(limit / l)
}
