package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-room/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Orientation holds first-person yaw and pitch in radians.
// Pitch is kept inside (-π/2, π/2) by epsilon so the look direction never becomes parallel to WorldUp.
type Orientation struct {
	yaw         float32
	pitch       float32
	sensitivity float32
	epsilon     float32
}

// NewOrientation creates an Orientation facing -Z with level pitch.
//
// Parameters:
//   - sensitivity: radians of rotation per unit of look delta
//   - epsilon: margin kept between pitch and ±π/2
//
// Returns:
//   - *Orientation: the new orientation
func NewOrientation(sensitivity, epsilon float32) *Orientation {
	if sensitivity <= 0 {
		panic("camera: orientation sensitivity must be positive")
	}
	if epsilon <= 0 || epsilon >= math.Pi/2 {
		panic("camera: pitch epsilon must be in (0, π/2)")
	}
	return &Orientation{sensitivity: sensitivity, epsilon: epsilon}
}

// Yaw returns the horizontal angle. Zero faces -Z.
func (o *Orientation) Yaw() float32 { return o.yaw }

// Pitch returns the vertical angle. Positive looks up.
func (o *Orientation) Pitch() float32 { return o.pitch }

// ApplyLookDelta rotates by a look delta: yaw -= dx*s, pitch -= dy*s, then pitch is clamped.
// Non-finite deltas are ignored.
//
// Parameters:
//   - dx: horizontal look delta
//   - dy: vertical look delta
//
// Returns:
//   - bool: true if the orientation changed
func (o *Orientation) ApplyLookDelta(dx, dy float32) bool {
	if !common.IsFinite(dx) || !common.IsFinite(dy) || (dx == 0 && dy == 0) {
		return false
	}
	o.yaw = wrapAngle(o.yaw - dx*o.sensitivity)
	o.SetPitch(o.pitch - dy*o.sensitivity)
	return true
}

// SetYaw sets yaw directly, bypassing sensitivity. Used after teleports to face a known wall.
func (o *Orientation) SetYaw(yaw float32) {
	if !common.IsFinite(yaw) {
		return
	}
	o.yaw = wrapAngle(yaw)
}

// SetPitch sets pitch, clamped to [-π/2+ε, π/2-ε].
func (o *Orientation) SetPitch(pitch float32) {
	if !common.IsFinite(pitch) {
		return
	}
	limit := float32(math.Pi/2) - o.epsilon
	o.pitch = mgl32.Clamp(pitch, -limit, limit)
}

// Direction returns the unit look direction
// (-sin(yaw)cos(pitch), sin(pitch), -cos(yaw)cos(pitch)).
func (o *Orientation) Direction() mgl32.Vec3 {
	sy, cy := math.Sincos(float64(o.yaw))
	sp, cp := math.Sincos(float64(o.pitch))
	return mgl32.Vec3{
		float32(-sy * cp),
		float32(sp),
		float32(-cy * cp),
	}
}

// Forward returns the horizontal walking direction for the current yaw.
func (o *Orientation) Forward() mgl32.Vec3 {
	sy, cy := math.Sincos(float64(o.yaw))
	return mgl32.Vec3{float32(-sy), 0, float32(-cy)}
}

// Right returns the horizontal strafe direction, Forward × WorldUp.
func (o *Orientation) Right() mgl32.Vec3 {
	sy, cy := math.Sincos(float64(o.yaw))
	return mgl32.Vec3{float32(cy), 0, float32(-sy)}
}

// LookTarget returns origin + Direction().
//
// Parameters:
//   - origin: the eye position
//
// Returns:
//   - mgl32.Vec3: the point one unit ahead of origin
func (o *Orientation) LookTarget(origin mgl32.Vec3) mgl32.Vec3 {
	return origin.Add(o.Direction())
}

// LookAt derives yaw and pitch from the direction origin→target. A degenerate or non-finite
// direction leaves the orientation unchanged.
//
// Parameters:
//   - origin: the eye position
//   - target: the point to face
//
// Returns:
//   - bool: true if the orientation was updated
func (o *Orientation) LookAt(origin, target mgl32.Vec3) bool {
	d := target.Sub(origin)
	if !common.IsFiniteVec3(d) || d.Len() < 1e-6 {
		return false
	}
	d = d.Normalize()

	o.yaw = float32(math.Atan2(float64(-d.X()), float64(-d.Z())))
	o.SetPitch(float32(math.Asin(float64(mgl32.Clamp(d.Y(), -1, 1)))))
	return true
}

// wrapAngle keeps yaw within [-π, π] so it does not lose precision over long sessions.
func wrapAngle(a float32) float32 {
	const pi = float32(math.Pi)
	if a >= -pi && a <= pi {
		return a
	}
	return float32(math.Remainder(float64(a), 2*math.Pi))
}
