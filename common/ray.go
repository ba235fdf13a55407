package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line starting at Origin and extending along Dir.
// Dir does not need to be normalized; hit distances are in units of Dir.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Contains reports whether p lies inside or on the boundary of the box.
func (b AABB) Contains(p mgl32.Vec3) bool {
	for i := range 3 {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// RayAABB intersects a ray with a box using the slab method.
// A ray starting inside the box reports a hit at distance 0.
//
// Parameters:
//   - r: the ray to test
//   - b: the box to test against
//
// Returns:
//   - float32: distance along the ray to the entry point (in units of r.Dir)
//   - bool: true if the ray hits the box in front of its origin
func RayAABB(r Ray, b AABB) (float32, bool) {
	tMin := float32(0)
	tMax := float32(mgl32.MaxValue)

	for i := range 3 {
		if mgl32.Abs(r.Dir[i]) < 1e-8 {
			// Parallel to this slab: must already be between the planes.
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Dir[i]
		t0 := (b.Min[i] - r.Origin[i]) * inv
		t1 := (b.Max[i] - r.Origin[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
