package collision

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Obstacle is a static axis-aligned footprint on the floor plane (XZ).
// Obstacles never move; they are only tested against.
type Obstacle struct {
	// Name identifies the furniture piece for diagnostics.
	Name string
	MinX float32
	MaxX float32
	MinZ float32
	MaxZ float32
}

// NewObstacle builds an obstacle from a footprint centre and half extents.
//
// Parameters:
//   - name: diagnostic name
//   - cx, cz: footprint centre on the floor plane
//   - halfX, halfZ: half extents along X and Z
//
// Returns:
//   - Obstacle: the footprint
func NewObstacle(name string, cx, cz, halfX, halfZ float32) Obstacle {
	return Obstacle{
		Name: name,
		MinX: cx - halfX,
		MaxX: cx + halfX,
		MinZ: cz - halfZ,
		MaxZ: cz + halfZ,
	}
}

// Inflate returns the footprint grown by margin on every side.
func (o Obstacle) Inflate(margin float32) Obstacle {
	o.MinX -= margin
	o.MaxX += margin
	o.MinZ -= margin
	o.MaxZ += margin
	return o
}

// Blocks reports whether a circle of the given radius centred at p (projected
// onto XZ) overlaps the footprint grown by padding. Touching the boundary is
// allowed so that a position resting against a wall is not itself blocked.
//
// Parameters:
//   - p: circle centre; Y is ignored
//   - radius: circle radius
//   - padding: extra margin around the footprint
//
// Returns:
//   - bool: true if the circle penetrates the padded footprint
func (o Obstacle) Blocks(p mgl32.Vec3, radius, padding float32) bool {
	b := o.Inflate(padding)
	// Closest point of the padded box to the circle centre.
	cx := mgl32.Clamp(p[0], b.MinX, b.MaxX)
	cz := mgl32.Clamp(p[2], b.MinZ, b.MaxZ)
	dx := p[0] - cx
	dz := p[2] - cz
	return dx*dx+dz*dz < radius*radius-1e-6
}

// Valid reports whether the footprint has non-negative extents.
func (o Obstacle) Valid() bool {
	return o.MinX <= o.MaxX && o.MinZ <= o.MaxZ
}
