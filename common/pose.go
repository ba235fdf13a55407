package common

import "github.com/go-gl/mathgl/mgl32"

// Pose is a camera position and the point it looks at.
type Pose struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// Lerp interpolates position and target independently.
func (p Pose) Lerp(to Pose, t float32) Pose {
	return Pose{
		Position: LerpVec3(p.Position, to.Position, t),
		Target:   LerpVec3(p.Target, to.Target, t),
	}
}

// Finite reports whether every component of the pose is finite.
func (p Pose) Finite() bool {
	return IsFiniteVec3(p.Position) && IsFiniteVec3(p.Target)
}
