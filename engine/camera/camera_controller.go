package camera

import (
	"time"

	"github.com/Carmen-Shannon/oxy-room/common"
	"github.com/Carmen-Shannon/oxy-room/engine/input"
	"github.com/Carmen-Shannon/oxy-room/engine/transition"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController defines the union interface for the first-person camera.
// The controller owns the committed pose and is its only mutator: event handlers feed an
// input.Aggregator, and Update applies one InputSnapshot per frame. Embeds both
// firstPersonController and cinematicController so free walking and scripted moves
// share one pose.
type CameraController interface {
	firstPersonController
	cinematicController

	// Position returns the camera's world-space eye position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the look-at point. After an instant SetLookAt it is exactly the
	// target that was passed in, until the next look or movement change.
	//
	// Returns:
	//   - mgl32.Vec3: world-space look-at point
	Target() mgl32.Vec3

	// Pose returns position and target together.
	//
	// Returns:
	//   - common.Pose: the committed pose
	Pose() common.Pose

	// Update runs one frame: advance any transition, and if none is active and the controller
	// is unlocked, apply look, movement, collision and interaction picking.
	//
	// Parameters:
	//   - dt: elapsed simulated time since the previous frame
	//   - snapshot: input aggregated for this frame
	Update(dt time.Duration, snapshot input.InputSnapshot)
}

// firstPersonController defines free-look and walking controls.
type firstPersonController interface {
	// Yaw returns the current horizontal angle in radians.
	Yaw() float32

	// Pitch returns the current vertical angle in radians.
	Pitch() float32

	// SetYaw force-sets yaw and re-derives the target from the current position.
	//
	// Parameters:
	//   - yaw: horizontal angle in radians
	SetYaw(yaw float32)

	// ForwardRay returns the ray from the eye along the look direction, used for screen-centre picking.
	//
	// Returns:
	//   - common.Ray: the forward ray
	ForwardRay() common.Ray

	// SetOnInteract registers the callback for clicks on tagged interactables.
	//
	// Parameters:
	//   - fn: receives the tag of the interactable that was hit
	SetOnInteract(fn func(tag string))
}

// cinematicController defines scripted camera moves.
type cinematicController interface {
	// SetLookAt moves the camera to pos looking at target. When animated, the move eases over
	// the configured transition duration; otherwise the pose is applied before returning.
	//
	// Parameters:
	//   - pos: destination eye position
	//   - target: destination look-at point
	//   - animated: true to ease, false to jump
	//
	// Returns:
	//   - *transition.Transition: handle that settles when the move ends or is replaced
	SetLookAt(pos, target mgl32.Vec3, animated bool) *transition.Transition

	// Teleport applies pose immediately, preempting any in-flight transition.
	//
	// Parameters:
	//   - pose: the pose to apply
	//
	// Returns:
	//   - *transition.Transition: an already settled handle
	Teleport(pose common.Pose) *transition.Transition

	// Lock stops free look, walking and collision, and remembers the current pose for ResetZoom.
	// Locking an already locked controller keeps the first remembered pose.
	//
	// Returns:
	//   - common.Pose: the remembered pose
	Lock() common.Pose

	// Unlock resumes free look and walking.
	Unlock()

	// Locked reports whether free look and walking are disabled.
	Locked() bool

	// ResetZoom animates back to the pose remembered by Lock and unlocks once it arrives.
	// If the controller is not locked it returns a settled handle at the current pose.
	//
	// Returns:
	//   - *transition.Transition: handle for the return move
	ResetZoom() *transition.Transition

	// Transitioning reports whether an animated move is in flight.
	Transitioning() bool
}
