package camera

import (
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/oxy-room/common"
	"github.com/Carmen-Shannon/oxy-room/engine/collision"
	"github.com/Carmen-Shannon/oxy-room/engine/config"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithTuning applies every numeric constant from a config.Tuning.
// Options listed after it override individual values.
//
// Parameters:
//   - t: the tuning values
//
// Returns:
//   - CameraControllerOption: functional option to apply the tuning
func WithTuning(t config.Tuning) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.sensitivity = t.MouseSensitivity
		cc.pitchEpsilon = t.PitchEpsilon
		cc.moveSpeed = t.MoveSpeed
		cc.joystickSpeed = t.JoystickSpeed
		cc.verticalSpeed = t.VerticalSpeed
		cc.groundLocked = t.GroundLocked
		cc.radius = t.CollisionRadius
		cc.transitionDuration = t.TransitionDuration
		cc.interactRange = t.InteractRange
	}
}

// WithPose sets the initial eye position and look-at point. Orientation is derived from them.
//
// Parameters:
//   - pose: the initial pose
//
// Returns:
//   - CameraControllerOption: functional option to set the initial pose
func WithPose(pose common.Pose) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pose = pose
	}
}

// WithSensitivity sets radians of rotation per mouse pixel.
//
// Parameters:
//   - s: look sensitivity
//
// Returns:
//   - CameraControllerOption: functional option to set the sensitivity
func WithSensitivity(s float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.sensitivity = s
	}
}

// WithMoveSpeed sets the keyboard walking speed in units per second.
//
// Parameters:
//   - speed: walking speed
//
// Returns:
//   - CameraControllerOption: functional option to set the walking speed
func WithMoveSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.moveSpeed = speed
	}
}

// WithJoystickSpeed sets the virtual-joystick speed at full deflection.
//
// Parameters:
//   - speed: joystick speed in units per second
//
// Returns:
//   - CameraControllerOption: functional option to set the joystick speed
func WithJoystickSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.joystickSpeed = speed
	}
}

// WithGroundLocked pins the eye height so vertical intent is ignored.
//
// Parameters:
//   - locked: true to ignore vertical intent
//
// Returns:
//   - CameraControllerOption: functional option to set ground lock
func WithGroundLocked(locked bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.groundLocked = locked
	}
}

// WithResolver sets the collision resolver used for free movement.
// Without one, movement is unconstrained.
//
// Parameters:
//   - r: the collision resolver
//
// Returns:
//   - CameraControllerOption: functional option to set the resolver
func WithResolver(r collision.Resolver) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.resolver = r
	}
}

// WithCollisionRadius sets the radius of the player silhouette.
//
// Parameters:
//   - radius: silhouette radius
//
// Returns:
//   - CameraControllerOption: functional option to set the radius
func WithCollisionRadius(radius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.radius = radius
	}
}

// WithTransitionDuration sets the duration of animated SetLookAt moves.
//
// Parameters:
//   - d: transition duration
//
// Returns:
//   - CameraControllerOption: functional option to set the duration
func WithTransitionDuration(d time.Duration) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.transitionDuration = d
	}
}

// WithInteractables sets the tagged objects that forward-ray clicks can hit.
//
// Parameters:
//   - items: the interactables
//
// Returns:
//   - CameraControllerOption: functional option to set the interactables
func WithInteractables(items ...Interactable) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.interactables = append([]Interactable(nil), items...)
	}
}

// WithOnInteract registers the interaction callback.
//
// Parameters:
//   - fn: receives the tag of the clicked interactable
//
// Returns:
//   - CameraControllerOption: functional option to set the callback
func WithOnInteract(fn func(tag string)) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.onInteract = fn
	}
}

// WithOnTransitionStart registers a hook run whenever an animated move begins,
// typically the aggregator's Clear.
//
// Parameters:
//   - fn: hook to run
//
// Returns:
//   - CameraControllerOption: functional option to set the hook
func WithOnTransitionStart(fn func()) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.onTransitionStart = fn
	}
}

// WithLogger sets the controller's logger.
//
// Parameters:
//   - logger: the structured logger
//
// Returns:
//   - CameraControllerOption: functional option to set the logger
func WithLogger(logger *slog.Logger) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.logger = logger
	}
}
