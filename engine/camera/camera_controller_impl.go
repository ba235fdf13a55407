package camera

import (
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/oxy-room/common"
	"github.com/Carmen-Shannon/oxy-room/engine/collision"
	"github.com/Carmen-Shannon/oxy-room/engine/input"
	"github.com/Carmen-Shannon/oxy-room/engine/transition"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// It is owned by the frame loop; transition continuations run inside Update on the same goroutine.
type cameraControllerImpl struct {
	pose        common.Pose
	orientation *Orientation
	transitions transition.Engine
	resolver    collision.Resolver

	locked     bool
	lockedPose common.Pose

	// Movement settings
	sensitivity   float32
	pitchEpsilon  float32
	moveSpeed     float32
	joystickSpeed float32
	verticalSpeed float32
	groundLocked  bool
	radius        float32

	transitionDuration time.Duration

	interactables []Interactable
	interactRange float32
	onInteract    func(tag string)

	onTransitionStart func()
	logger            *slog.Logger
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new first-person controller at the origin facing -Z at eye height 2.3.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		pose: common.Pose{
			Position: mgl32.Vec3{0, 2.3, 0},
			Target:   mgl32.Vec3{0, 2.3, -1},
		},

		sensitivity:   0.002,
		pitchEpsilon:  0.01,
		moveSpeed:     3.0,
		joystickSpeed: 4.5,
		verticalSpeed: 2.0,
		groundLocked:  true,
		radius:        0.75,

		transitionDuration: 1500 * time.Millisecond,
		interactRange:      12,
		logger:             slog.Default(),
	}

	for _, option := range options {
		option(cc)
	}

	if !cc.pose.Finite() {
		panic("camera: initial pose must be finite")
	}
	if cc.radius <= 0 {
		panic("camera: collision radius must be positive")
	}

	cc.orientation = NewOrientation(cc.sensitivity, cc.pitchEpsilon)
	cc.orientation.LookAt(cc.pose.Position, cc.pose.Target)
	cc.transitions = transition.NewEngine(
		transition.WithLogger(cc.logger),
		transition.WithOnStart(cc.transitionStarted),
	)
	return cc
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	return cc.pose.Position
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	return cc.pose.Target
}

func (cc *cameraControllerImpl) Pose() common.Pose {
	return cc.pose
}

func (cc *cameraControllerImpl) Update(dt time.Duration, snapshot input.InputSnapshot) {
	if cc.transitions.Tick(dt, cc.applyTransitionPose) {
		return
	}
	if cc.locked {
		return
	}

	seconds := float32(dt.Seconds())
	if seconds < 0 || !common.IsFinite(seconds) {
		cc.logger.Debug("frame skipped", "reason", "invalid dt", "dt", dt)
		return
	}

	looked := cc.orientation.ApplyLookDelta(snapshot.Look.X(), snapshot.Look.Y())

	next := cc.pose.Position
	if move := cc.movement(snapshot.Intent, seconds); move != (mgl32.Vec3{}) {
		intended := cc.pose.Position.Add(move)
		if cc.resolver != nil {
			next = cc.resolver.Resolve(cc.pose.Position, intended, cc.radius)
		} else {
			next = intended
		}
	}

	if !common.IsFiniteVec3(next) {
		cc.logger.Debug("frame skipped", "reason", "non-finite position", "position", next)
		return
	}

	if looked || next != cc.pose.Position {
		target := cc.orientation.LookTarget(next)
		if !common.IsFiniteVec3(target) {
			cc.logger.Debug("frame skipped", "reason", "non-finite target", "target", target)
			return
		}
		cc.pose = common.Pose{Position: next, Target: target}
	}

	if snapshot.Clicked && snapshot.Captured {
		cc.pick()
	}
}

// --- firstPersonController implementation ---

func (cc *cameraControllerImpl) Yaw() float32 {
	return cc.orientation.Yaw()
}

func (cc *cameraControllerImpl) Pitch() float32 {
	return cc.orientation.Pitch()
}

func (cc *cameraControllerImpl) SetYaw(yaw float32) {
	cc.orientation.SetYaw(yaw)
	cc.pose.Target = cc.orientation.LookTarget(cc.pose.Position)
}

func (cc *cameraControllerImpl) ForwardRay() common.Ray {
	return common.Ray{Origin: cc.pose.Position, Dir: cc.orientation.Direction()}
}

func (cc *cameraControllerImpl) SetOnInteract(fn func(tag string)) {
	cc.onInteract = fn
}

// --- cinematicController implementation ---

func (cc *cameraControllerImpl) SetLookAt(pos, target mgl32.Vec3, animated bool) *transition.Transition {
	to := common.Pose{Position: pos, Target: target}
	if !to.Finite() {
		cc.logger.Debug("set look-at rejected", "reason", "non-finite pose")
		return transition.Failed(ErrInvalidPose)
	}

	if !animated {
		return cc.Teleport(to)
	}
	return cc.transitions.AnimateTo(cc.pose, to, cc.transitionDuration)
}

func (cc *cameraControllerImpl) Teleport(pose common.Pose) *transition.Transition {
	if !pose.Finite() {
		return transition.Failed(ErrInvalidPose)
	}
	handle := cc.transitions.Teleport(pose)
	cc.applyTransitionPose(pose)
	return handle
}

func (cc *cameraControllerImpl) Lock() common.Pose {
	if !cc.locked {
		cc.locked = true
		cc.lockedPose = cc.pose
	}
	return cc.lockedPose
}

func (cc *cameraControllerImpl) Unlock() {
	cc.locked = false
}

func (cc *cameraControllerImpl) Locked() bool {
	return cc.locked
}

func (cc *cameraControllerImpl) ResetZoom() *transition.Transition {
	if !cc.locked {
		return transition.Completed(cc.pose)
	}
	back := cc.lockedPose
	return cc.SetLookAt(back.Position, back.Target, true).Then(func(err error) {
		if err == nil {
			cc.Unlock()
		}
	})
}

func (cc *cameraControllerImpl) Transitioning() bool {
	return cc.transitions.Active() != nil
}

// --- internal helpers ---

// applyTransitionPose commits an interpolated or teleported pose and re-derives orientation from it.
// The target is kept exactly as given.
func (cc *cameraControllerImpl) applyTransitionPose(p common.Pose) {
	cc.pose = p
	cc.orientation.LookAt(p.Position, p.Target)
}

// movement converts intent into a world-space displacement for this frame.
func (cc *cameraControllerImpl) movement(intent input.MoveIntent, seconds float32) mgl32.Vec3 {
	var planar mgl32.Vec2
	if kb := intent.Keyboard(); kb != (mgl32.Vec2{}) {
		planar = kb.Normalize().Mul(cc.moveSpeed)
	}
	if joy := common.ClampVec2Len(intent.Joystick, 1); joy != (mgl32.Vec2{}) {
		planar = planar.Add(joy.Mul(cc.joystickSpeed))
	}

	move := cc.orientation.Right().Mul(planar.X()).Add(cc.orientation.Forward().Mul(planar.Y()))
	if !cc.groundLocked {
		move[1] = intent.Vertical() * cc.verticalSpeed
	}
	return move.Mul(seconds)
}

func (cc *cameraControllerImpl) pick() {
	if cc.onInteract == nil || len(cc.interactables) == 0 {
		return
	}
	tag, ok := Pick(cc.ForwardRay(), cc.interactables, cc.interactRange)
	if !ok {
		return
	}
	cc.logger.Debug("interactable clicked", "tag", tag)
	cc.onInteract(tag)
}

func (cc *cameraControllerImpl) transitionStarted() {
	if cc.onTransitionStart != nil {
		cc.onTransitionStart()
	}
}
