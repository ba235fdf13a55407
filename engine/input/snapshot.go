package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Action is a logical movement action that one or more keys map to.
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionUp   // vertical thrust, ignored while ground-locked
	ActionDown // vertical thrust, ignored while ground-locked
)

// MoveIntent is the per-frame set of held movement flags plus the analog joystick vector.
// It is rebuilt from raw input state on every snapshot.
type MoveIntent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Up       bool
	Down     bool

	// Joystick is the virtual-joystick vector, each component in [-1, 1].
	// X is strafe (right positive), Y is forward (forward positive).
	Joystick mgl32.Vec2
}

// Keyboard returns the digital intent as a planar vector: X strafes right, Y walks forward.
// Opposite flags cancel to zero.
func (m MoveIntent) Keyboard() mgl32.Vec2 {
	return mgl32.Vec2{axis(m.Right, m.Left), axis(m.Forward, m.Backward)}
}

// Vertical returns +1 for up, -1 for down, 0 when neither or both are held.
func (m MoveIntent) Vertical() float32 {
	return axis(m.Up, m.Down)
}

// Empty reports whether the intent would produce no movement.
func (m MoveIntent) Empty() bool {
	return m.Keyboard() == (mgl32.Vec2{}) && m.Vertical() == 0 && m.Joystick == (mgl32.Vec2{})
}

func axis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// InputSnapshot is everything the frame update needs from input, assembled once per tick.
// Look deltas are consumed when the snapshot is taken and are never re-applied.
type InputSnapshot struct {
	// Intent is the movement state at snapshot time.
	Intent MoveIntent

	// Look is the combined look delta in mouse-pixel units: raw pointer-capture
	// movement plus touch-drag movement rescaled to the mouse sensitivity.
	Look mgl32.Vec2

	// Captured reports whether the pointer was captured when the snapshot was taken.
	Captured bool

	// Clicked reports a primary click since the previous snapshot.
	Clicked bool
}
