package input

import (
	"github.com/Carmen-Shannon/oxy-room/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Aggregator collects raw window events between frames and turns them into one InputSnapshot per tick.
// Event methods only record state; nothing is applied to the camera until Snapshot is taken.
// An Aggregator is owned by the frame loop and is not safe for concurrent use.
type Aggregator interface {
	// KeyDown records a key press. Unmapped keys are ignored.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common key codes)
	//
	// Returns:
	//   - Action: the action the key maps to, or ActionNone
	KeyDown(keyCode uint32) Action

	// KeyUp records a key release. Releasing a mapped key clears every held flag
	// unless reset-on-key-up was disabled, in which case only that action clears.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// MouseMove accumulates a raw pointer delta. Deltas are dropped while the pointer is not captured.
	//
	// Parameters:
	//   - dx: horizontal delta in pixels
	//   - dy: vertical delta in pixels
	MouseMove(dx, dy float32)

	// SetCaptured records pointer-capture state. Losing capture resets all input.
	//
	// Parameters:
	//   - captured: whether the pointer is now captured
	SetCaptured(captured bool)

	// Captured reports the last recorded pointer-capture state.
	Captured() bool

	// FocusChanged records window focus. Losing focus resets all input.
	//
	// Parameters:
	//   - focused: whether the window now has focus
	FocusChanged(focused bool)

	// SetJoystick sets the virtual-joystick vector. Each component is clamped to [-1, 1];
	// non-finite components become zero.
	//
	// Parameters:
	//   - x: strafe component, right positive
	//   - y: forward component, forward positive
	SetJoystick(x, y float32)

	// AddTouchLook accumulates a touch-drag look delta in touch pixels.
	//
	// Parameters:
	//   - dx: horizontal drag delta
	//   - dy: vertical drag delta
	AddTouchLook(dx, dy float32)

	// Click records a primary click since the last snapshot.
	Click()

	// SetGroundLocked toggles whether vertical thrust actions are honored.
	// Locking clears any held vertical flags.
	//
	// Parameters:
	//   - locked: true to ignore vertical thrust
	SetGroundLocked(locked bool)

	// Snapshot builds the InputSnapshot for this tick and consumes pending look deltas and clicks.
	//
	// Returns:
	//   - InputSnapshot: the aggregated input
	Snapshot() InputSnapshot

	// Clear drops all held flags, the joystick vector, pending look deltas and clicks.
	// Capture state is kept.
	Clear()
}

var _ Aggregator = &aggregatorImpl{}

type aggregatorImpl struct {
	keymap       Keymap
	groundLocked bool
	resetOnKeyUp bool

	mouseSensitivity float32
	touchSensitivity float32

	intent    MoveIntent
	mouseLook mgl32.Vec2
	touchLook mgl32.Vec2
	clicked   bool
	captured  bool
}

// NewAggregator creates a new Aggregator with the WASD/arrow keymap, ground lock on,
// and reset-on-key-up enabled.
//
// Parameters:
//   - options: functional options to configure the aggregator
//
// Returns:
//   - Aggregator: the new input aggregator
func NewAggregator(options ...AggregatorOption) Aggregator {
	a := &aggregatorImpl{
		keymap:           DefaultKeymap(),
		groundLocked:     true,
		resetOnKeyUp:     true,
		mouseSensitivity: 0.002,
		touchSensitivity: 0.004,
	}

	for _, opt := range options {
		opt(a)
	}

	if a.keymap == nil {
		a.keymap = Keymap{}
	}
	if a.mouseSensitivity <= 0 || a.touchSensitivity <= 0 {
		panic("input: look sensitivities must be positive")
	}

	return a
}

func (a *aggregatorImpl) KeyDown(keyCode uint32) Action {
	action := a.keymap.Lookup(keyCode)
	a.setFlag(action, true)
	return action
}

func (a *aggregatorImpl) KeyUp(keyCode uint32) {
	action := a.keymap.Lookup(keyCode)
	if action == ActionNone {
		return
	}
	if a.resetOnKeyUp {
		a.resetFlags()
		return
	}
	a.setFlag(action, false)
}

func (a *aggregatorImpl) MouseMove(dx, dy float32) {
	if !a.captured || !common.IsFinite(dx) || !common.IsFinite(dy) {
		return
	}
	a.mouseLook = a.mouseLook.Add(mgl32.Vec2{dx, dy})
}

func (a *aggregatorImpl) SetCaptured(captured bool) {
	if a.captured && !captured {
		a.Clear()
	}
	a.captured = captured
}

func (a *aggregatorImpl) Captured() bool {
	return a.captured
}

func (a *aggregatorImpl) FocusChanged(focused bool) {
	if !focused {
		a.Clear()
	}
}

func (a *aggregatorImpl) SetJoystick(x, y float32) {
	a.intent.Joystick = mgl32.Vec2{clampUnit(x), clampUnit(y)}
}

func (a *aggregatorImpl) AddTouchLook(dx, dy float32) {
	if !common.IsFinite(dx) || !common.IsFinite(dy) {
		return
	}
	a.touchLook = a.touchLook.Add(mgl32.Vec2{dx, dy})
}

func (a *aggregatorImpl) Click() {
	a.clicked = true
}

func (a *aggregatorImpl) SetGroundLocked(locked bool) {
	a.groundLocked = locked
	if locked {
		a.intent.Up = false
		a.intent.Down = false
	}
}

func (a *aggregatorImpl) Snapshot() InputSnapshot {
	scale := a.touchSensitivity / a.mouseSensitivity
	snap := InputSnapshot{
		Intent:   a.intent,
		Look:     a.mouseLook.Add(a.touchLook.Mul(scale)),
		Captured: a.captured,
		Clicked:  a.clicked,
	}

	a.mouseLook = mgl32.Vec2{}
	a.touchLook = mgl32.Vec2{}
	a.clicked = false
	return snap
}

func (a *aggregatorImpl) Clear() {
	a.intent = MoveIntent{}
	a.mouseLook = mgl32.Vec2{}
	a.touchLook = mgl32.Vec2{}
	a.clicked = false
}

func (a *aggregatorImpl) setFlag(action Action, held bool) {
	switch action {
	case ActionForward:
		a.intent.Forward = held
	case ActionBackward:
		a.intent.Backward = held
	case ActionLeft:
		a.intent.Left = held
	case ActionRight:
		a.intent.Right = held
	case ActionUp:
		if !a.groundLocked || !held {
			a.intent.Up = held
		}
	case ActionDown:
		if !a.groundLocked || !held {
			a.intent.Down = held
		}
	}
}

// resetFlags clears the digital flags and leaves the analog joystick alone.
func (a *aggregatorImpl) resetFlags() {
	joy := a.intent.Joystick
	a.intent = MoveIntent{Joystick: joy}
}

func clampUnit(v float32) float32 {
	if !common.IsFinite(v) {
		return 0
	}
	return mgl32.Clamp(v, -1, 1)
}
