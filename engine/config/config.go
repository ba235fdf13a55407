// Package config holds the numeric tuning constants of the navigation core and
// loads environment overrides for them.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v11"
)

// Tuning is the full set of constants supplied to the controller, aggregator,
// collision resolver and orchestrator at construction. Every field can be
// overridden through a ROOM_* environment variable.
type Tuning struct {
	// MouseSensitivity converts raw pointer-capture deltas (pixels) into radians.
	MouseSensitivity float32 `env:"ROOM_MOUSE_SENSITIVITY" envDefault:"0.002"`
	// TouchLookSensitivity converts touch-drag deltas (pixels) into radians.
	TouchLookSensitivity float32 `env:"ROOM_TOUCH_LOOK_SENSITIVITY" envDefault:"0.004"`
	// MoveSpeed is the keyboard walking speed in world units per second.
	MoveSpeed float32 `env:"ROOM_MOVE_SPEED" envDefault:"3.0"`
	// JoystickSpeed is the virtual-joystick walking speed in world units per second.
	JoystickSpeed float32 `env:"ROOM_JOYSTICK_SPEED" envDefault:"4.5"`
	// VerticalSpeed is the free-flight up/down speed, used only when GroundLocked is false.
	VerticalSpeed float32 `env:"ROOM_VERTICAL_SPEED" envDefault:"2.0"`
	// GroundLocked disables vertical thrust, so the eye stays at the height it was placed at.
	GroundLocked bool `env:"ROOM_GROUND_LOCKED" envDefault:"true"`
	// PitchEpsilon keeps pitch strictly inside (-π/2, π/2).
	PitchEpsilon float32 `env:"ROOM_PITCH_EPSILON" envDefault:"0.01"`
	// CollisionRadius is the radius of the player silhouette at floor height.
	CollisionRadius float32 `env:"ROOM_COLLISION_RADIUS" envDefault:"0.75"`
	// CollisionPadding is added around every obstacle footprint.
	CollisionPadding float32 `env:"ROOM_COLLISION_PADDING" envDefault:"0.1"`
	// TransitionDuration is the length of zoom-in and zoom-out camera moves.
	TransitionDuration time.Duration `env:"ROOM_TRANSITION_DURATION" envDefault:"1500ms"`
	// IntroDelay is how long the scripted intro pose is held before first-person begins.
	IntroDelay time.Duration `env:"ROOM_INTRO_DELAY" envDefault:"2s"`
	// CaptureRestoreDelay is the wait between a zoom-out finishing and pointer capture being re-requested.
	CaptureRestoreDelay time.Duration `env:"ROOM_CAPTURE_RESTORE_DELAY" envDefault:"100ms"`
	// ReadyTimeout bounds how long the orchestrator waits for a controller before skipping the intro.
	ReadyTimeout time.Duration `env:"ROOM_READY_TIMEOUT" envDefault:"3s"`
	// InteractRange is the maximum distance at which a tagged object can be clicked.
	InteractRange float32 `env:"ROOM_INTERACT_RANGE" envDefault:"12"`
}

// Default returns the built-in tuning without consulting the environment.
//
// Returns:
//   - Tuning: default constants
func Default() Tuning {
	return Tuning{
		MouseSensitivity:     0.002,
		TouchLookSensitivity: 0.004,
		MoveSpeed:            3.0,
		JoystickSpeed:        4.5,
		VerticalSpeed:        2.0,
		GroundLocked:         true,
		PitchEpsilon:         0.01,
		CollisionRadius:      0.75,
		CollisionPadding:     0.1,
		TransitionDuration:   1500 * time.Millisecond,
		IntroDelay:           2 * time.Second,
		CaptureRestoreDelay:  100 * time.Millisecond,
		ReadyTimeout:         3 * time.Second,
		InteractRange:        12,
	}
}

// Load parses the tuning from the environment, falling back to defaults for unset variables.
//
// Returns:
//   - Tuning: the parsed tuning
//   - error: error if a variable is malformed or the result fails validation
func Load() (Tuning, error) {
	var t Tuning
	if err := env.Parse(&t); err != nil {
		return Tuning{}, fmt.Errorf("parse env: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects tunings that would break controller invariants.
//
// Returns:
//   - error: a descriptive error for the first invalid field, or nil
func (t Tuning) Validate() error {
	switch {
	case t.MouseSensitivity <= 0 || t.TouchLookSensitivity <= 0:
		return fmt.Errorf("invalid tuning: look sensitivities must be positive")
	case t.MoveSpeed < 0 || t.JoystickSpeed < 0 || t.VerticalSpeed < 0:
		return fmt.Errorf("invalid tuning: speeds must not be negative")
	case t.PitchEpsilon <= 0 || t.PitchEpsilon >= math.Pi/2:
		return fmt.Errorf("invalid tuning: pitch epsilon %v out of (0, π/2)", t.PitchEpsilon)
	case t.CollisionRadius <= 0 || t.CollisionPadding < 0:
		return fmt.Errorf("invalid tuning: collision radius must be positive and padding non-negative")
	case t.TransitionDuration < 0 || t.IntroDelay < 0 || t.CaptureRestoreDelay < 0 || t.ReadyTimeout <= 0:
		return fmt.Errorf("invalid tuning: durations must not be negative")
	}
	return nil
}
