package input

// AggregatorOption is a functional option for configuring an Aggregator.
type AggregatorOption func(*aggregatorImpl)

// WithKeymap replaces the default key bindings.
//
// Parameters:
//   - keymap: key code to action bindings
//
// Returns:
//   - AggregatorOption: functional option to set the keymap
func WithKeymap(keymap Keymap) AggregatorOption {
	return func(a *aggregatorImpl) {
		a.keymap = keymap
	}
}

// WithGroundLocked controls whether vertical thrust keys are honored.
//
// Parameters:
//   - locked: true to ignore ActionUp/ActionDown
//
// Returns:
//   - AggregatorOption: functional option to set ground lock
func WithGroundLocked(locked bool) AggregatorOption {
	return func(a *aggregatorImpl) {
		a.groundLocked = locked
	}
}

// WithLookSensitivities sets the mouse and touch-look sensitivities so touch deltas
// can be expressed in mouse-pixel units.
//
// Parameters:
//   - mouse: radians per mouse pixel
//   - touch: radians per touch pixel
//
// Returns:
//   - AggregatorOption: functional option to set look sensitivities
func WithLookSensitivities(mouse, touch float32) AggregatorOption {
	return func(a *aggregatorImpl) {
		a.mouseSensitivity = mouse
		a.touchSensitivity = touch
	}
}

// WithResetOnKeyUp controls whether releasing any mapped key clears every held flag.
// Enabled by default so focus changes mid-press cannot leave a flag stuck.
//
// Parameters:
//   - reset: true to clear all flags on any mapped key-up
//
// Returns:
//   - AggregatorOption: functional option to set key-up reset behavior
func WithResetOnKeyUp(reset bool) AggregatorOption {
	return func(a *aggregatorImpl) {
		a.resetOnKeyUp = reset
	}
}
