package transition

import "log/slog"

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*engineImpl)

// WithLogger sets the logger used for preemption and completion events.
//
// Parameters:
//   - logger: the structured logger
//
// Returns:
//   - EngineOption: functional option to set the logger
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *engineImpl) {
		e.logger = logger
	}
}

// WithOnStart registers a hook run whenever a new animated transition begins.
// The camera controller uses it to clear held input.
//
// Parameters:
//   - fn: hook to run
//
// Returns:
//   - EngineOption: functional option to set the start hook
func WithOnStart(fn func()) EngineOption {
	return func(e *engineImpl) {
		e.onStart = fn
	}
}
