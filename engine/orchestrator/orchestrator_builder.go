package orchestrator

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-room/engine/config"
	"github.com/Carmen-Shannon/oxy-room/engine/input"
	"github.com/Carmen-Shannon/oxy-room/engine/room"
)

// OrchestratorOption is a functional option for configuring an Orchestrator.
type OrchestratorOption func(*orchestratorImpl)

// WithTuning sets the intro delay, capture-restore delay and ready timeout.
//
// Parameters:
//   - t: the tuning values
//
// Returns:
//   - OrchestratorOption: functional option to apply the tuning
func WithTuning(t config.Tuning) OrchestratorOption {
	return func(o *orchestratorImpl) {
		o.introDelay = t.IntroDelay
		o.restoreDelay = t.CaptureRestoreDelay
		o.readyTimeout = t.ReadyTimeout
	}
}

// WithLayout sets the scripted poses and spawn yaw.
//
// Parameters:
//   - l: the room layout
//
// Returns:
//   - OrchestratorOption: functional option to set the layout
func WithLayout(l *room.Layout) OrchestratorOption {
	return func(o *orchestratorImpl) {
		o.layout = l
	}
}

// WithAggregator sets the input aggregator the orchestrator snapshots each frame.
//
// Parameters:
//   - a: the input aggregator
//
// Returns:
//   - OrchestratorOption: functional option to set the aggregator
func WithAggregator(a input.Aggregator) OrchestratorOption {
	return func(o *orchestratorImpl) {
		o.input = a
	}
}

// WithPointerCapture sets the pointer-capture primitives, usually the window.
//
// Parameters:
//   - pc: capture request/release
//
// Returns:
//   - OrchestratorOption: functional option to set pointer capture
func WithPointerCapture(pc PointerCapture) OrchestratorOption {
	return func(o *orchestratorImpl) {
		o.capture = pc
	}
}

// WithOnDetail registers a callback run when a zoom finishes opening (open = true)
// or closing (open = false).
//
// Parameters:
//   - fn: receives the zoom phase and whether its detail view is now shown
//
// Returns:
//   - OrchestratorOption: functional option to set the callback
func WithOnDetail(fn func(phase Phase, open bool)) OrchestratorOption {
	return func(o *orchestratorImpl) {
		o.onDetail = fn
	}
}

// WithOnInteract registers a callback for clicked tags that do not open a zoom.
//
// Parameters:
//   - fn: receives the clicked tag
//
// Returns:
//   - OrchestratorOption: functional option to set the callback
func WithOnInteract(fn func(tag string)) OrchestratorOption {
	return func(o *orchestratorImpl) {
		o.onInteract = fn
	}
}

// WithLogger sets the orchestrator's logger.
//
// Parameters:
//   - logger: the structured logger
//
// Returns:
//   - OrchestratorOption: functional option to set the logger
func WithLogger(logger *slog.Logger) OrchestratorOption {
	return func(o *orchestratorImpl) {
		o.logger = logger
	}
}
