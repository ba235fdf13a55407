package orchestrator

import "errors"

var (
	// ErrNoController is returned when an action needs a camera controller that has not been attached.
	ErrNoController = errors.New("orchestrator: no camera controller attached")

	// ErrBusy is returned when a zoom is requested while another camera move is in flight.
	ErrBusy = errors.New("orchestrator: transition in progress")

	// ErrWrongPhase is returned when an action is not valid in the current phase.
	ErrWrongPhase = errors.New("orchestrator: action not valid in current phase")
)
