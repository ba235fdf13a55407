package simulation

import (
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/oxy-room/engine/config"
	"github.com/Carmen-Shannon/oxy-room/engine/room"
)

// RunnerOption is a functional option for configuring a Runner.
type RunnerOption func(*runnerImpl)

// WithLayout sets the room every session walks around in.
//
// Parameters:
//   - l: the room layout
//
// Returns:
//   - RunnerOption: option function to apply
func WithLayout(l *room.Layout) RunnerOption {
	return func(r *runnerImpl) {
		r.layout = l
	}
}

// WithTuning sets the constants handed to every session's controller and orchestrator.
//
// Parameters:
//   - t: the tuning
//
// Returns:
//   - RunnerOption: option function to apply
func WithTuning(t config.Tuning) RunnerOption {
	return func(r *runnerImpl) {
		r.tuning = t
	}
}

// WithSessions sets how many independent sessions a run plays.
//
// Parameters:
//   - n: session count
//
// Returns:
//   - RunnerOption: option function to apply
func WithSessions(n int) RunnerOption {
	return func(r *runnerImpl) {
		r.sessions = n
	}
}

// WithSeed sets the base seed. Session i is seeded from (seed, i), so equal seeds replay equal runs.
//
// Parameters:
//   - seed: base seed
//
// Returns:
//   - RunnerOption: option function to apply
func WithSeed(seed uint64) RunnerOption {
	return func(r *runnerImpl) {
		r.seed = seed
	}
}

// WithDuration sets the simulated length of each session.
//
// Parameters:
//   - d: simulated time per session
//
// Returns:
//   - RunnerOption: option function to apply
func WithDuration(d time.Duration) RunnerOption {
	return func(r *runnerImpl) {
		r.duration = d
	}
}

// WithFrameStep sets the fixed simulated frame delta.
//
// Parameters:
//   - step: time advanced per frame
//
// Returns:
//   - RunnerOption: option function to apply
func WithFrameStep(step time.Duration) RunnerOption {
	return func(r *runnerImpl) {
		r.step = step
	}
}

// WithWorkers sets the size of the worker pool sessions run on.
//
// Parameters:
//   - n: maximum concurrent sessions
//
// Returns:
//   - RunnerOption: option function to apply
func WithWorkers(n int) RunnerOption {
	return func(r *runnerImpl) {
		r.workers = n
	}
}

// WithCaptureDenyRate sets the fraction of pointer-capture requests the scripted window refuses.
//
// Parameters:
//   - rate: probability in [0, 1]
//
// Returns:
//   - RunnerOption: option function to apply
func WithCaptureDenyRate(rate float64) RunnerOption {
	return func(r *runnerImpl) {
		r.denyRate = rate
	}
}

// WithLogger sets the logger shared by the runner and every session component.
//
// Parameters:
//   - logger: the structured logger
//
// Returns:
//   - RunnerOption: option function to apply
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *runnerImpl) {
		r.logger = logger
	}
}
