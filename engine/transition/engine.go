package transition

import (
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/oxy-room/common"
)

// Engine runs at most one camera transition at a time against a simulated clock.
// The clock only moves when Tick is called, so the engine is deterministic under test.
type Engine interface {
	// AnimateTo starts an eased animation from one pose to another. An in-flight transition is
	// settled with ErrPreempted first. A non-positive duration behaves like Teleport.
	//
	// Parameters:
	//   - from: the starting pose, usually the camera's current pose
	//   - to: the destination pose
	//   - duration: animation length in simulated time
	//
	// Returns:
	//   - *Transition: handle that settles when the animation ends or is replaced
	AnimateTo(from, to common.Pose, duration time.Duration) *Transition

	// Teleport preempts any in-flight transition and returns a handle already settled at pose.
	// The caller applies the pose itself.
	//
	// Parameters:
	//   - pose: the pose being jumped to
	//
	// Returns:
	//   - *Transition: a settled handle
	Teleport(pose common.Pose) *Transition

	// Tick advances the clock by dt. If a transition is active, apply receives the interpolated
	// pose before the transition settles, so continuations observe the committed end pose.
	//
	// Parameters:
	//   - dt: elapsed simulated time
	//   - apply: receives the pose for this tick
	//
	// Returns:
	//   - bool: true if a transition was active during this tick
	Tick(dt time.Duration, apply func(common.Pose)) bool

	// Active returns the in-flight transition, or nil.
	Active() *Transition

	// Now returns the simulated clock.
	Now() time.Duration
}

var _ Engine = &engineImpl{}

type engineImpl struct {
	now     time.Duration
	active  *Transition
	onStart func()
	logger  *slog.Logger
}

// NewEngine creates a new transition Engine with its clock at zero.
//
// Parameters:
//   - options: functional options to configure the engine
//
// Returns:
//   - Engine: the new transition engine
func NewEngine(options ...EngineOption) Engine {
	e := &engineImpl{
		logger: slog.Default(),
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engineImpl) AnimateTo(from, to common.Pose, duration time.Duration) *Transition {
	if duration <= 0 {
		return e.Teleport(to)
	}

	e.preempt()
	t := newTransition(from, to, e.now, duration)
	e.active = t
	e.logger.Debug("transition started", "to", to.Position, "duration", duration)

	if e.onStart != nil {
		e.onStart()
	}
	return t
}

func (e *engineImpl) Teleport(pose common.Pose) *Transition {
	e.preempt()
	return Completed(pose)
}

func (e *engineImpl) Tick(dt time.Duration, apply func(common.Pose)) bool {
	if dt > 0 {
		e.now += dt
	}

	t := e.active
	if t == nil {
		return false
	}

	if apply != nil {
		apply(t.PoseAt(e.now))
	}

	if e.now-t.Start >= t.Duration {
		// Clear first so continuations may start the next transition.
		e.active = nil
		t.settle(nil)
		e.logger.Debug("transition finished", "to", t.To.Position)
	}
	return true
}

func (e *engineImpl) Active() *Transition {
	return e.active
}

func (e *engineImpl) Now() time.Duration {
	return e.now
}

func (e *engineImpl) preempt() {
	t := e.active
	if t == nil {
		return
	}
	e.active = nil
	if t.settle(ErrPreempted) {
		e.logger.Debug("transition preempted", "to", t.To.Position)
	}
}
