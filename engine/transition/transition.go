package transition

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-room/common"
)

// ErrPreempted settles a transition that was replaced before it finished.
var ErrPreempted = errors.New("transition: preempted")

// Transition is a handle to one camera animation. It settles exactly once: with nil when the
// animation reaches its end pose, or with ErrPreempted when a newer transition or teleport
// replaces it. Continuations registered with Then run on the goroutine that settles it,
// which is the frame loop.
type Transition struct {
	From     common.Pose
	To       common.Pose
	Start    time.Duration
	Duration time.Duration

	mu      sync.Mutex
	done    chan struct{}
	settled bool
	err     error
	thens   []func(error)
}

func newTransition(from, to common.Pose, start, duration time.Duration) *Transition {
	return &Transition{
		From:     from,
		To:       to,
		Start:    start,
		Duration: duration,
		done:     make(chan struct{}),
	}
}

// Completed returns a transition that has already settled successfully at pose.
// Instant camera moves return it so callers can treat both paths alike.
//
// Parameters:
//   - pose: the pose that was applied
//
// Returns:
//   - *Transition: a settled handle
func Completed(pose common.Pose) *Transition {
	t := newTransition(pose, pose, 0, 0)
	t.settle(nil)
	return t
}

// Failed returns a transition that has already settled with err.
//
// Parameters:
//   - err: the settle error
//
// Returns:
//   - *Transition: a settled handle
func Failed(err error) *Transition {
	t := newTransition(common.Pose{}, common.Pose{}, 0, 0)
	t.settle(err)
	return t
}

// Then registers fn to run when the transition settles. If it has already settled fn runs immediately.
//
// Parameters:
//   - fn: continuation receiving the settle error
//
// Returns:
//   - *Transition: the same handle, for chaining
func (t *Transition) Then(fn func(error)) *Transition {
	t.mu.Lock()
	if !t.settled {
		t.thens = append(t.thens, fn)
		t.mu.Unlock()
		return t
	}
	err := t.err
	t.mu.Unlock()

	fn(err)
	return t
}

// Done returns a channel closed when the transition settles.
func (t *Transition) Done() <-chan struct{} {
	return t.done
}

// Err returns the settle error, or nil while the transition is still running.
func (t *Transition) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Settled reports whether the transition has finished either way.
func (t *Transition) Settled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.settled
}

// Wait blocks until the transition settles or ctx is done.
//
// Parameters:
//   - ctx: context bounding the wait
//
// Returns:
//   - error: the settle error, or ctx.Err() if the context ended first
func (t *Transition) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Progress returns the eased progress at the given clock time.
func (t *Transition) Progress(now time.Duration) float32 {
	if t.Duration <= 0 {
		return 1
	}
	linear := float32(now-t.Start) / float32(t.Duration)
	return common.EaseOutCubic(linear)
}

// PoseAt returns the interpolated pose at the given clock time. The end pose is returned exactly once progress reaches 1.
func (t *Transition) PoseAt(now time.Duration) common.Pose {
	p := t.Progress(now)
	if p >= 1 {
		return t.To
	}
	return t.From.Lerp(t.To, p)
}

func (t *Transition) settle(err error) bool {
	t.mu.Lock()
	if t.settled {
		t.mu.Unlock()
		return false
	}
	t.settled = true
	t.err = err
	thens := t.thens
	t.thens = nil
	close(t.done)
	t.mu.Unlock()

	for _, fn := range thens {
		fn(err)
	}
	return true
}
