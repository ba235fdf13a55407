package transition

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-room/common"
	"github.com/go-gl/mathgl/mgl32"
	"pgregory.net/rapid"
)

var (
	origin = common.Pose{Position: mgl32.Vec3{0, 2.3, 0}, Target: mgl32.Vec3{0, 2.3, -1}}
	board  = common.Pose{Position: mgl32.Vec3{4, 2, -6}, Target: mgl32.Vec3{4, 2, -9}}
)

func run(e Engine, frames int, dt time.Duration) (last common.Pose) {
	for range frames {
		e.Tick(dt, func(p common.Pose) { last = p })
	}
	return last
}

func TestAnimateToConverges(t *testing.T) {
	e := NewEngine()
	tr := e.AnimateTo(origin, board, time.Second)

	got := run(e, 61, time.Second/60)
	if got != board {
		t.Fatalf("final pose = %+v, want %+v", got, board)
	}
	if !tr.Settled() || tr.Err() != nil {
		t.Fatalf("settled = %v, err = %v; want settled without error", tr.Settled(), tr.Err())
	}
	if e.Active() != nil {
		t.Fatal("engine still has an active transition")
	}
}

func TestAnimateToEasesOut(t *testing.T) {
	e := NewEngine()
	e.AnimateTo(origin, board, time.Second)

	var half common.Pose
	e.Tick(500*time.Millisecond, func(p common.Pose) { half = p })

	// 1 - 0.5^3
	want := common.LerpVec3(origin.Position, board.Position, 0.875)
	if !half.Position.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("halfway position = %v, want %v", half.Position, want)
	}
}

func TestTickWithoutTransitionOnlyAdvancesClock(t *testing.T) {
	e := NewEngine()
	called := false
	if e.Tick(time.Second, func(common.Pose) { called = true }) {
		t.Fatal("Tick reported an active transition")
	}
	if called {
		t.Fatal("apply called without a transition")
	}
	if e.Now() != time.Second {
		t.Fatalf("Now() = %v, want 1s", e.Now())
	}
}

func TestOverridePreemptsPrevious(t *testing.T) {
	e := NewEngine()
	first := e.AnimateTo(origin, board, time.Second)
	run(e, 10, time.Second/60)

	var firstErr error
	calls := 0
	first.Then(func(err error) { calls++; firstErr = err })

	second := e.AnimateTo(board, origin, time.Second)
	if !errors.Is(firstErr, ErrPreempted) || calls != 1 {
		t.Fatalf("first settled %d times with %v, want once with ErrPreempted", calls, firstErr)
	}

	got := run(e, 61, time.Second/60)
	if got != origin {
		t.Fatalf("final pose = %+v, want second target %+v", got, origin)
	}
	if second.Err() != nil || calls != 1 {
		t.Fatalf("second err = %v, first calls = %d", second.Err(), calls)
	}
}

func TestTeleportPreemptsAndCompletes(t *testing.T) {
	e := NewEngine()
	anim := e.AnimateTo(origin, board, time.Second)
	tp := e.Teleport(board)

	if !errors.Is(anim.Err(), ErrPreempted) {
		t.Fatalf("animation err = %v, want ErrPreempted", anim.Err())
	}
	if !tp.Settled() || tp.Err() != nil || tp.To != board {
		t.Fatalf("teleport handle = settled %v err %v to %+v", tp.Settled(), tp.Err(), tp.To)
	}

	ran := false
	tp.Then(func(err error) { ran = err == nil })
	if !ran {
		t.Fatal("Then on a settled handle did not run immediately")
	}
}

func TestZeroDurationIsTeleport(t *testing.T) {
	e := NewEngine()
	tr := e.AnimateTo(origin, board, 0)
	if !tr.Settled() || e.Active() != nil {
		t.Fatal("zero-duration transition left active")
	}
}

func TestOnStartHook(t *testing.T) {
	starts := 0
	e := NewEngine(WithOnStart(func() { starts++ }))
	e.AnimateTo(origin, board, time.Second)
	e.Teleport(origin)
	if starts != 1 {
		t.Fatalf("onStart ran %d times, want 1", starts)
	}
}

func TestContinuationSeesFinalPoseAndMayChain(t *testing.T) {
	e := NewEngine()
	var committed common.Pose
	apply := func(p common.Pose) { committed = p }

	var chained *Transition
	e.AnimateTo(origin, board, 100*time.Millisecond).Then(func(err error) {
		if committed != board {
			t.Errorf("continuation saw %+v, want %+v", committed, board)
		}
		chained = e.AnimateTo(committed, origin, 100*time.Millisecond)
	})

	for range 20 {
		e.Tick(10*time.Millisecond, apply)
	}
	if chained == nil || !chained.Settled() || committed != origin {
		t.Fatalf("chained transition did not complete: committed %+v", committed)
	}
}

func TestWait(t *testing.T) {
	e := NewEngine()
	tr := e.AnimateTo(origin, board, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := tr.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait() = %v, want deadline exceeded", err)
	}

	go e.Tick(2*time.Second, nil)
	if err := tr.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() = %v, want nil", err)
	}
}

// Every started transition settles exactly once, and only the last one succeeds.
func TestSettlesExactlyOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := NewEngine()
		n := rapid.IntRange(1, 8).Draw(t, "n")
		counts := make([]int, n)
		errs := make([]error, n)

		for i := range n {
			d := time.Duration(rapid.IntRange(1, 2000).Draw(t, "ms")) * time.Millisecond
			e.AnimateTo(origin, board, d).Then(func(err error) {
				counts[i]++
				errs[i] = err
			})
			for range rapid.IntRange(0, 5).Draw(t, "ticks") {
				e.Tick(time.Duration(rapid.IntRange(1, 100).Draw(t, "dt"))*time.Millisecond, nil)
			}
		}
		for e.Active() != nil {
			e.Tick(100*time.Millisecond, nil)
		}

		for i := range n {
			if counts[i] != 1 {
				t.Fatalf("transition %d settled %d times", i, counts[i])
			}
			if errs[i] != nil && !errors.Is(errs[i], ErrPreempted) {
				t.Fatalf("transition %d settled with %v", i, errs[i])
			}
		}
		if errs[n-1] != nil {
			t.Fatalf("last transition settled with %v", errs[n-1])
		}
	})
}
