package collision

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"pgregory.net/rapid"
)

const testRadius = 0.75

func walk(r Resolver, from, to mgl32.Vec3, step float32, frames int) mgl32.Vec3 {
	pos := from
	for range frames {
		dir := to.Sub(pos)
		l := dir.Len()
		if l < 1e-6 {
			break
		}
		if l > step {
			dir = dir.Mul(step / l)
		}
		pos = r.Resolve(pos, pos.Add(dir), testRadius)
	}
	return pos
}

func TestResolveStopsAtBoxFace(t *testing.T) {
	const padding = 0.1
	r := NewResolver(
		WithObstacles(Obstacle{Name: "desk", MinX: 2, MaxX: 3, MinZ: -1, MaxZ: 1}),
		WithPadding(padding),
	)

	end := walk(r, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{5, 0, 0}, 0.05, 200)

	want := float32(2 - testRadius - padding)
	if end[0] > want+1e-4 || end[0] < want-0.05 {
		t.Fatalf("expected to stop near x=%v, got %v", want, end[0])
	}
	if r.Penetrates(end, testRadius) {
		t.Fatalf("resting position %v penetrates the desk", end)
	}

	// Sliding along Z past the face stays unobstructed.
	moved := r.Resolve(end, end.Add(mgl32.Vec3{0, 0, 0.5}), testRadius)
	if !moved.ApproxEqualThreshold(end.Add(mgl32.Vec3{0, 0, 0.5}), 1e-6) {
		t.Fatalf("expected full Z movement, got %v from %v", moved, end)
	}
}

func TestResolveSingleLargeMoveDoesNotTunnel(t *testing.T) {
	r := NewResolver(WithObstacles(Obstacle{MinX: 2, MaxX: 2.2, MinZ: -1, MaxZ: 1}), WithPadding(0))

	got := r.Resolve(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{5, 0, 0}, testRadius)
	if got[0] > 2-testRadius+1e-4 {
		t.Fatalf("expected the circle to stop before the wall, got %v", got)
	}
}

func TestResolveWallSlide(t *testing.T) {
	r := NewResolver(WithObstacles(Obstacle{Name: "wall", MinX: -10, MaxX: 10, MinZ: -6, MaxZ: -5}), WithPadding(0))

	start := mgl32.Vec3{0, 2.3, -5 + testRadius + 0.01}
	got := r.Resolve(start, start.Add(mgl32.Vec3{0.1, 0, -0.1}), testRadius)

	if mgl32.Abs(got[0]-0.1) > 1e-6 {
		t.Errorf("expected X slide to 0.1, got %v", got[0])
	}
	if got[2] != start[2] {
		t.Errorf("expected Z blocked at %v, got %v", start[2], got[2])
	}
	if got[1] != 2.3 {
		t.Errorf("expected height to pass through, got %v", got[1])
	}
}

func TestResolveCornerBlocksBothAxes(t *testing.T) {
	r := NewResolver(
		WithObstacles(
			Obstacle{Name: "north", MinX: -5, MaxX: 5, MinZ: -6, MaxZ: -5},
			Obstacle{Name: "east", MinX: 5, MaxX: 6, MinZ: -5, MaxZ: 5},
		),
		WithPadding(0),
	)

	start := mgl32.Vec3{5 - testRadius - 0.01, 0, -5 + testRadius + 0.01}
	got := r.Resolve(start, start.Add(mgl32.Vec3{0.1, 0, -0.1}), testRadius)
	if got != start {
		t.Fatalf("expected corner to hold position %v, got %v", start, got)
	}
}

func TestResolveNonFiniteKeepsCurrent(t *testing.T) {
	r := NewResolver(WithObstacles(Obstacle{MinX: 2, MaxX: 3, MinZ: -1, MaxZ: 1}))
	nan := float32(math.NaN())
	current := mgl32.Vec3{0, 0, 0}

	if got := r.Resolve(current, mgl32.Vec3{nan, 0, 0}, testRadius); got != current {
		t.Fatalf("expected current position to be kept, got %v", got)
	}
	inf := float32(math.Inf(1))
	if got := r.Resolve(current, mgl32.Vec3{0, 0, inf}, testRadius); got != current {
		t.Fatalf("expected current position to be kept, got %v", got)
	}
}

func TestResolveEscapesFromInside(t *testing.T) {
	r := NewResolver(WithObstacles(Obstacle{MinX: -1, MaxX: 1, MinZ: -1, MaxZ: 1}), WithPadding(0))

	inside := mgl32.Vec3{0.9, 0, 0}
	got := r.Resolve(inside, mgl32.Vec3{1.2, 0, 0}, testRadius)
	if got[0] != 1.2 {
		t.Fatalf("expected move out of the footprint to be allowed, got %v", got)
	}
	got = r.Resolve(inside, mgl32.Vec3{0.5, 0, 0}, testRadius)
	if got != inside {
		t.Fatalf("expected deeper move to be blocked, got %v", got)
	}
}

func obstacleGen() *rapid.Generator[Obstacle] {
	return rapid.Custom(func(t *rapid.T) Obstacle {
		cx := rapid.Float32Range(-8, 8).Draw(t, "cx")
		cz := rapid.Float32Range(-8, 8).Draw(t, "cz")
		hx := rapid.Float32Range(0.1, 2).Draw(t, "hx")
		hz := rapid.Float32Range(0.1, 2).Draw(t, "hz")
		return NewObstacle("generated", cx, cz, hx, hz)
	})
}

func TestResolveNeverPenetrates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		obstacles := rapid.SliceOfN(obstacleGen(), 1, 6).Draw(t, "obstacles")
		padding := rapid.Float32Range(0, 0.3).Draw(t, "padding")
		r := NewResolver(WithObstacles(obstacles...), WithPadding(padding))

		pos := mgl32.Vec3{
			rapid.Float32Range(-12, 12).Draw(t, "x"),
			0,
			rapid.Float32Range(-12, 12).Draw(t, "z"),
		}
		if r.Penetrates(pos, testRadius) {
			t.Skip("start position inside an obstacle")
		}

		moves := rapid.IntRange(1, 60).Draw(t, "moves")
		for i := range moves {
			d := mgl32.Vec3{
				rapid.Float32Range(-1.5, 1.5).Draw(t, "dx"),
				0,
				rapid.Float32Range(-1.5, 1.5).Draw(t, "dz"),
			}
			pos = r.Resolve(pos, pos.Add(d), testRadius)
			if r.Penetrates(pos, testRadius) {
				t.Fatalf("move %d: position %v penetrates an obstacle", i, pos)
			}
		}
	})
}

func TestResolveNoFalsePositives(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		// Obstacles live in x > 20; moves stay in x < 10.
		r := NewResolver(WithObstacles(
			NewObstacle("far", 25, 0, 2, 2),
			NewObstacle("farther", 30, 5, 1, 1),
		))
		from := mgl32.Vec3{
			rapid.Float32Range(-10, 10).Draw(t, "fx"),
			rapid.Float32Range(0, 3).Draw(t, "fy"),
			rapid.Float32Range(-10, 10).Draw(t, "fz"),
		}
		to := mgl32.Vec3{
			rapid.Float32Range(-10, 10).Draw(t, "tx"),
			rapid.Float32Range(0, 3).Draw(t, "ty"),
			rapid.Float32Range(-10, 10).Draw(t, "tz"),
		}
		if got := r.Resolve(from, to, testRadius); got != to {
			t.Fatalf("expected unobstructed move to %v, got %v", to, got)
		}
	})
}
