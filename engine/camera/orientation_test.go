package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"pgregory.net/rapid"
)

func TestDirectionAxes(t *testing.T) {
	tests := []struct {
		name string
		yaw  float32
		want mgl32.Vec3
	}{
		{"zero faces -Z", 0, mgl32.Vec3{0, 0, -1}},
		{"pi faces +Z", math.Pi, mgl32.Vec3{0, 0, 1}},
		{"half pi faces -X", math.Pi / 2, mgl32.Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrientation(0.002, 0.01)
			o.SetYaw(tt.yaw)
			if got := o.Direction(); !got.ApproxEqualThreshold(tt.want, 1e-6) {
				t.Fatalf("Direction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyLookDeltaSigns(t *testing.T) {
	o := NewOrientation(0.01, 0.01)
	o.ApplyLookDelta(10, -5)
	if !mgl32.FloatEqual(o.Yaw(), -0.1) {
		t.Errorf("Yaw() = %v, want -0.1", o.Yaw())
	}
	if !mgl32.FloatEqual(o.Pitch(), 0.05) {
		t.Errorf("Pitch() = %v, want 0.05", o.Pitch())
	}
}

func TestApplyLookDeltaIgnoresNonFinite(t *testing.T) {
	o := NewOrientation(0.01, 0.01)
	if o.ApplyLookDelta(float32(math.NaN()), 1) {
		t.Fatal("NaN delta reported a change")
	}
	if o.ApplyLookDelta(1, float32(math.Inf(1))) {
		t.Fatal("Inf delta reported a change")
	}
	if o.Yaw() != 0 || o.Pitch() != 0 {
		t.Fatalf("orientation moved: yaw %v pitch %v", o.Yaw(), o.Pitch())
	}
}

func TestLookAtRoundTrip(t *testing.T) {
	o := NewOrientation(0.002, 0.01)
	origin := mgl32.Vec3{1, 2, 3}
	target := mgl32.Vec3{4, 3, -1}

	if !o.LookAt(origin, target) {
		t.Fatal("LookAt rejected a valid direction")
	}
	want := target.Sub(origin).Normalize()
	if got := o.Direction(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("Direction() = %v, want %v", got, want)
	}
}

func TestLookAtDegenerateKeepsState(t *testing.T) {
	o := NewOrientation(0.002, 0.01)
	o.SetYaw(1)
	if o.LookAt(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}) {
		t.Fatal("LookAt accepted a zero-length direction")
	}
	if o.Yaw() != 1 {
		t.Fatalf("Yaw() = %v, want 1", o.Yaw())
	}
}

func TestRightIsPerpendicularToForward(t *testing.T) {
	o := NewOrientation(0.002, 0.01)
	for _, yaw := range []float32{0, 0.7, -2.1, math.Pi} {
		o.SetYaw(yaw)
		if d := o.Forward().Dot(o.Right()); mgl32.Abs(d) > 1e-6 {
			t.Fatalf("yaw %v: forward·right = %v", yaw, d)
		}
	}
}

// No sequence of look deltas pushes pitch to or past ±π/2.
func TestPitchClamped(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		eps := rapid.Float32Range(0.001, 0.2).Draw(t, "eps")
		o := NewOrientation(rapid.Float32Range(0.0001, 1).Draw(t, "sensitivity"), eps)
		limit := float32(math.Pi/2) - eps

		deltas := rapid.SliceOfN(rapid.Float32Range(-1e5, 1e5), 1, 50).Draw(t, "dy")
		for _, dy := range deltas {
			o.ApplyLookDelta(0, dy)
			if p := o.Pitch(); p > limit || p < -limit {
				t.Fatalf("pitch %v outside ±%v", p, limit)
			}
			if d := o.Direction(); mgl32.Abs(d.Y()) >= 1 {
				t.Fatalf("direction %v degenerate", d)
			}
		}
	})
}
