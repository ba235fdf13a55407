package input

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-room/common"
	"github.com/go-gl/mathgl/mgl32"
	"pgregory.net/rapid"
)

func TestKeyboardIntent(t *testing.T) {
	tests := []struct {
		name string
		keys []uint32
		want mgl32.Vec2
	}{
		{"forward", []uint32{common.KeyW}, mgl32.Vec2{0, 1}},
		{"arrow back", []uint32{common.KeyDown}, mgl32.Vec2{0, -1}},
		{"strafe left", []uint32{common.KeyA}, mgl32.Vec2{-1, 0}},
		{"diagonal", []uint32{common.KeyW, common.KeyD}, mgl32.Vec2{1, 1}},
		{"opposites cancel", []uint32{common.KeyW, common.KeyS}, mgl32.Vec2{0, 0}},
		{"opposites cancel across keys", []uint32{common.KeyLeft, common.KeyD}, mgl32.Vec2{0, 0}},
		{"unmapped", []uint32{common.KeyM}, mgl32.Vec2{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAggregator()
			for _, k := range tt.keys {
				a.KeyDown(k)
			}
			if got := a.Snapshot().Intent.Keyboard(); got != tt.want {
				t.Fatalf("Keyboard() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyUpResetsAllFlags(t *testing.T) {
	a := NewAggregator()
	a.KeyDown(common.KeyW)
	a.KeyDown(common.KeyD)
	a.KeyUp(common.KeyW)

	if got := a.Snapshot().Intent; !got.Empty() {
		t.Fatalf("intent after key-up = %+v, want empty", got)
	}
}

func TestKeyUpPerActionWhenResetDisabled(t *testing.T) {
	a := NewAggregator(WithResetOnKeyUp(false))
	a.KeyDown(common.KeyW)
	a.KeyDown(common.KeyD)
	a.KeyUp(common.KeyW)

	if got := a.Snapshot().Intent.Keyboard(); got != (mgl32.Vec2{1, 0}) {
		t.Fatalf("Keyboard() = %v, want (1, 0)", got)
	}
}

func TestKeyUpUnmappedKeepsFlags(t *testing.T) {
	a := NewAggregator()
	a.KeyDown(common.KeyW)
	a.KeyUp(common.KeyM)

	if !a.Snapshot().Intent.Forward {
		t.Fatal("unmapped key-up cleared forward")
	}
}

func TestVerticalRespectsGroundLock(t *testing.T) {
	a := NewAggregator()
	a.KeyDown(common.KeySpace)
	if v := a.Snapshot().Intent.Vertical(); v != 0 {
		t.Fatalf("Vertical() while ground-locked = %v, want 0", v)
	}

	a.SetGroundLocked(false)
	a.KeyDown(common.KeySpace)
	if v := a.Snapshot().Intent.Vertical(); v != 1 {
		t.Fatalf("Vertical() = %v, want 1", v)
	}

	a.SetGroundLocked(true)
	if v := a.Snapshot().Intent.Vertical(); v != 0 {
		t.Fatalf("Vertical() after relock = %v, want 0", v)
	}
}

func TestMouseLookRequiresCapture(t *testing.T) {
	a := NewAggregator()
	a.MouseMove(10, 5)
	if got := a.Snapshot().Look; got != (mgl32.Vec2{}) {
		t.Fatalf("Look without capture = %v, want zero", got)
	}

	a.SetCaptured(true)
	a.MouseMove(10, 5)
	a.MouseMove(-4, 1)
	snap := a.Snapshot()
	if snap.Look != (mgl32.Vec2{6, 6}) {
		t.Fatalf("Look = %v, want (6, 6)", snap.Look)
	}
	if !snap.Captured {
		t.Fatal("snapshot not captured")
	}

	if got := a.Snapshot().Look; got != (mgl32.Vec2{}) {
		t.Fatalf("Look re-applied: %v", got)
	}
}

func TestTouchLookScaledToMouseUnits(t *testing.T) {
	a := NewAggregator(WithLookSensitivities(0.002, 0.004))
	a.AddTouchLook(3, -2)
	got := a.Snapshot().Look
	if !got.ApproxEqual(mgl32.Vec2{6, -4}) {
		t.Fatalf("Look = %v, want (6, -4)", got)
	}
	if got := a.Snapshot().Look; got != (mgl32.Vec2{}) {
		t.Fatalf("touch look not consumed: %v", got)
	}
}

func TestCaptureLossAndFocusLossReset(t *testing.T) {
	for _, lose := range []func(Aggregator){
		func(a Aggregator) { a.SetCaptured(false) },
		func(a Aggregator) { a.FocusChanged(false) },
	} {
		a := NewAggregator()
		a.SetCaptured(true)
		a.KeyDown(common.KeyW)
		a.SetJoystick(0.5, 0.5)
		a.MouseMove(3, 3)
		a.Click()
		lose(a)

		snap := a.Snapshot()
		if !snap.Intent.Empty() || snap.Look != (mgl32.Vec2{}) || snap.Clicked {
			t.Fatalf("snapshot after loss = %+v, want empty", snap)
		}
	}
}

func TestJoystickClamped(t *testing.T) {
	a := NewAggregator()
	a.SetJoystick(3, -7)
	if got := a.Snapshot().Intent.Joystick; got != (mgl32.Vec2{1, -1}) {
		t.Fatalf("Joystick = %v, want (1, -1)", got)
	}

	a.SetJoystick(float32(math.NaN()), 0.25)
	if got := a.Snapshot().Intent.Joystick; got != (mgl32.Vec2{0, 0.25}) {
		t.Fatalf("Joystick = %v, want (0, 0.25)", got)
	}
}

func TestClickConsumed(t *testing.T) {
	a := NewAggregator()
	a.Click()
	if !a.Snapshot().Clicked {
		t.Fatal("click not reported")
	}
	if a.Snapshot().Clicked {
		t.Fatal("click reported twice")
	}
}

type event struct {
	kind int
	key  uint32
}

var scriptKeys = []uint32{
	common.KeyW, common.KeyA, common.KeyS, common.KeyD,
	common.KeyUp, common.KeyDown, common.KeyLeft, common.KeyRight,
	common.KeySpace, common.KeyLeftShift, common.KeyM,
}

func eventGen() *rapid.Generator[event] {
	return rapid.Custom(func(t *rapid.T) event {
		return event{
			kind: rapid.IntRange(0, 4).Draw(t, "kind"),
			key:  rapid.SampledFrom(scriptKeys).Draw(t, "key"),
		}
	})
}

func apply(a Aggregator, e event) {
	switch e.kind {
	case 0:
		a.KeyDown(e.key)
	case 1:
		a.KeyUp(e.key)
	case 2:
		a.FocusChanged(false)
	case 3:
		a.SetCaptured(!a.Captured())
	case 4:
		a.Snapshot()
	}
}

// After a clear, the intent reflects only key-downs issued afterwards.
func TestNoStuckKeys(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		locked := rapid.Bool().Draw(t, "locked")
		a := NewAggregator(WithGroundLocked(locked))
		for _, e := range rapid.SliceOfN(eventGen(), 0, 40).Draw(t, "before") {
			apply(a, e)
		}
		a.Clear()

		ref := NewAggregator(WithGroundLocked(locked))
		for _, k := range rapid.SliceOfN(rapid.SampledFrom(scriptKeys), 0, 6).Draw(t, "after") {
			a.KeyDown(k)
			ref.KeyDown(k)
		}

		got, want := a.Snapshot().Intent, ref.Snapshot().Intent
		if got != want {
			t.Fatalf("intent = %+v, want %+v", got, want)
		}
	})
}
