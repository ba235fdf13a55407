package simulation

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/Carmen-Shannon/oxy-room/common"
	"github.com/Carmen-Shannon/oxy-room/engine/camera"
	"github.com/Carmen-Shannon/oxy-room/engine/collision"
	"github.com/Carmen-Shannon/oxy-room/engine/config"
	"github.com/Carmen-Shannon/oxy-room/engine/input"
	"github.com/Carmen-Shannon/oxy-room/engine/orchestrator"
	"github.com/Carmen-Shannon/oxy-room/engine/room"
	"github.com/go-gl/mathgl/mgl32"
)

// movementKeys are the keys the scripted player presses and releases.
var movementKeys = []uint32{
	common.KeyW, common.KeyA, common.KeyS, common.KeyD,
	common.KeyUp, common.KeyDown, common.KeyLeft, common.KeyRight,
	common.KeySpace, common.KeyLeftShift,
}

// scriptedCapture grants pointer capture except for a seeded fraction of requests.
type scriptedCapture struct {
	rng      *rand.Rand
	denyRate float64
	denials  int
}

func (c *scriptedCapture) RequestPointerCapture() error {
	if c.rng.Float64() < c.denyRate {
		c.denials++
		return errCaptureDenied
	}
	return nil
}

func (c *scriptedCapture) ReleasePointerCapture() {}

// session is one player driving one orchestrator with a seeded random input script.
type session struct {
	id     int
	seed   uint64
	rng    *rand.Rand
	step   time.Duration
	frames int

	orch     orchestrator.Orchestrator
	ctrl     camera.CameraController
	agg      input.Aggregator
	resolver collision.Resolver
	capture  *scriptedCapture
	radius   float32

	held   map[uint32]bool
	result SessionResult
}

func newSession(id int, seed uint64, layout *room.Layout, tuning config.Tuning, step, duration time.Duration, denyRate float64, logger *slog.Logger) *session {
	rng := rand.New(rand.NewPCG(seed, uint64(id)))
	s := &session{
		id:     id,
		seed:   seed,
		rng:    rng,
		step:   step,
		frames: int(duration / step),
		radius: tuning.CollisionRadius,
		held:   make(map[uint32]bool),
		result: SessionResult{ID: id, Seed: seed},
	}
	logger = logger.With("session", id)

	s.capture = &scriptedCapture{rng: rng, denyRate: denyRate}
	s.agg = input.NewAggregator(
		input.WithGroundLocked(tuning.GroundLocked),
		input.WithLookSensitivities(tuning.MouseSensitivity, tuning.TouchLookSensitivity),
	)
	s.resolver = collision.NewResolver(
		collision.WithObstacles(layout.Obstacles()...),
		collision.WithPadding(tuning.CollisionPadding),
		collision.WithLogger(logger),
	)
	s.orch = orchestrator.NewOrchestrator(
		orchestrator.WithTuning(tuning),
		orchestrator.WithLayout(layout),
		orchestrator.WithAggregator(s.agg),
		orchestrator.WithPointerCapture(s.capture),
		orchestrator.WithOnDetail(func(_ orchestrator.Phase, open bool) {
			if open {
				s.result.Zooms++
			}
		}),
		orchestrator.WithOnInteract(func(string) { s.result.Interactions++ }),
		orchestrator.WithLogger(logger),
	)
	s.ctrl = camera.NewCameraController(
		camera.WithTuning(tuning),
		camera.WithPose(layout.Poses.Spawn.Pose()),
		camera.WithResolver(s.resolver),
		camera.WithInteractables(layout.Interactables()...),
		camera.WithOnTransitionStart(s.agg.Clear),
		camera.WithLogger(logger),
	)
	s.orch.Attach(s.ctrl)
	return s
}

// run plays the whole script and returns the session summary.
// It stops early with the context's error if ctx is cancelled.
func (s *session) run(ctx context.Context) (SessionResult, error) {
	checkEvery := max(int(time.Second/s.step), 1)
	for f := 0; f < s.frames; f++ {
		if f%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return s.finish(f), err
			}
		}
		s.script()
		s.orch.Frame(s.step)
		if v, ok := s.check(f); ok {
			s.result.Violations = append(s.result.Violations, v)
		}
	}
	return s.finish(s.frames), nil
}

func (s *session) finish(frames int) SessionResult {
	s.result.Frames = frames
	s.result.CaptureDenials = s.capture.denials
	s.result.Final = s.ctrl.Pose()
	return s.result
}

// script feeds one frame's worth of random events, mimicking what the window delivers.
func (s *session) script() {
	r := s.rng

	if r.IntN(20) == 0 {
		key := movementKeys[r.IntN(len(movementKeys))]
		if s.held[key] {
			delete(s.held, key)
			s.orch.KeyUp(key)
		} else {
			s.held[key] = true
			s.orch.KeyDown(key)
		}
	}

	dx := float32(r.NormFloat64() * 15)
	dy := float32(r.NormFloat64() * 8)
	if r.IntN(300) == 0 {
		// a violent flick to stress the pitch clamp
		dy = float32(r.NormFloat64() * 5000)
	}
	s.orch.MouseMove(dx, dy)

	switch n := r.IntN(1200); {
	case n < 10:
		s.orch.Click()
	case n < 13:
		s.orch.KeyDown(common.KeyEsc)
		s.orch.KeyUp(common.KeyEsc)
	case n < 15:
		s.agg.SetJoystick(float32(r.Float64()*2-1), float32(r.Float64()*2-1))
	case n < 17:
		s.agg.SetJoystick(0, 0)
	case n < 19:
		s.agg.AddTouchLook(float32(r.NormFloat64()*40), float32(r.NormFloat64()*20))
	case n == 19:
		s.orch.FocusChanged(false)
		s.orch.CaptureChanged(false)
		clear(s.held)
	}
}

// check inspects the committed state after frame f.
func (s *session) check(f int) (Violation, bool) {
	if s.orch.Phase() != orchestrator.PhaseFirstPerson || s.ctrl.Transitioning() {
		return Violation{}, false
	}
	kind, bad := inspect(s.ctrl.Pose(), s.ctrl.Pitch(), s.resolver, s.radius)
	if !bad {
		return Violation{}, false
	}
	return Violation{
		Session:  s.id,
		Frame:    f,
		Time:     s.orch.Now(),
		Kind:     kind,
		Position: s.ctrl.Position(),
		Pitch:    s.ctrl.Pitch(),
	}, true
}

// inspect reports the first navigation property a committed pose breaks.
func inspect(pose common.Pose, pitch float32, resolver collision.Resolver, radius float32) (ViolationKind, bool) {
	switch {
	case !pose.Finite() || math.IsNaN(float64(pitch)):
		return ViolationNonFinite, true
	case mgl32.Abs(pitch) >= math.Pi/2:
		return ViolationPitch, true
	case resolver != nil && resolver.Penetrates(pose.Position, radius):
		return ViolationCollision, true
	}
	return "", false
}
