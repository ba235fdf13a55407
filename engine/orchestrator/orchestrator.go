// Package orchestrator sequences the room experience: the scripted intro, free first-person
// walking, and the board and map zooms. It owns the frame: each Frame call snapshots input,
// gates it by phase, and drives the camera controller.
package orchestrator

import (
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/oxy-room/common"
	"github.com/Carmen-Shannon/oxy-room/engine/camera"
	"github.com/Carmen-Shannon/oxy-room/engine/config"
	"github.com/Carmen-Shannon/oxy-room/engine/input"
	"github.com/Carmen-Shannon/oxy-room/engine/room"
)

// PointerCapture is the subset of the window the orchestrator needs to lock the cursor.
type PointerCapture interface {
	// RequestPointerCapture hides and locks the cursor so raw deltas drive mouse-look.
	RequestPointerCapture() error

	// ReleasePointerCapture frees the cursor.
	ReleasePointerCapture()
}

// Orchestrator is the scene state machine: Intro → FirstPerson → BoardZoom/MapZoom → FirstPerson.
// Window event handlers call the event methods; the frame loop calls Frame. Both must run on the
// same goroutine.
type Orchestrator interface {
	// Attach hands the orchestrator its camera controller. In the intro the camera is locked
	// to the intro pose and the intro timer starts; if the intro was already skipped the
	// controller is placed at the spawn pose.
	//
	// Parameters:
	//   - ctrl: the camera controller
	Attach(ctrl camera.CameraController)

	// Frame advances the orchestrator clock and timers, then runs one controller update with
	// this frame's input. Input is withheld from the controller outside PhaseFirstPerson.
	//
	// Parameters:
	//   - dt: elapsed time since the previous frame
	Frame(dt time.Duration)

	// Phase returns the current modal state.
	Phase() Phase

	// FadedIn reports whether the scene is fully visible and interactive.
	FadedIn() bool

	// Transitioning reports whether a zoom or close move is in flight.
	Transitioning() bool

	// Now returns the orchestrator clock.
	Now() time.Duration

	// OpenZoom releases pointer capture, remembers the current pose, and animates to the framing
	// pose of a zoom phase.
	//
	// Parameters:
	//   - phase: PhaseBoardZoom or PhaseMapZoom
	//
	// Returns:
	//   - error: ErrNoController, ErrBusy or ErrWrongPhase when the zoom cannot start
	OpenZoom(phase Phase) error

	// Close animates back to the pose remembered by OpenZoom, preempting an unfinished zoom-in.
	// When the move completes the phase returns to first-person and, if the pointer was captured
	// before zooming, capture is re-requested after a short delay.
	//
	// Returns:
	//   - error: ErrNoController or ErrWrongPhase
	Close() error

	// KeyDown records a key press. Escape and Backspace close an open zoom.
	KeyDown(keyCode uint32)

	// KeyUp records a key release.
	KeyUp(keyCode uint32)

	// MouseMove records a raw pointer delta.
	MouseMove(dx, dy float32)

	// Click records a primary click. In first-person it requests capture or picks;
	// in a zoom it closes.
	Click()

	// CaptureChanged records a capture change reported by the window.
	CaptureChanged(captured bool)

	// FocusChanged records a window focus change.
	FocusChanged(focused bool)
}

var _ Orchestrator = &orchestratorImpl{}

type orchestratorImpl struct {
	layout     *room.Layout
	input      input.Aggregator
	capture    PointerCapture
	controller camera.CameraController

	phase   Phase
	fadedIn bool
	now     time.Duration

	introDelay   time.Duration
	introEnd     time.Duration
	introStarted bool
	readyTimeout time.Duration

	transitioning bool
	closing       bool
	wasCaptured   bool
	prezoom       common.Pose

	restoreDelay   time.Duration
	restoreAt      time.Duration
	restorePending bool

	onDetail   func(phase Phase, open bool)
	onInteract func(tag string)
	logger     *slog.Logger
}

// NewOrchestrator creates an orchestrator in PhaseIntro using the default room layout and tuning.
//
// Parameters:
//   - options: functional options to configure the orchestrator
//
// Returns:
//   - Orchestrator: the new orchestrator
func NewOrchestrator(options ...OrchestratorOption) Orchestrator {
	t := config.Default()
	o := &orchestratorImpl{
		phase:        PhaseIntro,
		introDelay:   t.IntroDelay,
		restoreDelay: t.CaptureRestoreDelay,
		readyTimeout: t.ReadyTimeout,
		logger:       slog.Default(),
	}

	for _, opt := range options {
		opt(o)
	}

	if o.layout == nil {
		o.layout = room.Default()
	}
	if o.input == nil {
		o.input = input.NewAggregator()
	}
	return o
}

func (o *orchestratorImpl) Attach(ctrl camera.CameraController) {
	if ctrl == nil {
		return
	}
	o.controller = ctrl
	ctrl.SetOnInteract(o.interact)

	switch o.phase {
	case PhaseIntro:
		ctrl.Teleport(o.layout.Poses.Intro.Pose())
		ctrl.Lock()
		o.introEnd = o.now + o.introDelay
		o.introStarted = true
		o.logger.Info("intro started", "delay", o.introDelay)
	default:
		o.enterSpawn()
	}
}

func (o *orchestratorImpl) Frame(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	o.now += dt

	if o.phase == PhaseIntro {
		switch {
		case o.controller == nil && o.now >= o.readyTimeout:
			o.skipIntro()
		case o.introStarted && o.now >= o.introEnd:
			o.finishIntro()
		}
	}

	if o.restorePending && o.now >= o.restoreAt {
		o.restorePending = false
		if o.phase == PhaseFirstPerson {
			o.requestCapture()
		}
	}

	snap := o.input.Snapshot()
	if o.controller == nil {
		return
	}
	if o.phase != PhaseFirstPerson {
		snap = input.InputSnapshot{Captured: snap.Captured}
	}
	o.controller.Update(dt, snap)
}

func (o *orchestratorImpl) Phase() Phase {
	return o.phase
}

func (o *orchestratorImpl) FadedIn() bool {
	return o.fadedIn
}

func (o *orchestratorImpl) Transitioning() bool {
	return o.transitioning
}

func (o *orchestratorImpl) Now() time.Duration {
	return o.now
}

func (o *orchestratorImpl) OpenZoom(target Phase) error {
	if !target.Zoomed() {
		return ErrWrongPhase
	}
	if o.controller == nil {
		o.transitioning = false
		return ErrNoController
	}
	if o.transitioning {
		return ErrBusy
	}
	if o.phase != PhaseFirstPerson {
		return ErrWrongPhase
	}

	o.restorePending = false
	o.transitioning = true
	o.wasCaptured = o.input.Captured()
	o.releaseCapture()
	o.input.Clear()
	o.prezoom = o.controller.Lock()
	o.phase = target

	pose := o.zoomPose(target)
	o.logger.Info("zoom opening", "phase", target, "from", o.prezoom.Position)
	o.controller.SetLookAt(pose.Position, pose.Target, true).Then(func(err error) {
		if err != nil {
			// Close took over.
			return
		}
		o.transitioning = false
		o.logger.Info("zoom opened", "phase", target)
		if o.onDetail != nil {
			o.onDetail(target, true)
		}
	})
	return nil
}

func (o *orchestratorImpl) Close() error {
	if o.controller == nil {
		o.transitioning = false
		return ErrNoController
	}
	if !o.phase.Zoomed() {
		return ErrWrongPhase
	}
	if o.closing {
		return nil
	}

	zoomed := o.phase
	o.closing = true
	o.transitioning = true
	o.logger.Info("zoom closing", "phase", zoomed)

	o.controller.ResetZoom().Then(func(err error) {
		o.closing = false
		o.transitioning = false
		if err != nil {
			o.logger.Warn("zoom close interrupted", "phase", zoomed, "err", err)
			return
		}

		o.phase = PhaseFirstPerson
		o.logger.Info("zoom closed", "phase", zoomed)
		if o.onDetail != nil {
			o.onDetail(zoomed, false)
		}
		if o.wasCaptured {
			o.restorePending = true
			o.restoreAt = o.now + o.restoreDelay
		}
	})
	return nil
}

func (o *orchestratorImpl) KeyDown(keyCode uint32) {
	if o.phase.Zoomed() {
		if keyCode == common.KeyEsc || keyCode == common.KeyBackspace {
			if err := o.Close(); err != nil {
				o.logger.Debug("close refused", "err", err)
			}
		}
		return
	}
	if o.phase != PhaseFirstPerson {
		return
	}

	if action := o.input.KeyDown(keyCode); action != input.ActionNone && !o.input.Captured() {
		o.requestCapture()
	}
}

func (o *orchestratorImpl) KeyUp(keyCode uint32) {
	o.input.KeyUp(keyCode)
}

func (o *orchestratorImpl) MouseMove(dx, dy float32) {
	o.input.MouseMove(dx, dy)
}

func (o *orchestratorImpl) Click() {
	switch {
	case o.phase == PhaseFirstPerson && !o.input.Captured():
		o.requestCapture()
	case o.phase == PhaseFirstPerson:
		o.input.Click()
	case o.phase.Zoomed():
		if err := o.Close(); err != nil {
			o.logger.Debug("close refused", "err", err)
		}
	}
}

func (o *orchestratorImpl) CaptureChanged(captured bool) {
	o.input.SetCaptured(captured)
}

func (o *orchestratorImpl) FocusChanged(focused bool) {
	o.input.FocusChanged(focused)
}

// --- internal helpers ---

func (o *orchestratorImpl) interact(tag string) {
	if phase, ok := phaseForTag(tag); ok {
		if err := o.OpenZoom(phase); err != nil {
			o.logger.Debug("zoom refused", "tag", tag, "err", err)
		}
		return
	}
	if o.onInteract != nil {
		o.onInteract(tag)
	}
}

func (o *orchestratorImpl) zoomPose(p Phase) common.Pose {
	if p == PhaseMapZoom {
		return o.layout.Poses.Map.Pose()
	}
	return o.layout.Poses.Board.Pose()
}

func (o *orchestratorImpl) finishIntro() {
	o.enterSpawn()
	o.phase = PhaseFirstPerson
	o.fadedIn = true
	o.logger.Info("intro finished")
}

func (o *orchestratorImpl) skipIntro() {
	o.phase = PhaseFirstPerson
	o.fadedIn = true
	o.logger.Warn("camera controller not ready, skipping intro", "timeout", o.readyTimeout)
}

// enterSpawn places the controller at the spawn pose facing the configured yaw.
func (o *orchestratorImpl) enterSpawn() {
	if o.controller == nil {
		return
	}
	o.controller.Unlock()
	o.controller.Teleport(o.layout.Poses.Spawn.Pose())
	o.controller.SetYaw(o.layout.SpawnYaw)
	o.input.Clear()
}

func (o *orchestratorImpl) requestCapture() {
	if o.capture == nil {
		return
	}
	if err := o.capture.RequestPointerCapture(); err != nil {
		o.logger.Warn("pointer capture denied", "err", err)
		return
	}
	o.input.SetCaptured(true)
}

func (o *orchestratorImpl) releaseCapture() {
	if o.capture != nil {
		o.capture.ReleasePointerCapture()
	}
	o.input.SetCaptured(false)
}
