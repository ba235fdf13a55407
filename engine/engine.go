package engine

import (
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/oxy-room/engine/camera"
	"github.com/Carmen-Shannon/oxy-room/engine/profiler"
	"github.com/Carmen-Shannon/oxy-room/engine/window"
)

// engine implements the Engine interface.
// Everything runs on the window's message-pump goroutine: events are delivered by PollEvents,
// then one frame callback runs, then the camera is refreshed.
type engine struct {
	running bool

	window window.Window
	camera camera.Camera

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback func(dt time.Duration)
	maxFrameDelta time.Duration
	frameLimit    time.Duration // minimum frame duration; 0 = uncapped

	lastFrame time.Time
	now       func() time.Time
	logger    *slog.Logger
}

// Engine is the main entry point for the engine.
// It owns the frame loop and the window it is pumped by.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Camera returns the camera refreshed each frame, or nil.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameCallback registers the function called once per frame after window events
	// have been delivered. This is where input is snapshotted and the camera updated.
	//
	// Parameters:
	//   - callback: function receiving the elapsed time since the previous frame
	SetFrameCallback(callback func(dt time.Duration))

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Run starts the frame loop on the calling goroutine (blocks until the window closes).
	Run()

	// Quit closes the window, which ends Run.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (window, camera, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		maxFrameDelta: 100 * time.Millisecond,
		now:           time.Now,
		logger:        slog.Default(),
	}

	for _, opt := range options {
		opt(e)
	}
	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))

	if e.window != nil {
		e.window.SetResizeCallback(e.resize)
		if e.camera != nil && e.window.Height() > 0 {
			e.camera.SetAspect(float32(e.window.Width()) / float32(e.window.Height()))
		}
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Run() {
	if e.window == nil {
		e.logger.Error("engine run without a window")
		return
	}
	e.running = true
	e.lastFrame = e.now()
	e.window.SetUpdateCallback(func() {
		e.step(e.now())
	})
	e.window.ProcessMessages()
	e.running = false
}

// Quit closes the window so the message loop exits.
func (e *engine) Quit() {
	if !e.running || e.window == nil {
		return
	}
	e.running = false
	if err := e.window.Close(); err != nil {
		e.logger.Warn("window close failed", "err", err)
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetFrameCallback registers the function called each frame.
func (e *engine) SetFrameCallback(callback func(dt time.Duration)) {
	e.frameCallback = callback
}

// SetFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetFrameLimit(fps float64) {
	if fps <= 0 {
		e.frameLimit = 0
		return
	}
	e.frameLimit = time.Duration(float64(time.Second) / fps)
}

// step runs one frame at wall time now: clamp the delta, run the frame callback,
// refresh the camera, then profile and throttle.
func (e *engine) step(now time.Time) {
	dt := now.Sub(e.lastFrame)
	e.lastFrame = now
	if dt < 0 {
		dt = 0
	}
	if e.maxFrameDelta > 0 && dt > e.maxFrameDelta {
		dt = e.maxFrameDelta
	}

	if e.frameCallback != nil {
		e.frameCallback(dt)
	}
	if e.camera != nil {
		e.camera.Update()
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(dt)
	}

	if e.frameLimit > 0 {
		if remaining := e.frameLimit - e.now().Sub(now); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

func (e *engine) resize(width, height int) {
	if e.camera == nil || height <= 0 {
		return
	}
	e.camera.SetAspect(float32(width) / float32(height))
}
