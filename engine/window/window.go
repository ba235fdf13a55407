package window

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrCaptureDenied is returned by RequestPointerCapture when the platform refuses to lock the cursor,
// for example because the window does not have focus.
var ErrCaptureDenied = errors.New("window: pointer capture denied")

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
// All callbacks run on the goroutine that calls ProcessMessages.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press and repeat events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetClickCallback sets the callback for primary (left) button presses.
	//
	// Parameters:
	//   - callback: function to call on click
	SetClickCallback(callback func())

	// SetMouseDeltaCallback sets the callback for pointer movement while captured.
	// Deltas are in pixels since the previous event; nothing is reported while the pointer is free.
	//
	// Parameters:
	//   - callback: function receiving the x and y deltas
	SetMouseDeltaCallback(callback func(dx, dy float32))

	// SetFocusCallback sets the callback for window focus changes.
	//
	// Parameters:
	//   - callback: function receiving the new focus state
	SetFocusCallback(callback func(focused bool))

	// SetCaptureCallback sets the callback for pointer-capture changes, including capture
	// lost to Escape or focus loss.
	//
	// Parameters:
	//   - callback: function receiving the new capture state
	SetCaptureCallback(callback func(captured bool))

	// RequestPointerCapture hides and locks the cursor so mouse movement is reported as deltas.
	//
	// Returns:
	//   - error: ErrCaptureDenied if the window cannot capture right now
	RequestPointerCapture() error

	// ReleasePointerCapture restores the normal cursor.
	ReleasePointerCapture()

	// PointerCaptured reports whether the cursor is currently captured.
	PointerCaptured() bool

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height are the current framebuffer size in pixels.
	width  int
	height int

	// rawMotion requests unaccelerated deltas while captured.
	rawMotion bool

	// captured mirrors the cursor mode; lastX/lastY anchor delta computation.
	captured bool
	lastX    float64
	lastY    float64

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate  func()
	onResize  func(width, height int)
	onKeyDown func(keyCode uint32)
	onKeyUp   func(keyCode uint32)
	onClick   func()
	onDelta   func(dx, dy float32)
	onFocus   func(focused bool)
	onCapture func(captured bool)

	logger *slog.Logger
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "Room",
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  640,
		minHeight: 360,
		width:     1280,
		height:    720,
		rawMotion: true,
		logger:    slog.Default(),
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetClickCallback(callback func()) {
	w.onClick = callback
}

func (w *engineWindow) SetMouseDeltaCallback(callback func(dx, dy float32)) {
	w.onDelta = callback
}

func (w *engineWindow) SetFocusCallback(callback func(focused bool)) {
	w.onFocus = callback
}

func (w *engineWindow) SetCaptureCallback(callback func(captured bool)) {
	w.onCapture = callback
}

func (w *engineWindow) RequestPointerCapture() error {
	if w.captured {
		return nil
	}
	if err := platformCapturePointer(w); err != nil {
		return err
	}
	w.setCaptured(true)
	return nil
}

func (w *engineWindow) ReleasePointerCapture() {
	if !w.captured {
		return
	}
	platformReleasePointer(w)
	w.setCaptured(false)
}

func (w *engineWindow) PointerCaptured() bool {
	return w.captured
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) setCaptured(captured bool) {
	if w.captured == captured {
		return
	}
	w.captured = captured
	w.logger.Debug("pointer capture changed", "captured", captured)
	if w.onCapture != nil {
		w.onCapture(captured)
	}
}
