package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and the GL context are bound to the thread that created them.
	runtime.LockOSThread()
}

// Window wraps a GLFW window with an OpenGL 4.1 core context.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
}

type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
	MSAA   int
}

// NewWindow initialises GLFW, opens the window, and makes its GL context
// current. Fails fatally when no context can be created.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	if config.MSAA > 0 {
		glfw.WindowHint(glfw.Samples, config.MSAA)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()

	if config.VSync {
		glfw.SwapInterval(1)
	}

	// FPS-style input: capture the mouse and start it centred so the first
	// look delta is zero.
	handle.SetInputMode(glfw.StickyKeysMode, glfw.True)
	handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	glfw.PollEvents()
	handle.SetCursorPos(float64(config.Width)/2, float64(config.Height)/2)

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

func (w *Window) SetCursorPos(x, y float64) {
	w.Handle.SetCursorPos(x, y)
}

// ScrollCallback is the type for scroll event handlers.
type ScrollCallback func(xoff, yoff float64)

func (w *Window) SetScrollCallback(cb ScrollCallback) {
	w.Handle.SetScrollCallback(func(win *glfw.Window, xoff, yoff float64) {
		cb(xoff, yoff)
	})
}

// Time returns seconds since GLFW initialisation.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

// Key constants used by the camera controller and frame loop.
const (
	KeyW          = int(glfw.KeyW)
	KeyA          = int(glfw.KeyA)
	KeyS          = int(glfw.KeyS)
	KeyD          = int(glfw.KeyD)
	KeyQ          = int(glfw.KeyQ)
	KeyE          = int(glfw.KeyE)
	KeyG          = int(glfw.KeyG)
	KeyUp         = int(glfw.KeyUp)
	KeyDown       = int(glfw.KeyDown)
	KeyLeft       = int(glfw.KeyLeft)
	KeyRight      = int(glfw.KeyRight)
	KeyEscape     = int(glfw.KeyEscape)
	KeyLeftShift  = int(glfw.KeyLeftShift)
	KeyRightShift = int(glfw.KeyRightShift)
)
