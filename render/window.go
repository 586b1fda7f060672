/*
Package render owns the window, the GL context and everything uploaded to it.

Threading matters here. GLFW demands that the window is created and events are
polled on the main thread, while the GL context may be made current on any one
thread. NewWindow therefore leaves the context unbound so the render goroutine
can claim it with MakeContextCurrent.
*/
package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/askeland/fjord/config"
	"github.com/askeland/fjord/input"
)

// Window wraps the GLFW window and keeps the swap interval setting around
// until a context exists to apply it to.
type Window struct {
	window *glfw.Window
	vsync  bool
}

// NewWindow initializes GLFW and opens a window with the input callbacks
// wired to state. Call it from the main thread.
func NewWindow(cfg config.Window, state *input.State) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "init glfw")
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}

	window.SetKeyCallback(state.OnKey)
	window.SetMouseButtonCallback(state.OnMouseButton)
	window.SetCursorPosCallback(state.OnCursorPos)
	window.SetFramebufferSizeCallback(state.OnFramebufferSize)

	// Seed the resize edge so the first frame sets viewport and aspect from
	// the actual framebuffer, which may differ from the requested size on
	// high-DPI displays.
	w, h := window.GetFramebufferSize()
	state.OnFramebufferSize(window, w, h)

	return &Window{window: window, vsync: cfg.VSync}, nil
}

// MakeContextCurrent binds the GL context to the calling goroutine and
// applies the swap interval. The caller must be locked to its OS thread.
func (w *Window) MakeContextCurrent() {
	w.window.MakeContextCurrent()
	if w.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

// WaitEvents blocks the main thread until something happens, with a timeout
// so shutdown signals are still noticed.
func (w *Window) WaitEvents(timeout float64) {
	glfw.WaitEventsTimeout(timeout)
}

func (w *Window) Terminate() {
	glfw.Terminate()
}
