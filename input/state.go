/*
	shared input state between the event task and the render task

	three small cells, each guarded by one mutex: the held-key set, the
	accumulated mouse delta, and the window size. the render task drains
	the mouse delta once per frame and observes resizes as a one-shot
	edge; everything else in the program is single-task.
*/
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// State is wired into the GLFW callbacks by the window manager and read by
// the render task. All methods are safe for concurrent use.
type State struct {
	// LookButton gates mouse-look accumulation; deltas arriving while it
	// is not held are discarded.
	LookButton glfw.MouseButton

	mu sync.Mutex

	keys map[glfw.Key]bool

	lookHeld   bool
	haveCursor bool
	lastX      float64
	lastY      float64
	dx, dy     float64

	width, height int
	resized       bool
}

// NewState returns input state tracking the given look button.
func NewState(lookButton glfw.MouseButton) *State {
	return &State{
		LookButton: lookButton,
		keys:       make(map[glfw.Key]bool),
	}
}

// OnKey is the GLFW key callback.
func (s *State) OnKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch action {
	case glfw.Press:
		s.keys[key] = true
	case glfw.Release:
		delete(s.keys, key)
	}
}

// OnMouseButton is the GLFW mouse button callback.
func (s *State) OnMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != s.LookButton {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch action {
	case glfw.Press:
		s.lookHeld = true
	case glfw.Release:
		s.lookHeld = false
		// next press starts a fresh gesture, don't bridge the gap
		s.haveCursor = false
	}
}

// OnCursorPos is the GLFW cursor position callback. GLFW reports absolute
// positions; the delta since the previous event is accumulated while the
// look button is held.
func (s *State) OnCursorPos(_ *glfw.Window, x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lookHeld {
		s.haveCursor = false
		return
	}

	if s.haveCursor {
		s.dx += x - s.lastX
		s.dy += y - s.lastY
	}
	s.lastX, s.lastY = x, y
	s.haveCursor = true
}

// OnFramebufferSize is the GLFW framebuffer size callback.
func (s *State) OnFramebufferSize(_ *glfw.Window, width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	s.width, s.height = width, height
	s.resized = true
}

// Held reports whether key is currently pressed.
func (s *State) Held(key glfw.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[key]
}

// DrainMouseDelta returns the mouse delta accumulated since the last drain
// and resets it, so each delta is consumed at most once per frame.
func (s *State) DrainMouseDelta() (dx, dy float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dx, dy = float32(s.dx), float32(s.dy)
	s.dx, s.dy = 0, 0
	return dx, dy
}

// TakeResize returns the latest framebuffer size if one arrived since the
// previous call. The flag is a one-shot edge, cleared once observed.
func (s *State) TakeResize() (width, height int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.resized {
		return 0, 0, false
	}
	s.resized = false
	return s.width, s.height, true
}
