package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeySet(t *testing.T) {
	s := NewState(glfw.MouseButtonRight)

	s.OnKey(nil, glfw.KeyW, 0, glfw.Press, 0)
	s.OnKey(nil, glfw.KeyA, 0, glfw.Press, 0)
	if !s.Held(glfw.KeyW) || !s.Held(glfw.KeyA) {
		t.Error("pressed keys not held")
	}

	// repeats don't change the set
	s.OnKey(nil, glfw.KeyW, 0, glfw.Repeat, 0)
	if !s.Held(glfw.KeyW) {
		t.Error("repeat released the key")
	}

	s.OnKey(nil, glfw.KeyW, 0, glfw.Release, 0)
	if s.Held(glfw.KeyW) {
		t.Error("released key still held")
	}
	if !s.Held(glfw.KeyA) {
		t.Error("release of W dropped A")
	}
}

func TestMouseDelta_GatedByLookButton(t *testing.T) {
	s := NewState(glfw.MouseButtonRight)

	// motion without the look button is discarded
	s.OnCursorPos(nil, 100, 100)
	s.OnCursorPos(nil, 150, 120)
	if dx, dy := s.DrainMouseDelta(); dx != 0 || dy != 0 {
		t.Errorf("ungated delta = (%v, %v), want zero", dx, dy)
	}

	s.OnMouseButton(nil, glfw.MouseButtonRight, glfw.Press, 0)
	s.OnCursorPos(nil, 200, 200)
	s.OnCursorPos(nil, 230, 210)
	s.OnCursorPos(nil, 250, 205)

	// the first position after the press only anchors the gesture
	dx, dy := s.DrainMouseDelta()
	if dx != 50 || dy != 5 {
		t.Errorf("delta = (%v, %v), want (50, 5)", dx, dy)
	}
}

func TestMouseDelta_DrainResetsToZero(t *testing.T) {
	s := NewState(glfw.MouseButtonRight)
	s.OnMouseButton(nil, glfw.MouseButtonRight, glfw.Press, 0)
	s.OnCursorPos(nil, 0, 0)
	s.OnCursorPos(nil, 10, -10)

	if dx, dy := s.DrainMouseDelta(); dx != 10 || dy != -10 {
		t.Errorf("first drain = (%v, %v), want (10, -10)", dx, dy)
	}
	if dx, dy := s.DrainMouseDelta(); dx != 0 || dy != 0 {
		t.Errorf("second drain = (%v, %v), want zero", dx, dy)
	}
}

func TestMouseDelta_ReleaseEndsGesture(t *testing.T) {
	s := NewState(glfw.MouseButtonRight)

	s.OnMouseButton(nil, glfw.MouseButtonRight, glfw.Press, 0)
	s.OnCursorPos(nil, 0, 0)
	s.OnCursorPos(nil, 5, 5)
	s.OnMouseButton(nil, glfw.MouseButtonRight, glfw.Release, 0)

	// large cursor jump while released, then a new gesture
	s.OnMouseButton(nil, glfw.MouseButtonRight, glfw.Press, 0)
	s.OnCursorPos(nil, 1000, 1000)
	s.OnCursorPos(nil, 1001, 1002)

	dx, dy := s.DrainMouseDelta()
	if dx != 6 || dy != 7 {
		t.Errorf("delta = (%v, %v), want (6, 7): jump between gestures must not count", dx, dy)
	}
}

func TestMouseDelta_IgnoresOtherButtons(t *testing.T) {
	s := NewState(glfw.MouseButtonRight)
	s.OnMouseButton(nil, glfw.MouseButtonLeft, glfw.Press, 0)
	s.OnCursorPos(nil, 0, 0)
	s.OnCursorPos(nil, 9, 9)

	if dx, dy := s.DrainMouseDelta(); dx != 0 || dy != 0 {
		t.Errorf("left button gated look: (%v, %v)", dx, dy)
	}
}

func TestTakeResize_OneShot(t *testing.T) {
	s := NewState(glfw.MouseButtonRight)

	if _, _, ok := s.TakeResize(); ok {
		t.Error("resize reported before any event")
	}

	s.OnFramebufferSize(nil, 1024, 768)
	w, h, ok := s.TakeResize()
	if !ok || w != 1024 || h != 768 {
		t.Errorf("TakeResize = (%d, %d, %v), want (1024, 768, true)", w, h, ok)
	}

	if _, _, ok := s.TakeResize(); ok {
		t.Error("resize flag not cleared after observation")
	}

	// coalescing: only the latest size survives
	s.OnFramebufferSize(nil, 100, 100)
	s.OnFramebufferSize(nil, 640, 480)
	w, h, ok = s.TakeResize()
	if !ok || w != 640 || h != 480 {
		t.Errorf("coalesced TakeResize = (%d, %d, %v), want (640, 480, true)", w, h, ok)
	}
}

func TestFramebufferSize_FloorsAtOne(t *testing.T) {
	s := NewState(glfw.MouseButtonRight)
	s.OnFramebufferSize(nil, 0, 0)
	w, h, ok := s.TakeResize()
	if !ok || w != 1 || h != 1 {
		t.Errorf("minimized size = (%d, %d, %v), want (1, 1, true)", w, h, ok)
	}
}
