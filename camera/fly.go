/*
	free-fly camera

	two degrees of freedom (yaw, pitch) plus position. mouse deltas are
	drained once per frame by the caller and fed to Look; held movement
	keys map to basis vectors in Step. pitch is clamped to ±π/2 on every
	update, yaw wraps naturally through the trig downstream.
*/
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/askeland/fjord/transform"
)

var pitchLimit = float32(math.Pi / 2)

// Move is the set of movement intents held this frame. Multiple intents
// combine additively; diagonals are not normalized.
type Move struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
}

// Fly is a free-fly camera controller.
type Fly struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	// Speed is movement in world units per second, Sensitivity scales raw
	// mouse delta into radians.
	Speed       float32
	Sensitivity float32

	flight *flight
}

type flight struct {
	x, y, z *gween.Tween
}

// New returns a camera at position with the given tuning.
func New(position mgl32.Vec3, speed, sensitivity float32) *Fly {
	return &Fly{
		Position:    position,
		Speed:       speed,
		Sensitivity: sensitivity,
	}
}

// Look consumes a drained mouse delta. Horizontal motion turns yaw,
// vertical motion tilts pitch; pitch is silently clamped to [-π/2, π/2],
// never treated as an error.
func (f *Fly) Look(dx, dy float32) {
	f.Yaw += dx * f.Sensitivity
	f.Pitch -= dy * f.Sensitivity
	f.Pitch = mgl32.Clamp(f.Pitch, -pitchLimit, pitchLimit)
}

// Step applies held movement intents over dt seconds. Each intent
// contributes its basis vector scaled by Speed*dt; opposing intents cancel.
// Any manual movement cancels an in-flight FlyTo.
func (f *Fly) Step(m Move, dt float32) {
	forward, right, up := transform.Basis(f.Yaw, f.Pitch)

	var v mgl32.Vec3
	if m.Forward {
		v = v.Add(forward)
	}
	if m.Back {
		v = v.Sub(forward)
	}
	if m.Left {
		v = v.Add(right)
	}
	if m.Right {
		v = v.Sub(right)
	}
	if m.Up {
		v = v.Add(up)
	}
	if m.Down {
		v = v.Sub(up)
	}

	if v != (mgl32.Vec3{}) {
		f.flight = nil
		f.Position = f.Position.Add(v.Mul(f.Speed * dt))
	}
}

// FlyTo starts an eased flight to target over duration seconds, advanced by
// Update. Manual movement in Step cancels it.
func (f *Fly) FlyTo(target mgl32.Vec3, duration float32, easing ease.TweenFunc) {
	f.flight = &flight{
		x: gween.New(f.Position.X(), target.X(), duration, easing),
		y: gween.New(f.Position.Y(), target.Y(), duration, easing),
		z: gween.New(f.Position.Z(), target.Z(), duration, easing),
	}
}

// Update advances an active FlyTo flight by dt seconds. No-op otherwise.
func (f *Fly) Update(dt float32) {
	fl := f.flight
	if fl == nil {
		return
	}

	x, doneX := fl.x.Update(dt)
	y, doneY := fl.y.Update(dt)
	z, doneZ := fl.z.Update(dt)
	f.Position = mgl32.Vec3{x, y, z}

	if doneX && doneY && doneZ {
		f.flight = nil
	}
}

// Forward returns the current view direction.
func (f *Fly) Forward() mgl32.Vec3 {
	return transform.Forward(f.Yaw, f.Pitch)
}

// ViewProjection builds the frame's combined view-projection matrix from
// the current camera state. fov is vertical, in radians; aspect is supplied
// per frame so window resizes take effect immediately.
func (f *Fly) ViewProjection(fov, aspect, near, far float32) mgl32.Mat4 {
	forward, _, up := transform.Basis(f.Yaw, f.Pitch)
	return transform.ViewProjection(f.Position, forward, up, fov, aspect, near, far)
}
