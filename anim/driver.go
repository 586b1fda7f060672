/*
	time-driven procedural motion

	every driver is a pure function of elapsed time plus a per-instance
	phase offset, and every internal term depends only on their sum. that
	keeps the whole animation deterministic and replayable, and gives the
	staggering equivalence f(t, p) == f(t+p, 0) for free.
*/
package anim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/askeland/fjord/transform"
)

// Sample is one position/orientation pair produced by a driver.
type Sample struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
}

// heading circuit constants
const (
	pathSize     = 15.0
	circuitSpeed = 0.8
	headingStep  = 0.05

	maxBank  = 0.35
	bankGain = 8.0
)

func headingPoint(s float32) mgl32.Vec3 {
	u := s * circuitSpeed
	return mgl32.Vec3{
		pathSize * math32.Sin(2*u),
		1.5 * math32.Sin(2*u),
		3 * pathSize * math32.Cos(u),
	}
}

// wrapped difference a-b in (-π, π]
func angleDiff(a, b float32) float32 {
	return math32.Atan2(math32.Sin(a-b), math32.Cos(a-b))
}

// Heading traces a closed figure-eight circuit with a gentle altitude wave.
// Orientation derives from the path's finite-difference velocity: yaw points
// the nose along the direction of travel, pitch follows the climb slope, and
// roll banks into turns proportionally to the yaw rate, clamped to ±maxBank.
func Heading(elapsed, phase float32) Sample {
	s := elapsed + phase

	pos := headingPoint(s)
	next := headingPoint(s + headingStep)
	after := headingPoint(s + 2*headingStep)

	delta := next.Sub(pos)
	yaw := math32.Pi + math32.Atan2(delta.X(), delta.Z())
	pitch := math32.Atan2(delta.Y(), math32.Hypot(delta.X(), delta.Z()))

	nextDelta := after.Sub(next)
	nextYaw := math32.Pi + math32.Atan2(nextDelta.X(), nextDelta.Z())
	roll := mgl32.Clamp(angleDiff(nextYaw, yaw)*bankGain, -maxBank, maxBank)

	return Sample{
		Position: pos,
		Rotation: mgl32.Vec3{pitch, yaw, roll},
	}
}

// oscillation constants, frequency ratios deliberately awkward so the three
// axes never visibly sync up
const (
	oscFreqX = 0.13
	oscFreqY = 0.07
	oscFreqZ = 0.74
)

// Oscillate composes three independent low-frequency sinusoids into a
// bounded wander in [-1, 1] per axis. Callers scale the result to taste.
func Oscillate(elapsed, phase float32) mgl32.Vec3 {
	s := elapsed + phase
	return mgl32.Vec3{
		math32.Sin(s * oscFreqX),
		math32.Sin(s * oscFreqY),
		math32.Sin(s * oscFreqZ),
	}
}

// Spin returns the unbounded rotation angle of a part spinning at a constant
// angular rate in radians per second. It wraps naturally through the
// periodic trig downstream, so no modulo is applied here.
func Spin(elapsed, rate float32) float32 {
	return elapsed * rate
}

// DefaultColorFreq drives the slow rainbow cycle of the showpiece tint.
var DefaultColorFreq = mgl32.Vec3{0.5, 0.7, 0.9}

// ColorCycle maps elapsed time through phase-shifted sine waves per RGB
// channel into [0,1]. Alpha is always 1; negative frequencies just run a
// channel backwards.
func ColorCycle(elapsed float32, freq mgl32.Vec3) mgl32.Vec4 {
	return mgl32.Vec4{
		mgl32.Clamp(math32.Sin(elapsed*freq.X())*0.5+0.5, 0, 1),
		mgl32.Clamp(math32.Sin(elapsed*freq.Y())*0.5+0.5, 0, 1),
		mgl32.Clamp(math32.Sin(elapsed*freq.Z())*0.5+0.5, 0, 1),
		1,
	}
}

// Billboard returns the euler rotation that keeps a camera-facing object
// pointed at the camera. correction is the per-drawable yaw offset for
// meshes whose rest pose faces away from the viewer (π for the shipped
// quad). Recompute every frame, the camera moves.
func Billboard(position, camera mgl32.Vec3, correction float32) mgl32.Vec3 {
	yaw, pitch := transform.BillboardAngles(position, camera)
	return mgl32.Vec3{pitch, yaw + correction, 0}
}
