/*
	model/view/projection matrix construction

	conventions, fixed on purpose since none of this commutes:
	- model matrix is T(position) * R(rotation) * S(scale), scale innermost
	- euler rotation composes Rz(yaw) * Ry(pitch) * Rx(roll), roll first
	- pivot rotation conjugates R by the pivot translation, so the
	  reference point stays fixed in parent space while the node spins
*/
package transform

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the fixed up axis used for camera basis construction.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Euler builds a rotation matrix from euler angles in radians,
// rot[0] about X (roll), rot[1] about Y (pitch), rot[2] about Z (yaw),
// composed as Rz * Ry * Rx.
func Euler(rot mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DZ(rot.Z()).
		Mul4(mgl32.HomogRotate3DY(rot.Y())).
		Mul4(mgl32.HomogRotate3DX(rot.X()))
}

// Compose builds the standard model matrix T * R * S.
func Compose(position, rotation, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(Euler(rotation)).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// ComposePivot builds T(position) * T(pivot) * R(rotation) * T(-pivot) * S(scale),
// rotating about pivot instead of the local origin. A zero pivot reduces
// exactly to Compose.
func ComposePivot(position, rotation, scale, pivot mgl32.Vec3) mgl32.Mat4 {
	if pivot == (mgl32.Vec3{}) {
		return Compose(position, rotation, scale)
	}

	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.Translate3D(pivot.X(), pivot.Y(), pivot.Z())).
		Mul4(Euler(rotation)).
		Mul4(mgl32.Translate3D(-pivot.X(), -pivot.Y(), -pivot.Z())).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// Forward converts yaw/pitch to a view direction.
func Forward(yaw, pitch float32) mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
}

// Basis returns the camera frame for yaw/pitch. At pitch = ±π/2 the cross
// product of WorldUp with forward collapses, so right falls back to the
// yaw-only limit (sin yaw, 0, -cos yaw) instead of normalizing a zero vector.
func Basis(yaw, pitch float32) (forward, right, up mgl32.Vec3) {
	forward = Forward(yaw, pitch)

	cross := WorldUp.Cross(forward)
	if cross.Len() < 1e-6 {
		right = mgl32.Vec3{math32.Sin(yaw), 0, -math32.Cos(yaw)}
	} else {
		right = cross.Normalize()
	}

	up = forward.Cross(right).Normalize()
	return forward, right, up
}

// LookAt builds a view matrix from an eye position and a view direction.
func LookAt(position, forward, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(position, position.Add(forward), up)
}

// ViewProjection combines a perspective projection with a look-at view
// matrix, P * V. fov is the vertical field of view in radians.
func ViewProjection(position, forward, up mgl32.Vec3, fov, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(fov, aspect, near, far).Mul4(LookAt(position, forward, up))
}

// BillboardAngles returns the yaw/pitch that point an object's forward axis
// from position towards camera. Yaw is atan2 of the x/z components, pitch is
// the elevation above the xz plane. Both are zero when the two positions
// coincide.
func BillboardAngles(position, camera mgl32.Vec3) (yaw, pitch float32) {
	to := camera.Sub(position)
	if to.Len() == 0 {
		return 0, 0
	}

	d := to.Normalize()
	yaw = math32.Atan2(d.X(), d.Z())
	pitch = math32.Atan2(d.Y(), math32.Hypot(d.X(), d.Z()))
	return yaw, pitch
}

// Tint builds the diagonal color matrix the fragment shader multiplies
// vertex colors with.
func Tint(rgba mgl32.Vec4) mgl32.Mat4 {
	return mgl32.Diag4(rgba)
}
