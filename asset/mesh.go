/*
Package asset builds and loads mesh geometry.

Meshes are plain CPU-side attribute arrays. Uploading them to the GPU is
someone else's job, which keeps this package free of any GL dependency and
testable on its own.
*/
package asset

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MeshData holds de-interleaved vertex attributes and a triangle index list.
// Positions and Normals carry three floats per vertex, Colors four.
type MeshData struct {
	Positions []float32
	Normals   []float32
	Colors    []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices described by the positions.
func (m *MeshData) VertexCount() int {
	return len(m.Positions) / 3
}

func (m *MeshData) pushVertex(pos, normal mgl32.Vec3, color mgl32.Vec4) uint32 {
	index := uint32(m.VertexCount())
	m.Positions = append(m.Positions, pos.X(), pos.Y(), pos.Z())
	m.Normals = append(m.Normals, normal.X(), normal.Y(), normal.Z())
	m.Colors = append(m.Colors, color.X(), color.Y(), color.Z(), color.W())
	return index
}

// pushQuad appends two triangles over the corners a, b, c, d given in
// counter-clockwise order.
func (m *MeshData) pushQuad(a, b, c, d mgl32.Vec3, normal mgl32.Vec3, color mgl32.Vec4) {
	ia := m.pushVertex(a, normal, color)
	ib := m.pushVertex(b, normal, color)
	ic := m.pushVertex(c, normal, color)
	id := m.pushVertex(d, normal, color)
	m.Indices = append(m.Indices, ia, ib, ic, ia, ic, id)
}

// Quad returns a size x size square in the XY plane, centered on the origin
// and facing +Z. Billboard drawables use this shape.
func Quad(size float32, color mgl32.Vec4) *MeshData {
	h := size / 2
	mesh := &MeshData{}
	mesh.pushQuad(
		mgl32.Vec3{-h, -h, 0},
		mgl32.Vec3{h, -h, 0},
		mgl32.Vec3{h, h, 0},
		mgl32.Vec3{-h, h, 0},
		mgl32.Vec3{0, 0, 1},
		color,
	)
	return mesh
}

// Box returns an axis-aligned box centered on the origin with the given
// extents. Each face gets its own four vertices so normals stay flat.
func Box(extents mgl32.Vec3, color mgl32.Vec4) *MeshData {
	x := extents.X() / 2
	y := extents.Y() / 2
	z := extents.Z() / 2

	mesh := &MeshData{}

	// +Z and -Z
	mesh.pushQuad(
		mgl32.Vec3{-x, -y, z}, mgl32.Vec3{x, -y, z}, mgl32.Vec3{x, y, z}, mgl32.Vec3{-x, y, z},
		mgl32.Vec3{0, 0, 1}, color)
	mesh.pushQuad(
		mgl32.Vec3{x, -y, -z}, mgl32.Vec3{-x, -y, -z}, mgl32.Vec3{-x, y, -z}, mgl32.Vec3{x, y, -z},
		mgl32.Vec3{0, 0, -1}, color)

	// +X and -X
	mesh.pushQuad(
		mgl32.Vec3{x, -y, z}, mgl32.Vec3{x, -y, -z}, mgl32.Vec3{x, y, -z}, mgl32.Vec3{x, y, z},
		mgl32.Vec3{1, 0, 0}, color)
	mesh.pushQuad(
		mgl32.Vec3{-x, -y, -z}, mgl32.Vec3{-x, -y, z}, mgl32.Vec3{-x, y, z}, mgl32.Vec3{-x, y, -z},
		mgl32.Vec3{-1, 0, 0}, color)

	// +Y and -Y
	mesh.pushQuad(
		mgl32.Vec3{-x, y, z}, mgl32.Vec3{x, y, z}, mgl32.Vec3{x, y, -z}, mgl32.Vec3{-x, y, -z},
		mgl32.Vec3{0, 1, 0}, color)
	mesh.pushQuad(
		mgl32.Vec3{-x, -y, -z}, mgl32.Vec3{x, -y, -z}, mgl32.Vec3{x, -y, z}, mgl32.Vec3{-x, -y, z},
		mgl32.Vec3{0, -1, 0}, color)

	return mesh
}
