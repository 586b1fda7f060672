package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/askeland/fjord/asset"
)

// Attribute locations match the layout qualifiers in the vertex shader.
const (
	attribPosition = 0
	attribNormal   = 1
	attribColor    = 2
)

// Mesh is geometry uploaded to the GPU. It satisfies scene.Drawable.
type Mesh struct {
	vao     uint32
	buffers [4]uint32
	count   int32
}

// Upload copies mesh data into a fresh VAO. Requires a current GL context.
func Upload(data *asset.MeshData) *Mesh {
	m := &Mesh{count: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(int32(len(m.buffers)), &m.buffers[0])

	uploadAttribute(m.buffers[0], attribPosition, 3, data.Positions)
	uploadAttribute(m.buffers[1], attribNormal, 3, data.Normals)
	uploadAttribute(m.buffers[2], attribColor, 4, data.Colors)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.buffers[3])
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

func uploadAttribute(buffer uint32, location uint32, components int32, values []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(values)*4, gl.Ptr(values), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(location, components, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(location)
}

func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vao)
}

func (m *Mesh) IndexCount() int32 {
	return m.count
}

func (m *Mesh) Delete() {
	gl.DeleteBuffers(int32(len(m.buffers)), &m.buffers[0])
	gl.DeleteVertexArrays(1, &m.vao)
}
