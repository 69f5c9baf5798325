package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// CircleMesh is a vertex list resident on the GPU: one VAO, one VBO, and the
// layout of a single vec2 position attribute at location 0.
type CircleMesh struct {
	VAO         uint32
	VBO         uint32
	VertexCount int32
}

// UploadMesh copies interleaved 2D vertices into a new static buffer.
func UploadMesh(vertices []float32) *CircleMesh {
	m := &CircleMesh{VertexCount: int32(len(vertices) / 2)}

	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)

	gl.BindVertexArray(m.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return m
}

// Draw issues one draw call with the given primitive mode.
func (m *CircleMesh) Draw(mode uint32) {
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(mode, 0, m.VertexCount)
}

// Delete frees the GPU objects. Safe to call twice.
func (m *CircleMesh) Delete() {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
		m.VAO = 0
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
		m.VBO = 0
	}
}
