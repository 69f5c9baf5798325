package overlay

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"orrery/rendering/opengl/shaders"
	"orrery/rendering/scene"
)

// Status overlay drawn as coloured quads in pixel space

const statusVertexShader = `
#version 330 core

layout (location = 0) in vec2 position;
layout (location = 1) in vec4 color;

out vec4 fragColor;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(position, 0.0, 1.0);
    fragColor = color;
}
`

const statusFragmentShader = `
#version 330 core

in vec4 fragColor;
out vec4 outColor;

void main() {
    outColor = fragColor;
}
`

// floats per vertex: 2 position + 4 colour
const vertexFloats = 6

// StatusOverlay renders the speed/zoom gauges and the pause glyph
type StatusOverlay struct {
	program       uint32
	projectionLoc int32
	vao           uint32
	vbo           uint32

	width  float32
	height float32

	vertices []float32
}

// NewStatusOverlay creates a status overlay renderer
func NewStatusOverlay(width, height int) (*StatusOverlay, error) {
	program, err := shaders.Build(statusVertexShader, statusFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("status overlay shaders: %w", err)
	}

	so := &StatusOverlay{
		program:       program,
		projectionLoc: gl.GetUniformLocation(program, gl.Str("projection\x00")),
		width:         float32(width),
		height:        float32(height),
	}

	gl.GenVertexArrays(1, &so.vao)
	gl.GenBuffers(1, &so.vbo)

	gl.BindVertexArray(so.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, so.vbo)

	stride := int32(vertexFloats * 4)

	// Position attribute (2 floats)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// Color attribute (4 floats)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	return so, nil
}

// Render draws rects (pixel coordinates, top-left origin) over the frame
func (so *StatusOverlay) Render(rects []scene.Rect) {
	if len(rects) == 0 {
		return
	}

	so.vertices = AppendQuads(so.vertices[:0], rects)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(so.program)
	projection := mgl32.Ortho2D(0, so.width, so.height, 0)
	gl.UniformMatrix4fv(so.projectionLoc, 1, false, &projection[0])

	gl.BindVertexArray(so.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, so.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(so.vertices)*4, gl.Ptr(so.vertices), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(so.vertices)/vertexFloats))

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

// AppendQuads expands each rect into two triangles of position+colour vertices
func AppendQuads(dst []float32, rects []scene.Rect) []float32 {
	for _, r := range rects {
		c := r.Color
		x0, y0 := r.X, r.Y
		x1, y1 := r.X+r.W, r.Y+r.H
		dst = append(dst,
			x0, y0, c[0], c[1], c[2], c[3],
			x1, y0, c[0], c[1], c[2], c[3],
			x0, y1, c[0], c[1], c[2], c[3],
			x1, y0, c[0], c[1], c[2], c[3],
			x1, y1, c[0], c[1], c[2], c[3],
			x0, y1, c[0], c[1], c[2], c[3],
		)
	}
	return dst
}

// UpdateSize updates viewport size
func (so *StatusOverlay) UpdateSize(width, height int) {
	so.width = float32(width)
	so.height = float32(height)
}

// Release cleans up resources
func (so *StatusOverlay) Release() {
	if so.program != 0 {
		gl.DeleteProgram(so.program)
		so.program = 0
	}
	if so.vao != 0 {
		gl.DeleteVertexArrays(1, &so.vao)
		so.vao = 0
	}
	if so.vbo != 0 {
		gl.DeleteBuffers(1, &so.vbo)
		so.vbo = 0
	}
}
