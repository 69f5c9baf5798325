package shaders

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const flatColorVertexShader = `
#version 330 core
layout (location = 0) in vec2 aPos;
uniform mat4 projection;
uniform mat4 model;
void main() {
    gl_Position = projection * model * vec4(aPos, 0.0, 1.0);
}
`

const flatColorFragmentShader = `
#version 330 core
out vec4 FragColor;
uniform vec3 color;
void main() {
    FragColor = vec4(color, 1.0);
}
`

// FlatColor is the program every solar-system object is drawn with: a 2D
// position transformed by projection * model, filled with one colour.
type FlatColor struct {
	Program uint32

	projectionLoc int32
	modelLoc      int32
	colorLoc      int32
}

// NewFlatColor compiles and links the flat colour program.
func NewFlatColor() (*FlatColor, error) {
	program, err := Build(flatColorVertexShader, flatColorFragmentShader)
	if err != nil {
		return nil, err
	}
	return &FlatColor{
		Program:       program,
		projectionLoc: gl.GetUniformLocation(program, gl.Str("projection\x00")),
		modelLoc:      gl.GetUniformLocation(program, gl.Str("model\x00")),
		colorLoc:      gl.GetUniformLocation(program, gl.Str("color\x00")),
	}, nil
}

func (fc *FlatColor) Use() {
	gl.UseProgram(fc.Program)
}

func (fc *FlatColor) SetProjection(m mgl32.Mat4) {
	gl.UniformMatrix4fv(fc.projectionLoc, 1, false, &m[0])
}

func (fc *FlatColor) SetModel(m mgl32.Mat4) {
	gl.UniformMatrix4fv(fc.modelLoc, 1, false, &m[0])
}

func (fc *FlatColor) SetColor(c mgl32.Vec3) {
	gl.Uniform3f(fc.colorLoc, c[0], c[1], c[2])
}

// Delete releases the program.
func (fc *FlatColor) Delete() {
	if fc.Program != 0 {
		gl.DeleteProgram(fc.Program)
		fc.Program = 0
	}
}
