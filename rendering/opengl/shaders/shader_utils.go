package shaders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var (
	ErrCompile = errors.New("shader compilation failed")
	ErrLink    = errors.New("shader program linking failed")
)

// Build compiles a vertex/fragment pair and links them into a program. The
// intermediate shader objects are deleted either way.
func Build(vertexSource, fragmentSource string) (uint32, error) {
	vertShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragShader)

	return linkProgram(vertShader, fragShader)
}

// compileShader compiles a single shader
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := infoLog(logLength, func(buf *uint8) {
			gl.GetShaderInfoLog(shader, logLength, nil, buf)
		})
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", ErrCompile, log)
	}

	return shader, nil
}

// linkProgram links vertex and fragment shaders into a program
func linkProgram(vertShader, fragShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := infoLog(logLength, func(buf *uint8) {
			gl.GetProgramInfoLog(program, logLength, nil, buf)
		})
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", ErrLink, log)
	}

	gl.DetachShader(program, vertShader)
	gl.DetachShader(program, fragShader)
	return program, nil
}

// infoLog reads a driver log of the reported length.
func infoLog(length int32, read func(*uint8)) string {
	if length <= 0 {
		return "(no log)"
	}
	buf := make([]byte, length)
	read(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}
