package overlay

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"orrery/rendering/opengl/shaders"
)

// Caption text rasterised on the CPU into a single-channel texture

const bitmapFontVertexShader = `
#version 330 core

layout (location = 0) in vec2 position;
layout (location = 1) in vec2 texCoord;

out vec2 fragTexCoord;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(position, 0.0, 1.0);
    fragTexCoord = texCoord;
}
`

const bitmapFontFragmentShader = `
#version 330 core

in vec2 fragTexCoord;
out vec4 outColor;

uniform sampler2D fontTexture;
uniform vec4 textColor;

void main() {
    float alpha = texture(fontTexture, fragTexCoord).r;
    outColor = vec4(textColor.rgb, textColor.a * alpha);
}
`

// Texture size in pixels. Captions longer than CaptionWidth/7 glyphs are cut.
const (
	CaptionWidth  = 512
	CaptionHeight = 16
)

// pixels from the bottom-left corner of the window
const captionMargin = 10

var captionColor = mgl32.Vec4{0.9, 0.9, 0.9, 0.9}

// RasterizeText draws text with the 7x13 bitmap face into an alpha image of
// the given size.
func RasterizeText(text string, width, height int) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, width, height))
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(1, face.Ascent+1),
	}
	d.DrawString(text)
	return img
}

// CaptionOverlay shows one line of text in the bottom-left corner. The texture
// is allocated once and re-filled only when the text changes.
type CaptionOverlay struct {
	program       uint32
	projectionLoc int32
	colorLoc      int32
	samplerLoc    int32
	texture       uint32
	vao           uint32
	vbo           uint32

	width  float32
	height float32

	text string
}

// NewCaptionOverlay creates the caption renderer
func NewCaptionOverlay(width, height int) (*CaptionOverlay, error) {
	program, err := shaders.Build(bitmapFontVertexShader, bitmapFontFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("caption shaders: %w", err)
	}

	co := &CaptionOverlay{
		program:       program,
		projectionLoc: gl.GetUniformLocation(program, gl.Str("projection\x00")),
		colorLoc:      gl.GetUniformLocation(program, gl.Str("textColor\x00")),
		samplerLoc:    gl.GetUniformLocation(program, gl.Str("fontTexture\x00")),
		width:         float32(width),
		height:        float32(height),
	}

	gl.GenTextures(1, &co.texture)
	gl.BindTexture(gl.TEXTURE_2D, co.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, CaptionWidth, CaptionHeight, 0, gl.RED, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenVertexArrays(1, &co.vao)
	gl.GenBuffers(1, &co.vbo)
	gl.BindVertexArray(co.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, co.vbo)
	// 6 vertices of position + texcoord
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)

	stride := int32(4 * 4)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	return co, nil
}

func (co *CaptionOverlay) upload(text string) {
	img := RasterizeText(text, CaptionWidth, CaptionHeight)
	gl.BindTexture(gl.TEXTURE_2D, co.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, CaptionWidth, CaptionHeight, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	co.text = text
}

// CaptionQuad returns the two triangles (x, y, u, v) covering the caption
// texture, anchored captionMargin pixels from the bottom-left corner.
func CaptionQuad(height float32) []float32 {
	x0 := float32(captionMargin)
	y1 := height - captionMargin
	x1 := x0 + CaptionWidth
	y0 := y1 - CaptionHeight
	return []float32{
		x0, y0, 0, 0,
		x1, y0, 1, 0,
		x0, y1, 0, 1,
		x1, y0, 1, 0,
		x1, y1, 1, 1,
		x0, y1, 0, 1,
	}
}

// Render draws text over the frame
func (co *CaptionOverlay) Render(text string) {
	if text == "" {
		return
	}
	if text != co.text {
		co.upload(text)
	}

	quad := CaptionQuad(co.height)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(co.program)
	projection := mgl32.Ortho2D(0, co.width, co.height, 0)
	gl.UniformMatrix4fv(co.projectionLoc, 1, false, &projection[0])
	gl.Uniform4fv(co.colorLoc, 1, &captionColor[0])
	gl.Uniform1i(co.samplerLoc, 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, co.texture)

	gl.BindVertexArray(co.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, co.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*4, gl.Ptr(quad))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
}

// UpdateSize updates viewport size
func (co *CaptionOverlay) UpdateSize(width, height int) {
	co.width = float32(width)
	co.height = float32(height)
}

// Release cleans up resources
func (co *CaptionOverlay) Release() {
	if co.program != 0 {
		gl.DeleteProgram(co.program)
		co.program = 0
	}
	if co.texture != 0 {
		gl.DeleteTextures(1, &co.texture)
		co.texture = 0
	}
	if co.vao != 0 {
		gl.DeleteVertexArrays(1, &co.vao)
		co.vao = 0
	}
	if co.vbo != 0 {
		gl.DeleteBuffers(1, &co.vbo)
		co.vbo = 0
	}
}
