package opengl

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"orrery/core"
	"orrery/input"
	"orrery/rendering/opengl/overlay"
	"orrery/rendering/opengl/shaders"
	"orrery/rendering/scene"
)

// Options configure the window and the meshes.
type Options struct {
	Width       int
	Height      int
	Title       string
	VSync       bool
	Segments    int
	ShowOverlay bool
}

// SolarRenderer owns the GLFW window, the GL context and every GPU resource.
// All methods must be called from the thread that created it.
type SolarRenderer struct {
	window *glfw.Window

	program *shaders.FlatColor
	disc    *CircleMesh
	orbit   *CircleMesh

	status      *overlay.StatusOverlay
	caption     *overlay.CaptionOverlay
	showOverlay bool

	// framebuffer size in pixels
	width, height int
	title         string

	// scroll offset accumulated by the callback since the last ProcessInput
	pendingScroll float64
	// framebuffer position of a left click not yet passed to Select
	click *[2]float32
}

// NewSolarRenderer opens the window, loads GL and uploads the circle meshes
func NewSolarRenderer(opts Options) (*SolarRenderer, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Info("OpenGL context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
	)

	r := &SolarRenderer{
		window:      window,
		title:       opts.Title,
		showOverlay: opts.ShowOverlay,
	}
	r.width, r.height = window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(r.width), int32(r.height))

	program, err := shaders.NewFlatColor()
	if err != nil {
		r.Terminate()
		return nil, fmt.Errorf("failed to build shader program: %w", err)
	}
	r.program = program

	meshes := scene.NewMeshes(opts.Segments)
	r.disc = UploadMesh(meshes.Disc)
	r.orbit = UploadMesh(meshes.Orbit)
	slog.Debug("circle meshes uploaded",
		"segments", opts.Segments,
		"disc", r.disc.VertexCount,
		"orbit", r.orbit.VertexCount,
	)

	if opts.ShowOverlay {
		status, err := overlay.NewStatusOverlay(r.width, r.height)
		if err != nil {
			// the overlay is cosmetic, keep going without it
			slog.Warn("status overlay disabled", "err", err)
			r.showOverlay = false
		} else {
			r.status = status
		}
		caption, err := overlay.NewCaptionOverlay(r.width, r.height)
		if err != nil {
			slog.Warn("caption overlay disabled", "err", err)
		} else {
			r.caption = caption
		}
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.onResize(width, height)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		r.pendingScroll += yoff
	})
	window.SetMouseButtonCallback(r.onMouseButton)

	return r, nil
}

// Now returns the GLFW timer in seconds
func (r *SolarRenderer) Now() float64 {
	return glfw.GetTime()
}

// Size returns the framebuffer size in pixels
func (r *SolarRenderer) Size() (width, height int) {
	return r.width, r.height
}

// Pressed implements input.Keyboard over the window's key state
func (r *SolarRenderer) Pressed(k input.Key) bool {
	glfwKey, ok := glfwKeys[k]
	if !ok {
		return false
	}
	return r.window.GetKey(glfwKey) == glfw.Press
}

var glfwKeys = map[input.Key]glfw.Key{
	input.KeyEscape:     glfw.KeyEscape,
	input.KeySpace:      glfw.KeySpace,
	input.KeyEqual:      glfw.KeyEqual,
	input.KeyMinus:      glfw.KeyMinus,
	input.KeyKPAdd:      glfw.KeyKPAdd,
	input.KeyKPSubtract: glfw.KeyKPSubtract,
	input.KeyR:          glfw.KeyR,
}

// ProcessInput applies this frame's keyboard state and any scrolling since the
// previous call. Escape marks the window for closing.
func (r *SolarRenderer) ProcessInput(h *input.Handler, s *core.State) {
	if h.Poll(r, s) {
		r.window.SetShouldClose(true)
	}
	if r.pendingScroll != 0 {
		h.Scroll(r.pendingScroll, s)
		r.pendingScroll = 0
	}
}

// Render draws one frame, the status gauges and the caption, then swaps buffers
func (r *SolarRenderer) Render(frame scene.Frame, status []scene.Rect, caption string) {
	bg := frame.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.program.Use()
	r.program.SetProjection(frame.Projection)

	for _, call := range frame.Calls {
		r.program.SetModel(call.Model)
		r.program.SetColor(call.Color)
		switch call.Mesh {
		case scene.MeshOrbit:
			r.orbit.Draw(gl.LINE_LOOP)
		default:
			r.disc.Draw(gl.TRIANGLE_FAN)
		}
	}

	if r.showOverlay && r.status != nil {
		r.status.Render(status)
	}
	if r.showOverlay && r.caption != nil {
		r.caption.Render(caption)
	}

	r.window.SwapBuffers()
}

// SetStatus shows a short status string in the window title
func (r *SolarRenderer) SetStatus(text string) {
	r.window.SetTitle(r.title + "  |  " + text)
}

func (r *SolarRenderer) onResize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	if r.status != nil {
		r.status.UpdateSize(width, height)
	}
	if r.caption != nil {
		r.caption.UpdateSize(width, height)
	}
}

// ShouldClose returns true if the window should close
func (r *SolarRenderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

// PollEvents processes pending window events
func (r *SolarRenderer) PollEvents() {
	glfw.PollEvents()
}

// Terminate releases GPU resources, the window and GLFW
func (r *SolarRenderer) Terminate() {
	if r.status != nil {
		r.status.Release()
		r.status = nil
	}
	if r.caption != nil {
		r.caption.Release()
		r.caption = nil
	}
	if r.disc != nil {
		r.disc.Delete()
	}
	if r.orbit != nil {
		r.orbit.Delete()
	}
	if r.program != nil {
		r.program.Delete()
	}
	if r.window != nil {
		r.window.Destroy()
		r.window = nil
	}
	glfw.Terminate()
	slog.Info("renderer terminated")
}
