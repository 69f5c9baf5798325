package opengl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"orrery/rendering/scene"
)

// onMouseButton records a left click for the next Select call. The cursor
// position is in window coordinates and is scaled to the framebuffer.
func (r *SolarRenderer) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != glfw.Press {
		return
	}
	xpos, ypos := w.GetCursorPos()
	winW, winH := w.GetSize()
	if winW > 0 && winH > 0 {
		xpos *= float64(r.width) / float64(winW)
		ypos *= float64(r.height) / float64(winH)
	}
	r.click = &[2]float32{float32(xpos), float32(ypos)}
}

// Select resolves a pending click against the frame that is about to be drawn
// and logs the body under the cursor. It returns the picked label, if any.
func (r *SolarRenderer) Select(frame *scene.Frame) (string, bool) {
	if r.click == nil {
		return "", false
	}
	px, py := r.click[0], r.click[1]
	r.click = nil

	call, ok := scene.Pick(frame, px, py, r.width, r.height)
	if !ok {
		slog.Debug("click missed", "x", px, "y", py)
		return "", false
	}
	slog.Info("selected", "body", call.Label, "x", px, "y", py)
	return call.Label, true
}
