// Package raylib draws the solar system through raylib. raylib bundles its own
// GLFW, so this package must not be linked into a binary that also uses go-gl/glfw.
package raylib

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"orrery/core"
	"orrery/input"
	"orrery/rendering/scene"
)

// Options configure the window.
type Options struct {
	Width       int
	Height      int
	Title       string
	TargetFPS   int
	Segments    int
	ShowOverlay bool
}

var raylibKeys = map[input.Key]int32{
	input.KeyEscape:     rl.KeyEscape,
	input.KeySpace:      rl.KeySpace,
	input.KeyEqual:      rl.KeyEqual,
	input.KeyMinus:      rl.KeyMinus,
	input.KeyKPAdd:      rl.KeyKpAdd,
	input.KeyKPSubtract: rl.KeyKpSubtract,
	input.KeyR:          rl.KeyR,
}

// keyboard implements input.Keyboard over raylib's key state.
type keyboard struct{}

func (keyboard) Pressed(k input.Key) bool {
	key, ok := raylibKeys[k]
	return ok && rl.IsKeyDown(key)
}

// Run opens the window and drives the simulation until it is closed.
func Run(opts Options, s *core.State, h *input.Handler, sceneOpts scene.Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	// Escape goes through the input handler like every other key
	rl.SetExitKey(0)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}
	slog.Info("raylib window ready", "width", opts.Width, "height", opts.Height)

	meshes := scene.NewMeshes(opts.Segments)
	clock := core.NewFrameClock(rl.GetTime())
	var stats core.FrameStats

	for !rl.WindowShouldClose() {
		now := rl.GetTime()
		dt := clock.Tick(now)

		if h.Poll(keyboard{}, s) {
			break
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			h.Scroll(float64(wheel), s)
		}
		s.Advance(dt)

		w, hgt := int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
		frame := scene.Build(s, sceneOpts, w, hgt)

		rl.BeginDrawing()
		rl.ClearBackground(color(frame.Background, 1))
		for _, call := range frame.Calls {
			mvp := frame.MVP(call)
			c := color(call.Color, 1)
			if call.Mesh == scene.MeshOrbit {
				rl.DrawLineStrip(toVectors(scene.ProjectVertices(mvp, meshes.Orbit, w, hgt)), c)
				continue
			}
			cx, cy, r := scene.PixelCircle(mvp, w, hgt)
			rl.DrawCircleV(rl.NewVector2(cx, cy), r, c)
		}
		if opts.ShowOverlay {
			for _, rect := range scene.StatusBars(s, w, hgt) {
				rl.DrawRectangleV(rl.NewVector2(rect.X, rect.Y), rl.NewVector2(rect.W, rect.H),
					color(rect.Color.Vec3(), rect.Color[3]))
			}
			rl.DrawText(scene.Caption(s), 10, int32(hgt-20), 10, rl.LightGray)
		}
		rl.EndDrawing()

		if stats.Frame(now) {
			slog.Debug("frame stats", "fps", stats.FPS, "clock", s.Clock)
		}
	}
	slog.Info("raylib window closed")
}

func toVectors(pts []mgl32.Vec2) []rl.Vector2 {
	out := make([]rl.Vector2, len(pts))
	for i, p := range pts {
		out[i] = rl.NewVector2(p[0], p[1])
	}
	return out
}

func color(c mgl32.Vec3, alpha float32) rl.Color {
	return rl.NewColor(channel(c[0]), channel(c[1]), channel(c[2]), channel(alpha))
}

func channel(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}
