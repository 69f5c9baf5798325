package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"orrery/config"
	"orrery/core"
	"orrery/input"
	"orrery/rendering/opengl"
	"orrery/rendering/scene"
)

var (
	configPath string
	variant    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "orrery",
	Short: "Animated 2D solar system",
	Long: `Draws a sun, planets on circular orbits and their orbit guides.

Controls:
  Space    pause / resume
  = / -    faster / slower
  Scroll   zoom
  R        reset the clock (classic variant)
  Click    log the body under the cursor
  Esc      quit`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(configPath, variant)
		if err != nil {
			return err
		}
		return runWindow(settings)
	},
}

func init() {
	// GLFW calls must come from the main thread
	runtime.LockOSThread()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", config.DefaultPath, "settings file (JSON)")
	flags.StringVar(&variant, "variant", "", "preset: "+strings.Join(config.Variants(), " or "))
	flags.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("bad --log-level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// runWindow is the interactive OpenGL loop. It must stay on the main goroutine;
// NewSolarRenderer locks the OS thread.
func runWindow(settings config.Settings) error {
	renderer, err := opengl.NewSolarRenderer(opengl.Options{
		Width:       settings.Window.Width,
		Height:      settings.Window.Height,
		Title:       settings.Window.Title,
		VSync:       settings.Window.VSync,
		Segments:    settings.Scene.Segments,
		ShowOverlay: settings.Scene.ShowOverlay,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer renderer.Terminate()

	state := settings.NewState()
	handler := input.NewHandler(settings.Simulation.ResetEnabled)
	sceneOpts := scene.OptionsFrom(settings.Scene)

	clock := core.NewFrameClock(renderer.Now())
	var stats core.FrameStats

	slog.Info("starting simulation",
		"variant", settings.Variant,
		"planets", len(state.Planets),
		"segments", settings.Scene.Segments,
	)

	for !renderer.ShouldClose() {
		now := renderer.Now()
		dt := clock.Tick(now)

		renderer.ProcessInput(handler, state)
		state.Advance(dt)

		w, h := renderer.Size()
		frame := scene.Build(state, sceneOpts, w, h)
		renderer.Select(&frame)
		renderer.Render(frame, scene.StatusBars(state, w, h), scene.Caption(state))
		renderer.PollEvents()

		if stats.Frame(now) {
			renderer.SetStatus(fmt.Sprintf("%.0f fps  %s", stats.FPS, scene.Caption(state)))
			slog.Debug("frame stats", "fps", stats.FPS, "clock", state.Clock)
		}
	}

	slog.Info("shutting down")
	return nil
}
