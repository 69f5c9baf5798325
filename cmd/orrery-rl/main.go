// Command orrery-rl runs the solar system through the raylib backend.
package main

import (
	"flag"
	"log/slog"
	"os"

	"orrery/config"
	"orrery/input"
	"orrery/rendering/raylib"
	"orrery/rendering/scene"
)

func main() {
	var (
		configPath = flag.String("config", config.DefaultPath, "Settings file")
		variant    = flag.String("variant", "", "Preset: classic or refined")
		fps        = flag.Int("fps", 60, "Target frame rate")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	settings, err := config.Load(*configPath, *variant)
	if err != nil {
		slog.Error("failed to load settings", "err", err)
		os.Exit(1)
	}

	state := settings.NewState()
	handler := input.NewHandler(settings.Simulation.ResetEnabled)

	raylib.Run(raylib.Options{
		Width:       settings.Window.Width,
		Height:      settings.Window.Height,
		Title:       settings.Window.Title,
		TargetFPS:   *fps,
		Segments:    settings.Scene.Segments,
		ShowOverlay: settings.Scene.ShowOverlay,
	}, state, handler, scene.OptionsFrom(settings.Scene))
}
