package config

import (
	"fmt"
	"sort"
)

// Variant names. Classic is the 64-segment demo; Refined trades vertex count for
// smoothness, widens the speed range, narrows zoom and corrects for aspect ratio.
const (
	Classic = "classic"
	Refined = "refined"
)

var presets = map[string]func() Settings{
	Classic: classic,
	Refined: refined,
}

// Preset returns the default settings for a variant.
func Preset(variant string) (Settings, error) {
	build, ok := presets[variant]
	if !ok {
		return Settings{}, fmt.Errorf("%w %q (have %v)", ErrUnknownVariant, variant, Variants())
	}
	return build(), nil
}

// Variants lists the known variant names in sorted order.
func Variants() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func base() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  800,
			Height: 800,
			Title:  "Solar System",
			VSync:  true,
		},
		Simulation: SimulationSettings{
			TimeSpeed: 0.005,
			Zoom:      1.0,
			SpeedStep: 0.001,
			ZoomStep:  0.05,
		},
		Scene: SceneSettings{
			SunRadius:   0.08,
			SunColor:    Color{1.0, 1.0, 0.0},
			OrbitColor:  Color{0.3, 0.3, 0.3},
			Background:  Color{0.0, 0.0, 0.03},
			ShowOverlay: true,
		},
	}
}

func classic() Settings {
	s := base()
	s.Variant = Classic
	s.Simulation.SpeedMin, s.Simulation.SpeedMax = 0.001, 1.0
	s.Simulation.ZoomMin, s.Simulation.ZoomMax = 0.1, 5.0
	s.Simulation.ResetEnabled = true
	s.Scene.Segments = 64
	return s
}

func refined() Settings {
	s := base()
	s.Variant = Refined
	s.Simulation.SpeedMin, s.Simulation.SpeedMax = 0.001, 3.0
	s.Simulation.ZoomMin, s.Simulation.ZoomMax = 0.95, 2.0
	s.Scene.Segments = 512
	s.Scene.AspectCorrection = true
	return s
}
