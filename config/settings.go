package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"orrery/core"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "settings.json"

// ErrUnknownVariant is returned for a variant name with no preset.
var ErrUnknownVariant = errors.New("unknown variant")

type Settings struct {
	Variant    string             `json:"variant"`
	Window     WindowSettings     `json:"window"`
	Simulation SimulationSettings `json:"simulation"`
	Scene      SceneSettings      `json:"scene"`
	Planets    []PlanetSettings   `json:"planets,omitempty"`
}

type WindowSettings struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	VSync  bool   `json:"vsync"`
}

type SimulationSettings struct {
	TimeSpeed float32 `json:"timeSpeed"`
	Zoom      float32 `json:"zoom"`

	SpeedMin  float32 `json:"speedMin"`
	SpeedMax  float32 `json:"speedMax"`
	SpeedStep float32 `json:"speedStep"`

	ZoomMin  float32 `json:"zoomMin"`
	ZoomMax  float32 `json:"zoomMax"`
	ZoomStep float32 `json:"zoomStep"`

	ResetEnabled bool `json:"resetEnabled"`
	ResetPlanets bool `json:"resetPlanets"`
}

type SceneSettings struct {
	Segments         int     `json:"segments"`
	AspectCorrection bool    `json:"aspectCorrection"`
	SunRadius        float32 `json:"sunRadius"`
	SunColor         Color   `json:"sunColor"`
	OrbitColor       Color   `json:"orbitColor"`
	Background       Color   `json:"background"`
	ShowOverlay      bool    `json:"showOverlay"`
}

type PlanetSettings struct {
	Name        string  `json:"name"`
	OrbitRadius float32 `json:"orbitRadius"`
	Radius      float32 `json:"radius"`
	Speed       float32 `json:"speed"`
	Color       Color   `json:"color"`
	Angle       float64 `json:"angle,omitempty"`
}

// Load reads settings from path on top of the preset for variant. An empty
// variant falls back to the file's "variant" field, then to Classic. A missing
// file is not an error; the preset is returned as is.
func Load(path, variant string) (Settings, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("reading %s: %w", path, err)
		}
		slog.Info("no settings file found, using defaults", "path", path)
		data = nil
	}

	if variant == "" && data != nil {
		var head struct {
			Variant string `json:"variant"`
		}
		if err := json.Unmarshal(data, &head); err != nil {
			return Settings{}, fmt.Errorf("error parsing %s: %w", path, err)
		}
		variant = head.Variant
	}
	if variant == "" {
		variant = Classic
	}

	s, err := Preset(variant)
	if err != nil {
		return Settings{}, err
	}
	if data != nil {
		if err := json.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("error parsing %s: %w", path, err)
		}
		// an explicit variant argument wins over the file
		s.Variant = variant
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	slog.Debug("settings loaded",
		"variant", s.Variant,
		"segments", s.Scene.Segments,
		"planets", len(s.Planets),
	)
	return s, nil
}

// Validate rejects settings that would break the clamp laws or the renderer.
func (s Settings) Validate() error {
	sim := s.Simulation
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	case sim.SpeedMin > sim.SpeedMax:
		return fmt.Errorf("speed range [%g, %g] is inverted", sim.SpeedMin, sim.SpeedMax)
	case sim.ZoomMin <= 0 || sim.ZoomMin > sim.ZoomMax:
		return fmt.Errorf("zoom range [%g, %g] must be positive and ordered", sim.ZoomMin, sim.ZoomMax)
	case s.Scene.Segments < core.MinCircleSegments:
		return fmt.Errorf("segments %d below minimum %d", s.Scene.Segments, core.MinCircleSegments)
	}
	for i, p := range s.Planets {
		if p.OrbitRadius <= 0 || p.Radius <= 0 {
			return fmt.Errorf("planet %d (%s): radii must be positive", i, p.Name)
		}
	}
	return nil
}

// Limits returns the clamp ranges and step sizes for core.State.
func (s Settings) Limits() core.Limits {
	sim := s.Simulation
	return core.Limits{
		SpeedMin:  sim.SpeedMin,
		SpeedMax:  sim.SpeedMax,
		SpeedStep: sim.SpeedStep,
		ZoomMin:   sim.ZoomMin,
		ZoomMax:   sim.ZoomMax,
		ZoomStep:  sim.ZoomStep,
	}
}

// PlanetTable converts the configured planets, or the built-in table when none are
// configured.
func (s Settings) PlanetTable() []core.Planet {
	if len(s.Planets) == 0 {
		return core.DefaultPlanets()
	}
	planets := make([]core.Planet, len(s.Planets))
	for i, p := range s.Planets {
		planets[i] = core.Planet{
			Name:        p.Name,
			OrbitRadius: p.OrbitRadius,
			Radius:      p.Radius,
			Speed:       p.Speed,
			Color:       p.Color,
			Angle:       p.Angle,
		}
	}
	return planets
}

// NewState builds the simulation state these settings describe.
func (s Settings) NewState() *core.State {
	st := core.NewState(s.PlanetTable(), s.Limits(), s.Simulation.TimeSpeed, s.Simulation.Zoom)
	st.ResetPlanets = s.Simulation.ResetPlanets
	return st
}
