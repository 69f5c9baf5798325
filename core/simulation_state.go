package core

// Limits bounds the user-adjustable simulation controls.
type Limits struct {
	SpeedMin  float32
	SpeedMax  float32
	SpeedStep float32 // applied once per frame while a speed key is held

	ZoomMin  float32
	ZoomMax  float32
	ZoomStep float32 // zoom change per scroll unit
}

// State is the whole mutable simulation. One frame loop owns it and passes it by
// pointer to the input handler and the renderers; nothing else holds a copy.
type State struct {
	Planets []Planet

	Paused    bool
	TimeSpeed float32
	Zoom      float32

	// Clock is simulated time in seconds scaled by TimeSpeed. Planet angles are
	// integrated separately and are not derived from it.
	Clock float64

	Limits Limits

	// ResetPlanets makes Reset also rewind every planet to angle 0. Off by default:
	// the reset key only rewinds the clock.
	ResetPlanets bool
}

// NewState builds a running simulation. timeSpeed and zoom are clamped into limits.
func NewState(planets []Planet, limits Limits, timeSpeed, zoom float32) *State {
	s := &State{
		Planets: planets,
		Limits:  limits,
	}
	s.TimeSpeed = clamp(timeSpeed, limits.SpeedMin, limits.SpeedMax)
	s.Zoom = clamp(zoom, limits.ZoomMin, limits.ZoomMax)
	for i := range s.Planets {
		s.Planets[i].Angle = NormalizeAngle(s.Planets[i].Angle)
	}
	return s
}

// Advance moves every planet along its orbit by deltaTime seconds of real time.
// It does nothing while paused. Negative deltas are ignored.
func (s *State) Advance(deltaTime float64) {
	if s.Paused || deltaTime <= 0 {
		return
	}

	scaled := deltaTime * float64(s.TimeSpeed)
	for i := range s.Planets {
		p := &s.Planets[i]
		p.Angle = NormalizeAngle(p.Angle + scaled*float64(p.Speed))
	}
	s.Clock += scaled
}

// SetPaused freezes or resumes Advance. Rendering is unaffected.
func (s *State) SetPaused(paused bool) {
	s.Paused = paused
}

// TogglePaused flips the pause flag and returns the new value.
func (s *State) TogglePaused() bool {
	s.Paused = !s.Paused
	return s.Paused
}

// AdjustSpeed adds delta to TimeSpeed and clamps the result.
func (s *State) AdjustSpeed(delta float32) {
	s.TimeSpeed = clamp(s.TimeSpeed+delta, s.Limits.SpeedMin, s.Limits.SpeedMax)
}

// AdjustZoom adds delta to Zoom and clamps the result.
func (s *State) AdjustZoom(delta float32) {
	s.Zoom = clamp(s.Zoom+delta, s.Limits.ZoomMin, s.Limits.ZoomMax)
}

// Scroll applies a scroll-wheel offset. Scrolling up zooms in (smaller extent).
func (s *State) Scroll(yoffset float64) {
	s.AdjustZoom(-float32(yoffset) * s.Limits.ZoomStep)
}

// Reset rewinds the simulated clock. Planet angles are only rewound when
// ResetPlanets is set.
func (s *State) Reset() {
	s.Clock = 0
	if !s.ResetPlanets {
		return
	}
	for i := range s.Planets {
		s.Planets[i].Angle = 0
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
