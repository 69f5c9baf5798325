package input

import (
	"log/slog"

	"orrery/core"
)

// Action is a discrete control event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTogglePause
	ActionSpeedUp
	ActionSlowDown
	ActionReset
	ActionZoomIn
	ActionZoomOut
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionTogglePause:
		return "toggle-pause"
	case ActionSpeedUp:
		return "speed-up"
	case ActionSlowDown:
		return "slow-down"
	case ActionReset:
		return "reset"
	case ActionZoomIn:
		return "zoom-in"
	case ActionZoomOut:
		return "zoom-out"
	}
	return "none"
}

// Handler maps keys onto the simulation state. Pause and reset fire on the
// key-down transition only; speed keys act every frame they are held.
type Handler struct {
	ResetEnabled bool

	held [keyCount]bool
}

func NewHandler(resetEnabled bool) *Handler {
	return &Handler{ResetEnabled: resetEnabled}
}

// Poll samples the keyboard once per frame, applies the resulting actions to s and
// reports whether the user asked to quit.
func (h *Handler) Poll(kb Keyboard, s *core.State) (quit bool) {
	if kb.Pressed(KeyEscape) {
		quit = true
	}

	if h.edge(kb, KeySpace) {
		h.Apply(ActionTogglePause, s)
	}

	if kb.Pressed(KeyEqual) || kb.Pressed(KeyKPAdd) {
		h.Apply(ActionSpeedUp, s)
	}
	if kb.Pressed(KeyMinus) || kb.Pressed(KeyKPSubtract) {
		h.Apply(ActionSlowDown, s)
	}

	if h.edge(kb, KeyR) {
		h.Apply(ActionReset, s)
	}

	return quit
}

// edge records the current state of k and reports an up->down transition.
func (h *Handler) edge(kb Keyboard, k Key) bool {
	down := kb.Pressed(k)
	was := h.held[k]
	h.held[k] = down
	return down && !was
}

// Apply performs one discrete action. Event-driven backends call it directly.
// It reports whether the action asks the loop to stop.
func (h *Handler) Apply(a Action, s *core.State) (quit bool) {
	switch a {
	case ActionQuit:
		return true
	case ActionTogglePause:
		if s.TogglePaused() {
			slog.Info("simulation paused")
		} else {
			slog.Info("simulation resumed")
		}
	case ActionSpeedUp:
		s.AdjustSpeed(s.Limits.SpeedStep)
	case ActionSlowDown:
		s.AdjustSpeed(-s.Limits.SpeedStep)
	case ActionReset:
		if !h.ResetEnabled {
			return false
		}
		s.Reset()
		slog.Info("simulation clock reset", "planets", s.ResetPlanets)
	case ActionZoomIn:
		s.Scroll(1)
	case ActionZoomOut:
		s.Scroll(-1)
	}
	return false
}

// Scroll forwards a scroll-wheel offset to the zoom control.
func (h *Handler) Scroll(yoffset float64, s *core.State) {
	s.Scroll(yoffset)
}
