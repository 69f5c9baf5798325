package terminal

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"orrery/core"
	"orrery/input"
	"orrery/rendering/scene"
)

// Run drives the simulation on screen until the user quits or ctx is done.
// Events are read on a separate goroutine and handed over on a channel; only
// this goroutine touches s.
func Run(ctx context.Context, r *Renderer, s *core.State, h *input.Handler, opts scene.Options, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	start := time.Now()
	clock := core.NewFrameClock(0)
	var stats core.FrameStats

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				r.screen.Sync()
			default:
				if h.Apply(ActionFor(ev), s) {
					return nil
				}
			}

		case now := <-ticker.C:
			t := now.Sub(start).Seconds()
			s.Advance(clock.Tick(t))

			w, hgt := r.ViewSize()
			r.Draw(scene.Build(s, opts, w, hgt), scene.Caption(s))
			r.screen.Show()

			if stats.Frame(t) {
				slog.Debug("frame stats", "fps", stats.FPS, "clock", s.Clock)
			}
		}
	}
}

// ActionFor maps a terminal event onto a control action.
func ActionFor(ev tcell.Event) input.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return input.ActionQuit
		case tcell.KeyPgUp:
			return input.ActionZoomIn
		case tcell.KeyPgDn:
			return input.ActionZoomOut
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				return input.ActionTogglePause
			case '+', '=':
				return input.ActionSpeedUp
			case '-':
				return input.ActionSlowDown
			case 'r', 'R':
				return input.ActionReset
			case 'q':
				return input.ActionQuit
			}
		}
	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			return input.ActionZoomIn
		case ev.Buttons()&tcell.WheelDown != 0:
			return input.ActionZoomOut
		}
	}
	return input.ActionNone
}
