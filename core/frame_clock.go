package core

// FrameClock turns absolute timestamps (seconds, from whatever timer the backend
// has) into per-frame deltas.
type FrameClock struct {
	last float64
}

// NewFrameClock starts measuring from now.
func NewFrameClock(now float64) *FrameClock {
	return &FrameClock{last: now}
}

// Tick returns the time since the previous Tick (or construction) and records now.
// A timer that steps backwards yields 0 rather than a negative delta.
func (c *FrameClock) Tick(now float64) float64 {
	dt := now - c.last
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// FrameStats counts frames and refreshes FPS once per second.
type FrameStats struct {
	FPS float64

	frames      int
	windowStart float64
	started     bool
}

// Frame records one rendered frame at time now. It reports true when FPS was
// recomputed during this call.
func (fs *FrameStats) Frame(now float64) bool {
	if !fs.started {
		fs.started = true
		fs.windowStart = now
	}
	fs.frames++

	elapsed := now - fs.windowStart
	if elapsed < 1.0 {
		return false
	}
	fs.FPS = float64(fs.frames) / elapsed
	fs.frames = 0
	fs.windowStart = now
	return true
}
