package viewer

// Clock measures time between frames. Timestamps are seconds from the
// window backend.
type Clock struct {
	Last  float64
	Delta float32
}

// Tick records now and returns the time since the previous tick.
func (c *Clock) Tick(now float64) float32 {
	c.Delta = float32(now - c.Last)
	if c.Delta < 0 {
		c.Delta = 0
	}
	c.Last = now
	return c.Delta
}

// fpsCounter counts frames over one-second windows.
type fpsCounter struct {
	start  float64
	frames int
}

// frame counts one frame at time now. When a second has passed it returns
// the frame count for that second and starts a new window.
func (f *fpsCounter) frame(now float64) (int, bool) {
	f.frames++
	if now-f.start < 1 {
		return 0, false
	}
	n := f.frames
	f.frames = 0
	f.start = now
	return n, true
}
