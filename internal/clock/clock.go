// Package clock produces per-frame time deltas.
package clock

import "time"

// DefaultFallback is used for the first frame and any zero delta.
const DefaultFallback = 0.03

type Clock struct {
	Fallback float32
	MaxDelta float32 // 0 disables the cap

	now  func() time.Time
	prev time.Time
}

// New uses time.Now when now is nil. Readings are expected to be monotonic.
func New(now func() time.Time, maxDelta float32) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{Fallback: DefaultFallback, MaxDelta: maxDelta, now: now}
}

// Tick returns seconds since the previous Tick.
func (c *Clock) Tick() float32 {
	t := c.now()
	if c.prev.IsZero() {
		c.prev = t
		return c.Fallback
	}
	dt := float32(t.Sub(c.prev).Seconds())
	c.prev = t
	if dt <= 0 {
		return c.Fallback
	}
	if c.MaxDelta > 0 && dt > c.MaxDelta {
		return c.MaxDelta
	}
	return dt
}

// FPSCounter averages frames over a short window.
type FPSCounter struct {
	Window  float32
	elapsed float32
	frames  float32
}

func NewFPSCounter() *FPSCounter { return &FPSCounter{Window: 0.03} }

// Add records one frame. Once Window seconds have accumulated it returns
// frames per second and milliseconds per frame and starts a new window.
func (f *FPSCounter) Add(dt float32) (fps, ms float32, ok bool) {
	f.elapsed += dt
	f.frames++
	if f.elapsed < f.Window || f.elapsed == 0 {
		return 0, 0, false
	}
	fps = f.frames / f.elapsed
	ms = 1000 * f.elapsed / f.frames
	f.elapsed, f.frames = 0, 0
	return fps, ms, true
}
