package app

import (
	"context"
	"time"

	diag "github.com/coreman2200/hangarbay/internal/diagnostics"
	"github.com/coreman2200/hangarbay/internal/render"
)

// Step runs one frame with an explicit delta: queued commands, cursor,
// drill, scene update, render.
func (c *Core) Step(dt float32) (*render.Frame, error) {
	start := time.Now()

	for _, cmd := range c.Queue.Drain() {
		c.Scene.Apply(cmd)
	}

	c.mu.Lock()
	cursor := c.cursor
	c.cursor = nil
	if c.pending != nil {
		c.drill, c.pending, c.running = c.pending, nil, true
		c.log.Info().Str("drill", string(c.drill.Kind())).Msg("drill started")
	}
	c.mu.Unlock()
	if cursor != nil {
		c.Scene.Look(cursor[0], cursor[1])
	}

	if c.drill != nil && !c.drill.Step(c.Scene) {
		r := c.drill
		c.drill = nil
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
		ev := c.log.Info()
		if r.Err() != nil {
			ev = c.log.Warn().Err(r.Err())
		}
		ev.Str("drill", string(r.Kind())).Int("frames", r.Frames()).Msg("drill finished")
		c.pushDiag(diag.Drill(string(r.Kind()), r.Err()))
	}

	c.Scene.Update(dt)

	f, err := c.Eng.RenderOnce(c.Scene, dt)
	if err != nil {
		c.log.Error().Err(err).Uint64("frame", f.ID).Msg("driver write")
		c.pushDiag(diag.DriverWrite(err))
	}
	if f.Skipped > 0 && f.ID == 1 {
		c.pushDiag(diag.UnknownModels(f.Skipped))
	}

	c.metrics.ObserveFrame(time.Since(start).Seconds(), len(f.Calls), f.Skipped)
	c.metrics.SetLines(c.Scene.Lines().Counts())
	return f, err
}

// Run drives Step from a ticker at the configured rate until ctx is
// cancelled. Deltas come from the wall clock, not the tick period.
func (c *Core) Run(ctx context.Context) error {
	period := time.Second / time.Duration(c.rate)
	budgetMS := float64(period.Microseconds()) / 1000.0
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	c.log.Info().Int("fps", c.rate).Msg("frame loop started")
	for {
		select {
		case <-ctx.Done():
			c.log.Info().Msg("frame loop stopped")
			return nil
		case <-ticker.C:
			dt := c.Clock.Tick()
			if _, err := c.Step(dt); err != nil {
				continue
			}
			if fps, ms, ok := c.fps.Add(dt); ok {
				c.log.Trace().Float32("fps", fps).Float32("ms", ms).Msg("frame rate")
			}
			if c.Eng.Last.TotalMS > 2*budgetMS {
				c.pushDiag(diag.SlowFrame(c.Eng.Last.TotalMS, budgetMS))
			}
		}
	}
}
