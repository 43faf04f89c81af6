package render

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Driver consumes finished frames (console, websocket, terminal UI).
type Driver interface {
	Write(*Frame) error
}

// MultiDriver writes to every driver and returns the first error after
// trying them all.
type MultiDriver []Driver

func (m MultiDriver) Write(f *Frame) error {
	var first error
	for _, d := range m {
		if d == nil {
			continue
		}
		if err := d.Write(f); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Engine collects a Source's draw calls into a Frame, drops calls whose
// model does not resolve, then writes the frame to the driver.
type Engine struct {
	Res Resolver
	Drv Driver
	Log zerolog.Logger

	now    func() time.Time
	nextID uint64
	warned map[string]bool

	// metrics (last durations in ms)
	Last struct {
		BuildMS float64
		WriteMS float64
		TotalMS float64
		Calls   int
		Skipped int
	}
}

func NewEngine(res Resolver, drv Driver) (*Engine, error) {
	if res == nil {
		return nil, errors.New("render: nil resolver")
	}
	return &Engine{
		Res:    res,
		Drv:    drv,
		Log:    zerolog.Nop(),
		now:    time.Now,
		warned: map[string]bool{},
	}, nil
}

// RenderOnce builds and writes a single frame. dt is recorded on the frame
// as given.
func (e *Engine) RenderOnce(src Source, dt float32) (*Frame, error) {
	start := time.Now()
	e.nextID++
	raw := &Frame{ID: e.nextID, Time: e.now(), DeltaTime: dt}
	if src != nil {
		src.Draw(raw)
	}

	f := &Frame{ID: raw.ID, Time: raw.Time, DeltaTime: dt, Calls: raw.Calls[:0]}
	for _, c := range raw.Calls {
		if _, err := e.Res.Resolve(c.Model); err != nil {
			f.Skipped++
			if !e.warned[c.Model] {
				e.warned[c.Model] = true
				e.Log.Warn().Str("model", c.Model).Msg("skipping draw call for unknown model")
			}
			continue
		}
		f.Calls = append(f.Calls, c)
	}
	e.Last.BuildMS = float64(time.Since(start).Microseconds()) / 1000.0

	writeStart := time.Now()
	if e.Drv != nil {
		if err := e.Drv.Write(f); err != nil {
			return f, err
		}
	}
	e.Last.WriteMS = float64(time.Since(writeStart).Microseconds()) / 1000.0
	e.Last.TotalMS = float64(time.Since(start).Microseconds()) / 1000.0
	e.Last.Calls = len(f.Calls)
	e.Last.Skipped = f.Skipped
	return f, nil
}
