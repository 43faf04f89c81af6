// Package metrics exposes the frame loop and the panel lines to Prometheus.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coreman2200/hangarbay/internal/panel"
)

type Collector struct {
	gatherer prometheus.Gatherer

	Frames             prometheus.Counter
	FrameBuild         prometheus.Histogram
	SequencesCompleted *prometheus.CounterVec
	Lines              *prometheus.GaugeVec
	Emergency          prometheus.Gauge
	DrawCalls          prometheus.Gauge
	SkippedDrawCalls   prometheus.Counter
}

// New registers the collectors against reg, defaulting to the global
// registry when nil. Registering twice against the same registry returns
// the existing collectors.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}
	c := &Collector{gatherer: gatherer}

	var err error
	if c.Frames, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hangar_frames_total",
		Help: "Frames rendered by the loop.",
	})); err != nil {
		return nil, err
	}
	if c.FrameBuild, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hangar_frame_build_seconds",
		Help:    "Time to update the scene and build one frame.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	})); err != nil {
		return nil, err
	}
	if c.SequencesCompleted, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hangar_sequences_completed_total",
		Help: "Finished open or close runs, labeled by the state that finished.",
	}, []string{"state"})); err != nil {
		return nil, err
	}
	if c.Lines, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hangar_lines",
		Help: "Panel lines per state.",
	}, []string{"state"})); err != nil {
		return nil, err
	}
	if c.Emergency, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hangar_emergency_light",
		Help: "1 while the emergency light is on.",
	})); err != nil {
		return nil, err
	}
	if c.DrawCalls, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hangar_draw_calls",
		Help: "Draw calls in the last frame.",
	})); err != nil {
		return nil, err
	}
	if c.SkippedDrawCalls, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hangar_skipped_draw_calls_total",
		Help: "Draw calls dropped because their model key did not resolve.",
	})); err != nil {
		return nil, err
	}
	return c, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, col T) (T, error) {
	if err := reg.Register(col); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, errors.New("metrics: collector already registered with incompatible type")
		}
		var zero T
		return zero, err
	}
	return col, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// ObserveFrame records one rendered frame. Safe on a nil collector.
func (c *Collector) ObserveFrame(buildSeconds float64, calls, skipped int) {
	if c == nil {
		return
	}
	c.Frames.Inc()
	c.FrameBuild.Observe(buildSeconds)
	c.DrawCalls.Set(float64(calls))
	if skipped > 0 {
		c.SkippedDrawCalls.Add(float64(skipped))
	}
}

func (c *Collector) SequenceComplete(finished panel.State) {
	if c == nil {
		return
	}
	c.SequencesCompleted.WithLabelValues(string(finished)).Inc()
}

func (c *Collector) SetLines(counts map[panel.State]int) {
	if c == nil {
		return
	}
	for s, n := range counts {
		c.Lines.WithLabelValues(string(s)).Set(float64(n))
	}
}

func (c *Collector) SetEmergency(on bool) {
	if c == nil {
		return
	}
	v := 0.0
	if on {
		v = 1
	}
	c.Emergency.Set(v)
}
