package app

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/hangarbay/internal/asset"
	"github.com/coreman2200/hangarbay/internal/clock"
	diag "github.com/coreman2200/hangarbay/internal/diagnostics"
	"github.com/coreman2200/hangarbay/internal/drill"
	"github.com/coreman2200/hangarbay/internal/input"
	"github.com/coreman2200/hangarbay/internal/metrics"
	"github.com/coreman2200/hangarbay/internal/render"
	"github.com/coreman2200/hangarbay/internal/scene"
)

var ErrDrillRunning = errors.New("app: a drill is already running")

type Options struct {
	Scene    scene.Config
	Assets   *asset.Store // nil uses asset.Default()
	Driver   render.Driver
	FPS      int
	MaxDelta float32
	Log      zerolog.Logger
	Metrics  *metrics.Collector
	Diag     func(diag.Diagnostic)
	Now      func() time.Time
}

// Core owns the scene and everything that touches it on the frame loop.
// Command, Look and RunDrill may be called from any goroutine; they are
// picked up at the start of the next frame.
type Core struct {
	Scene *scene.Scene
	Eng   *render.Engine
	Queue *input.Queue
	Clock *clock.Clock

	fps     *clock.FPSCounter
	log     zerolog.Logger
	metrics *metrics.Collector
	diag    func(diag.Diagnostic)
	rate    int

	mu      sync.Mutex
	cursor  *[2]float64
	pending *drill.Runner
	running bool

	drill *drill.Runner
}

func InitCore(o Options) (*Core, error) {
	store := o.Assets
	if store == nil {
		store = asset.Default()
	}
	sc, err := scene.New(o.Scene, o.Log)
	if err != nil {
		return nil, err
	}
	eng, err := render.NewEngine(store, o.Driver)
	if err != nil {
		return nil, err
	}
	eng.Log = o.Log
	if o.FPS <= 0 {
		o.FPS = 60
	}
	c := &Core{
		Scene:   sc,
		Eng:     eng,
		Queue:   &input.Queue{},
		Clock:   clock.New(o.Now, o.MaxDelta),
		fps:     clock.NewFPSCounter(),
		log:     o.Log,
		metrics: o.Metrics,
		diag:    o.Diag,
		rate:    o.FPS,
	}
	sc.Events = c.onSceneEvent
	c.metrics.SetLines(sc.Lines().Counts())
	return c, nil
}

func (c *Core) onSceneEvent(e scene.Event) {
	switch e.Kind {
	case scene.SequenceComplete:
		c.metrics.SequenceComplete(e.Finished)
		c.pushDiag(diag.SequenceComplete(e.Line, e.LineName, string(e.Finished)))
	case scene.IndicatorChanged:
		c.metrics.SetEmergency(e.On)
		c.pushDiag(diag.Indicator(e.On))
	}
}

func (c *Core) pushDiag(d diag.Diagnostic) {
	if c.diag != nil {
		c.diag(d)
	}
}

// Command queues a scene command for the next frame.
func (c *Core) Command(cmd input.Command) { c.Queue.Push(cmd) }

// Look records a cursor position; only the latest one per frame is applied.
func (c *Core) Look(x, y float64) {
	c.mu.Lock()
	c.cursor = &[2]float64{x, y}
	c.mu.Unlock()
}

// RunDrill schedules a drill to start on the next frame.
func (c *Core) RunDrill(p drill.Plan) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running || c.pending != nil {
		return ErrDrillRunning
	}
	c.pending = drill.NewRunner(p)
	return nil
}

// DrillRunning reports whether a drill is scheduled or in progress.
func (c *Core) DrillRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running || c.pending != nil
}
