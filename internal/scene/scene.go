// Package scene assembles the hangar: tunnel, hangar shell, the openable
// back wall, props, starfield and lights. It owns all mutable scene state
// and is driven from a single goroutine.
package scene

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/coreman2200/hangarbay/internal/camera"
	"github.com/coreman2200/hangarbay/internal/input"
	"github.com/coreman2200/hangarbay/internal/light"
	"github.com/coreman2200/hangarbay/internal/panel"
	"github.com/coreman2200/hangarbay/internal/starfield"
)

type EventKind string

const (
	SequenceComplete EventKind = "sequence_complete"
	IndicatorChanged EventKind = "indicator_changed"
)

type Event struct {
	Kind     EventKind   `json:"kind"`
	Line     int         `json:"line"`
	LineName string      `json:"lineName,omitempty"`
	Finished panel.State `json:"finished,omitempty"`
	On       bool        `json:"on"`
}

type Scene struct {
	cfg    Config
	log    zerolog.Logger
	lines  *panel.Collection
	lights *light.Registry
	beacon *light.Beacon
	cam    *camera.Camera
	stars  []mgl32.Vec3

	indicator light.Switch
	emergency bool
	editMode  bool

	// Events, when set, observes completions and indicator flips.
	Events func(Event)
}

func New(cfg Config, log zerolog.Logger) (*Scene, error) {
	if cfg.Policy == "" {
		cfg.Policy = FirstLine
	}
	if _, err := ParsePolicy(string(cfg.Policy)); err != nil {
		return nil, err
	}
	s := &Scene{
		cfg:      cfg,
		log:      log,
		lights:   light.NewRegistry(),
		beacon:   light.NewBeacon(EmergencyLight),
		cam:      camera.New(cfg.Height, cfg.Width),
		editMode: true,
	}
	for _, l := range hangarLights() {
		if err := s.lights.Add(l); err != nil {
			return nil, err
		}
	}
	s.indicator = s.lights
	s.lines = panel.NewCollection(panel.Hooks{OnSequenceComplete: s.onSequenceComplete})
	for _, l := range BuildBackWall(cfg.BackWall) {
		if _, err := s.lines.Add(l); err != nil {
			return nil, err
		}
	}
	if cfg.Stars.Count > 0 {
		rng := rand.New(rand.NewSource(cfg.Stars.Seed))
		s.stars = starfield.Generate(rng, cfg.Stars.Count, cfg.Stars.MaxDistance, cfg.Stars.MinFraction)
	}
	log.Info().
		Int("lines", s.lines.Len()).
		Int("lights", s.lights.Len()).
		Int("stars", len(s.stars)).
		Str("policy", string(cfg.Policy)).
		Msg("scene ready")
	return s, nil
}

func (s *Scene) onSequenceComplete(i int, finished panel.State) {
	name := s.lines.Line(i).Name
	s.log.Info().Int("line", i).Str("name", name).Str("finished", string(finished)).Msg("sequence complete")
	s.emit(Event{Kind: SequenceComplete, Line: i, LineName: name, Finished: finished, On: s.emergency})
	switch s.cfg.Policy {
	case AllLines:
		if s.lines.Idle() {
			s.setEmergency(false)
		}
	default:
		s.setEmergency(false)
	}
}

func (s *Scene) emit(e Event) {
	if s.Events != nil {
		s.Events(e)
	}
}

func (s *Scene) setEmergency(on bool) {
	if err := s.indicator.SetOn(EmergencyLight, on); err != nil {
		s.log.Error().Err(err).Msg("emergency light")
	}
	if s.emergency == on {
		return
	}
	s.emergency = on
	s.emit(Event{Kind: IndicatorChanged, Line: -1, On: on})
}

// OpenAll turns the emergency light on and starts every line opening.
func (s *Scene) OpenAll() {
	s.setEmergency(true)
	s.lines.OpenAll()
}

// CloseAll turns the emergency light on and starts every line closing.
func (s *Scene) CloseAll() {
	s.setEmergency(true)
	s.lines.CloseAll()
}

// Update advances the panel lines, then sweeps the beacon if the light is
// still on.
func (s *Scene) Update(dt float32) {
	s.lines.Update(dt)
	if s.emergency {
		if err := s.beacon.Sweep(s.lights); err != nil {
			s.log.Error().Err(err).Msg("beacon sweep")
		}
	}
}

// Apply runs one command. Camera movement is ignored while in edit mode.
func (s *Scene) Apply(c input.Command) {
	switch c {
	case input.OpenAll:
		s.OpenAll()
	case input.CloseAll:
		s.CloseAll()
	case input.ToggleEdit:
		s.editMode = !s.editMode
		s.log.Debug().Bool("edit", s.editMode).Msg("edit mode")
	}
	if s.editMode || !c.IsMovement() {
		return
	}
	speed := s.cfg.MoveSpeed
	switch c {
	case input.Forward:
		s.cam.Forward(speed)
	case input.Back:
		s.cam.Back(speed)
	case input.Left:
		s.cam.StrafeLeft(speed)
	case input.Right:
		s.cam.StrafeRight(speed)
	case input.Rise:
		s.cam.Rise(speed)
	}
}

// Look feeds a cursor position to the camera outside edit mode.
func (s *Scene) Look(x, y float64) {
	if !s.editMode {
		s.cam.MoveCamera(x, y)
	}
}

func (s *Scene) EmergencyOn() bool { return s.emergency }
func (s *Scene) EditMode() bool { return s.editMode }
func (s *Scene) Lines() *panel.Collection { return s.lines }
func (s *Scene) Lights() *light.Registry { return s.lights }
func (s *Scene) Camera() *camera.Camera { return s.cam }
func (s *Scene) Stars() []mgl32.Vec3 { return s.stars }
func (s *Scene) Policy() IndicatorPolicy { return s.cfg.Policy }
func (s *Scene) Idle() bool { return s.lines.Idle() }
