package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/coreman2200/hangarbay/internal/light"
	"github.com/coreman2200/hangarbay/internal/panel"
)

type LineSnapshot struct {
	Name     string       `json:"name"`
	State    panel.State  `json:"state"`
	Order    panel.Order  `json:"order"`
	Progress float32      `json:"progress"`
	Panels   []mgl32.Vec3 `json:"panels"`
}

type CameraSnapshot struct {
	Position  mgl32.Vec3 `json:"position"`
	Direction mgl32.Vec3 `json:"direction"`
}

// Snapshot is a copy of the scene's observable state, safe to hand to other
// goroutines.
type Snapshot struct {
	Lines     []LineSnapshot      `json:"lines"`
	Counts    map[panel.State]int `json:"counts"`
	Emergency bool                `json:"emergency"`
	Beacon    mgl32.Vec3          `json:"beacon"`
	EditMode  bool                `json:"editMode"`
	Policy    IndicatorPolicy     `json:"policy"`
	Camera    CameraSnapshot      `json:"camera"`
	Lights    []light.Light       `json:"lights"`
}

func (s *Scene) Snapshot() Snapshot {
	out := Snapshot{
		Counts:    s.lines.Counts(),
		Emergency: s.emergency,
		EditMode:  s.editMode,
		Policy:    s.cfg.Policy,
		Camera:    CameraSnapshot{Position: s.cam.Position, Direction: s.cam.Direction},
		Lights:    s.lights.List(),
	}
	if l, ok := s.lights.Get(EmergencyLight); ok {
		out.Beacon = l.Direction
	}
	for _, l := range s.lines.Lines() {
		ls := LineSnapshot{
			Name:     l.Name,
			State:    l.State(),
			Order:    l.Order,
			Progress: l.Progress(),
			Panels:   make([]mgl32.Vec3, len(l.Panels)),
		}
		for i, p := range l.Panels {
			ls.Panels[i] = p.Current
		}
		out.Lines = append(out.Lines, ls)
	}
	return out
}
