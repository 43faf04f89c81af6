package panel

import "github.com/go-gl/mathgl/mgl32"

// ClosedEpsilon is the absolute distance under which a panel counts as closed.
const ClosedEpsilon = 0.01

// Panel is one rigid wall segment that slides along its line's open axis.
type Panel struct {
	Current        mgl32.Vec3 `json:"current"`
	Closed         mgl32.Vec3 `json:"closed"`
	OpenedDistance float32    `json:"openedDistance"`
}

// NewPanel returns a panel resting at its closed pose.
func NewPanel(closed mgl32.Vec3, openedDistance float32) Panel {
	return Panel{Current: closed, Closed: closed, OpenedDistance: openedDistance}
}

// Distance is how far the panel currently sits from its closed pose.
func (p Panel) Distance() float32 {
	return p.Current.Sub(p.Closed).Len()
}

// IsOpen has no epsilon: the threshold itself counts as open.
func (p Panel) IsOpen() bool {
	return p.Distance() >= p.OpenedDistance
}

func (p Panel) IsClosed() bool {
	return p.Distance() <= ClosedEpsilon
}

// Order selects which end of a line activates first when opening.
type Order string

const (
	Forward Order = "forward"
	Reverse Order = "reverse"
)

// State enumerates line states.
type State string

const (
	Idle    State = "idle"
	Opening State = "opening"
	Closing State = "closing"
)

// Hooks are injected callbacks fired by a Collection.
type Hooks struct {
	// OnSequenceComplete fires once per finished run, with the index of the
	// line in its collection and the direction that just finished.
	OnSequenceComplete func(line int, finished State)
}
