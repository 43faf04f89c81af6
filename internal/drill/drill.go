// Package drill runs scripted open/close exercises against the back wall,
// one frame at a time.
package drill

import "fmt"

type Kind string

const (
	None Kind = ""
	// Cycle opens until idle, then closes until idle.
	Cycle Kind = "cycle"
	// Reverse opens for ReverseAfter frames, then closes until idle.
	Reverse Kind = "reverse"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Cycle, Reverse:
		return k, nil
	}
	return None, fmt.Errorf("drill: unknown kind %q", s)
}

// Target is the slice of the scene a drill drives.
type Target interface {
	OpenAll()
	CloseAll()
	Idle() bool
}

type Plan struct {
	Kind         Kind
	ReverseAfter int // frames of opening before a Reverse drill closes
	MaxFrames    int // 0 means DefaultMaxFrames
}

const DefaultMaxFrames = 100000

type phase int

const (
	start phase = iota
	opening
	closing
	done
)

type Runner struct {
	plan  Plan
	phase phase
	step  int
	err   error
}

func NewRunner(plan Plan) *Runner {
	if plan.MaxFrames <= 0 {
		plan.MaxFrames = DefaultMaxFrames
	}
	return &Runner{plan: plan}
}

func (r *Runner) Kind() Kind { return r.plan.Kind }
func (r *Runner) Frames() int { return r.step }
func (r *Runner) Err() error { return r.err }
func (r *Runner) Done() bool { return r.phase == done }

// Step issues whatever command the drill needs this frame. It runs before
// the frame's Update and returns false once the drill is complete.
func (r *Runner) Step(t Target) bool {
	if r.phase == done {
		return false
	}
	if r.step >= r.plan.MaxFrames {
		r.err = fmt.Errorf("drill: %s exceeded %d frames", r.plan.Kind, r.plan.MaxFrames)
		r.phase = done
		return false
	}

	switch r.plan.Kind {
	case Cycle:
		switch r.phase {
		case start:
			t.OpenAll()
			r.phase = opening
		case opening:
			if t.Idle() {
				t.CloseAll()
				r.phase = closing
			}
		case closing:
			if t.Idle() {
				r.phase = done
				return false
			}
		}
	case Reverse:
		switch r.phase {
		case start:
			t.OpenAll()
			r.phase = opening
		case opening:
			if r.step >= r.plan.ReverseAfter || t.Idle() {
				t.CloseAll()
				r.phase = closing
			}
		case closing:
			if t.Idle() {
				r.phase = done
				return false
			}
		}
	default:
		r.phase = done
		return false
	}
	r.step++
	return true
}
