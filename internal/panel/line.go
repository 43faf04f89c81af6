package panel

import "github.com/go-gl/mathgl/mgl32"

// Line is an ordered run of panels sharing one open axis. Insertion order is
// the activation sequence.
//
// OpenDirection doubles as velocity: each active tick moves a panel by
// OpenDirection*dt, there is no separate speed.
type Line struct {
	Name          string
	Panels        []Panel
	OpenDirection mgl32.Vec3
	Order         Order

	state      State
	onComplete func(finished State)
}

// NewLine builds an idle line with one closed panel per position.
func NewLine(name string, dir mgl32.Vec3, order Order, openedDistance float32, closed ...mgl32.Vec3) *Line {
	l := &Line{
		Name:          name,
		OpenDirection: dir,
		Order:         order,
		state:         Idle,
		Panels:        make([]Panel, 0, len(closed)),
	}
	for _, c := range closed {
		l.Panels = append(l.Panels, NewPanel(c, openedDistance))
	}
	return l
}

// State reports the current mode.
func (l *Line) State() State {
	if l.state == "" {
		return Idle
	}
	return l.state
}

// Open starts (or restarts) the opening run from wherever the panels are.
// A closing line reverses immediately without repositioning.
func (l *Line) Open() { l.state = Opening }

// Close is the mirror of Open.
func (l *Line) Close() { l.state = Closing }

// OnComplete replaces the completion callback.
func (l *Line) OnComplete(f func(finished State)) { l.onComplete = f }

// Update advances the line by dt seconds.
func (l *Line) Update(dt float32) {
	if dt < 0 {
		return
	}
	switch l.State() {
	case Opening:
		l.stepOpen(dt)
	case Closing:
		l.stepClose(dt)
	}
}

// Progress is the fraction of panels already satisfying the predicate the
// current run is heading for. Idle lines report progress toward open.
func (l *Line) Progress() float32 {
	if len(l.Panels) == 0 {
		return 1
	}
	done := 0
	for _, p := range l.Panels {
		if l.State() == Closing {
			if p.IsClosed() {
				done++
			}
		} else if p.IsOpen() {
			done++
		}
	}
	return float32(done) / float32(len(l.Panels))
}

// index maps a scan position to a slice index.
func (l *Line) index(pos int, reversed bool) int {
	if reversed {
		return len(l.Panels) - 1 - pos
	}
	return pos
}

// stepOpen re-walks the line from the scan start every tick. Panels in front
// of the frontier keep receiving the step, so earlier panels travel further.
func (l *Line) stepOpen(dt float32) {
	reversed := l.Order == Reverse
	n := len(l.Panels)

	frontier := -1
	for pos := 0; pos < n; pos++ {
		if !l.Panels[l.index(pos, reversed)].IsOpen() {
			frontier = pos
			break // one panel at a time
		}
	}
	if frontier == -1 {
		l.complete(Opening)
		return
	}

	step := l.OpenDirection.Mul(dt)
	for pos := 0; pos <= frontier; pos++ {
		i := l.index(pos, reversed)
		l.Panels[i].Current = l.Panels[i].Current.Add(step)
	}
}

// stepClose scans opposite to the opening order and retracts every panel
// that has not reached its closed pose yet. Closed panels are left alone.
func (l *Line) stepClose(dt float32) {
	reversed := l.Order != Reverse
	n := len(l.Panels)
	if n == 0 {
		l.complete(Closing)
		return
	}

	step := l.OpenDirection.Mul(dt)
	for pos := 0; pos < n; pos++ {
		i := l.index(pos, reversed)
		if l.Panels[i].IsClosed() {
			if pos == n-1 {
				l.complete(Closing)
			}
			continue
		}
		l.Panels[i].Current = l.Panels[i].Current.Sub(step)
	}
}

// complete is a no-op unless the line is mid-run.
func (l *Line) complete(finished State) {
	if l.State() != finished {
		return
	}
	l.state = Idle
	if l.onComplete != nil {
		l.onComplete(finished)
	}
}
