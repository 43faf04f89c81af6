package panel

import "errors"

var ErrNilLine = errors.New("panel: nil line")

// Collection is the set of lines addressed together by the global open and
// close commands. It is not safe for concurrent use; commands and Update are
// expected to run on the same goroutine.
type Collection struct {
	lines []*Line
	hooks Hooks
}

// NewCollection constructs a Collection with provided hooks.
func NewCollection(h Hooks, lines ...*Line) *Collection {
	c := &Collection{hooks: h}
	for _, l := range lines {
		_, _ = c.Add(l)
	}
	return c
}

// Add appends a line and wires its completion callback to the hooks.
func (c *Collection) Add(l *Line) (int, error) {
	if l == nil {
		return -1, ErrNilLine
	}
	idx := len(c.lines)
	l.OnComplete(func(finished State) {
		if c.hooks.OnSequenceComplete != nil {
			c.hooks.OnSequenceComplete(idx, finished)
		}
	})
	c.lines = append(c.lines, l)
	return idx, nil
}

func (c *Collection) Len() int { return len(c.lines) }

// Lines returns the backing slice; callers must not append to it.
func (c *Collection) Lines() []*Line { return c.lines }

// Line returns the i-th line or nil when out of range.
func (c *Collection) Line(i int) *Line {
	if i < 0 || i >= len(c.lines) {
		return nil
	}
	return c.lines[i]
}

// OpenAll switches every line to Opening, including lines already open or
// mid-close.
func (c *Collection) OpenAll() {
	for _, l := range c.lines {
		l.Open()
	}
}

// CloseAll switches every line to Closing.
func (c *Collection) CloseAll() {
	for _, l := range c.lines {
		l.Close()
	}
}

// Update ticks every line once, in insertion order, with the same dt.
func (c *Collection) Update(dt float32) {
	for _, l := range c.lines {
		l.Update(dt)
	}
}

// Idle reports whether no line is moving.
func (c *Collection) Idle() bool {
	for _, l := range c.lines {
		if l.State() != Idle {
			return false
		}
	}
	return true
}

// Counts returns the number of lines in each state.
func (c *Collection) Counts() map[State]int {
	out := map[State]int{Idle: 0, Opening: 0, Closing: 0}
	for _, l := range c.lines {
		out[l.State()]++
	}
	return out
}
