// Package input turns key events and control messages into scene commands.
package input

import (
	"errors"
	"fmt"
	"sync"
)

var ErrUnknownCommand = errors.New("input: unknown command")

type Key string

const (
	KeyW        Key = "w"
	KeyA        Key = "a"
	KeyS        Key = "s"
	KeyD        Key = "d"
	KeySpace    Key = "space"
	KeyEscape   Key = "escape"
	KeyPageUp   Key = "pageup"
	KeyPageDown Key = "pagedown"
)

type Action int

const (
	Press Action = iota
	Repeat
	Release
)

type Command string

const (
	OpenAll    Command = "open_all"
	CloseAll   Command = "close_all"
	ToggleEdit Command = "toggle_edit"
	Forward    Command = "forward"
	Back       Command = "back"
	Left       Command = "left"
	Right      Command = "right"
	Rise       Command = "rise"
)

var movement = map[Key]Command{
	KeyW:     Forward,
	KeyS:     Back,
	KeyA:     Left,
	KeyD:     Right,
	KeySpace: Rise,
}

var pressOnly = map[Key]Command{
	KeyEscape:   ToggleEdit,
	KeyPageUp:   CloseAll,
	KeyPageDown: OpenAll,
}

// Translate maps a key event to a command. Movement keys fire on every
// action, including release; the rest fire on Press only.
func Translate(k Key, a Action) (Command, bool) {
	if c, ok := movement[k]; ok {
		return c, true
	}
	if c, ok := pressOnly[k]; ok && a == Press {
		return c, true
	}
	return "", false
}

// IsMovement reports whether c moves the camera.
func (c Command) IsMovement() bool {
	switch c {
	case Forward, Back, Left, Right, Rise:
		return true
	}
	return false
}

func ParseCommand(s string) (Command, error) {
	switch c := Command(s); c {
	case OpenAll, CloseAll, ToggleEdit, Forward, Back, Left, Right, Rise:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// Queue is a goroutine-safe FIFO. Producers Push from any goroutine; the
// frame loop Drains once per frame.
type Queue struct {
	mu  sync.Mutex
	buf []Command
}

func (q *Queue) Push(c Command) {
	q.mu.Lock()
	q.buf = append(q.buf, c)
	q.mu.Unlock()
}

func (q *Queue) Drain() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.buf
	q.buf = nil
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}
