package light

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNotFound  = errors.New("light: not found")
	ErrDuplicate = errors.New("light: duplicate name")
)

type Kind string

const (
	Point       Kind = "point"
	Spot        Kind = "spot"
	Directional Kind = "directional"
)

// Light is a named light with mutable state. Attenuation packs
// constant, linear, quadratic and cutoff distance.
type Light struct {
	Name        string     `json:"name"`
	Kind        Kind       `json:"kind"`
	Position    mgl32.Vec3 `json:"position"`
	Direction   mgl32.Vec3 `json:"direction"`
	Diffuse     mgl32.Vec4 `json:"diffuse"`
	Specular    mgl32.Vec4 `json:"specular"`
	Attenuation mgl32.Vec4 `json:"attenuation"`
	InnerAngle  float32    `json:"innerAngle,omitempty"`
	OuterAngle  float32    `json:"outerAngle,omitempty"`
	On          bool       `json:"on"`
}

// Switch is the one capability the panel completion path needs.
type Switch interface {
	SetOn(name string, on bool) error
}

// Registry holds lights by name, keeping insertion order for draws.
type Registry struct {
	m     map[string]*Light
	order []string
}

func NewRegistry() *Registry { return &Registry{m: map[string]*Light{}} }

func (r *Registry) Add(l Light) error {
	if _, ok := r.m[l.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, l.Name)
	}
	cp := l
	r.m[l.Name] = &cp
	r.order = append(r.order, l.Name)
	return nil
}

func (r *Registry) Get(name string) (Light, bool) {
	l, ok := r.m[name]
	if !ok {
		return Light{}, false
	}
	return *l, true
}

func (r *Registry) SetOn(name string, on bool) error {
	l, ok := r.m[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	l.On = on
	return nil
}

func (r *Registry) SetDirection(name string, dir mgl32.Vec3) error {
	l, ok := r.m[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	l.Direction = dir
	return nil
}

// List returns copies in insertion order.
func (r *Registry) List() []Light {
	out := make([]Light, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, *r.m[n])
	}
	return out
}

func (r *Registry) Len() int { return len(r.order) }

// Beacon sweeps a light's direction around the vertical axis, one fixed
// angular step per call.
type Beacon struct {
	Light  string
	Angle  float32 // radians
	Step   float32 // radians per sweep
	Radius float32
}

// NewBeacon uses the 10 degree step and radius 5 of the hangar's
// emergency light.
func NewBeacon(name string) *Beacon {
	return &Beacon{Light: name, Step: mgl32.DegToRad(10), Radius: 5}
}

// Sweep advances the angle and re-aims the light. The target point sits on
// a circle of Radius around the light's position.
func (b *Beacon) Sweep(r *Registry) error {
	l, ok := r.m[b.Light]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, b.Light)
	}
	b.Angle += b.Step
	if b.Angle >= 2*math.Pi {
		b.Angle -= 2 * math.Pi
	}
	a := float64(b.Angle)
	target := mgl32.Vec3{
		l.Position.X() + float32(math.Cos(a))*b.Radius,
		l.Position.Y(),
		l.Position.Z() + float32(math.Sin(a))*b.Radius,
	}
	l.Direction = target.Sub(l.Position).Normalize()
	return nil
}
