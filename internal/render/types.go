package render

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/coreman2200/hangarbay/internal/asset"
)

// Basis is an orthonormal orientation: the model's local x, y and z axes in
// world space.
type Basis struct {
	Right   mgl32.Vec3 `json:"right"`
	Up      mgl32.Vec3 `json:"up"`
	Forward mgl32.Vec3 `json:"forward"`
}

var Identity = Basis{
	Right:   mgl32.Vec3{1, 0, 0},
	Up:      mgl32.Vec3{0, 1, 0},
	Forward: mgl32.Vec3{0, 0, 1},
}

// DrawCall places one model instance. A zero Scale is treated as Uniform on
// every axis, and a zero Uniform as 1.
type DrawCall struct {
	Model    string     `json:"model"`
	Position mgl32.Vec3 `json:"position"`
	Basis    Basis      `json:"basis"`
	Scale    mgl32.Vec3 `json:"scale,omitempty"`
	Uniform  float32    `json:"uniform,omitempty"`
}

func (d DrawCall) scale() mgl32.Vec3 {
	if d.Scale != (mgl32.Vec3{}) {
		return d.Scale
	}
	u := d.Uniform
	if u == 0 {
		u = 1
	}
	return mgl32.Vec3{u, u, u}
}

// Matrix is translate * rotate(basis) * scale.
func (d DrawCall) Matrix() mgl32.Mat4 {
	b := d.Basis
	if b == (Basis{}) {
		b = Identity
	}
	rot := mgl32.Mat4FromCols(
		b.Right.Vec4(0),
		b.Up.Vec4(0),
		b.Forward.Vec4(0),
		mgl32.Vec4{0, 0, 0, 1},
	)
	s := d.scale()
	return mgl32.Translate3D(d.Position.X(), d.Position.Y(), d.Position.Z()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}

// Renderer is what scene code draws into.
type Renderer interface {
	Draw(DrawCall)
}

// Source emits a frame's worth of draw calls.
type Source interface {
	Draw(Renderer)
}

// Resolver maps model keys to descriptors. *asset.Store satisfies it.
type Resolver interface {
	Resolve(key string) (asset.Model, error)
}

// Frame is the collected output of one RenderOnce.
type Frame struct {
	ID        uint64     `json:"id"`
	Time      time.Time  `json:"time"`
	DeltaTime float32    `json:"dt"`
	Calls     []DrawCall `json:"calls"`
	Skipped   int        `json:"skipped"`
}

func (f *Frame) Draw(c DrawCall) { f.Calls = append(f.Calls, c) }

// Count returns the number of calls per model key.
func (f *Frame) Count() map[string]int {
	out := map[string]int{}
	for _, c := range f.Calls {
		out[c.Model]++
	}
	return out
}
