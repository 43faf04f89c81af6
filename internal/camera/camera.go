// Package camera is a free-fly camera: mouse look plus planar movement.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const maxPitch = 89

type Camera struct {
	Position  mgl32.Vec3 `json:"position"`
	Direction mgl32.Vec3 `json:"direction"`
	Up        mgl32.Vec3 `json:"up"`

	Yaw, Pitch  float64 // degrees
	Sensitivity float64

	Width, Height int

	lastX, lastY float64
	primed       bool
}

// New starts at the hangar's tunnel mouth looking down +X.
func New(height, width int) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{-5, 3, 2.5},
		Direction:   mgl32.Vec3{1, 0, 0},
		Up:          mgl32.Vec3{0, 1, 0},
		Sensitivity: 0.1,
		Width:       width,
		Height:      height,
	}
}

// MoveCamera applies an absolute cursor position. The first sample only
// primes the reference point.
func (c *Camera) MoveCamera(x, y float64) {
	if !c.primed {
		c.lastX, c.lastY, c.primed = x, y, true
		return
	}
	dx := (x - c.lastX) * c.Sensitivity
	dy := (c.lastY - y) * c.Sensitivity
	c.lastX, c.lastY = x, y

	c.Yaw += dx
	c.Pitch += dy
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	yaw := float64(mgl32.DegToRad(float32(c.Yaw)))
	pitch := float64(mgl32.DegToRad(float32(c.Pitch)))
	c.Direction = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

func (c *Camera) Forward(speed float32) { c.Position = c.Position.Add(c.Direction.Mul(speed)) }
func (c *Camera) Back(speed float32)    { c.Position = c.Position.Sub(c.Direction.Mul(speed)) }
func (c *Camera) Rise(speed float32)    { c.Position[1] += speed }

// StrafeLeft moves along the direction rotated +90 degrees about Y, flattened
// onto the XZ plane.
func (c *Camera) StrafeLeft(speed float32) {
	d := c.Direction
	c.Position = c.Position.Add(mgl32.Vec3{d.Z(), 0, -d.X()}.Mul(speed))
}

func (c *Camera) StrafeRight(speed float32) {
	d := c.Direction
	c.Position = c.Position.Add(mgl32.Vec3{-d.Z(), 0, d.X()}.Mul(speed))
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Direction), c.Up)
}

// Projection uses a 0.6 rad vertical field of view.
func (c *Camera) Projection(ratio float32) mgl32.Mat4 {
	return mgl32.Perspective(0.6, ratio, 0.1, 1000)
}

// Ratio is Width/Height, or 1 for a degenerate viewport.
func (c *Camera) Ratio() float32 {
	if c.Height == 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}
