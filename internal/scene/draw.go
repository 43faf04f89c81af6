package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/coreman2200/hangarbay/internal/render"
)

var (
	up = mgl32.Vec3{0, 1, 0}

	flipped    = render.Basis{Right: mgl32.Vec3{1, 0, 0}, Up: up, Forward: mgl32.Vec3{0, 0, -1}}
	facingBack = render.Basis{Right: mgl32.Vec3{0, 0, 1}, Up: up, Forward: mgl32.Vec3{-1, 0, 0}}
	facingIn   = render.Basis{Right: mgl32.Vec3{0, 0, -1}, Up: up, Forward: mgl32.Vec3{1, 0, 0}}
	mirrored   = render.Basis{Right: mgl32.Vec3{-1, 0, 0}, Up: up, Forward: mgl32.Vec3{0, 0, -1}}
)

// PanelBasis orients every back-wall panel.
var PanelBasis = facingBack

// yawed builds a basis rotated about Y from its right vector.
func yawed(rx, rz float32) render.Basis {
	return render.Basis{Right: mgl32.Vec3{rx, 0, rz}, Up: up, Forward: mgl32.Vec3{-rz, 0, rx}}
}

func at(model string, pos mgl32.Vec3, b render.Basis) render.DrawCall {
	return render.DrawCall{Model: model, Position: pos, Basis: b, Uniform: 1}
}

var tunnelWalls = []render.DrawCall{
	at("wall3", mgl32.Vec3{0, 0, 0}, render.Identity),
	at("wall3", mgl32.Vec3{0, 0, 5}, flipped),
	at("wall2", mgl32.Vec3{5, 0, 0}, render.Identity),
	at("wall4", mgl32.Vec3{5, 0, 5}, flipped),
	at("wall4", mgl32.Vec3{10, 0, 0}, render.Identity),
	at("wall5", mgl32.Vec3{10, 0, 5}, flipped),
	at("wall5", mgl32.Vec3{15, 0, 0}, render.Identity),
	at("wall5", mgl32.Vec3{15, 0, 5}, flipped),
	at("tdoor1", mgl32.Vec3{17.5, 0, 0}, facingBack),
	at("door", mgl32.Vec3{17.5, 0, 1.5}, facingBack),
}

var seamTrim = []render.DrawCall{
	at("connector", mgl32.Vec3{15.25, 2.5, -3.75}, facingIn),
	at("connector", mgl32.Vec3{15.25, 2.5, 8.75}, facingIn),
	at("corner", mgl32.Vec3{14.6, 6.4, 8.25}, facingIn),
	at("corner2", mgl32.Vec3{14.6, 2.4, 8.1}, facingIn),
	at("corner3", mgl32.Vec3{14.6, 2.4, 4}, facingIn),
	at("corner4", mgl32.Vec3{14.6, 6.4, 3.75}, facingIn),
}

func beaker(pos mgl32.Vec3) render.DrawCall {
	d := at("beaker", pos, render.Identity)
	d.Uniform = 0.5
	return d
}

var props = []render.DrawCall{
	at("desk1", mgl32.Vec3{20, 0, -10}, yawed(0.764842, -0.644218)),
	at("desk2", mgl32.Vec3{20, 0, 15}, yawed(-0.856888, -0.515502)),
	at("smallDesk", mgl32.Vec3{70, 0, -10}, yawed(-0.702712, -0.711474)),
	at("bigDesk", mgl32.Vec3{70, 0, 15}, yawed(0.659983, -0.751281)),
	beaker(mgl32.Vec3{70, 1.5, 15}),
	beaker(mgl32.Vec3{69.5, 1.5, 16.5}),
	beaker(mgl32.Vec3{69, 1.5, 16}),
	beaker(mgl32.Vec3{71.5, 1.5, 14.2}),
	at("locker1", mgl32.Vec3{30, 0, -16.8}, render.Identity),
	at("locker1", mgl32.Vec3{31, 0, -16.8}, render.Identity),
	at("locker2", mgl32.Vec3{32.8, 0, -16.8}, render.Identity),
	at("plant1", mgl32.Vec3{54, 0, 22.2}, render.Identity),
	at("plant2", mgl32.Vec3{60, 0, 20.5}, render.Identity),
	at("rocket", mgl32.Vec3{70, 0, 0}, render.Identity),
	at("scales", mgl32.Vec3{70, 1.5, -10}, render.Identity),
	at("server", mgl32.Vec3{72.5, 0, -16}, render.Identity),
	at("sign", mgl32.Vec3{63, 0, 19}, render.Identity),
	at("monitor", mgl32.Vec3{20, 1.5, 15}, render.Identity),
}

func drawAll(r render.Renderer, calls []render.DrawCall) {
	for _, c := range calls {
		r.Draw(c)
	}
}

func drawTunnel(r render.Renderer) {
	drawAll(r, tunnelWalls[:8])
	for i := 0; i < 4; i++ {
		x := float32(i) * 5
		r.Draw(at("clight", mgl32.Vec3{x - 2.5, 5, 2.5}, render.Identity))
		r.Draw(at("floor", mgl32.Vec3{x, 0, 0}, render.Identity))
		r.Draw(at("floor", mgl32.Vec3{x, 5, 0}, render.Identity))
	}
	drawAll(r, tunnelWalls[8:])
}

var (
	hangarFloor = Grid{Columns: 12, Rows: 8, Origin: mgl32.Vec3{20, 0, -17.5}, ColumnStep: mgl32.Vec3{5, 0, 0}, RowStep: mgl32.Vec3{0, 0, 5}}
	leftWall    = Grid{Columns: 6, Rows: 5, Origin: mgl32.Vec3{15, 0, -17.5}, ColumnStep: mgl32.Vec3{10, 0, 0}, RowStep: mgl32.Vec3{0, 5, 0}}
	rightWall   = Grid{Columns: 6, Rows: 5, Origin: mgl32.Vec3{25, 0, 22.5}, ColumnStep: mgl32.Vec3{10, 0, 0}, RowStep: mgl32.Vec3{0, 5, 0}}
	frontWall   = Grid{Columns: 4, Rows: 5, Origin: mgl32.Vec3{15, 0, -7.5}, ColumnStep: mgl32.Vec3{0, 0, 10}, RowStep: mgl32.Vec3{0, 5, 0}}
)

const ceilingHeight = 25

func (s *Scene) drawHangar(r render.Renderer) {
	hangarFloor.Each(func(_, _ int, p mgl32.Vec3) {
		r.Draw(at("hangarFloor", p, render.Identity))
		r.Draw(at("hangarFloor", p.Add(mgl32.Vec3{0, ceilingHeight, 0}), render.Identity))
	})
	for i := 0; i < 3; i++ {
		x := 25 + float32(i)*20
		r.Draw(at("hangarLight", mgl32.Vec3{x, 23.5, -7.5}, render.Identity))
		r.Draw(at("hangarLight", mgl32.Vec3{x, 23.5, 7.5}, render.Identity))
	}
	leftWall.Each(func(_, _ int, p mgl32.Vec3) { r.Draw(at("cwall", p, render.Identity)) })
	rightWall.Each(func(_, _ int, p mgl32.Vec3) { r.Draw(at("cwall", p, mirrored)) })

	for _, l := range s.lines.Lines() {
		for _, p := range l.Panels {
			r.Draw(at("cwall", p.Current, PanelBasis))
		}
	}

	frontWall.Each(func(col, row int, p mgl32.Vec3) {
		// the tunnel door opens through the two middle ground-floor tiles
		if row == 0 && (col == 1 || col == 2) {
			return
		}
		r.Draw(at("cwall", p, facingIn))
	})
	drawAll(r, seamTrim)
}

func (s *Scene) drawStars(r render.Renderer) {
	for _, p := range s.stars {
		r.Draw(at("star", p, render.Identity))
	}
}

func (s *Scene) drawLightFrames(r render.Renderer) {
	for _, l := range s.lights.List() {
		r.Draw(at("lightFrame", l.Position, render.Identity))
	}
}

// Draw emits the whole scene: tunnel, hangar with the back-wall panels at
// their current positions, props, stars, then a marker per light.
func (s *Scene) Draw(r render.Renderer) {
	drawTunnel(r)
	s.drawHangar(r)
	drawAll(r, props)
	s.drawStars(r)
	s.drawLightFrames(r)
}
