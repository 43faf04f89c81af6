package scene

import "github.com/go-gl/mathgl/mgl32"

// Grid places a rectangular run of tiles: Columns along ColumnStep and Rows
// along RowStep, starting at Origin.
type Grid struct {
	Columns, Rows int
	Origin        mgl32.Vec3
	ColumnStep    mgl32.Vec3
	RowStep       mgl32.Vec3
}

// At maps column, row -> world position.
func (g Grid) At(col, row int) mgl32.Vec3 {
	return g.Origin.
		Add(g.ColumnStep.Mul(float32(col))).
		Add(g.RowStep.Mul(float32(row)))
}

// Count is the number of tiles.
func (g Grid) Count() int {
	return g.Columns * g.Rows
}

// Each visits tiles column-major, matching the hangar's wall loops.
func (g Grid) Each(f func(col, row int, p mgl32.Vec3)) {
	for c := 0; c < g.Columns; c++ {
		for r := 0; r < g.Rows; r++ {
			f(c, r, g.At(c, r))
		}
	}
}
