package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/coreman2200/hangarbay/internal/panel"
)

// Grid returns the closed positions of the wall's tiles.
func (b BackWall) Grid() Grid {
	return Grid{
		Columns:    b.Columns,
		Rows:       b.Rows,
		Origin:     b.Origin,
		ColumnStep: mgl32.Vec3{0, 0, b.ColumnPitch},
		RowStep:    mgl32.Vec3{0, b.RowPitch, 0},
	}
}

// BuildBackWall returns two lines per row, left then right. The left half
// slides toward -Z starting from the column nearest the centre seam; the
// right half slides toward +Z, also starting at the seam.
func BuildBackWall(b BackWall) []*panel.Line {
	g := b.Grid()
	half := b.Columns / 2
	out := make([]*panel.Line, 0, 2*b.Rows)
	for r := 0; r < b.Rows; r++ {
		var left, right []mgl32.Vec3
		for c := 0; c < b.Columns; c++ {
			if c < half {
				left = append(left, g.At(c, r))
			} else {
				right = append(right, g.At(c, r))
			}
		}
		out = append(out,
			panel.NewLine(fmt.Sprintf("row%d-left", r), mgl32.Vec3{0, 0, -b.Speed}, panel.Reverse, b.OpenedDistance, left...),
			panel.NewLine(fmt.Sprintf("row%d-right", r), mgl32.Vec3{0, 0, b.Speed}, panel.Forward, b.OpenedDistance, right...),
		)
	}
	return out
}
