package render

import (
	"math"

	"github.com/lixenwraith/flapper/parameter"
	"github.com/lixenwraith/flapper/vmath"
)

const halfPi = math.Pi / 2

// Viewport maps the reference world rectangle onto a grid of terminal cells
// World space has its origin at the center with y pointing up; rows grow downward
type Viewport struct {
	Cols int
	Rows int

	// World units covered by one cell on each axis
	CellWidth  float64
	CellHeight float64
}

// NewViewport fits the reference world size to cols x rows cells
func NewViewport(cols, rows int) Viewport {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Viewport{
		Cols:       cols,
		Rows:       rows,
		CellWidth:  parameter.ViewportWidth / float64(cols),
		CellHeight: parameter.ViewportHeight / float64(rows),
	}
}

// ToCell returns the cell containing world point p; the result may lie outside the grid
func (v Viewport) ToCell(p vmath.Vec3) (col, row int) {
	col = int(math.Floor((p.X + parameter.ViewportWidth/2) / v.CellWidth))
	row = int(math.Floor((parameter.ViewportHeight/2 - p.Y) / v.CellHeight))
	return col, row
}

// CellCenter returns the world point at the center of a cell
func (v Viewport) CellCenter(col, row int) vmath.Vec3 {
	return vmath.Vec3{
		X: (float64(col)+0.5)*v.CellWidth - parameter.ViewportWidth/2,
		Y: parameter.ViewportHeight/2 - (float64(row)+0.5)*v.CellHeight,
	}
}

// Contains reports whether a cell lies on the grid
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}
