package tui

import "github.com/vovakirdan/snake-glide/internal/core"

// Rows reserved around the playfield.
const (
	hudRows  = 1
	helpRows = 1
)

// Viewport maps terminal cells to playfield units. The playfield starts below
// the HUD row; every cell covers CellW x CellH units.
type Viewport struct {
	Cols, Rows   int // playfield size in cells
	CellW, CellH float64
}

// NewViewport fits a playfield into a terminal of width x height cells.
func NewViewport(width, height int, cellW, cellH float64) Viewport {
	return Viewport{
		Cols:  max(width, 1),
		Rows:  max(height-hudRows-helpRows, 1),
		CellW: cellW,
		CellH: cellH,
	}
}

// Bounds returns the playfield size in simulation units.
func (v Viewport) Bounds() core.Bounds {
	return core.Bounds{
		Width:  float64(v.Cols) * v.CellW,
		Height: float64(v.Rows) * v.CellH,
	}
}

// PointAt returns the playfield point under terminal cell (x, y), taken at the
// centre of the cell. Cells outside the playfield clamp to its nearest edge.
func (v Viewport) PointAt(x, y int) core.Point {
	col := core.Clamp(x, 0, v.Cols-1)
	row := core.Clamp(y-hudRows, 0, v.Rows-1)
	return core.Pt((float64(col)+0.5)*v.CellW, (float64(row)+0.5)*v.CellH)
}

// CellAt returns the terminal cell that shows p.
// ok is false when p lies outside the playfield.
func (v Viewport) CellAt(p core.Point) (x, y int, ok bool) {
	if !v.Bounds().Contains(p) {
		return 0, 0, false
	}
	// The far edges belong to the last column and row.
	col := min(int(p.X/v.CellW), v.Cols-1)
	row := min(int(p.Y/v.CellH), v.Rows-1)
	return col, row + hudRows, true
}
