package level

import "math"

// Grid is the immutable tile lookup of a level. World coordinate = grid
// coordinate x TileSize. Cells outside the authored area are Empty; with
// looping enabled, columns wrap around the grid width.
type Grid struct {
	cols, rows int
	tileSize   float64
	codes      []Code
	loop       bool
}

// NewGrid copies rows into a grid. Short rows are padded with empty cells.
func NewGrid(rows [][]Code, tileSize float64) *Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	g := &Grid{
		cols:     cols,
		rows:     len(rows),
		tileSize: tileSize,
		codes:    make([]Code, cols*len(rows)),
	}
	for y, r := range rows {
		copy(g.codes[y*cols:], r)
	}
	return g
}

// Looping returns a view of g whose columns wrap. The cells are shared.
func (g *Grid) Looping(loop bool) *Grid {
	c := *g
	c.loop = loop
	return &c
}

func (g *Grid) Cols() int         { return g.cols }
func (g *Grid) Rows() int         { return g.rows }
func (g *Grid) TileSize() float64 { return g.tileSize }
func (g *Grid) Loops() bool       { return g.loop }
func (g *Grid) WidthPx() float64  { return float64(g.cols) * g.tileSize }
func (g *Grid) HeightPx() float64 { return float64(g.rows) * g.tileSize }
func (g *Grid) Bounds() Rect      { return Rect{W: g.WidthPx(), H: g.HeightPx()} }
func (g *Grid) Empty() bool       { return g.cols == 0 || g.rows == 0 }

// WrapCol folds col into [0, cols) when looping; otherwise it returns col unchanged.
func (g *Grid) WrapCol(col int) int {
	if !g.loop || g.cols == 0 {
		return col
	}
	col %= g.cols
	if col < 0 {
		col += g.cols
	}
	return col
}

// CodeAt returns the raw code at (col,row). Out-of-bounds cells are CodeEmpty.
func (g *Grid) CodeAt(col, row int) Code {
	col = g.WrapCol(col)
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return CodeEmpty
	}
	return g.codes[row*g.cols+col]
}

// KindAt returns the tile kind at (col,row).
func (g *Grid) KindAt(col, row int) TileKind {
	return g.CodeAt(col, row).Kind()
}

// IsSolid reports whether (col,row) blocks movement.
func (g *Grid) IsSolid(col, row int) bool {
	return g.KindAt(col, row) == Solid
}

// CellAt converts a world point to the grid cell containing it.
func (g *Grid) CellAt(x, y float64) Cell {
	return Cell{
		Col: int(math.Floor(x / g.tileSize)),
		Row: int(math.Floor(y / g.tileSize)),
	}
}

// SolidAtWorld reports whether the world point (x,y) lies in a solid tile.
func (g *Grid) SolidAtWorld(x, y float64) bool {
	c := g.CellAt(x, y)
	return g.IsSolid(c.Col, c.Row)
}

// CellRect returns the world rectangle of (col,row), without wrapping.
func (g *Grid) CellRect(col, row int) Rect {
	return Rect{
		X: float64(col) * g.tileSize,
		Y: float64(row) * g.tileSize,
		W: g.tileSize,
		H: g.tileSize,
	}
}
