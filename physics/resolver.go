package physics

import (
	"math"

	"github.com/automoto/foolrunner/level"
)

// edgeEpsilon keeps a box edge lying exactly on a tile boundary from counting
// the neighbouring tile as covered.
const edgeEpsilon = 1e-6

// Resolver sweeps boxes against a tile grid one axis at a time.
type Resolver struct {
	TileSize float64
	Solid    func(col, row int) bool
}

// NewResolver binds a resolver to a level grid.
func NewResolver(g *level.Grid) Resolver {
	return Resolver{TileSize: g.TileSize(), Solid: g.IsSolid}
}

// Result is a corrected box and velocity after a sweep.
type Result struct {
	Box        level.Rect
	VX, VY     float64
	Grounded   bool
	HitWall    bool
	HitCeiling bool
}

// Resolve applies (dx, dy) to box, X strictly before Y. Each axis is split
// into substeps no longer than half a tile so no tile can be skipped. On
// contact the leading edge is snapped flush to the tile boundary and that
// velocity component is zeroed.
func (r Resolver) Resolve(box level.Rect, vx, vy, dx, dy float64) Result {
	res := Result{Box: box, VX: vx, VY: vy}
	dx, dy = finite(dx), finite(dy)

	n := r.substeps(dx)
	for i := 0; i < n; i++ {
		if r.stepX(&res, dx/float64(n)) {
			break
		}
	}

	if dy == 0 {
		res.Grounded = r.rowSolid(r.tileIndex(res.Box.Bottom()+edgeEpsilon), res.Box.X, res.Box.Right())
		return res
	}
	n = r.substeps(dy)
	for i := 0; i < n; i++ {
		if r.stepY(&res, dy/float64(n)) {
			break
		}
	}
	return res
}

func (r Resolver) stepX(res *Result, step float64) bool {
	b := &res.Box
	b.X += step
	top, bottom := b.Y, b.Bottom()
	if step > 0 {
		col := r.tileIndex(b.Right() - edgeEpsilon)
		if r.colSolid(col, top, bottom) {
			b.X = float64(col)*r.TileSize - b.W
			res.VX = 0
			res.HitWall = true
			return true
		}
	} else if step < 0 {
		col := r.tileIndex(b.X + edgeEpsilon)
		if r.colSolid(col, top, bottom) {
			b.X = float64(col+1) * r.TileSize
			res.VX = 0
			res.HitWall = true
			return true
		}
	}
	return false
}

func (r Resolver) stepY(res *Result, step float64) bool {
	b := &res.Box
	b.Y += step
	left, right := b.X, b.Right()
	if step > 0 {
		row := r.tileIndex(b.Bottom() - edgeEpsilon)
		if r.rowSolid(row, left, right) {
			b.Y = float64(row)*r.TileSize - b.H
			res.VY = 0
			res.Grounded = true
			return true
		}
	} else if step < 0 {
		row := r.tileIndex(b.Y + edgeEpsilon)
		if r.rowSolid(row, left, right) {
			b.Y = float64(row+1) * r.TileSize
			res.VY = 0
			res.HitCeiling = true
			return true
		}
	}
	return false
}

// colSolid tests every row covered by [top, bottom) in column col.
func (r Resolver) colSolid(col int, top, bottom float64) bool {
	first, last := r.span(top, bottom)
	for row := first; row <= last; row++ {
		if r.Solid(col, row) {
			return true
		}
	}
	return false
}

// rowSolid tests every column covered by [left, right) in row row.
func (r Resolver) rowSolid(row int, left, right float64) bool {
	first, last := r.span(left, right)
	for col := first; col <= last; col++ {
		if r.Solid(col, row) {
			return true
		}
	}
	return false
}

func (r Resolver) span(lo, hi float64) (first, last int) {
	return r.tileIndex(lo + edgeEpsilon), r.tileIndex(hi - edgeEpsilon)
}

func (r Resolver) tileIndex(v float64) int {
	return int(math.Floor(v / r.TileSize))
}

func (r Resolver) substeps(d float64) int {
	limit := r.TileSize / 2
	n := int(math.Ceil(math.Abs(d) / limit))
	if n < 1 {
		return 1
	}
	return n
}

// Overlapping reports whether box covers any solid tile.
func (r Resolver) Overlapping(box level.Rect) bool {
	firstRow, lastRow := r.span(box.Y, box.Bottom())
	for row := firstRow; row <= lastRow; row++ {
		if r.rowSolid(row, box.X, box.Right()) {
			return true
		}
	}
	return false
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
