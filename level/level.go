package level

import "fmt"

// Level is a validated, playable layout.
type Level struct {
	Name    string
	Grid    *Grid
	Hazards []Hazard
	Spawn   Cell
}

// FromCodes validates a row-major layout and builds its grid, hazards and spawn.
func FromCodes(name string, rows [][]Code, tileSize float64) (*Level, error) {
	grid := NewGrid(rows, tileSize)
	if grid.Empty() {
		return nil, fmt.Errorf("level %s: %w", name, ErrEmptyLayout)
	}

	lvl := &Level{Name: name, Grid: grid}
	spawns := 0
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			code := grid.CodeAt(col, row)
			if !code.Valid() {
				return nil, fmt.Errorf("level %s: cell (%d,%d) = %d: %w", name, col, row, code, ErrUnknownCode)
			}
			if code == CodeSpawn {
				spawns++
				lvl.Spawn = Cell{Col: col, Row: row}
			}
		}
		lvl.Hazards = append(lvl.Hazards, hazardRuns(grid, row)...)
	}

	switch {
	case spawns == 0:
		return nil, fmt.Errorf("level %s: %w", name, ErrNoSpawn)
	case spawns > 1:
		return nil, fmt.Errorf("level %s: %d markers: %w", name, spawns, ErrMultipleSpawns)
	}
	if !grid.IsSolid(lvl.Spawn.Col, lvl.Spawn.Row+1) {
		return nil, fmt.Errorf("level %s: spawn at (%d,%d): %w", name, lvl.Spawn.Col, lvl.Spawn.Row, ErrSpawnNotGrounded)
	}
	return lvl, nil
}

// hazardRuns merges horizontally adjacent hazard cells of the same kind.
func hazardRuns(grid *Grid, row int) []Hazard {
	var out []Hazard
	ts := grid.TileSize()
	for col := 0; col < grid.Cols(); {
		code := grid.CodeAt(col, row)
		if !code.IsHazard() {
			col++
			continue
		}
		start := col
		for col < grid.Cols() && grid.CodeAt(col, row) == code {
			col++
		}
		kind := HazardVisible
		if code == CodeHazardInvisible {
			kind = HazardInvisible
		}
		out = append(out, Hazard{
			Rect: Rect{X: float64(start) * ts, Y: float64(row) * ts, W: float64(col-start) * ts, H: ts},
			Kind: kind,
		})
	}
	return out
}

// WithLoop returns a copy of the level whose grid wraps horizontally.
func (l *Level) WithLoop(loop bool) *Level {
	c := *l
	c.Grid = l.Grid.Looping(loop)
	return &c
}

// Bounds returns the authored area in world pixels.
func (l *Level) Bounds() Rect {
	return l.Grid.Bounds()
}

// SpawnBox places a w x h collider with its bottom edge on the spawn tile's
// bottom edge (the top of the solid tile under it), centred on the tile.
func (l *Level) SpawnBox(w, h float64) Rect {
	cell := l.Grid.CellRect(l.Spawn.Col, l.Spawn.Row)
	return Rect{
		X: cell.X + (cell.W-w)/2,
		Y: cell.Bottom() - h,
		W: w,
		H: h,
	}
}
