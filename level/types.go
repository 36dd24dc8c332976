// Package level holds the tile grid, hazard placements and spawn marker of a
// playable layout. It has no dependencies on ebitengine or donburi.
package level

import "errors"

// Code is a raw cell value from a layout file.
type Code int

// Cell codes of the layout format.
const (
	CodeEmptyAlt        Code = -1
	CodeEmpty           Code = 0
	CodeGround          Code = 1
	CodePlatform        Code = 2
	CodePlatformAlt     Code = 3
	CodeHazard          Code = 4
	CodeHazardInvisible Code = 5
	CodeSpawn           Code = 9
)

// TileKind is the collision class of a grid cell.
type TileKind int

const (
	Empty TileKind = iota
	Solid
	Spawn
)

func (k TileKind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Spawn:
		return "spawn"
	}
	return "empty"
}

// HazardKind tells the renderer whether a hazard is drawn.
type HazardKind int

const (
	HazardVisible HazardKind = iota
	HazardInvisible
)

// Kind maps a cell code to its tile kind. Hazard cells are Empty in the grid;
// they live in the hazard list instead.
func (c Code) Kind() TileKind {
	switch c {
	case CodeGround, CodePlatform, CodePlatformAlt:
		return Solid
	case CodeSpawn:
		return Spawn
	}
	return Empty
}

// Valid reports whether c is a known cell code.
func (c Code) Valid() bool {
	switch c {
	case CodeEmptyAlt, CodeEmpty, CodeGround, CodePlatform, CodePlatformAlt,
		CodeHazard, CodeHazardInvisible, CodeSpawn:
		return true
	}
	return false
}

// IsHazard reports whether c places a hazard.
func (c Code) IsHazard() bool {
	return c == CodeHazard || c == CodeHazardInvisible
}

// Rect is an axis-aligned world-space rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether r and o share interior area. Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Hazard is a read-only kill region.
type Hazard struct {
	Rect Rect
	Kind HazardKind
}

// Cell is a grid coordinate.
type Cell struct {
	Col, Row int
}

// Load-time validation errors
var (
	ErrEmptyLayout      = errors.New("layout is empty")
	ErrUnknownCode      = errors.New("unknown cell code")
	ErrNoSpawn          = errors.New("layout has no spawn marker")
	ErrMultipleSpawns   = errors.New("layout has more than one spawn marker")
	ErrSpawnNotGrounded = errors.New("spawn marker is not directly above a solid tile")
)
