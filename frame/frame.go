// Package frame is the per-step hand-off from simulation to drawing: a
// closed set of renderable items, each with a world rectangle and a visual,
// culled to the camera viewport.
package frame

import (
	"image/color"
	"math"

	"github.com/automoto/foolrunner/camera"
	"github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/level"
	"github.com/automoto/foolrunner/physics"
	dmath "github.com/yohamta/donburi/features/math"
)

// Kind enumerates the renderable variants.
type Kind int

const (
	StaticTile Kind = iota
	Hazard
	Actor
	HazardVisual
)

func (k Kind) String() string {
	switch k {
	case StaticTile:
		return "tile"
	case Hazard:
		return "hazard"
	case Actor:
		return "actor"
	case HazardVisual:
		return "hazard_visual"
	}
	return "unknown"
}

// Visual is how an item is drawn when no sprite replaces it.
type Visual struct {
	Color color.RGBA
	Code  level.Code
}

// Transparent reports whether the visual draws nothing.
func (v Visual) Transparent() bool { return v.Color.A == 0 }

// Renderable is implemented only by the item types in this package.
type Renderable interface {
	Kind() Kind
	WorldRect() level.Rect
	Visual() Visual
	sealed()
}

// TileItem is a solid or spawn cell.
type TileItem struct {
	Rect level.Rect
	Look Visual
}

// HazardItem is a hazard's collision area. Invisible hazards carry a
// transparent visual.
type HazardItem struct {
	Rect level.Rect
	Look Visual
	Type level.HazardKind
}

// SpikeItem decorates a visible hazard.
type SpikeItem struct {
	Rect  level.Rect
	Look  Visual
	Count int // Spikes across the rect
}

// ActorItem is the actor's authoritative collider.
type ActorItem struct {
	Rect  level.Rect
	Look  Visual
	Alive bool
}

func (TileItem) Kind() Kind                { return StaticTile }
func (t TileItem) WorldRect() level.Rect   { return t.Rect }
func (t TileItem) Visual() Visual          { return t.Look }
func (TileItem) sealed()                   {}
func (HazardItem) Kind() Kind              { return Hazard }
func (h HazardItem) WorldRect() level.Rect { return h.Rect }
func (h HazardItem) Visual() Visual        { return h.Look }
func (HazardItem) sealed()                 {}
func (SpikeItem) Kind() Kind               { return HazardVisual }
func (s SpikeItem) WorldRect() level.Rect  { return s.Rect }
func (s SpikeItem) Visual() Visual         { return s.Look }
func (SpikeItem) sealed()                  {}
func (ActorItem) Kind() Kind               { return Actor }
func (a ActorItem) WorldRect() level.Rect  { return a.Rect }
func (a ActorItem) Visual() Visual         { return a.Look }
func (ActorItem) sealed()                  {}

// Palette is the flat code to colour table.
type Palette struct {
	tiles  map[level.Code]color.RGBA
	hazard color.RGBA
	spike  color.RGBA
	actor  color.RGBA
}

// NewPalette builds the table from configured colours.
func NewPalette(c config.ColorConfig) Palette {
	return Palette{
		tiles: map[level.Code]color.RGBA{
			level.CodeGround:      c.Ground.Value(),
			level.CodePlatform:    c.Platform.Value(),
			level.CodePlatformAlt: c.Platform.Value(),
			level.CodeSpawn:       c.Spawn.Value(),
		},
		hazard: c.Hazard.Value(),
		spike:  c.HazardSpike.Value(),
		actor:  c.Player.Value(),
	}
}

// Tile returns the visual of a cell code and whether it is drawn at all.
func (p Palette) Tile(code level.Code) (Visual, bool) {
	col, ok := p.tiles[code]
	return Visual{Color: col, Code: code}, ok
}

// Hazard returns the visual of a hazard kind.
func (p Palette) Hazard(k level.HazardKind) Visual {
	if k == level.HazardInvisible {
		return Visual{Code: level.CodeHazardInvisible}
	}
	return Visual{Color: p.hazard, Code: level.CodeHazard}
}

// Snapshot is everything drawn for one step.
type Snapshot struct {
	Actor  level.Rect
	Alive  bool
	Offset dmath.Vec2
	Items  []Renderable
}

// Count returns how many items of kind k the snapshot holds.
func (s Snapshot) Count(k Kind) int {
	n := 0
	for _, it := range s.Items {
		if it.Kind() == k {
			n++
		}
	}
	return n
}

// Build collects the visible items in draw order: tiles, hazards, spikes,
// actor. Looping levels repeat their tiles and hazards across the view.
func Build(lvl *level.Level, body *physics.Body, cam *camera.Camera, pal Palette) Snapshot {
	snap := Snapshot{
		Actor:  body.Box,
		Alive:  body.Alive,
		Offset: cam.Offset(),
	}
	vp := cam.Viewport()
	g := lvl.Grid
	ts := g.TileSize()

	c0, c1 := cellSpan(vp.X, vp.Right(), ts)
	r0, r1 := cellSpan(vp.Y, vp.Bottom(), ts)
	r0, r1 = max(r0, 0), min(r1, g.Rows()-1)
	if !g.Loops() {
		c0, c1 = max(c0, 0), min(c1, g.Cols()-1)
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			look, ok := pal.Tile(g.CodeAt(col, row))
			if !ok {
				continue
			}
			snap.Items = append(snap.Items, TileItem{Rect: g.CellRect(col, row), Look: look})
		}
	}

	var spikes []Renderable
	for _, shift := range laps(vp, g) {
		for _, h := range lvl.Hazards {
			r := h.Rect
			r.X += shift
			if !cam.Visible(r) {
				continue
			}
			snap.Items = append(snap.Items, HazardItem{Rect: r, Look: pal.Hazard(h.Kind), Type: h.Kind})
			if h.Kind == level.HazardVisible {
				spikes = append(spikes, SpikeItem{
					Rect:  r,
					Look:  Visual{Color: pal.spike, Code: level.CodeHazard},
					Count: max(1, int(math.Round(r.W/(ts/2)))),
				})
			}
		}
	}
	snap.Items = append(snap.Items, spikes...)

	if cam.Visible(body.Box) {
		snap.Items = append(snap.Items, ActorItem{
			Rect:  body.Box,
			Look:  Visual{Color: pal.actor},
			Alive: body.Alive,
		})
	}
	return snap
}

func cellSpan(lo, hi, ts float64) (int, int) {
	return int(math.Floor(lo / ts)), int(math.Ceil(hi/ts)) - 1
}

// laps returns the horizontal shifts at which the level repeats inside vp.
func laps(vp level.Rect, g *level.Grid) []float64 {
	w := g.WidthPx()
	if !g.Loops() || w <= 0 {
		return []float64{0}
	}
	first := int(math.Floor(vp.X / w))
	last := int(math.Floor(vp.Right() / w))
	out := make([]float64, 0, last-first+1)
	for i := first; i <= last; i++ {
		out = append(out, float64(i)*w)
	}
	return out
}
