// Package hazard kills actors that touch a hazard rectangle or fall out of
// the level, and puts them back at the spawn.
package hazard

import (
	"math"

	"github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/level"
	"github.com/automoto/foolrunner/physics"
	"github.com/automoto/foolrunner/tags"
	"github.com/solarlune/resolv"
)

// Cause says why an actor died.
type Cause int

const (
	CauseNone Cause = iota
	CauseHazard
	CauseFell
)

func (c Cause) String() string {
	switch c {
	case CauseHazard:
		return "hazard"
	case CauseFell:
		return "fell"
	}
	return "none"
}

// System tests actor boxes against the hazards of one level. Hazards are
// bucketed in a resolv space; candidates are confirmed with an exact AABB test
// so touching edges never kill.
type System struct {
	space      *resolv.Space
	probe      *resolv.Object
	width      float64
	bottom     float64
	loop       bool
	killMargin float64
}

// New indexes lvl's hazards.
func New(lvl *level.Level, cfg config.LevelConfig) *System {
	bounds := lvl.Bounds()
	ts := int(lvl.Grid.TileSize())
	space := resolv.NewSpace(int(math.Ceil(bounds.W)), int(math.Ceil(bounds.H)), ts, ts)

	for i := range lvl.Hazards {
		h := lvl.Hazards[i]
		tag := tags.ResolvHazard
		if h.Kind == level.HazardInvisible {
			tag = tags.ResolvHazardInvisible
		}
		obj := resolv.NewObject(h.Rect.X, h.Rect.Y, h.Rect.W, h.Rect.H, tag)
		obj.SetShape(resolv.NewRectangle(0, 0, h.Rect.W, h.Rect.H))
		obj.Data = h
		space.Add(obj)
	}

	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvActor)
	space.Add(probe)

	return &System{
		space:      space,
		probe:      probe,
		width:      bounds.W,
		bottom:     bounds.Bottom(),
		loop:       lvl.Grid.Loops(),
		killMargin: cfg.KillMargin,
	}
}

// Check returns the first hazard box overlaps.
func (s *System) Check(box level.Rect) (level.Hazard, bool) {
	if !s.loop || s.width <= 0 {
		return s.check(box)
	}
	wrapped := box
	wrapped.X = math.Mod(box.X, s.width)
	if wrapped.X < 0 {
		wrapped.X += s.width
	}
	if h, ok := s.check(wrapped); ok {
		return h, true
	}
	// Straddling the seam.
	if wrapped.Right() > s.width {
		wrapped.X -= s.width
		return s.check(wrapped)
	}
	return level.Hazard{}, false
}

func (s *System) check(box level.Rect) (level.Hazard, bool) {
	s.probe.X, s.probe.Y = box.X, box.Y
	s.probe.W, s.probe.H = box.W, box.H
	s.probe.Update()

	c := s.probe.Check(0, 0, tags.ResolvHazard, tags.ResolvHazardInvisible)
	if c == nil {
		return level.Hazard{}, false
	}
	for _, obj := range c.Objects {
		h, ok := obj.Data.(level.Hazard)
		if ok && box.Overlaps(h.Rect) {
			return h, true
		}
	}
	return level.Hazard{}, false
}

// Fell reports whether box is below the kill plane.
func (s *System) Fell(box level.Rect) bool {
	return box.Y > s.bottom+s.killMargin
}

// Apply kills b if it overlaps a hazard or has fallen out of the level.
// Dead bodies are left alone.
func (s *System) Apply(b *physics.Body) Cause {
	if !b.Alive {
		return CauseNone
	}
	if _, hit := s.Check(b.Box); hit {
		b.Kill()
		return CauseHazard
	}
	if s.Fell(b.Box) {
		b.Kill()
		return CauseFell
	}
	return CauseNone
}

// Respawn puts b back at the level's spawn, standing and alive, moving at vx.
func Respawn(b *physics.Body, lvl *level.Level, player config.PlayerConfig, vx float64) {
	b.Reset(lvl.SpawnBox(player.Width, player.Height), vx)
}

// Objects returns the indexed hazard objects, without the probe.
func (s *System) Objects() []*resolv.Object {
	var out []*resolv.Object
	for _, obj := range s.space.Objects() {
		if obj != s.probe {
			out = append(out, obj)
		}
	}
	return out
}
