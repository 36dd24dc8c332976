// Package camera turns an actor position into a screen offset. It only
// affects drawing; physics never reads it.
package camera

import (
	"math"

	"github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/level"
	dmath "github.com/yohamta/donburi/features/math"
)

// Camera tracks a target box at a fixed anchor of the viewport.
type Camera struct {
	cfg    config.CameraConfig
	viewW  float64
	viewH  float64
	bounds level.Rect
	loop   bool

	lead   float64 // Current smoothed look-ahead in pixels
	offset dmath.Vec2
	shake  shake
}

type shake struct {
	intensity float64
	duration  float64
	elapsed   float64
}

// New creates a camera for a viewW x viewH viewport over a level of the
// given bounds. Looping levels are never clamped horizontally.
func New(cfg config.CameraConfig, viewW, viewH int, bounds level.Rect, loop bool) *Camera {
	return &Camera{
		cfg:    cfg,
		viewW:  float64(viewW),
		viewH:  float64(viewH),
		bounds: bounds,
		loop:   loop,
	}
}

// Style returns the configured style.
func (c *Camera) Style() string { return c.cfg.Style }

// SetStyle switches between snap and look-ahead at runtime.
func (c *Camera) SetStyle(style string) {
	c.cfg.Style = style
	if style == config.CameraSnap {
		c.lead = 0
	}
}

// Update recomputes the offset for this step. vx drives the look-ahead.
func (c *Camera) Update(target level.Rect, vx, dt float64) {
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	if c.cfg.Style == config.CameraLookAhead {
		c.updateLead(vx, dt)
	} else {
		c.lead = 0
	}

	cx := target.X + target.W/2 + c.lead
	cy := target.Y + target.H/2
	c.offset.X = cx - c.cfg.AnchorX*c.viewW
	c.offset.Y = cy - c.cfg.AnchorY*c.viewH

	if c.cfg.ClampToLevel {
		c.clamp()
	}
	c.applyShake(dt)
}

// Reset drops the look-ahead and any shake, leaving the camera snapped on
// target for the next frame.
func (c *Camera) Reset(target level.Rect) {
	c.lead = 0
	c.shake = shake{}
	c.Update(target, 0, 0)
}

// updateLead eases the look-ahead toward the direction of travel with an
// exponential time constant. Below the speed threshold the lead is frozen.
func (c *Camera) updateLead(vx, dt float64) {
	if math.Abs(vx) <= c.cfg.LookAheadThreshold {
		return
	}
	target := math.Copysign(c.cfg.LookAheadDistance, vx)
	alpha := 1.0
	if tau := c.cfg.LookAheadSmoothing; tau > 0 {
		alpha = 1 - math.Exp(-dt/tau)
	}
	c.lead += (target - c.lead) * alpha
}

// clamp keeps the view inside the level. A level smaller than the view on
// an axis is pinned to the left edge and to the bottom edge respectively.
func (c *Camera) clamp() {
	if !c.loop {
		maxX := c.bounds.Right() - c.viewW
		if maxX < c.bounds.X {
			c.offset.X = c.bounds.X
		} else {
			c.offset.X = math.Max(c.bounds.X, math.Min(maxX, c.offset.X))
		}
	}
	maxY := c.bounds.Bottom() - c.viewH
	if maxY < c.bounds.Y {
		c.offset.Y = maxY
	} else {
		c.offset.Y = math.Max(c.bounds.Y, math.Min(maxY, c.offset.Y))
	}
}

// Shake starts a decaying shake. A weaker shake never overrides a stronger
// one already running.
func (c *Camera) Shake(intensity, duration float64) {
	if c.shake.elapsed < c.shake.duration && intensity <= c.shake.intensity {
		return
	}
	c.shake = shake{intensity: intensity, duration: duration}
}

func (c *Camera) applyShake(dt float64) {
	s := &c.shake
	if s.elapsed >= s.duration {
		return
	}
	s.elapsed += dt
	progress := math.Max(0, (s.duration-s.elapsed)/s.duration)
	amount := s.intensity * progress
	c.offset.X += math.Sin(s.elapsed*66) * amount
	c.offset.Y += math.Cos(s.elapsed*78) * amount
}

// Lead returns the current look-ahead.
func (c *Camera) Lead() float64 { return c.lead }

// Offset is the world position of the viewport's top-left corner.
func (c *Camera) Offset() dmath.Vec2 { return c.offset }

// Size returns the viewport size in pixels.
func (c *Camera) Size() (w, h float64) { return c.viewW, c.viewH }

// Viewport is the visible world rectangle.
func (c *Camera) Viewport() level.Rect {
	return level.Rect{X: c.offset.X, Y: c.offset.Y, W: c.viewW, H: c.viewH}
}

func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return x - c.offset.X, y - c.offset.Y
}

func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	return x + c.offset.X, y + c.offset.Y
}

// Visible reports whether r intersects the viewport.
func (c *Camera) Visible(r level.Rect) bool {
	return c.Viewport().Overlaps(r)
}
