// Package physics implements time-based platformer movement: the per-step
// velocity model of an actor and the axis-separated sweep that resolves its
// displacement against a tile grid.
package physics

import (
	"github.com/automoto/foolrunner/level"
	"github.com/yohamta/donburi/features/math"
)

// Expired is the value of a timer whose window has long passed. Timers are
// never "unset"; they simply hold a time far outside every window.
const Expired = 1e9

// Body is the simulated state of an actor. Box is authoritative for
// collision and independent of any sprite.
type Body struct {
	Box      level.Rect
	Vel      math.Vec2 // px/s
	OnGround bool
	Alive    bool

	TimeSinceGrounded    float64
	TimeSinceJumpPressed float64
	JumpHoldTime         float64

	Jumping      bool    // Rising from a taken jump
	JumpReleased bool    // Jump let go during the current jump
	AscentTime   float64 // Seconds since take-off, drives the easing overlay

	lastStep float64 // Clamped dt of the latest Step
}

// NewBody places an airborne, living body with all windows expired.
func NewBody(box level.Rect) *Body {
	return &Body{
		Box:                  box,
		Alive:                true,
		TimeSinceGrounded:    Expired,
		TimeSinceJumpPressed: Expired,
	}
}

// Intent is the per-step input to the controller.
type Intent struct {
	Left        bool
	Right       bool
	JumpPressed bool // Down edge this step
	JumpHeld    bool
}

// Direction is -1, 0 or +1 from the horizontal intents.
func (in Intent) Direction() float64 {
	dir := 0.0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	return dir
}

// Bottom is the y coordinate of the body's feet.
func (b *Body) Bottom() float64 { return b.Box.Bottom() }

// Center returns the middle of the collider.
func (b *Body) Center() (x, y float64) {
	return b.Box.X + b.Box.W/2, b.Box.Y + b.Box.H/2
}

// Kill stops the body where it is.
func (b *Body) Kill() {
	b.Alive = false
	b.Vel = math.Vec2{}
	b.Jumping = false
	b.JumpReleased = false
}

// Reset revives the body standing in box with horizontal speed vx.
func (b *Body) Reset(box level.Rect, vx float64) {
	*b = Body{
		Box:                  box,
		Vel:                  math.Vec2{X: vx},
		OnGround:             true,
		Alive:                true,
		TimeSinceJumpPressed: Expired,
	}
}
