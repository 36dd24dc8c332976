package physics

import (
	"math"

	"github.com/automoto/foolrunner/config"
	"github.com/tanema/gween/ease"
)

// Controller turns intents and elapsed time into velocity and desired
// displacement. It never moves the box itself; see Resolver and Land.
type Controller struct {
	cfg    config.PhysicsConfig
	easing config.EasingConfig
	curve  ease.TweenFunc
}

// NewController builds a controller over fixed tunables.
func NewController(p config.PhysicsConfig, e config.EasingConfig) *Controller {
	c := &Controller{cfg: p, easing: e}
	switch e.Curve {
	case config.CurveCubic:
		c.curve = ease.OutCubic
	default:
		c.curve = ease.OutQuint
	}
	return c
}

// Config returns the physics tunables.
func (c *Controller) Config() config.PhysicsConfig { return c.cfg }

// ClampStep sanitizes a wall-clock dt into [0, MaxStep].
func (c *Controller) ClampStep(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, c.cfg.MaxStep)
}

// Step updates velocity and timers for one step and returns the displacement
// the resolver should apply. Dead bodies do not move.
func (c *Controller) Step(b *Body, in Intent, dt float64) (dx, dy float64) {
	dt = c.ClampStep(dt)
	if !b.Alive {
		return 0, 0
	}
	b.lastStep = dt
	b.Vel.X, b.Vel.Y = finite(b.Vel.X), finite(b.Vel.Y)

	b.Vel.X = c.horizontal(in)

	if in.JumpPressed {
		b.TimeSinceJumpPressed = 0
	}
	if b.Jumping && !in.JumpHeld {
		b.JumpReleased = true
	}

	canJump := b.OnGround || b.TimeSinceGrounded <= c.cfg.CoyoteTime
	if canJump && b.TimeSinceJumpPressed <= c.cfg.JumpBuffer {
		c.takeJump(b, in)
	}

	b.Vel.Y += c.cfg.Gravity * c.gravityScale(b, in) * dt
	if b.Vel.Y > c.cfg.MaxFallSpeed {
		b.Vel.Y = c.cfg.MaxFallSpeed
	}

	dx = b.Vel.X * dt
	dy = b.Vel.Y * dt
	if b.Jumping && b.Vel.Y < 0 {
		dy *= c.ascentScale(b.AscentTime)
	}

	if !b.OnGround && b.TimeSinceGrounded < Expired {
		b.TimeSinceGrounded += dt
	}
	if b.TimeSinceJumpPressed < Expired {
		b.TimeSinceJumpPressed += dt
	}
	if b.Jumping {
		b.AscentTime += dt
		if in.JumpHeld && !b.JumpReleased {
			b.JumpHoldTime += dt
		}
	}
	return dx, dy
}

func (c *Controller) takeJump(b *Body, in Intent) {
	b.Vel.Y = c.cfg.JumpImpulse
	b.TimeSinceJumpPressed = Expired
	b.TimeSinceGrounded = Expired
	b.OnGround = false
	b.Jumping = true
	b.JumpReleased = !in.JumpHeld
	b.JumpHoldTime = 0
	b.AscentTime = 0
}

func (c *Controller) horizontal(in Intent) float64 {
	dir := in.Direction()
	if !c.cfg.AutoRun {
		return c.cfg.RunSpeed * dir
	}
	switch {
	case dir < 0:
		return c.cfg.RunSpeed * c.cfg.AutoRunSlow
	case dir > 0:
		return c.cfg.RunSpeed * c.cfg.AutoRunFast
	}
	return c.cfg.RunSpeed
}

// DefaultRunSpeed is the horizontal speed of a body with no input.
func (c *Controller) DefaultRunSpeed() float64 {
	return c.horizontal(Intent{})
}

// gravityScale picks the multiplier for this step. Releasing jump only
// changes the multiplier from here on; velocity is never snapped.
func (c *Controller) gravityScale(b *Body, in Intent) float64 {
	if b.Vel.Y > 0 {
		return c.cfg.FallMultiplier
	}
	if !b.Jumping || b.Vel.Y == 0 {
		return 1
	}
	if b.JumpReleased {
		return c.cfg.LowJumpMultiplier
	}
	if in.JumpHeld && b.JumpHoldTime < c.cfg.JumpHoldLimit {
		return c.cfg.HoldGravityMultiplier
	}
	return 1
}

// ascentScale is 1 - gain*curve(u)^power, u in [0,1] over the nominal time to apex.
func (c *Controller) ascentScale(t float64) float64 {
	if !c.easing.Enabled || c.easing.Gain == 0 {
		return 1
	}
	apex := math.Abs(c.cfg.JumpImpulse) / c.cfg.Gravity
	if apex <= 0 {
		return 1
	}
	u := t * c.easing.DomainScale / apex
	u = math.Max(0, math.Min(1, u))
	e := float64(c.curve(float32(u), 0, 1, 1))
	return 1 - c.easing.Gain*math.Pow(math.Max(0, e), c.easing.Power)
}

// Land applies a resolver result to the body and updates ground state.
func (c *Controller) Land(b *Body, res Result) {
	b.Box = res.Box
	b.Vel.X, b.Vel.Y = res.VX, res.VY
	if res.Grounded {
		b.OnGround = true
		b.TimeSinceGrounded = 0
		b.Jumping = false
		b.JumpReleased = false
		b.JumpHoldTime = 0
		b.AscentTime = 0
		return
	}
	if b.OnGround {
		// Walked off a ledge: the step just taken already counts as airborne.
		b.TimeSinceGrounded = b.lastStep
	}
	b.OnGround = false
}

// Move runs one full step: velocity update, sweep, ground update.
func (c *Controller) Move(b *Body, in Intent, dt float64, r Resolver) Result {
	if !b.Alive {
		return Result{Box: b.Box}
	}
	dx, dy := c.Step(b, in, dt)
	res := r.Resolve(b.Box, b.Vel.X, b.Vel.Y, dx, dy)
	c.Land(b, res)
	return res
}
