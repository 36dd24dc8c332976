package systems

import (
	"github.com/automoto/foolrunner/components"
	"github.com/automoto/foolrunner/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// NewUpdateCollisions sweeps the pending displacement through the tile grid
// and lands the body. X is resolved before Y.
func NewUpdateCollisions(ctrl *physics.Controller) ecs.System {
	return func(e *ecs.ECS) {
		lvl, ok := components.Level.First(e.World)
		if !ok {
			return
		}
		resolver := components.Level.Get(lvl).Resolver

		components.Player.Each(e.World, func(entry *donburi.Entry) {
			p := components.Player.Get(entry)
			if !p.Body.Alive {
				return
			}
			b := p.Body
			res := resolver.Resolve(b.Box, b.Vel.X, b.Vel.Y, p.Pending.X, p.Pending.Y)
			ctrl.Land(b, res)
			p.Last = res
			p.Pending = math.Vec2{}
		})
	}
}
