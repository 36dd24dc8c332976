package systems

import (
	"github.com/automoto/foolrunner/components"
	"github.com/automoto/foolrunner/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePlayer turns this step's input into an intent and asks the
// controller for velocity and the displacement to sweep.
func NewUpdatePlayer(ctrl *physics.Controller) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		dt := GetOrCreateClock(e).DT

		components.Player.Each(e.World, func(entry *donburi.Entry) {
			p := components.Player.Get(entry)
			p.Intent = IntentFromInput(input)
			p.Pending.X, p.Pending.Y = ctrl.Step(p.Body, p.Intent, dt)
		})
	}
}
