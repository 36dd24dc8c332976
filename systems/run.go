package systems

import (
	"github.com/automoto/foolrunner/components"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateRun advances the attempt tracker and picks the background region
// out of regions.
func NewUpdateRun(regions int) ecs.System {
	return func(e *ecs.ECS) {
		runEntry, ok := components.Run.First(e.World)
		if !ok {
			return
		}
		playerEntry, ok := components.Player.First(e.World)
		if !ok {
			return
		}
		r := components.Run.Get(runEntry)
		body := components.Player.Get(playerEntry).Body
		r.Tracker.Update(body.Box.X, GetOrCreateClock(e).DT)
		r.Region = r.Tracker.Region(regions)
	}
}
