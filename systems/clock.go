package systems

import (
	"time"

	"github.com/automoto/foolrunner/components"
	"github.com/yohamta/donburi/ecs"
)

const firstStep = 1.0 / 60.0

// NewUpdateClock measures the wall-clock time since the previous update, or
// hands out a constant step when fixed is positive. Clamping to the physics
// step limit happens in the controller.
func NewUpdateClock(fixed float64) ecs.System {
	var last time.Time
	return func(e *ecs.ECS) {
		clock := GetOrCreateClock(e)
		clock.Step++
		if fixed > 0 {
			clock.DT = fixed
			return
		}
		now := time.Now()
		clock.DT = firstStep
		if !last.IsZero() {
			clock.DT = now.Sub(last).Seconds()
		}
		last = now
	}
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
