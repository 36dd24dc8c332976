package systems

import (
	"github.com/automoto/foolrunner/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player. It runs after hazards so a dead body's
// final position is what the camera settles on.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Player.Get(playerEntry).Body
	components.Camera.Get(cameraEntry).View.Update(body.Box, body.Vel.X, GetOrCreateClock(e).DT)
}
