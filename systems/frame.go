package systems

import (
	"github.com/automoto/foolrunner/components"
	"github.com/automoto/foolrunner/frame"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFrame builds the render handoff for this step. It runs in every
// state so paused and dead screens still show the world.
func UpdateFrame(e *ecs.ECS) {
	frameEntry, ok := components.Frame.First(e.World)
	if !ok {
		return
	}
	lvlEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	f := components.Frame.Get(frameEntry)
	f.Snapshot = frame.Build(
		components.Level.Get(lvlEntry).Current,
		components.Player.Get(playerEntry).Body,
		components.Camera.Get(cameraEntry).View,
		f.Palette,
	)
}
