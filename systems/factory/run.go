package factory

import (
	"github.com/automoto/foolrunner/archetypes"
	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/frame"
	"github.com/automoto/foolrunner/run"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRun starts the attempt tracker with the actor at startX.
func CreateRun(ecs *ecs.ECS, tileSize, regionDistance, startX, best float64) *donburi.Entry {
	entry := archetypes.Run.Spawn(ecs)
	tracker := run.NewTracker(tileSize, regionDistance)
	tracker.Start(startX)
	components.Run.Set(entry, &components.RunData{Tracker: tracker, Best: best})
	return entry
}

// CreateFrame spawns the empty render handoff.
func CreateFrame(ecs *ecs.ECS, colors cfg.ColorConfig) *donburi.Entry {
	entry := archetypes.Frame.Spawn(ecs)
	components.Frame.Set(entry, &components.FrameData{Palette: frame.NewPalette(colors)})
	return entry
}
