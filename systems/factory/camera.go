package factory

import (
	"github.com/automoto/foolrunner/archetypes"
	"github.com/automoto/foolrunner/camera"
	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns a camera over lvl already framing target.
func CreateCamera(ecs *ecs.ECS, c cfg.CameraConfig, d cfg.DisplayConfig, lvl *level.Level, target level.Rect) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)
	view := camera.New(c, d.Width, d.Height, lvl.Bounds(), lvl.Grid.Loops())
	view.Reset(target)
	components.Camera.Set(entry, &components.CameraData{View: view})
	return entry
}
