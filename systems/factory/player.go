package factory

import (
	"github.com/automoto/foolrunner/archetypes"
	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/level"
	"github.com/automoto/foolrunner/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer places the runner on the level's spawn marker, already moving
// at vx. sprite may be nil.
func CreatePlayer(ecs *ecs.ECS, lvl *level.Level, p cfg.PlayerConfig, vx float64, sprite *ebiten.Image) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body := physics.NewBody(lvl.SpawnBox(p.Width, p.Height))
	body.Reset(body.Box, vx)
	components.Player.SetValue(player, components.PlayerData{Body: body})
	components.Sprite.SetValue(player, components.SpriteData{Image: sprite})

	return player
}
