package factory

import (
	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/level"
	"github.com/automoto/foolrunner/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// World is what a play session needs to populate an ECS.
type World struct {
	Config     cfg.Config
	Controller *physics.Controller
	Levels     []*level.Level
	LevelIndex int
	Best       float64
	Sprite     *ebiten.Image
}

// CreateWorld spawns the level, runner, camera, tracker and render handoff.
// The same world backs the window and the headless simulator.
func CreateWorld(ecs *ecs.ECS, w World) (*components.PlayerData, error) {
	lvlEntry, err := CreateLevel(ecs, w.Levels, w.LevelIndex, w.Config.Level)
	if err != nil {
		return nil, err
	}
	lvl := components.Level.Get(lvlEntry).Current

	playerEntry := CreatePlayer(ecs, lvl, w.Config.Player, w.Controller.DefaultRunSpeed(), w.Sprite)
	player := components.Player.Get(playerEntry)

	CreateCamera(ecs, w.Config.Camera, w.Config.Display, lvl, player.Body.Box)
	CreateRun(ecs, float64(w.Config.Physics.TileSize), w.Config.Level.RegionDistance, player.Body.Box.X, w.Best)
	CreateFrame(ecs, w.Config.Colors)
	return player, nil
}
