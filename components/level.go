package components

import (
	"github.com/automoto/foolrunner/hazard"
	"github.com/automoto/foolrunner/level"
	"github.com/automoto/foolrunner/physics"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Current  *level.Level
	Index    int
	Levels   []*level.Level
	Resolver physics.Resolver
	Hazards  *hazard.System
}

var Level = donburi.NewComponentType[LevelData]()
