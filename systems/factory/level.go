package factory

import (
	"fmt"

	"github.com/automoto/foolrunner/archetypes"
	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/hazard"
	"github.com/automoto/foolrunner/level"
	"github.com/automoto/foolrunner/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity for levels[levelIndex] with its
// collision resolver and hazard index.
func CreateLevel(ecs *ecs.ECS, levels []*level.Level, levelIndex int, c cfg.LevelConfig) (*donburi.Entry, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels loaded")
	}

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	current := levels[levelIndex].WithLoop(c.Loop)
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		Current:  current,
		Index:    levelIndex,
		Levels:   levels,
		Resolver: physics.NewResolver(current.Grid),
		Hazards:  hazard.New(current, c),
	})
	return entry, nil
}
