package archetypes

import (
	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Sprite,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Run = newArchetype(
		components.Run,
	)
	Frame = newArchetype(
		components.Frame,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.DefaultLayer,
		append(a.components, cs...)...,
	))
	return e
}
