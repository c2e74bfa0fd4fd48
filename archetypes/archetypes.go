package archetypes

import (
	"github.com/automoto/molasses-mike/components"
	cfg "github.com/automoto/molasses-mike/config"
	"github.com/automoto/molasses-mike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Roll,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	FrameBuffer = newArchetype(
		tags.FrameBuffer,
		components.FrameBuffer,
	)
	Input = newArchetype(
		components.Input,
	)
	Debug = newArchetype(
		components.Debug,
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
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
