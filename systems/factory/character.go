package factory

import (
	"github.com/automoto/molasses-mike/archetypes"
	"github.com/automoto/molasses-mike/components"
	cfg "github.com/automoto/molasses-mike/config"
	"github.com/automoto/molasses-mike/shared/roll"
	"github.com/automoto/molasses-mike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter spawns the character at the configured spawn point with an
// idle roll state.
func CreateCharacter(ecs *ecs.ECS) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	state := cfg.MotionConfig().Spawn()
	components.Character.SetValue(character, components.CharacterData{State: state})
	components.Roll.SetValue(character, components.RollData{State: *roll.NewWithConfig(cfg.RollStateConfig())})

	obj := resolv.NewObject(state.X, state.Y, state.Width, state.Height, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, state.Width, state.Height))
	obj.Data = character
	components.Object.SetValue(character, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	return character
}
