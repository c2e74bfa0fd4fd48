package factory

import (
	"github.com/automoto/molasses-mike/archetypes"
	"github.com/automoto/molasses-mike/components"
	"github.com/automoto/molasses-mike/shared/tuning"
	"github.com/automoto/molasses-mike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a static platform. Platforms only collide through
// the pixels they are drawn with; the solid object backs the debug overlay
// and the geometric cross-check.
func CreatePlatform(ecs *ecs.ECS, p tuning.Platform) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(p.X, p.Y, p.Width, p.Height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, p.Width, p.Height))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	return platform
}

// CreatePlatforms spawns every platform of the fixed layout.
func CreatePlatforms(ecs *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	for _, p := range tuning.Platforms() {
		out = append(out, CreatePlatform(ecs, p))
	}
	return out
}
