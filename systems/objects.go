package systems

import (
	"github.com/automoto/molasses-mike/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each character's resolv object onto its probe box and
// refreshes it in the space.
func UpdateObjects(ecs *ecs.ECS) {
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Character.Get(e).State
		obj := components.Object.Get(e)
		obj.X, obj.Y = s.X, s.Y
		obj.W, obj.H = s.Width, s.Height
		obj.Update()
	})
}
