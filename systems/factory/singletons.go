package factory

import (
	"image"

	"github.com/automoto/molasses-mike/archetypes"
	"github.com/automoto/molasses-mike/components"
	cfg "github.com/automoto/molasses-mike/config"
	"github.com/automoto/molasses-mike/shared/hitmap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFrameBuffer spawns the previous-frame buffer. It stays empty, and
// blocks nothing, until the first snapshot.
func CreateFrameBuffer(ecs *ecs.ECS, width, height int) *donburi.Entry {
	fb := archetypes.FrameBuffer.Spawn(ecs)
	components.FrameBuffer.SetValue(fb, components.FrameBufferData{
		Image: image.NewRGBA(image.Rect(0, 0, width, height)),
	})
	return fb
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

func CreateDebug(ecs *ecs.ECS) *donburi.Entry {
	d := archetypes.Debug.Spawn(ecs)
	components.Debug.SetValue(d, components.DebugData{
		Enabled: cfg.Debug.Overlay,
		Heat:    hitmap.New(cfg.C.Width, cfg.Debug.HitFade),
	})
	return d
}
