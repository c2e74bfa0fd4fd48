package systems

import (
	"image"

	"github.com/automoto/molasses-mike/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SnapshotFrame copies the terrain into the FrameBuffer component. Call it
// after the Default layer is drawn into canvas and before the figure or
// anything else that must not collide.
func SnapshotFrame(ecs *ecs.ECS, canvas *ebiten.Image) {
	entry, ok := components.FrameBuffer.First(ecs.World)
	if !ok {
		return
	}
	fb := components.FrameBuffer.Get(entry)

	b := canvas.Bounds()
	if fb.Image == nil || fb.Image.Bounds().Size() != b.Size() {
		fb.Image = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	canvas.ReadPixels(fb.Image.Pix)
	fb.Frame++
	fb.Ready = true
}
