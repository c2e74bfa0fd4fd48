package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// FrameBufferData is the previous rendered frame. The character update reads
// it; only the frame snapshot writes it.
type FrameBufferData struct {
	Image *image.RGBA
	Frame int  // number of snapshots taken
	Ready bool // false until the first frame has been drawn
}

var FrameBuffer = donburi.NewComponentType[FrameBufferData]()
