package components

import (
	"image"

	"github.com/automoto/molasses-mike/shared/hitmap"
	"github.com/automoto/molasses-mike/shared/pixelprobe"
	"github.com/yohamta/donburi"
)

// DebugData collects what the overlay shows about the latest step.
type DebugData struct {
	Enabled bool

	Samples []image.Point     // probe grid of the latest vertical move
	Probe   pixelprobe.Result // latest vertical probe
	Heat    *hitmap.Heat      // recent obstruction hits

	// Geometric cross-check against resolv
	GeometryGrounded bool
	Mismatches       int
}

var Debug = donburi.NewComponentType[DebugData]()
