package systems

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/molasses-mike/components"
	cfg "github.com/automoto/molasses-mike/config"
	"github.com/automoto/molasses-mike/logging"
	"github.com/automoto/molasses-mike/shared/motion"
	"github.com/automoto/molasses-mike/shared/pixelprobe"
	"github.com/automoto/molasses-mike/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug records what the overlay shows about the next vertical probe
// and compares the pixel verdict with resolv geometry.
// Must run AFTER UpdateObjects.
func UpdateDebug(ecs *ecs.ECS) {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		return
	}
	debug := components.Debug.Get(entry)

	if getOrCreateInput(ecs).Action(cfg.ActionToggleDebug).JustPressed {
		debug.Enabled = !debug.Enabled
		logging.Logger.Info("debug overlay", "enabled", debug.Enabled)
	}

	if debug.Heat != nil {
		debug.Heat.Tick()
	}

	buf := previousFrame(ecs)
	if buf == nil {
		return
	}

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		character := components.Character.Get(e)
		s := character.State
		dy := nextFall(s)

		debug.Samples = pixelprobe.Samples(s.X, s.Y, s.Width, s.Height, 0, dy)
		debug.Probe = pixelprobe.Inspect(s.X, s.Y, s.Width, s.Height, 0, dy, buf)
		markHit(debug, debug.Probe)

		if character.Last.BlockedX {
			markHit(debug, pixelprobe.Inspect(s.X, s.Y, s.Width, s.Height, walkDelta(s), 0, buf))
		}

		if cfg.Debug.CrossCheck {
			crossCheck(debug, components.Object.Get(e).Object, dy)
		}
	})
}

// nextFall is the vertical move the next step will probe first.
func nextFall(s motion.State) float64 {
	if s.VelocityY != 0 {
		return s.VelocityY
	}
	return cfg.Physics.Gravity
}

func walkDelta(s motion.State) float64 {
	switch {
	case s.WalkingLeft:
		return -cfg.Player.WalkSpeed
	case s.WalkingRight:
		return cfg.Player.WalkSpeed
	}
	return 0
}

func markHit(debug *components.DebugData, r pixelprobe.Result) {
	if r.Allowed || debug.Heat == nil {
		return
	}
	debug.Heat.Mark(r.Point)
}

func crossCheck(debug *components.DebugData, obj *resolv.Object, dy float64) {
	if obj == nil {
		return
	}
	debug.GeometryGrounded = geometryBlocked(obj, dy)
	pixelBlocked := !debug.Probe.Allowed
	if pixelBlocked == debug.GeometryGrounded {
		return
	}
	debug.Mismatches++
	logging.Logger.Debug("probe disagrees with geometry",
		"pixel", pixelBlocked,
		"geometry", debug.GeometryGrounded,
		"x", obj.X, "y", obj.Y, "dy", dy)
}

// geometryBlocked narrows resolv's cell check down to boxes that overlap.
func geometryBlocked(obj *resolv.Object, dy float64) bool {
	c := obj.Check(0, dy, tags.ResolvSolid)
	if c == nil {
		return false
	}
	for _, o := range c.Objects {
		if obj.X < o.X+o.W && obj.X+obj.W > o.X && obj.Y+dy < o.Y+o.H && obj.Y+obj.H+dy > o.Y {
			return true
		}
	}
	return false
}

// DrawDebug draws the overlay directly on the screen, after the frame
// snapshot, so nothing here ever blocks movement.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		return
	}
	debug := components.Debug.Get(entry)
	if !debug.Enabled {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.UI.DebugSolidColor
			if obj.HasTags(tags.ResolvCharacter) {
				c = cfg.UI.DebugPlayerColor
			}
			outline(screen, obj.X, obj.Y, obj.W, obj.H, c)
		}
	}

	if debug.Heat != nil {
		hit := cfg.UI.DebugHitColor
		debug.Heat.Each(func(p image.Point, strength float64) {
			c := color.RGBA{
				R: uint8(float64(hit.R) * strength),
				G: uint8(float64(hit.G) * strength),
				B: uint8(float64(hit.B) * strength),
				A: uint8(float64(hit.A) * strength),
			}
			vector.FillRect(screen, float32(p.X-2), float32(p.Y-2), 5, 5, c, false)
		})
	}

	for _, p := range debug.Samples {
		vector.FillRect(screen, float32(p.X), float32(p.Y), 1, 1, cfg.UI.DebugSampleColor, false)
	}

	status := fmt.Sprintf("TPS %.0f  probe %s  geometry grounded %t  mismatches %d",
		ebiten.ActualTPS(), debug.Probe.Hit, debug.GeometryGrounded, debug.Mismatches)
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Character.Get(e).State
		status += fmt.Sprintf("\nx %.1f  y %.1f  vy %.2f  ground %t", s.X, s.Y, s.VelocityY, s.OnGround)
	})
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
