// Package figure renders platforms and stick figure poses onto a Surface.
// Platforms are drawn in Terrain, which is the color the collision probe
// treats as solid, so terrain drawn by DrawTerrain becomes collidable on the
// next frame.
package figure

import (
	"image"
	"image/color"

	"github.com/automoto/molasses-mike/shared/pixelprobe"
	"github.com/automoto/molasses-mike/shared/pose"
	"github.com/automoto/molasses-mike/shared/tuning"
)

var (
	Background color.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Terrain    color.Color = pixelprobe.Obstruction
	Figure     color.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Surface is the set of drawing primitives the renderer needs.
type Surface interface {
	Bounds() image.Rectangle
	Fill(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

// DrawTerrain clears s and draws the platforms. This is everything the
// collision probe may see; the figure is drawn on top afterwards.
func DrawTerrain(s Surface, platforms []tuning.Platform) {
	s.Fill(Background)
	DrawPlatforms(s, platforms)
}

func DrawPlatforms(s Surface, platforms []tuning.Platform) {
	for _, pl := range platforms {
		s.FillRect(pl.X, pl.Y, pl.Width, pl.Height, Terrain)
	}
}

// DrawPose draws the head, the body and both segments of every limb.
func DrawPose(s Surface, p pose.Pose) {
	s.FillCircle(p.Head.Center.X, p.Head.Center.Y, p.Head.Radius, Figure)

	if p.Body.Round {
		s.FillCircle(p.Body.Center.X, p.Body.Center.Y, p.Body.Radius, Figure)
	} else {
		s.FillRect(p.Body.Min.X, p.Body.Min.Y, p.Body.Width, p.Body.Height, Figure)
	}

	for _, l := range []pose.Limb{p.LeftArm, p.RightArm, p.LeftLeg, p.RightLeg} {
		drawLimb(s, l)
	}
}

func drawLimb(s Surface, l pose.Limb) {
	s.StrokeLine(l.Root.X, l.Root.Y, l.Joint.X, l.Joint.Y, pose.LineWidth, Figure)
	s.StrokeLine(l.Joint.X, l.Joint.Y, l.End.X, l.End.Y, pose.LineWidth, Figure)
}
