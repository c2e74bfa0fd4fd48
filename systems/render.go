package systems

import (
	"image"
	"image/color"

	"github.com/automoto/molasses-mike/components"
	"github.com/automoto/molasses-mike/shared/figure"
	"github.com/automoto/molasses-mike/shared/tuning"
	"github.com/automoto/molasses-mike/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// surface adapts an ebiten image to figure.Surface. Antialiasing stays off so
// platforms are exactly the terrain color.
type surface struct {
	dst *ebiten.Image
}

func (s surface) Bounds() image.Rectangle { return s.dst.Bounds() }
func (s surface) Fill(c color.Color)      { s.dst.Fill(c) }

func (s surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s surface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.FillCircle(s.dst, float32(cx), float32(cy), float32(r), c, false)
}

func (s surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, false)
}

// DrawBackground clears the frame.
func DrawBackground(ecs *ecs.ECS, dst *ebiten.Image) {
	dst.Fill(figure.Background)
}

// DrawPlatforms draws every platform's solid object in the terrain color.
func DrawPlatforms(ecs *ecs.ECS, dst *ebiten.Image) {
	var platforms []tuning.Platform
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		platforms = append(platforms, tuning.Platform{X: o.X, Y: o.Y, Width: o.W, Height: o.H})
	})
	figure.DrawPlatforms(surface{dst}, platforms)
}

// DrawCharacter draws the pose computed by the latest step.
func DrawCharacter(ecs *ecs.ECS, dst *ebiten.Image) {
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Character.Get(e).Last.Pose
		if p.Scale == 0 {
			return // not stepped yet
		}
		figure.DrawPose(surface{dst}, p)
	})
}
