package figure

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Canvas is a software Surface backed by an RGBA image. Rectangles are
// filled without antialiasing so terrain stays exactly Terrain colored;
// circles and lines go through an antialiasing rasterizer.
type Canvas struct {
	img  *image.RGBA
	ras  *vector.Rasterizer
	area image.Rectangle // rasterizer extent within img
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image. It is the frame buffer the collision
// probe reads.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	if r <= 0 || !c.begin(cx-r, cy-r, cx+r, cy+r) {
		return
	}
	k := r * kappa
	c.moveTo(cx+r, cy)
	c.cubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	c.cubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	c.cubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	c.cubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	c.ras.ClosePath()
	c.flush(col)
}

// StrokeLine draws a butt capped segment of the given width.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	ax, ay := math.Abs(nx), math.Abs(ny)
	if !c.begin(min(x0, x1)-ax, min(y0, y1)-ay, max(x0, x1)+ax, max(y0, y1)+ay) {
		return
	}

	c.moveTo(x0+nx, y0+ny)
	c.lineTo(x1+nx, y1+ny)
	c.lineTo(x1-nx, y1-ny)
	c.lineTo(x0-nx, y0-ny)
	c.ras.ClosePath()
	c.flush(col)
}

// begin sizes the rasterizer to the part of the canvas a shape with the given
// bounds can touch. It reports false when that part is empty.
func (c *Canvas) begin(x0, y0, x1, y1 float64) bool {
	r := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return false
	}
	c.area = r
	c.ras.Reset(r.Dx(), r.Dy())
	return true
}

// Path points are given in canvas coordinates and shifted into the area.

func (c *Canvas) moveTo(x, y float64) {
	c.ras.MoveTo(c.local(x, y))
}

func (c *Canvas) lineTo(x, y float64) {
	c.ras.LineTo(c.local(x, y))
}

func (c *Canvas) cubeTo(x0, y0, x1, y1, x2, y2 float64) {
	ax, ay := c.local(x0, y0)
	bx, by := c.local(x1, y1)
	cx, cy := c.local(x2, y2)
	c.ras.CubeTo(ax, ay, bx, by, cx, cy)
}

func (c *Canvas) local(x, y float64) (float32, float32) {
	return float32(x - float64(c.area.Min.X)), float32(y - float64(c.area.Min.Y))
}

func (c *Canvas) flush(col color.Color) {
	c.ras.Draw(c.img, c.area, image.NewUniform(col), image.Point{})
}
