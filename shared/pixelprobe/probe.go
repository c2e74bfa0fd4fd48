// Package pixelprobe tests movement against a rendered frame instead of
// against geometry. A pixel that is exactly opaque black is solid terrain.
//
// The buffer is always the previous frame, so terrain becomes collidable one
// frame after it is drawn.
package pixelprobe

import (
	"image"
	"image/color"
)

// Obstruction is the color that blocks movement.
var Obstruction = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Hit classifies an obstruction relative to the direction of travel.
type Hit int

const (
	HitNone    Hit = iota
	HitLanding     // moving down onto the top of a surface
	HitCeiling     // moving up into a surface
	HitSide        // anything else, including horizontal moves
)

func (h Hit) String() string {
	switch h {
	case HitNone:
		return "none"
	case HitLanding:
		return "landing"
	case HitCeiling:
		return "ceiling"
	case HitSide:
		return "side"
	}
	return "unknown"
}

// Result is the outcome of Inspect.
type Result struct {
	Allowed bool
	Hit     Hit
	Point   image.Point // first obstructed sample, valid when !Allowed
}

// Probe reports whether a box at (x, y) of size (w, h) may move by (dx, dy)
// without any sample landing on an obstruction in buf.
func Probe(x, y, w, h, dx, dy float64, buf image.Image) bool {
	return Inspect(x, y, w, h, dx, dy, buf).Allowed
}

// Inspect is Probe with the classification of the first obstruction found.
//
// Samples are taken on a grid across the moved box with a stride of half its
// width and half its height, so small boxes are covered at least at the
// corners and the center lines. Large boxes are covered sparsely. Samples
// outside the buffer are skipped, so nothing off screen ever blocks.
func Inspect(x, y, w, h, dx, dy float64, buf image.Image) Result {
	if buf == nil {
		return Result{Allowed: true}
	}
	bounds := buf.Bounds()
	left, top, right, bottom := box(x, y, w, h, dx, dy)
	sx, sy := stride(w, h)

	rgba, _ := buf.(*image.RGBA)
	for px := left; px <= right; px += sx {
		for py := top; py <= bottom; py += sy {
			p := image.Point{X: px, Y: py}
			if !p.In(bounds) {
				continue
			}
			if !obstructed(buf, rgba, p) {
				continue
			}
			return Result{Hit: classify(y, h, dy, py), Point: p}
		}
	}
	return Result{Allowed: true}
}

// Samples returns every sample point Inspect would read for the move,
// including the ones outside the buffer.
func Samples(x, y, w, h, dx, dy float64) []image.Point {
	left, top, right, bottom := box(x, y, w, h, dx, dy)
	sx, sy := stride(w, h)

	var pts []image.Point
	for px := left; px <= right; px += sx {
		for py := top; py <= bottom; py += sy {
			pts = append(pts, image.Point{X: px, Y: py})
		}
	}
	return pts
}

func box(x, y, w, h, dx, dy float64) (left, top, right, bottom int) {
	left = int(x + dx)
	right = int(x + w + dx)
	top = int(y + dy)
	bottom = int(y + h + dy)
	return left, top, right, bottom
}

// stride never drops below one pixel; a zero stride would never terminate.
func stride(w, h float64) (int, int) {
	sx, sy := int(w)/2, int(h)/2
	if sx < 1 {
		sx = 1
	}
	if sy < 1 {
		sy = 1
	}
	return sx, sy
}

func obstructed(buf image.Image, rgba *image.RGBA, p image.Point) bool {
	if rgba != nil {
		return rgba.RGBAAt(p.X, p.Y) == Obstruction
	}
	r, g, b, a := buf.At(p.X, p.Y).RGBA()
	return r == 0 && g == 0 && b == 0 && a == 0xffff
}

func classify(y, h, dy float64, py int) Hit {
	sample := float64(py)
	switch {
	case dy > 0 && sample <= y+h:
		return HitLanding
	case dy < 0 && sample >= y:
		return HitCeiling
	}
	return HitSide
}
