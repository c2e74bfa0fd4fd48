// Package hitmap remembers recent obstruction hits so the debug overlay can
// show where the probe has been stopping the character.
package hitmap

import (
	"image"

	"github.com/kamstrup/intmap"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Heat maps packed pixel positions to the frames left before they fade.
type Heat struct {
	width int
	ttl   int
	cells *intmap.Map[int, int]
	aged  []cell
	fade  *gween.Tween // frames left -> strength
}

type cell struct {
	key, left int
}

// New returns an empty Heat for a buffer of the given width. Marked points
// stay visible for ttl frames.
func New(width, ttl int) *Heat {
	if width < 1 {
		width = 1
	}
	if ttl < 1 {
		ttl = 1
	}
	return &Heat{
		width: width,
		ttl:   ttl,
		cells: intmap.New[int, int](64),
		fade:  gween.New(0, 1, float32(ttl), ease.InQuad),
	}
}

// Mark records a hit at p, restarting its fade.
func (h *Heat) Mark(p image.Point) {
	if p.X < 0 || p.Y < 0 || p.X >= h.width {
		return
	}
	h.cells.Put(h.key(p), h.ttl)
}

// Tick ages every point by one frame and forgets the expired ones.
func (h *Heat) Tick() {
	h.aged = h.aged[:0]
	h.cells.ForEach(func(k, left int) bool {
		h.aged = append(h.aged, cell{key: k, left: left - 1})
		return true
	})
	for _, c := range h.aged {
		if c.left <= 0 {
			h.cells.Del(c.key)
			continue
		}
		h.cells.Put(c.key, c.left)
	}
}

// Each calls fn for every live point with its remaining strength in (0, 1].
// Strength eases out quadratically as the point ages.
func (h *Heat) Each(fn func(p image.Point, strength float64)) {
	h.cells.ForEach(func(k, left int) bool {
		strength, _ := h.fade.Set(float32(left))
		fn(h.point(k), float64(strength))
		return true
	})
}

func (h *Heat) Len() int {
	return h.cells.Len()
}

func (h *Heat) Clear() {
	h.cells.Clear()
}

func (h *Heat) key(p image.Point) int {
	return p.Y*h.width + p.X
}

func (h *Heat) point(k int) image.Point {
	return image.Point{X: k % h.width, Y: k / h.width}
}
