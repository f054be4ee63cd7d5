package froggit

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/froggit/internal/core"
)

// Hitbox is a collision box relative to an object's center, in pixels.
type Hitbox cp.BB

// NewHitbox returns the bounding box of catalog points given in cells.
func NewHitbox(points [][2]float64, cell float64) Hitbox {
	if len(points) == 0 {
		return Hitbox{}
	}
	h := Hitbox{L: points[0][0], B: points[0][1], R: points[0][0], T: points[0][1]}
	for _, p := range points[1:] {
		h.L = math.Min(h.L, p[0])
		h.B = math.Min(h.B, p[1])
		h.R = math.Max(h.R, p[0])
		h.T = math.Max(h.T, p[1])
	}
	return Hitbox{L: h.L * cell, B: h.B * cell, R: h.R * cell, T: h.T * cell}
}

// Mirror flips the box horizontally, for sprites drawn facing left.
func (h Hitbox) Mirror() Hitbox {
	return Hitbox{L: -h.R, B: h.B, R: -h.L, T: h.T}
}

// At places the box around a center point.
func (h Hitbox) At(p cp.Vector) cp.BB {
	return cp.BB{L: p.X + h.L, B: p.Y + h.B, R: p.X + h.R, T: p.Y + h.T}
}

// overlaps reports whether two boxes share interior area. Touching edges
// do not count.
func overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

// cellCenter converts grid coordinates to the pixel center of the cell.
func cellCenter(col, row, cell float64) cp.Vector {
	return cp.Vector{X: (col + 0.5) * cell, Y: (row + 0.5) * cell}
}

// rowOf returns the grid row containing pixel height y.
func rowOf(y, cell float64) int {
	return int(math.Floor(y / cell))
}

// toBox converts a collision box to a drawable core.Box.
func toBox(bb cp.BB) core.Box {
	return core.Box{MinX: bb.L, MinY: bb.B, MaxX: bb.R, MaxY: bb.T}
}

// sizeBox returns a draw box of size (w, h) cells around p.
func sizeBox(p cp.Vector, size [2]float64, cell float64) core.Box {
	return core.BoxAround(p.X, p.Y, size[0]*cell, size[1]*cell)
}
