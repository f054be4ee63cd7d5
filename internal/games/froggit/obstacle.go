package froggit

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

// Obstacle is a car, log, exit or open slot owned by a lane.
// Only its position changes after the level is built.
type Obstacle struct {
	Kind     string
	Pos      cp.Vector
	Reversed bool // drawn facing left, for lanes with negative speed

	hitbox Hitbox
	size   [2]float64
	glyph  rune
	color  core.Color
}

func newObstacle(obj levels.Object, row int, reversed bool, img levels.ImageInfo, cell float64) *Obstacle {
	hb := NewHitbox(img.Hitbox, cell)
	if reversed {
		hb = hb.Mirror()
	}
	size := img.Size
	if size == [2]float64{} {
		size = [2]float64{1, 1}
	}
	return &Obstacle{
		Kind:     obj.Type,
		Pos:      cellCenter(obj.Position, float64(row), cell),
		Reversed: reversed,
		hitbox:   hb,
		size:     size,
		glyph:    img.Rune(),
		color:    img.Tint(),
	}
}

// Bounds returns the hitbox at the current position.
func (o *Obstacle) Bounds() cp.BB {
	return o.hitbox.At(o.Pos)
}

// Contains reports whether p lies inside the hitbox, edges included.
func (o *Obstacle) Contains(p cp.Vector) bool {
	return o.Bounds().ContainsVect(p)
}

func (o *Obstacle) draw(c core.Canvas, cell float64) {
	c.Fill(sizeBox(o.Pos, o.size, cell), o.glyph, o.color)
}

// wrapX moves x by speed*dt and wraps it through the offscreen buffer.
// The distance travelled past one boundary is carried over to the other,
// so an obstacle at constant speed never jumps.
func wrapX(x, speed, dt, width, buffer float64) float64 {
	x += speed * dt
	left := -buffer
	right := width + buffer
	if right <= left {
		return x
	}
	if speed >= 0 {
		for x > right {
			x = left + (x - right)
		}
	} else {
		for x < left {
			x = right + (x - left)
		}
	}
	return x
}
