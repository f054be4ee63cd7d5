package froggit

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

// leapStretch scales the sprite along the hop axis in an airborne pose.
const leapStretch = 1.2

// Direction is the way the frog faces or hops.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	default:
		return "unknown"
	}
}

// step returns the unit grid offset of a hop in direction d.
func (d Direction) step() cp.Vector {
	switch d {
	case North:
		return cp.Vector{X: 0, Y: 1}
	case South:
		return cp.Vector{X: 0, Y: -1}
	case West:
		return cp.Vector{X: -1, Y: 0}
	default:
		return cp.Vector{X: 1, Y: 0}
	}
}

// Frog is the player piece. Pos is its center in level pixels; Frame is
// the sprite pose, neutral at rest.
type Frog struct {
	Pos    cp.Vector
	Facing Direction
	Frame  int

	neutral int
	hitbox  Hitbox
	sprite  levels.SpriteInfo
	cell    float64
}

func newFrog(col, row int, sprite levels.SpriteInfo, cell float64, neutral int) *Frog {
	return &Frog{
		Pos:     cellCenter(float64(col), float64(row), cell),
		Facing:  North,
		Frame:   neutral,
		neutral: neutral,
		hitbox:  NewHitbox(sprite.Hitbox, cell),
		sprite:  sprite,
		cell:    cell,
	}
}

// Bounds returns the frog hitbox at its current position.
func (f *Frog) Bounds() cp.BB {
	return f.hitbox.At(f.Pos)
}

// Row returns the grid row of the frog's center.
func (f *Frog) Row() int {
	return rowOf(f.Pos.Y, f.cell)
}

// Col returns the grid column of the frog's center.
func (f *Frog) Col() int {
	return rowOf(f.Pos.X, f.cell)
}

// Leaping reports whether the frog shows an airborne pose.
func (f *Frog) Leaping() bool {
	return f.Frame != f.neutral
}

// Glyph returns the rune of the current pose.
func (f *Frog) Glyph() rune {
	if f.Leaping() {
		return f.sprite.LeapGlyph(int(f.Facing))
	}
	return f.sprite.Glyph(int(f.Facing))
}

// drawSize stretches the sprite along the hop axis while airborne.
func (f *Frog) drawSize() [2]float64 {
	size := f.sprite.Size
	if !f.Leaping() {
		return size
	}
	if f.Facing == North || f.Facing == South {
		size[1] *= leapStretch
	} else {
		size[0] *= leapStretch
	}
	return size
}

func (f *Frog) draw(c core.Canvas) {
	c.Fill(sizeBox(f.Pos, f.drawSize(), f.cell), f.Glyph(), f.sprite.Tint())
}
