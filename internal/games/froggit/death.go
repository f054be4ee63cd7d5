package froggit

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

// DeathMarker is the skull left where the frog died.
type DeathMarker struct {
	Pos   cp.Vector
	Frame int

	sprite levels.SpriteInfo
	cell   float64
}

func (m *DeathMarker) draw(c core.Canvas) {
	c.Fill(sizeBox(m.Pos, m.sprite.Size, m.cell), m.sprite.Glyph(m.Frame), m.sprite.Tint())
}

// DeathProcess plays the marker animation: frames advance linearly with
// elapsed time and the last frame holds once duration has passed.
type DeathProcess struct {
	marker   *DeathMarker
	duration float64
	elapsed  float64
	frames   int
}

// StartDeath begins the animation on frame zero.
func StartDeath(m *DeathMarker, duration float64, frames int) *DeathProcess {
	if frames < 1 {
		frames = 1
	}
	m.Frame = 0
	return &DeathProcess{marker: m, duration: duration, frames: frames}
}

// Resume advances the animation by dt seconds.
func (p *DeathProcess) Resume(dt float64) ProcessStatus {
	p.elapsed += dt
	if p.duration <= 0 || p.elapsed >= p.duration-completionEpsilon {
		p.marker.Frame = p.frames - 1
		return Completed
	}
	frame := int(math.Floor(p.elapsed / p.duration * float64(p.frames)))
	p.marker.Frame = core.Clamp(frame, 0, p.frames-1)
	return Continuing
}
