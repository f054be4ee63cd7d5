package froggit

import (
	"math"

	"github.com/jakecoffman/cp"
)

// ProcessStatus is the result of resuming an animation process.
type ProcessStatus int

const (
	Continuing ProcessStatus = iota
	Completed
)

// completionEpsilon absorbs rounding when a sequence of deltas is meant to
// sum to the full duration.
const completionEpsilon = 1e-9

// FrameSet holds the sprite frames used by the hop animation.
type FrameSet struct {
	Neutral int
	First   int // extreme pose for up and right hops
	Last    int // extreme pose for down and left hops
}

// HopProcess slides the frog one cell. It is started once and resumed
// with each frame delta until it reports Completed; dropping it cancels
// the hop.
type HopProcess struct {
	frog     *Frog
	dir      Direction
	start    cp.Vector
	target   cp.Vector
	duration float64
	elapsed  float64
	frames   FrameSet
}

// StartHop begins a hop of one cell in direction dir lasting duration
// seconds. The frog does not move until the first Resume.
func StartHop(f *Frog, dir Direction, duration float64, frames FrameSet) *HopProcess {
	f.Facing = dir
	f.Frame = frames.Neutral
	return &HopProcess{
		frog:     f,
		dir:      dir,
		start:    f.Pos,
		target:   f.Pos.Add(dir.step().Mult(f.cell)),
		duration: duration,
		frames:   frames,
	}
}

// Target returns the position the hop ends at.
func (h *HopProcess) Target() cp.Vector {
	return h.target
}

// Direction returns the hop direction.
func (h *HopProcess) Direction() Direction {
	return h.dir
}

// Resume advances the hop by dt seconds. On completion the frog is placed
// exactly on the target.
func (h *HopProcess) Resume(dt float64) ProcessStatus {
	h.elapsed += dt
	if h.duration <= 0 || h.elapsed >= h.duration-completionEpsilon {
		h.frog.Pos = h.target
		h.frog.Frame = h.frames.Neutral
		return Completed
	}
	progress := h.elapsed / h.duration
	h.frog.Pos = h.start.Add(h.target.Sub(h.start).Mult(progress))
	h.frog.Frame = h.frame(progress)
	return Continuing
}

// frame maps hop progress to a sprite frame: neutral to the extreme pose
// over the first half, back to neutral over the second.
func (h *HopProcess) frame(progress float64) int {
	extreme := h.frames.Last
	if h.dir == North || h.dir == East {
		extreme = h.frames.First
	}
	neutral := float64(h.frames.Neutral)
	frac := 2 * progress
	if frac < 1 {
		return int(math.Round(neutral + frac*(float64(extreme)-neutral)))
	}
	frac--
	return int(math.Round(float64(extreme) + frac*(neutral-float64(extreme))))
}
