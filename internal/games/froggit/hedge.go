package froggit

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

// ExitRegistry tracks the slots of a hedge lane. Captures are permanent.
type ExitRegistry struct {
	both    []*Obstacle // exits and opens, captured exits removed
	exits   []*Obstacle // capturable exits, captured exits removed
	markers []cp.Vector // safe frogs left at captured exits
	cell    float64
}

func newExitRegistry(objs []*Obstacle, cell float64) *ExitRegistry {
	r := &ExitRegistry{cell: cell}
	for _, o := range objs {
		r.both = append(r.both, o)
		if o.Kind != levels.OpenObject {
			r.exits = append(r.exits, o)
		}
	}
	return r
}

// FrogInExit reports whether the point one cell above the frog lies in a
// slot it may hop into.
func (r *ExitRegistry) FrogInExit(f *Frog) bool {
	if f == nil {
		return false
	}
	p := cp.Vector{X: f.Pos.X, Y: f.Pos.Y + r.cell}
	for _, o := range r.both {
		if o.Contains(p) {
			return true
		}
	}
	return false
}

// FrogLands captures the exit under the frog's center. It returns false
// when the frog is not in an uncaptured exit.
func (r *ExitRegistry) FrogLands(f *Frog) bool {
	if f == nil {
		return false
	}
	for i, o := range r.exits {
		if !o.Contains(f.Pos) {
			continue
		}
		r.exits = append(r.exits[:i:i], r.exits[i+1:]...)
		r.both = remove(r.both, o)
		r.markers = append(r.markers, o.Pos)
		return true
	}
	return false
}

// NoExitsLeft reports whether every exit has been captured.
func (r *ExitRegistry) NoExitsLeft() bool {
	return len(r.exits) == 0
}

// Remaining returns the number of uncaptured exits.
func (r *ExitRegistry) Remaining() int {
	return len(r.exits)
}

// Markers returns the positions of captured exits in capture order.
func (r *ExitRegistry) Markers() []cp.Vector {
	return r.markers
}

func remove(list []*Obstacle, target *Obstacle) []*Obstacle {
	out := list[:0:0]
	for _, o := range list {
		if o != target {
			out = append(out, o)
		}
	}
	return out
}
