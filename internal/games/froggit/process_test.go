package froggit

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

func TestWrapX(t *testing.T) {
	const (
		width  = 640.0
		buffer = 128.0
	)

	tests := []struct {
		name     string
		x        float64
		speed    float64
		dt       float64
		expected float64
	}{
		{"right no wrap", 100, 100, 0.5, 150},
		{"left no wrap", 100, -100, 0.5, 50},
		{"right overshoot", 760, 100, 0.5, -86},
		{"left overshoot", -100, -100, 0.5, 746},
		{"right exact boundary", 718, 100, 0.5, 768},
		{"left exact boundary", -78, -100, 0.5, -128},
		{"right multiple laps", 0, 1000, 2, 0 + 2000 - 2*896},
		{"stopped", 300, 0, 10, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := wrapX(tc.x, tc.speed, tc.dt, width, buffer)
			if got != tc.expected {
				t.Errorf("wrapX(%v, %v, %v) = %v, expected %v", tc.x, tc.speed, tc.dt, got, tc.expected)
			}
		})
	}
}

func TestWrapXStaysInBounds(t *testing.T) {
	const (
		width  = 768.0
		buffer = 192.0
	)

	for _, speed := range []float64{137, -137, 900, -900} {
		x := 0.0
		for i := 0; i < 2000; i++ {
			x = wrapX(x, speed, 0.37, width, buffer)
			if x < -buffer || x > width+buffer {
				t.Fatalf("speed %v step %d: x = %v outside [%v, %v]", speed, i, x, -buffer, width+buffer)
			}
		}
	}
}

func TestHopCompletesExactly(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		deltas []float64
	}{
		{"north in three steps", North, []float64{0.1, 0.05, 0.1}},
		{"east at 60 fps", East, repeat(1.0/60, 15)},
		{"south overshoot", South, []float64{0.2, 0.2}},
		{"west single step", West, []float64{0.25}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFrog(3, 3, levels.SpriteInfo{}, testCell, 0)
			start := f.Pos
			hop := StartHop(f, tc.dir, 0.25, FrameSet{Neutral: 0, First: 4, Last: 2})

			if f.Pos != start {
				t.Fatalf("StartHop moved the frog to %v", f.Pos)
			}

			for i, dt := range tc.deltas {
				status := hop.Resume(dt)
				last := i == len(tc.deltas)-1
				if last && status != Completed {
					t.Fatalf("Resume() = %v on the last delta, expected Completed", status)
				}
				if !last && status != Continuing {
					t.Fatalf("Resume() = %v at step %d, expected Continuing", status, i)
				}
			}

			expected := start.Add(tc.dir.step().Mult(testCell))
			if f.Pos != expected {
				t.Errorf("frog at %v, expected exactly %v", f.Pos, expected)
			}
			if f.Frame != 0 {
				t.Errorf("Frame = %d after the hop, expected neutral", f.Frame)
			}
		})
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestHopFrames(t *testing.T) {
	frames := FrameSet{Neutral: 0, First: 4, Last: 2}

	tests := []struct {
		dir      Direction
		elapsed  float64
		expected int
	}{
		{North, 0.25, 2},
		{North, 0.5, 4},
		{North, 0.75, 2},
		{East, 0.5, 4},
		{South, 0.25, 1},
		{South, 0.5, 2},
		{West, 0.5, 2},
	}

	for _, tc := range tests {
		f := newFrog(0, 0, levels.SpriteInfo{}, testCell, 0)
		hop := StartHop(f, tc.dir, 1, frames)
		hop.Resume(tc.elapsed)
		if f.Frame != tc.expected {
			t.Errorf("%v hop at %v: Frame = %d, expected %d", tc.dir, tc.elapsed, f.Frame, tc.expected)
		}
	}
}

func TestDeathFrames(t *testing.T) {
	m := &DeathMarker{Frame: 5}
	p := StartDeath(m, 1, 8)

	if m.Frame != 0 {
		t.Fatalf("StartDeath() frame = %d, expected 0", m.Frame)
	}

	steps := []struct {
		dt       float64
		expected int
		status   ProcessStatus
	}{
		{0.125, 1, Continuing},
		{0.25, 3, Continuing},
		{0.5, 7, Continuing},
		{0.125, 7, Completed},
	}
	for i, s := range steps {
		status := p.Resume(s.dt)
		if m.Frame != s.expected || status != s.status {
			t.Errorf("step %d: frame=%d status=%v, expected frame=%d status=%v", i, m.Frame, status, s.expected, s.status)
		}
	}
}

func TestHitbox(t *testing.T) {
	h := NewHitbox([][2]float64{{0.5, -0.25}, {-0.5, 0.25}}, 64)
	if h != (Hitbox{L: -32, B: -16, R: 32, T: 16}) {
		t.Errorf("NewHitbox() = %+v", h)
	}

	asym := Hitbox{L: -10, B: -5, R: 30, T: 5}
	if m := asym.Mirror(); m != (Hitbox{L: -30, B: -5, R: 10, T: 5}) {
		t.Errorf("Mirror() = %+v", m)
	}

	bb := h.At(cp.Vector{X: 100, Y: 100})
	if bb != (cp.BB{L: 68, B: 84, R: 132, T: 116}) {
		t.Errorf("At() = %+v", bb)
	}
}

func TestOverlapsIsStrict(t *testing.T) {
	a := cp.BB{L: 0, B: 0, R: 10, T: 10}

	tests := []struct {
		name     string
		b        cp.BB
		expected bool
	}{
		{"inside", cp.BB{L: 2, B: 2, R: 8, T: 8}, true},
		{"partial", cp.BB{L: 5, B: 5, R: 15, T: 15}, true},
		{"touching right edge", cp.BB{L: 10, B: 0, R: 20, T: 10}, false},
		{"touching top edge", cp.BB{L: 0, B: 10, R: 10, T: 20}, false},
		{"apart", cp.BB{L: 20, B: 20, R: 30, T: 30}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := overlaps(a, tc.b); got != tc.expected {
				t.Errorf("overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestReversedLaneMirrorsHitboxes(t *testing.T) {
	cat, err := levels.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}
	spec := lane(levels.LaneRoad, speed(-40), obj("car1", 2))
	l := newLane(1, spec, 640, testCell, cat)

	o := l.Obstacles[0]
	if !o.Reversed {
		t.Error("obstacle in a negative-speed lane should be reversed")
	}
	fwd := NewHitbox(cat.Images["car1"].Hitbox, testCell)
	if o.hitbox != fwd.Mirror() {
		t.Errorf("hitbox = %+v, expected mirrored %+v", o.hitbox, fwd.Mirror())
	}
}

func TestExitRegistry(t *testing.T) {
	cat, err := levels.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}
	spec := lane(levels.LaneHedge, nil, obj("exit", 1), obj("open", 3), obj("exit", 5))
	l := newLane(4, spec, 7*testCell, testCell, cat)
	r := l.Exits()
	sprite := cat.Sprites[levels.SpriteFrog]

	below := newFrog(3, 3, sprite, testCell, 0)
	if !r.FrogInExit(below) {
		t.Error("FrogInExit() should accept the open slot above")
	}
	if r.FrogLands(newFrog(3, 4, sprite, testCell, 0)) {
		t.Error("an open slot cannot be captured")
	}

	first := newFrog(1, 4, sprite, testCell, 0)
	if !r.FrogLands(first) {
		t.Fatal("FrogLands() should capture exit 1")
	}
	if r.FrogLands(first) {
		t.Error("a captured exit cannot be captured again")
	}
	if r.FrogInExit(newFrog(1, 3, sprite, testCell, 0)) {
		t.Error("a captured exit is no longer enterable")
	}
	if r.NoExitsLeft() {
		t.Error("NoExitsLeft() = true with one exit left")
	}

	if !r.FrogLands(newFrog(5, 4, sprite, testCell, 0)) {
		t.Fatal("FrogLands() should capture exit 5")
	}
	if !r.NoExitsLeft() || r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", r.Remaining())
	}
	if len(r.Markers()) != 2 {
		t.Errorf("Markers() = %v, expected two", r.Markers())
	}
}
