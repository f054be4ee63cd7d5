package froggit

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

// LaneKind is the hazard kind of a lane.
type LaneKind int

const (
	LaneSafe LaneKind = iota
	LaneRoad
	LaneWater
	LaneExit
)

// String returns the descriptor name of the kind.
func (k LaneKind) String() string {
	switch k {
	case LaneSafe:
		return string(levels.LaneGrass)
	case LaneRoad:
		return string(levels.LaneRoad)
	case LaneWater:
		return string(levels.LaneWater)
	case LaneExit:
		return string(levels.LaneHedge)
	default:
		return "unknown"
	}
}

func laneKindOf(t levels.LaneType) LaneKind {
	switch t {
	case levels.LaneRoad:
		return LaneRoad
	case levels.LaneWater:
		return LaneWater
	case levels.LaneHedge:
		return LaneExit
	default:
		return LaneSafe
	}
}

// Lane is one row of the level with its obstacles.
type Lane struct {
	Kind      LaneKind
	Row       int
	Obstacles []*Obstacle

	speed float64
	strip cp.BB
	exits *ExitRegistry // LaneExit only
	tile  levels.TileInfo
	safe  levels.ImageInfo
	cell  float64
}

func newLane(row int, spec levels.Lane, width, cell float64, cat levels.Catalog) *Lane {
	l := &Lane{
		Kind:  laneKindOf(spec.Type),
		Row:   row,
		speed: spec.SpeedOf(),
		strip: cp.BB{L: 0, B: float64(row) * cell, R: width, T: float64(row+1) * cell},
		tile:  cat.Tiles[spec.Type],
		safe:  cat.Images[levels.ImageSafe],
		cell:  cell,
	}
	reversed := l.Moving() && l.speed < 0
	for _, obj := range spec.Objects {
		l.Obstacles = append(l.Obstacles, newObstacle(obj, row, reversed, cat.Images[obj.Type], cell))
	}
	if l.Kind == LaneExit {
		l.exits = newExitRegistry(l.Obstacles, cell)
	}
	return l
}

// Moving reports whether the lane shifts its obstacles.
func (l *Lane) Moving() bool {
	return l.Kind == LaneRoad || l.Kind == LaneWater
}

// Speed returns the signed lane speed in pixels per second; zero for
// lanes that do not move.
func (l *Lane) Speed() float64 {
	if !l.Moving() {
		return 0
	}
	return l.speed
}

// Strip returns the lane background box.
func (l *Lane) Strip() cp.BB {
	return l.strip
}

// Exits returns the exit registry of a hedge lane, nil for other kinds.
func (l *Lane) Exits() *ExitRegistry {
	return l.exits
}

// Advance moves every obstacle by speed*dt, wrapping through bufferCells
// offscreen cells on either side of a lane widthPx wide.
func (l *Lane) Advance(dt, widthPx, bufferCells float64) {
	if !l.Moving() {
		return
	}
	buffer := bufferCells * l.cell
	for _, o := range l.Obstacles {
		o.Pos.X = wrapX(o.Pos.X, l.speed, dt, widthPx, buffer)
	}
}

// CarHitsFrog reports whether any vehicle of a road lane overlaps the frog.
func (l *Lane) CarHitsFrog(f *Frog) bool {
	if f == nil || l.Kind != LaneRoad {
		return false
	}
	fb := f.Bounds()
	for _, o := range l.Obstacles {
		if overlaps(o.Bounds(), fb) {
			return true
		}
	}
	return false
}

// FrogOnLog reports whether the frog's center is on a log of a water lane.
func (l *Lane) FrogOnLog(f *Frog) bool {
	if f == nil || l.Kind != LaneWater {
		return false
	}
	for _, o := range l.Obstacles {
		if o.Contains(f.Pos) {
			return true
		}
	}
	return false
}

// FrogDrowns reports whether the frog touches the water strip without
// standing on a log. Callers suppress it while a hop is in progress.
func (l *Lane) FrogDrowns(f *Frog) bool {
	if f == nil || l.Kind != LaneWater {
		return false
	}
	return overlaps(l.strip, f.Bounds()) && !l.FrogOnLog(f)
}

// Draw paints the background, the obstacles and any safe markers.
func (l *Lane) Draw(c core.Canvas) {
	c.Fill(toBox(l.strip), l.tile.Rune(), l.tile.Tint())
	for _, o := range l.Obstacles {
		o.draw(c, l.cell)
	}
	if l.exits == nil {
		return
	}
	for _, m := range l.exits.Markers() {
		c.Fill(sizeBox(m, l.safe.Size, l.cell), l.safe.Rune(), l.safe.Tint())
	}
}
