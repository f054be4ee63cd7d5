package froggit

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/froggit/internal/config"
	"github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

// Phase is the level's internal trigger state.
type Phase int

const (
	PhaseNeutral Phase = 3 // playing
	PhasePause   Phase = 4 // frog died or reached a non-final exit
	PhaseWin     Phase = 5 // every exit captured
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNeutral:
		return "neutral"
	case PhasePause:
		return "pause"
	case PhaseWin:
		return "win"
	default:
		return "unknown"
	}
}

// Death causes reported in events.
const (
	CauseVehicle = "vehicle"
	CauseDrowned = "drowned"
	CauseSwept   = "swept" // carried off the edge by a log
)

// Options carries the collaborators of a level.
type Options struct {
	Config  config.GameConfig
	Sounder core.Sounder
	Logger  *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Config.Grid.CellSize <= 0 {
		o.Config = config.DefaultGameConfig()
	}
	if o.Sounder == nil {
		o.Sounder = core.Silent
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Level runs one level: its lanes, the frog and the lives counter.
type Level struct {
	desc   levels.Descriptor
	cat    levels.Catalog
	cfg    config.GameConfig
	sound  core.Sounder
	logger *log.Logger

	cell   float64
	width  float64
	height float64
	buffer float64

	lanes  []*Lane
	hedges []*Lane

	frog      *Frog
	hop       *HopProcess
	death     *DeathMarker
	deathAnim *DeathProcess

	lives   int
	phase   Phase
	score   int
	bestRow int // highest row reached by the current frog

	events []core.Event
}

// NewLevel builds a level from a validated descriptor.
func NewLevel(desc levels.Descriptor, cat levels.Catalog, opts Options) (*Level, error) {
	if err := levels.Validate(desc, cat); err != nil {
		return nil, fmt.Errorf("froggit: cannot build level %q: %w", desc.ID, err)
	}
	opts = opts.withDefaults()
	cell := opts.Config.Grid.CellSize

	l := &Level{
		desc:   desc,
		cat:    cat,
		cfg:    opts.Config,
		sound:  opts.Sounder,
		logger: opts.Logger,
		cell:   cell,
		width:  float64(desc.Cols()) * cell,
		height: float64(desc.Rows())*cell + cell,
		buffer: float64(desc.Offscreen),
		lives:  opts.Config.Frog.Lives,
		phase:  PhaseNeutral,
	}
	for row, spec := range desc.Lanes {
		lane := newLane(row, spec, l.width, cell, cat)
		l.lanes = append(l.lanes, lane)
		if lane.Kind == LaneExit {
			l.hedges = append(l.hedges, lane)
		}
	}
	l.spawnFrog()
	return l, nil
}

// Update advances the level by dt seconds: move the frog, check hazards,
// advance the lanes, then check for a landing.
func (l *Level) Update(dt float64, in core.InputFrame) {
	l.moveFrog(dt, in)
	l.checkHazards()
	for _, lane := range l.lanes {
		lane.Advance(dt, l.width, l.buffer)
	}
	l.checkLanding()
}

// AnimateMarker advances the death animation, if one is playing.
func (l *Level) AnimateMarker(dt float64) {
	if l.deathAnim == nil {
		return
	}
	if l.deathAnim.Resume(dt) == Completed {
		l.deathAnim = nil
	}
}

// ResetFrog brings a new frog to the start cell after a pause.
func (l *Level) ResetFrog() {
	l.phase = PhaseNeutral
	l.death = nil
	l.deathAnim = nil
	l.hop = nil
	l.spawnFrog()
	l.logger.Debug("frog reset", "lives", l.lives)
}

func (l *Level) spawnFrog() {
	l.frog = newFrog(l.desc.Start[0], l.desc.Start[1], l.cat.Sprites[levels.SpriteFrog], l.cell, l.cfg.Frog.FrameNeutral)
	l.bestRow = l.desc.Start[1]
}

// moveFrog resumes or starts a hop, then lets logs carry the frog.
func (l *Level) moveFrog(dt float64, in core.InputFrame) {
	if l.frog == nil {
		return
	}
	f := l.frog

	switch {
	case l.hop != nil:
		if l.hop.Resume(dt) == Completed {
			l.hop = nil
			l.scoreRow()
		}
	case in.Has(core.ActionUp):
		f.Facing = North
		if f.Pos.Y <= l.height-2*l.cell && l.canEnterAbove() {
			l.startHop(North)
		}
	case in.Has(core.ActionDown):
		f.Facing = South
		if f.Pos.Y-l.cell > 0 {
			l.startHop(South)
		}
	case in.Has(core.ActionLeft):
		f.Facing = West
		if f.Pos.X-l.cell > 0 {
			l.startHop(West)
		}
	case in.Has(core.ActionRight):
		f.Facing = East
		if f.Pos.X < l.width-l.cell {
			l.startHop(East)
		}
	}

	l.rideLogs(dt)
}

// canEnterAbove gates upward hops: a hedge row may only be entered
// through an exit or open slot.
func (l *Level) canEnterAbove() bool {
	row := l.frog.Row() + 1
	if row < 0 || row >= len(l.lanes) {
		return false
	}
	lane := l.lanes[row]
	if lane.Kind != LaneExit {
		return true
	}
	return lane.Exits().FrogInExit(l.frog)
}

func (l *Level) startHop(dir Direction) {
	frames := FrameSet{
		Neutral: l.cfg.Frog.FrameNeutral,
		First:   l.cfg.Frog.FrameFirst,
		Last:    l.cfg.Frog.FrameLast,
	}
	l.hop = StartHop(l.frog, dir, l.cfg.Frog.HopDuration, frames)
	l.sound.Play(core.SoundJump)
	l.emit(core.EventHop, "", l.frog.Pos)
	l.logger.Debug("hop", "dir", dir, "row", l.frog.Row(), "col", l.frog.Col())
}

// rideLogs carries a resting frog with the log under it. A frog carried
// past either edge dies.
func (l *Level) rideLogs(dt float64) {
	if l.hop == nil {
		for _, lane := range l.lanes {
			if lane.FrogOnLog(l.frog) {
				l.frog.Pos.X += lane.Speed() * dt
			}
		}
	}
	if l.frog.Pos.X <= 0 || l.frog.Pos.X >= l.width {
		l.die(CauseSwept)
	}
}

// scoreRow awards points for rows not yet reached by this frog.
func (l *Level) scoreRow() {
	row := l.frog.Row()
	if row > l.bestRow {
		l.score += (row - l.bestRow) * l.cfg.Score.Row
		l.bestRow = row
	}
}

// checkHazards kills the frog on a vehicle hit, or when it rests in water
// without a log. Drowning is not checked while a hop is in progress.
func (l *Level) checkHazards() {
	if l.frog == nil {
		return
	}
	for _, lane := range l.lanes {
		switch lane.Kind {
		case LaneRoad:
			if lane.CarHitsFrog(l.frog) {
				l.die(CauseVehicle)
				return
			}
		case LaneWater:
			if l.hop == nil && lane.FrogDrowns(l.frog) {
				l.die(CauseDrowned)
				return
			}
		}
	}
}

// checkLanding captures an exit when the frog's center reaches one.
func (l *Level) checkLanding() {
	if l.frog == nil {
		return
	}
	row := l.frog.Row()
	if row < 0 || row >= len(l.lanes) || l.lanes[row].Kind != LaneExit {
		return
	}
	if !l.lanes[row].Exits().FrogLands(l.frog) {
		return
	}

	pos := l.frog.Pos
	l.hop = nil
	l.frog = nil
	l.sound.Play(core.SoundSuccess)
	l.score += l.cfg.Score.Capture
	l.emit(core.EventCapture, "", pos)
	l.logger.Debug("exit captured", "row", row, "remaining", l.ExitsLeft())

	if l.allExitsCaptured() {
		l.phase = PhaseWin
		l.score += l.cfg.Score.Win
		l.emit(core.EventWin, "", pos)
		l.logger.Debug("level won", "score", l.score)
		return
	}
	l.phase = PhasePause
}

func (l *Level) allExitsCaptured() bool {
	for _, h := range l.hedges {
		if !h.Exits().NoExitsLeft() {
			return false
		}
	}
	return true
}

// die replaces the frog with a death marker and takes a life.
func (l *Level) die(cause string) {
	pos := l.frog.Pos
	l.frog = nil
	l.hop = nil

	l.death = &DeathMarker{Pos: pos, sprite: l.cat.Sprites[levels.SpriteSkull], cell: l.cell}
	l.sound.Play(core.SoundDeath)
	l.deathAnim = StartDeath(l.death, l.cfg.Death.Duration, l.cfg.Death.Frames)

	if l.lives > 0 {
		l.lives--
	}
	l.phase = PhasePause
	l.emit(core.EventDeath, cause, pos)
	l.logger.Debug("frog died", "cause", cause, "lives", l.lives)
}

func (l *Level) emit(kind core.EventKind, cause string, pos cp.Vector) {
	l.events = append(l.events, core.Event{
		Kind:  kind,
		Cause: cause,
		Row:   rowOf(pos.Y, l.cell),
		Col:   rowOf(pos.X, l.cell),
		Lives: l.lives,
	})
}

// DrainEvents returns the events since the last call and forgets them.
func (l *Level) DrainEvents() []core.Event {
	ev := l.events
	l.events = nil
	return ev
}

// Width returns the level width in pixels.
func (l *Level) Width() float64 { return l.width }

// Height returns the level height in pixels, lives row included.
func (l *Level) Height() float64 { return l.height }

// Cell returns the grid cell size in pixels.
func (l *Level) Cell() float64 { return l.cell }

// Lives returns the remaining lives.
func (l *Level) Lives() int { return l.lives }

// NoLives reports whether every life has been lost.
func (l *Level) NoLives() bool { return l.lives == 0 }

// IsLost is NoLives under the name the controller uses.
func (l *Level) IsLost() bool { return l.NoLives() }

// IsPaused reports whether the level waits for a continue.
func (l *Level) IsPaused() bool { return l.phase == PhasePause }

// IsWon reports whether every exit has been captured.
func (l *Level) IsWon() bool { return l.phase == PhaseWin }

// Phase returns the internal trigger state.
func (l *Level) Phase() Phase { return l.phase }

// Score returns the points earned so far.
func (l *Level) Score() int { return l.score }

// Frog returns the current frog, nil while dead or after a capture.
func (l *Level) Frog() *Frog { return l.frog }

// Hopping reports whether a hop is in progress.
func (l *Level) Hopping() bool { return l.hop != nil }

// Death returns the death marker, nil when none is shown.
func (l *Level) Death() *DeathMarker { return l.death }

// Lanes returns the lanes bottom to top.
func (l *Level) Lanes() []*Lane { return l.lanes }

// ExitsLeft returns the number of uncaptured exits over all hedges.
func (l *Level) ExitsLeft() int {
	n := 0
	for _, h := range l.hedges {
		n += h.Exits().Remaining()
	}
	return n
}

// CenterRow returns the row overlays are drawn on.
func (l *Level) CenterRow() int { return len(l.lanes) / 2 }

// Draw paints lanes, the frog, the death marker and the lives row.
func (l *Level) Draw(c core.Canvas) {
	for _, lane := range l.lanes {
		lane.Draw(c)
	}
	if l.frog != nil {
		l.frog.draw(c)
	}
	if l.death != nil {
		l.death.draw(c)
	}
	l.drawLives(c)
}

// drawLives paints "LIVES:" and one head per life on the top row.
func (l *Level) drawLives(c core.Canvas) {
	cols := float64(l.desc.Cols())
	y := l.height - l.cell/2
	head := l.cat.Images[levels.ImageHead]
	maxLives := float64(l.cfg.Frog.Lives)
	for i := 0; i < l.lives; i++ {
		p := cp.Vector{X: l.cell * (cols - maxLives + 0.5 + float64(i)), Y: y}
		c.Fill(sizeBox(p, head.Size, l.cell), head.Rune(), head.Tint())
	}
	labelX := l.cell * core.ClampF(cols-maxLives-1.5, 1.5, cols)
	c.Text(labelX, y, "LIVES:", core.ColorDarkGreen)
}
