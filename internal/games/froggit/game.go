// Package froggit implements the frog crossing game: lanes of traffic and
// river logs between the frog and a hedge of exits.
//
// Level is the per-frame simulation. Game wraps it in the controller that
// handles the title screen, the continue prompt and the end screens.
package froggit

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/froggit/internal/config"
	"github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

// State is the controller state.
type State int

const (
	StateInactive State = iota // title screen
	StateLoading               // building the level, lasts one tick
	StateActive                // playing
	StatePaused                // waiting on the level's pause or end
	StateContinue              // respawning, lasts one tick
	StateComplete              // won or lost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateContinue:
		return "continue"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Overlay messages.
const (
	Title       = "FROGGIT"
	MsgStart    = "PRESS 'S' TO START"
	MsgContinue = "PRESS 'C' TO CONTINUE"
	MsgWin      = "YOU WIN!"
	MsgLose     = "YOU LOSE"
	MsgPaused   = "PAUSED - PRESS 'P'"
	MsgRestart  = "PRESS 'R' TO PLAY AGAIN"
)

// Game is the application controller around a Level.
// Step and Draw are called from the frontend loop; Reload may be called
// from another goroutine.
type Game struct {
	mu sync.Mutex

	desc levels.Descriptor
	cat  levels.Catalog
	opts Options

	state      State
	level      *Level
	userPaused bool
	message    string
	tick       uint64
}

// New creates a controller on the title screen.
func New(desc levels.Descriptor, cat levels.Catalog, opts Options) (*Game, error) {
	if err := levels.Validate(desc, cat); err != nil {
		return nil, fmt.Errorf("froggit: level %q: %w", desc.ID, err)
	}
	g := &Game{
		desc: desc,
		cat:  cat,
		opts: opts.withDefaults(),
	}
	g.Reset()
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return "froggit" }

// Title returns the display name.
func (g *Game) Title() string { return "Froggit" }

// Config returns the game configuration in use.
func (g *Game) Config() config.GameConfig { return g.opts.Config }

// Logger returns the logger the game reports to.
func (g *Game) Logger() *log.Logger { return g.opts.Logger }

// Reset returns to the title screen.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = StateInactive
	g.level = nil
	g.userPaused = false
	g.message = MsgStart
	g.tick = 0
}

// Reload swaps the level descriptor. A game in progress restarts on the
// new level at the next tick; the title screen stays up.
func (g *Game) Reload(desc levels.Descriptor) error {
	if err := levels.Validate(desc, g.cat); err != nil {
		return fmt.Errorf("froggit: level %q: %w", desc.ID, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.desc = desc
	if g.state != StateInactive {
		g.state = StateLoading
		g.level = nil
	}
	g.opts.Logger.Info("level reloaded", "level", desc.ID)
	return nil
}

// Step advances the controller by one frame of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.tick++
	var events []core.Event

	if g.state == StateComplete && in.Has(core.ActionRestart) {
		g.state = StateLoading
		g.level = nil
	}

	if g.level != nil {
		g.level.AnimateMarker(dt)
	}

	if g.state == StateInactive && in.Has(core.ActionStart) {
		g.state = StateLoading
	}

	if g.state == StateLoading {
		if err := g.load(); err != nil {
			g.opts.Logger.Error("cannot load level", "level", g.desc.ID, "err", err)
			g.state = StateInactive
			g.message = MsgStart
			return core.StepResult{State: g.stateLocked()}
		}
		g.state = StateActive
		events = append(events, core.Event{Kind: core.EventStart, Lives: g.level.Lives()})
	}

	if g.state == StateActive {
		if in.Has(core.ActionPause) {
			g.userPaused = !g.userPaused
			g.opts.Logger.Debug("pause toggled", "paused", g.userPaused)
		}
		if !g.userPaused {
			g.level.Update(dt, in)
			events = append(events, g.level.DrainEvents()...)
		}
		if g.level.IsPaused() || g.level.IsWon() {
			g.state = StatePaused
		}
	}

	if g.state == StatePaused {
		switch {
		case g.level.NoLives():
			g.message = MsgLose
			g.state = StateComplete
			events = append(events, core.Event{Kind: core.EventLose})
			g.opts.Logger.Debug("game lost", "score", g.level.Score())
		case g.level.IsPaused():
			g.message = MsgContinue
			if in.Has(core.ActionContinue) {
				g.state = StateContinue
			}
		case g.level.IsWon():
			g.message = MsgWin
			g.state = StateComplete
		}
	}

	if g.state == StateContinue {
		g.level.ResetFrog()
		g.message = ""
		g.state = StateActive
		events = append(events, core.Event{Kind: core.EventContinue, Lives: g.level.Lives()})
	}

	return core.StepResult{State: g.stateLocked(), Events: events}
}

func (g *Game) load() error {
	level, err := NewLevel(g.desc, g.cat, g.opts)
	if err != nil {
		return err
	}
	g.level = level
	g.userPaused = false
	g.message = ""
	g.opts.Logger.Debug("level loaded", "level", g.desc.ID, "exits", level.ExitsLeft())
	return nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

func (g *Game) stateLocked() core.GameState {
	st := core.GameState{
		Lives:    g.opts.Config.Frog.Lives,
		GameOver: g.state == StateComplete,
		Paused:   g.state != StateActive || g.userPaused,
		Status:   g.state.String(),
	}
	if g.level != nil {
		st.Score = g.level.Score()
		st.Lives = g.level.Lives()
		st.Won = g.state == StateComplete && g.level.IsWon()
	}
	return st
}

// Status returns the controller state.
func (g *Game) Status() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Message returns the overlay text currently shown, if any.
func (g *Game) Message() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == StateActive && g.userPaused {
		return MsgPaused
	}
	return g.message
}

// Level returns the running level, nil on the title screen.
func (g *Game) Level() *Level {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.level
}

// CellSize returns the grid cell size in level pixels.
func (g *Game) CellSize() float64 { return g.opts.Config.Grid.CellSize }

// Size returns the pixel size of the play area for the current descriptor,
// lives row included.
func (g *Game) Size() (w, h float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	cell := g.opts.Config.Grid.CellSize
	return float64(g.desc.Cols()) * cell, float64(g.desc.Rows()+1) * cell
}

// Draw paints the current frame.
func (g *Game) Draw(c core.Canvas) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cell := g.opts.Config.Grid.CellSize
	w := float64(g.desc.Cols()) * cell
	h := float64(g.desc.Rows()+1) * cell

	if g.level == nil {
		c.Text(w/2, h/1.75, Title, core.ColorBrightGreen)
		c.Text(w/2, h/2.5, MsgStart, core.ColorWhite)
		return
	}

	g.level.Draw(c)

	msg := g.message
	if g.state == StateActive && g.userPaused {
		msg = MsgPaused
	}
	if msg == "" {
		return
	}
	y := (float64(g.level.CenterRow()) + 0.5) * cell
	c.Fill(core.BoxAround(w/2, y, w, cell), ' ', core.ColorDarkGreen)
	c.Text(w/2, y, msg, core.ColorBrightWhite)
	if g.state == StateComplete {
		c.Text(w/2, y-cell, MsgRestart, core.ColorWhite)
	}
}
