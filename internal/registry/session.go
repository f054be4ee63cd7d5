package registry

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/levelwatch"
	"github.com/vovakirdan/froggit/internal/storage"
)

// Session bundles a game with the services a frontend runs it against.
// Journal and Reloads are optional.
type Session struct {
	Game    Game
	Runtime core.RuntimeConfig
	Journal *storage.Journal
	Reloads <-chan levelwatch.Update
	Logger  *log.Logger

	tick uint64
}

// NewSession creates a session with a discarding logger if none is given.
func NewSession(g Game, rt core.RuntimeConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	return &Session{Game: g, Runtime: rt, Logger: logger}
}

// Step advances the game and journals the tick's events.
func (s *Session) Step(in core.InputFrame, dt float64) core.StepResult {
	s.tick++
	res := s.Game.Step(in, dt)
	for _, ev := range res.Events {
		s.Logger.Debug("event", "kind", ev.Kind, "cause", ev.Cause, "lives", ev.Lives)
	}
	if s.Journal != nil && len(res.Events) > 0 {
		if err := s.Journal.Record(s.tick, res.Events...); err != nil {
			s.Logger.Warn("cannot journal events", "err", err)
		}
	}
	return res
}

// Ticks returns the number of steps taken.
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Apply hands a watcher update to the game. It reports whether the
// level was replaced.
func (s *Session) Apply(u levelwatch.Update) bool {
	if u.Err != nil {
		s.Logger.Warn("level reload failed", "err", u.Err)
		return false
	}
	if err := s.Game.Reload(u.Level); err != nil {
		s.Logger.Warn("level rejected", "level", u.Level.ID, "err", err)
		return false
	}
	return true
}

// Summary returns the journal summary, or false without a journal.
func (s *Session) Summary() (storage.Summary, bool) {
	if s.Journal == nil {
		return storage.Summary{}, false
	}
	sum, err := s.Journal.Summary()
	if err != nil {
		s.Logger.Warn("cannot summarize session", "err", err)
		return storage.Summary{}, false
	}
	return sum, true
}
