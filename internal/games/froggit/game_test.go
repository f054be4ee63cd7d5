package froggit

import (
	"errors"
	"testing"

	"github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

func newTestGame(t *testing.T, d levels.Descriptor) *Game {
	t.Helper()
	cat, err := levels.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}
	g, err := New(d, cat, Options{Config: testConfig()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// killFrog hops into the parked car of roadLevel.
func killFrog(t *testing.T, g *Game) []core.Event {
	t.Helper()
	events := g.Step(input(core.ActionUp), 0.01).Events
	events = append(events, g.Step(core.NewInputFrame(), 0.1).Events...)
	if !hasEvent(events, core.EventDeath) {
		t.Fatalf("expected a death, got events %+v", events)
	}
	return events
}

func TestTitleScreen(t *testing.T) {
	g := newTestGame(t, roadLevel())

	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionUp, core.ActionContinue), 1.0/60)
	}

	if g.Status() != StateInactive {
		t.Errorf("Status() = %v, expected inactive", g.Status())
	}
	if g.Level() != nil {
		t.Error("no level should be built before start")
	}
	if g.Message() != MsgStart {
		t.Errorf("Message() = %q, expected %q", g.Message(), MsgStart)
	}

	var c recordCanvas
	g.Draw(&c)
	if len(c.texts) != 2 || c.texts[0] != Title || c.texts[1] != MsgStart {
		t.Errorf("title texts = %v", c.texts)
	}
}

func TestStartGame(t *testing.T) {
	g := newTestGame(t, roadLevel())

	res := g.Step(input(core.ActionStart), 1.0/60)

	if g.Status() != StateActive {
		t.Fatalf("Status() = %v, expected active", g.Status())
	}
	if len(res.Events) == 0 || res.Events[0].Kind != core.EventStart {
		t.Errorf("events = %+v, expected start first", res.Events)
	}
	if res.State.Lives != 3 || res.State.Paused || res.State.GameOver {
		t.Errorf("state = %+v", res.State)
	}
	if g.Message() != "" {
		t.Errorf("Message() = %q, expected none while playing", g.Message())
	}
}

func TestDeathAndContinue(t *testing.T) {
	g := newTestGame(t, roadLevel())
	g.Step(input(core.ActionStart), 1.0/60)

	killFrog(t, g)

	if g.Status() != StatePaused {
		t.Fatalf("Status() = %v, expected paused", g.Status())
	}
	if g.Message() != MsgContinue {
		t.Errorf("Message() = %q, expected %q", g.Message(), MsgContinue)
	}

	// Waiting keeps the skull animating without a frog.
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame(), 0.1)
	}
	snap := g.Snapshot()
	if snap.HasFrog || !snap.HasDeath || snap.DeathFrame == 0 {
		t.Errorf("paused snapshot = %+v, expected an animating marker", snap)
	}

	res := g.Step(input(core.ActionContinue), 1.0/60)
	if g.Status() != StateActive {
		t.Fatalf("Status() = %v, expected active after continue", g.Status())
	}
	if !hasEvent(res.Events, core.EventContinue) {
		t.Errorf("events = %+v, expected continue", res.Events)
	}
	snap = g.Snapshot()
	if !snap.HasFrog || snap.HasDeath || snap.Lives != 2 {
		t.Errorf("snapshot after continue = %+v", snap)
	}
	if snap.FrogRow != 0 || snap.FrogCol != 6 {
		t.Errorf("frog at (%d, %d), expected the start cell", snap.FrogCol, snap.FrogRow)
	}
}

func TestLoseAndRestart(t *testing.T) {
	g := newTestGame(t, roadLevel())
	g.Step(input(core.ActionStart), 1.0/60)

	var last []core.Event
	for i := 0; i < 3; i++ {
		last = killFrog(t, g)
		if i < 2 {
			g.Step(input(core.ActionContinue), 1.0/60)
		}
	}

	if g.Status() != StateComplete {
		t.Fatalf("Status() = %v, expected complete", g.Status())
	}
	if !hasEvent(last, core.EventLose) {
		t.Errorf("events = %+v, expected lose", last)
	}
	st := g.State()
	if !st.GameOver || st.Won || st.Lives != 0 {
		t.Errorf("State() = %+v, expected a lost game", st)
	}
	if g.Message() != MsgLose {
		t.Errorf("Message() = %q, expected %q", g.Message(), MsgLose)
	}

	// Continue does nothing once the game is over.
	g.Step(input(core.ActionContinue), 1.0/60)
	if g.Status() != StateComplete {
		t.Errorf("Status() = %v after continue, expected complete", g.Status())
	}

	res := g.Step(input(core.ActionRestart), 1.0/60)
	if g.Status() != StateActive {
		t.Fatalf("Status() = %v after restart, expected active", g.Status())
	}
	if !hasEvent(res.Events, core.EventStart) || res.State.Lives != 3 || res.State.Score != 0 {
		t.Errorf("restart result = %+v", res)
	}
}

func TestWinGame(t *testing.T) {
	g := newTestGame(t, hedgeLevel())
	g.Step(input(core.ActionStart), 1.0/60)

	g.Step(input(core.ActionUp), 0.01)
	res := g.Step(core.NewInputFrame(), 0.25)

	if g.Status() != StateComplete {
		t.Fatalf("Status() = %v, expected complete", g.Status())
	}
	if !hasEvent(res.Events, core.EventCapture) || !hasEvent(res.Events, core.EventWin) {
		t.Errorf("events = %+v, expected capture and win", res.Events)
	}
	if !res.State.Won || !res.State.GameOver {
		t.Errorf("state = %+v, expected a won game", res.State)
	}
	if g.Message() != MsgWin {
		t.Errorf("Message() = %q, expected %q", g.Message(), MsgWin)
	}

	var c recordCanvas
	g.Draw(&c)
	found := false
	for _, text := range c.texts {
		if text == MsgRestart {
			found = true
		}
	}
	if !found {
		t.Errorf("texts = %v, expected the restart hint", c.texts)
	}
}

func TestUserPause(t *testing.T) {
	g := newTestGame(t, roadLevel())
	g.Step(input(core.ActionStart), 1.0/60)

	g.Step(input(core.ActionPause), 1.0/60)
	if g.Message() != MsgPaused || !g.State().Paused {
		t.Fatalf("Message() = %q, expected the pause overlay", g.Message())
	}

	before := g.Snapshot()
	g.Step(input(core.ActionUp), 1.0/60)
	after := g.Snapshot()
	if after.Hopping || after.FrogY != before.FrogY {
		t.Error("input should be ignored while paused")
	}

	g.Step(input(core.ActionPause), 1.0/60)
	if g.Message() != "" || g.State().Paused {
		t.Error("second pause should resume the game")
	}
}

func TestReload(t *testing.T) {
	g := newTestGame(t, roadLevel())

	if err := g.Reload(hedgeLevel()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if g.Status() != StateInactive {
		t.Errorf("Reload() on the title screen changed state to %v", g.Status())
	}
	if w, _ := g.Size(); w != 3*testCell {
		t.Errorf("Size() width = %v, expected %v", w, 3*testCell)
	}

	g.Step(input(core.ActionStart), 1.0/60)
	if err := g.Reload(roadLevel()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	res := g.Step(core.NewInputFrame(), 1.0/60)
	if g.Status() != StateActive || !hasEvent(res.Events, core.EventStart) {
		t.Fatalf("Reload() during play should restart, status=%v", g.Status())
	}
	if g.Level().Width() != 12*testCell {
		t.Errorf("Width() = %v, expected the reloaded level", g.Level().Width())
	}

	bad := roadLevel()
	bad.Size = [2]int{0, 4}
	err := g.Reload(bad)
	if !errors.Is(err, levels.ErrInvalidLevel) {
		t.Errorf("Reload() error = %v, expected ErrInvalidLevel", err)
	}
	if g.Level().Width() != 12*testCell {
		t.Error("a rejected reload must keep the running level")
	}
}

func TestDeterminism(t *testing.T) {
	d, err := levels.LoadBundled("default")
	if err != nil {
		t.Fatalf("LoadBundled() error = %v", err)
	}
	g1 := newTestGame(t, d)
	g2 := newTestGame(t, d)

	moves := map[int]core.Action{
		0:  core.ActionStart,
		20: core.ActionUp,
		40: core.ActionUp,
		60: core.ActionLeft,
		80: core.ActionUp,
	}
	for i := 0; i < 200; i++ {
		in := core.NewInputFrame()
		if a, ok := moves[i]; ok {
			in.Set(a)
		}
		g1.Step(in, 1.0/60)
		g2.Step(in, 1.0/60)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}
