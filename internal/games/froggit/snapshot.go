package froggit

// Snapshot captures the game state for tests and diagnostics.
type Snapshot struct {
	Tick       uint64
	State      State
	Phase      Phase
	Score      int
	Lives      int
	ExitsLeft  int
	HasFrog    bool
	FrogX      float64
	FrogY      float64
	FrogRow    int
	FrogCol    int
	Hopping    bool
	HasDeath   bool
	DeathFrame int
	Paused     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		Tick:   g.tick,
		State:  g.state,
		Lives:  g.opts.Config.Frog.Lives,
		Paused: g.userPaused,
	}
	l := g.level
	if l == nil {
		return snap
	}

	snap.Phase = l.phase
	snap.Score = l.score
	snap.Lives = l.lives
	snap.ExitsLeft = l.ExitsLeft()
	snap.Hopping = l.hop != nil
	if l.frog != nil {
		snap.HasFrog = true
		snap.FrogX = l.frog.Pos.X
		snap.FrogY = l.frog.Pos.Y
		snap.FrogRow = l.frog.Row()
		snap.FrogCol = l.frog.Col()
	}
	if l.death != nil {
		snap.HasDeath = true
		snap.DeathFrame = l.death.Frame
	}
	return snap
}
