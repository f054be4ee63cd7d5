// Package gui runs a game session in a desktop window with Ebitengine.
package gui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/froggit/internal/registry"
)

const (
	// statusHeight is the strip below the board for the score line.
	statusHeight = 20

	maxWindowW = 1280
	maxWindowH = 900
)

// runner adapts a session to ebiten.Game. Ebiten calls Update at the
// session tick rate, so every step advances by the nominal frame delta.
type runner struct {
	session *registry.Session
	scale   float64
	score   int
	lives   int
}

func newRunner(s *registry.Session) *runner {
	r := &runner{session: s}
	r.fit()
	st := s.Game.State()
	r.score, r.lives = st.Score, st.Lives
	return r
}

// fitScale returns the largest scale up to 1 that keeps a w x h board
// inside the maximum window.
func fitScale(w, h float64) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	return math.Min(1, math.Min(maxWindowW/w, (maxWindowH-statusHeight)/h))
}

func (r *runner) fit() {
	r.scale = fitScale(r.session.Game.Size())
}

func (r *runner) windowSize() (int, int) {
	w, h := r.session.Game.Size()
	return int(math.Ceil(w * r.scale)), int(math.Ceil(h*r.scale)) + statusHeight
}

// pollReload applies pending level updates without blocking the frame.
func (r *runner) pollReload() {
	for {
		select {
		case u, ok := <-r.session.Reloads:
			if !ok {
				r.session.Reloads = nil
				return
			}
			if r.session.Apply(u) {
				r.fit()
				ebiten.SetWindowSize(r.windowSize())
			}
		default:
			return
		}
	}
}

func (r *runner) Update() error {
	r.pollReload()

	frame, quit := readInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	if quit {
		return ebiten.Termination
	}

	res := r.session.Step(frame, r.session.Runtime.FrameDelta())
	r.score, r.lives = res.State.Score, res.State.Lives
	return nil
}

func (r *runner) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	_, h := r.session.Game.Size()
	r.session.Game.Draw(&imageCanvas{dst: screen, height: h, scale: r.scale})

	status := fmt.Sprintf("SCORE %d   LIVES %d", r.score, r.lives)
	ebitenutil.DebugPrintAt(screen, status, 4, int(math.Ceil(h*r.scale))+2)
}

func (r *runner) Layout(_, _ int) (int, int) {
	return r.windowSize()
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(s *registry.Session) error {
	r := newRunner(s)
	ebiten.SetWindowSize(r.windowSize())
	ebiten.SetWindowTitle(s.Game.Title())
	ebiten.SetTPS(s.Runtime.TickRate)

	err := ebiten.RunGame(r)

	if sum, ok := s.Summary(); ok {
		s.Logger.Info("session finished",
			"ticks", s.Ticks(),
			"hops", sum.Hops,
			"deaths", sum.Deaths,
			"exits", sum.Captures,
			"won", sum.Won,
		)
	}
	return err
}
