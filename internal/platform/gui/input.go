package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/froggit/internal/core"
)

// binding ties keys to an action. Held bindings fire on every tick the
// key is down; the others fire once per press.
type binding struct {
	keys   []ebiten.Key
	action core.Action
	held   bool
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionUp, true},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionDown, true},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft, true},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight, true},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyEnter}, core.ActionStart, false},
	{[]ebiten.Key{ebiten.KeyC}, core.ActionContinue, false},
	{[]ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, core.ActionPause, false},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart, false},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit, false},
}

// readInput builds the input frame for one tick. down reports held keys,
// pressed reports keys that went down this tick. It returns true when
// the player asked to quit.
func readInput(down, pressed func(ebiten.Key) bool) (core.InputFrame, bool) {
	frame := core.NewInputFrame()
	quit := false
	for _, b := range bindings {
		check := pressed
		if b.held {
			check = down
		}
		for _, k := range b.keys {
			if !check(k) {
				continue
			}
			if b.action == core.ActionQuit {
				quit = true
			} else {
				frame.Set(b.action)
			}
			break
		}
	}
	return frame, quit
}
