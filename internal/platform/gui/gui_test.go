package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/registry"
)

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDarkGreen; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette has no entry for %v", c)
		}
	}
	if rgba(core.Color(200)) != palette[core.ColorDefault] {
		t.Error("unknown colors should fall back to the default")
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name       string
		box        core.Box
		scale      float64
		x, y, w, h float32
	}{
		{"bottom cell", core.Box{MinX: 0, MinY: 0, MaxX: 64, MaxY: 64}, 1, 0, 192, 64, 64},
		{"top cell", core.Box{MinX: 64, MinY: 192, MaxX: 128, MaxY: 256}, 1, 64, 0, 64, 64},
		{"half scale", core.Box{MinX: 64, MinY: 64, MaxX: 128, MaxY: 96}, 0.5, 32, 80, 32, 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, w, h := project(tc.box, 256, tc.scale)
			if x != tc.x || y != tc.y || w != tc.w || h != tc.h {
				t.Errorf("project() = (%v, %v, %v, %v), expected (%v, %v, %v, %v)",
					x, y, w, h, tc.x, tc.y, tc.w, tc.h)
			}
		})
	}
}

func TestTextOrigin(t *testing.T) {
	x, y := textOrigin(320, 128, 256, 1, "FROGGIT")
	if x != 320-21 || y != 128-8 {
		t.Errorf("textOrigin() = (%d, %d), expected (%d, %d)", x, y, 320-21, 128-8)
	}
}

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name     string
		down     []ebiten.Key
		pressed  []ebiten.Key
		expected []core.Action
		quit     bool
	}{
		{"held arrow", []ebiten.Key{ebiten.KeyArrowUp}, nil, []core.Action{core.ActionUp}, false},
		{"pressed s", []ebiten.Key{ebiten.KeyS}, []ebiten.Key{ebiten.KeyS}, []core.Action{core.ActionDown, core.ActionStart}, false},
		{"held s", []ebiten.Key{ebiten.KeyS}, nil, []core.Action{core.ActionDown}, false},
		{"held pause", []ebiten.Key{ebiten.KeyP}, nil, nil, false},
		{"pressed escape", nil, []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionPause}, false},
		{"quit", nil, []ebiten.Key{ebiten.KeyQ}, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame, quit := readInput(keySet(tc.down...), keySet(tc.pressed...))
			if quit != tc.quit {
				t.Errorf("quit = %v, expected %v", quit, tc.quit)
			}
			if len(frame.Actions) != len(tc.expected) {
				t.Fatalf("frame = %v, expected %v", frame.Actions, tc.expected)
			}
			for _, a := range tc.expected {
				if !frame.Has(a) {
					t.Errorf("frame is missing %v", a)
				}
			}
		})
	}
}

func TestFitScale(t *testing.T) {
	tests := []struct {
		w, h     float64
		expected float64
	}{
		{640, 576, 1},
		{2560, 576, 0.5},
		{640, 1760, 0.5},
		{0, 0, 1},
	}
	for _, tc := range tests {
		if got := fitScale(tc.w, tc.h); got != tc.expected {
			t.Errorf("fitScale(%v, %v) = %v, expected %v", tc.w, tc.h, got, tc.expected)
		}
	}
}

func TestFrontendRegistered(t *testing.T) {
	fe, err := registry.Create("gui")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if fe.ID() != "gui" {
		t.Errorf("ID() = %q, expected gui", fe.ID())
	}
}
