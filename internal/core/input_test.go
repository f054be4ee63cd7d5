package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame

	if f.Has(ActionUp) {
		t.Error("zero InputFrame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionContinue)
	if !f.Has(ActionUp) || !f.Has(ActionContinue) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionUp, "Up"},
		{ActionLeft, "Left"},
		{ActionContinue, "Continue"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestFrameDelta(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).FrameDelta(); got != 0.02 {
		t.Errorf("FrameDelta() = %v, expected 0.02", got)
	}
	if got := (RuntimeConfig{}).FrameDelta(); got != 1.0/60 {
		t.Errorf("FrameDelta() with zero rate = %v, expected 1/60", got)
	}
}

func TestSounderFunc(t *testing.T) {
	var played []Sound
	s := SounderFunc(func(snd Sound) { played = append(played, snd) })

	s.Play(SoundJump)
	s.Play(SoundSuccess)
	Silent.Play(SoundDeath)

	if len(played) != 2 || played[0] != SoundJump || played[1] != SoundSuccess {
		t.Errorf("played = %v, expected [jump success]", played)
	}
}
