package core

// Canvas is the draw capability handed to the simulation. Coordinates are
// level pixels with y growing upward; frontends project them onto their
// own surface.
type Canvas interface {
	// Fill paints a box. Glyph is used by character frontends.
	Fill(b Box, glyph rune, c Color)
	// Text writes a single-line label centered on (x, y).
	Text(x, y float64, text string, c Color)
}

// Sound identifies a one-shot signal emitted by the simulation.
type Sound int

const (
	SoundJump Sound = iota
	SoundDeath
	SoundSuccess
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundDeath:
		return "death"
	case SoundSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Sounder plays one-shot sounds. Play must not block.
type Sounder interface {
	Play(s Sound)
}

// SounderFunc adapts a function to the Sounder interface.
type SounderFunc func(s Sound)

// Play calls f(s).
func (f SounderFunc) Play(s Sound) {
	f(s)
}

// Silent is a Sounder that discards every sound.
var Silent Sounder = SounderFunc(func(Sound) {})
