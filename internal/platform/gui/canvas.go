package gui

import (
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/froggit/internal/core"
)

// Glyph size of the ebitenutil debug font.
const (
	glyphW = 6
	glyphH = 16
)

// imageCanvas draws level pixels (y up) onto an ebiten image (y down).
type imageCanvas struct {
	dst    *ebiten.Image
	height float64
	scale  float64
}

// project maps a level box to a screen rectangle.
func project(b core.Box, height, scale float64) (x, y, w, h float32) {
	x = float32(b.MinX * scale)
	y = float32((height - b.MaxY) * scale)
	w = float32(b.Width() * scale)
	h = float32(b.Height() * scale)
	return x, y, w, h
}

// textOrigin returns the top-left screen position of a label centered
// on the level point (x, y).
func textOrigin(x, y, height, scale float64, text string) (int, int) {
	n := utf8.RuneCountInString(text)
	sx := int(x*scale) - n*glyphW/2
	sy := int((height-y)*scale) - glyphH/2
	return sx, sy
}

func (c *imageCanvas) Fill(b core.Box, _ rune, col core.Color) {
	x, y, w, h := project(b, c.height, c.scale)
	vector.DrawFilledRect(c.dst, x, y, w, h, rgba(col), false)
}

// Text ignores the color; the debug font is white only.
func (c *imageCanvas) Text(x, y float64, text string, _ core.Color) {
	sx, sy := textOrigin(x, y, c.height, c.scale, text)
	ebitenutil.DebugPrintAt(c.dst, text, sx, sy)
}
