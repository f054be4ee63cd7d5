package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/froggit/internal/core"
)

// Terminal cells per level cell are bounded so a large window does not
// stretch the board past readability.
const (
	maxCellWidth  = 6
	maxCellHeight = 3
)

// ScreenCanvas projects level pixels (y up) onto a character screen
// (y down). Each level cell covers CellW columns and CellH rows.
type ScreenCanvas struct {
	Screen *core.Screen
	CellW  int
	CellH  int

	cell   float64 // level pixels per grid cell
	height float64 // level height in pixels
}

// NewScreenCanvas creates a canvas for a level of levelW x levelH pixels
// with the given grid cell size.
func NewScreenCanvas(levelW, levelH, cell float64, cellW, cellH int) *ScreenCanvas {
	cols := int(math.Round(levelW / cell))
	rows := int(math.Round(levelH / cell))
	return &ScreenCanvas{
		Screen: core.NewScreen(cols*cellW, rows*cellH),
		CellW:  cellW,
		CellH:  cellH,
		cell:   cell,
		height: levelH,
	}
}

// FitCells picks the per-cell character size for a board of cols x rows
// cells inside a width x height terminal area. Cells are kept about twice
// as wide as tall to look square.
func FitCells(width, height, cols, rows int) (cellW, cellH int) {
	if cols <= 0 || rows <= 0 {
		return 1, 1
	}
	cellW = core.Clamp(width/cols, 1, maxCellWidth)
	cellH = core.Clamp(height/rows, 1, maxCellHeight)
	cellH = core.Min(cellH, core.Max(1, (cellW+1)/2))
	return cellW, cellH
}

func (c *ScreenCanvas) colOf(x float64) float64 {
	return x / c.cell * float64(c.CellW)
}

func (c *ScreenCanvas) rowOf(y float64) float64 {
	return (c.height - y) / c.cell * float64(c.CellH)
}

// Fill paints every character cell the box covers.
func (c *ScreenCanvas) Fill(b core.Box, glyph rune, color core.Color) {
	x0 := int(math.Floor(c.colOf(b.MinX)))
	x1 := int(math.Ceil(c.colOf(b.MaxX)))
	y0 := int(math.Floor(c.rowOf(b.MaxY)))
	y1 := int(math.Ceil(c.rowOf(b.MinY)))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	c.Screen.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), glyph, color)
}

// Text writes a label centered on (x, y).
func (c *ScreenCanvas) Text(x, y float64, text string, color core.Color) {
	col := int(math.Floor(c.colOf(x))) - utf8.RuneCountInString(text)/2
	row := int(math.Floor(c.rowOf(y)))
	c.Screen.DrawText(col, row, text, color)
}
