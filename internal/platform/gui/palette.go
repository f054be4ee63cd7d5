package gui

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/froggit/internal/core"
)

// palette maps game colors to RGBA values for the window.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      colornames.Lightgray,
	core.ColorRed:          colornames.Firebrick,
	core.ColorGreen:        colornames.Forestgreen,
	core.ColorYellow:       colornames.Goldenrod,
	core.ColorBlue:         colornames.Royalblue,
	core.ColorMagenta:      colornames.Mediumorchid,
	core.ColorCyan:         colornames.Darkcyan,
	core.ColorWhite:        colornames.Whitesmoke,
	core.ColorBrightRed:    colornames.Red,
	core.ColorBrightGreen:  colornames.Lime,
	core.ColorBrightYellow: colornames.Yellow,
	core.ColorBrightBlue:   colornames.Deepskyblue,
	core.ColorBrightCyan:   colornames.Cyan,
	core.ColorBrightWhite:  colornames.White,
	core.ColorOrange:       colornames.Orange,
	core.ColorGray:         colornames.Gray,
	core.ColorBrown:        colornames.Saddlebrown,
	core.ColorDarkGreen:    colornames.Darkgreen,
}

// rgba returns the window color for c.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
