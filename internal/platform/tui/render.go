package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/froggit/internal/core"
)

// paint is how a game color shows in the terminal. Lane colors carry a
// background so roads, water and grass read as solid bands even where
// their glyph is a space.
type paint struct {
	fg string
	bg string
}

// Lane and log colors get a background; the rest only tint the glyph.
var palette = map[core.Color]paint{
	core.ColorRed:          {fg: "1"},
	core.ColorGreen:        {fg: "2", bg: "28"},
	core.ColorYellow:       {fg: "3"},
	core.ColorBlue:         {fg: "4", bg: "18"},
	core.ColorMagenta:      {fg: "5"},
	core.ColorCyan:         {fg: "6"},
	core.ColorWhite:        {fg: "7"},
	core.ColorBrightRed:    {fg: "9"},
	core.ColorBrightGreen:  {fg: "10"},
	core.ColorBrightYellow: {fg: "11"},
	core.ColorBrightBlue:   {fg: "12"},
	core.ColorBrightCyan:   {fg: "14"},
	core.ColorBrightWhite:  {fg: "15"},
	core.ColorOrange:       {fg: "208", bg: "94"},
	core.ColorGray:         {fg: "245", bg: "236"},
	core.ColorBrown:        {fg: "180", bg: "94"},
	core.ColorDarkGreen:    {fg: "34", bg: "22"},
}

// styles holds one lipgloss style per palette entry.
var styles = buildStyles(palette)

func buildStyles(p map[core.Color]paint) map[core.Color]lipgloss.Style {
	out := make(map[core.Color]lipgloss.Style, len(p)+1)
	out[core.ColorDefault] = lipgloss.NewStyle()
	for c, pt := range p {
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(pt.fg))
		if pt.bg != "" {
			st = st.Background(lipgloss.Color(pt.bg))
		}
		out[c] = st
	}
	return out
}

// run is a stretch of one row drawn in a single color.
type run struct {
	color core.Color
	text  string
}

// rowRuns splits row y into same-color runs, so each run costs one escape
// sequence instead of one per cell.
func rowRuns(s *core.Screen, y int) []run {
	var runs []run
	var sb strings.Builder
	current := s.GetCell(0, y).Color
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != current {
			runs = append(runs, run{color: current, text: sb.String()})
			sb.Reset()
			current = cell.Color
		}
		sb.WriteRune(cell.Rune)
	}
	if sb.Len() > 0 {
		runs = append(runs, run{color: current, text: sb.String()})
	}
	return runs
}

// RenderScreen turns the board buffer into styled terminal lines.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		var sb strings.Builder
		for _, r := range rowRuns(s, y) {
			st, ok := styles[r.color]
			if !ok {
				st = styles[core.ColorDefault]
			}
			sb.WriteString(st.Render(r.text))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
