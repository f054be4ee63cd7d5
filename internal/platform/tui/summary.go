package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/froggit/internal/storage"
)

// summaryRows lays out a session summary as metric/value rows.
func summaryRows(s storage.Summary, tickRate int) []table.Row {
	result := "-"
	switch {
	case s.Won:
		result = "won"
	case s.Lost:
		result = "lost"
	}

	played := "-"
	if tickRate > 0 {
		played = fmt.Sprintf("%.1fs", float64(s.LastTick)/float64(tickRate))
	}

	rows := []table.Row{
		{"Result", result},
		{"Played", played},
		{"Games", strconv.Itoa(s.Starts)},
		{"Hops", strconv.Itoa(s.Hops)},
		{"Exits", strconv.Itoa(s.Captures)},
		{"Deaths", strconv.Itoa(s.Deaths)},
	}
	for _, cause := range s.Causes() {
		rows = append(rows, table.Row{"  " + cause, strconv.Itoa(s.DeathsByCause[cause])})
	}
	rows = append(rows, table.Row{"Continues", strconv.Itoa(s.Continues)})
	return rows
}

// newSummaryTable creates the end-of-session table.
func newSummaryTable(s storage.Summary, tickRate int) table.Model {
	rows := summaryRows(s, tickRate)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Session", Width: 14},
			{Title: "", Width: 10},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Bold(false)
	t.SetStyles(st)
	return t
}
