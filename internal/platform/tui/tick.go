// Package tui runs a game session in the terminal with Bubble Tea.
// It handles the frame loop, input mapping and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/froggit/internal/levelwatch"
)

// maxFrameDelta caps the simulated time of one frame after a stall.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// ReloadMsg carries a level file update from the watcher.
type ReloadMsg levelwatch.Update

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitReload blocks on the watcher channel until the next update.
// It returns nil once the channel is closed.
func waitReload(ch <-chan levelwatch.Update) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return ReloadMsg(u)
	}
}

// frameDelta returns the seconds between two ticks, falling back to the
// nominal delta on the first tick and capping long stalls.
func frameDelta(last, now time.Time, nominal float64) float64 {
	if last.IsZero() {
		return nominal
	}
	dt := now.Sub(last).Seconds()
	if dt <= 0 {
		return nominal
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}
