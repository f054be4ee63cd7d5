package tui

import "github.com/vovakirdan/froggit/internal/registry"

// Frontend runs sessions in the terminal.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "tui" }

// Title returns a human-readable name for display.
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run blocks until the player quits.
func (Frontend) Run(s *registry.Session) error { return Run(s) }

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}
