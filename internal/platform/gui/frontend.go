package gui

import "github.com/vovakirdan/froggit/internal/registry"

// Frontend runs sessions in a desktop window.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "gui" }

// Title returns a human-readable name for display.
func (Frontend) Title() string { return "Window (Ebitengine)" }

// Run blocks until the window is closed.
func (Frontend) Run(s *registry.Session) error { return Run(s) }

func init() {
	registry.Register("gui", func() registry.Frontend { return Frontend{} })
}
