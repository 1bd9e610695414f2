package tui

import "github.com/vovakirdan/snake-glide/internal/registry"

// FrontendID is the registry key of the terminal frontend.
const FrontendID = "tui"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// Frontend plays glide in the terminal, steering with mouse drags.
type Frontend struct{}

func (Frontend) ID() string { return FrontendID }
func (Frontend) Title() string { return "Terminal (mouse drag)" }

// Run plays a single game until the player quits.
func (Frontend) Run(s registry.Session) error {
	return Run(s)
}
