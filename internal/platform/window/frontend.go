package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/snake-glide/internal/games/snake"
	"github.com/vovakirdan/snake-glide/internal/registry"
)

// FrontendID is the registry key of the window frontend.
const FrontendID = "window"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// Frontend plays glide in a desktop window with mouse or touch steering.
type Frontend struct{}

func (Frontend) ID() string { return FrontendID }
func (Frontend) Title() string { return "Window (mouse or touch)" }

// Run opens the window and blocks until it is closed.
func (Frontend) Run(s registry.Session) error {
	d := s.Config.Display
	ebiten.SetWindowSize(d.WindowWidth, d.WindowHeight)
	ebiten.SetWindowTitle(snake.Title)
	ebiten.SetWindowResizable(true)
	if s.Runtime.TickRate > 0 {
		ebiten.SetTPS(s.Runtime.TickRate)
	}

	s.Log().Info("opening window", "width", d.WindowWidth, "height", d.WindowHeight)
	return ebiten.RunGame(newGame(s))
}
