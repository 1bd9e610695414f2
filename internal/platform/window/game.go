package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/snake-glide/internal/core"
	"github.com/vovakirdan/snake-glide/internal/games/snake"
	"github.com/vovakirdan/snake-glide/internal/registry"
)

// Debug font metrics of ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorFood       = color.RGBA{230, 40, 40, 255}
	colorBody       = color.RGBA{40, 200, 70, 178}
	colorHead       = color.RGBA{250, 210, 60, 255}
	colorPointer    = color.RGBA{160, 160, 160, 120}
	colorShade      = color.RGBA{0, 0, 0, 160}
)

// Game implements ebiten.Game.
type Game struct {
	ctl     *controller
	radius  float32
	touchID ebiten.TouchID
	touched bool
	keys    []ebiten.Key
}

func newGame(s registry.Session) *Game {
	d := s.Config.Display
	bounds := core.Bounds{Width: float64(d.WindowWidth), Height: float64(d.WindowHeight)}
	return &Game{
		ctl:    newController(s, bounds),
		radius: float32(s.Config.Body.Radius),
	}
}

// Update polls input and advances the simulation.
func (g *Game) Update() error {
	now := time.Now()

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if !g.ctl.apply(keyAction(k)) {
			return ebiten.Termination
		}
	}

	g.pollMouse(now)
	g.pollTouch(now)

	g.ctl.frame(now)
	return nil
}

func (g *Game) pollMouse(now time.Time) {
	x, y := ebiten.CursorPosition()
	p := core.Pt(float64(x), float64(y))

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.ctl.press(p, now)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.ctl.release()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.ctl.drag(p)
	}
}

// pollTouch follows the first finger down until it lifts.
func (g *Game) pollTouch(now time.Time) {
	if !g.touched {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return
		}
		g.touchID, g.touched = ids[0], true
		x, y := ebiten.TouchPosition(g.touchID)
		g.ctl.press(core.Pt(float64(x), float64(y)), now)
		return
	}

	if inpututil.IsTouchJustReleased(g.touchID) {
		g.touched = false
		g.ctl.release()
		return
	}
	x, y := ebiten.TouchPosition(g.touchID)
	g.ctl.drag(core.Pt(float64(x), float64(y)))
}

func keyAction(k ebiten.Key) core.Action {
	switch k {
	case ebiten.KeyEscape, ebiten.KeyQ:
		return core.ActionQuit
	case ebiten.KeyP, ebiten.KeySpace:
		return core.ActionPause
	case ebiten.KeyR:
		return core.ActionRestart
	}
	return core.ActionNone
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := g.ctl.sim.Snapshot()
	r := g.radius

	if snap.Pointer != nil {
		vector.StrokeCircle(screen, float32(snap.Pointer.X), float32(snap.Pointer.Y), r*2, 1, colorPointer, true)
	}
	for _, f := range snap.Food {
		vector.DrawFilledCircle(screen, float32(f.X), float32(f.Y), 5, colorFood, true)
	}
	for i := len(snap.Snake) - 1; i >= 1; i-- {
		s := snap.Snake[i]
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), r, colorBody, true)
	}
	if snap.Length() > 0 {
		h := snap.HeadMarker
		vector.DrawFilledCircle(screen, float32(h.X), float32(h.Y), r*1.5, colorHead, true)
	}

	w := screen.Bounds().Dx()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 12, 8)
	high := fmt.Sprintf("High: %d", snap.HighScore)
	ebitenutil.DebugPrintAt(screen, high, w-12-len(high)*glyphW, 8)

	g.drawOverlay(screen, snap)
}

func (g *Game) drawOverlay(screen *ebiten.Image, snap snake.Snapshot) {
	var lines []string
	switch {
	case snap.Over:
		lines = []string{
			"GAME OVER",
			snap.Cause.Message(),
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("High Score: %d", snap.HighScore),
			"",
			"Tap or press R to restart",
		}
	case snap.Paused:
		lines = []string{
			"PAUSED",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("High Score: %d", snap.HighScore),
			"",
			"Double tap or P to resume",
		}
	case !snap.Started:
		lines = []string{
			"Touch to Start",
			"",
			"Hold and drag to steer",
		}
	default:
		return
	}

	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), colorShade, false)

	top := (b.Dy() - len(lines)*glyphH) / 2
	for i, l := range lines {
		x := (b.Dx() - len(l)*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, l, x, top+i*glyphH)
	}
}

// Layout makes one playfield unit one logical pixel, so the field follows
// the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctl.resize(core.Bounds{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}
