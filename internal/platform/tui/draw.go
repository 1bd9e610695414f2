package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snake-glide/internal/core"
	"github.com/vovakirdan/snake-glide/internal/games/snake"
)

const (
	glyphFood    = '*'
	glyphBody    = 'o'
	glyphHead    = '@'
	glyphPointer = '+'
)

// drawFrame draws one snapshot into scr: HUD row, playfield and any overlay.
func drawFrame(scr *core.Screen, v Viewport, snap snake.Snapshot) {
	scr.Clear()
	drawHUD(scr, snap)

	plot := func(p core.Point, r rune, c core.Color) {
		if x, y, ok := v.CellAt(p); ok {
			scr.SetColored(x, y, r, c)
		}
	}

	if snap.Pointer != nil {
		plot(*snap.Pointer, glyphPointer, core.ColorPointer)
	}
	for _, f := range snap.Food {
		plot(f, glyphFood, core.ColorFood)
	}
	// Tail first so segments nearer the head win shared cells
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		plot(snap.Snake[i], glyphBody, core.ColorBody)
	}
	if snap.Length() > 0 {
		plot(snap.HeadMarker, glyphHead, core.ColorHead)
	}

	drawOverlay(scr, snap)
}

func drawHUD(scr *core.Screen, snap snake.Snapshot) {
	scr.DrawText(1, 0, fmt.Sprintf("Score %d", snap.Score), core.ColorTitle)
	scr.DrawTextCentered(0, fmt.Sprintf("Length %d", snap.Length()), core.ColorText)
	scr.DrawTextRight(0, fmt.Sprintf("Best %d  %s ", snap.HighScore, formatElapsed(snap.Elapsed)), core.ColorDim)
}

type overlayLine struct {
	text  string
	color core.Color
}

func drawOverlay(scr *core.Screen, snap snake.Snapshot) {
	var lines []overlayLine
	switch {
	case snap.Over:
		lines = []overlayLine{
			{"GAME OVER", core.ColorDanger},
			{snap.Cause.Message(), core.ColorText},
			{fmt.Sprintf("Score %d  Length %d", snap.Score, snap.Length()), core.ColorText},
			{"Click or R to play again", core.ColorDim},
		}
	case snap.Paused:
		lines = []overlayLine{
			{"PAUSED", core.ColorTitle},
			{fmt.Sprintf("Score %d", snap.Score), core.ColorDim},
			{fmt.Sprintf("High Score %d", snap.HighScore), core.ColorDim},
			{"P to resume", core.ColorDim},
		}
	case !snap.Started:
		lines = []overlayLine{
			{"G L I D E", core.ColorTitle},
			{"Hold the mouse button and drag", core.ColorText},
			{"to steer toward the pointer", core.ColorText},
			{"Eat food, do not bite your tail", core.ColorDim},
		}
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = (scr.Width() - box.W) / 2
	box.Y = hudRows + (scr.Height()-hudRows-box.H)/2
	scr.DrawBox(box, core.ColorDim)

	for i, l := range lines {
		scr.DrawTextCentered(box.Y+1+i, l.text, l.color)
	}
}

// formatElapsed renders d as m:ss.
func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
