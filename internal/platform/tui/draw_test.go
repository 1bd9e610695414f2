package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/snake-glide/internal/core"
	"github.com/vovakirdan/snake-glide/internal/games/snake"
)

func TestDrawFrameGlyphs(t *testing.T) {
	v := NewViewport(60, 10, 8, 16)
	scr := core.NewScreen(v.Cols, v.Rows+hudRows)
	pointer := core.Pt(156, 120)

	drawFrame(scr, v, snake.Snapshot{
		Started:    true,
		Snake:      []core.Point{core.Pt(84, 40), core.Pt(70, 40)},
		HeadMarker: core.Pt(100, 40),
		Food:       []core.Point{core.Pt(4, 8)},
		Pointer:    &pointer,
	})

	tests := []struct {
		name  string
		x, y  int
		rune  rune
		color core.Color
	}{
		{"body", 10, 3, glyphBody, core.ColorBody},
		{"tail", 8, 3, glyphBody, core.ColorBody},
		{"head marker", 12, 3, glyphHead, core.ColorHead},
		{"food", 0, 1, glyphFood, core.ColorFood},
		{"pointer", 19, 8, glyphPointer, core.ColorPointer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell := scr.GetCell(tc.x, tc.y)
			if cell.Rune != tc.rune || cell.Color != tc.color {
				t.Errorf("cell (%d, %d) = %q/%d, expected %q/%d", tc.x, tc.y, cell.Rune, cell.Color, tc.rune, tc.color)
			}
		})
	}

	if !strings.Contains(scr.Row(0), "Score 0") {
		t.Errorf("HUD row = %q, expected the score", scr.Row(0))
	}
}

func TestDrawFrameOverlays(t *testing.T) {
	v := NewViewport(60, 20, 8, 16)
	scr := core.NewScreen(v.Cols, v.Rows+hudRows)

	tests := []struct {
		name     string
		snap     snake.Snapshot
		expected string
	}{
		{"idle", snake.Snapshot{}, "G L I D E"},
		{"paused", snake.Snapshot{Started: true, Paused: true}, "PAUSED"},
		{"paused shows high score", snake.Snapshot{Started: true, Paused: true, Score: 5, HighScore: 9}, "High Score 9"},
		{"boundary", snake.Snapshot{Started: true, Over: true, Cause: snake.EndBoundary}, snake.EndBoundary.Message()},
		{"self", snake.Snapshot{Started: true, Over: true, Cause: snake.EndSelfCollision, Score: 4}, "Score 4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			drawFrame(scr, v, tc.snap)
			if !strings.Contains(scr.String(), tc.expected) {
				t.Errorf("frame does not contain %q:\n%s", tc.expected, scr.String())
			}
		})
	}

	drawFrame(scr, v, snake.Snapshot{Started: true})
	if strings.Contains(scr.String(), "┌") {
		t.Error("a running game should not draw an overlay")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61*time.Second + 900*time.Millisecond, "1:01"},
		{12 * time.Minute, "12:00"},
	}

	for _, tc := range tests {
		if got := formatElapsed(tc.d); got != tc.expected {
			t.Errorf("formatElapsed(%s) = %q, expected %q", tc.d, got, tc.expected)
		}
	}
}
