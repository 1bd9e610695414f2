package core

// Color represents a foreground color for a screen cell.
// Frontends map each value to a concrete terminal or RGBA colour.
type Color uint8

// Colors used by the playfield and its overlays.
const (
	ColorDefault Color = iota
	ColorFood          // red food particles
	ColorBody          // green body segments
	ColorHead          // head marker
	ColorPointer       // pointer target crosshair
	ColorTitle         // overlay headings
	ColorText          // overlay body text
	ColorDim           // secondary text (high score, hints)
	ColorDanger        // game over heading
)
