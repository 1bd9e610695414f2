package snake

import (
	"time"

	"github.com/vovakirdan/snake-glide/internal/core"
)

// Env holds what a simulation consumes from its surroundings.
// Zero fields fall back to the system clock, a time-seeded point source, a
// best score of 0 and no high score notifications.
type Env struct {
	Clock  core.Clock
	Points core.PointSource

	// HighScore is the best score carried over from earlier sessions.
	HighScore int

	// OnHighScore is called with the new value every time the best score rises.
	OnHighScore func(int)
}

func (e Env) withDefaults() Env {
	if e.Clock == nil {
		e.Clock = core.SystemClock{}
	}
	if e.Points == nil {
		e.Points = core.NewUniformSource(time.Now().UnixNano())
	}
	if e.OnHighScore == nil {
		e.OnHighScore = func(int) {}
	}
	return e
}
