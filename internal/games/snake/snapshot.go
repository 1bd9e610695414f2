package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/snake-glide/internal/core"
)

// EndCause says why a run ended.
type EndCause string

const (
	EndNone          EndCause = "none"
	EndBoundary      EndCause = "boundary"
	EndSelfCollision EndCause = "self"
)

// Message returns the line shown on the game over overlay.
func (c EndCause) Message() string {
	switch c {
	case EndBoundary:
		return "You left the field"
	case EndSelfCollision:
		return "You bit your tail"
	default:
		return ""
	}
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick       uint64
	Score      int
	HighScore  int
	Started    bool
	Paused     bool
	Over       bool
	Cause      EndCause
	Snake      []core.Point
	Food       []core.Point
	Direction  core.Vector
	HeadMarker core.Point
	Pointer    *core.Point // nil when no pointer is active
	Elapsed    time.Duration
}

// Snapshot copies the current state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.tick,
		Score:      s.score,
		HighScore:  s.highScore,
		Started:    s.started,
		Paused:     s.paused,
		Over:       s.over,
		Cause:      s.cause,
		Snake:      s.Snake(),
		Food:       s.Food(),
		Direction:  s.direction,
		HeadMarker: s.HeadMarker(),
		Elapsed:    s.Elapsed(),
	}
	if s.hasPointer {
		p := s.pointer
		snap.Pointer = &p
	}
	return snap
}

// Length returns the number of segments in the snapshot.
func (s Snapshot) Length() int {
	return len(s.Snake)
}

// DebugState returns a one-glance dump of the snapshot.
func (s Snapshot) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, High: %d\n", s.Tick, s.Score, s.HighScore))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: (%.3f, %.3f)\n", len(s.Snake), s.Direction.DX, s.Direction.DY))
	if len(s.Snake) > 0 {
		head := s.Snake[0]
		b.WriteString(fmt.Sprintf("Head: (%.1f, %.1f), Food: %d\n", head.X, head.Y, len(s.Food)))
	}
	b.WriteString(fmt.Sprintf("Started: %v, Paused: %v, Over: %v (%s)\n", s.Started, s.Paused, s.Over, s.Cause))
	return b.String()
}
