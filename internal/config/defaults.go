package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/snake-glide/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in tuning. It matches defaults/snake.yaml
// and is used when the embedded YAML cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Motion: MotionConfig{
			MoveSpeed:    120,
			SteerEpsilon: 1e-3,
		},
		Body: BodyConfig{
			SegmentSpacing: 15,
			Radius:         8,
		},
		Collision: CollisionConfig{
			GracePeriod: 2 * time.Second,
			MinSegments: 5,
			ProbeOffset: 2.5,
			HitFactor:   0.7,
		},
		Food: FoodConfig{
			Count:         30,
			PickupPadding: 6,
			Margin:        core.Margin{Top: 80, Right: 40, Bottom: 40, Left: 40},
		},
		Display: DisplayConfig{
			HeadOffset:   2.0,
			CellWidth:    8,
			CellHeight:   16,
			WindowWidth:  400,
			WindowHeight: 800,
			MaxFrameStep: 100 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
