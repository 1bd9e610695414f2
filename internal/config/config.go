// Package config provides YAML-based tuning for the glide simulation and its
// frontends.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/snake-glide/internal/core"
)

// SnakeConfig contains all tunables for the simulation and its presentation.
type SnakeConfig struct {
	Motion    MotionConfig    `yaml:"motion"`
	Body      BodyConfig      `yaml:"body"`
	Collision CollisionConfig `yaml:"collision"`
	Food      FoodConfig      `yaml:"food"`
	Display   DisplayConfig   `yaml:"display"`
}

// MotionConfig defines how the head moves.
type MotionConfig struct {
	MoveSpeed    float64 `yaml:"move_speed"`    // units per second
	SteerEpsilon float64 `yaml:"steer_epsilon"` // lower clamp for the steering vector length
}

// BodyConfig defines the segment chain.
type BodyConfig struct {
	SegmentSpacing float64 `yaml:"segment_spacing"`
	Radius         float64 `yaml:"radius"`
}

// CollisionConfig defines the self-collision check.
type CollisionConfig struct {
	GracePeriod time.Duration `yaml:"grace_period"`
	MinSegments int           `yaml:"min_segments"`
	ProbeOffset float64       `yaml:"probe_offset"` // multiples of the radius
	HitFactor   float64       `yaml:"hit_factor"`   // multiples of the radius
}

// FoodConfig defines the food set.
type FoodConfig struct {
	Count         int         `yaml:"count"`
	PickupPadding float64     `yaml:"pickup_padding"`
	Margin        core.Margin `yaml:"margin"`
}

// DisplayConfig holds presentation-only settings shared by the frontends.
type DisplayConfig struct {
	HeadOffset   float64       `yaml:"head_offset"` // multiples of the radius
	CellWidth    float64       `yaml:"cell_width"`
	CellHeight   float64       `yaml:"cell_height"`
	WindowWidth  int           `yaml:"window_width"`
	WindowHeight int           `yaml:"window_height"`
	MaxFrameStep time.Duration `yaml:"max_frame_step"`
}

// PickupRadius returns the distance below which food is eaten.
func (c SnakeConfig) PickupRadius() float64 {
	return c.Body.Radius + c.Food.PickupPadding
}

// Validate reports every setting that would make the simulation misbehave.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Motion.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("motion.move_speed must be positive, got %g", c.Motion.MoveSpeed))
	}
	if c.Motion.SteerEpsilon <= 0 {
		errs = append(errs, fmt.Errorf("motion.steer_epsilon must be positive, got %g", c.Motion.SteerEpsilon))
	}
	if c.Body.SegmentSpacing <= 0 {
		errs = append(errs, fmt.Errorf("body.segment_spacing must be positive, got %g", c.Body.SegmentSpacing))
	}
	if c.Body.Radius <= 0 {
		errs = append(errs, fmt.Errorf("body.radius must be positive, got %g", c.Body.Radius))
	}
	if c.Collision.GracePeriod < 0 {
		errs = append(errs, fmt.Errorf("collision.grace_period must not be negative, got %s", c.Collision.GracePeriod))
	}
	if c.Collision.MinSegments < 1 {
		errs = append(errs, fmt.Errorf("collision.min_segments must be at least 1, got %d", c.Collision.MinSegments))
	}
	if c.Collision.HitFactor <= 0 {
		errs = append(errs, fmt.Errorf("collision.hit_factor must be positive, got %g", c.Collision.HitFactor))
	}
	if c.Food.Count < 1 {
		errs = append(errs, fmt.Errorf("food.count must be at least 1, got %d", c.Food.Count))
	}
	if c.Food.PickupPadding < 0 {
		errs = append(errs, fmt.Errorf("food.pickup_padding must not be negative, got %g", c.Food.PickupPadding))
	}
	m := c.Food.Margin
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		errs = append(errs, fmt.Errorf("food.margin must not be negative, got %+v", m))
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("display cell size must be positive, got %gx%g", c.Display.CellWidth, c.Display.CellHeight))
	}
	return errors.Join(errs...)
}
