package core

import "time"

// RuntimeConfig contains the frontend-independent settings a session starts with.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells (or window width in pixels)
	ScreenH  int   // Terminal height in cells (or window height in pixels)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for food placement, 0 = time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// TickInterval returns the nominal time between two ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// ResolveSeed returns Seed, or a time-derived seed when Seed is 0.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
