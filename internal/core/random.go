package core

import "math/rand"

// PointSource produces uniformly distributed points inside an area.
type PointSource interface {
	PointIn(a Area) Point
}

// UniformSource is a seeded PointSource backed by math/rand.
// Two sources with the same seed produce the same sequence.
type UniformSource struct {
	rng *rand.Rand
}

// NewUniformSource creates a source seeded with seed.
func NewUniformSource(seed int64) *UniformSource {
	return &UniformSource{rng: rand.New(rand.NewSource(seed))}
}

// PointIn returns a point in [Min.X, Max.X) x [Min.Y, Max.Y).
// A collapsed axis always yields its single coordinate.
func (s *UniformSource) PointIn(a Area) Point {
	return Point{
		X: a.Min.X + s.rng.Float64()*a.Width(),
		Y: a.Min.Y + s.rng.Float64()*a.Height(),
	}
}
