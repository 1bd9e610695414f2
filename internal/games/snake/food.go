package snake

import "github.com/vovakirdan/snake-glide/internal/core"

// foodArea is the part of the playfield food may spawn in.
func (s *Simulation) foodArea(bounds core.Bounds) core.Area {
	return bounds.Inset(s.cfg.Food.Margin)
}

// spawnFood returns n fresh food positions.
func spawnFood(src core.PointSource, area core.Area, n int) []core.Point {
	food := make([]core.Point, n)
	for i := range food {
		food[i] = src.PointIn(area)
	}
	return food
}

// eat consumes every food item within reach of head and returns how many were
// eaten. Each eaten item is replaced in place, so the set never changes size,
// and each one grows the snake by a copy of its tail segment. The copy sits on
// top of the tail until the chain pulls it into line over the next ticks.
func (s *Simulation) eat(head core.Point, bounds core.Bounds) int {
	reach := s.cfg.PickupRadius()
	area := s.foodArea(bounds)
	eaten := 0

	for i, f := range s.food {
		if head.Dist(f) >= reach {
			continue
		}
		s.food[i] = s.spawner.PointIn(area)
		eaten++

		s.score++
		if s.score > s.highScore {
			s.highScore = s.score
			s.onHigh(s.highScore)
		}

		s.snake = append(s.snake, s.snake[len(s.snake)-1])
	}
	return eaten
}
