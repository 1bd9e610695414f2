package snake

import "github.com/vovakirdan/snake-glide/internal/core"

// FollowChain pulls every segment after the head toward its predecessor so no
// link is longer than spacing. Segments are processed in order, each one using
// the already-moved position of the segment in front of it. A segment that is
// close enough stays where it is, so the body behaves like a slack rope.
func FollowChain(points []core.Point, spacing float64) {
	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		seg := points[i]
		dist := prev.Dist(seg)
		if dist <= spacing {
			continue
		}
		pull := prev.Sub(seg).Scale((dist - spacing) / dist)
		points[i] = seg.Add(pull)
	}
}

// selfCollided reports whether the head probe touches the body.
//
// The check is deliberately thinned: it is skipped during the grace period and
// for short snakes, and only odd-indexed segments are sampled. The probe sits
// ahead of the head where the head sprite is drawn rather than on the head point.
func (s *Simulation) selfCollided() bool {
	if s.startTime.IsZero() || s.clock.Now().Sub(s.startTime) <= s.cfg.Collision.GracePeriod {
		return false
	}
	if len(s.snake) <= s.cfg.Collision.MinSegments {
		return false
	}

	r := s.cfg.Body.Radius
	probe := s.snake[0].Add(s.direction.Scale(r * s.cfg.Collision.ProbeOffset))
	limit := r * s.cfg.Collision.HitFactor

	for i := 1; i < len(s.snake); i += 2 {
		if probe.Dist(s.snake[i]) < limit {
			return true
		}
	}
	return false
}
