package snake

import (
	"math"
	"testing"

	"github.com/vovakirdan/snake-glide/internal/core"
)

func TestFollowChain(t *testing.T) {
	tests := []struct {
		name     string
		points   []core.Point
		expected []core.Point
	}{
		{
			name:     "single point",
			points:   []core.Point{core.Pt(5, 5)},
			expected: []core.Point{core.Pt(5, 5)},
		},
		{
			name:     "slack link stays",
			points:   []core.Point{core.Pt(0, 0), core.Pt(10, 0)},
			expected: []core.Point{core.Pt(0, 0), core.Pt(10, 0)},
		},
		{
			name:     "exact spacing stays",
			points:   []core.Point{core.Pt(0, 0), core.Pt(0, 15)},
			expected: []core.Point{core.Pt(0, 0), core.Pt(0, 15)},
		},
		{
			name:     "taut link is pulled in",
			points:   []core.Point{core.Pt(0, 0), core.Pt(20, 0)},
			expected: []core.Point{core.Pt(0, 0), core.Pt(15, 0)},
		},
		{
			name:     "pull uses the moved predecessor",
			points:   []core.Point{core.Pt(0, 0), core.Pt(30, 0), core.Pt(60, 0)},
			expected: []core.Point{core.Pt(0, 0), core.Pt(15, 0), core.Pt(30, 0)},
		},
		{
			name:     "diagonal pull",
			points:   []core.Point{core.Pt(0, 0), core.Pt(30, 40)},
			expected: []core.Point{core.Pt(0, 0), core.Pt(9, 12)},
		},
		{
			name:     "duplicated tail stays until pulled",
			points:   []core.Point{core.Pt(0, 0), core.Pt(14, 0), core.Pt(14, 0)},
			expected: []core.Point{core.Pt(0, 0), core.Pt(14, 0), core.Pt(14, 0)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			FollowChain(tc.points, 15)
			for i := range tc.expected {
				if tc.points[i].Dist(tc.expected[i]) > 1e-9 {
					t.Errorf("points[%d] = %+v, expected %+v", i, tc.points[i], tc.expected[i])
				}
			}
		})
	}
}

func TestFollowChainKeepsLinksBounded(t *testing.T) {
	// A zigzag stretched far beyond the spacing
	points := make([]core.Point, 50)
	for i := range points {
		points[i] = core.Pt(float64(i)*40, float64(i%2)*70)
	}

	FollowChain(points, 15)

	for i := 1; i < len(points); i++ {
		if d := points[i-1].Dist(points[i]); d > 15+1e-9 || math.IsNaN(d) {
			t.Fatalf("link %d length = %f, expected <= 15", i, d)
		}
	}
}
