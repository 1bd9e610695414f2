package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(0, 0)

	if d := p.Dist(q); math.Abs(d-5) > eps {
		t.Errorf("Dist() = %f, expected 5", d)
	}

	v := p.Sub(q)
	if v.DX != 3 || v.DY != 4 {
		t.Errorf("Sub() = %+v, expected {3 4}", v)
	}

	moved := q.Add(v.Scale(2))
	if moved != Pt(6, 8) {
		t.Errorf("Add(Scale()) = %+v, expected {6 8}", moved)
	}
}

func TestVectorNormalize(t *testing.T) {
	tests := []struct {
		name    string
		v       Vector
		wantLen float64
	}{
		{"unit already", Vector{DX: 1, DY: 0}, 1},
		{"diagonal", Vector{DX: 10, DY: 10}, 1},
		{"tiny vector is clamped", Vector{DX: 1e-6, DY: 0}, 1e-3},
		{"zero vector stays zero", Vector{}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.v.Normalize(1e-3)
			if math.IsNaN(n.DX) || math.IsNaN(n.DY) {
				t.Fatalf("Normalize() produced NaN: %+v", n)
			}
			if math.Abs(n.Len()-tc.wantLen) > 1e-9 {
				t.Errorf("Normalize().Len() = %g, expected %g", n.Len(), tc.wantLen)
			}
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Width: 400, Height: 800}

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Pt(200, 400), true},
		{"origin corner", Pt(0, 0), true},
		{"far corner", Pt(400, 800), true},
		{"past right edge", Pt(400.01, 10), false},
		{"past bottom edge", Pt(10, 800.01), false},
		{"negative x", Pt(-0.01, 10), false},
		{"negative y", Pt(10, -0.01), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%+v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}

	if c := b.Center(); c != Pt(200, 400) {
		t.Errorf("Center() = %+v, expected {200 400}", c)
	}
}

func TestBoundsInset(t *testing.T) {
	b := Bounds{Width: 400, Height: 800}
	a := b.Inset(Margin{Top: 80, Right: 40, Bottom: 40, Left: 40})

	if a.Min != Pt(40, 80) || a.Max != Pt(360, 760) {
		t.Errorf("Inset() = %+v, expected min {40 80} max {360 760}", a)
	}
	if a.Width() != 320 || a.Height() != 680 {
		t.Errorf("area size = %fx%f, expected 320x680", a.Width(), a.Height())
	}

	// Margins larger than the field collapse to a line instead of inverting.
	small := Bounds{Width: 50, Height: 100}.Inset(Margin{Top: 80, Right: 40, Bottom: 40, Left: 40})
	if small.Width() != 0 || small.Height() != 0 {
		t.Errorf("collapsed area size = %fx%f, expected 0x0", small.Width(), small.Height())
	}
	if small.Min.X != 25 || small.Min.Y != 70 {
		t.Errorf("collapsed area min = %+v, expected {25 70}", small.Min)
	}
}

func TestUniformSourceStaysInArea(t *testing.T) {
	src := NewUniformSource(42)
	a := Area{Min: Pt(40, 80), Max: Pt(360, 760)}

	for i := 0; i < 1000; i++ {
		p := src.PointIn(a)
		if p.X < a.Min.X || p.X >= a.Max.X || p.Y < a.Min.Y || p.Y >= a.Max.Y {
			t.Fatalf("PointIn() = %+v outside %+v", p, a)
		}
	}
}

func TestUniformSourceDeterminism(t *testing.T) {
	a := Area{Min: Pt(0, 0), Max: Pt(100, 100)}
	s1 := NewUniformSource(7)
	s2 := NewUniformSource(7)

	for i := 0; i < 50; i++ {
		if p1, p2 := s1.PointIn(a), s2.PointIn(a); p1 != p2 {
			t.Fatalf("sources diverged at %d: %+v vs %+v", i, p1, p2)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}

	if ClampF(1.5, 0, 1) != 1 || ClampF(-1, 0, 1) != 0 || ClampF(0.25, 0, 1) != 0.25 {
		t.Error("ClampF() returned unexpected values")
	}
}
