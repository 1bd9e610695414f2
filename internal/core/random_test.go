package core

import "testing"

func TestUniformSourceDeterministic(t *testing.T) {
	area := Area{Min: Pt(40, 80), Max: Pt(360, 760)}
	a := NewUniformSource(42)
	b := NewUniformSource(42)

	for i := 0; i < 100; i++ {
		pa, pb := a.PointIn(area), b.PointIn(area)
		if pa != pb {
			t.Fatalf("draw %d: %+v != %+v", i, pa, pb)
		}
		if pa.X < area.Min.X || pa.X >= area.Max.X || pa.Y < area.Min.Y || pa.Y >= area.Max.Y {
			t.Fatalf("draw %d: %+v outside %+v", i, pa, area)
		}
	}
}

func TestUniformSourceCollapsedArea(t *testing.T) {
	src := NewUniformSource(1)
	area := Bounds{Width: 50, Height: 50}.Inset(Margin{Top: 80, Right: 40, Bottom: 40, Left: 40})

	for i := 0; i < 10; i++ {
		if p := src.PointIn(area); p != Pt(25, 45) {
			t.Errorf("PointIn() = %+v, expected the collapsed midpoint (25, 45)", p)
		}
	}
}
