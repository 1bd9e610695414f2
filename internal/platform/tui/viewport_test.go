package tui

import (
	"testing"

	"github.com/vovakirdan/snake-glide/internal/core"
)

func TestNewViewport(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		cols, rows    int
		bounds        core.Bounds
	}{
		{"standard terminal", 80, 24, 80, 22, core.Bounds{Width: 640, Height: 352}},
		{"tall terminal", 50, 52, 50, 50, core.Bounds{Width: 400, Height: 800}},
		{"degenerate", 0, 1, 1, 1, core.Bounds{Width: 8, Height: 16}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViewport(tc.width, tc.height, 8, 16)
			if v.Cols != tc.cols || v.Rows != tc.rows {
				t.Errorf("NewViewport() = %dx%d cells, expected %dx%d", v.Cols, v.Rows, tc.cols, tc.rows)
			}
			if v.Bounds() != tc.bounds {
				t.Errorf("Bounds() = %+v, expected %+v", v.Bounds(), tc.bounds)
			}
		})
	}
}

func TestViewportPointAt(t *testing.T) {
	v := NewViewport(80, 24, 8, 16)

	tests := []struct {
		name     string
		x, y     int
		expected core.Point
	}{
		{"first field cell", 0, 1, core.Pt(4, 8)},
		{"hud row clamps down", 0, 0, core.Pt(4, 8)},
		{"middle", 40, 12, core.Pt(324, 184)},
		{"help row clamps up", 79, 23, core.Pt(636, 344)},
		{"outside clamps", 500, 500, core.Pt(636, 344)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.PointAt(tc.x, tc.y); got != tc.expected {
				t.Errorf("PointAt(%d, %d) = %+v, expected %+v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestViewportCellAt(t *testing.T) {
	v := NewViewport(80, 24, 8, 16)

	tests := []struct {
		name   string
		p      core.Point
		x, y   int
		wantOK bool
	}{
		{"origin", core.Pt(0, 0), 0, 1, true},
		{"inside", core.Pt(324, 184), 40, 12, true},
		{"far edge", core.Pt(640, 352), 79, 22, true},
		{"left of field", core.Pt(-1, 10), 0, 0, false},
		{"below field", core.Pt(10, 353), 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := v.CellAt(tc.p)
			if ok != tc.wantOK || (ok && (x != tc.x || y != tc.y)) {
				t.Errorf("CellAt(%+v) = (%d, %d, %v), expected (%d, %d, %v)", tc.p, x, y, ok, tc.x, tc.y, tc.wantOK)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(80, 24, 8, 16)
	for y := 1; y <= v.Rows; y++ {
		for x := 0; x < v.Cols; x++ {
			gx, gy, ok := v.CellAt(v.PointAt(x, y))
			if !ok || gx != x || gy != y {
				t.Fatalf("cell (%d, %d) maps back to (%d, %d, %v)", x, y, gx, gy, ok)
			}
		}
	}
}
