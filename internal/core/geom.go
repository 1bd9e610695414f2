// Package core provides fundamental types and utilities shared by the simulation
// and the frontends. It contains no external dependencies (especially no Bubble Tea
// or Ebiten) to keep game logic pure and testable.
package core

import "math"

// Point is a real-valued position on the playfield.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p moved by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Sub returns the vector pointing from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Vector is a real-valued 2D direction or displacement.
// It is only unit length when produced by Normalize.
type Vector struct {
	DX, DY float64
}

// Scale multiplies both components by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{DX: v.DX * k, DY: v.DY * k}
}

// Len returns the magnitude of v.
func (v Vector) Len() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Normalize returns v divided by its length. The length is clamped below by
// epsilon so a near-zero vector shrinks toward zero instead of blowing up.
func (v Vector) Normalize(epsilon float64) Vector {
	l := math.Max(v.Len(), epsilon)
	return Vector{DX: v.DX / l, DY: v.DY / l}
}

// Bounds is the playfield rectangle [0, Width] x [0, Height].
type Bounds struct {
	Width, Height float64
}

// Contains reports whether p lies inside the closed rectangle.
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// Center returns the middle of the playfield.
func (b Bounds) Center() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}

// Margin is a per-side inset in playfield units.
type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Area is a half-open rectangle [Min.X, Max.X) x [Min.Y, Max.Y) used for spawning.
type Area struct {
	Min, Max Point
}

// Inset shrinks the bounds by m. An axis whose margins overlap collapses to
// the midpoint of what is left, so the result is never inverted.
func (b Bounds) Inset(m Margin) Area {
	a := Area{
		Min: Point{X: m.Left, Y: m.Top},
		Max: Point{X: b.Width - m.Right, Y: b.Height - m.Bottom},
	}
	if a.Max.X < a.Min.X {
		mid := (a.Min.X + a.Max.X) / 2
		a.Min.X, a.Max.X = mid, mid
	}
	if a.Max.Y < a.Min.Y {
		mid := (a.Min.Y + a.Max.Y) / 2
		a.Min.Y, a.Max.Y = mid, mid
	}
	return a
}

// Width returns the horizontal extent of the area.
func (a Area) Width() float64 {
	return a.Max.X - a.Min.X
}

// Height returns the vertical extent of the area.
func (a Area) Height() float64 {
	return a.Max.Y - a.Min.Y
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
