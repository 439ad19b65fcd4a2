// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells, used for drawing.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned bounding box in level units.
// It covers [Pos, Pos+Size) on both axes.
type Box struct {
	Pos  Vec
	Size Vec
}

// Max returns the far corner of the box.
func (b Box) Max() Vec {
	return b.Pos.Plus(b.Size)
}

// Overlaps reports whether the open interiors of b and o intersect.
// Boxes that only share an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.Pos.X+b.Size.X > o.Pos.X &&
		b.Pos.X < o.Pos.X+o.Size.X &&
		b.Pos.Y+b.Size.Y > o.Pos.Y &&
		b.Pos.Y < o.Pos.Y+o.Size.Y
}

// CellSpan returns the integer cell range [start, end) covered by the box,
// flooring the near edge and ceiling the far edge on each axis.
func (b Box) CellSpan() (xStart, yStart, xEnd, yEnd int) {
	far := b.Max()
	xStart = int(math.Floor(b.Pos.X))
	yStart = int(math.Floor(b.Pos.Y))
	xEnd = int(math.Ceil(far.X))
	yEnd = int(math.Ceil(far.Y))
	return xStart, yStart, xEnd, yEnd
}

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return b.Pos.Plus(b.Size.Times(0.5))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
