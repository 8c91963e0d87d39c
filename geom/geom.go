// Package geom provides the integer geometry primitives used by the
// simulation: points, rectangles and the 4- and 8-way direction codes.
//
// Direction conventions: 4-way directions are 0 (right), 1 (up), 2 (left),
// 3 (down). 8-way directions start at 0 (right) and go counter-clockwise,
// so 2 is up, 4 is left and 6 is down. A direction of -1 means "none".
package geom

import (
	"fmt"
	"math"
)

// Point is a position in map coordinates (pixels).
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Add returns the rectangle translated by (dx, dy).
func (r Rect) Add(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// WithXY returns the rectangle moved so that its top-left corner is (x, y).
func (r Rect) WithXY(x, y int) Rect {
	r.X = x
	r.Y = y
	return r
}

// Contains reports whether the point (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ContainsRect reports whether other is entirely inside the rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.X+other.W <= r.X+r.W &&
		other.Y >= r.Y && other.Y+other.H <= r.Y+r.H
}

// Overlaps reports whether the two rectangles share at least one pixel.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W &&
		r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// xyMoves maps an 8-way direction to the corresponding unit move.
var xyMoves = [8]Point{
	{1, 0},   // right
	{1, -1},  // right-up
	{0, -1},  // up
	{-1, -1}, // left-up
	{-1, 0},  // left
	{-1, 1},  // left-down
	{0, 1},   // down
	{1, 1},   // right-down
}

// DirectionToXY returns the unit (dx, dy) move for an 8-way direction.
// An invalid direction is a programming error and panics.
func DirectionToXY(direction8 int) Point {
	if direction8 < 0 || direction8 >= 8 {
		panic(fmt.Sprintf("geom: invalid direction8 %d", direction8))
	}
	return xyMoves[direction8]
}

// IsDiagonal reports whether an 8-way direction is diagonal.
func IsDiagonal(direction8 int) bool {
	return direction8%2 != 0
}

// OppositeDirection8 returns the 8-way direction pointing the other way.
func OppositeDirection8(direction8 int) int {
	if direction8 < 0 || direction8 >= 8 {
		panic(fmt.Sprintf("geom: invalid direction8 %d", direction8))
	}
	return (direction8 + 4) % 8
}

// XYToDirection8 returns the 8-way direction matching the signs of
// (dx, dy), or -1 when both are zero.
func XYToDirection8(dx, dy int) int {
	sx, sy := sign(dx), sign(dy)
	for d, move := range xyMoves {
		if move.X == sx && move.Y == sy {
			return d
		}
	}
	return -1
}

func sign(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}

// Distance returns the euclidean distance between two points, in pixels.
func Distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	return math.Sqrt(dx*dx + dy*dy)
}
