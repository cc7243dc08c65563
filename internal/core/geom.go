// Package core provides the grid, direction, key and screen types shared
// by the game and the platform. It has no UI dependencies.
package core

// Cell is a coordinate on a toroidal grid.
// Values are compared by value and never mutated in place.
type Cell struct {
	X, Y int
}

// RNG is the random source consumed by placement helpers.
// Both *rand.Rand from golang.org/x/exp/rand and math/rand satisfy it.
type RNG interface {
	Intn(n int) int
}

// Wrap reduces v into [0, n) using floored modulo, so -1 becomes n-1.
func Wrap(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}

// Move returns the cell one step away in direction d on a w x h grid,
// wrapping around each edge.
func (c Cell) Move(d Direction, w, h int) Cell {
	dx, dy := d.Delta()
	return Cell{X: Wrap(c.X+dx, w), Y: Wrap(c.Y+dy, h)}
}

// In reports whether the cell lies inside a w x h grid.
func (c Cell) In(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}

// RandomCell draws x in [0, maxX) and then y in [0, maxY) from rng.
func RandomCell(rng RNG, maxX, maxY int) Cell {
	x := rng.Intn(maxX)
	y := rng.Intn(maxY)
	return Cell{X: x, Y: y}
}

// Rect represents an axis-aligned area on the screen.
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
