// Package core provides the grid geometry, input actions, and screen buffer shared by
// the snake simulation and the terminal platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Point is a discrete grid cell coordinate. Units are cells, not terminal columns.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Step returns the neighbouring cell one unit away in the given direction.
func (p Point) Step(d Direction) Point {
	return p.Add(d.Delta())
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four axis-aligned movement directions.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit offset for the direction. Y grows downwards.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the 180° reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether o is the exact reverse of d.
func (d Direction) IsOpposite(o Direction) bool {
	return d.Opposite() == o
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a lowercase name back into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("core: unknown direction %q", s)
}

// Bounds is the playfield size in grid cells. Valid cells are [0,Width) x [0,Height).
type Bounds struct {
	Width  int
	Height int
}

// Contains returns true if p lies on the grid.
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Center returns the middle cell of the grid.
func (b Bounds) Center() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}

// Rect represents an axis-aligned box on the screen, in terminal cells.
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
