// Package game implements the snake game core: the playing field, the
// player-controlled snake, the food cell and the per-tick session that
// composes them. The package is UI-agnostic; renderers and input layers
// drive it through Steer/Tick and query state afterwards.
package game

import "fmt"

// Point is a cell coordinate on the playing field.
type Point struct {
	X int
	Y int
}

// Grid is the fixed playing field, Width x Height cells. The field has
// no walls: motion off one edge reenters at the opposite edge.
type Grid struct {
	Width  int
	Height int
}

// NewGrid validates the field dimensions.
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// Wrap maps a position that moved one step past a border back onto the
// grid, entering at the opposite edge.
func (g Grid) Wrap(p Point) Point {
	if p.X < 0 {
		p.X += g.Width
	} else if p.X >= g.Width {
		p.X -= g.Width
	}
	if p.Y < 0 {
		p.Y += g.Height
	} else if p.Y >= g.Height {
		p.Y -= g.Height
	}
	return p
}

// Center returns the spawn cell for a new snake.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the total number of cells on the field.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies on the field.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}
