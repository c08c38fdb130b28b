package game

import "fmt"

// Point is a cell coordinate on the arena grid
type Point struct {
	X, Y int
}

// Grid is the fixed-size arena. Dimensions never change during a round.
type Grid struct {
	Width  int
	Height int
}

// NewGrid validates the arena dimensions before any round begins
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// InBounds reports whether the cell lies inside the arena
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}
