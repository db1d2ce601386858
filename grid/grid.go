// Package grid is the spatial store: a bounded cell grid that tracks which
// rectangle, if any, occupies each cell.
package grid

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Size bounds for both grid dimensions, inclusive.
const (
	MinSize = 5
	MaxSize = 25
)

var (
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
	ErrOutOfBounds       = errors.New("grid: coordinates out of bounds")
	ErrInvalidFootprint  = errors.New("grid: invalid rectangle footprint")
)

// Grid owns the occupancy matrix and the rectangle registry. Both are only
// changed through Place and Remove so that every occupied cell always names
// exactly one stored rectangle.
type Grid struct {
	length     int
	height     int
	occupancy  [][]ID // [height][length], occupancy[y][x]
	rectangles map[ID]Rectangle
}

// New creates an empty grid. Both dimensions must lie in [MinSize, MaxSize].
func New(dims Dimensions) (*Grid, error) {
	if !ValidDimensions(dims) {
		return nil, fmt.Errorf("%w: length %d, height %d (each must be between %d and %d)",
			ErrInvalidDimensions, dims.Length, dims.Height, MinSize, MaxSize)
	}
	occupancy := make([][]ID, dims.Height)
	for y := range occupancy {
		occupancy[y] = make([]ID, dims.Length)
	}
	return &Grid{
		length:     dims.Length,
		height:     dims.Height,
		occupancy:  occupancy,
		rectangles: map[ID]Rectangle{},
	}, nil
}

// ValidDimensions reports whether dims can be used to create a grid.
func ValidDimensions(dims Dimensions) bool {
	return dims.Length >= MinSize && dims.Length <= MaxSize &&
		dims.Height >= MinSize && dims.Height <= MaxSize
}

func (g *Grid) Length() int { return g.length }
func (g *Grid) Height() int { return g.height }

// Dimensions returns the grid size.
func (g *Grid) Dimensions() Dimensions {
	return Dimensions{Length: g.length, Height: g.height}
}

// Len returns the number of stored rectangles.
func (g *Grid) Len() int { return len(g.rectangles) }

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Coordinates) bool {
	return c.X >= 0 && c.X < g.length && c.Y >= 0 && c.Y < g.height
}

// Fits reports whether a rectangle of size dims anchored at topLeft has
// positive sides and lies entirely inside the grid.
func (g *Grid) Fits(dims Dimensions, topLeft Coordinates) bool {
	if dims.Length <= 0 || dims.Height <= 0 {
		return false
	}
	br := Coordinates{X: topLeft.X + dims.Length - 1, Y: topLeft.Y + dims.Height - 1}
	return g.InBounds(topLeft) && g.InBounds(br)
}

// OccupancyAt returns the ID stored at (x, y); uuid.Nil means the cell is empty.
func (g *Grid) OccupancyAt(x, y int) (ID, error) {
	if !g.InBounds(Coordinates{X: x, Y: y}) {
		return uuid.Nil, fmt.Errorf("%w: (%d,%d) on a %dx%d grid", ErrOutOfBounds, x, y, g.length, g.height)
	}
	return g.occupancy[y][x], nil
}

// Rectangle returns the stored rectangle with the given ID.
func (g *Grid) Rectangle(id ID) (Rectangle, bool) {
	r, ok := g.rectangles[id]
	return r, ok
}
