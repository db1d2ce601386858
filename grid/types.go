package grid

import "github.com/google/uuid"

// ID identifies a rectangle. The zero value (uuid.Nil) marks an empty cell.
type ID = uuid.UUID

// NewID returns a fresh random rectangle identifier.
func NewID() ID { return uuid.New() }

// Coordinates is a zero-indexed cell position: X selects the column, Y the row.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Dimensions holds a length (columns) and a height (rows).
type Dimensions struct {
	Length int `json:"length"`
	Height int `json:"height"`
}

// Rectangle is an axis-aligned rectangle anchored at its top-left cell.
type Rectangle struct {
	ID      ID          `json:"id"`
	TopLeft Coordinates `json:"topLeft"`
	Length  int         `json:"length"`
	Height  int         `json:"height"`
}

// NewRectangle builds a rectangle with a freshly assigned ID.
func NewRectangle(dims Dimensions, topLeft Coordinates) Rectangle {
	return Rectangle{
		ID:      NewID(),
		TopLeft: topLeft,
		Length:  dims.Length,
		Height:  dims.Height,
	}
}

// BottomRight returns the last cell covered by the rectangle.
func (r Rectangle) BottomRight() Coordinates {
	return Coordinates{
		X: r.TopLeft.X + r.Length - 1,
		Y: r.TopLeft.Y + r.Height - 1,
	}
}

// Dimensions returns the rectangle's length and height.
func (r Rectangle) Dimensions() Dimensions {
	return Dimensions{Length: r.Length, Height: r.Height}
}

// Contains reports whether c lies inside the rectangle's footprint.
func (r Rectangle) Contains(c Coordinates) bool {
	br := r.BottomRight()
	return c.X >= r.TopLeft.X && c.X <= br.X && c.Y >= r.TopLeft.Y && c.Y <= br.Y
}

// Cells returns every coordinate of the footprint in row-major order.
func (r Rectangle) Cells() []Coordinates {
	if r.Length <= 0 || r.Height <= 0 {
		return nil
	}
	cells := make([]Coordinates, 0, r.Length*r.Height)
	br := r.BottomRight()
	for y := r.TopLeft.Y; y <= br.Y; y++ {
		for x := r.TopLeft.X; x <= br.X; x++ {
			cells = append(cells, Coordinates{X: x, Y: y})
		}
	}
	return cells
}
