package grid

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Place stores r if none of its footprint cells is occupied. It returns false,
// leaving the grid untouched, when the footprint overlaps another rectangle.
// A footprint that does not fit the grid is a caller error.
func (g *Grid) Place(r Rectangle) (bool, error) {
	if r.ID == uuid.Nil {
		return false, fmt.Errorf("%w: rectangle has no id", ErrInvalidFootprint)
	}
	if !g.Fits(r.Dimensions(), r.TopLeft) {
		return false, fmt.Errorf("%w: %dx%d at (%d,%d) on a %dx%d grid",
			ErrInvalidFootprint, r.Length, r.Height, r.TopLeft.X, r.TopLeft.Y, g.length, g.height)
	}
	if _, exists := g.rectangles[r.ID]; exists {
		return false, fmt.Errorf("%w: rectangle %s already placed", ErrInvalidFootprint, r.ID)
	}

	br := r.BottomRight()
	for y := r.TopLeft.Y; y <= br.Y; y++ {
		for x := r.TopLeft.X; x <= br.X; x++ {
			if g.occupancy[y][x] != uuid.Nil {
				return false, nil
			}
		}
	}

	g.rectangles[r.ID] = r
	g.fill(r, r.ID)
	return true, nil
}

// Find returns the rectangle covering c, if any.
func (g *Grid) Find(c Coordinates) (Rectangle, bool, error) {
	id, err := g.OccupancyAt(c.X, c.Y)
	if err != nil {
		return Rectangle{}, false, err
	}
	if id == uuid.Nil {
		return Rectangle{}, false, nil
	}
	r, ok := g.rectangles[id]
	if !ok {
		// occupancy names a rectangle the registry does not hold
		panic(fmt.Sprintf("grid: cell (%d,%d) references unknown rectangle %s", c.X, c.Y, id))
	}
	return r, true, nil
}

// Remove deletes the rectangle covering c and clears its footprint. It
// returns false when the cell is empty.
func (g *Grid) Remove(c Coordinates) (Rectangle, bool, error) {
	r, ok, err := g.Find(c)
	if err != nil || !ok {
		return Rectangle{}, false, err
	}
	delete(g.rectangles, r.ID)
	g.fill(r, uuid.Nil)
	return r, true, nil
}

// List returns every stored rectangle ordered by top-left row, then column.
func (g *Grid) List() []Rectangle {
	out := make([]Rectangle, 0, len(g.rectangles))
	for _, r := range g.rectangles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].TopLeft, out[j].TopLeft
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}

func (g *Grid) fill(r Rectangle, id ID) {
	br := r.BottomRight()
	for y := r.TopLeft.Y; y <= br.Y; y++ {
		for x := r.TopLeft.X; x <= br.X; x++ {
			g.occupancy[y][x] = id
		}
	}
}
