package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Glyph range used by Render. Rectangles get consecutive code points starting
// at FirstGlyph in the order they are first met scanning rows top to bottom.
const (
	EmptyGlyph = '#'
	FirstGlyph = '1'
	LastGlyph  = '~'
)

// MaxGlyphs is the number of distinct rectangles a single render can label.
const MaxGlyphs = LastGlyph - FirstGlyph + 1

var ErrGlyphsExhausted = errors.New("grid: too many rectangles to render")

// Glyphs assigns a glyph to every rectangle on the grid. The assignment is
// recomputed on each call and is never stored on the rectangles.
func (g *Grid) Glyphs() (map[ID]rune, error) {
	glyphs := make(map[ID]rune, len(g.rectangles))
	next := rune(FirstGlyph)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.length; x++ {
			id := g.occupancy[y][x]
			if id == uuid.Nil {
				continue
			}
			if _, seen := glyphs[id]; seen {
				continue
			}
			if next > LastGlyph {
				return nil, fmt.Errorf("%w: %d rectangles, at most %d glyphs available",
					ErrGlyphsExhausted, len(g.rectangles), MaxGlyphs)
			}
			glyphs[id] = next
			next++
		}
	}
	return glyphs, nil
}

// Render draws the grid as text, one string of Length runes per row.
func (g *Grid) Render() ([]string, error) {
	glyphs, err := g.Glyphs()
	if err != nil {
		return nil, err
	}
	rows := make([]string, g.height)
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		b.Reset()
		for x := 0; x < g.length; x++ {
			id := g.occupancy[y][x]
			if id == uuid.Nil {
				b.WriteRune(EmptyGlyph)
				continue
			}
			b.WriteRune(glyphs[id])
		}
		rows[y] = b.String()
	}
	return rows, nil
}
