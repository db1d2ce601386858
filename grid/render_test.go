package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/rectangles/grid"
)

func TestRenderScenario(t *testing.T) {
	g, _ := scenarioGrid(t)

	rows, err := g.Render()
	require.NoError(t, err)

	want := []string{
		"##########",
		"##########",
		"##11######",
		"##11######",
		"#22222####",
		"#222223333",
		"#222223333",
		"######3333",
		"######3333",
		"######3333",
	}
	assert.Equal(t, want, rows)
}

func TestRenderEmptyGridRowWidths(t *testing.T) {
	g, err := grid.New(grid.Dimensions{Length: 7, Height: 5})
	require.NoError(t, err)

	rows, err := g.Render()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for _, row := range rows {
		assert.Equal(t, "#######", row)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	g, _ := scenarioGrid(t)
	first, err := g.Render()
	require.NoError(t, err)
	second, err := g.Render()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGlyphsFollowScanOrder(t *testing.T) {
	g, err := grid.New(grid.Dimensions{Length: 5, Height: 5})
	require.NoError(t, err)

	// placed bottom first, but scanned top first
	low := grid.NewRectangle(grid.Dimensions{Length: 1, Height: 1}, grid.Coordinates{X: 0, Y: 4})
	high := grid.NewRectangle(grid.Dimensions{Length: 1, Height: 1}, grid.Coordinates{X: 4, Y: 0})
	for _, r := range []grid.Rectangle{low, high} {
		placed, err := g.Place(r)
		require.NoError(t, err)
		require.True(t, placed)
	}

	glyphs, err := g.Glyphs()
	require.NoError(t, err)
	assert.Equal(t, '1', glyphs[high.ID])
	assert.Equal(t, '2', glyphs[low.ID])

	_, _, err = g.Remove(high.TopLeft)
	require.NoError(t, err)
	rows, err := g.Render()
	require.NoError(t, err)
	assert.Equal(t, "1####", rows[4])
}

func TestRenderFailsPastGlyphBudget(t *testing.T) {
	g, err := grid.New(grid.Dimensions{Length: 25, Height: 25})
	require.NoError(t, err)

	place := func(i int) grid.Rectangle {
		r := grid.NewRectangle(grid.Dimensions{Length: 1, Height: 1}, grid.Coordinates{X: i % 25, Y: i / 25})
		placed, err := g.Place(r)
		require.NoError(t, err)
		require.True(t, placed)
		return r
	}

	var last grid.Rectangle
	for i := 0; i < grid.MaxGlyphs; i++ {
		last = place(i)
	}
	rows, err := g.Render()
	require.NoError(t, err)
	assert.Contains(t, rows[grid.MaxGlyphs/25], "~")

	place(grid.MaxGlyphs)
	_, err = g.Render()
	assert.ErrorIs(t, err, grid.ErrGlyphsExhausted)
	_, err = g.Glyphs()
	assert.ErrorIs(t, err, grid.ErrGlyphsExhausted)

	_, ok, err := g.Remove(last.TopLeft)
	require.NoError(t, err)
	require.True(t, ok)
	_, err = g.Render()
	assert.NoError(t, err)
}
