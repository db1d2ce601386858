package action_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/rectangles/action"
	"github.com/ByLCY/rectangles/console"
	"github.com/ByLCY/rectangles/grid"
)

// scriptedInputs hands out prepared answers in order.
type scriptedInputs struct {
	dims   []grid.Dimensions
	coords []grid.Coordinates
	specs  []spec
}

type spec struct {
	dims grid.Dimensions
	at   grid.Coordinates
}

func (s *scriptedInputs) GridDimensions() (grid.Dimensions, error) {
	if len(s.dims) == 0 {
		return grid.Dimensions{}, errors.New("no dimensions scripted")
	}
	d := s.dims[0]
	s.dims = s.dims[1:]
	return d, nil
}

func (s *scriptedInputs) Coordinates(*grid.Grid) (grid.Coordinates, error) {
	if len(s.coords) == 0 {
		return grid.Coordinates{}, errors.New("no coordinates scripted")
	}
	c := s.coords[0]
	s.coords = s.coords[1:]
	return c, nil
}

func (s *scriptedInputs) RectangleSpec(*grid.Grid) (grid.Dimensions, grid.Coordinates, error) {
	if len(s.specs) == 0 {
		return grid.Dimensions{}, grid.Coordinates{}, errors.New("no rectangle scripted")
	}
	sp := s.specs[0]
	s.specs = s.specs[1:]
	return sp.dims, sp.at, nil
}

// recorder keeps every line written by an operation.
type recorder struct {
	messages  []string
	successes []string
	errors    []string
	rows      []string
}

func (r *recorder) Message(lines ...string) { r.messages = append(r.messages, lines...) }
func (r *recorder) Success(msg string)      { r.successes = append(r.successes, msg) }
func (r *recorder) Error(msg string)        { r.errors = append(r.errors, msg) }
func (r *recorder) Grid(rows []string)      { r.rows = append(r.rows, rows...) }

type fakeExporter struct {
	calls int
	err   error
}

func (f *fakeExporter) Export(*grid.Grid) (string, error) {
	f.calls++
	return "out/grid.svg", f.err
}

func newGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(grid.Dimensions{Length: 10, Height: 10})
	require.NoError(t, err)
	return g
}

func TestParseKind(t *testing.T) {
	cases := map[string]action.Kind{
		"Menu":    action.KindMenu,
		"MENU":    action.KindMenu,
		"mEnU":    action.KindMenu,
		"place":   action.KindPlace,
		"fInD":    action.KindFind,
		"Remove":  action.KindRemove,
		"DISPLAY": action.KindDisplay,
		"list":    action.KindList,
		"create":  action.KindCreate,
		" exit ":  action.KindExit,
		"":        action.KindUnknown,
		"jump":    action.KindUnknown,
		"places":  action.KindUnknown,
	}
	for verb, want := range cases {
		assert.Equal(t, want, action.ParseKind(verb), "verb %q", verb)
	}
	assert.Equal(t, "PLACE", action.KindPlace.String())
	assert.Equal(t, "UNKNOWN", action.KindUnknown.String())
}

func TestDispatcherDefaultsToMenu(t *testing.T) {
	out := &recorder{}
	d := action.NewDispatcher(action.Env{Inputs: &scriptedInputs{}, Output: out})
	assert.Equal(t, action.KindMenu, d.Current())

	res, err := d.Execute(newGrid(t))
	require.NoError(t, err)
	assert.Equal(t, action.KindMenu, res.Kind)
	assert.Equal(t, []string{console.Menu}, out.messages)
}

func TestDispatcherMissingGrid(t *testing.T) {
	d := action.NewDispatcher(action.Env{Inputs: &scriptedInputs{}, Output: &recorder{}})
	for _, k := range []action.Kind{action.KindMenu, action.KindPlace, action.KindCreate, action.KindExit} {
		_, err := d.Select(k).Execute(nil)
		assert.ErrorIs(t, err, action.ErrMissingGrid, "kind %s", k)
	}
}

func TestSelectReplacesOperation(t *testing.T) {
	d := action.NewDispatcher(action.Env{Inputs: &scriptedInputs{}, Output: &recorder{}})
	assert.Same(t, d, d.Select(action.KindList))
	assert.Equal(t, action.KindList, d.Current())
	d.Select(action.KindDisplay)
	assert.Equal(t, action.KindDisplay, d.Current())
}

func TestPlaceFindRemoveFlow(t *testing.T) {
	g := newGrid(t)
	in := &scriptedInputs{
		specs: []spec{
			{grid.Dimensions{Length: 2, Height: 2}, grid.Coordinates{X: 2, Y: 2}},
			{grid.Dimensions{Length: 4, Height: 3}, grid.Coordinates{X: 0, Y: 0}},
		},
		coords: []grid.Coordinates{{X: 3, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 3}, {X: 0, Y: 0}},
	}
	out := &recorder{}
	d := action.NewDispatcher(action.Env{Inputs: in, Output: out})

	placed, err := d.Select(action.KindPlace).Execute(g)
	require.NoError(t, err)
	require.True(t, placed.OK)
	assert.Equal(t, 1, g.Len())

	conflict, err := d.Execute(g)
	require.NoError(t, err)
	assert.False(t, conflict.OK)
	assert.Equal(t, []string{console.PlacementFailed}, out.errors)
	assert.Equal(t, 1, g.Len())

	found, err := d.Select(action.KindFind).Execute(g)
	require.NoError(t, err)
	require.True(t, found.OK)
	assert.Equal(t, placed.Rectangle.ID, found.Rectangle.ID)

	removed, err := d.Select(action.KindRemove).Execute(g)
	require.NoError(t, err)
	require.True(t, removed.OK)
	assert.Equal(t, placed.Rectangle.ID, removed.Rectangle.ID)
	assert.Zero(t, g.Len())

	missing, err := d.Select(action.KindFind).Execute(g)
	require.NoError(t, err)
	assert.False(t, missing.OK)

	nothing, err := d.Select(action.KindRemove).Execute(g)
	require.NoError(t, err)
	assert.False(t, nothing.OK)
	assert.Equal(t, console.NothingRemoved, out.errors[len(out.errors)-1])
	assert.Contains(t, out.errors, "Did not find a rectangle at coordinates 3,3")
	assert.NotContains(t, out.successes, "Did not find a rectangle at coordinates 3,3")
}

func TestCreateReturnsNewGrid(t *testing.T) {
	old := newGrid(t)
	in := &scriptedInputs{dims: []grid.Dimensions{{Length: 6, Height: 7}}}
	out := &recorder{}

	res, err := action.Run(action.KindCreate, old, action.Env{Inputs: in, Output: out})
	require.NoError(t, err)
	require.NotNil(t, res.Grid)
	assert.NotSame(t, old, res.Grid)
	assert.Equal(t, grid.Dimensions{Length: 6, Height: 7}, res.Grid.Dimensions())
	assert.Equal(t, []string{"New grid created with length of 6 and height of 7"}, out.successes)
}

func TestOtherOperationsKeepGrid(t *testing.T) {
	g := newGrid(t)
	env := action.Env{Inputs: &scriptedInputs{}, Output: &recorder{}}
	for _, k := range []action.Kind{action.KindMenu, action.KindDisplay, action.KindList, action.KindExit, action.KindUnknown} {
		res, err := action.Run(k, g, env)
		require.NoError(t, err)
		assert.Nil(t, res.Grid, "kind %s", k)
	}
}

func TestUnknownVerb(t *testing.T) {
	out := &recorder{}
	_, err := action.Run(action.ParseKind("dance"), newGrid(t), action.Env{Output: out})
	require.NoError(t, err)
	assert.Equal(t, []string{console.UnrecognizedInput}, out.messages)
}

func TestDisplayAndList(t *testing.T) {
	g := newGrid(t)
	r := grid.NewRectangle(grid.Dimensions{Length: 2, Height: 1}, grid.Coordinates{X: 1, Y: 0})
	_, err := g.Place(r)
	require.NoError(t, err)

	out := &recorder{}
	exporter := &fakeExporter{}
	env := action.Env{Output: out, Exporter: exporter}

	shown, err := action.Run(action.KindDisplay, g, env)
	require.NoError(t, err)
	assert.Equal(t, "#11#######", shown.Rows[0])
	assert.Len(t, out.rows, 10)
	assert.Equal(t, 1, exporter.calls)
	assert.Contains(t, out.successes, "Grid exported to out/grid.svg")

	listed, err := action.Run(action.KindList, g, env)
	require.NoError(t, err)
	require.Len(t, listed.Listing, 1)
	assert.Equal(t, r.ID, listed.Listing[0].ID)
	assert.Contains(t, out.successes, "1 rectangles found")
	assert.Contains(t, out.messages, r.ID.String()+" at 1,0 (2x1)")
}

func TestDisplayExportFailureIsReported(t *testing.T) {
	out := &recorder{}
	env := action.Env{Output: out, Exporter: &fakeExporter{err: errors.New("disk full")}}

	_, err := action.Run(action.KindDisplay, newGrid(t), env)
	require.NoError(t, err)
	assert.Equal(t, []string{"Unable to export the grid: disk full"}, out.errors)
}

func TestDisplayTooManyRectangles(t *testing.T) {
	g, err := grid.New(grid.Dimensions{Length: 25, Height: 25})
	require.NoError(t, err)
	for i := 0; i <= grid.MaxGlyphs; i++ {
		_, err := g.Place(grid.NewRectangle(grid.Dimensions{Length: 1, Height: 1}, grid.Coordinates{X: i % 25, Y: i / 25}))
		require.NoError(t, err)
	}

	out := &recorder{}
	_, err = action.Run(action.KindDisplay, g, action.Env{Output: out})
	require.NoError(t, err)
	require.Len(t, out.errors, 1)
	assert.Contains(t, out.errors[0], "Unable to display the grid")
	assert.Empty(t, out.rows)
}
