// Package action maps each player command to the operation it performs on
// the grid.
package action

import (
	"errors"
	"fmt"

	"github.com/ByLCY/rectangles/console"
	"github.com/ByLCY/rectangles/grid"
)

// ErrMissingGrid means an operation was asked to run without a grid. The
// session always creates one first, so this points at corrupted state.
var ErrMissingGrid = errors.New("action: no grid to operate on")

// Inputs supplies validated parameters for an operation.
type Inputs interface {
	GridDimensions() (grid.Dimensions, error)
	Coordinates(g *grid.Grid) (grid.Coordinates, error)
	RectangleSpec(g *grid.Grid) (grid.Dimensions, grid.Coordinates, error)
}

// Output receives everything an operation reports back to the player.
type Output interface {
	Message(lines ...string)
	Success(msg string)
	Error(msg string)
	Grid(rows []string)
}

// Exporter writes a picture of the grid somewhere and returns where.
type Exporter interface {
	Export(g *grid.Grid) (string, error)
}

// Env bundles the collaborators operations need. Exporter may be nil.
type Env struct {
	Inputs   Inputs
	Output   Output
	Exporter Exporter
}

// Outcome describes what an operation did.
type Outcome struct {
	Kind Kind
	// Grid replaces the current grid; only KindCreate sets it.
	Grid *grid.Grid
	// Rectangle was placed, found or removed when OK is true.
	Rectangle grid.Rectangle
	OK        bool
	Listing   []grid.Rectangle
	Rows      []string
}

type handler func(g *grid.Grid, env Env) (Outcome, error)

var handlers = map[Kind]handler{
	KindUnknown: unknown,
	KindMenu:    menu,
	KindPlace:   place,
	KindFind:    find,
	KindRemove:  remove,
	KindDisplay: display,
	KindList:    list,
	KindCreate:  create,
	KindExit:    exit,
}

// Run performs the operation named by kind against g.
func Run(kind Kind, g *grid.Grid, env Env) (Outcome, error) {
	if g == nil {
		return Outcome{Kind: kind}, ErrMissingGrid
	}
	h, ok := handlers[kind]
	if !ok {
		h = unknown
	}
	out, err := h(g, env)
	out.Kind = kind
	return out, err
}

// CreateGrid asks for dimensions and builds a fresh grid.
func CreateGrid(env Env) (*grid.Grid, error) {
	dims, err := env.Inputs.GridDimensions()
	if err != nil {
		return nil, err
	}
	g, err := grid.New(dims)
	if err != nil {
		return nil, err
	}
	env.Output.Success(console.Format(console.GridCreated, console.GridData(dims)))
	return g, nil
}

func unknown(_ *grid.Grid, env Env) (Outcome, error) {
	env.Output.Message(console.UnrecognizedInput)
	return Outcome{}, nil
}

func menu(_ *grid.Grid, env Env) (Outcome, error) {
	env.Output.Message(console.Menu)
	return Outcome{}, nil
}

func place(g *grid.Grid, env Env) (Outcome, error) {
	dims, at, err := env.Inputs.RectangleSpec(g)
	if err != nil {
		return Outcome{}, err
	}
	r := grid.NewRectangle(dims, at)
	placed, err := g.Place(r)
	if err != nil {
		return Outcome{}, fmt.Errorf("place rectangle: %w", err)
	}
	if !placed {
		env.Output.Error(console.PlacementFailed)
		return Outcome{}, nil
	}
	env.Output.Success(console.Format(console.RectanglePlaced, console.RectangleData(r)))
	return Outcome{Rectangle: r, OK: true}, nil
}

func find(g *grid.Grid, env Env) (Outcome, error) {
	at, err := env.Inputs.Coordinates(g)
	if err != nil {
		return Outcome{}, err
	}
	r, ok, err := g.Find(at)
	if err != nil {
		return Outcome{}, fmt.Errorf("find rectangle: %w", err)
	}
	if !ok {
		env.Output.Error(console.Format(console.NothingFound, console.At(nil, at)))
		return Outcome{}, nil
	}
	env.Output.Success(console.Format(console.RectangleFound, console.At(console.RectangleData(r), at)))
	return Outcome{Rectangle: r, OK: true}, nil
}

func remove(g *grid.Grid, env Env) (Outcome, error) {
	at, err := env.Inputs.Coordinates(g)
	if err != nil {
		return Outcome{}, err
	}
	r, ok, err := g.Remove(at)
	if err != nil {
		return Outcome{}, fmt.Errorf("remove rectangle: %w", err)
	}
	if !ok {
		env.Output.Error(console.NothingRemoved)
		return Outcome{}, nil
	}
	env.Output.Success(console.Format(console.RectangleGone, console.RectangleData(r)))
	return Outcome{Rectangle: r, OK: true}, nil
}

func display(g *grid.Grid, env Env) (Outcome, error) {
	rows, err := g.Render()
	if errors.Is(err, grid.ErrGlyphsExhausted) {
		env.Output.Error(console.Format(console.RenderFailed, map[string]any{"reason": err}))
		return Outcome{}, nil
	}
	if err != nil {
		return Outcome{}, err
	}
	env.Output.Grid(rows)

	if env.Exporter != nil {
		path, err := env.Exporter.Export(g)
		if err != nil {
			env.Output.Error(console.Format(console.ExportFailed, map[string]any{"reason": err}))
		} else {
			env.Output.Success(console.Format(console.GridExported, map[string]any{"path": path}))
		}
	}
	return Outcome{Rows: rows}, nil
}

func list(g *grid.Grid, env Env) (Outcome, error) {
	rects := g.List()
	env.Output.Success(console.Format(console.RectangleCount, map[string]any{"count": len(rects)}))
	for _, r := range rects {
		env.Output.Message(console.Format(console.RectangleEntry, console.RectangleData(r)))
	}
	return Outcome{Listing: rects}, nil
}

func create(_ *grid.Grid, env Env) (Outcome, error) {
	g, err := CreateGrid(env)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Grid: g}, nil
}

func exit(_ *grid.Grid, env Env) (Outcome, error) {
	env.Output.Message(console.Goodbye)
	return Outcome{}, nil
}
