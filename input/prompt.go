// Package input turns typed lines into validated grid parameters. Every
// prompt loops until the player supplies a value the grid can accept, so the
// values it returns never need checking again.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/ByLCY/rectangles/console"
	"github.com/ByLCY/rectangles/grid"
)

// Output is the part of the console the prompter talks to.
type Output interface {
	Message(lines ...string)
	Success(msg string)
	Error(msg string)
	Prompt()
}

// MaxLineLength caps how much of a typed line is kept. Longer lines are
// consumed in full but handed back empty, so they fail parsing like any other
// malformed answer.
const MaxLineLength = 4096

// Prompter reads one answer per line from an input stream.
type Prompter struct {
	reader *bufio.Reader
	out    Output
	err    error
}

// NewPrompter creates a Prompter reading from r.
func NewPrompter(r io.Reader, out Output) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), out: out}
}

// ReadLine returns the next raw line. ok is false once the input is exhausted.
func (p *Prompter) ReadLine() (line string, ok bool) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, more, err := p.reader.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.err = err
			}
			return "", false
		}
		if !tooLong && len(buf)+len(chunk) > MaxLineLength {
			tooLong, buf = true, nil
		}
		if !tooLong {
			buf = append(buf, chunk...)
		}
		if !more {
			break
		}
	}
	if tooLong {
		return "", true
	}
	return string(buf), true
}

// Err reports a read failure other than end of input.
func (p *Prompter) Err() error {
	return p.err
}

// GridDimensions asks for "length,height" until both lie in [5,25].
func (p *Prompter) GridDimensions() (grid.Dimensions, error) {
	values, err := p.ask(func() {
		p.out.Message(console.GridCreationInstruction, console.AdditionalGridCreationInstruction, console.ExampleGridInput)
	}, 2, func(v []int) bool {
		return grid.ValidDimensions(grid.Dimensions{Length: v[0], Height: v[1]})
	})
	if err != nil {
		return grid.Dimensions{}, err
	}
	return grid.Dimensions{Length: values[0], Height: values[1]}, nil
}

// Coordinates asks for "x,y" until the cell lies inside g.
func (p *Prompter) Coordinates(g *grid.Grid) (grid.Coordinates, error) {
	values, err := p.ask(func() {
		p.gridSize(g)
		p.out.Message(console.CoordinatesInstruction, console.ExampleCoordinatesInput)
	}, 2, func(v []int) bool {
		return g.InBounds(grid.Coordinates{X: v[0], Y: v[1]})
	})
	if err != nil {
		return grid.Coordinates{}, err
	}
	return grid.Coordinates{X: values[0], Y: values[1]}, nil
}

// RectangleSpec asks for "length,height,x,y" until the footprint has positive
// sides and fits inside g. Overlap is not checked here.
func (p *Prompter) RectangleSpec(g *grid.Grid) (grid.Dimensions, grid.Coordinates, error) {
	values, err := p.ask(func() {
		p.gridSize(g)
		p.out.Message(console.RectangleCreationInstruction, console.AdditionalRectangleCreationInstruction, console.ExampleRectangleInput)
	}, 4, func(v []int) bool {
		return g.Fits(grid.Dimensions{Length: v[0], Height: v[1]}, grid.Coordinates{X: v[2], Y: v[3]})
	})
	if err != nil {
		return grid.Dimensions{}, grid.Coordinates{}, err
	}
	return grid.Dimensions{Length: values[0], Height: values[1]}, grid.Coordinates{X: values[2], Y: values[3]}, nil
}

func (p *Prompter) gridSize(g *grid.Grid) {
	p.out.Success(console.Format(console.GridSize, console.GridData(g.Dimensions())))
}

// ask shows intro, reads a line of n integers and repeats until accept passes.
func (p *Prompter) ask(intro func(), n int, accept func([]int) bool) ([]int, error) {
	for {
		intro()
		p.out.Prompt()
		line, ok := p.ReadLine()
		if !ok {
			if err := p.Err(); err != nil {
				return nil, fmt.Errorf("read input: %w", err)
			}
			return nil, fmt.Errorf("waiting for %d values: %w", n, io.ErrUnexpectedEOF)
		}
		values, err := ParseTuple(line, n)
		if err == nil && accept(values) {
			return values, nil
		}
		p.out.Error(console.InvalidInput)
	}
}
