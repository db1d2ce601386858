package action

import "github.com/ByLCY/rectangles/grid"

// Dispatcher remembers the operation chosen by the last command. It starts
// on KindMenu so executing before any selection just shows the menu.
type Dispatcher struct {
	current Kind
	env     Env
}

// NewDispatcher returns a Dispatcher with the menu selected.
func NewDispatcher(env Env) *Dispatcher {
	return &Dispatcher{current: KindMenu, env: env}
}

// Select replaces the held operation.
func (d *Dispatcher) Select(kind Kind) *Dispatcher {
	d.current = kind
	return d
}

// Current returns the held operation.
func (d *Dispatcher) Current() Kind { return d.current }

// Execute runs the held operation against g. A nil grid yields ErrMissingGrid.
func (d *Dispatcher) Execute(g *grid.Grid) (Outcome, error) {
	return Run(d.current, g, d.env)
}
