// Package game runs the interactive loop: first-time grid setup, then one
// command per line until the player exits.
package game

import (
	"fmt"

	"github.com/ByLCY/rectangles/action"
	"github.com/ByLCY/rectangles/console"
	"github.com/ByLCY/rectangles/grid"
	"github.com/ByLCY/rectangles/input"
)

// Screen is the console surface the session writes to.
type Screen interface {
	action.Output
	input.Output
	Banner(text string)
}

// Lines yields raw command lines and validated operation parameters.
type Lines interface {
	action.Inputs
	ReadLine() (string, bool)
	Err() error
}

// Session owns the current grid for the lifetime of one game.
type Session struct {
	screen     Screen
	lines      Lines
	dispatcher *action.Dispatcher
	grid       *grid.Grid
}

// NewSession wires a session. exporter may be nil.
func NewSession(screen Screen, lines Lines, exporter action.Exporter) *Session {
	env := action.Env{Inputs: lines, Output: screen, Exporter: exporter}
	return &Session{
		screen:     screen,
		lines:      lines,
		dispatcher: action.NewDispatcher(env),
	}
}

// Grid returns the current grid, nil before setup.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Run plays until EXIT or the end of input. Any returned error is fatal.
func (s *Session) Run() error {
	if s.grid == nil {
		if err := s.setup(); err != nil {
			return err
		}
	}

	for {
		s.screen.Prompt()
		line, ok := s.lines.ReadLine()
		if !ok {
			if err := s.lines.Err(); err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			s.dispatcher.Select(action.KindExit)
		} else {
			s.dispatcher.Select(parseCommand(line))
		}

		out, err := s.dispatcher.Execute(s.grid)
		if err != nil {
			return fmt.Errorf("%s: %w", s.dispatcher.Current(), err)
		}
		if out.Grid != nil {
			s.grid = out.Grid
		}
		if out.Kind == action.KindExit {
			return nil
		}
	}
}

func (s *Session) setup() error {
	s.screen.Banner(console.Welcome)
	s.screen.Message(console.FirstGridCreationInstruction)
	g, err := action.CreateGrid(action.Env{Inputs: s.lines, Output: s.screen})
	if err != nil {
		return fmt.Errorf("first grid: %w", err)
	}
	s.grid = g
	s.screen.Message(console.Menu)
	return nil
}

func parseCommand(line string) action.Kind {
	verb, err := input.ParseVerb(line)
	if err != nil {
		return action.KindUnknown
	}
	return action.ParseKind(verb)
}
