// Package console writes every user-facing line of the game. Success and
// error lines are decorated so they stand out from instructions.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ByLCY/rectangles/binding"
)

// Options configures a Console.
type Options struct {
	NoColor bool
}

// Console decorates and writes messages to an output stream.
type Console struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
	grid    *color.Color
	banner  *color.Color
}

// New returns a Console writing to out.
func New(out io.Writer, opts Options) *Console {
	c := &Console{
		out:     out,
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
		grid:    color.New(color.FgCyan),
		banner:  color.New(color.FgYellow, color.Bold),
	}
	if opts.NoColor {
		for _, col := range []*color.Color{c.success, c.failure, c.grid, c.banner} {
			col.DisableColor()
		}
	}
	return c
}

// Message writes each line as is.
func (c *Console) Message(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
}

// Banner writes a highlighted block of text such as the welcome box.
func (c *Console) Banner(text string) {
	c.banner.Fprintln(c.out, text)
}

// Success writes msg wrapped in "!!!".
func (c *Console) Success(msg string) {
	c.success.Fprintf(c.out, "!!! %s !!!\n", msg)
}

// Error writes msg wrapped in "XXX".
func (c *Console) Error(msg string) {
	c.failure.Fprintf(c.out, "XXX %s XXX\n", msg)
}

// Grid writes rendered grid rows.
func (c *Console) Grid(rows []string) {
	for _, row := range rows {
		c.grid.Fprintln(c.out, row)
	}
}

// Prompt writes the command prompt without a trailing newline.
func (c *Console) Prompt() {
	fmt.Fprint(c.out, CommandPrompt)
}

// Format fills ${...} placeholders of a message template.
func Format(template string, data map[string]any) string {
	return binding.Interpolate(template, data)
}
