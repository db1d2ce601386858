package input

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	lineLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Comma", Pattern: `,`},
		{Name: "Other", Pattern: `.`},
	})

	verbParser = participle.MustBuild[Verb](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
	)
	tupleParser = participle.MustBuild[Tuple](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
	)
)

// Verb is a single command word typed at the main prompt.
type Verb struct {
	Pos  lexer.Position `parser:""`
	Name string         `parser:"@Ident"`
}

// Tuple is a comma separated list of non-negative integers, e.g. "2,3,0,1".
type Tuple struct {
	Pos    lexer.Position `parser:""`
	Values []int          `parser:"@Int ( Comma @Int )*"`
}

// ParseVerb extracts the command word from a line.
func ParseVerb(line string) (string, error) {
	v, err := verbParser.ParseString("", line)
	if err != nil {
		return "", err
	}
	return v.Name, nil
}

// ParseTuple parses a line holding exactly n comma separated integers.
func ParseTuple(line string, n int) ([]int, error) {
	t, err := tupleParser.ParseString("", line)
	if err != nil {
		return nil, err
	}
	if len(t.Values) != n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(t.Values))
	}
	return t.Values, nil
}
