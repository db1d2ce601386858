package input_test

import (
	"testing"

	"github.com/ByLCY/rectangles/input"
)

func TestParseVerb(t *testing.T) {
	cases := map[string]string{
		"place":     "place",
		"  FIND  ":  "FIND",
		"Display\r": "Display",
	}
	for line, want := range cases {
		got, err := input.ParseVerb(line)
		if err != nil {
			t.Fatalf("parse %q failed: %v", line, err)
		}
		if got != want {
			t.Fatalf("expected verb %q, got %q", want, got)
		}
	}
}

func TestParseVerbRejects(t *testing.T) {
	for _, line := range []string{"", "   ", "place now", "3,4", "!"} {
		if _, err := input.ParseVerb(line); err == nil {
			t.Fatalf("expected %q to be rejected", line)
		}
	}
}

func TestParseTuple(t *testing.T) {
	values, err := input.ParseTuple("2,3,0,1", 4)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := []int{2, 3, 0, 1}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, values)
		}
	}

	values, err = input.ParseTuple(" 10 , 15 ", 2)
	if err != nil {
		t.Fatalf("parse with spaces failed: %v", err)
	}
	if values[0] != 10 || values[1] != 15 {
		t.Fatalf("unexpected values %v", values)
	}
}

func TestParseTupleRejects(t *testing.T) {
	cases := []struct {
		line string
		n    int
	}{
		{"", 2},
		{"1", 2},
		{"1,2,3", 2},
		{"1,,2", 2},
		{"-1,2", 2},
		{"a,b", 2},
		{"1.5,2", 2},
		{"1,2,", 2},
		{"1;2", 2},
	}
	for _, tc := range cases {
		if _, err := input.ParseTuple(tc.line, tc.n); err == nil {
			t.Fatalf("expected %q (n=%d) to be rejected", tc.line, tc.n)
		}
	}
}
