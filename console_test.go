package main

import (
	"testing"
)

func TestConsole(t *testing.T) {
	c := &console{edit: newEditor()}

	testCases := []struct {
		line     string
		expected string
		err      error
	}{
		{line: "", expected: ""},
		{line: "is_empty", expected: "1.000"},
		{line: "bounds", expected: "0.000 0.000 0.000\n0.000 0.000 0.000"},
		{line: "add 0 0 0", expected: "1.000"},
		{line: "add 2 2 2", expected: "2.000"},
		{line: "add 1 2", err: errArgumentNumber},
		{line: "is_empty", expected: "0.000"},
		{line: "count", expected: "2.000"},
		{line: "bounds", expected: "0.000 0.000 0.000\n2.000 2.000 2.000"},
		{line: "sum", expected: "2.000 2.000 2.000"},
		{line: "points", expected: "0.000 0.000 0.000 0.000\n1.000 2.000 2.000 2.000"},
		{line: "sub_box 1 1 1 2 2 2", expected: "1.000"},
		{line: "points", expected: "0.000 2.000 2.000 2.000"},
		{line: "sub_box 1 1 1", err: errArgumentNumber},
		{line: "voxel 1", expected: "1.000"},
		{line: "undo", expected: "1.000"},
		{line: "count", expected: "1.000"},
		{line: "undo", expected: "1.000"},
		{line: "count", expected: "2.000"},
		{line: "max_history", expected: "16.000"},
		{line: "max_history 1 2", err: errArgumentNumber},
		{line: "max_history 0", expected: "0.000"},
		{line: "undo", expected: "0.000"},
		{line: "count", expected: "2.000"},
		{line: "bounds 1", err: errArgumentNumber},
		{line: "unknown", err: errInvalidCommand},
	}

	for _, tt := range testCases {
		out, err := c.Run(tt.line)
		if err != tt.err {
			t.Errorf("%q: expected error: %v, got: %v", tt.line, tt.err, err)
			continue
		}
		if out != tt.expected {
			t.Errorf("%q: expected:\n%s\ngot:\n%s", tt.line, tt.expected, out)
		}
	}

	if _, err := c.Run("add a b c"); err == nil {
		t.Error("Non-numeric argument must be rejected")
	}
}
