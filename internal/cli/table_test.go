// Package cli provides command-line interface utilities.
package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"SPACE", "L"})
	table.AddRow([]string{"lab", "53.233"})
	table.AddRow([]string{"hsluv", "53.1"})

	got := table.Render()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Render() produced %d lines, want 4:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "SPACE") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "-----") {
		t.Errorf("separator = %q", lines[1])
	}
	// All rows align to the widest cell in each column.
	if len(lines[2]) != len(lines[3]) {
		t.Errorf("rows not aligned: %q vs %q", lines[2], lines[3])
	}
}

func TestTableShortRow(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"})
	table.AddRow([]string{"only"})
	got := table.Render()
	if !strings.Contains(got, "only") {
		t.Errorf("Render() missing row content:\n%s", got)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{name: "pads", s: "ab", width: 4, want: "ab  "},
		{name: "exact", s: "abcd", width: 4, want: "abcd"},
		{name: "longer", s: "abcdef", width: 4, want: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.s, tt.width); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
			}
		})
	}
}
