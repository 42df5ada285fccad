// Package cli provides command-line interface utilities.
package cli

import (
	"strings"
)

// Table is a simple table formatter with dynamic column widths.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table, padded or truncated to the header count.
func (t *Table) AddRow(row []string) {
	newRow := make([]string, len(t.headers))
	copy(newRow, row)
	t.rows = append(t.rows, newRow)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Calculate column widths.
	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	sep := strings.Repeat(" ", t.padding)
	var result strings.Builder

	// Header and separator rows.
	parts := make([]string, len(t.headers))
	for i, h := range t.headers {
		parts[i] = padRight(h, colWidths[i])
	}
	result.WriteString(strings.Join(parts, sep))
	result.WriteString("\n")

	for i, w := range colWidths {
		parts[i] = strings.Repeat("-", w)
	}
	result.WriteString(strings.Join(parts, sep))
	result.WriteString("\n")

	// Data rows.
	for _, row := range t.rows {
		for i, cell := range row {
			parts[i] = padRight(cell, colWidths[i])
		}
		result.WriteString(strings.Join(parts, sep))
		result.WriteString("\n")
	}

	return result.String()
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already longer than or equal to the width, it is returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
