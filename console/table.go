package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// SimpleTable provides basic table formatting without external dependencies
type SimpleTable struct {
	writer  io.Writer
	headers []string
	rows    [][]string
}

// NewTable creates a new table writer
func NewTable(w io.Writer) *SimpleTable {
	return &SimpleTable{
		writer: w,
		rows:   make([][]string, 0),
	}
}

// Header sets the table headers
func (t *SimpleTable) Header(headers []string) {
	t.headers = headers
}

// Row adds a single row
func (t *SimpleTable) Row(row []string) {
	t.rows = append(t.rows, row)
}

// Bulk adds multiple rows
func (t *SimpleTable) Bulk(rows [][]string) {
	t.rows = append(t.rows, rows...)
}

// Render outputs the formatted table
func (t *SimpleTable) Render() error {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return nil
	}

	colWidths := t.calculateWidths()
	separator := t.buildSeparator(colWidths)

	lines := []string{separator}
	if len(t.headers) > 0 {
		lines = append(lines, t.formatRow(t.headers, colWidths), separator)
	}
	for _, row := range t.rows {
		lines = append(lines, t.formatRow(row, colWidths))
	}
	lines = append(lines, separator)

	for _, line := range lines {
		if _, err := fmt.Fprintln(t.writer, line); err != nil {
			return err
		}
	}
	return nil
}

// calculateWidths determines the width needed for each column, in runes
func (t *SimpleTable) calculateWidths() []int {
	numCols := len(t.headers)
	for _, row := range t.rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	widths := make([]int, numCols)

	for i, h := range t.headers {
		widths[i] = max(widths[i], utf8.RuneCountInString(h))
	}

	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	// Minimum width of 1
	for i := range widths {
		widths[i] = max(widths[i], 1)
	}

	return widths
}

// buildSeparator creates the horizontal line
func (t *SimpleTable) buildSeparator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

// formatRow formats a single row with proper padding
func (t *SimpleTable) formatRow(row []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		// Left-align with padding
		parts[i] = " " + cell + strings.Repeat(" ", w-utf8.RuneCountInString(cell)+1)
	}
	return "|" + strings.Join(parts, "|") + "|"
}
