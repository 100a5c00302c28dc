package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows of cells as aligned plain-text columns.
// Cell widths are measured by visible width, so cells may carry ANSI styling.
type Table struct {
	headers    []string
	rows       [][]string
	padding    int
	alignRight map[int]bool
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:    headers,
		rows:       make([][]string, 0),
		padding:    2, // 2 spaces between columns
		alignRight: make(map[int]bool),
	}
}

// AlignRight right-aligns the column at colIndex. Used for numeric columns.
func (t *Table) AlignRight(colIndex int) {
	t.alignRight[colIndex] = true
}

// AddRow adds a row to the table, padding or truncating it to the header count.
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

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], lipgloss.Width(cell))
		}
	}

	var result strings.Builder
	gap := strings.Repeat(" ", t.padding)

	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if t.alignRight[i] {
				parts[i] = padLeft(cell, colWidths[i])
			} else {
				parts[i] = padRight(cell, colWidths[i])
			}
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		result.WriteString("\n")
	}

	writeLine(t.headers)

	sep := make([]string, len(colWidths))
	for i, w := range colWidths {
		sep[i] = strings.Repeat("-", w)
	}
	writeLine(sep)

	for _, row := range t.rows {
		writeLine(row)
	}

	return result.String()
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already longer than or equal to the width, it is returned unchanged.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// padLeft is padRight for right-aligned cells.
func padLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
