package model

import "strings"

// Table represents a table with cells organized in rows and columns.
// Rows may be ragged until padded with Pad.
type Table struct {
	Rows [][]Cell
}

// Cell represents a table cell
type Cell struct {
	Text string
}

// NewTableFromStrings creates a table from rows of cell text. Rows keep
// their own lengths.
func NewTableFromStrings(rows [][]string) *Table {
	table := &Table{Rows: make([][]Cell, len(rows))}
	for i, row := range rows {
		table.Rows[i] = make([]Cell, len(row))
		for j, s := range row {
			table.Rows[i][j] = Cell{Text: s}
		}
	}
	return table
}

// ColCount returns the number of cells in the widest row
func (t *Table) ColCount() int {
	cols := 0
	for _, row := range t.Rows {
		cols = max(cols, len(row))
	}
	return cols
}

// Pad appends empty cells so every row has cols cells
func (t *Table) Pad(cols int) {
	for i, row := range t.Rows {
		for len(row) < cols {
			row = append(row, Cell{})
		}
		t.Rows[i] = row
	}
}

// ToMarkdown converts the table to a pipe table. The first row becomes the
// header, rows shorter than the widest are padded with empty cells, and
// literal pipes are escaped.
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	cols := t.ColCount()
	var sb strings.Builder

	writeRow := func(row []Cell) {
		sb.WriteString("|")
		for j := 0; j < cols; j++ {
			text := ""
			if j < len(row) {
				text = escapeCell(row[j].Text)
			}
			sb.WriteString(" ")
			sb.WriteString(text)
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	// Header row
	writeRow(t.Rows[0])

	// Separator
	sb.WriteString("|")
	for j := 0; j < cols; j++ {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	// Data rows
	for _, row := range t.Rows[1:] {
		writeRow(row)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// escapeCell makes cell text safe inside a pipe table row
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
