package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table renders rows of cells as plain text columns. Column widths are
// measured with runewidth so double-width characters in guest or room names
// keep the columns aligned.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. Missing cells render empty; extra cells are kept and
// widen the table.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the table to w with two spaces between columns and a dashed
// rule under the header.
func (t *Table) Render(w io.Writer) {
	widths := t.columnWidths()

	writeRow(w, t.headers, widths)

	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}
	writeRow(w, rule, widths)

	for _, row := range t.rows {
		writeRow(w, row, widths)
	}
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

func writeRow(w io.Writer, cells []string, widths []int) {
	var line strings.Builder
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}

		if i == len(widths)-1 {
			line.WriteString(cell)
		} else {
			line.WriteString(runewidth.FillRight(cell, width))
			line.WriteString("  ")
		}
	}

	_, _ = fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
}
