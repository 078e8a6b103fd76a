package dbg

import (
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// SortTable returns a copy of table stably sorted by the given column. Rows
// shorter than keyColumn+1 sort as if the key cell were empty. The input
// table is left untouched; the returned rows alias the originals.
func SortTable(table [][]string, keyColumn int, descending bool) [][]string {
	out := slices.Clone(table)
	slices.SortStableFunc(out, func(a, b []string) int {
		c := strings.Compare(cellAt(a, keyColumn), cellAt(b, keyColumn))
		if descending {
			return -c
		}
		return c
	})
	return out
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// FormatTable renders rows as space-aligned columns, one line per row, for
// readable dumps of tabular data. Column widths are display widths, so
// full-width characters align correctly. The result ends with a newline
// unless rows is empty.
func FormatTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	numCols := 0
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}
	widths := make([]int, numCols)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		line := make([]string, numCols)
		for i := range line {
			line[i] = runewidth.FillRight(cellAt(row, i), widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(line, "  "), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
