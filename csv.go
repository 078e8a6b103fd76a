package dbg

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

var delimiterCandidates = []rune{',', ';', '\t', '|'}

// ReadCSV reads a row-oriented text table from filename. The field delimiter
// is sniffed from the first line; rows may have differing field counts.
func ReadCSV(filename string) ([][]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	first, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	r := csv.NewReader(f)
	r.Comma = sniffDelimiter(first)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// ReadCSVDict reads a table whose first row is a header and returns one
// header-keyed record per data row. Every row must have the header's column
// count; a disagreeing row fails with [ErrShapeMismatch].
func ReadCSVDict(filename string) ([]map[string]string, error) {
	rows, err := ReadCSV(filename)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				ErrShapeMismatch, i+2, len(row), len(header))
		}
		rec := make(map[string]string, len(header))
		for j, h := range header {
			rec[h] = row[j]
		}
		out = append(out, rec)
	}
	return out, nil
}

// WriteCSV writes rows to filename as comma-separated values, replacing any
// existing file.
func WriteCSV(filename string, rows [][]string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	werr := w.WriteAll(rows)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// sniffDelimiter picks the candidate delimiter occurring most often in the
// first line. Comma wins ties and empty input.
func sniffDelimiter(line string) rune {
	best, bestCount := ',', 0
	for _, c := range delimiterCandidates {
		if n := strings.Count(line, string(c)); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}
