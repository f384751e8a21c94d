// Package analysis turns tabular input into summary statistics and a
// heuristic chart-type suggestion. Parsing and statistics are pure
// functions over in-memory data; nothing here touches the database.
package analysis

import (
	"encoding/csv"
	"strconv"
	"strings"

	apperrors "smartstats/internal/errors"
)

// Table is a parsed tabular dataset: named columns over string cells,
// with per-column numeric classification.
type Table struct {
	Columns []string
	Rows    [][]string

	numeric []bool
}

// ParseCSV parses CSV text with a header row into a Table. Malformed input,
// including ragged rows and empty input, fails with ErrMalformedCSV.
func ParseCSV(data string) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(data))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrMalformedCSV, err)
	}
	if len(records) == 0 {
		return nil, apperrors.ErrMalformedCSV
	}

	t := &Table{
		Columns: records[0],
		Rows:    records[1:],
	}
	t.classify()
	return t, nil
}

// classify marks a column numeric when it has at least one non-empty cell
// and every non-empty cell parses as a float. Empty cells are missing
// values and do not affect classification.
func (t *Table) classify() {
	t.numeric = make([]bool, len(t.Columns))
	for j := range t.Columns {
		nonEmpty := 0
		isNumeric := true
		for _, row := range t.Rows {
			if j >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[j])
			if cell == "" {
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				isNumeric = false
				break
			}
			nonEmpty++
		}
		t.numeric[j] = isNumeric && nonEmpty > 0
	}
}

// NumericColumns returns the names of numeric columns in table order.
func (t *Table) NumericColumns() []string {
	cols := []string{}
	for j, name := range t.Columns {
		if t.numeric[j] {
			cols = append(cols, name)
		}
	}
	return cols
}

// IsNumeric reports whether the column at index j is numeric.
func (t *Table) IsNumeric(j int) bool {
	return j >= 0 && j < len(t.numeric) && t.numeric[j]
}

// columnValues returns the non-empty cells of a numeric column as floats.
func (t *Table) columnValues(j int) []float64 {
	values := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if j >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[j])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values
}

// Value returns the cell at (i, j) with its native type: float64 for
// numeric columns, string otherwise, nil for missing values.
func (t *Table) Value(i, j int) any {
	if i >= len(t.Rows) || j >= len(t.Rows[i]) {
		return nil
	}
	cell := t.Rows[i][j]
	if !t.numeric[j] {
		return cell
	}
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return v
}
