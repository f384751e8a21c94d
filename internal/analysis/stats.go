package analysis

import (
	"math"
	"sort"
)

// ColumnSummary holds descriptive statistics for one numeric column.
// Std uses the sample convention (N-1 denominator) and is null for
// columns with fewer than two values.
type ColumnSummary struct {
	Mean   float64  `json:"mean"`
	Median float64  `json:"median"`
	Std    *float64 `json:"std"`
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`
}

// Stats describes a table: its shape, column classification, and a summary
// per numeric column.
type Stats struct {
	Rows           int                      `json:"rows"`
	Columns        int                      `json:"columns"`
	ColumnNames    []string                 `json:"column_names"`
	NumericColumns []string                 `json:"numeric_columns"`
	Summary        map[string]ColumnSummary `json:"summary"`
}

// Summarize computes descriptive statistics for every numeric column.
// A zero-row table is valid and yields an empty summary.
func Summarize(t *Table) *Stats {
	stats := &Stats{
		Rows:           len(t.Rows),
		Columns:        len(t.Columns),
		ColumnNames:    t.Columns,
		NumericColumns: t.NumericColumns(),
		Summary:        map[string]ColumnSummary{},
	}

	for j, name := range t.Columns {
		if !t.numeric[j] {
			continue
		}
		values := t.columnValues(j)
		if len(values) == 0 {
			continue
		}
		stats.Summary[name] = summarizeColumn(values)
	}

	return stats
}

func summarizeColumn(values []float64) ColumnSummary {
	s := ColumnSummary{
		Mean:   mean(values),
		Median: median(values),
		Min:    values[0],
		Max:    values[0],
	}
	for _, v := range values {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	if len(values) >= 2 {
		std := sampleStd(values, s.Mean)
		s.Std = &std
	}
	return s
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// sampleStd computes the sample standard deviation (N-1 denominator),
// matching the convention of common dataframe libraries.
func sampleStd(values []float64, mean float64) float64 {
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
