package analysis

import "strings"

// previewRows caps how many rows a suggestion carries back to the client.
const previewRows = 20

// Suggestion is a recommended chart over a dataset: a chart type, a title,
// and a payload of rows. Columns is present only for data-driven
// suggestions.
type Suggestion struct {
	ChartType string           `json:"chart_type"`
	Title     string           `json:"title"`
	Columns   []string         `json:"columns,omitempty"`
	Data      []map[string]any `json:"data"`
}

// Suggest picks a chart type for a table. Precedence: a prompt mentioning
// "trend" forces a line chart; otherwise two or more numeric columns make a
// scatter plot, exactly one makes a bar chart, and anything else falls back
// to a plain table. The payload is the first 20 rows with native cell types.
func Suggest(t *Table, prompt string) *Suggestion {
	numericCount := len(t.NumericColumns())

	var chartType string
	switch {
	case strings.Contains(strings.ToLower(prompt), "trend"):
		chartType = "line"
	case numericCount >= 2:
		chartType = "scatter"
	case numericCount == 1:
		chartType = "bar"
	default:
		chartType = "table"
	}

	limit := len(t.Rows)
	if limit > previewRows {
		limit = previewRows
	}

	data := make([]map[string]any, 0, limit)
	for i := 0; i < limit; i++ {
		row := make(map[string]any, len(t.Columns))
		for j, name := range t.Columns {
			row[name] = t.Value(i, j)
		}
		data = append(data, row)
	}

	return &Suggestion{
		ChartType: chartType,
		Title:     "Analysis of " + t.Columns[0],
		Columns:   t.Columns,
		Data:      data,
	}
}
