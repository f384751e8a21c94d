package analysis

import (
	"errors"
	"testing"

	apperrors "smartstats/internal/errors"
)

func TestParseCSV(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		table, err := ParseCSV("a,b\n1,x\n2,y\n3,z\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(table.Columns) != 2 {
			t.Fatalf("expected 2 columns, got %d", len(table.Columns))
		}
		if len(table.Rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(table.Rows))
		}
	})

	t.Run("ragged_rows", func(t *testing.T) {
		_, err := ParseCSV("a,b\n1,2\n3\n")
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Code != "MALFORMED_CSV" {
			t.Fatalf("expected MALFORMED_CSV, got %v", err)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		_, err := ParseCSV("")
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Code != "MALFORMED_CSV" {
			t.Fatalf("expected MALFORMED_CSV, got %v", err)
		}
	})

	t.Run("header_only_is_valid", func(t *testing.T) {
		table, err := ParseCSV("a,b\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(table.Rows) != 0 {
			t.Fatalf("expected 0 rows, got %d", len(table.Rows))
		}
		if got := len(table.NumericColumns()); got != 0 {
			t.Errorf("expected no numeric columns for empty table, got %d", got)
		}
	})
}

func TestTableClassification(t *testing.T) {
	t.Run("mixed_columns", func(t *testing.T) {
		table, err := ParseCSV("a,b\n1,x\n2,y\n3,z\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		numeric := table.NumericColumns()
		if len(numeric) != 1 || numeric[0] != "a" {
			t.Fatalf("expected numeric columns [a], got %v", numeric)
		}
	})

	t.Run("floats_and_negatives", func(t *testing.T) {
		table, err := ParseCSV("v\n-1.5\n2.25\n0\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !table.IsNumeric(0) {
			t.Error("expected column v to be numeric")
		}
	})

	t.Run("empty_cells_are_missing_values", func(t *testing.T) {
		table, err := ParseCSV("v,w\n1,x\n,y\n3,z\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !table.IsNumeric(0) {
			t.Fatal("expected column v to stay numeric with missing values")
		}
		if got := table.Value(1, 0); got != nil {
			t.Errorf("expected nil for missing value, got %v", got)
		}
	})

	t.Run("all_empty_column_is_not_numeric", func(t *testing.T) {
		table, err := ParseCSV("a,b\n1,\n2,\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table.IsNumeric(1) {
			t.Error("expected column with no values to be non-numeric")
		}
	})
}

func TestSummarize(t *testing.T) {
	t.Run("basic_stats", func(t *testing.T) {
		table, err := ParseCSV("a,b\n1,x\n2,y\n3,z\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stats := Summarize(table)

		if stats.Rows != 3 || stats.Columns != 2 {
			t.Errorf("expected shape 3x2, got %dx%d", stats.Rows, stats.Columns)
		}
		if len(stats.NumericColumns) != 1 || stats.NumericColumns[0] != "a" {
			t.Fatalf("expected numeric_columns [a], got %v", stats.NumericColumns)
		}
		if _, ok := stats.Summary["b"]; ok {
			t.Error("expected column b to be excluded from summary")
		}

		s, ok := stats.Summary["a"]
		if !ok {
			t.Fatal("expected summary for column a")
		}
		if s.Mean != 2.0 {
			t.Errorf("expected mean 2.0, got %v", s.Mean)
		}
		if s.Median != 2.0 {
			t.Errorf("expected median 2.0, got %v", s.Median)
		}
		if s.Min != 1.0 || s.Max != 3.0 {
			t.Errorf("expected min 1.0 max 3.0, got %v %v", s.Min, s.Max)
		}
		if s.Std == nil || *s.Std != 1.0 {
			t.Errorf("expected sample std 1.0, got %v", s.Std)
		}
	})

	t.Run("even_row_count_median", func(t *testing.T) {
		table, err := ParseCSV("a\n4\n1\n3\n2\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stats := Summarize(table)
		if got := stats.Summary["a"].Median; got != 2.5 {
			t.Errorf("expected median 2.5, got %v", got)
		}
	})

	t.Run("single_value_std_is_null", func(t *testing.T) {
		table, err := ParseCSV("a\n5\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := Summarize(table).Summary["a"]
		if s.Std != nil {
			t.Errorf("expected nil std for a single value, got %v", *s.Std)
		}
		if s.Mean != 5.0 || s.Min != 5.0 || s.Max != 5.0 {
			t.Errorf("unexpected stats for single value: %+v", s)
		}
	})

	t.Run("zero_rows", func(t *testing.T) {
		table, err := ParseCSV("a,b\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stats := Summarize(table)
		if stats.Rows != 0 {
			t.Errorf("expected 0 rows, got %d", stats.Rows)
		}
		if len(stats.Summary) != 0 {
			t.Errorf("expected empty summary, got %v", stats.Summary)
		}
	})
}

func TestSuggest(t *testing.T) {
	twoNumeric := "x,y\n1,2\n3,4\n"

	t.Run("two_numeric_columns_scatter", func(t *testing.T) {
		table, _ := ParseCSV(twoNumeric)
		s := Suggest(table, "show me growth")
		if s.ChartType != "scatter" {
			t.Errorf("expected scatter, got %s", s.ChartType)
		}
	})

	t.Run("trend_prompt_overrides", func(t *testing.T) {
		table, _ := ParseCSV(twoNumeric)
		s := Suggest(table, "show the TREND")
		if s.ChartType != "line" {
			t.Errorf("expected line, got %s", s.ChartType)
		}
	})

	t.Run("one_numeric_column_bar", func(t *testing.T) {
		table, _ := ParseCSV("a,b\n1,x\n2,y\n")
		s := Suggest(table, "")
		if s.ChartType != "bar" {
			t.Errorf("expected bar, got %s", s.ChartType)
		}
	})

	t.Run("no_numeric_columns_table", func(t *testing.T) {
		table, _ := ParseCSV("a,b\nfoo,x\nbar,y\n")
		s := Suggest(table, "")
		if s.ChartType != "table" {
			t.Errorf("expected table, got %s", s.ChartType)
		}
	})

	t.Run("title_and_columns", func(t *testing.T) {
		table, _ := ParseCSV("price,region\n3,east\n")
		s := Suggest(table, "")
		if s.Title != "Analysis of price" {
			t.Errorf("unexpected title: %s", s.Title)
		}
		if len(s.Columns) != 2 || s.Columns[0] != "price" {
			t.Errorf("unexpected columns: %v", s.Columns)
		}
	})

	t.Run("native_cell_types", func(t *testing.T) {
		table, _ := ParseCSV("a,b\n1,x\n")
		s := Suggest(table, "")
		if v, ok := s.Data[0]["a"].(float64); !ok || v != 1.0 {
			t.Errorf("expected float64 1.0 for a, got %T %v", s.Data[0]["a"], s.Data[0]["a"])
		}
		if v, ok := s.Data[0]["b"].(string); !ok || v != "x" {
			t.Errorf("expected string x for b, got %T %v", s.Data[0]["b"], s.Data[0]["b"])
		}
	})

	t.Run("payload_capped_at_20_rows", func(t *testing.T) {
		csv := "n\n"
		for i := 0; i < 30; i++ {
			csv += "1\n"
		}
		table, _ := ParseCSV(csv)
		s := Suggest(table, "")
		if len(s.Data) != 20 {
			t.Errorf("expected 20 rows in payload, got %d", len(s.Data))
		}
	})
}

func TestGeneratorFromPrompt(t *testing.T) {
	t.Run("sales", func(t *testing.T) {
		g := NewSeededGenerator(1)
		s := g.FromPrompt("I want sales numbers")
		if s.ChartType != "line" || s.Title != "Sales Data" {
			t.Fatalf("unexpected suggestion: %+v", s)
		}
		months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
		if len(s.Data) != len(months) {
			t.Fatalf("expected %d points, got %d", len(months), len(s.Data))
		}
		for i, point := range s.Data {
			if point["name"] != months[i] {
				t.Errorf("point %d: expected label %s, got %v", i, months[i], point["name"])
			}
			v := point["value"].(int)
			if v < 1000 || v >= 5000 {
				t.Errorf("point %d: value %d out of [1000, 5000)", i, v)
			}
		}
	})

	t.Run("temperature_and_weather", func(t *testing.T) {
		for _, prompt := range []string{"temperature this week", "how is the Weather"} {
			g := NewSeededGenerator(2)
			s := g.FromPrompt(prompt)
			if s.ChartType != "line" || s.Title != "Weekly Temperature" {
				t.Fatalf("prompt %q: unexpected suggestion: %+v", prompt, s)
			}
			if len(s.Data) != 7 {
				t.Fatalf("prompt %q: expected 7 points, got %d", prompt, len(s.Data))
			}
			for _, point := range s.Data {
				v := point["value"].(int)
				if v < 10 || v >= 35 {
					t.Errorf("value %d out of [10, 35)", v)
				}
			}
		}
	})

	t.Run("population", func(t *testing.T) {
		g := NewSeededGenerator(3)
		s := g.FromPrompt("population growth by country")
		if s.ChartType != "bar" || s.Title != "Population by Country" {
			t.Fatalf("unexpected suggestion: %+v", s)
		}
		if len(s.Data) != 5 {
			t.Fatalf("expected 5 points, got %d", len(s.Data))
		}
	})

	t.Run("generic_fallback", func(t *testing.T) {
		g := NewSeededGenerator(4)
		s := g.FromPrompt("xyz")
		if s.ChartType != "bar" || s.Title != "General Data" {
			t.Fatalf("unexpected suggestion: %+v", s)
		}
		labels := []string{"A", "B", "C", "D"}
		if len(s.Data) != len(labels) {
			t.Fatalf("expected 4 points, got %d", len(s.Data))
		}
		for i, point := range s.Data {
			if point["name"] != labels[i] {
				t.Errorf("point %d: expected label %s, got %v", i, labels[i], point["name"])
			}
			v := point["value"].(int)
			if v < 10 || v >= 100 {
				t.Errorf("point %d: value %d out of [10, 100)", i, v)
			}
		}
	})

	t.Run("sales_wins_over_later_keywords", func(t *testing.T) {
		g := NewSeededGenerator(5)
		s := g.FromPrompt("sales vs population")
		if s.Title != "Sales Data" {
			t.Errorf("expected sales theme to win, got %s", s.Title)
		}
	})

	t.Run("seeded_generator_is_deterministic", func(t *testing.T) {
		a := NewSeededGenerator(42).FromPrompt("sales")
		b := NewSeededGenerator(42).FromPrompt("sales")
		for i := range a.Data {
			if a.Data[i]["value"] != b.Data[i]["value"] {
				t.Fatalf("expected identical values for the same seed at point %d", i)
			}
		}
	})
}
