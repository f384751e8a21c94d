package analysis

import (
	"math/rand"
	"strings"
	"time"
)

// Generator fabricates small synthetic datasets from a free-text prompt
// when no tabular data is supplied. Output values are random; tests seed
// the generator for deterministic results.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator creates a Generator seeded from the clock.
func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

// NewSeededGenerator creates a Generator with a fixed seed.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// FromPrompt builds a themed dataset by keyword matching, first match wins:
// sales, temperature/weather, population, then a generic fallback.
func (g *Generator) FromPrompt(prompt string) *Suggestion {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "sales"):
		return g.salesData()
	case strings.Contains(p, "temperature"), strings.Contains(p, "weather"):
		return g.temperatureData()
	case strings.Contains(p, "population"):
		return g.populationData()
	default:
		return g.genericData()
	}
}

func (g *Generator) salesData() *Suggestion {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	return &Suggestion{
		ChartType: "line",
		Title:     "Sales Data",
		Data:      g.series(months, 1000, 5000),
	}
}

func (g *Generator) temperatureData() *Suggestion {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	return &Suggestion{
		ChartType: "line",
		Title:     "Weekly Temperature",
		Data:      g.series(days, 10, 35),
	}
}

func (g *Generator) populationData() *Suggestion {
	countries := []string{"USA", "India", "China", "Brazil", "Russia"}
	return &Suggestion{
		ChartType: "bar",
		Title:     "Population by Country",
		Data:      g.series(countries, 100, 1500),
	}
}

func (g *Generator) genericData() *Suggestion {
	items := []string{"A", "B", "C", "D"}
	return &Suggestion{
		ChartType: "bar",
		Title:     "General Data",
		Data:      g.series(items, 10, 100),
	}
}

// series builds one (name, value) point per label with values drawn
// uniformly from [lo, hi).
func (g *Generator) series(labels []string, lo, hi int) []map[string]any {
	data := make([]map[string]any, 0, len(labels))
	for _, label := range labels {
		data = append(data, map[string]any{
			"name":  label,
			"value": lo + g.rnd.Intn(hi-lo),
		})
	}
	return data
}
