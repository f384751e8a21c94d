package models

// Chart represents a single chart on a dashboard. Data and Config hold
// JSON-encoded documents; they are validated for syntactic well-formedness
// on write and never against a per-chart-type schema.
type Chart struct {
	Base
	Title       string `gorm:"size:200;not null" json:"title"`
	ChartType   string `gorm:"size:50;not null" json:"chart_type"`
	Data        string `gorm:"type:text;not null" json:"-"`
	Config      string `gorm:"type:text" json:"-"`
	DashboardID uint   `gorm:"not null;index" json:"dashboard_id"`
}

// ParsedData returns the chart's data document. A stored value that fails
// to parse reads as an empty array.
func (c *Chart) ParsedData() Document {
	doc, err := ParseDocument(c.Data)
	if err != nil {
		return Document{Value: []any{}}
	}
	return doc
}

// ParsedConfig returns the chart's config document. An absent or corrupted
// stored value reads as an empty object.
func (c *Chart) ParsedConfig() Document {
	if c.Config == "" {
		return Document{Value: map[string]any{}}
	}
	doc, err := ParseDocument(c.Config)
	if err != nil {
		return Document{Value: map[string]any{}}
	}
	return doc
}
