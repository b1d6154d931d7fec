package model

// LineSeries is one named line in a chart. Dates are "YYYY-MM-DD" strings
// so the payload is directly consumable as a Plotly trace.
type LineSeries struct {
	Name          string    `json:"name"`
	Color         string    `json:"color"`
	Dates         []string  `json:"x"`
	Values        []float64 `json:"y"`
	HoverTemplate string    `json:"hovertemplate"`
}

// ChartSpec describes one chart: a set of line series over a shared
// date-indexed X axis plus layout metadata for the charting collaborator.
type ChartSpec struct {
	Title     string       `json:"title"`
	XTitle    string       `json:"xTitle"`
	YTitle    string       `json:"yTitle"`
	HoverMode string       `json:"hoverMode"`
	Height    int          `json:"height"`
	RangeFrom string       `json:"rangeFrom"`
	RangeTo   string       `json:"rangeTo"`
	Series    []LineSeries `json:"series"`
}
