package board

import (
	"time"

	"GrowthBoard/internal/model"
	"GrowthBoard/internal/transform"
)

// chartHeight is the fixed pixel height of both comparison charts.
const chartHeight = 500

// palette is the default 10-color categorical palette. Color assignment
// is by index over the loaded companies, so a company keeps its color
// across both charts within a single render.
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

func colorFor(index int) string {
	return palette[index%len(palette)]
}

const dateLayout = "2006-01-02"

// buildGrowthChart composes the year-to-date growth comparison chart. A
// company whose first close is zero gets no growth line; its volume line
// still renders in the other chart.
func buildGrowthChart(loaded []loadedCompany, start, end time.Time) model.ChartSpec {
	spec := model.ChartSpec{
		Title:     "Year-to-Date Growth Comparison (%)",
		XTitle:    "Date",
		YTitle:    "Growth (%)",
		HoverMode: "x unified",
		Height:    chartHeight,
		RangeFrom: start.Format(dateLayout),
		RangeTo:   end.Format(dateLayout),
	}
	for i, lc := range loaded {
		growth := transform.NormalizeGrowth(lc.series)
		if len(growth) == 0 {
			continue
		}
		dates := make([]string, len(growth))
		values := make([]float64, len(growth))
		for j, gp := range growth {
			dates[j] = gp.Date.Format(dateLayout)
			values[j] = gp.PercentChange
		}
		spec.Series = append(spec.Series, model.LineSeries{
			Name:          lc.ref.DisplayName,
			Color:         colorFor(i),
			Dates:         dates,
			Values:        values,
			HoverTemplate: "%{y:.2f}%",
		})
	}
	return spec
}

// buildVolumeChart composes the trading volume comparison chart.
func buildVolumeChart(loaded []loadedCompany, start, end time.Time) model.ChartSpec {
	spec := model.ChartSpec{
		Title:     "Trading Volume Comparison",
		XTitle:    "Date",
		YTitle:    "Volume",
		HoverMode: "x unified",
		Height:    chartHeight,
		RangeFrom: start.Format(dateLayout),
		RangeTo:   end.Format(dateLayout),
	}
	for i, lc := range loaded {
		dates := make([]string, len(lc.series))
		values := make([]float64, len(lc.series))
		for j, bar := range lc.series {
			dates[j] = bar.Date.Format(dateLayout)
			values[j] = float64(bar.Volume)
		}
		spec.Series = append(spec.Series, model.LineSeries{
			Name:          lc.ref.DisplayName,
			Color:         colorFor(i),
			Dates:         dates,
			Values:        values,
			HoverTemplate: "%{y:,.0f}",
		})
	}
	return spec
}
