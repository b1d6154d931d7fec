package transform

import "GrowthBoard/internal/model"

// NormalizeGrowth rescales a close-price series into percent change
// relative to the first close actually present in the range:
// (close[i]/close[0] - 1) * 100. Returns an empty series when the input
// is empty or the first close is zero, so NaN/Inf never reach a chart.
func NormalizeGrowth(series model.PriceSeries) model.GrowthSeries {
	if len(series) == 0 {
		return model.GrowthSeries{}
	}
	first := series[0].Close
	if first == 0 {
		return model.GrowthSeries{}
	}
	out := make(model.GrowthSeries, len(series))
	for i, bar := range series {
		out[i] = model.GrowthPoint{
			Date:          bar.Date,
			PercentChange: (bar.Close/first - 1) * 100,
		}
	}
	return out
}
