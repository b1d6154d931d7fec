package model

import "time"

// Bar represents a single daily candlestick bar.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// PriceSeries is a daily bar sequence ordered by date ascending, one entry
// per trading day, dates unique. An empty series is a valid "no data"
// result, not an error.
type PriceSeries []Bar

// GrowthPoint is one observation of percent change relative to the first
// close in the queried range.
type GrowthPoint struct {
	Date          time.Time
	PercentChange float64
}

// GrowthSeries is date-aligned with the PriceSeries it was derived from.
type GrowthSeries []GrowthPoint
