package provider

import (
	"time"

	"GrowthBoard/internal/model"
)

// Fetcher defines the interface for fetching market data. Implementations
// return provider errors as-is; converting a failure into an empty series
// or sentinel metadata is the caller's policy, not the fetcher's.
type Fetcher interface {
	FetchSeries(ticker string, start, end time.Time) (model.PriceSeries, error)
	FetchMetadata(ticker string) (model.CompanyMetadata, error)
	Name() string
}
