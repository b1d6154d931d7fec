package provider

import (
	"fmt"
	"time"

	"GrowthBoard/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series   map[string]model.PriceSeries
	Metadata map[string]model.CompanyMetadata
	Err      map[string]error // fails both operations for a ticker
	MetaErr  map[string]error // fails only FetchMetadata

	SeriesCalls   []string
	MetadataCalls []string
}

func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		Series:   make(map[string]model.PriceSeries),
		Metadata: make(map[string]model.CompanyMetadata),
		Err:      make(map[string]error),
		MetaErr:  make(map[string]error),
	}
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(ticker string, start, end time.Time) (model.PriceSeries, error) {
	m.SeriesCalls = append(m.SeriesCalls, fmt.Sprintf("%s|%s|%s", ticker, start.Format("2006-01-02"), end.Format("2006-01-02")))
	if err, ok := m.Err[ticker]; ok {
		return nil, err
	}
	if s, ok := m.Series[ticker]; ok {
		return s, nil
	}
	return GenerateBars(100, 30, start), nil
}

func (m *MockFetcher) FetchMetadata(ticker string) (model.CompanyMetadata, error) {
	m.MetadataCalls = append(m.MetadataCalls, ticker)
	if err, ok := m.MetaErr[ticker]; ok {
		return model.CompanyMetadata{}, err
	}
	if err, ok := m.Err[ticker]; ok {
		return model.CompanyMetadata{}, err
	}
	return m.Metadata[ticker], nil
}

// GenerateBars builds a deterministic daily series starting at basePrice.
func GenerateBars(basePrice float64, count int, start time.Time) model.PriceSeries {
	bars := make(model.PriceSeries, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
