package cache

import (
	"fmt"
	"log"
	"sync"
	"time"

	"GrowthBoard/internal/model"
	"GrowthBoard/internal/provider"
)

// MemoFetcher wraps a Fetcher and memoizes successful results for the
// lifetime of the process: series by (ticker, start, end), metadata by
// ticker. Errors are never cached, so a transient provider failure is
// re-attempted on the next render cycle. There is no eviction beyond
// Reset; the input space is bounded (ten symbols, one date range per day).
type MemoFetcher struct {
	inner provider.Fetcher

	mu       sync.Mutex
	series   map[string]model.PriceSeries
	metadata map[string]model.CompanyMetadata
}

// NewMemoFetcher wraps inner with a fresh cache.
func NewMemoFetcher(inner provider.Fetcher) *MemoFetcher {
	m := &MemoFetcher{inner: inner}
	m.reset()
	return m
}

func (m *MemoFetcher) Name() string { return m.inner.Name() + "+memo" }

func seriesKey(ticker string, start, end time.Time) string {
	return fmt.Sprintf("%s|%s|%s", ticker, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// FetchSeries returns the memoized series for identical inputs without a
// new provider round-trip.
func (m *MemoFetcher) FetchSeries(ticker string, start, end time.Time) (model.PriceSeries, error) {
	key := seriesKey(ticker, start, end)

	m.mu.Lock()
	if s, ok := m.series[key]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	s, err := m.inner.FetchSeries(ticker, start, end)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.series[key] = s
	m.mu.Unlock()
	return s, nil
}

// FetchMetadata returns the memoized snapshot for a ticker.
func (m *MemoFetcher) FetchMetadata(ticker string) (model.CompanyMetadata, error) {
	m.mu.Lock()
	if md, ok := m.metadata[ticker]; ok {
		m.mu.Unlock()
		return md, nil
	}
	m.mu.Unlock()

	md, err := m.inner.FetchMetadata(ticker)
	if err != nil {
		return model.CompanyMetadata{}, err
	}

	m.mu.Lock()
	m.metadata[ticker] = md
	m.mu.Unlock()
	return md, nil
}

// Reset drops all memoized entries. The daily scheduler calls this at
// midnight when the "now" end of the date range moves.
func (m *MemoFetcher) Reset() {
	m.mu.Lock()
	n := len(m.series) + len(m.metadata)
	m.reset()
	m.mu.Unlock()
	log.Printf("[INFO] fetch cache reset, %d entries dropped", n)
}

func (m *MemoFetcher) reset() {
	m.series = make(map[string]model.PriceSeries)
	m.metadata = make(map[string]model.CompanyMetadata)
}

// Len reports the number of memoized entries.
func (m *MemoFetcher) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.series) + len(m.metadata)
}
