package cache

import (
	"errors"
	"testing"
	"time"

	"GrowthBoard/internal/model"
	"GrowthBoard/internal/provider"
)

var (
	rangeStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
)

func TestFetchSeries_Memoized(t *testing.T) {
	mock := provider.NewMockFetcher()
	memo := NewMemoFetcher(mock)

	first, err := memo.FetchSeries("AAPL", rangeStart, rangeEnd)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := memo.FetchSeries("AAPL", rangeStart, rangeEnd)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	if got := len(mock.SeriesCalls); got != 1 {
		t.Errorf("expected exactly 1 provider call, got %d", got)
	}
	if len(first) != len(second) {
		t.Errorf("memoized result differs: %d vs %d bars", len(first), len(second))
	}
}

func TestFetchSeries_KeyedOnFullTuple(t *testing.T) {
	mock := provider.NewMockFetcher()
	memo := NewMemoFetcher(mock)

	if _, err := memo.FetchSeries("AAPL", rangeStart, rangeEnd); err != nil {
		t.Fatal(err)
	}
	if _, err := memo.FetchSeries("MSFT", rangeStart, rangeEnd); err != nil {
		t.Fatal(err)
	}
	if _, err := memo.FetchSeries("AAPL", rangeStart, rangeEnd.AddDate(0, 0, 1)); err != nil {
		t.Fatal(err)
	}

	if got := len(mock.SeriesCalls); got != 3 {
		t.Errorf("distinct tuples must each hit the provider, got %d calls", got)
	}
}

func TestFetchMetadata_Memoized(t *testing.T) {
	mock := provider.NewMockFetcher()
	mcap := 3.0e12
	mock.Metadata["AAPL"] = model.CompanyMetadata{Name: "Apple Inc.", MarketCap: &mcap}
	memo := NewMemoFetcher(mock)

	for i := 0; i < 3; i++ {
		md, err := memo.FetchMetadata("AAPL")
		if err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
		if md.Name != "Apple Inc." {
			t.Fatalf("fetch %d: unexpected metadata %+v", i, md)
		}
	}
	if got := len(mock.MetadataCalls); got != 1 {
		t.Errorf("expected exactly 1 provider call, got %d", got)
	}
}

func TestErrorsNotMemoized(t *testing.T) {
	mock := provider.NewMockFetcher()
	mock.Err["TSM"] = errors.New("provider down")
	memo := NewMemoFetcher(mock)

	if _, err := memo.FetchSeries("TSM", rangeStart, rangeEnd); err == nil {
		t.Fatal("expected error from provider")
	}

	// Provider recovers; the next call must go through.
	delete(mock.Err, "TSM")
	if _, err := memo.FetchSeries("TSM", rangeStart, rangeEnd); err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if got := len(mock.SeriesCalls); got != 2 {
		t.Errorf("failed call must not be cached, got %d calls", got)
	}
}

func TestReset(t *testing.T) {
	mock := provider.NewMockFetcher()
	memo := NewMemoFetcher(mock)

	if _, err := memo.FetchSeries("AAPL", rangeStart, rangeEnd); err != nil {
		t.Fatal(err)
	}
	if memo.Len() == 0 {
		t.Fatal("expected a cached entry")
	}

	memo.Reset()
	if memo.Len() != 0 {
		t.Errorf("expected empty cache after reset, got %d entries", memo.Len())
	}

	if _, err := memo.FetchSeries("AAPL", rangeStart, rangeEnd); err != nil {
		t.Fatal(err)
	}
	if got := len(mock.SeriesCalls); got != 2 {
		t.Errorf("expected refetch after reset, got %d calls", got)
	}
}
