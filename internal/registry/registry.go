package registry

import "GrowthBoard/internal/model"

// companies is the fixed top-10-by-market-cap table. Order is declaration
// order and is stable across calls; extend by editing this table only.
var companies = []model.CompanyRef{
	{DisplayName: "Apple (AAPL)", Ticker: "AAPL"},
	{DisplayName: "Microsoft (MSFT)", Ticker: "MSFT"},
	{DisplayName: "Alphabet (GOOGL)", Ticker: "GOOGL"},
	{DisplayName: "Amazon (AMZN)", Ticker: "AMZN"},
	{DisplayName: "NVIDIA (NVDA)", Ticker: "NVDA"},
	{DisplayName: "Meta (META)", Ticker: "META"},
	{DisplayName: "Berkshire Hathaway (BRK-B)", Ticker: "BRK-B"},
	{DisplayName: "Eli Lilly (LLY)", Ticker: "LLY"},
	{DisplayName: "Visa (V)", Ticker: "V"},
	{DisplayName: "TSMC (TSM)", Ticker: "TSM"},
}

// DefaultSelectionSize is how many companies are pre-selected on first load.
const DefaultSelectionSize = 3

// Companies returns the fixed company table in declaration order.
// Callers must not modify the returned slice.
func Companies() []model.CompanyRef {
	return companies
}

// DefaultSelection returns the first DefaultSelectionSize entries.
func DefaultSelection() []model.CompanyRef {
	return companies[:DefaultSelectionSize]
}

// Lookup finds a company by ticker symbol.
func Lookup(ticker string) (model.CompanyRef, bool) {
	for _, c := range companies {
		if c.Ticker == ticker {
			return c, true
		}
	}
	return model.CompanyRef{}, false
}
