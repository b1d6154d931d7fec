package board

import (
	"errors"
	"fmt"
	"log"
	"time"

	"GrowthBoard/internal/model"
	"GrowthBoard/internal/provider"
	"GrowthBoard/internal/recorder"
	"GrowthBoard/internal/transform"

	"github.com/google/uuid"
)

// ErrEmptySelection is returned when the user selected zero companies.
// No fetch is attempted.
var ErrEmptySelection = errors.New("select at least one company")

// ErrNoData is returned when every selected company came back with an
// empty series. No chart is built.
var ErrNoData = errors.New("no market data available for the current selection")

// CompanyPanel is the per-company metadata panel, formatted for display.
// Unknown fields carry the "N/A" placeholder.
type CompanyPanel struct {
	DisplayName string `json:"displayName"`
	Ticker      string `json:"ticker"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	MarketCap   string `json:"marketCap"`
	Sector      string `json:"sector"`
	Industry    string `json:"industry"`
	Summary     string `json:"summary"`
}

// Dashboard is the output of one successful render cycle.
type Dashboard struct {
	CycleID     string          `json:"cycleId"`
	RangeStart  time.Time       `json:"rangeStart"`
	RangeEnd    time.Time       `json:"rangeEnd"`
	Warnings    []string        `json:"warnings"`
	Panels      []CompanyPanel  `json:"panels"`
	GrowthChart model.ChartSpec `json:"growthChart"`
	VolumeChart model.ChartSpec `json:"volumeChart"`
}

// Engine runs render cycles: fetch, transform, compose. Fetches are
// sequential, one company at a time; a failed fetch is terminal for that
// company for that cycle only.
type Engine struct {
	Fetcher  provider.Fetcher
	Recorder recorder.Recorder
	Now      func() time.Time
}

// NewEngine creates an Engine on the given fetcher and recorder.
func NewEngine(fetcher provider.Fetcher, rec recorder.Recorder) *Engine {
	return &Engine{Fetcher: fetcher, Recorder: rec, Now: time.Now}
}

// loadedCompany holds one selected company's fetched data for composition.
type loadedCompany struct {
	ref    model.CompanyRef
	series model.PriceSeries
	meta   model.CompanyMetadata
}

// Range resolves the fixed dashboard date range: Jan 1 of the current
// year through now.
func (e *Engine) Range() (start, end time.Time) {
	end = e.Now()
	start = time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, end
}

// Render executes one full cycle for the given selection. It returns
// ErrEmptySelection before any fetch when the selection is empty, and
// ErrNoData when every selected company yielded an empty series.
func (e *Engine) Render(selection []model.CompanyRef) (*Dashboard, error) {
	started := time.Now()
	cycleID := uuid.NewString()

	if len(selection) == 0 {
		e.recordCycle(cycleID, selection, recorder.OutcomeEmptySelection, 0, 0, 0, started)
		return nil, ErrEmptySelection
	}

	start, end := e.Range()
	var warnings []string
	loaded := make([]loadedCompany, 0, len(selection))

	for _, ref := range selection {
		series, err := e.Fetcher.FetchSeries(ref.Ticker, start, end)
		if err != nil {
			log.Printf("[WARN] fetch series %s: %v", ref.Ticker, err)
			warnings = append(warnings, fmt.Sprintf("market data for %s is unavailable", ref.Ticker))
			e.recordFetchError(cycleID, ref.Ticker, "series", err)
			continue
		}
		if len(series) == 0 {
			warnings = append(warnings, fmt.Sprintf("no data for %s in the requested range", ref.Ticker))
			continue
		}

		meta, err := e.Fetcher.FetchMetadata(ref.Ticker)
		if err != nil {
			// Metadata failure is not fatal: the panel renders placeholders.
			log.Printf("[WARN] fetch metadata %s: %v", ref.Ticker, err)
			warnings = append(warnings, fmt.Sprintf("company details for %s are unavailable", ref.Ticker))
			e.recordFetchError(cycleID, ref.Ticker, "metadata", err)
			meta = model.CompanyMetadata{}
		}

		loaded = append(loaded, loadedCompany{ref: ref, series: series, meta: meta})
	}

	if len(loaded) == 0 {
		e.recordCycle(cycleID, selection, recorder.OutcomeNoData, 0, len(selection), len(warnings), started)
		return nil, ErrNoData
	}

	dash := &Dashboard{
		CycleID:     cycleID,
		RangeStart:  start,
		RangeEnd:    end,
		Warnings:    warnings,
		Panels:      buildPanels(loaded),
		GrowthChart: buildGrowthChart(loaded, start, end),
		VolumeChart: buildVolumeChart(loaded, start, end),
	}

	e.recordCycle(cycleID, selection, recorder.OutcomeRendered, len(loaded), len(selection)-len(loaded), len(warnings), started)
	return dash, nil
}

// NA is the placeholder shown for metadata the provider did not supply.
const NA = "N/A"

func buildPanels(loaded []loadedCompany) []CompanyPanel {
	panels := make([]CompanyPanel, 0, len(loaded))
	for _, lc := range loaded {
		p := CompanyPanel{
			DisplayName: lc.ref.DisplayName,
			Ticker:      lc.ref.Ticker,
			Name:        lc.meta.Name,
			Price:       NA,
			MarketCap:   NA,
			Sector:      lc.meta.Sector,
			Industry:    lc.meta.Industry,
			Summary:     transform.TruncateSummary(lc.meta.Summary, 2),
		}
		if p.Name == "" {
			p.Name = lc.ref.DisplayName
		}
		if lc.meta.CurrentPrice != nil {
			p.Price = fmt.Sprintf("$%.2f", *lc.meta.CurrentPrice)
		}
		if lc.meta.MarketCap != nil {
			p.MarketCap = transform.FormatMagnitude(*lc.meta.MarketCap)
		}
		if p.Sector == "" {
			p.Sector = NA
		}
		if p.Industry == "" {
			p.Industry = NA
		}
		if p.Summary == "" {
			p.Summary = NA
		}
		panels = append(panels, p)
	}
	return panels
}

func (e *Engine) recordCycle(cycleID string, selection []model.CompanyRef, outcome string, rendered, skipped, warnings int, started time.Time) {
	tickers := make([]string, len(selection))
	for i, ref := range selection {
		tickers[i] = ref.Ticker
	}
	if err := e.Recorder.RecordCycle(&recorder.CycleRecord{
		CycleID:   cycleID,
		Selection: tickers,
		Outcome:   outcome,
		Rendered:  rendered,
		Skipped:   skipped,
		Warnings:  warnings,
		Duration:  time.Since(started),
	}); err != nil {
		log.Printf("[ERROR] record cycle: %v", err)
	}
}

func (e *Engine) recordFetchError(cycleID, ticker, op string, err error) {
	if rerr := e.Recorder.RecordFetchError(&recorder.FetchErrorRecord{
		CycleID: cycleID,
		Ticker:  ticker,
		Op:      op,
		Message: err.Error(),
	}); rerr != nil {
		log.Printf("[ERROR] record fetch error: %v", rerr)
	}
}
