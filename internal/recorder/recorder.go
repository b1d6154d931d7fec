package recorder

import "time"

// Cycle outcomes as stored in render_cycles.outcome.
const (
	OutcomeRendered       = "RENDERED"
	OutcomeEmptySelection = "EMPTY_SELECTION"
	OutcomeNoData         = "NO_DATA"
)

// CycleRecord holds diagnostics for one render cycle.
type CycleRecord struct {
	CycleID   string
	Selection []string
	Outcome   string
	Rendered  int // companies with data
	Skipped   int // companies dropped (fetch failure or empty series)
	Warnings  int
	Duration  time.Duration
}

// FetchErrorRecord captures a single provider failure within a cycle.
type FetchErrorRecord struct {
	CycleID string
	Ticker  string
	Op      string // "series" or "metadata"
	Message string
}

// Recorder persists render-cycle diagnostics for later analysis.
type Recorder interface {
	RecordCycle(rec *CycleRecord) error
	RecordFetchError(rec *FetchErrorRecord) error
	Close() error
}
