package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists render-cycle diagnostics to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so ad-hoc reads don't block dashboard writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS render_cycles (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			cycle_id    TEXT NOT NULL,
			selection   TEXT,
			selected    INTEGER,
			outcome     TEXT,
			rendered    INTEGER,
			skipped     INTEGER,
			warnings    INTEGER,
			duration_ms INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cycles_ts ON render_cycles(timestamp)`,

		`CREATE TABLE IF NOT EXISTS fetch_errors (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			cycle_id  TEXT NOT NULL,
			ticker    TEXT,
			op        TEXT,
			message   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_errors_ts ON fetch_errors(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordCycle(rec *CycleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO render_cycles
		(timestamp, cycle_id, selection, selected, outcome, rendered, skipped, warnings, duration_ms)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.CycleID, strings.Join(rec.Selection, ","), len(rec.Selection),
		rec.Outcome, rec.Rendered, rec.Skipped, rec.Warnings, rec.Duration.Milliseconds(),
	)
	return err
}

func (r *SQLiteRecorder) RecordFetchError(rec *FetchErrorRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO fetch_errors
		(timestamp, cycle_id, ticker, op, message)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), rec.CycleID, rec.Ticker, rec.Op, rec.Message,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
