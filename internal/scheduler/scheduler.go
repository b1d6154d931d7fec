package scheduler

import (
	"fmt"
	"log"

	"GrowthBoard/internal/board"
	"GrowthBoard/internal/cache"
	"GrowthBoard/internal/registry"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily cache refresh: memoized fetch results are keyed
// on the date range, so when the range's "now" endpoint rolls over to a new
// day the old entries are dropped and the default selection is re-warmed.
type Scheduler struct {
	Cron   *cron.Cron
	Cache  *cache.MemoFetcher
	Engine *board.Engine
}

// NewScheduler creates a new Scheduler.
func NewScheduler(c *cache.MemoFetcher, e *board.Engine) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Cache:  c,
		Engine: e,
	}
}

// Register adds the daily refresh task.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// WarmDefault pre-fetches the default selection so the first page load
// hits the cache. Used on start and after the daily reset.
func (s *Scheduler) WarmDefault() {
	if _, err := s.Engine.Render(registry.DefaultSelection()); err != nil {
		log.Printf("[WARN] warm default selection: %v", err)
	} else {
		log.Println("[INFO] default selection warmed")
	}
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running daily cache refresh")
	s.Cache.Reset()
	s.WarmDefault()
}
